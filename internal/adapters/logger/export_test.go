package logger

// ErrorEntry exposes errorEntry for white-box testing.
type ErrorEntry = errorEntry

var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)
