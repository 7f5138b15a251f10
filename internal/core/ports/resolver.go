package ports

// FileMatcher defines the interface for glob based file discovery.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type FileMatcher interface {
	// Match returns the absolute paths of the regular files under root matching
	// the slash separated pattern, in sorted order.
	Match(root, pattern string) ([]string, error)
}
