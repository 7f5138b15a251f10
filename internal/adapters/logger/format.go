package logger

import (
	"io"
	"os"

	"go.trai.ch/zerr"
)

// Log formats accepted by Configure.
const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

// ErrUnknownFormat is returned for a log format other than pretty or json.
var ErrUnknownFormat = zerr.New("unknown log format")

// Configure points l at w and selects the line format.
func Configure(l *Logger, format string, w io.Writer) error {
	if w == nil {
		w = os.Stderr
	}

	var jsonMode bool
	switch format {
	case FormatPretty, "":
	case FormatJSON:
		jsonMode = true
	default:
		return zerr.With(ErrUnknownFormat, "format", format)
	}

	l.SetOutput(w)
	l.SetJSON(jsonMode)
	return nil
}
