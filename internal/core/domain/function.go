package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Function is a function declared by the service.
type Function struct {
	Name    string
	Handler string
}

// HandlerLocator is a parsed handler string of the form <path-without-extension>.<symbol>.
type HandlerLocator struct {
	// Path is the slash separated source path without extension, relative to the service.
	Path string
	// Symbol is the exported function invoked by the runtime.
	Symbol string
}

// ParseHandler splits a handler string at the last dot of its final path segment.
func ParseHandler(handler string) (HandlerLocator, error) {
	slash := strings.LastIndex(handler, "/")
	dot := strings.LastIndex(handler, ".")
	if dot <= slash+1 || dot == len(handler)-1 {
		return HandlerLocator{}, zerr.With(ErrInvalidHandler, "handler", handler)
	}
	return HandlerLocator{
		Path:   handler[:dot],
		Symbol: handler[dot+1:],
	}, nil
}

// String formats the locator back into a handler string.
func (h HandlerLocator) String() string {
	return h.Path + "." + h.Symbol
}
