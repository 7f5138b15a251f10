// Package entry maps declared functions to their source files and bundled output.
package entry

import (
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/slswebpack/internal/core/domain"
	"go.trai.ch/slswebpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver finds the source file behind every declared handler.
type Resolver struct {
	matcher ports.FileMatcher
}

// NewResolver creates a new Resolver.
func NewResolver(matcher ports.FileMatcher) *Resolver {
	return &Resolver{matcher: matcher}
}

// Resolve returns the entry mapping of the service: function name to the
// absolute path of the single source file named after the handler path.
// Handlers are read as originally declared so that resolving after a rewrite
// still points at the sources.
func (r *Resolver) Resolve(svc ports.Service) (map[string]string, error) {
	names := svc.AllFunctions()
	entries := make(map[string]string, len(names))

	for _, name := range names {
		file, err := r.resolveFunction(svc, name)
		if err != nil {
			return nil, err
		}
		entries[name] = file
	}

	return entries, nil
}

func (r *Resolver) resolveFunction(svc ports.Service, name string) (string, error) {
	handler, err := svc.OriginalHandler(name)
	if err != nil {
		return "", err
	}

	loc, err := domain.ParseHandler(handler)
	if err != nil {
		return "", zerr.With(err, "function", name)
	}

	dir := filepath.Join(svc.ServicePath(), filepath.FromSlash(path.Dir(loc.Path)))
	base := path.Base(loc.Path)
	pattern := escapeMeta(base) + ".*"

	found, err := r.matcher.Match(dir, pattern)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrEntryGlobFailed.Error()), "function", name)
	}
	matches := sourcesNamed(found, base)

	switch len(matches) {
	case 0:
		return "", zerr.With(zerr.With(zerr.With(domain.ErrEntryNotFound,
			"function", name),
			"handler", handler),
			"pattern", path.Join(filepath.ToSlash(dir), pattern))
	case 1:
		return matches[0], nil
	default:
		return "", zerr.With(zerr.With(zerr.With(domain.ErrAmbiguousEntry,
			"function", name),
			"handler", handler),
			"candidates", strings.Join(matches, ", "))
	}
}

// sourcesNamed keeps the files whose name is exactly base plus one extension,
// dropping sidecars such as handler.test.js or handler.js.map.
func sourcesNamed(files []string, base string) []string {
	var out []string
	for _, f := range files {
		name := filepath.Base(f)
		if strings.TrimSuffix(name, filepath.Ext(name)) == base {
			out = append(out, f)
		}
	}
	return out
}

// escapeMeta escapes glob metacharacters so a file name matches literally.
func escapeMeta(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch r {
		case '*', '?', '[', ']', '{', '}', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
