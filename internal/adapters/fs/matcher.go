package fs

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/slswebpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileMatcher = (*Matcher)(nil)

// Matcher implements ports.FileMatcher using doublestar globs.
type Matcher struct{}

// NewMatcher creates a new Matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Match returns the absolute paths of the regular files under root matching pattern.
// Directories and other non regular entries are skipped. An empty result is not an error.
func (m *Matcher) Match(root, pattern string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve root"), "root", root)
	}

	if !doublestar.ValidatePattern(pattern) {
		return nil, zerr.With(doublestar.ErrBadPattern, "pattern", pattern)
	}

	matches, err := doublestar.Glob(os.DirFS(absRoot), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "pattern", pattern)
	}

	result := make([]string, 0, len(matches))
	for _, match := range matches {
		path := filepath.Join(absRoot, filepath.FromSlash(match))
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		result = append(result, path)
	}
	slices.Sort(result)

	return result, nil
}
