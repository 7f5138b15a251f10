package entry

import (
	"path"
	"path/filepath"

	"go.trai.ch/slswebpack/internal/core/domain"
	"go.trai.ch/slswebpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// RewriteHandlers points every function's handler at its bundle inside out.Path,
// keeping the exported symbol: <output dir>/<function>.<symbol>.
func RewriteHandlers(svc ports.Service, servicePath string, out domain.Output) error {
	rel, err := filepath.Rel(servicePath, out.Path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to relativize output path"), "path", out.Path)
	}
	rel = filepath.ToSlash(rel)

	for _, name := range svc.AllFunctions() {
		original, err := svc.OriginalHandler(name)
		if err != nil {
			return err
		}

		loc, err := domain.ParseHandler(original)
		if err != nil {
			return zerr.With(err, "function", name)
		}

		rewritten := domain.HandlerLocator{Path: path.Join(rel, name), Symbol: loc.Symbol}
		if err := svc.SetHandler(name, rewritten.String()); err != nil {
			return err
		}
	}

	return nil
}
