package entry

import (
	"maps"
	"path/filepath"

	"go.trai.ch/slswebpack/internal/core/domain"
)

// ConfigureOutput returns the output descriptor bundles are written with.
func ConfigureOutput(servicePath string, opts domain.Options) domain.Output {
	dir := opts.WithDefaults().OutputDirectory
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(servicePath, dir)
	}

	return domain.Output{
		LibraryTarget: domain.ModuleFormatCommonJS,
		Path:          filepath.Clean(dir),
		Filename:      domain.OutputFilenameTemplate,
	}
}

// ApplyBuildTargets fills in entry and output on every unit that has not declared its own.
// Output is filled field by field so a unit's own filename survives.
func ApplyBuildTargets(configs []domain.BuildConfig, entries map[string]string, output domain.Output) {
	for i := range configs {
		if len(configs[i].Entry) == 0 {
			configs[i].Entry = maps.Clone(entries)
		}
		out := &configs[i].Output
		if out.Path == "" {
			out.Path = output.Path
		}
		if out.LibraryTarget == "" {
			out.LibraryTarget = output.LibraryTarget
		}
		if out.Filename == "" {
			out.Filename = output.Filename
		}
	}
}
