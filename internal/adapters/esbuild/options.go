package esbuild

import (
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/slswebpack/internal/core/domain"
	"go.trai.ch/zerr"
)

const nameToken = "[name]"

var platforms = map[string]api.Platform{
	"":        api.PlatformNode,
	"node":    api.PlatformNode,
	"browser": api.PlatformBrowser,
	"neutral": api.PlatformNeutral,
}

var languageTargets = map[string]api.Target{
	"es2015": api.ES2015,
	"es2016": api.ES2016,
	"es2017": api.ES2017,
	"es2018": api.ES2018,
	"es2019": api.ES2019,
	"es2020": api.ES2020,
	"es2021": api.ES2021,
	"es2022": api.ES2022,
	"esnext": api.ESNext,
}

var loaders = map[string]api.Loader{
	"base64":  api.LoaderBase64,
	"binary":  api.LoaderBinary,
	"copy":    api.LoaderCopy,
	"css":     api.LoaderCSS,
	"dataurl": api.LoaderDataURL,
	"empty":   api.LoaderEmpty,
	"file":    api.LoaderFile,
	"js":      api.LoaderJS,
	"json":    api.LoaderJSON,
	"jsx":     api.LoaderJSX,
	"text":    api.LoaderText,
	"ts":      api.LoaderTS,
	"tsx":     api.LoaderTSX,
}

// buildOptions translates a build unit into esbuild options. Output is kept in
// memory; the compiler writes the files itself so it can hash them.
func buildOptions(cfg *domain.BuildConfig) (api.BuildOptions, error) {
	if cfg.Output.LibraryTarget != "" && cfg.Output.LibraryTarget != domain.ModuleFormatCommonJS {
		return api.BuildOptions{}, zerr.With(setupError("unsupported library target"), "libraryTarget", cfg.Output.LibraryTarget)
	}
	if cfg.Output.Path == "" {
		return api.BuildOptions{}, setupError("output path is not configured")
	}
	if len(cfg.Entry) == 0 {
		return api.BuildOptions{}, setupError("no entries are configured")
	}

	opts := api.BuildOptions{
		AbsWorkingDir: cfg.WorkingDir,
		Bundle:        true,
		Write:         false,
		Metafile:      true,
		LogLevel:      api.LogLevelSilent,
		Format:        api.FormatCommonJS,
		Outdir:        cfg.Output.Path,
		External:      cfg.Options.External,
		Define:        cfg.Options.Define,
		NodePaths:     cfg.Options.NodePaths,
		Tsconfig:      cfg.Options.Tsconfig,
	}

	for _, name := range cfg.EntryNames() {
		opts.EntryPointsAdvanced = append(opts.EntryPointsAdvanced, api.EntryPoint{
			InputPath:  cfg.Entry[name],
			OutputPath: name,
		})
	}

	if err := applyFilename(&opts, cfg.Output.Filename); err != nil {
		return api.BuildOptions{}, err
	}

	platform, ok := platforms[cfg.Options.Platform]
	if !ok {
		return api.BuildOptions{}, zerr.With(setupError("unsupported platform"), "platform", cfg.Options.Platform)
	}
	opts.Platform = platform

	if err := applyTarget(&opts, cfg.Options.Target); err != nil {
		return api.BuildOptions{}, err
	}

	if cfg.Options.Minify {
		opts.MinifyWhitespace = true
		opts.MinifyIdentifiers = true
		opts.MinifySyntax = true
	}
	if cfg.Options.Sourcemap {
		opts.Sourcemap = api.SourceMapLinked
	}

	if len(cfg.Options.Loader) > 0 {
		opts.Loader = make(map[string]api.Loader, len(cfg.Options.Loader))
		for ext, name := range cfg.Options.Loader {
			loader, ok := loaders[name]
			if !ok {
				return api.BuildOptions{}, zerr.With(setupError("unsupported loader"), "loader", name)
			}
			opts.Loader[ext] = loader
		}
	}

	if opts.AbsWorkingDir == "" {
		if first := opts.EntryPointsAdvanced[0].InputPath; filepath.IsAbs(first) {
			opts.AbsWorkingDir = filepath.Dir(first)
		}
	}

	return opts, nil
}

// applyFilename supports templates of the form [name]<extension>.
func applyFilename(opts *api.BuildOptions, filename string) error {
	if filename == "" || filename == domain.OutputFilenameTemplate {
		return nil
	}
	ext, ok := strings.CutPrefix(filename, nameToken)
	if !ok || !strings.HasPrefix(ext, ".") || strings.Contains(ext, "/") {
		return zerr.With(setupError("unsupported output filename"), "filename", filename)
	}
	opts.OutExtension = map[string]string{".js": ext}
	return nil
}

// applyTarget accepts an esbuild language target (es2020) or a node version (node18).
func applyTarget(opts *api.BuildOptions, target string) error {
	target = strings.ToLower(strings.TrimSpace(target))
	if target == "" {
		return nil
	}
	if version, ok := strings.CutPrefix(target, "node"); ok && version != "" {
		opts.Engines = []api.Engine{{Name: api.EngineNode, Version: version}}
		return nil
	}
	lang, ok := languageTargets[target]
	if !ok {
		return zerr.With(setupError("unsupported target"), "target", target)
	}
	opts.Target = lang
	return nil
}

func setupError(msg string) error {
	return zerr.Wrap(zerr.New(msg), domain.ErrBundlerSetupFailed.Error())
}
