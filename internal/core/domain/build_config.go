package domain

import (
	"maps"
	"slices"
)

// ModuleFormat is the module system bundles are emitted in.
type ModuleFormat string

const (
	// ModuleFormatCommonJS emits CommonJS modules, the format serverless runtimes load.
	ModuleFormatCommonJS ModuleFormat = "commonjs"

	// OutputFilenameTemplate names each bundle after its entry.
	OutputFilenameTemplate = "[name].js"
)

// Output describes where and how a build unit writes its bundles.
type Output struct {
	LibraryTarget ModuleFormat
	Path          string
	Filename      string
}

// BundlerOptions carries bundler specific settings passed through untouched.
type BundlerOptions struct {
	Platform  string            `yaml:"platform"`
	Target    string            `yaml:"target"`
	Minify    bool              `yaml:"minify"`
	Sourcemap bool              `yaml:"sourcemap"`
	External  []string          `yaml:"external"`
	Define    map[string]string `yaml:"define"`
	Loader    map[string]string `yaml:"loader"`
	NodePaths []string          `yaml:"nodePaths"`
	Tsconfig  string            `yaml:"tsconfig"`
}

// BuildConfig is one bundler configuration unit.
type BuildConfig struct {
	// Name is the optional display name of the unit.
	Name string
	// Entry maps an entry name to the absolute path of its source file.
	Entry map[string]string
	// Output is where the unit writes its bundles.
	Output Output
	// Options are bundler specific settings.
	Options BundlerOptions
	// WorkingDir is the directory relative imports and paths resolve against.
	WorkingDir string
}

// EntryNames returns the unit's entry names in sorted order.
func (c *BuildConfig) EntryNames() []string {
	return slices.Sorted(maps.Keys(c.Entry))
}
