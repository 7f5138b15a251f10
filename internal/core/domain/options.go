package domain

const (
	// PluginID is the key of this plugin's block under the service's custom section.
	PluginID = "serverless-webpack-compiler"

	// DefaultConfiguration is the bundler configuration file used when none is configured.
	DefaultConfiguration = "webpack.config.yaml"

	// DefaultOutputDirectory is the directory, relative to the service, bundles are written to.
	DefaultOutputDirectory = "package"

	// DefaultServiceFile is the service definition read by the CLI.
	DefaultServiceFile = "serverless.yml"
)

// Options holds the user supplied plugin settings.
type Options struct {
	// Configuration is the path of the bundler configuration file, relative to the service.
	Configuration string `yaml:"configuration"`
	// OutputDirectory is where bundles are written, relative to the service.
	OutputDirectory string `yaml:"outputDirectory"`
}

// WithDefaults returns a copy of o with empty fields set to their defaults.
func (o Options) WithDefaults() Options {
	if o.Configuration == "" {
		o.Configuration = DefaultConfiguration
	}
	if o.OutputDirectory == "" {
		o.OutputDirectory = DefaultOutputDirectory
	}
	return o
}
