// Package config loads the bundler configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/slswebpack/internal/core/domain"
	"go.trai.ch/slswebpack/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration file at path, resolved against servicePath.
// The file holds either a single unit or a list of units.
func (l *Loader) Load(servicePath, path string) ([]domain.BuildConfig, error) {
	configPath := resolvePath(servicePath, path)

	if _, err := os.Stat(configPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrConfigNotFound, "path", configPath)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	data, err := os.ReadFile(configPath) //nolint:gosec // path is provided by the service
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	units, err := decodeUnits(data)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	if len(units) == 0 {
		return nil, zerr.With(domain.ErrEmptyConfig, "path", configPath)
	}

	configs := make([]domain.BuildConfig, 0, len(units))
	for i, unit := range units {
		configs = append(configs, l.toBuildConfig(servicePath, i, unit))
	}
	return configs, nil
}

func decodeUnits(data []byte) ([]unitDTO, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var units []unitDTO
		if err := root.Decode(&units); err != nil {
			return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
		}
		return units, nil
	case yaml.MappingNode:
		var unit unitDTO
		if err := root.Decode(&unit); err != nil {
			return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
		}
		return []unitDTO{unit}, nil
	default:
		err := zerr.New("expected a build unit or a list of build units")
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
}

func (l *Loader) toBuildConfig(servicePath string, index int, unit unitDTO) domain.BuildConfig {
	cfg := domain.BuildConfig{
		Name:       unit.Name,
		Options:    unit.Options,
		WorkingDir: servicePath,
	}

	if len(unit.Entry) > 0 {
		cfg.Entry = make(map[string]string, len(unit.Entry))
		for name, src := range unit.Entry {
			cfg.Entry[name] = resolvePath(servicePath, src)
		}
	}

	if unit.Output != (outputDTO{}) {
		if unit.Output.LibraryTarget != "" && unit.Output.LibraryTarget != string(domain.ModuleFormatCommonJS) {
			l.Logger.Warn(fmt.Sprintf(
				"[Webpack Compiler] unit #%d: libraryTarget %q is not supported, using %s",
				index+1, unit.Output.LibraryTarget, domain.ModuleFormatCommonJS,
			))
		}
		cfg.Output = domain.Output{
			LibraryTarget: domain.ModuleFormatCommonJS,
			Filename:      unit.Output.Filename,
		}
		if cfg.Output.Filename == "" {
			cfg.Output.Filename = domain.OutputFilenameTemplate
		}
		if unit.Output.Path != "" {
			cfg.Output.Path = resolvePath(servicePath, unit.Output.Path)
		}
	}

	if cfg.Options.Tsconfig != "" {
		cfg.Options.Tsconfig = resolvePath(servicePath, cfg.Options.Tsconfig)
	}

	return cfg
}

func resolvePath(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}
