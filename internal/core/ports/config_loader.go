package ports

import "go.trai.ch/slswebpack/internal/core/domain"

// ConfigLoader defines the interface for loading the bundler configuration file.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path, resolved against servicePath,
	// and returns its build units in declaration order.
	Load(servicePath, path string) ([]domain.BuildConfig, error)
}
