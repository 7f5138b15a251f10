package config

import "go.trai.ch/slswebpack/internal/core/domain"

// unitDTO is one build unit as written in the configuration file.
type unitDTO struct {
	Name    string                `yaml:"name"`
	Entry   map[string]string     `yaml:"entry"`
	Output  outputDTO             `yaml:"output"`
	Options domain.BundlerOptions `yaml:"options"`
}

// outputDTO is the output block of a build unit.
type outputDTO struct {
	LibraryTarget string `yaml:"libraryTarget"`
	Path          string `yaml:"path"`
	Filename      string `yaml:"filename"`
}
