package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when the bundler configuration file does not exist.
	ErrConfigNotFound = zerr.New("[Webpack Compiler] cannot find webpack configuration file")

	// ErrConfigReadFailed is returned when the bundler configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("[Webpack Compiler] failed to read webpack configuration file")

	// ErrConfigParseFailed is returned when the bundler configuration file cannot be parsed.
	ErrConfigParseFailed = zerr.New("[Webpack Compiler] failed to parse webpack configuration file")

	// ErrEmptyConfig is returned when the configuration file declares no build units.
	ErrEmptyConfig = zerr.New("[Webpack Compiler] webpack configuration declares no build units")

	// ErrServiceReadFailed is returned when the service definition cannot be read.
	ErrServiceReadFailed = zerr.New("[Serverless] failed to read service file")

	// ErrServiceParseFailed is returned when the service definition cannot be parsed.
	ErrServiceParseFailed = zerr.New("[Serverless] failed to parse service file")

	// ErrFunctionNotFound is returned when a function is not declared in the service.
	ErrFunctionNotFound = zerr.New("[Serverless] function not found")

	// ErrUnknownCommand is returned when the host is asked to run a command nobody registered.
	ErrUnknownCommand = zerr.New("[Serverless] unknown command")

	// ErrInvalidHandler is returned when a handler locator has no exported symbol.
	ErrInvalidHandler = zerr.New("[Entry Resolver] invalid handler, expected <path>.<symbol>")

	// ErrEntryNotFound is returned when no source file matches a declared handler.
	ErrEntryNotFound = zerr.New("[Entry Resolver] no source file matches handler")

	// ErrAmbiguousEntry is returned when more than one source file matches a declared handler.
	ErrAmbiguousEntry = zerr.New("[Entry Resolver] more than one source file matches handler")

	// ErrEntryGlobFailed is returned when the handler glob pattern cannot be evaluated.
	ErrEntryGlobFailed = zerr.New("[Entry Resolver] failed to glob handler path")

	// ErrBuildFailed is returned when the bundler reports errors for a build unit.
	ErrBuildFailed = zerr.New("[Webpack Compiler] build failure")

	// ErrBundlerSetupFailed is returned when the bundler rejects a build unit before building.
	ErrBundlerSetupFailed = zerr.New("[Webpack Compiler] failed to set up bundler")

	// ErrOutputWriteFailed is returned when a bundled file cannot be written to disk.
	ErrOutputWriteFailed = zerr.New("[Webpack Compiler] failed to write output file")

	// ErrWatchFailed is returned when watch mode cannot be started for a build unit.
	ErrWatchFailed = zerr.New("[Webpack Compiler] failed to start watching")
)
