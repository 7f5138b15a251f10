package ports

import (
	"context"

	"go.trai.ch/slswebpack/internal/core/domain"
)

// Bundler creates compilers for build units.
//
//go:generate go run go.uber.org/mock/mockgen -source=bundler.go -destination=mocks/mock_bundler.go -package=mocks
type Bundler interface {
	// NewCompiler validates cfg and prepares a compiler for it.
	NewCompiler(cfg domain.BuildConfig) (BundleCompiler, error)
}

// WatchHooks receives the lifecycle of every build performed in watch mode.
type WatchHooks struct {
	// OnStart is called right before a build starts.
	OnStart func()
	// OnDone is called when a build finishes, with its stats or the error that stopped it.
	OnDone func(stats *domain.Stats, err error)
}

// BundleCompiler builds a single unit.
type BundleCompiler interface {
	// Run builds the unit once. Compile errors are reported through the returned
	// stats; err is only set when the bundler itself failed.
	Run(ctx context.Context) (*domain.Stats, error)
	// Watch builds the unit and rebuilds it whenever one of its inputs changes,
	// until ctx is cancelled. It returns once watching has started.
	Watch(ctx context.Context, hooks WatchHooks) error
	// Close releases the resources held by the compiler.
	Close() error
}
