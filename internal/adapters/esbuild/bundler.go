// Package esbuild implements the bundler port on top of esbuild's Go API.
package esbuild

import (
	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/slswebpack/internal/core/domain"
	"go.trai.ch/slswebpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Bundler = (*Bundler)(nil)

// Bundler creates esbuild compilers.
type Bundler struct {
	hasher   ports.Hasher
	watchers ports.WatcherFactory
}

// NewBundler creates a Bundler hashing outputs with hasher and watching with watchers.
func NewBundler(hasher ports.Hasher, watchers ports.WatcherFactory) *Bundler {
	return &Bundler{hasher: hasher, watchers: watchers}
}

// NewCompiler validates cfg and creates an esbuild build context for it.
func (b *Bundler) NewCompiler(cfg domain.BuildConfig) (ports.BundleCompiler, error) {
	opts, err := buildOptions(&cfg)
	if err != nil {
		return nil, err
	}

	ctx, ctxErr := api.Context(opts)
	if ctxErr != nil {
		stats := &domain.Stats{Errors: convertMessages(ctxErr.Errors)}
		return nil, zerr.Wrap(zerr.New(stats.Summary()), domain.ErrBundlerSetupFailed.Error())
	}

	return &Compiler{
		cfg:      cfg,
		build:    ctx,
		hasher:   b.hasher,
		watchers: b.watchers,
	}, nil
}
