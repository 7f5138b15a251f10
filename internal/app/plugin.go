package app

import (
	"context"
	"errors"
	"sync"

	"go.trai.ch/slswebpack/internal/core/domain"
	"go.trai.ch/slswebpack/internal/core/ports"
	"go.trai.ch/slswebpack/internal/engine/compiler"
	"go.trai.ch/slswebpack/internal/engine/entry"
	"go.trai.ch/zerr"
)

// BuildCommand is the command the plugin adds to the host.
var BuildCommand = domain.Command{
	Path:            []string{"webpack", "build"},
	Usage:           "Bundles the service functions",
	LifecycleEvents: []string{domain.EventWebpackBuildCompile},
}

// Deps are the collaborators a Plugin drives.
type Deps struct {
	Loader    ports.ConfigLoader
	Resolver  *entry.Resolver
	Bundler   ports.Bundler
	Logger    ports.Logger
	Telemetry ports.Telemetry
	Tracer    ports.Tracer
}

// Plugin resolves entries, rewires handlers and runs the bundler at the host's lifecycle hooks.
type Plugin struct {
	svc     ports.Service
	deps    Deps
	options domain.Options

	mu       sync.Mutex
	watching []*compiler.Compiler
}

// NewPlugin reads the plugin options from the service's custom block.
// A missing block yields the defaults.
func NewPlugin(svc ports.Service, deps Deps) (*Plugin, error) {
	var opts domain.Options
	if _, err := svc.Custom(domain.PluginID, &opts); err != nil {
		return nil, zerr.With(err, "plugin", domain.PluginID)
	}

	return &Plugin{
		svc:     svc,
		deps:    deps,
		options: opts.WithDefaults(),
	}, nil
}

// Options returns the effective plugin options.
func (p *Plugin) Options() domain.Options {
	return p.options
}

// Register adds the build command and binds the lifecycle hooks.
func (p *Plugin) Register(host ports.Host) {
	host.AddCommand(BuildCommand)
	host.AddHook(domain.HookBeforeOfflineStart, p.traced(domain.HookBeforeOfflineStart, p.BeforeOfflineStart))
	host.AddHook(domain.HookBeforeWebpackBuild, p.traced(domain.HookBeforeWebpackBuild, p.BeforeWebpackBuild))
	host.AddHook(domain.HookBeforePackageArtifacts, p.traced(domain.HookBeforePackageArtifacts, p.BeforeWebpackBuild))
}

func (p *Plugin) traced(name string, fn ports.HookFunc) ports.HookFunc {
	return func(ctx context.Context) error {
		ctx, span := p.deps.Tracer.Start(ctx, name)
		defer span.End()

		span.SetAttribute("service.path", p.svc.ServicePath())
		span.SetAttribute("functions", p.svc.AllFunctions())

		err := fn(ctx)
		span.RecordError(err)
		return err
	}
}

// BeforeWebpackBuild builds every unit once. It backs both the build command and packaging.
func (p *Plugin) BeforeWebpackBuild(ctx context.Context) error {
	c, err := p.prepare()
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	if _, err := c.RunOnce(ctx); err != nil {
		return errors.Join(domain.ErrBuildFailed, err)
	}
	return nil
}

// BeforeOfflineStart starts watch mode. The watchers run until ctx is cancelled or Close is called.
func (p *Plugin) BeforeOfflineStart(ctx context.Context) error {
	c, err := p.prepare()
	if err != nil {
		return err
	}

	if err := c.Watch(ctx); err != nil {
		_ = c.Close()
		return err
	}

	p.mu.Lock()
	p.watching = append(p.watching, c)
	p.mu.Unlock()
	return nil
}

// prepare loads the build units, resolves the entries, rewires the handlers
// and creates the compiler.
func (p *Plugin) prepare() (*compiler.Compiler, error) {
	servicePath := p.svc.ServicePath()

	configs, err := p.deps.Loader.Load(servicePath, p.options.Configuration)
	if err != nil {
		return nil, err
	}

	entries, err := p.deps.Resolver.Resolve(p.svc)
	if err != nil {
		return nil, err
	}

	output := entry.ConfigureOutput(servicePath, p.options)
	if err := entry.RewriteHandlers(p.svc, servicePath, output); err != nil {
		return nil, err
	}
	entry.ApplyBuildTargets(configs, entries, output)

	return compiler.New(configs, p.deps.Bundler, p.deps.Logger, p.deps.Telemetry)
}

// Close stops watch mode.
func (p *Plugin) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs error
	for _, c := range p.watching {
		errs = errors.Join(errs, c.Close())
	}
	p.watching = nil
	return errs
}
