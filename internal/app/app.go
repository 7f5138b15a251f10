// Package app implements the application layer for slswebpack.
package app

import (
	"context"
	"os"
	"slices"

	"go.trai.ch/slswebpack/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/slswebpack/internal/adapters/serverless"         //nolint:depguard // Wired in app layer
	"go.trai.ch/slswebpack/internal/adapters/telemetry"          //nolint:depguard // Wired in app layer
	"go.trai.ch/slswebpack/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/slswebpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// App loads a service, installs the plugin on a host and runs host commands.
type App struct {
	deps Deps
}

// New creates a new App instance.
func New(deps Deps) *App {
	return &App{deps: deps}
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// ServiceFile is the path of the service definition.
	ServiceFile string
	// LogFormat is pretty or json.
	LogFormat string
	// Command is the host command to invoke, e.g. ["webpack", "build"].
	Command []string
	// Trace logs the duration of every lifecycle hook.
	Trace bool
	// Journal is a file build progress is recorded to, one JSON object per line.
	Journal string
}

// Run invokes opts.Command on the service read from opts.ServiceFile.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	if err := a.configureLogger(opts.LogFormat); err != nil {
		return err
	}

	serviceFile := opts.ServiceFile
	if serviceFile == "" {
		serviceFile = domain.DefaultServiceFile
	}

	svc, err := serverless.Load(serviceFile)
	if err != nil {
		return zerr.Wrap(err, "failed to load service")
	}

	deps, closeTelemetry, err := a.runDeps(opts)
	if err != nil {
		return err
	}
	defer closeTelemetry()

	plugin, err := NewPlugin(svc, deps)
	if err != nil {
		return err
	}
	defer func() { _ = plugin.Close() }()

	host := serverless.NewHost(a.deps.Logger, svc)
	plugin.Register(host)

	return host.Invoke(ctx, opts.Command...)
}

// runDeps swaps in the tracer and recorder the run asked for.
// The returned func releases them once the plugin is closed.
func (a *App) runDeps(opts RunOptions) (Deps, func(), error) {
	deps := a.deps
	var closers []func()
	closeAll := func() {
		for _, c := range slices.Backward(closers) {
			c()
		}
	}

	if opts.Trace {
		tracer, shutdown := telemetry.NewTimingTracer(deps.Logger)
		deps.Tracer = tracer
		closers = append(closers, func() { _ = shutdown(context.Background()) })
	}

	if opts.Journal != "" {
		rec, err := progrock.NewJournal(opts.Journal)
		if err != nil {
			closeAll()
			return Deps{}, nil, err
		}
		deps.Telemetry = rec
		closers = append(closers, func() {
			if err := rec.Close(); err != nil {
				deps.Logger.Error(err)
			}
		})
	}

	return deps, closeAll, nil
}

func (a *App) configureLogger(format string) error {
	l, ok := a.deps.Logger.(*logger.Logger)
	if !ok {
		return nil
	}
	return logger.Configure(l, format, os.Stderr)
}
