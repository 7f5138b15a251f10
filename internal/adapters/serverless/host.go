package serverless

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/slswebpack/internal/core/domain"
	"go.trai.ch/slswebpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Host = (*Host)(nil)

// Built-in commands.
var (
	// PackageCommand packages the service for deployment.
	PackageCommand = domain.Command{
		Path:            []string{"package"},
		Usage:           "Packages the service for deployment",
		LifecycleEvents: []string{domain.EventPackageCreateArtifacts},
	}
	// OfflineCommand serves the service locally until interrupted.
	OfflineCommand = domain.Command{
		Path:            []string{"offline"},
		Usage:           "Serves the service locally",
		LifecycleEvents: []string{domain.EventOfflineStart},
	}
)

// Host runs commands and fires the hooks plugins bound to their lifecycle events.
// Hooks are registered before Invoke is called and are not safe for concurrent registration.
type Host struct {
	logger   ports.Logger
	service  *Service
	commands map[string]domain.Command
	hooks    map[string][]ports.HookFunc
}

// NewHost creates a host for svc with the built-in package and offline commands.
func NewHost(logger ports.Logger, svc *Service) *Host {
	h := &Host{
		logger:   logger,
		service:  svc,
		commands: make(map[string]domain.Command),
		hooks:    make(map[string][]ports.HookFunc),
	}

	h.AddCommand(PackageCommand)
	h.AddHook(eventName(PackageCommand.Path, domain.EventPackageCreateArtifacts), h.reportArtifacts)

	h.AddCommand(OfflineCommand)
	h.AddHook(eventName(OfflineCommand.Path, domain.EventOfflineStart), h.serve)

	return h
}

// AddCommand declares a command. Declaring a command twice replaces it.
func (h *Host) AddCommand(cmd domain.Command) {
	h.commands[commandKey(cmd.Path)] = cmd
}

// AddHook binds fn to event. Hooks of one event run in registration order.
func (h *Host) AddHook(event string, fn ports.HookFunc) {
	h.hooks[event] = append(h.hooks[event], fn)
}

// Invoke runs the before, main and after hooks of every lifecycle event of the
// command, stopping at the first failing hook.
func (h *Host) Invoke(ctx context.Context, command ...string) error {
	cmd, ok := h.commands[commandKey(command)]
	if !ok {
		return zerr.With(domain.ErrUnknownCommand, "command", strings.Join(command, " "))
	}

	for _, event := range cmd.LifecycleEvents {
		name := eventName(cmd.Path, event)
		for _, phase := range []string{"before:" + name, name, "after:" + name} {
			if err := h.fire(ctx, phase); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *Host) fire(ctx context.Context, event string) error {
	for _, fn := range h.hooks[event] {
		if err := fn(ctx); err != nil {
			return zerr.With(err, "hook", event)
		}
	}
	return nil
}

func (h *Host) reportArtifacts(_ context.Context) error {
	for _, name := range h.service.AllFunctions() {
		fn, err := h.service.Function(name)
		if err != nil {
			return err
		}
		h.logger.Info(fmt.Sprintf("[Serverless] %s: %s", fn.Name, fn.Handler))
	}
	return nil
}

func (h *Host) serve(ctx context.Context) error {
	h.logger.Info(fmt.Sprintf("[Serverless] offline: serving %s, press Ctrl+C to stop", h.service.Name()))
	<-ctx.Done()
	h.logger.Info("[Serverless] offline: stopped")
	return nil
}

func commandKey(path []string) string {
	return strings.Join(path, " ")
}

func eventName(path []string, event string) string {
	return strings.Join(path, ":") + ":" + event
}
