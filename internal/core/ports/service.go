package ports

import (
	"context"

	"go.trai.ch/slswebpack/internal/core/domain"
)

// Service is the in-memory service definition owned by the orchestration host.
//
//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks
type Service interface {
	// ServicePath returns the absolute root directory of the service.
	ServicePath() string
	// AllFunctions returns the names of all declared functions in sorted order.
	AllFunctions() []string
	// Function returns the current definition of the named function.
	Function(name string) (domain.Function, error)
	// OriginalHandler returns the handler the function was declared with, before any rewrite.
	OriginalHandler(name string) (string, error)
	// SetHandler replaces the handler of the named function.
	SetHandler(name, handler string) error
	// Custom decodes the custom settings block stored under key into out.
	// It reports false when the block is absent.
	Custom(key string, out any) (bool, error)
}

// HookFunc is invoked when the host reaches the lifecycle event it was bound to.
type HookFunc func(ctx context.Context) error

// Host is the orchestration framework plugins register against.
type Host interface {
	// AddCommand declares a command and the lifecycle events it walks through.
	AddCommand(cmd domain.Command)
	// AddHook binds fn to a lifecycle event such as "before:package:createDeploymentArtifacts".
	AddHook(event string, fn HookFunc)
	// Invoke runs the command, firing the bound hooks for each of its lifecycle events.
	Invoke(ctx context.Context, command ...string) error
}
