package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/slswebpack/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/slswebpack/internal/adapters/esbuild"            //nolint:depguard // Wired in app layer
	"go.trai.ch/slswebpack/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/slswebpack/internal/adapters/telemetry"          //nolint:depguard // Wired in app layer
	"go.trai.ch/slswebpack/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/slswebpack/internal/core/ports"
	"go.trai.ch/slswebpack/internal/engine/entry"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			entry.ResolverNodeID,
			esbuild.NodeID,
			logger.NodeID,
			progrock.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[*entry.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	bundler, err := graft.Dep[ports.Bundler](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	rec, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(Deps{
		Loader:    loader,
		Resolver:  resolver,
		Bundler:   bundler,
		Logger:    log,
		Telemetry: rec,
		Tracer:    tracer,
	}), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	rec, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       a,
		Logger:    log,
		Telemetry: rec,
	}, nil
}
