package esbuild

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/slswebpack/internal/adapters/fs"
	"go.trai.ch/slswebpack/internal/adapters/watcher"
	"go.trai.ch/slswebpack/internal/core/ports"
)

// NodeID is the unique identifier for the bundler Graft node.
const NodeID graft.ID = "adapter.esbuild"

func init() {
	graft.Register(graft.Node[ports.Bundler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID, watcher.FactoryNodeID},
		Run: func(ctx context.Context) (ports.Bundler, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			watchers, err := graft.Dep[ports.WatcherFactory](ctx)
			if err != nil {
				return nil, err
			}
			return NewBundler(hasher, watchers), nil
		},
	})
}
