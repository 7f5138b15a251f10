package entry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/slswebpack/internal/adapters/fs" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/slswebpack/internal/core/ports"
)

// ResolverNodeID is the unique identifier for the entry resolver Graft node.
const ResolverNodeID graft.ID = "engine.entry_resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.MatcherNodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			matcher, err := graft.Dep[ports.FileMatcher](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(matcher), nil
		},
	})
}
