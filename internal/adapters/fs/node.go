package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/slswebpack/internal/core/ports"
)

const (
	// MatcherNodeID is the unique identifier for the file matcher Graft node.
	MatcherNodeID graft.ID = "adapter.fs.matcher"
	// HasherNodeID is the unique identifier for the content hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// WalkerNodeID is the unique identifier for the directory walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
)

func init() {
	graft.Register(graft.Node[ports.FileMatcher]{
		ID:        MatcherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileMatcher, error) {
			return NewMatcher(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})
}
