package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/slswebpack/internal/core/ports"
)

// TracerNodeID is the unique identifier for the tracer Graft node.
// Runs swap in a timing tracer when they ask for one.
const TracerNodeID graft.ID = "adapter.tracer"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			return NewNoOpTracer(), nil
		},
	})
}
