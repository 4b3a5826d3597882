package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.refold.dev/refold/internal/adapters/reporter"
	"go.refold.dev/refold/internal/core/ports"
)

// NodeID is the unique identifier for the tracer Graft node.
const NodeID graft.ID = "adapter.tracer"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{reporter.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			rep, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}
			NewProvider(rep)
			return NewOTelTracer(), nil
		},
	})
}
