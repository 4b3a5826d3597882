package projgraph

import (
	"context"

	"github.com/grindlemire/graft"
	"go.refold.dev/refold/internal/core/ports"
)

// NodeID is the unique identifier for the graph builder Graft node.
const NodeID graft.ID = "adapter.graph_builder"

func init() {
	graft.Register(graft.Node[ports.GraphBuilder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.GraphBuilder, error) {
			return NewBuilder(), nil
		},
	})
}
