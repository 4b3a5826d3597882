package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.refold.dev/refold/internal/adapters/config"
	"go.refold.dev/refold/internal/adapters/evaluator"
	"go.refold.dev/refold/internal/adapters/locator"
	"go.refold.dev/refold/internal/adapters/projgraph"
	"go.refold.dev/refold/internal/adapters/reporter"
	"go.refold.dev/refold/internal/adapters/telemetry"
	"go.refold.dev/refold/internal/core/domain"
	"go.refold.dev/refold/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			evaluator.NodeID,
			projgraph.NodeID,
			reporter.NodeID,
			telemetry.NodeID,
			locator.NodeID,
			config.OptionsNodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			invoker, err := graft.Dep[ports.Invoker](ctx)
			if err != nil {
				return nil, err
			}
			graphs, err := graft.Dep[ports.GraphBuilder](ctx)
			if err != nil {
				return nil, err
			}
			rep, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			loc, err := graft.Dep[ports.Locator](ctx)
			if err != nil {
				return nil, err
			}
			opts, err := graft.Dep[*domain.Options](ctx)
			if err != nil {
				return nil, err
			}
			return New(invoker, graphs, rep, tracer, loc, opts)
		},
	})
}
