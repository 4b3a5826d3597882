package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.refold.dev/refold/internal/adapters/reporter"
	"go.refold.dev/refold/internal/core/ports"
	"go.refold.dev/refold/internal/engine/resolver"
)

// Components aggregates the fully wired application entry points.
type Components struct {
	App      *App
	Reporter ports.Reporter
}

// NodeID is the unique identifier for the components Graft node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{resolver.NodeID, reporter.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			res, err := graft.Dep[*resolver.Resolver](ctx)
			if err != nil {
				return nil, err
			}
			rep, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{
				App:      New(res, rep),
				Reporter: rep,
			}, nil
		},
	})
}
