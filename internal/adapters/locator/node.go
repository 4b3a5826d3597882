package locator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.refold.dev/refold/internal/adapters/config"
	"go.refold.dev/refold/internal/core/domain"
	"go.refold.dev/refold/internal/core/ports"
)

// NodeID is the unique identifier for the locator Graft node.
const NodeID graft.ID = "adapter.locator"

func init() {
	graft.Register(graft.Node[ports.Locator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.OptionsNodeID},
		Run: func(ctx context.Context) (ports.Locator, error) {
			opts, err := graft.Dep[*domain.Options](ctx)
			if err != nil {
				return nil, err
			}
			return New(opts)
		},
	})
}
