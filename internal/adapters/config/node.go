package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.refold.dev/refold/internal/core/domain"
	"go.refold.dev/refold/internal/core/ports"
)

const (
	// LoaderNodeID is the unique identifier for the options loader Graft node.
	LoaderNodeID graft.ID = "adapter.options_loader"
	// OptionsNodeID is the unique identifier for the resolved options node.
	OptionsNodeID graft.ID = "adapter.options"
)

func init() {
	graft.Register(graft.Node[ports.OptionsLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.OptionsLoader, error) {
			return NewLoader(), nil
		},
	})

	graft.Register(graft.Node[*domain.Options]{
		ID:        OptionsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{LoaderNodeID},
		Run: func(ctx context.Context) (*domain.Options, error) {
			loader, err := graft.Dep[ports.OptionsLoader](ctx)
			if err != nil {
				return nil, err
			}
			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			return loader.Load(cwd)
		},
	})
}
