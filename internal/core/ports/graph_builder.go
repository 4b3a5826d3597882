package ports

import (
	"context"

	"go.refold.dev/refold/internal/core/domain"
)

// GraphBuilder constructs the project dependency graph for an entry project.
// It is a process-wide collaborator the resolver queries but never mutates.
//
//go:generate mockgen -source=graph_builder.go -destination=mocks/mock_graph_builder.go -package=mocks
type GraphBuilder interface {
	// BuildGraph builds the graph rooted at entryProject under the given
	// global properties. On failure it may return a joined error whose inner
	// errors are inspected individually; it never returns a partial graph.
	BuildGraph(ctx context.Context, entryProject string, globalProperties map[string]string) (*domain.ProjectGraph, error)
}
