package domain

import (
	"errors"
	"sort"

	"github.com/dominikbraun/graph"
	"go.trai.ch/zerr"
)

// ProjectGraph is the directed graph of build projects connected by
// project-to-project references. It is produced by the graph collaborator and
// consumed read-only; a resolve never mutates or caches it.
type ProjectGraph struct {
	root string
	g    graph.Graph[string, string]
}

// NewProjectGraph returns a graph rooted at the given project path.
func NewProjectGraph(root string) *ProjectGraph {
	g := graph.New(graph.StringHash, graph.Directed(), graph.PreventCycles())
	_ = g.AddVertex(root)
	return &ProjectGraph{root: root, g: g}
}

// Root returns the entry project path the graph was built from.
func (p *ProjectGraph) Root() string {
	return p.root
}

// AddProject adds a project node. Adding a known project is a no-op.
func (p *ProjectGraph) AddProject(path string) error {
	err := p.g.AddVertex(path)
	if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
		return zerr.Wrap(err, "failed to add project")
	}
	return nil
}

// AddReference records a project-to-project reference edge. Duplicate edges
// are tolerated; an edge that would close a cycle is rejected.
func (p *ProjectGraph) AddReference(from, to string) error {
	err := p.g.AddEdge(from, to)
	switch {
	case err == nil, errors.Is(err, graph.ErrEdgeAlreadyExists):
		return nil
	case errors.Is(err, graph.ErrEdgeCreatesCycle):
		return zerr.With(zerr.With(ErrGraphCycle, "from", from), "to", to)
	default:
		return zerr.Wrap(err, "failed to add project reference")
	}
}

// Projects returns all project paths in the graph, sorted.
func (p *ProjectGraph) Projects() ([]string, error) {
	adjacency, err := p.g.AdjacencyMap()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read project graph")
	}

	projects := make([]string, 0, len(adjacency))
	for project := range adjacency {
		projects = append(projects, project)
	}
	sort.Strings(projects)
	return projects, nil
}

// References returns the projects directly referenced by the given project,
// sorted.
func (p *ProjectGraph) References(project string) ([]string, error) {
	adjacency, err := p.g.AdjacencyMap()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read project graph")
	}

	edges, ok := adjacency[project]
	if !ok {
		return nil, zerr.With(ErrProjectNotFound, "project", project)
	}

	refs := make([]string, 0, len(edges))
	for target := range edges {
		refs = append(refs, target)
	}
	sort.Strings(refs)
	return refs, nil
}
