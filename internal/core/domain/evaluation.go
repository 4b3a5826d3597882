package domain

// GraphMode states whether a resolve should also construct the project graph,
// and how graph construction failures are policed. It is deliberately a
// three-valued enumeration: "not requested" is distinct from "requested but
// allowed to fail".
type GraphMode uint8

const (
	// GraphNone skips graph construction entirely.
	GraphNone GraphMode = iota
	// GraphOptional requests the graph but downgrades construction failures
	// to warnings; the resolve proceeds without a graph.
	GraphOptional
	// GraphRequired requests the graph and fails the whole resolve when it
	// cannot be constructed.
	GraphRequired
)

// String returns the CLI-facing name of the mode.
func (m GraphMode) String() string {
	switch m {
	case GraphOptional:
		return "optional"
	case GraphRequired:
		return "required"
	case GraphNone:
		return "none"
	}
	return "none"
}

// ParseGraphMode maps a CLI-facing name onto a GraphMode.
func ParseGraphMode(name string) (GraphMode, error) {
	switch name {
	case "", "none":
		return GraphNone, nil
	case "optional":
		return GraphOptional, nil
	case "required":
		return GraphRequired, nil
	}
	return GraphNone, ErrInvalidGraphMode
}

// EvaluationResult is the sole output of a successful resolve.
type EvaluationResult struct {
	// Files is the merged watch set.
	Files FileSet

	// Graph is the project dependency graph, present only when the caller
	// requested one and construction succeeded. Never a partial graph.
	Graph *ProjectGraph
}
