package ports

// Locator resolves the external tooling a resolve depends on.
//
//go:generate mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type Locator interface {
	// EvaluatorPath returns the build evaluator executable.
	EvaluatorPath() (string, error)

	// InjectionFilePath returns the targets fragment injected into the
	// evaluation. A missing fragment is an installation defect, not a
	// per-call failure.
	InjectionFilePath() (string, error)
}
