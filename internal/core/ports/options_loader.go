package ports

import "go.refold.dev/refold/internal/core/domain"

// OptionsLoader loads environment options from configuration and environment
// variables.
//
//go:generate mockgen -source=options_loader.go -destination=mocks/mock_options_loader.go -package=mocks
type OptionsLoader interface {
	// Load resolves the options visible from the given working directory.
	Load(cwd string) (*domain.Options, error)
}
