// Package ports defines the core interfaces for the application.
package ports

// Reporter is the diagnostic channel every component emits through. The
// resolver never writes anywhere else.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Verbose emits a message only visible in verbose mode.
	Verbose(msg string)

	// Output emits a user-facing message, including replayed evaluator
	// output.
	Output(msg string)

	// Warn emits a warning.
	Warn(msg string)

	// Error emits an error, rendering wrapped causes and metadata.
	Error(err error)
}
