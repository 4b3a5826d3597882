package ports

import "context"

// Invocation describes a single run of the build evaluator.
type Invocation struct {
	// Path is the evaluator executable.
	Path string
	// Args is the full argument vector, excluding the program name.
	Args []string
	// WorkingDir is the directory the evaluator runs in, normally the root
	// project's directory.
	WorkingDir string
}

// LineHandler receives one output line at a time. Lines may be delivered
// from a different goroutine than the caller's; implementations of Invoker
// serialize calls so a handler never runs concurrently with itself.
type LineHandler func(line string)

// Invoker launches the build evaluator and streams its output.
//
//go:generate mockgen -source=invoker.go -destination=mocks/mock_invoker.go -package=mocks
type Invoker interface {
	// Invoke runs the evaluator to completion and returns its exit code.
	// A non-zero exit is not an error; the error return is reserved for
	// launch failures and cancellation.
	Invoke(ctx context.Context, inv Invocation, onLine LineHandler) (int, error)
}
