// Package evaluator launches the external build evaluator and delivers its
// output line by line.
package evaluator

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"sync"

	"go.refold.dev/refold/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// maxLineSize bounds a single evaluator output line.
const maxLineSize = 1024 * 1024

// Invoker implements ports.Invoker using os/exec with separate stdout and
// stderr pipes, so line boundaries and the exit code survive intact.
type Invoker struct{}

// NewInvoker creates a new Invoker.
func NewInvoker() *Invoker {
	return &Invoker{}
}

// Invoke runs the evaluator to completion. Output lines from both streams are
// delivered through onLine; a mutex serializes delivery so the handler can
// append to shared state without its own locking. A non-zero exit is returned
// as the exit code, not as an error.
func (i *Invoker) Invoke(ctx context.Context, inv ports.Invocation, onLine ports.LineHandler) (int, error) {
	cmd := exec.CommandContext(ctx, inv.Path, inv.Args...) //nolint:gosec // evaluator path comes from the locator
	cmd.Dir = inv.WorkingDir

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return -1, zerr.Wrap(err, "failed to open stdout pipe")
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return -1, zerr.Wrap(err, "failed to open stderr pipe")
	}

	if err := cmd.Start(); err != nil {
		return -1, zerr.Wrap(err, "failed to start build evaluator")
	}

	var mu sync.Mutex
	deliver := func(line string) {
		mu.Lock()
		defer mu.Unlock()
		onLine(line)
	}

	// Drain both pipes before Wait; Wait closes them.
	var g errgroup.Group
	g.Go(func() error { return scanLines(stdout, deliver) })
	g.Go(func() error { return scanLines(stderr, deliver) })
	scanErr := g.Wait()

	waitErr := cmd.Wait()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return -1, ctxErr
	}
	if waitErr == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if scanErr != nil {
		waitErr = errors.Join(waitErr, scanErr)
	}
	return -1, zerr.Wrap(waitErr, "build evaluator did not run to completion")
}

// scanLines feeds complete lines to deliver, stripping trailing carriage
// returns.
func scanLines(r io.Reader, deliver func(string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		deliver(strings.TrimSuffix(scanner.Text(), "\r"))
	}
	return scanner.Err()
}
