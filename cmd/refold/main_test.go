package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.refold.dev/refold/internal/app"
	"go.refold.dev/refold/internal/core/domain"
	"go.refold.dev/refold/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type stubResolver struct {
	result *domain.EvaluationResult
	err    error
}

func (s *stubResolver) Resolve(context.Context, string, []string, domain.GraphMode) (*domain.EvaluationResult, error) {
	return s.result, s.err
}

func provider(components *app.Components) ComponentProvider {
	return func(context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	rep := mocks.NewMockReporter(ctrl)

	application := app.New(&stubResolver{}, rep)
	stderr := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"version"}, stderr, provider(&app.Components{
		App:      application,
		Reporter: rep,
	}))
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	failing := func(context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, failing)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ResolveFailure verifies the exit code when the resolve produced no
// result; the failure was already reported, so nothing more is written.
func TestRun_ResolveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	rep := mocks.NewMockReporter(ctrl)
	rep.EXPECT().Verbose(gomock.Any()).AnyTimes()
	// No Error expectation: the resolver already reported the failure.

	application := app.New(&stubResolver{result: nil, err: nil}, rep)
	stderr := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"resolve", "app.csproj"}, stderr, provider(&app.Components{
		App:      application,
		Reporter: rep,
	}))
	assert.Equal(t, 1, exitCode)
}

// TestRun_ExecutionError verifies that other errors are reported and exit 1.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	rep := mocks.NewMockReporter(ctrl)
	rep.EXPECT().Verbose(gomock.Any()).AnyTimes()
	rep.EXPECT().Error(gomock.Any())

	application := app.New(&stubResolver{err: errors.New("broken contract")}, rep)
	stderr := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"resolve", "app.csproj"}, stderr, provider(&app.Components{
		App:      application,
		Reporter: rep,
	}))
	assert.Equal(t, 1, exitCode)
}
