package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.refold.dev/refold/cmd/refold/commands"
	"go.refold.dev/refold/internal/app"
	"go.refold.dev/refold/internal/build"
)

type mockApp struct {
	resolveFunc func(ctx context.Context, rootProject string, opts app.ResolveOptions) error
}

func (m *mockApp) Resolve(ctx context.Context, rootProject string, opts app.ResolveOptions) error {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, rootProject, opts)
	}
	return nil
}

func TestCommands_Resolve(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedProject string
		var capturedOpts app.ResolveOptions
		called := false

		mock := &mockApp{
			resolveFunc: func(_ context.Context, rootProject string, opts app.ResolveOptions) error {
				capturedProject = rootProject
				capturedOpts = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"resolve", "app.csproj", "--graph", "required", "--json", "--verbose"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "app.csproj", capturedProject)
		assert.Equal(t, "required", capturedOpts.Graph)
		assert.True(t, capturedOpts.JSON)
		assert.True(t, capturedOpts.Verbose)
		assert.Empty(t, capturedOpts.BuildArgs)
	})

	t.Run("forwards build arguments after dash", func(t *testing.T) {
		var capturedOpts app.ResolveOptions

		mock := &mockApp{
			resolveFunc: func(_ context.Context, _ string, opts app.ResolveOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"resolve", "app.csproj", "--", "/p:Configuration=Release", "-nodeReuse:false"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"/p:Configuration=Release", "-nodeReuse:false"}, capturedOpts.BuildArgs)
	})

	t.Run("returns error on resolve failure", func(t *testing.T) {
		mock := &mockApp{
			resolveFunc: func(_ context.Context, _ string, _ app.ResolveOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"resolve", "app.csproj"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("requires a project argument", func(t *testing.T) {
		mock := &mockApp{
			resolveFunc: func(_ context.Context, _ string, _ app.ResolveOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"resolve"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
