package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.refold.dev/refold/internal/adapters/config"
	"go.refold.dev/refold/internal/core/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o644))
}

func TestLoad_DefaultsWithoutConfig(t *testing.T) {
	loader := config.NewLoader()

	opts, err := loader.Load(t.TempDir())
	require.NoError(t, err)

	assert.False(t, opts.Debug)
	assert.True(t, opts.ContentFiles)
	assert.Empty(t, opts.DiagnosticsDir)
	assert.Empty(t, opts.EvaluatorPath)
}

func TestLoad_ReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
debug: true
contentFiles: false
diagnosticsDir: /var/log/refold
evaluator: /opt/eval/msbuild
`)

	opts, err := config.NewLoader().Load(dir)
	require.NoError(t, err)

	assert.True(t, opts.Debug)
	assert.False(t, opts.ContentFiles)
	assert.Equal(t, "/var/log/refold", opts.DiagnosticsDir)
	assert.Equal(t, "/opt/eval/msbuild", opts.EvaluatorPath)
}

func TestLoad_WalksUpToConfigFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "app")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	writeConfig(t, root, "debug: true\n")

	opts, err := config.NewLoader().Load(nested)
	require.NoError(t, err)
	assert.True(t, opts.Debug)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "debug: true\ncontentFiles: true\n")

	t.Setenv(config.EnvDebug, "false")
	t.Setenv(config.EnvContentFiles, "0")
	t.Setenv(config.EnvDiagnosticsDir, "/tmp/diag")
	t.Setenv(config.EnvEvaluator, "/usr/bin/eval")

	opts, err := config.NewLoader().Load(dir)
	require.NoError(t, err)

	assert.False(t, opts.Debug)
	assert.False(t, opts.ContentFiles)
	assert.Equal(t, "/tmp/diag", opts.DiagnosticsDir)
	assert.Equal(t, "/usr/bin/eval", opts.EvaluatorPath)
}

func TestLoad_EmptyConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "")

	opts, err := config.NewLoader().Load(dir)
	require.NoError(t, err)
	assert.True(t, opts.ContentFiles)
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "debug: [not a bool\n")

	_, err := config.NewLoader().Load(dir)
	require.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "debugg: true\n")

	_, err := config.NewLoader().Load(dir)
	require.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestLoad_RejectsBadEnvBool(t *testing.T) {
	t.Setenv(config.EnvDebug, "yes-please")

	_, err := config.NewLoader().Load(t.TempDir())
	require.ErrorIs(t, err, domain.ErrConfigParseFailed)
}
