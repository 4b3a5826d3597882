// Package config loads the environment options for refold from an optional
// refold.yaml and environment variables.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"go.refold.dev/refold/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the config file.
const (
	EnvDebug          = "REFOLD_DEBUG"
	EnvContentFiles   = "REFOLD_CONTENT_FILES"
	EnvDiagnosticsDir = "REFOLD_DIAG_DIR"
	EnvEvaluator      = "REFOLD_EVALUATOR"
)

// Loader implements ports.OptionsLoader. Missing configuration is not an
// error; defaults apply.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load resolves the options visible from cwd: defaults, then the nearest
// refold.yaml walking up from cwd, then environment variables.
func (l *Loader) Load(cwd string) (*domain.Options, error) {
	opts := domain.DefaultOptions()

	if path := findConfigFile(cwd); path != "" {
		if err := applyFile(opts, path); err != nil {
			return nil, err
		}
	}

	if err := applyEnvironment(opts); err != nil {
		return nil, err
	}

	return opts, nil
}

// findConfigFile walks up from cwd towards the filesystem root and returns
// the first refold.yaml found, or "".
func findConfigFile(cwd string) string {
	dir := cwd
	for {
		candidate := filepath.Join(dir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func applyFile(opts *domain.Options, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.With(domain.ErrConfigReadFailed, "path", path)
	}

	var file configFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		// An empty file is valid configuration.
		if !errors.Is(err, io.EOF) {
			return zerr.With(zerr.With(domain.ErrConfigParseFailed, "path", path), "cause", err.Error())
		}
	}

	if file.Debug != nil {
		opts.Debug = *file.Debug
	}
	if file.ContentFiles != nil {
		opts.ContentFiles = *file.ContentFiles
	}
	if file.DiagnosticsDir != "" {
		opts.DiagnosticsDir = file.DiagnosticsDir
	}
	if file.Evaluator != "" {
		opts.EvaluatorPath = file.Evaluator
	}
	return nil
}

func applyEnvironment(opts *domain.Options) error {
	if v, ok := os.LookupEnv(EnvDebug); ok {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return zerr.With(zerr.With(domain.ErrConfigParseFailed, "env", EnvDebug), "value", v)
		}
		opts.Debug = parsed
	}
	if v, ok := os.LookupEnv(EnvContentFiles); ok {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return zerr.With(zerr.With(domain.ErrConfigParseFailed, "env", EnvContentFiles), "value", v)
		}
		opts.ContentFiles = parsed
	}
	if v, ok := os.LookupEnv(EnvDiagnosticsDir); ok && v != "" {
		opts.DiagnosticsDir = v
	}
	if v, ok := os.LookupEnv(EnvEvaluator); ok && v != "" {
		opts.EvaluatorPath = v
	}
	return nil
}
