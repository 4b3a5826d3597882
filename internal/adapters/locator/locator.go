// Package locator resolves the build evaluator binary and the injected
// targets fragment on disk.
package locator

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.refold.dev/refold/internal/core/domain"
	"go.trai.ch/zerr"
)

// FileLocator implements ports.Locator by probing a fixed, ordered list of
// directories next to the installed binary.
type FileLocator struct {
	baseDir      string
	companionDir string
	evaluator    string
}

// New derives the probe directories from the running executable: the
// executable's own directory and the companion share directory next to it.
func New(opts *domain.Options) (*FileLocator, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to locate own executable")
	}
	base := filepath.Dir(exe)
	companion := filepath.Join(base, "..", "share", "refold")
	return NewWithDirs(base, companion, opts), nil
}

// NewWithDirs builds a locator over explicit probe directories.
func NewWithDirs(baseDir, companionDir string, opts *domain.Options) *FileLocator {
	l := &FileLocator{
		baseDir:      baseDir,
		companionDir: companionDir,
	}
	if opts != nil {
		l.evaluator = opts.EvaluatorPath
	}
	return l
}

// EvaluatorPath returns the configured evaluator path, or looks the default
// binary up on PATH.
func (l *FileLocator) EvaluatorPath() (string, error) {
	if l.evaluator != "" {
		if _, err := os.Stat(l.evaluator); err != nil {
			return "", zerr.With(domain.ErrEvaluatorNotFound, "path", l.evaluator)
		}
		return l.evaluator, nil
	}

	path, err := exec.LookPath(domain.DefaultEvaluator)
	if err != nil {
		return "", zerr.With(domain.ErrEvaluatorNotFound, "binary", domain.DefaultEvaluator)
	}
	return path, nil
}

// InjectionFilePath probes, in order: the base directory, its assets
// subfolder, the companion directory, and its assets subfolder. Absence in
// all four is an installation defect.
func (l *FileLocator) InjectionFilePath() (string, error) {
	dirs := []string{
		l.baseDir,
		filepath.Join(l.baseDir, "assets"),
		l.companionDir,
		filepath.Join(l.companionDir, "assets"),
	}

	for _, dir := range dirs {
		candidate := filepath.Join(dir, domain.InjectionFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", zerr.With(zerr.With(domain.ErrInjectionFileNotFound,
		"file", domain.InjectionFileName),
		"searched", strings.Join(dirs, ", "),
	)
}
