// Package app implements the application layer for refold.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"go.refold.dev/refold/internal/core/domain"
	"go.refold.dev/refold/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver produces the merged watch set for a root project.
type Resolver interface {
	Resolve(ctx context.Context, rootProject string, buildArgs []string, mode domain.GraphMode) (*domain.EvaluationResult, error)
}

// App represents the main application logic.
type App struct {
	resolver Resolver
	reporter ports.Reporter
	stdout   io.Writer
}

// New creates a new App instance.
func New(resolver Resolver, reporter ports.Reporter) *App {
	return &App{
		resolver: resolver,
		reporter: reporter,
		stdout:   os.Stdout,
	}
}

// WithStdout redirects result output.
// This is primarily used for testing.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	BuildArgs []string
	Graph     string
	JSON      bool
	Verbose   bool
}

// Resolve evaluates the root project and writes the watch set to stdout.
// Evaluation failures have already been reported by the resolver; they
// surface here only as ErrResolveFailed so the exit code can reflect them.
func (a *App) Resolve(ctx context.Context, rootProject string, opts ResolveOptions) error {
	if opts.Verbose {
		if v, ok := a.reporter.(interface{ SetVerbose(bool) }); ok {
			v.SetVerbose(true)
		}
	}

	mode, err := domain.ParseGraphMode(opts.Graph)
	if err != nil {
		return zerr.With(err, "graph", opts.Graph)
	}

	abs, err := filepath.Abs(rootProject)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve project path")
	}

	result, err := a.resolver.Resolve(ctx, abs, opts.BuildArgs, mode)
	if err != nil {
		return err
	}
	if result == nil {
		return domain.ErrResolveFailed
	}

	if opts.JSON {
		return a.printJSON(result)
	}
	return a.printText(result)
}

// watchReport is the machine-readable resolve output.
type watchReport struct {
	Files       []watchReportFile `json:"files"`
	Fingerprint string            `json:"fingerprint"`
	Graph       *watchReportGraph `json:"graph,omitempty"`
}

type watchReportFile struct {
	Path               string   `json:"path"`
	Projects           []string `json:"projects"`
	StaticWebAssetPath string   `json:"staticWebAssetPath,omitempty"`
}

type watchReportGraph struct {
	Root       string              `json:"root"`
	References map[string][]string `json:"references"`
}

func (a *App) printJSON(result *domain.EvaluationResult) error {
	report := watchReport{
		Files:       make([]watchReportFile, 0, len(result.Files)),
		Fingerprint: fmt.Sprintf("%016x", result.Files.Fingerprint()),
	}

	for _, path := range result.Files.Paths() {
		item := result.Files[path]
		report.Files = append(report.Files, watchReportFile{
			Path:               item.FilePath,
			Projects:           item.ContainingProjects,
			StaticWebAssetPath: item.StaticWebAssetPath,
		})
	}

	if result.Graph != nil {
		graphReport, err := buildGraphReport(result.Graph)
		if err != nil {
			return err
		}
		report.Graph = graphReport
	}

	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func buildGraphReport(g *domain.ProjectGraph) (*watchReportGraph, error) {
	projects, err := g.Projects()
	if err != nil {
		return nil, err
	}

	refs := make(map[string][]string, len(projects))
	for _, project := range projects {
		targets, err := g.References(project)
		if err != nil {
			return nil, err
		}
		refs[project] = targets
	}
	return &watchReportGraph{Root: g.Root(), References: refs}, nil
}

func (a *App) printText(result *domain.EvaluationResult) error {
	for _, path := range result.Files.Paths() {
		item := result.Files[path]
		line := path
		if item.StaticWebAssetPath != "" {
			line += " => " + item.StaticWebAssetPath
		}
		if n := len(item.ContainingProjects); n > 1 {
			line += fmt.Sprintf(" (%d projects)", n)
		}
		fmt.Fprintln(a.stdout, line)
	}

	a.reporter.Verbose(fmt.Sprintf("watch set fingerprint %016x", result.Files.Fingerprint()))

	if result.Graph != nil {
		graphReport, err := buildGraphReport(result.Graph)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.stdout)
		for _, project := range orderedKeys(graphReport.References) {
			for _, target := range graphReport.References[project] {
				fmt.Fprintf(a.stdout, "%s -> %s\n", project, target)
			}
		}
	}
	return nil
}

func orderedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
