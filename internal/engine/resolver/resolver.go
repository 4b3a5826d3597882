// Package resolver implements the watch-set resolver. It delegates project
// evaluation to the external build evaluator and merges the per-project file
// lists into a single deduplicated, owner-tracked watch set, optionally
// together with the project dependency graph.
package resolver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.refold.dev/refold/internal/core/domain"
	"go.refold.dev/refold/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver coordinates one evaluator run per Resolve call. It holds no state
// between calls beyond the located tool paths.
type Resolver struct {
	invoker  ports.Invoker
	graphs   ports.GraphBuilder
	reporter ports.Reporter
	tracer   ports.Tracer
	opts     *domain.Options

	evaluatorPath string
	injectionFile string
}

// New locates the external tooling and returns a ready resolver. A missing
// injection file or evaluator fails here, before any evaluation can be
// attempted; per-call failures are reported, not raised.
func New(
	invoker ports.Invoker,
	graphs ports.GraphBuilder,
	reporter ports.Reporter,
	tracer ports.Tracer,
	locator ports.Locator,
	opts *domain.Options,
) (*Resolver, error) {
	evaluator, err := locator.EvaluatorPath()
	if err != nil {
		return nil, err
	}
	injection, err := locator.InjectionFilePath()
	if err != nil {
		return nil, err
	}

	if opts == nil {
		opts = domain.DefaultOptions()
	}

	return &Resolver{
		invoker:       invoker,
		graphs:        graphs,
		reporter:      reporter,
		tracer:        tracer,
		opts:          opts,
		evaluatorPath: evaluator,
		injectionFile: injection,
	}, nil
}

// Resolve runs the evaluator for rootProject and returns the merged watch
// set. Operational failures (evaluator exit, missing result file, required
// graph failure) are reported through the reporter and yield (nil, nil) so
// the watch loop can decide what to do next. A non-nil error means a broken
// internal contract or cancellation.
func (r *Resolver) Resolve(
	ctx context.Context,
	rootProject string,
	buildArgs []string,
	mode domain.GraphMode,
) (*domain.EvaluationResult, error) {
	ctx, span := r.tracer.Start(ctx, "resolve")
	defer span.End()
	span.SetAttribute("project", rootProject)
	span.SetAttribute("graph_mode", mode.String())

	resultFile, err := allocateResultFile()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to allocate watch list file")
	}
	// One cleanup for every exit path: success, process failure, parse
	// error, cancellation.
	defer func() { _ = os.Remove(resultFile) }()

	args := BuildArguments(rootProject, buildArgs, r.opts, resultFile, r.injectionFile)

	log := &OutputLog{}
	exitCode, err := r.invoke(ctx, rootProject, args, log)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		span.RecordError(err)
		r.reporter.Error(zerr.Wrap(err, "failed to run build evaluator"))
		r.replayOutput(log)
		return nil, nil
	}

	if exitCode != 0 || !fileExists(resultFile) {
		failure := zerr.With(zerr.With(domain.ErrEvaluationFailed,
			"exit_code", exitCode),
			"project", rootProject,
		)
		span.RecordError(failure)
		r.reporter.Error(failure)
		r.replayOutput(log)
		return nil, nil
	}

	files, err := r.parseAndMerge(ctx, resultFile)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	result := &domain.EvaluationResult{Files: files}

	if mode != domain.GraphNone {
		// The graph is loaded after the merge: the successful evaluation
		// above already restored the projects, so graph construction sees a
		// consistent tree.
		graph, ok := r.loadGraph(ctx, rootProject, buildArgs, mode)
		if !ok {
			return nil, nil
		}
		result.Graph = graph
	}

	return result, nil
}

func (r *Resolver) invoke(ctx context.Context, rootProject string, args []string, log *OutputLog) (int, error) {
	ctx, span := r.tracer.Start(ctx, "evaluate")
	defer span.End()

	r.reporter.Verbose(fmt.Sprintf("running %s with %d arguments", r.evaluatorPath, len(args)))

	inv := ports.Invocation{
		Path:       r.evaluatorPath,
		Args:       args,
		WorkingDir: filepath.Dir(rootProject),
	}
	exitCode, err := r.invoker.Invoke(ctx, inv, log.Append)
	span.SetAttribute("exit_code", exitCode)
	return exitCode, err
}

func (r *Resolver) parseAndMerge(ctx context.Context, resultFile string) (domain.FileSet, error) {
	_, span := r.tracer.Start(ctx, "merge")
	defer span.End()

	list, err := readWatchList(resultFile)
	if err != nil {
		return nil, err
	}

	files := domain.NewFileSet()
	files.Merge(list)

	span.SetAttribute("projects", len(list))
	span.SetAttribute("files", len(files))
	r.reporter.Verbose(fmt.Sprintf("watching %d files across %d projects", len(files), len(list)))
	return files, nil
}

// loadGraph asks the graph collaborator for the project graph. The second
// return value reports whether the resolve may continue: required-mode
// failures sink the whole call, optional-mode failures only cost the graph.
func (r *Resolver) loadGraph(
	ctx context.Context,
	rootProject string,
	buildArgs []string,
	mode domain.GraphMode,
) (*domain.ProjectGraph, bool) {
	ctx, span := r.tracer.Start(ctx, "graph")
	defer span.End()

	props := GlobalProperties(buildArgs)
	graph, err := r.graphs.BuildGraph(ctx, rootProject, props)
	if err == nil {
		return graph, true
	}
	span.RecordError(err)

	for _, inner := range flattenErrors(err) {
		if mode == domain.GraphRequired {
			r.reporter.Error(zerr.Wrap(inner, "failed to construct project graph"))
		} else {
			r.reporter.Warn("failed to construct project graph: " + inner.Error())
		}
	}

	if mode == domain.GraphRequired {
		return nil, false
	}
	r.reporter.Warn("continuing without project dependency graph")
	return nil, true
}

// replayOutput forwards the captured evaluator output verbatim, in original
// order, so the user sees what the evaluator saw.
func (r *Resolver) replayOutput(log *OutputLog) {
	for _, line := range log.Lines() {
		r.reporter.Output(line)
	}
}

// flattenErrors expands joined error batches into their independent inner
// errors so each can be reported on its own.
func flattenErrors(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var flat []error
		for _, inner := range joined.Unwrap() {
			flat = append(flat, flattenErrors(inner)...)
		}
		return flat
	}
	return []error{err}
}

// allocateResultFile reserves a temp file path for the evaluator to write the
// watch list into.
func allocateResultFile() (string, error) {
	f, err := os.CreateTemp("", "refold-watchlist-*.json")
	if err != nil {
		return "", err
	}
	path := f.Name()
	if err := f.Close(); err != nil {
		return "", err
	}
	// The injected target overwrites the file; an empty leftover must not
	// pass the success check.
	if err := os.Remove(path); err != nil {
		return "", err
	}
	return path, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
