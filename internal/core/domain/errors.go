package domain

import "go.trai.ch/zerr"

var (
	// ErrEvaluationFailed is reported when the build evaluator exits non-zero
	// or terminates without producing a watch list file.
	ErrEvaluationFailed = zerr.New("build evaluation failed")

	// ErrMalformedWatchList is returned when the watch list payload does not
	// match the contract with the injected target. This indicates a
	// producer/consumer version mismatch, not a user error.
	ErrMalformedWatchList = zerr.New("malformed watch list payload")

	// ErrInjectionFileNotFound is returned when the injected targets file is
	// missing from every probe directory. This is an installation defect and
	// aborts before any evaluation is attempted.
	ErrInjectionFileNotFound = zerr.New("injected targets file not found")

	// ErrEvaluatorNotFound is returned when the build evaluator binary cannot
	// be located.
	ErrEvaluatorNotFound = zerr.New("build evaluator not found")

	// ErrGraphConstructionFailed is reported when the project graph cannot be
	// constructed for the root project.
	ErrGraphConstructionFailed = zerr.New("project graph construction failed")

	// ErrGraphCycle is returned when a project reference would close a cycle.
	ErrGraphCycle = zerr.New("project reference cycle detected")

	// ErrProjectLoadFailed is returned when a project file cannot be read.
	ErrProjectLoadFailed = zerr.New("failed to load project file")

	// ErrProjectParseFailed is returned when a project file is not valid XML.
	ErrProjectParseFailed = zerr.New("failed to parse project file")

	// ErrProjectNotFound is returned when a project is not part of the graph.
	ErrProjectNotFound = zerr.New("project not found in graph")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidGraphMode is returned for an unrecognized graph mode name.
	ErrInvalidGraphMode = zerr.New("invalid graph mode, expected 'none', 'optional' or 'required'")

	// ErrResolveFailed signals the CLI that a resolve produced no result. The
	// failure itself has already been reported through the reporter.
	ErrResolveFailed = zerr.New("watch set resolution failed")
)
