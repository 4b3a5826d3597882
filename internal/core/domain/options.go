package domain

// Well-known file and tool names.
const (
	// ConfigFileName is the optional per-workspace configuration file.
	ConfigFileName = "refold.yaml"

	// InjectionFileName is the targets fragment injected into the evaluation
	// so the evaluator can compute watch lists without editing the user's
	// project file.
	InjectionFileName = "Refold.targets"

	// DefaultEvaluator is the build evaluator binary looked up on PATH when
	// no explicit path is configured.
	DefaultEvaluator = "msbuild"

	// WatchListTarget is the target inside the injected fragment that writes
	// the watch list file.
	WatchListTarget = "GenerateWatchList"
)

// Options are the environment-level settings that shape an evaluation.
// They come from refold.yaml and environment variables, not from the
// per-call build arguments.
type Options struct {
	// Debug enables evaluator binary logging into DiagnosticsDir.
	Debug bool

	// ContentFiles controls whether content items are part of the watch list.
	// Enabled by default; the reserved property is only emitted when the user
	// opted out.
	ContentFiles bool

	// DiagnosticsDir is where evaluator diagnostic logs are written.
	DiagnosticsDir string

	// EvaluatorPath overrides the evaluator binary lookup.
	EvaluatorPath string
}

// DefaultOptions returns the options used when no configuration is present.
func DefaultOptions() *Options {
	return &Options{ContentFiles: true}
}
