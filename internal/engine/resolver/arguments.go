package resolver

import (
	"os"
	"path/filepath"
	"strings"

	"go.refold.dev/refold/internal/core/domain"
)

// diagnosticLogName is the binary log file written when debugging is enabled.
const diagnosticLogName = "refold-eval.binlog"

// BuildArguments constructs the evaluator's argument vector. User arguments
// come before the reserved properties so that a rightmost-wins evaluator
// always honors the reserved values, whatever the user passed.
func BuildArguments(rootProject string, userArgs []string, opts *domain.Options, resultFile, injectionFile string) []string {
	args := []string{
		"/restore",
		"/nologo",
		"/verbosity:quiet",
		rootProject,
		"/t:" + domain.WatchListTarget,
	}

	if opts.Debug {
		dir := opts.DiagnosticsDir
		if dir == "" {
			dir = os.TempDir()
		}
		args = append(args, "/bl:"+filepath.Join(dir, diagnosticLogName))
	}

	args = append(args, userArgs...)

	args = append(args,
		"/p:_RefoldWatchListFile="+resultFile,
		"/p:RefoldCollectWatchItems=true",
	)
	if !opts.ContentFiles {
		args = append(args, "/p:RefoldContentFiles=false")
	}
	args = append(args, "/p:CustomAfterMicrosoftCommonTargets="+injectionFile)

	return args
}

// propertyPrefixes are the evaluator switch forms that define a global
// property.
var propertyPrefixes = []string{"/p:", "-p:", "/property:", "-property:", "--property:"}

// GlobalProperties derives the graph collaborator's global properties from
// the raw user build arguments. Both switch-prefixed and bare key=value forms
// count; arguments without an '=' are ignored.
func GlobalProperties(userArgs []string) map[string]string {
	props := make(map[string]string)

	for _, arg := range userArgs {
		trimmed := arg
		for _, prefix := range propertyPrefixes {
			if strings.HasPrefix(arg, prefix) {
				trimmed = arg[len(prefix):]
				break
			}
		}

		key, value, ok := strings.Cut(trimmed, "=")
		if !ok || key == "" || strings.HasPrefix(key, "/") || strings.HasPrefix(key, "-") {
			continue
		}
		props[key] = value
	}

	return props
}
