// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.refold.dev/refold/internal/adapters/config"
	_ "go.refold.dev/refold/internal/adapters/evaluator"
	_ "go.refold.dev/refold/internal/adapters/locator"
	_ "go.refold.dev/refold/internal/adapters/projgraph"
	_ "go.refold.dev/refold/internal/adapters/reporter"
	_ "go.refold.dev/refold/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.refold.dev/refold/internal/app"
	_ "go.refold.dev/refold/internal/engine/resolver"
)
