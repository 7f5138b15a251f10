// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/slswebpack/internal/adapters/config"
	_ "go.trai.ch/slswebpack/internal/adapters/esbuild"
	_ "go.trai.ch/slswebpack/internal/adapters/fs"
	_ "go.trai.ch/slswebpack/internal/adapters/logger"
	_ "go.trai.ch/slswebpack/internal/adapters/telemetry"
	_ "go.trai.ch/slswebpack/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/slswebpack/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/slswebpack/internal/app"
	_ "go.trai.ch/slswebpack/internal/engine/entry"
)
