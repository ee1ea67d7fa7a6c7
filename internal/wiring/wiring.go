// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/kin/internal/adapters/config"
	_ "go.trai.ch/kin/internal/adapters/idgen"
	_ "go.trai.ch/kin/internal/adapters/logger"
	_ "go.trai.ch/kin/internal/adapters/notify"
	_ "go.trai.ch/kin/internal/adapters/raster"
	_ "go.trai.ch/kin/internal/adapters/surface"
	_ "go.trai.ch/kin/internal/adapters/telemetry"
	_ "go.trai.ch/kin/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/kin/internal/app"
)
