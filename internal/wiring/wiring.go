// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/appindicator/internal/adapters/config"
	_ "go.trai.ch/appindicator/internal/adapters/logger"
	_ "go.trai.ch/appindicator/internal/adapters/shell"
	_ "go.trai.ch/appindicator/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/appindicator/internal/app"
	_ "go.trai.ch/appindicator/internal/engine/installer"
)
