// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/plugload/internal/adapters/config"
	_ "go.trai.ch/plugload/internal/adapters/logger"
	_ "go.trai.ch/plugload/internal/adapters/manifest"
	_ "go.trai.ch/plugload/internal/adapters/nodemodules"
	_ "go.trai.ch/plugload/internal/adapters/registry"
	_ "go.trai.ch/plugload/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/plugload/internal/app"
)
