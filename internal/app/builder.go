package app

import (
	"go.trai.ch/plugload/internal/adapters/config"
	"go.trai.ch/plugload/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App           *App
	Logger        ports.Logger
	OptionsLoader *config.FileOptionsLoader
	Telemetry     ports.Telemetry
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(
	app *App,
	logger ports.Logger,
	options *config.FileOptionsLoader,
	telemetry ports.Telemetry,
) *Components {
	return &Components{
		App:           app,
		Logger:        logger,
		OptionsLoader: options,
		Telemetry:     telemetry,
	}
}
