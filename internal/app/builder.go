package app

import (
	"go.trai.ch/kin/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App          *App
	Loop         *Loop
	Logger       ports.Logger
	ConfigLoader ports.ConfigLoader
	Exporter     ports.Exporter
	Watcher      ports.Watcher
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(
	app *App,
	logger ports.Logger,
	loader ports.ConfigLoader,
	exporter ports.Exporter,
	watcher ports.Watcher,
) *Components {
	return &Components{
		App:          app,
		Loop:         NewLoop(),
		Logger:       logger,
		ConfigLoader: loader,
		Exporter:     exporter,
		Watcher:      watcher,
	}
}
