// Package wiring assembles the default adapter set for gpm.
package wiring

import (
	"go.bendn.dev/gpm/internal/adapters/logger"
	"go.bendn.dev/gpm/internal/adapters/manifest"
	"go.bendn.dev/gpm/internal/adapters/registry"
	"go.bendn.dev/gpm/internal/app"
)

// NewApp builds an App backed by the given registry URL and archive
// store root.
func NewApp(registryURL, storeRoot string) (*app.App, error) {
	log := logger.New()

	store, err := registry.NewStore(storeRoot)
	if err != nil {
		return nil, err
	}

	source := registry.NewClient(registryURL, store, log)
	return app.New(manifest.NewLoader(log), source, log), nil
}
