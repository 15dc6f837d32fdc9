// Package app implements the application layer for gpm.
package app

import (
	"context"
	"errors"

	"go.bendn.dev/gpm/internal/core/domain"
	"go.bendn.dev/gpm/internal/core/ports"
	"go.trai.ch/zerr"
)

// App wires the manifest parser, the package source and the walker into
// the operations a package manager front end needs.
type App struct {
	manifests ports.ManifestLoader
	source    ports.PackageSource
	logger    ports.Logger
}

// New creates a new App instance.
func New(manifests ports.ManifestLoader, source ports.PackageSource, log ports.Logger) *App {
	return &App{
		manifests: manifests,
		source:    source,
		logger:    log,
	}
}

// Load parses the mandatory top-level manifest and hydrates the
// dependency tree of every top-level package. An unparseable manifest
// panics (the top-level manifest is required for anything else to run);
// a resolution failure is an ordinary error.
func (a *App) Load(ctx context.Context, data []byte) (*domain.ConfigFile, error) {
	cfg := a.manifests.MustParse(data)

	for _, pkg := range cfg.Packages {
		if err := a.source.Resolve(ctx, pkg); err != nil {
			return nil, zerr.Wrap(err, "failed to resolve dependency tree for "+pkg.String())
		}
	}

	return cfg, nil
}

// LoadJSON parses a JSON manifest. Unlike Load it never panics and does
// not hydrate dependency trees; it is the ingestion path for callers
// that must tolerate or report failure.
func (a *App) LoadJSON(data []byte) (*domain.ConfigFile, error) {
	return a.manifests.ParseJSON(data)
}

// DownloadAll walks the whole forest in pre-order and downloads every
// package, transitive dependencies included. Failures are collected, not
// short-circuited: every node is still visited exactly once.
func (a *App) DownloadAll(ctx context.Context, cfg *domain.ConfigFile) error {
	var errs error
	cfg.ForEach(func(pkg *domain.Package) {
		if err := a.source.Download(ctx, pkg); err != nil {
			errs = errors.Join(errs, zerr.With(err, "package", pkg.String()))
		}
	})
	return errs
}

// Lock flattens the forest, filters to installed packages and returns
// the serialized lockfile snapshot. Packages that are not installed are
// silently excluded. If any surviving package is missing its integrity
// and the source cannot provide one, the whole operation fails; there is
// no partial lockfile.
//
// The caller decides where (and whether) to persist the result.
func (a *App) Lock(ctx context.Context, cfg *domain.ConfigFile) (string, error) {
	entries := make([]domain.LockEntry, 0)

	for _, pkg := range cfg.Collect() {
		if !pkg.Installed {
			continue
		}

		integrity := pkg.Integrity
		if integrity == "" {
			var err error
			integrity, err = a.source.Integrity(ctx, pkg)
			if err != nil {
				err = zerr.Wrap(err, domain.ErrIntegrityUnavailable.Error())
				return "", zerr.With(err, "package", pkg.String())
			}
		}

		entries = append(entries, domain.LockEntry{
			Name:      pkg.Name,
			Version:   pkg.Version,
			Integrity: integrity,
		})
	}

	return encodeLock(entries)
}
