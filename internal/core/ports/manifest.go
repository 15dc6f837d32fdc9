package ports

import "go.bendn.dev/gpm/internal/core/domain"

// ManifestLoader defines the interface for turning raw manifest text
// into the canonical package model.
//
// The primary path (MustParse) and the structured path (ParseJSON) are
// deliberately distinct operations: the top-level manifest is mandatory,
// so its loader asserts success; programmatic ingestion must be able to
// report failure instead.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestLoader interface {
	// Parse tries every supported textual format in a fixed order and
	// returns domain.ErrManifestUnparseable when all of them reject the input.
	Parse(data []byte) (*domain.ConfigFile, error)

	// MustParse is Parse for the mandatory top-level manifest: it panics
	// instead of returning an error.
	MustParse(data []byte) *domain.ConfigFile

	// ParseJSON accepts only JSON and always returns a recoverable error.
	ParseJSON(data []byte) (*domain.ConfigFile, error)
}
