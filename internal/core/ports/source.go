package ports

import (
	"context"

	"go.bendn.dev/gpm/internal/core/domain"
)

// PackageSource is the external collaborator that knows how to resolve,
// fetch and verify packages. All operations are synchronous and called
// in-line during traversal; retry policy is entirely the source's concern.
//
//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type PackageSource interface {
	// Resolve populates pkg.Dependencies with the full dependency
	// subtree, in a deterministic order. Must complete before any
	// traversal that expects a hydrated forest.
	Resolve(ctx context.Context, pkg *domain.Package) error

	// Download fetches the package archive into the local store and
	// marks the package installed. The walker does not consume any
	// result beyond the error.
	Download(ctx context.Context, pkg *domain.Package) error

	// Integrity returns the algorithm-tagged digest for the package,
	// of the form "<algorithm>-<base64 digest>".
	Integrity(ctx context.Context, pkg *domain.Package) (string, error)
}
