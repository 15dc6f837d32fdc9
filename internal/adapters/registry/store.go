package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.bendn.dev/gpm/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store is the on-disk archive store. Archives are written under a
// single directory with file names derived from the package identity,
// so a name like "@bendn/test" never has to be mapped onto the
// filesystem.
type Store struct {
	root string
}

// NewStore creates an archive store rooted at the given directory,
// creating it if necessary.
func NewStore(root string) (*Store, error) {
	cleanRoot := filepath.Clean(root)
	if err := os.MkdirAll(cleanRoot, domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}
	return &Store{root: cleanRoot}, nil
}

// Has reports whether an archive for the package is present.
func (s *Store) Has(pkg *domain.Package) bool {
	_, err := os.Stat(s.path(pkg))
	return err == nil
}

// Get returns the archive bytes for the package. A missing archive is
// reported as domain.ErrArchiveNotFound.
func (s *Store) Get(pkg *domain.Package) ([]byte, error) {
	//nolint:gosec // Path is constructed from the store root and a hashed filename
	data, err := os.ReadFile(s.path(pkg))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrArchiveNotFound, "package", pkg.String())
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}
	return data, nil
}

// Put writes the archive bytes for the package, replacing any previous
// archive for the same name and version.
func (s *Store) Put(pkg *domain.Package, data []byte) error {
	//nolint:gosec // Path is constructed from the store root and a hashed filename
	if err := os.WriteFile(s.path(pkg), data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	return nil
}

// path returns the archive file path for a package. The name is the
// xxhash of the stable display form, fixed-width hex.
func (s *Store) path(pkg *domain.Package) string {
	sum := xxhash.Sum64String(pkg.String())
	return filepath.Join(s.root, fmt.Sprintf("%016x.tgz", sum))
}
