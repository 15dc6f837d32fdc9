package domain

import "path/filepath"

const (
	// GpmDirName is the name of the internal gpm directory.
	GpmDirName = ".gpm"

	// StoreDirName is the name of the downloaded archive store directory.
	StoreDirName = "store"

	// ManifestFileName is the default name of the package manifest.
	ManifestFileName = "godot.package"

	// LockFileName is the default name of the lockfile.
	LockFileName = "godot.lock"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStorePath returns the default path for the archive store,
// relative to the project root.
func DefaultStorePath() string {
	return filepath.Join(GpmDirName, StoreDirName)
}
