package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestUnparseable is returned when a manifest matches none of
	// the supported formats on the primary load path.
	ErrManifestUnparseable = zerr.New("manifest does not match any supported format (hjson, yaml, toml)")

	// ErrManifestDecodeFailed is returned when the JSON manifest entry point fails to parse.
	ErrManifestDecodeFailed = zerr.New("failed to decode manifest")

	// ErrManifestReadFailed is returned when a manifest file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest file")

	// ErrIntegrityUnavailable is returned when a package integrity hash
	// cannot be computed while building a lockfile.
	ErrIntegrityUnavailable = zerr.New("failed to compute package integrity")

	// ErrLockEncodeFailed is returned when lockfile serialization fails.
	ErrLockEncodeFailed = zerr.New("failed to encode lockfile")

	// ErrMetadataFetchFailed is returned when registry metadata cannot be retrieved.
	ErrMetadataFetchFailed = zerr.New("failed to fetch package metadata")

	// ErrMetadataParseFailed is returned when registry metadata cannot be parsed.
	ErrMetadataParseFailed = zerr.New("failed to parse package metadata")

	// ErrPackageNotFound is returned when the registry has no such package version.
	ErrPackageNotFound = zerr.New("package not found in registry")

	// ErrArchiveFetchFailed is returned when a package archive download fails.
	ErrArchiveFetchFailed = zerr.New("failed to download package archive")

	// ErrArchiveNotFound is returned when a package archive is not in the local store.
	ErrArchiveNotFound = zerr.New("package archive not found in store")

	// ErrStoreCreateFailed is returned when the archive store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create archive store directory")

	// ErrStoreReadFailed is returned when an archive cannot be read from the store.
	ErrStoreReadFailed = zerr.New("failed to read archive from store")

	// ErrStoreWriteFailed is returned when an archive cannot be written to the store.
	ErrStoreWriteFailed = zerr.New("failed to write archive to store")
)
