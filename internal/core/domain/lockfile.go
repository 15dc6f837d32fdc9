package domain

// LockEntry is one record of the lockfile snapshot: an installed package
// with its resolved version and integrity hash. The field order matches
// the serialized output.
type LockEntry struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	Integrity string `json:"integrity"`
}
