// Package domain contains the core domain types for gpm.
package domain

import "strings"

// Package is a single package node in the dependency forest.
// Dependencies are exclusively owned by their parent: the forest is a
// rooted tree, not a shared graph. Two branches may carry logically
// identical packages; this layer never deduplicates them.
type Package struct {
	Name    string
	Version string

	// Dependencies is the ordered list of direct dependencies.
	// Populated by a PackageSource after parsing; empty for a fresh node.
	Dependencies []*Package

	// Installed reports whether the package archive is present locally.
	Installed bool

	// Integrity is the algorithm-tagged digest of the package archive,
	// e.g. "sha512-<base64>". Empty until computed.
	Integrity string
}

// NewPackage creates a leaf package with no dependencies.
func NewPackage(name, version string) *Package {
	return &Package{Name: name, Version: version}
}

// HasDependencies reports whether the package has at least one direct dependency.
func (p *Package) HasDependencies() bool {
	return len(p.Dependencies) > 0
}

// Compare defines the total order over packages: by name, then by version.
// It is the sort key for ConfigFile construction.
func (p *Package) Compare(other *Package) int {
	if c := strings.Compare(p.Name, other.Name); c != 0 {
		return c
	}
	return strings.Compare(p.Version, other.Version)
}

// String returns the stable display form "name@version".
func (p *Package) String() string {
	return p.Name + "@" + p.Version
}

// Clone returns a deep copy of the package and its dependency subtree.
func (p *Package) Clone() *Package {
	clone := &Package{
		Name:      p.Name,
		Version:   p.Version,
		Installed: p.Installed,
		Integrity: p.Integrity,
	}
	if len(p.Dependencies) > 0 {
		clone.Dependencies = make([]*Package, len(p.Dependencies))
		for i, dep := range p.Dependencies {
			clone.Dependencies[i] = dep.Clone()
		}
	}
	return clone
}
