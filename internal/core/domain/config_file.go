package domain

import "slices"

// ConfigFile is the canonical, ordered package model produced from a
// manifest. It holds only the top-level packages; dependency subtrees
// hang off each package.
type ConfigFile struct {
	Packages []*Package
}

// NewConfigFile builds a ConfigFile from the given packages, sorted by
// the package total order. The sort is what makes the model independent
// of map iteration order and of which manifest format parsed.
func NewConfigFile(packages []*Package) *ConfigFile {
	slices.SortFunc(packages, (*Package).Compare)
	return &ConfigFile{Packages: packages}
}

// ForEach visits every package in the forest exactly once, in pre-order:
// a node before its dependency subtree, siblings in stored order, a
// subtree exhausted before the next sibling.
//
// The callback may mutate scalar fields of the current package. Inserting,
// removing or reordering entries in any dependency slice during the
// traversal is undefined behavior.
//
// Repeated traversals of an unmodified forest visit the same sequence,
// which is what makes Collect and the lockfile deterministic.
func (c *ConfigFile) ForEach(visit func(*Package)) {
	// Explicit work stack instead of recursion; dependency chains can be
	// arbitrarily deep.
	stack := make([]*Package, 0, len(c.Packages))
	for i := len(c.Packages) - 1; i >= 0; i-- {
		stack = append(stack, c.Packages[i])
	}

	for len(stack) > 0 {
		pkg := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// The dependency order is borrowed before the callback runs, so
		// a structural mutation cannot silently redirect the walk.
		deps := pkg.Dependencies

		visit(pkg)

		for i := len(deps) - 1; i >= 0; i-- {
			stack = append(stack, deps[i])
		}
	}
}

// Collect flattens the forest into a flat, owned slice of deep copies in
// the same pre-order as ForEach, discarding the tree shape.
func (c *ConfigFile) Collect() []*Package {
	var packages []*Package
	c.ForEach(func(p *Package) {
		packages = append(packages, p.Clone())
	})
	return packages
}
