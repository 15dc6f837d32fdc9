package manifest

// manifestDoc mirrors the on-disk manifest shape: a single mapping of
// package name to version specifier. The mapping lives under "packages",
// with "dependencies" accepted as a legacy alias so that npm-style
// package.json files keep working.
type manifestDoc struct {
	Packages     map[string]string `json:"packages" yaml:"packages" toml:"packages"`
	Dependencies map[string]string `json:"dependencies" yaml:"dependencies" toml:"dependencies"`
}

// mapping returns the effective name -> version mapping. When both keys
// are present, the primary "packages" key wins.
func (d *manifestDoc) mapping() map[string]string {
	if len(d.Packages) > 0 {
		return d.Packages
	}
	return d.Dependencies
}
