// Package manifest provides the manifest parser for gpm.
//
// The primary load path tries HJSON, YAML and TOML in that order and
// stops at the first format that accepts the input. A separate entry
// point accepts only JSON and never terminates the caller.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hjson/hjson-go/v4"
	"github.com/pelletier/go-toml/v2"
	"go.bendn.dev/gpm/internal/core/domain"
	"go.bendn.dev/gpm/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ManifestLoader = (*Loader)(nil)

// Loader implements ports.ManifestLoader.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// decoders is the fixed trial order of the primary load path.
// All three share the Unmarshal([]byte, any) error shape.
var decoders = []struct {
	name   string
	decode func([]byte, any) error
}{
	{"hjson", hjson.Unmarshal},
	{"yaml", yaml.Unmarshal},
	{"toml", toml.Unmarshal},
}

// Parse attempts each supported format in order and converts the first
// successful decode into a sorted ConfigFile. It returns
// domain.ErrManifestUnparseable when every format rejects the input.
func (l *Loader) Parse(data []byte) (*domain.ConfigFile, error) {
	for _, dec := range decoders {
		var doc manifestDoc
		if err := dec.decode(data, &doc); err != nil {
			continue
		}
		return l.build(&doc), nil
	}
	return nil, domain.ErrManifestUnparseable
}

// MustParse parses the mandatory top-level manifest and panics when the
// input matches no supported format. Callers that can tolerate failure
// use Parse or ParseJSON instead.
func (l *Loader) MustParse(data []byte) *domain.ConfigFile {
	cfg, err := l.Parse(data)
	if err != nil {
		panic(err)
	}
	return cfg
}

// ParseJSON parses a JSON manifest of the same mapping shape. Unlike the
// primary path, a parse failure is an ordinary, recoverable error.
func (l *Loader) ParseJSON(data []byte) (*domain.ConfigFile, error) {
	var doc manifestDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestDecodeFailed.Error())
	}
	return l.build(&doc), nil
}

// LoadFile reads and parses a manifest file via the primary path.
func (l *Loader) LoadFile(path string) (*domain.ConfigFile, error) {
	// #nosec G304 -- path is chosen by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
	}
	return l.Parse(data)
}

// MustLoadFile is LoadFile for the mandatory top-level manifest: it
// panics when the file cannot be read or parsed.
func (l *Loader) MustLoadFile(path string) *domain.ConfigFile {
	cfg, err := l.LoadFile(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// build converts the decoded mapping into the canonical sorted package
// list. The sort is mandatory: map iteration order is unspecified, and
// the result must not depend on it or on which format parsed.
func (l *Loader) build(doc *manifestDoc) *domain.ConfigFile {
	mapping := doc.mapping()
	if len(mapping) == 0 {
		l.Logger.Warn(fmt.Sprintf("manifest contains no %q entries", "packages"))
	}

	packages := make([]*domain.Package, 0, len(mapping))
	for name, version := range mapping {
		packages = append(packages, domain.NewPackage(name, version))
	}
	return domain.NewConfigFile(packages)
}
