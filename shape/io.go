// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Manifest records how an output mesh file was generated.
// It is saved next to the mesh file by the generate command.
type Manifest struct {

	// Output is the mesh file the manifest describes.
	Output string `toml:"output" yaml:"output"`

	// Torus are the parameters the mesh was generated from.
	Torus Torus `toml:"torus" yaml:"torus"`

	// Vertices is the number of vertex records written.
	Vertices int `toml:"vertices" yaml:"vertices"`

	// Faces is the number of face records written.
	Faces int `toml:"faces" yaml:"faces"`
}

// NewManifest returns the [Manifest] for the given torus
// and the mesh file it was written to.
func NewManifest(tr *Torus, output string) *Manifest {
	nv, nf := tr.N()
	return &Manifest{Output: output, Torus: *tr, Vertices: nv, Faces: nf}
}

// ManifestFilename returns the manifest filename for the given mesh file:
// the mesh filename with .toml appended.
func ManifestFilename(output string) string {
	return output + ".toml"
}

// OpenTorus opens torus parameters from the given TOML (.toml) or
// YAML (.yaml, .yml) preset file. Fields absent from the file keep
// their [Torus.Defaults] values.
func OpenTorus(filename string) (*Torus, error) {
	tr := &Torus{}
	tr.Defaults()
	if err := open(tr, filename); err != nil {
		return nil, err
	}
	return tr, nil
}

// SaveTorus saves torus parameters to the given TOML or YAML preset file.
func SaveTorus(tr *Torus, filename string) error {
	return save(tr, filename)
}

// OpenManifest opens a [Manifest] from the given TOML or YAML file.
func OpenManifest(filename string) (*Manifest, error) {
	mf := &Manifest{}
	if err := open(mf, filename); err != nil {
		return nil, err
	}
	return mf, nil
}

// SaveManifest saves the manifest to the given TOML or YAML file.
func SaveManifest(mf *Manifest, filename string) error {
	return save(mf, filename)
}

// open decodes v from the given file, in the format given by its extension.
func open(v any, filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = toml.Unmarshal(b, v)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, v)
	default:
		return fmt.Errorf("shape: unsupported file extension %q for %q", ext, filename)
	}
	if err != nil {
		return fmt.Errorf("shape: %s: %w", filename, err)
	}
	return nil
}

// save encodes v to the given file, in the format given by its extension.
func save(v any, filename string) error {
	var b []byte
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		b, err = toml.Marshal(v)
	case ".yaml", ".yml":
		b, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("shape: unsupported file extension %q for %q", ext, filename)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}
