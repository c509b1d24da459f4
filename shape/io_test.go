// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTorusPreset(t *testing.T) {
	dir := t.TempDir()
	tr := NewTorus(2, 0.5, 48, 24)
	for _, fn := range []string{"preset.toml", "preset.yaml", "preset.yml"} {
		t.Run(fn, func(t *testing.T) {
			path := filepath.Join(dir, fn)
			require.NoError(t, SaveTorus(tr, path))
			got, err := OpenTorus(path)
			require.NoError(t, err)
			assert.Equal(t, tr, got)
		})
	}
}

func TestTorusPresetPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thin.toml")
	require.NoError(t, os.WriteFile(path, []byte("tube_radius = 0.1\ntube_segs = 8\n"), 0666))
	got, err := OpenTorus(path)
	require.NoError(t, err)
	assert.Equal(t, NewTorus(1, 0.1, 32, 8), got)
}

func TestTorusPresetErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := OpenTorus(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(dir, "preset.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0666))
	_, err = OpenTorus(path)
	assert.ErrorContains(t, err, "unsupported file extension")
	assert.ErrorContains(t, SaveTorus(defaultTorus(), path), "unsupported file extension")

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("radius = [\n"), 0666))
	_, err = OpenTorus(bad)
	assert.ErrorContains(t, err, "bad.toml")
}

func TestManifest(t *testing.T) {
	assert.Equal(t, "out/donut.obj.toml", ManifestFilename("out/donut.obj"))
	assert.Equal(t, "donut.toml", ManifestFilename("donut"))

	path := filepath.Join(t.TempDir(), "donut.toml")
	mf := NewManifest(defaultTorus(), "donut.obj")
	assert.Equal(t, 512, mf.Vertices)
	assert.Equal(t, 1024, mf.Faces)
	require.NoError(t, SaveManifest(mf, path))

	got, err := OpenManifest(path)
	require.NoError(t, err)
	assert.Equal(t, mf, got)

	_, err = OpenManifest(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
