// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command donut generates a triangulated torus mesh as a Wavefront OBJ
// file, and renders and analyzes OBJ meshes.
package main

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/donut/obj"
	"cogentcore.org/donut/raster"
	"cogentcore.org/donut/shape"
	"github.com/mitchellh/go-homedir"
)

//go:generate core generate -add-types -add-funcs

// Config is the configuration information for the donut cli.
type Config struct {

	// Output is the OBJ file to generate. An existing file is overwritten.
	Output string `default:"donut.obj" flag:"o,output"`

	// Radius is the major radius, from the torus center to the tube center.
	Radius float64 `default:"1"`

	// TubeRadius is the minor radius of the tube.
	TubeRadius float64 `default:"0.3"`

	// RadialSegs is the number of samples around the major circle.
	RadialSegs int `default:"32"`

	// TubeSegs is the number of samples around the tube.
	TubeSegs int `default:"16"`

	// Preset is an optional TOML or YAML file of torus parameters.
	// When set, it replaces the parameters above, and it is the
	// file watched by the watch command.
	Preset string `flag:"p,preset"`

	// Manifest saves a TOML manifest of the parameters and counts
	// next to the output, named <output>.toml.
	Manifest bool

	// Input is the OBJ file to render or analyze.
	Input string `default:"donut.obj" flag:"i,input"`

	// Image is the image file to render to. A .gif file is rendered
	// as an animation of a full turn in Frames frames; other formats
	// get a single frame.
	Image string `cmd:"render" default:"render.png"`

	// Width is the image width in pixels.
	Width int `cmd:"render" default:"800"`

	// Height is the image height in pixels.
	Height int `cmd:"render" default:"600"`

	// Scale zooms the rendered image.
	Scale float32 `cmd:"render" default:"1"`

	// Angle is the rotation around the Y axis in degrees,
	// or the starting rotation of an animation.
	Angle int `cmd:"render"`

	// Wireframe renders triangle edges instead of filled triangles.
	Wireframe bool `cmd:"render"`

	// Shade lights filled triangles by their normal.
	Shade bool `cmd:"render"`

	// Label draws the input filename and counts on the image.
	Label bool `cmd:"render"`

	// Frames is the number of animation frames.
	Frames int `cmd:"render" default:"36"`

	// Delay is the animation frame delay in 100ths of a second.
	Delay int `cmd:"render" default:"4"`
}

func main() { //types:skip
	cli.Run(options(), &Config{}, Generate, Render, Stat, Watch)
}

// options returns the cli options. Commands print their own
// confirmation, so the generic success message is off.
func options() *cli.Options {
	opts := cli.DefaultOptions("donut", "Donut generates a triangulated torus mesh as a Wavefront OBJ file, and renders and analyzes OBJ meshes.")
	opts.DefaultFiles = []string{"donut.toml"}
	opts.PrintSuccess = false
	return opts
}

// Generate generates a torus mesh and writes it to the output OBJ file.
func Generate(c *Config) error { //cli:cmd -root
	tr, err := c.Torus()
	if err != nil {
		return err
	}
	out, err := generate(c, tr)
	if err != nil {
		return err
	}
	logx.PrintlnInfo(out, " generated!")
	return nil
}

// Torus returns the torus parameters, from the preset file if one is set.
func (c *Config) Torus() (*shape.Torus, error) {
	if c.Preset == "" {
		return shape.NewTorus(c.Radius, c.TubeRadius, c.RadialSegs, c.TubeSegs), nil
	}
	fn, err := homedir.Expand(c.Preset)
	if err != nil {
		return nil, err
	}
	return shape.OpenTorus(fn)
}

// generate validates the torus and writes its mesh, and the manifest
// if requested. It returns the expanded output filename.
func generate(c *Config, tr *shape.Torus) (string, error) {
	if err := tr.Validate(); err != nil {
		return "", err
	}
	if tr.SelfIntersects() {
		slog.Warn("tube radius is larger than radius: the torus intersects itself", "radius", tr.Radius, "tube_radius", tr.TubeRadius)
	}
	out, err := homedir.Expand(c.Output)
	if err != nil {
		return "", err
	}
	st := time.Now()
	ms := tr.Generate()
	slog.Debug("generated torus", "radius", tr.Radius, "tube_radius", tr.TubeRadius,
		"radial_segs", tr.RadialSegs, "tube_segs", tr.TubeSegs,
		"vertices", len(ms.Vertices), "faces", len(ms.Faces), "elapsed", time.Since(st))
	if err := obj.Save(ms, out); err != nil {
		return "", fmt.Errorf("saving mesh: %w", err)
	}
	if c.Manifest {
		mfn := shape.ManifestFilename(out)
		if err := shape.SaveManifest(shape.NewManifest(tr, out), mfn); err != nil {
			return "", fmt.Errorf("saving manifest: %w", err)
		}
		slog.Debug("saved manifest", "file", mfn)
	}
	return out, nil
}

// Render renders the input OBJ file to an image file.
func Render(c *Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	return render(ctx, c)
}

func render(ctx context.Context, c *Config) error {
	in, ms, err := c.open()
	if err != nil {
		return err
	}
	img, err := homedir.Expand(c.Image)
	if err != nil {
		return err
	}
	r := raster.NewRenderer()
	r.Width = c.Width
	r.Height = c.Height
	r.Scale = c.Scale
	r.Angle = c.Angle
	r.Wireframe = c.Wireframe
	r.Shade = c.Shade
	if c.Label {
		r.Label = fmt.Sprintf("%s: %d vertices, %d faces", filepath.Base(in), len(ms.Vertices), len(ms.Faces))
	}
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", r.Width, r.Height)
	}

	st := time.Now()
	var frames []*image.RGBA
	if strings.ToLower(filepath.Ext(img)) == ".gif" {
		if c.Frames < 1 {
			return fmt.Errorf("frames must be >= 1, got %d", c.Frames)
		}
		frames, err = r.RenderFrames(ctx, ms, c.Frames)
		if err != nil {
			return err
		}
	} else {
		frames = []*image.RGBA{r.Render(ms)}
	}
	slog.Debug("rendered", "frames", len(frames), "elapsed", time.Since(st))
	if err := raster.Save(frames, img, c.Delay); err != nil {
		return err
	}
	logx.PrintlnInfo(img, " rendered!")
	return nil
}

// Stat prints the topology and geometry statistics of the input OBJ file.
func Stat(c *Config) error {
	_, ms, err := c.open()
	if err != nil {
		return err
	}
	fmt.Println(ms.Stats())
	return nil
}

// open opens and checks the input OBJ file, logging any decoder warnings.
func (c *Config) open() (string, *shape.Mesh, error) {
	in, err := homedir.Expand(c.Input)
	if err != nil {
		return "", nil, err
	}
	ms, dec, err := obj.Open(in)
	if err != nil {
		return "", nil, err
	}
	for _, w := range dec.Warnings {
		slog.Warn(w, "file", in)
	}
	if err := ms.CheckIndexes(); err != nil {
		return "", nil, err
	}
	return in, ms, nil
}
