// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster is a small software renderer that draws a mesh,
// rotated around the Y axis in fixed point, into an image using a
// z-buffer, either as solid triangles or as a wireframe.
package raster

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"runtime"

	"cogentcore.org/donut/fix16"
	"cogentcore.org/donut/math32"
	"cogentcore.org/donut/shape"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/sync/errgroup"
)

// Renderer holds the view and style parameters for rendering a mesh.
type Renderer struct {

	// Width and Height are the image size in pixels.
	Width  int
	Height int

	// Scale zooms the projected image.
	Scale float32

	// Angle is the rotation around the Y axis in degrees.
	Angle int

	// Wireframe draws triangle edges instead of filled triangles.
	Wireframe bool

	// Shade modulates the fill color by the angle between each face
	// and Light. Both sides of a face are lit the same.
	Shade bool

	// Ambient is the minimum shading intensity, in [0, 1].
	Ambient float32

	// Light is the direction toward the light source.
	Light math32.Vector3

	// Color is the fragment and line color.
	Color color.RGBA

	// Background is the clear color.
	Background color.RGBA

	// Label is optional text drawn in the top-left corner.
	Label string
}

// NewRenderer returns a new [Renderer] with default values.
func NewRenderer() *Renderer {
	r := &Renderer{}
	r.Defaults()
	return r
}

// Defaults sets an 800x600 unshaded white-on-black view.
func (r *Renderer) Defaults() {
	r.Width = 800
	r.Height = 600
	r.Scale = 1
	r.Ambient = 0.2
	r.Light = math32.Vec3(-0.4, 0.9, 0.6)
	r.Color = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	r.Background = color.RGBA{0, 0, 0, 0xFF}
}

// Render renders the mesh at [Renderer.Angle].
func (r *Renderer) Render(ms *shape.Mesh) *image.RGBA {
	return r.render(prepare(ms), r.Angle)
}

// RenderFrames renders n frames of a full turn around the Y axis,
// starting at [Renderer.Angle]. Frames are rendered in parallel.
func (r *Renderer) RenderFrames(ctx context.Context, ms *shape.Mesh, n int) ([]*image.RGBA, error) {
	pm := prepare(ms)
	frames := make([]*image.RGBA, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range frames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			frames[i] = r.render(pm, r.Angle+i*fix16.TableSize/n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return frames, nil
}

// prepared is a mesh converted for rendering: fixed-point vertices and
// float face normals. It is shared read-only between frames.
type prepared struct {
	ms      *shape.Mesh
	verts   []fix16.Vec3
	normals []math32.Vector3
}

func prepare(ms *shape.Mesh) *prepared {
	pm := &prepared{
		ms:      ms,
		verts:   make([]fix16.Vec3, len(ms.Vertices)),
		normals: make([]math32.Vector3, len(ms.Faces)),
	}
	for i, v := range ms.Vertices {
		pm.verts[i] = fix16.V3(v.X, v.Y, v.Z)
	}
	for fi := range ms.Faces {
		pm.normals[fi] = ms.Normal(fi)
	}
	return pm
}

// point is a projected vertex: screen position and depth.
// A point at or behind the near plane is marked near, and its
// position is not meaningful.
type point struct {
	x, y int
	z    float32
	near bool
}

const (
	// nearZ is the depth of the near plane in front of the viewer.
	nearZ = 1e-3

	// maxPixel bounds projected coordinates so that they convert to int.
	maxPixel = 1 << 24
)

// project applies the perspective projection of the viewer: the camera
// looks down the Z axis from 3 units away with a focal length of 200 pixels.
func (r *Renderer) project(v fix16.Vec3) point {
	xf, yf, zf := v.Floats()
	xf *= r.Scale
	yf *= r.Scale
	zf += 3
	if !(zf > nearZ) {
		return point{z: zf, near: true}
	}
	return point{
		x: pixel(float32(r.Width/2) + xf*200/zf),
		y: pixel(float32(r.Height/2) - yf*200/zf),
		z: zf,
	}
}

func pixel(f float32) int {
	return int(math32.Clamp(f, -maxPixel, maxPixel))
}

func (r *Renderer) render(pm *prepared, angle int) *image.RGBA {
	fr := newFrame(r.Width, r.Height, r.Background)
	pts := make([]point, len(pm.verts))
	for i, v := range pm.verts {
		pts[i] = r.project(v.RotateY(angle))
	}
	light := r.Light.Normal()
	rad := math32.DegToRad(float32(angle))
	for fi, f := range pm.ms.Faces {
		p0, p1, p2 := pts[f[0]], pts[f[1]], pts[f[2]]
		if p0.near || p1.near || p2.near {
			continue
		}
		if r.Wireframe {
			fr.line(p0, p1, r.Color)
			fr.line(p1, p2, r.Color)
			fr.line(p2, p0, r.Color)
			continue
		}
		c := r.Color
		if r.Shade {
			n := pm.normals[fi].RotateY(rad)
			c = scaleColor(c, r.Ambient+(1-r.Ambient)*math32.Abs(n.Dot(light)))
		}
		fr.fill(p0, p1, p2, c)
	}
	if r.Label != "" {
		drawLabel(fr.img, r.Label, r.Color)
	}
	return fr.img
}

func scaleColor(c color.RGBA, s float32) color.RGBA {
	s = math32.Clamp(s, 0, 1)
	return color.RGBA{uint8(float32(c.R) * s), uint8(float32(c.G) * s), uint8(float32(c.B) * s), c.A}
}

// drawLabel draws text in the top-left corner of the image.
func drawLabel(img draw.Image, label string, c color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(6, 16),
	}
	d.DrawString(label)
}
