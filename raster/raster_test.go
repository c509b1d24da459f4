// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"context"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/donut/fix16"
	"cogentcore.org/donut/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	black = color.RGBA{0, 0, 0, 0xFF}
)

func testRenderer() *Renderer {
	r := NewRenderer()
	r.Width = 200
	r.Height = 150
	return r
}

func donut() *shape.Mesh {
	return shape.NewTorus(1, 0.3, 32, 16).Generate()
}

func countLit(img *image.RGBA, bg color.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) != bg {
				n++
			}
		}
	}
	return n
}

func TestRenderSolid(t *testing.T) {
	r := testRenderer()
	img := r.Render(donut())
	assert.Equal(t, image.Rect(0, 0, 200, 150), img.Bounds())

	// the ring faces the camera: the hole is empty
	assert.Equal(t, black, img.RGBAAt(100, 75))
	assert.Equal(t, black, img.RGBAAt(120, 75))
	assert.Equal(t, white, img.RGBAAt(166, 75))
	assert.Equal(t, white, img.RGBAAt(34, 75))
	assert.Equal(t, white, img.RGBAAt(100, 9))
	assert.Equal(t, black, img.RGBAAt(195, 75))
}

func TestRenderRotated(t *testing.T) {
	r := testRenderer()
	r.Angle = 90
	img := r.Render(donut())

	// seen edge-on
	assert.Equal(t, black, img.RGBAAt(166, 75))
	assert.Equal(t, white, img.RGBAAt(100, 9))
	assert.Equal(t, white, img.RGBAAt(100, 141))
}

func TestRenderWireframe(t *testing.T) {
	r := NewRenderer()
	solid := countLit(r.Render(donut()), black)
	r.Wireframe = true
	wire := countLit(r.Render(donut()), black)
	assert.Greater(t, wire, 0)
	assert.Less(t, wire, solid)
}

func TestRenderShade(t *testing.T) {
	r := testRenderer()
	r.Shade = true
	c := r.Render(donut()).RGBAAt(166, 75)
	assert.Greater(t, c.R, uint8(0))
	assert.Less(t, c.R, uint8(0xFF))
	assert.Equal(t, c.R, c.G)
	assert.Equal(t, c.R, c.B)
}

func TestRenderLabel(t *testing.T) {
	r := testRenderer()
	empty := &shape.Mesh{}
	assert.Zero(t, countLit(r.Render(empty), black))
	r.Label = "donut"
	img := r.Render(empty)
	assert.Greater(t, countLit(img.SubImage(image.Rect(0, 0, 60, 20)).(*image.RGBA), black), 0)
	assert.Zero(t, countLit(img.SubImage(image.Rect(0, 20, 200, 150)).(*image.RGBA), black))
}

func TestRenderFrames(t *testing.T) {
	r := testRenderer()
	ms := donut()
	frames, err := r.RenderFrames(context.Background(), ms, 4)
	require.NoError(t, err)
	require.Len(t, frames, 4)
	assert.Equal(t, r.Render(ms).Pix, frames[0].Pix)

	r.Angle = 90
	assert.Equal(t, r.Render(ms).Pix, frames[1].Pix)

	frames, err = r.RenderFrames(context.Background(), ms, 0)
	assert.NoError(t, err)
	assert.Empty(t, frames)
}

func TestRenderFramesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := testRenderer().RenderFrames(ctx, donut(), 8)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFillDepth(t *testing.T) {
	red := color.RGBA{0xFF, 0, 0, 0xFF}
	green := color.RGBA{0, 0xFF, 0, 0xFF}
	far := [3]point{{x: 0, y: 0, z: 5}, {x: 10, y: 0, z: 5}, {x: 0, y: 10, z: 5}}
	near := [3]point{{x: 0, y: 0, z: 2}, {x: 0, y: 10, z: 2}, {x: 10, y: 0, z: 2}} // opposite winding

	fr := newFrame(12, 12, black)
	fr.fill(far[0], far[1], far[2], red)
	fr.fill(near[0], near[1], near[2], green)
	assert.Equal(t, green, fr.img.RGBAAt(2, 2))

	fr = newFrame(12, 12, black)
	fr.fill(near[0], near[1], near[2], green)
	fr.fill(far[0], far[1], far[2], red)
	assert.Equal(t, green, fr.img.RGBAAt(2, 2))
	assert.Equal(t, black, fr.img.RGBAAt(9, 9))
}

func TestFillDegenerate(t *testing.T) {
	fr := newFrame(12, 12, black)
	fr.fill(point{x: 0, y: 0, z: 1}, point{x: 5, y: 5, z: 1}, point{x: 10, y: 10, z: 1}, white)
	assert.Zero(t, countLit(fr.img, black))

	// partly off-screen triangles are clipped
	fr.fill(point{x: -20, y: -20, z: 1}, point{x: 30, y: -20, z: 1}, point{x: -20, y: 30, z: 1}, white)
	assert.Equal(t, white, fr.img.RGBAAt(0, 0))
}

func TestLine(t *testing.T) {
	fr := newFrame(8, 8, black)
	fr.line(point{x: 0, y: 0}, point{x: 3, y: 3}, white)
	for i := 0; i <= 3; i++ {
		assert.Equal(t, white, fr.img.RGBAAt(i, i))
	}
	assert.Equal(t, 4, countLit(fr.img, black))

	fr.line(point{x: 7, y: 2}, point{x: 7, y: 2}, white)
	assert.Equal(t, white, fr.img.RGBAAt(7, 2))

	// off-screen parts are not drawn
	fr.line(point{x: -5, y: 7}, point{x: 20, y: 7}, white)
	assert.Equal(t, 4+1+8, countLit(fr.img, black))
}

func TestRenderNearPlane(t *testing.T) {
	// the first vertex is in the plane of the viewer
	ms := &shape.Mesh{
		Vertices: []shape.Vertex{{X: 1, Z: -3}, {Y: 1}, {}},
		Faces:    []shape.Face{{0, 1, 2}},
	}
	r := NewRenderer()
	r.Width = 64
	r.Height = 48
	for _, wire := range []bool{true, false} {
		r.Wireframe = wire
		assert.Equal(t, 0, countLit(r.Render(ms), black), "wireframe %v", wire)
	}

	// the rest of the mesh still renders
	ms.Vertices = append(ms.Vertices, shape.Vertex{X: 1})
	ms.Faces = append(ms.Faces, shape.Face{1, 2, 3})
	assert.Positive(t, countLit(r.Render(ms), black))

	r.Wireframe = true
	ms.Faces = ms.Faces[:1]
	ms.Vertices[0] = shape.Vertex{X: 0.5, Y: 0.5, Z: -2.9999}
	assert.Equal(t, 0, countLit(r.Render(ms), black))
}

func TestProject(t *testing.T) {
	r := NewRenderer()
	r.Width = 64
	r.Height = 48
	p := r.project(fix16.V3(0, 0, 0))
	assert.Equal(t, point{x: 32, y: 24, z: 3}, p)
	assert.True(t, r.project(fix16.V3(1, 0, -3)).near)
	assert.True(t, r.project(fix16.V3(1, 0, -5)).near)

	r.Scale = 1e6
	p = r.project(fix16.V3(100, -100, 0))
	assert.False(t, p.near)
	assert.Equal(t, maxPixel, p.x)
	assert.Equal(t, maxPixel, p.y)
}

func TestClipLine(t *testing.T) {
	rect := image.Rect(0, 0, 8, 8)
	x0, y0, x1, y1, ok := clipLine(-5, 7, 20, 7, rect)
	assert.True(t, ok)
	assert.Equal(t, []int{0, 7, 7, 7}, []int{x0, y0, x1, y1})

	x0, y0, x1, y1, ok = clipLine(2, 3, 5, 6, rect)
	assert.True(t, ok)
	assert.Equal(t, []int{2, 3, 5, 6}, []int{x0, y0, x1, y1})

	_, _, _, _, ok = clipLine(-10, -1, 20, -1, rect)
	assert.False(t, ok)
	_, _, _, _, ok = clipLine(9, 0, 9, 7, rect)
	assert.False(t, ok)
	_, _, _, _, ok = clipLine(0, 0, 3, 3, image.Rectangle{})
	assert.False(t, ok)

	// far off-screen endpoints only draw the visible part
	fr := newFrame(8, 8, black)
	fr.line(point{x: -1 << 24, y: -1 << 24}, point{x: 1 << 24, y: 1 << 24}, white)
	assert.Equal(t, 8, countLit(fr.img, black))
	for i := range 8 {
		assert.Equal(t, white, fr.img.RGBAAt(i, i))
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	r := testRenderer()
	frames, err := r.RenderFrames(context.Background(), donut(), 3)
	require.NoError(t, err)

	png := filepath.Join(dir, "donut.png")
	require.NoError(t, Save(frames, png, 0))
	img, _, err := imagex.Open(png)
	require.NoError(t, err)
	assert.Equal(t, frames[0].Bounds(), img.Bounds())

	gf := filepath.Join(dir, "donut.gif")
	require.NoError(t, Save(frames, gf, 4))
	f, err := os.Open(gf)
	require.NoError(t, err)
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	require.NoError(t, err)
	assert.Len(t, anim.Image, 3)
	assert.Equal(t, []int{4, 4, 4}, anim.Delay)

	assert.Error(t, Save(nil, png, 0))
	assert.Error(t, Save(frames, filepath.Join(dir, "donut.xyz"), 0))
	assert.Error(t, SaveGIF(frames, filepath.Join(dir, "missing", "donut.gif"), 0))
}
