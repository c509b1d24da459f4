// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// farDepth is the initial z-buffer value.
const farDepth = 1e9

// frame is a color image with a matching z-buffer.
type frame struct {
	img  *image.RGBA
	zbuf []float32
}

func newFrame(width, height int, bg color.RGBA) *frame {
	fr := &frame{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		zbuf: make([]float32, width*height),
	}
	draw.Draw(fr.img, fr.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	for i := range fr.zbuf {
		fr.zbuf[i] = farDepth
	}
	return fr
}

// put sets the pixel at x, y if it is inside the image.
func (fr *frame) put(x, y int, c color.RGBA) {
	if !(image.Point{x, y}).In(fr.img.Rect) {
		return
	}
	fr.img.SetRGBA(x, y, c)
}

// line draws a line between two projected points with Bresenham's algorithm,
// after clipping it to the image. Lines are not depth tested.
func (fr *frame) line(p0, p1 point, c color.RGBA) {
	x0, y0, x1, y1, ok := clipLine(p0.x, p0.y, p1.x, p1.y, fr.img.Rect)
	if !ok {
		return
	}
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	e := dx + dy
	for {
		fr.put(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// clipLine clips the segment x0,y0 to x1,y1 to the pixels of r with the
// Liang-Barsky algorithm. It returns false if no part of it is inside r.
func clipLine(x0, y0, x1, y1 int, r image.Rectangle) (int, int, int, int, bool) {
	if r.Empty() {
		return 0, 0, 0, 0, false
	}
	fx0, fy0 := float64(x0), float64(y0)
	dx, dy := float64(x1-x0), float64(y1-y0)
	t0, t1 := 0.0, 1.0
	clip := func(p, q float64) bool {
		switch {
		case p == 0:
			return q >= 0
		case p < 0:
			t := q / p
			if t > t1 {
				return false
			}
			t0 = max(t0, t)
		default:
			t := q / p
			if t < t0 {
				return false
			}
			t1 = min(t1, t)
		}
		return true
	}
	if !clip(-dx, fx0-float64(r.Min.X)) || !clip(dx, float64(r.Max.X-1)-fx0) ||
		!clip(-dy, fy0-float64(r.Min.Y)) || !clip(dy, float64(r.Max.Y-1)-fy0) {
		return 0, 0, 0, 0, false
	}
	return int(math.Round(fx0 + t0*dx)), int(math.Round(fy0 + t0*dy)),
		int(math.Round(fx0 + t1*dx)), int(math.Round(fy0 + t1*dy)), true
}

// edge is the signed area function of point x, y relative to the edge a-b.
func edge(ax, ay, bx, by, x, y float32) float32 {
	return (ay-by)*x + (bx-ax)*y + ax*by - bx*ay
}

// fill rasterizes a triangle with barycentric edge functions over its
// clipped bounding box. A pixel is written when its interpolated depth
// is nearer than the z-buffer. Zero-area triangles are skipped; both
// windings are filled.
func (fr *frame) fill(p0, p1, p2 point, c color.RGBA) {
	x0, y0 := float32(p0.x), float32(p0.y)
	x1, y1 := float32(p1.x), float32(p1.y)
	x2, y2 := float32(p2.x), float32(p2.y)
	area := edge(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	b := image.Rect(min(p0.x, p1.x, p2.x), min(p0.y, p1.y, p2.y),
		max(p0.x, p1.x, p2.x)+1, max(p0.y, p1.y, p2.y)+1).Intersect(fr.img.Rect)
	w := fr.img.Rect.Dx()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px, py := float32(x), float32(y)
			w0 := edge(x1, y1, x2, y2, px, py) / area
			w1 := edge(x2, y2, x0, y0, px, py) / area
			w2 := edge(x0, y0, x1, y1, px, py) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := w0*p0.z + w1*p1.z + w2*p2.z
			zi := y*w + x
			if z < fr.zbuf[zi] {
				fr.zbuf[zi] = z
				fr.img.SetRGBA(x, y, c)
			}
		}
	}
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
