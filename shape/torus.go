// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape generates triangulated torus meshes and computes
// topological and geometric statistics on the resulting meshes.
package shape

import (
	"errors"
	"fmt"
	"math"
)

// Torus is a torus shape, defined by the radius of the ring and the
// radius of the solid tube swept around it, sampled on a periodic grid
// of RadialSegs x TubeSegs points.
type Torus struct {

	// Radius is the major radius: the distance from the center
	// of the torus to the center of the tube.
	Radius float64 `toml:"radius" yaml:"radius"`

	// TubeRadius is the minor radius: the radius of the tube.
	TubeRadius float64 `toml:"tube_radius" yaml:"tube_radius"`

	// RadialSegs is the number of samples around the ring (theta).
	RadialSegs int `toml:"radial_segs" yaml:"radial_segs"`

	// TubeSegs is the number of samples around the tube cross-section (phi).
	TubeSegs int `toml:"tube_segs" yaml:"tube_segs"`
}

// NewTorus returns a Torus with the given ring radius, tube radius,
// and number of ring and tube segments.
func NewTorus(radius, tubeRadius float64, radialSegs, tubeSegs int) *Torus {
	return &Torus{
		Radius:     radius,
		TubeRadius: tubeRadius,
		RadialSegs: radialSegs,
		TubeSegs:   tubeSegs,
	}
}

// Defaults sets the standard donut: R=1, r=0.3, 32 ring by 16 tube segments.
func (tr *Torus) Defaults() {
	tr.Radius = 1
	tr.TubeRadius = 0.3
	tr.RadialSegs = 32
	tr.TubeSegs = 16
}

// N returns the number of vertices and triangles that [Torus.Generate] produces.
func (tr *Torus) N() (numVertex, numFace int) {
	numVertex = tr.RadialSegs * tr.TubeSegs
	numFace = 2 * numVertex
	return
}

// Validate returns an error describing every parameter that would
// produce a degenerate mesh. Generate does not call it.
func (tr *Torus) Validate() error {
	var errs []error
	if !(tr.Radius > 0) {
		errs = append(errs, fmt.Errorf("radius must be > 0, got %g", tr.Radius))
	}
	if !(tr.TubeRadius > 0) {
		errs = append(errs, fmt.Errorf("tube radius must be > 0, got %g", tr.TubeRadius))
	}
	if tr.RadialSegs < 3 {
		errs = append(errs, fmt.Errorf("radial segments must be >= 3, got %d", tr.RadialSegs))
	}
	if tr.TubeSegs < 3 {
		errs = append(errs, fmt.Errorf("tube segments must be >= 3, got %d", tr.TubeSegs))
	}
	return errors.Join(errs...)
}

// SelfIntersects returns true if the tube is wider than the ring
// (a spindle torus), which is still generated but overlaps itself.
func (tr *Torus) SelfIntersects() bool {
	return tr.TubeRadius > tr.Radius
}

// Generate samples the torus on its periodic grid and triangulates it.
// Vertex i*TubeSegs+j is at ring angle theta = 2πi/RadialSegs and tube
// angle phi = 2πj/TubeSegs. Each grid cell (i, j) yields the two faces
// (v0, v1, v2) and (v0, v2, v3), with v0 = (i, j), v1 = (i+1, j),
// v2 = (i+1, j+1) and v3 = (i, j+1), wrapping at the last ring and tube index.
// The result depends only on the four parameters.
func (tr *Torus) Generate() *Mesh {
	n, m := tr.RadialSegs, tr.TubeSegs
	nv, nf := tr.N()
	ms := &Mesh{
		Vertices: make([]Vertex, 0, max(nv, 0)),
		Faces:    make([]Face, 0, max(nf, 0)),
	}

	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		cosTheta, sinTheta := math.Cos(theta), math.Sin(theta)
		for j := 0; j < m; j++ {
			phi := 2 * math.Pi * float64(j) / float64(m)
			cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)
			ring := tr.Radius + tr.TubeRadius*cosPhi
			ms.Vertices = append(ms.Vertices, Vertex{
				X: ring * cosTheta,
				Y: ring * sinTheta,
				Z: tr.TubeRadius * sinPhi,
			})
		}
	}

	for i := 0; i < n; i++ {
		ni := (i + 1) % n
		for j := 0; j < m; j++ {
			nj := (j + 1) % m
			v0 := i*m + j
			v1 := ni*m + j
			v2 := ni*m + nj
			v3 := i*m + nj
			ms.Faces = append(ms.Faces, Face{v0, v1, v2}, Face{v0, v2, v3})
		}
	}
	return ms
}

// RingCenter returns the point on the central ring circle at the
// ring angle of vertex row i, which every vertex of that row is
// exactly TubeRadius away from.
func (tr *Torus) RingCenter(i int) Vertex {
	theta := 2 * math.Pi * float64(i) / float64(tr.RadialSegs)
	return Vertex{X: tr.Radius * math.Cos(theta), Y: tr.Radius * math.Sin(theta)}
}
