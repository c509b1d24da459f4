// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"
	"math"

	"cogentcore.org/donut/math32"
)

// Vertex is a mesh vertex position.
type Vertex struct {
	X, Y, Z float64
}

// AxisDistance returns the distance of the vertex from the z axis.
func (v Vertex) AxisDistance() float64 {
	return math.Hypot(v.X, v.Y)
}

// DistanceTo returns the Euclidean distance between the two vertices.
func (v Vertex) DistanceTo(o Vertex) float64 {
	dx, dy, dz := v.X-o.X, v.Y-o.Y, v.Z-o.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Vector3 returns the vertex as a float32 [math32.Vector3].
func (v Vertex) Vector3() math32.Vector3 {
	return math32.Vector3FromFloat64(v.X, v.Y, v.Z)
}

// Face is a triangle of zero-based vertex indices.
type Face [3]int

// Edge is an undirected mesh edge, with A < B.
type Edge struct {
	A, B int
}

// NewEdge returns the undirected edge between vertices a and b.
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{a, b}
}

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Vertices []Vertex
	Faces    []Face
}

// CheckIndexes returns an error for the first face that references
// a vertex that does not exist.
func (ms *Mesh) CheckIndexes() error {
	nv := len(ms.Vertices)
	for fi, f := range ms.Faces {
		for _, vi := range f {
			if vi < 0 || vi >= nv {
				return fmt.Errorf("face %d: vertex index %d out of range [0, %d)", fi, vi, nv)
			}
		}
	}
	return nil
}

// Edges returns the number of faces incident to each undirected edge.
func (ms *Mesh) Edges() map[Edge]int {
	edges := make(map[Edge]int, len(ms.Faces)*3/2)
	for _, f := range ms.Faces {
		for k := 0; k < 3; k++ {
			edges[NewEdge(f[k], f[(k+1)%3])]++
		}
	}
	return edges
}

// IsClosed returns true if every edge is shared by exactly two faces.
func (ms *Mesh) IsClosed() bool {
	if len(ms.Faces) == 0 {
		return false
	}
	for _, n := range ms.Edges() {
		if n != 2 {
			return false
		}
	}
	return true
}

// IsOriented returns true if no directed edge occurs twice, which means
// that adjacent faces wind consistently.
func (ms *Mesh) IsOriented() bool {
	seen := make(map[[2]int]bool, len(ms.Faces)*3)
	for _, f := range ms.Faces {
		for k := 0; k < 3; k++ {
			de := [2]int{f[k], f[(k+1)%3]}
			if seen[de] {
				return false
			}
			seen[de] = true
		}
	}
	return true
}

// Normal returns the unit normal of face fi following its winding
// (right-hand rule). Degenerate faces return the zero vector.
func (ms *Mesh) Normal(fi int) math32.Vector3 {
	f := ms.Faces[fi]
	a := ms.Vertices[f[0]].Vector3()
	b := ms.Vertices[f[1]].Vector3()
	c := ms.Vertices[f[2]].Vector3()
	return b.Sub(a).Cross(c.Sub(a)).Normal()
}

// Bounds returns the bounding box of all vertices.
func (ms *Mesh) Bounds() math32.Box3 {
	bb := math32.B3Empty()
	for _, v := range ms.Vertices {
		bb.ExpandByPoint(v.Vector3())
	}
	return bb
}

// Stats are summary statistics of a mesh.
type Stats struct {
	Vertices int
	Faces    int
	Edges    int

	// BoundaryEdges are edges used by only one face.
	BoundaryEdges int

	// NonManifoldEdges are edges used by more than two faces.
	NonManifoldEdges int

	// DegenerateFaces reference the same vertex more than once.
	DegenerateFaces int

	// Euler is the Euler characteristic V - E + F: 0 for a torus.
	Euler int

	Closed   bool
	Oriented bool

	Bounds math32.Box3

	// MinAxisDistance and MaxAxisDistance bound the vertex distances
	// from the z axis: R-r and R+r for a torus.
	MinAxisDistance float64
	MaxAxisDistance float64
}

// Stats computes the [Stats] of the mesh.
func (ms *Mesh) Stats() Stats {
	st := Stats{
		Vertices:        len(ms.Vertices),
		Faces:           len(ms.Faces),
		Oriented:        ms.IsOriented(),
		Bounds:          ms.Bounds(),
		MinAxisDistance: math.Inf(1),
		MaxAxisDistance: math.Inf(-1),
	}
	edges := ms.Edges()
	st.Edges = len(edges)
	for _, n := range edges {
		switch {
		case n == 1:
			st.BoundaryEdges++
		case n > 2:
			st.NonManifoldEdges++
		}
	}
	for _, f := range ms.Faces {
		if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
			st.DegenerateFaces++
		}
	}
	st.Closed = st.Faces > 0 && st.BoundaryEdges == 0 && st.NonManifoldEdges == 0
	st.Euler = st.Vertices - st.Edges + st.Faces
	for _, v := range ms.Vertices {
		d := v.AxisDistance()
		st.MinAxisDistance = min(st.MinAxisDistance, d)
		st.MaxAxisDistance = max(st.MaxAxisDistance, d)
	}
	return st
}

// String returns a multi-line report of the statistics.
func (st Stats) String() string {
	return fmt.Sprintf(`vertices:      %d
faces:         %d
edges:         %d
boundary:      %d
non-manifold:  %d
degenerate:    %d
euler:         %d
closed:        %v
oriented:      %v
bounds:        %v
axis distance: [%g, %g]`,
		st.Vertices, st.Faces, st.Edges, st.BoundaryEdges, st.NonManifoldEdges,
		st.DegenerateFaces, st.Euler, st.Closed, st.Oriented, st.Bounds,
		st.MinAxisDistance, st.MaxAxisDistance)
}
