// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cogentcore.org/donut/shape"
)

// Decoder decodes an OBJ stream into a [shape.Mesh].
// Polygons with more than three vertices are split into triangle fans.
type Decoder struct {

	// Mesh is the decoded mesh.
	Mesh *shape.Mesh

	// Warnings are non-fatal problems found while decoding,
	// such as unsupported record types.
	Warnings []string

	line   int             // current line number
	warned map[string]bool // record types already warned about
}

// NewDecoder returns a new, empty [Decoder].
func NewDecoder() *Decoder {
	return &Decoder{
		Mesh:   &shape.Mesh{},
		warned: map[string]bool{},
	}
}

// Decode decodes the OBJ data read from r and returns the resulting mesh
// and the decoder, which holds any warnings.
func Decode(r io.Reader) (*shape.Mesh, *Decoder, error) {
	dec := NewDecoder()
	if err := dec.Decode(r); err != nil {
		return nil, dec, err
	}
	return dec.Mesh, dec, nil
}

// Open decodes the given OBJ file.
func Open(filename string) (*shape.Mesh, *Decoder, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads all lines from r and appends the records to dec.Mesh.
func (dec *Decoder) Decode(r io.Reader) error {
	bufin := bufio.NewReader(r)
	for {
		// Reads next line and abort on errors (not EOF)
		line, err := bufin.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		dec.line++
		if perr := dec.parseLine(line); perr != nil {
			return perr
		}
		if err == io.EOF {
			return nil
		}
	}
}

// parseLine dispatches a line to the parser for its record type.
func (dec *Decoder) parseLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	switch fields[0] {
	case "v":
		return dec.parseVertex(fields[1:])
	case "f":
		return dec.parseFace(fields[1:])
	default:
		dec.appendWarn(fields[0])
	}
	return nil
}

// parseVertex parses a vertex position line:
// v <x> <y> <z> [w]
func (dec *Decoder) parseVertex(fields []string) error {
	if len(fields) < 3 {
		return dec.formatError("vertex with less than 3 coordinates")
	}
	var xyz [3]float64
	for i, f := range fields[:3] {
		val, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return dec.formatError(err.Error())
		}
		xyz[i] = val
	}
	dec.Mesh.Vertices = append(dec.Mesh.Vertices, shape.Vertex{X: xyz[0], Y: xyz[1], Z: xyz[2]})
	return nil
}

// parseFace parses a face line, where each vertex is one of
// v, v/vt, v//vn or v/vt/vn; only the position index v is used:
// f <v1> <v2> <v3> ...
func (dec *Decoder) parseFace(fields []string) error {
	if len(fields) < 3 {
		return dec.formatError("face with less than 3 vertices")
	}
	idxs := make([]int, len(fields))
	for pos, f := range fields {
		vi, err := dec.vertexIndex(f)
		if err != nil {
			return err
		}
		idxs[pos] = vi
	}
	// triangle fan: 0, i-1, i
	for i := 2; i < len(idxs); i++ {
		dec.Mesh.Faces = append(dec.Mesh.Faces, shape.Face{idxs[0], idxs[i-1], idxs[i]})
	}
	return nil
}

// vertexIndex returns the zero-based vertex index of a face vertex field.
func (dec *Decoder) vertexIndex(field string) (int, error) {
	vs, _, _ := strings.Cut(field, "/")
	val, err := strconv.Atoi(vs)
	if err != nil {
		return 0, dec.formatError(fmt.Sprintf("invalid face vertex %q", field))
	}
	nv := len(dec.Mesh.Vertices)
	var vi int
	switch {
	case val > 0: // absolute, 1-based
		vi = val - 1
	case val < 0: // relative to the last parsed vertex
		vi = nv + val
	default:
		return 0, dec.formatError("face vertex index equal to 0")
	}
	if vi < 0 || vi >= nv {
		return 0, dec.formatError(fmt.Sprintf("face vertex index %d out of range (%d vertices)", val, nv))
	}
	return vi, nil
}

func (dec *Decoder) formatError(msg string) error {
	return fmt.Errorf("obj: line %d: %s", dec.line, msg)
}

// appendWarn records a warning for the first line of each unsupported record type.
func (dec *Decoder) appendWarn(ltype string) {
	if dec.warned[ltype] {
		return
	}
	dec.warned[ltype] = true
	dec.Warnings = append(dec.Warnings, fmt.Sprintf("obj(%d): record type not supported: %s", dec.line, ltype))
}
