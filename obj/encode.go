// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package obj reads and writes triangle meshes in the Wavefront OBJ
// file format (*.obj). Only vertex positions (v) and faces (f) are
// written; on reading, other records are skipped with a warning.
// Basic format info: https://en.wikipedia.org/wiki/Wavefront_.obj_file
package obj

import (
	"bufio"
	"bytes"
	"io"
	"math"
	"os"
	"strconv"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/donut/shape"
)

// Encode writes all vertices of the mesh as "v x y z" records, followed by
// all faces as "f a b c" records with 1-based vertex indices.
func Encode(w io.Writer, ms *shape.Mesh) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 80)
	for _, v := range ms.Vertices {
		buf = append(buf[:0], 'v', ' ')
		buf = AppendFloat(buf, v.X)
		buf = append(buf, ' ')
		buf = AppendFloat(buf, v.Y)
		buf = append(buf, ' ')
		buf = AppendFloat(buf, v.Z)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	for _, f := range ms.Faces {
		buf = append(buf[:0], 'f')
		for _, vi := range f {
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(vi+1), 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Save writes the mesh to the given file, truncating it if it exists.
// The file is always closed; a close error is returned along with
// any write error.
func Save(ms *shape.Mesh, filename string) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return Encode(f, ms)
}

// AppendFloat appends the shortest decimal representation of f that
// reads back to the same value. Values with a decimal exponent in
// [-4, 16) use plain notation and always keep a fractional part
// (1.3, 0.0, -2.0); other values use exponent notation (1e-05, 1.5e+16).
func AppendFloat(dst []byte, f float64) []byte {
	switch {
	case math.IsNaN(f):
		return append(dst, "nan"...)
	case math.IsInf(f, 1):
		return append(dst, "inf"...)
	case math.IsInf(f, -1):
		return append(dst, "-inf"...)
	}
	var eb [32]byte
	e := strconv.AppendFloat(eb[:0], f, 'e', -1, 64)
	exp, _ := strconv.Atoi(string(e[bytes.IndexByte(e, 'e')+1:]))
	if exp < -4 || exp >= 16 {
		return append(dst, e...)
	}
	n := len(dst)
	dst = strconv.AppendFloat(dst, f, 'f', -1, 64)
	if bytes.IndexByte(dst[n:], '.') < 0 {
		dst = append(dst, '.', '0')
	}
	return dst
}

// FormatFloat returns f formatted as by [AppendFloat].
func FormatFloat(f float64) string {
	return string(AppendFloat(nil, f))
}
