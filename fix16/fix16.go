// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fix16 provides Q16.16 signed fixed-point numbers, vectors,
// and a sine / cosine lookup table indexed in whole degrees, for
// transforming mesh vertices without floating-point trigonometry.
package fix16

import "math"

// Shift is the number of fractional bits.
const Shift = 16

// One is 1.0 in fixed point.
const One T = 1 << Shift

// T is a Q16.16 signed fixed-point number.
type T int32

// FromFloat converts a float to fixed point, truncating toward zero.
func FromFloat(f float64) T { return T(f * float64(One)) }

// FromFloat32 converts a float32 to fixed point, truncating toward zero.
func FromFloat32(f float32) T { return T(f * float32(One)) }

// FromInt converts an integer to fixed point.
func FromInt(i int) T { return T(i) << Shift }

// Float returns the value as a float64.
func (a T) Float() float64 { return float64(a) / float64(One) }

// Float32 returns the value as a float32.
func (a T) Float32() float32 { return float32(a) / float32(One) }

// Add returns a + b.
func (a T) Add(b T) T { return a + b }

// Sub returns a - b.
func (a T) Sub(b T) T { return a - b }

// Mul returns a * b, with a 64-bit intermediate product.
func (a T) Mul(b T) T { return T((int64(a) * int64(b)) >> Shift) }

// Div returns a / b; division by zero returns 0.
func (a T) Div(b T) T {
	if b == 0 {
		return 0
	}
	return T((int64(a) << Shift) / int64(b))
}

// Vec3 is a 3D vector of fixed-point components.
type Vec3 struct {
	X, Y, Z T
}

// V3 returns a new [Vec3] from float components.
func V3(x, y, z float64) Vec3 {
	return Vec3{FromFloat(x), FromFloat(y), FromFloat(z)}
}

// Floats returns the components as float32 values.
func (v Vec3) Floats() (x, y, z float32) {
	return v.X.Float32(), v.Y.Float32(), v.Z.Float32()
}

// RotateY returns v rotated around the Y axis by the given angle
// in whole degrees, using [Table].
func (v Vec3) RotateY(deg int) Vec3 {
	s := Table.Sin(deg)
	c := Table.Cos(deg)
	return Vec3{
		X: v.X.Mul(c).Sub(v.Z.Mul(s)),
		Y: v.Y,
		Z: v.X.Mul(s).Add(v.Z.Mul(c)),
	}
}

// TableSize is the number of entries in a [SinCos] table: one per degree.
const TableSize = 360

// SinCos is a lookup table of fixed-point sine and cosine values
// for each whole degree.
type SinCos struct {
	sin [TableSize]T
	cos [TableSize]T
}

// Table is the shared sine / cosine table.
var Table = NewSinCos()

// NewSinCos returns a computed [SinCos] table.
func NewSinCos() *SinCos {
	sc := &SinCos{}
	for i := 0; i < TableSize; i++ {
		rad := 2 * math.Pi * float64(i) / TableSize
		sc.sin[i] = FromFloat(math.Sin(rad))
		sc.cos[i] = FromFloat(math.Cos(rad))
	}
	return sc
}

// Sin returns the sine of the angle in degrees. Any angle is
// accepted and wrapped into [0, 360).
func (sc *SinCos) Sin(deg int) T { return sc.sin[Wrap(deg)] }

// Cos returns the cosine of the angle in degrees. Any angle is
// accepted and wrapped into [0, 360).
func (sc *SinCos) Cos(deg int) T { return sc.cos[Wrap(deg)] }

// Wrap wraps an angle in degrees into [0, 360).
func Wrap(deg int) int {
	deg %= TableSize
	if deg < 0 {
		deg += TableSize
	}
	return deg
}
