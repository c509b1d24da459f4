// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fix16

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"github.com/stretchr/testify/assert"
)

// resolution of one fixed-point step
const step = 1.0 / float64(One)

func TestConvert(t *testing.T) {
	assert.Equal(t, T(65536), One)
	assert.Equal(t, One, FromFloat(1))
	assert.Equal(t, T(3*65536), FromInt(3))
	assert.Equal(t, T(-32768), FromFloat(-0.5))
	assert.Equal(t, T(32768), FromFloat32(0.5))
	assert.Equal(t, 1.5, FromFloat(1.5).Float())
	assert.Equal(t, float32(-0.25), FromFloat(-0.25).Float32())
	tolassert.EqualTol(t, 1.3, FromFloat(1.3).Float(), step)
}

func TestArith(t *testing.T) {
	a := FromFloat(1.5)
	b := FromFloat(-2)
	assert.Equal(t, FromFloat(-0.5), a.Add(b))
	assert.Equal(t, FromFloat(3.5), a.Sub(b))
	assert.Equal(t, FromFloat(-3), a.Mul(b))
	assert.Equal(t, FromFloat(-0.75), a.Div(b))
	assert.Equal(t, T(0), a.Div(0))

	// the intermediate product does not overflow 32 bits
	big := FromInt(100)
	assert.Equal(t, FromInt(10000), big.Mul(big))
}

func TestTable(t *testing.T) {
	assert.Equal(t, T(0), Table.Sin(0))
	assert.Equal(t, One, Table.Cos(0))
	assert.Equal(t, One, Table.Sin(90))
	assert.Equal(t, -One, Table.Cos(180))
	assert.Equal(t, Table.Sin(30), Table.Sin(390))
	assert.Equal(t, Table.Sin(330), Table.Sin(-30))
	tolassert.EqualTol(t, 0.5, Table.Sin(30).Float(), 2*step)

	assert.Equal(t, 0, Wrap(360))
	assert.Equal(t, 359, Wrap(-1))
	assert.Equal(t, 10, Wrap(730))
}

func TestRotateY(t *testing.T) {
	v := V3(1, 0.5, 0)
	r := v.RotateY(90)
	x, y, z := r.Floats()
	tolassert.EqualTol(t, 0, x, 1e-4)
	tolassert.EqualTol(t, 0.5, y, 1e-4)
	tolassert.EqualTol(t, 1, z, 1e-4)

	assert.Equal(t, v, v.RotateY(0))
	assert.Equal(t, v.RotateY(45), v.RotateY(405))
}
