// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmetic(t *testing.T) {
	assert.Equal(t, Vec2{-3, -4}, Vec2{3, 4}.Negate())
	assert.Equal(t, DVec2{-3, -4}, Negate(DVec2{3, 4}))
	assert.Equal(t, UBVec2{255, 0}, UBVec2{1, 0}.Negate())

	assert.Equal(t, Vec2{4, 6}, Vec2{1, 2}.Add(Vec2{3, 4}))
	assert.Equal(t, Vec2{1, 2}, Vec2{4, 6}.Sub(Vec2{3, 4}))
	assert.Equal(t, UBVec2{4, 6}, UBVec2{1, 2}.Add(UBVec2{3, 4}))
	assert.Equal(t, DVec2{1, 2}, DVec2{4, 6}.Sub(DVec2{3, 4}))

	assert.Equal(t, Vec2{4, 8}, Vec2{2, 4}.MulScalar(2))
	assert.Equal(t, UBVec2{4, 8}, UBVec2{2, 4}.MulScalar(2))
	tolAssertEqualVector(t, standardTol, Vec2{2, 4}, Vec2{4, 8}.DivScalar(2))
	assert.InDelta(t, 2.0, DVec2{4, 8}.DivScalar(2)[0], 1e-12)
	assert.InDelta(t, 4.0, DVec2{4, 8}.DivScalar(2)[1], 1e-12)

	assert.Equal(t, Vec2{3, 8}, Vec2{1, 2}.Mul(Vec2{3, 4}))
	assert.Equal(t, Vec2{3, 2}, Vec2{9, 8}.Div(Vec2{3, 4}))

	a := Vec2{1, 2}
	_ = a.Add(Vec2{5, 5})
	_ = a.MulScalar(3)
	_ = a.Negate()
	assert.Equal(t, Vec2{1, 2}, a)
}

func TestDivScalar(t *testing.T) {
	v := Vec2{1, 2}
	tolAssertEqualVector(t, standardTol, v.DivScalarExact(3), v.DivScalar(3))
	assert.Equal(t, Vec2{1.0 / 3, 2.0 / 3}, v.DivScalarExact(3))

	inf := v.DivScalar(0)
	assert.True(t, math.IsInf(float64(inf[0]), 1))
	assert.True(t, math.IsInf(float64(inf[1]), 1))

	neg := Vec2{-1, 0}.DivScalar(0)
	assert.True(t, math.IsInf(float64(neg[0]), -1))
	assert.True(t, math.IsNaN(float64(neg[1])))

	// integer reciprocal truncates
	assert.Equal(t, UBVec2{0, 0}, UBVec2{4, 8}.DivScalar(2))
	assert.Equal(t, UBVec2{4, 8}, UBVec2{4, 8}.DivScalar(1))
	assert.Equal(t, UBVec2{2, 4}, UBVec2{4, 8}.DivScalarExact(2))
	assert.Panics(t, func() { UBVec2{4, 8}.DivScalar(0) })
}

func TestLength(t *testing.T) {
	assert.Equal(t, float32(5), Vec2{3, 4}.Length())
	assert.Equal(t, float32(5), Length(Vec2{3, 4}))
	assert.Equal(t, 5.0, DVec2{3, 4}.Length())
	assert.Equal(t, 5.0, DVec2{-3, -4}.Length())
	assert.Equal(t, uint8(5), UBVec2{3, 4}.Length())
	assert.Equal(t, uint8(1), UBVec2{1, 1}.Length())
	// squares are taken in float64: sqrt(80000) = 282.8, truncated to 282, wrapped to 26
	assert.Equal(t, uint8(26), UBVec2{200, 200}.Length())

	assert.Equal(t, float32(25), Vec2{3, 4}.LengthSquared())
	assert.Equal(t, float32(0), Vec2{}.Length())
}

func TestNormal(t *testing.T) {
	v := NewVec2(3, 4)
	assert.Equal(t, float32(5), Length(v))
	n := Normalize(v)
	tolAssertEqualVector(t, standardTol, Vec2{0.6, 0.8}, n)
	assert.InDelta(t, 1, n.Length(), float64(standardTol))
	assert.InDelta(t, v[0]/v[1], n[0]/n[1], float64(standardTol))

	d := DVec2{-6, 8}.Normal()
	assert.InDelta(t, -0.6, d[0], 1e-12)
	assert.InDelta(t, 0.8, d[1], 1e-12)

	z := Vec2{}.Normal()
	assert.True(t, math.IsNaN(float64(z[0])))
	assert.True(t, math.IsNaN(float64(z[1])))

	assert.Equal(t, UBVec2{0, 1}, UBVec2{0, 1}.Normal())
	// the integer reciprocal of any length over 1 is 0
	assert.Equal(t, UBVec2{0, 0}, UBVec2{0, 9}.Normal())
	assert.Panics(t, func() { UBVec2{}.Normal() })
}

func TestDot(t *testing.T) {
	assert.Equal(t, float32(11), Vec2{1, 2}.Dot(Vec2{3, 4}))
	assert.Equal(t, 11.0, Dot(DVec2{1, 2}, DVec2{3, 4}))
	assert.Equal(t, 0.0, Dot(DVec2{1, 0}, DVec2{0, 1}))
	assert.Equal(t, uint8(11), Dot(UBVec2{1, 2}, UBVec2{3, 4}))
	assert.Equal(t, Vec2{3, 4}.LengthSquared(), Vec2{3, 4}.Dot(Vec2{3, 4}))
}

func TestLerp(t *testing.T) {
	tolAssertEqualVector(t, standardTol, Vec2{2, 3}, Vec2{0, 2}.Lerp(Vec2{4, 4}, 0.5))
	assert.Equal(t, Vec2{0, 2}, Vec2{0, 2}.Lerp(Vec2{4, 4}, 0))
	assert.True(t, Vec2{1, 2}.IsEqual(Vec2{1, 2}))
	assert.False(t, Vec2{1, 2}.IsEqual(Vec2{2, 1}))
}

func BenchmarkDivScalar(b *testing.B) {
	v := Vec2{3, 4}
	for i := 0; i < b.N; i++ {
		v = v.DivScalar(1.0001)
	}
}

func BenchmarkDivScalarExact(b *testing.B) {
	v := Vec2{3, 4}
	for i := 0; i < b.N; i++ {
		v = v.DivScalarExact(1.0001)
	}
}
