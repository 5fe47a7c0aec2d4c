// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

import (
	"image"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/fixed"
)

// Convert returns v with each component converted to E.
//
// Conversions follow E's own rules: float64 to float32 rounds,
// integers widen to floats, and floats headed for an integer
// type truncate toward zero and then wrap to E's width
// (so a float32 300 becomes a uint8 44, and -1 becomes 255).
// This holds for values within the int64 or uint64 range; NaN, ±Inf,
// and larger magnitudes convert in an implementation-defined way.
func Convert[E, R Scalar](v Vector2[R]) Vector2[E] {
	return Vector2[E]{convert[E](v[0]), convert[E](v[1])}
}

// Assign sets dst to src converted to dst's element type,
// and returns dst for chaining.
func Assign[E, R Scalar](dst *Vector2[E], src Vector2[R]) *Vector2[E] {
	*dst = Convert[E](src)
	return dst
}

// ToF32 returns v as a [f32.Vec2].
func ToF32[E Scalar](v Vector2[E]) f32.Vec2 {
	return f32.Vec2{float32(v[0]), float32(v[1])}
}

// FromF32 returns the [Vec2] with the same components as the given [f32.Vec2].
func FromF32(v f32.Vec2) Vec2 {
	return Vec2(v)
}

// FromPoint returns a new [Vec2] from the given [image.Point].
func FromPoint(pt image.Point) Vec2 {
	return Vec2{float32(pt.X), float32(pt.Y)}
}

// ToPoint returns v as an [image.Point], truncating each component.
func ToPoint[E Scalar](v Vector2[E]) image.Point {
	return image.Point{X: int(convert[int64](v[0])), Y: int(convert[int64](v[1]))}
}

// FromFixed returns a new [Vec2] from the given [fixed.Point26_6].
func FromFixed(pt fixed.Point26_6) Vec2 {
	return Vec2{fromFixed(pt.X), fromFixed(pt.Y)}
}

// ToFixed returns v as a [fixed.Point26_6].
func ToFixed(v Vec2) fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(v[0]), Y: toFixed(v[1])}
}

func fromFixed(x fixed.Int26_6) float32 {
	return float32(x) / 64
}

func toFixed(x float32) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}
