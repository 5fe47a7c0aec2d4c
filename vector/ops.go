// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

// Basic math operations. None of these modify v.

// Negate returns the vector with each component negated.
// Unsigned components wrap, as Go's unary minus does.
func (v Vector2[E]) Negate() Vector2[E] {
	return Vector2[E]{-v[0], -v[1]}
}

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector2[E]) Add(other Vector2[E]) Vector2[E] {
	return Vector2[E]{v[0] + other[0], v[1] + other[1]}
}

// Sub subtracts the other given vector from this one and returns the result as a new vector.
func (v Vector2[E]) Sub(other Vector2[E]) Vector2[E] {
	return Vector2[E]{v[0] - other[0], v[1] - other[1]}
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector2[E]) Mul(other Vector2[E]) Vector2[E] {
	return Vector2[E]{v[0] * other[0], v[1] * other[1]}
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector2[E]) MulScalar(s E) Vector2[E] {
	return Vector2[E]{v[0] * s, v[1] * s}
}

// Div divides each component of this vector by the corresponding one from other vector
// and returns resulting vector.
func (v Vector2[E]) Div(other Vector2[E]) Vector2[E] {
	return Vector2[E]{v[0] / other[0], v[1] / other[1]}
}

// DivScalar divides each component of this vector by the scalar s and returns resulting vector.
//
// It computes 1/s once and multiplies by that, so for float types the result
// may differ in the last bit from [Vector2.DivScalarExact]. A zero s is not
// special-cased: floats give Inf or NaN, and integers panic with Go's
// integer divide by zero. For integer types 1/s is itself an integer
// division, which is 0 for any |s| > 1.
func (v Vector2[E]) DivScalar(s E) Vector2[E] {
	inv := 1 / s
	return Vector2[E]{v[0] * inv, v[1] * inv}
}

// DivScalarExact divides each component of this vector directly by the scalar s.
func (v Vector2[E]) DivScalarExact(s E) Vector2[E] {
	return Vector2[E]{v[0] / s, v[1] / s}
}

// Dot, Length, Normal:

// Dot returns the dot product of this vector with the given other vector.
func (v Vector2[E]) Dot(other Vector2[E]) E {
	return v[0]*other[0] + v[1]*other[1]
}

// Length returns the length (magnitude) of this vector.
// For integer types the root is truncated.
func (v Vector2[E]) Length() E {
	return hypot(v[0], v[1])
}

// LengthSquared returns the length squared of this vector.
// LengthSquared can be used to compare the lengths of vectors
// without the need to perform a square root.
func (v Vector2[E]) LengthSquared() E {
	return v[0]*v[0] + v[1]*v[1]
}

// Normal returns this vector scaled by 1/[Vector2.Length] (its unit vector).
// The zero vector is not special-cased: floats give NaN components and
// integers panic with Go's integer divide by zero.
func (v Vector2[E]) Normal() Vector2[E] {
	inv := 1 / v.Length()
	return Vector2[E]{v[0] * inv, v[1] * inv}
}

// Lerp returns vector with each components as the linear interpolated value of
// alpha between itself and the corresponding other component.
func (v Vector2[E]) Lerp(other Vector2[E], alpha E) Vector2[E] {
	return Vector2[E]{v[0] + (other[0]-v[0])*alpha, v[1] + (other[1]-v[1])*alpha}
}

// IsEqual returns if this vector is equal to other.
func (v Vector2[E]) IsEqual(other Vector2[E]) bool {
	return v == other
}

// Negate returns v with each component negated.
func Negate[E Scalar](v Vector2[E]) Vector2[E] {
	return v.Negate()
}

// Length returns the Euclidean length of v.
func Length[E Scalar](v Vector2[E]) E {
	return v.Length()
}

// Normalize returns v scaled to unit length. See [Vector2.Normal].
func Normalize[E Scalar](v Vector2[E]) Vector2[E] {
	return v.Normal()
}

// Dot returns the dot product of a and b.
func Dot[E Scalar](a, b Vector2[E]) E {
	return a.Dot(b)
}
