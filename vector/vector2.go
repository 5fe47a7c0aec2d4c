// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vector provides a generic two-component vector value type,
// [Vector2], for positions, texture coordinates, and colors, along
// with its float32, float64, and uint8 instantiations.
package vector

import (
	"errors"
	"fmt"
)

// Vector2 is a vector/point with two components of element type E,
// stored contiguously in index order.
//
// The same two components can be read and written under three naming
// schemes: X/Y for positions, R/G for colors, and S/T for texture
// coordinates. Each pair is a view onto the one underlying array,
// so a write through any name, index, or [Vector2.Data] pointer
// is seen by all of the others.
//
// Indexing with v[i] requires i to be 0 or 1. Any other index
// panics, as for every Go array.
//
// The zero value is (0, 0).
type Vector2[E Scalar] [2]E

// Vec2 is a [Vector2] of float32 components.
type Vec2 = Vector2[float32]

// DVec2 is a [Vector2] of float64 components.
type DVec2 = Vector2[float64]

// UBVec2 is a [Vector2] of uint8 components, eg: for packed color channels.
type UBVec2 = Vector2[uint8]

// Dims is a component index of a [Vector2].
type Dims int

const (
	// X is the first component, also named R and S.
	X Dims = iota

	// Y is the second component, also named G and T.
	Y

	// DimsN is the number of components.
	DimsN
)

// ErrDimRange is returned by [Vector2.DimTry] for a dimension
// outside of [X, Y].
var ErrDimRange = errors.New("dim is out of range")

// New returns a new [Vector2] with the given x and y components.
// No validation is done; NaN and Inf are accepted for float types.
func New[E Scalar](x, y E) Vector2[E] {
	return Vector2[E]{x, y}
}

// Zero returns the (0, 0) [Vector2].
func Zero[E Scalar]() Vector2[E] {
	return Vector2[E]{}
}

// Splat returns a new [Vector2] with both components set to the given scalar value.
func Splat[E Scalar](scalar E) Vector2[E] {
	return Vector2[E]{scalar, scalar}
}

// NewVec2 returns a new [Vec2] with the given x and y components.
func NewVec2(x, y float32) Vec2 {
	return Vec2{x, y}
}

// NewDVec2 returns a new [DVec2] with the given x and y components.
func NewDVec2(x, y float64) DVec2 {
	return DVec2{x, y}
}

// NewUBVec2 returns a new [UBVec2] with the given x and y components.
func NewUBVec2(x, y uint8) UBVec2 {
	return UBVec2{x, y}
}

// Size returns the number of components, which is always 2.
func (v Vector2[E]) Size() int {
	return len(v)
}

// X returns the first component.
func (v Vector2[E]) X() E { return v[0] }

// Y returns the second component.
func (v Vector2[E]) Y() E { return v[1] }

// R returns the first component, as a color channel.
func (v Vector2[E]) R() E { return v[0] }

// G returns the second component, as a color channel.
func (v Vector2[E]) G() E { return v[1] }

// S returns the first component, as a texture coordinate.
func (v Vector2[E]) S() E { return v[0] }

// T returns the second component, as a texture coordinate.
func (v Vector2[E]) T() E { return v[1] }

// SetX sets the first component.
func (v *Vector2[E]) SetX(x E) { v[0] = x }

// SetY sets the second component.
func (v *Vector2[E]) SetY(y E) { v[1] = y }

// SetR sets the first component, as a color channel.
func (v *Vector2[E]) SetR(r E) { v[0] = r }

// SetG sets the second component, as a color channel.
func (v *Vector2[E]) SetG(g E) { v[1] = g }

// SetS sets the first component, as a texture coordinate.
func (v *Vector2[E]) SetS(s E) { v[0] = s }

// SetT sets the second component, as a texture coordinate.
func (v *Vector2[E]) SetT(t E) { v[1] = t }

// Set sets both components of this vector.
func (v *Vector2[E]) Set(x, y E) {
	v[0] = x
	v[1] = y
}

// SetScalar sets both components to the same scalar value.
func (v *Vector2[E]) SetScalar(scalar E) {
	v[0] = scalar
	v[1] = scalar
}

// SetZero sets both components to zero.
func (v *Vector2[E]) SetZero() {
	v.SetScalar(0)
}

// SetDim sets this vector component value by dimension index.
func (v *Vector2[E]) SetDim(dim Dims, value E) {
	switch dim {
	case X:
		v[0] = value
	case Y:
		v[1] = value
	default:
		panic("dim is out of range")
	}
}

// Dim returns this vector component.
func (v Vector2[E]) Dim(dim Dims) E {
	switch dim {
	case X:
		return v[0]
	case Y:
		return v[1]
	default:
		panic("dim is out of range")
	}
}

// DimTry is like [Vector2.Dim], but returns an error wrapping
// [ErrDimRange] instead of panicking on a bad dimension.
func (v Vector2[E]) DimTry(dim Dims) (E, error) {
	if dim < X || dim >= DimsN {
		return 0, fmt.Errorf("vector.Vector2.DimTry(%d): %w", dim, ErrDimRange)
	}
	return v[dim], nil
}

// Data returns a pointer to the two components in index order,
// for APIs that consume flat numeric buffers. It stays valid for
// as long as v does, and writes through it are seen by every view.
func (v *Vector2[E]) Data() *[2]E {
	return (*[2]E)(v)
}

// Slice returns the two components as a slice sharing v's memory.
func (v *Vector2[E]) Slice() []E {
	return v[:]
}

// FromSlice sets this vector's components from the given slice, starting at offset.
func (v *Vector2[E]) FromSlice(array []E, offset int) {
	v[0] = array[offset]
	v[1] = array[offset+1]
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector2[E]) ToSlice(array []E, offset int) {
	array[offset] = v[0]
	array[offset+1] = v[1]
}

func (v Vector2[E]) String() string {
	return fmt.Sprintf("(%v, %v)", v[0], v[1])
}
