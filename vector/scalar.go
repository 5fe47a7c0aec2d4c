// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Scalar is the constraint for the element types a [Vector2] can hold.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// isFloat reports whether E is a floating point type.
func isFloat[E Scalar]() bool {
	one, two := E(1), E(2)
	return one/two != 0
}

// convert converts r to E using E's conversion rules.
// Floating point values headed for an integer type are truncated
// toward zero into a uint64 (non-negative values) or an int64
// (negative values) first, and then wrapped to the width of E.
// For values within the uint64 or int64 range that gives the same
// result on every GOARCH. NaN, ±Inf, and values beyond that range
// remain implementation-defined, as for Go's own conversions.
func convert[E, R Scalar](r R) E {
	if isFloat[R]() && !isFloat[E]() {
		if r >= 0 {
			return E(uint64(r))
		}
		return E(int64(r))
	}
	return E(r)
}

// hypot returns the square root of x*x + y*y as E.
// float32 goes through [math32.Sqrt]; everything else is
// squared and rooted in float64, then converted back.
func hypot[E Scalar](x, y E) E {
	if fx, ok := any(x).(float32); ok {
		fy := any(y).(float32)
		return E(math32.Sqrt(fx*fx + fy*fy))
	}
	dx, dy := float64(x), float64(y)
	return convert[E](math.Sqrt(dx*dx + dy*dy))
}
