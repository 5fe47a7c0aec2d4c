// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

import "cogentcore.org/vecmath/types"

var _ = types.AddType(&types.Type{Name: types.TypeNameValue(Vec2{}), IDName: "vec2", Doc: "Vec2 is a [Vector2] of float32 components.", Instance: Vec2{}})

var _ = types.AddType(&types.Type{Name: types.TypeNameValue(DVec2{}), IDName: "dvec2", Doc: "DVec2 is a [Vector2] of float64 components.", Instance: DVec2{}})

var _ = types.AddType(&types.Type{Name: types.TypeNameValue(UBVec2{}), IDName: "ubvec2", Doc: "UBVec2 is a [Vector2] of uint8 components, eg: for packed color channels.", Instance: UBVec2{}})

// TypeOf returns the registered [types.Type] for [Vector2] of E,
// registering it first if no package has done so yet.
func TypeOf[E Scalar]() *types.Type {
	var v Vector2[E]
	if tp := types.TypeByValue(v); tp != nil {
		return tp
	}
	return types.AddType(&types.Type{Name: types.TypeNameValue(v), Instance: v})
}

// Type returns the registered [types.Type] of v.
func (v Vector2[E]) Type() *types.Type {
	return TypeOf[E]()
}
