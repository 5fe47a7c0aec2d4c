// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"fmt"
	"reflect"
	"strings"
)

// Type represents a registered type.
type Type struct {
	// Name is the fully package-path-qualified name of the type
	// (eg: cogentcore.org/vecmath/vector.Vector2[float32])
	Name string

	// IDName is the short, package-unqualified, kebab-case name of the type that is suitable
	// for use in an ID (eg: vec2)
	IDName string

	// Doc has all of the comment documentation info as one string.
	Doc string

	// Instance is an optional instance of the type
	Instance any

	// ID is the unique type ID number, assigned by [AddType]
	ID uint64
}

func (tp *Type) String() string {
	return tp.Name
}

// ShortName returns the short name of the type (package.Type)
func (tp *Type) ShortName() string {
	li := strings.LastIndex(tp.packagePath(), "/")
	return tp.Name[li+1:]
}

// packagePath returns the part of Name before any type arguments,
// which may themselves contain slashes.
func (tp *Type) packagePath() string {
	if bi := strings.Index(tp.Name, "["); bi >= 0 {
		return tp.Name[:bi]
	}
	return tp.Name
}

func (tp *Type) Label() string {
	if tp.IDName != "" {
		return tp.IDName
	}
	return tp.ShortName()
}

// ReflectType returns the [reflect.Type] for this type, using the Instance.
// Unlike a pointer Instance, a value Instance is returned as is.
func (tp *Type) ReflectType() reflect.Type {
	if tp.Instance == nil {
		return nil
	}
	rt := reflect.TypeOf(tp.Instance)
	if rt.Kind() == reflect.Pointer {
		return rt.Elem()
	}
	return rt
}

func (tp Type) GoString() string {
	return fmt.Sprintf("types.Type{Name: %q, IDName: %q, ID: %d}", tp.Name, tp.IDName, tp.ID)
}
