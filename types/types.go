// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types provides a process-wide registry that associates
// Go types with canonical names, for reflection and debugging.
package types

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/iancoleman/strcase"
)

// ErrNotFound is returned by the Try lookups when no type is registered
// under the requested name.
var ErrNotFound = errors.New("type not found")

var (
	// registry records all types
	// key is long type name: package_url.Type, e.g., cogentcore.org/vecmath/vector.Vector2[float32]
	registry = map[string]*Type{}

	// byIDName indexes the same types by their IDName.
	byIDName = map[string]*Type{}

	mu sync.RWMutex

	// typeIDCounter is an atomically incremented uint64 used
	// for assigning new [Type.ID] numbers
	typeIDCounter uint64
)

// AddType adds a constructed [Type] to the registry and returns it.
// This sets the ID, and the IDName if it is empty.
// Registering a name that already exists is a no-op that
// returns the existing entry, so AddType is safe to call repeatedly.
func AddType(typ *Type) *Type {
	mu.Lock()
	defer mu.Unlock()
	if ex, has := registry[typ.Name]; has {
		slog.Debug("types.AddType: Type already exists", "Type.Name", typ.Name, "Type.ID", ex.ID)
		return ex
	}
	if typ.IDName == "" {
		typ.IDName = strcase.ToKebab(baseName(typ.Name))
	}
	typ.ID = atomic.AddUint64(&typeIDCounter, 1)
	registry[typ.Name] = typ
	if _, has := byIDName[typ.IDName]; !has {
		byIDName[typ.IDName] = typ
	}
	return typ
}

// TypeByName returns a Type by name (package_url.Type, e.g., cogentcore.org/vecmath/vector.Vector2[float32]),
// or nil if it is not registered.
func TypeByName(nm string) *Type {
	mu.RLock()
	defer mu.RUnlock()
	return registry[nm]
}

// TypeByNameTry returns a Type by name (package_url.Type, e.g., cogentcore.org/vecmath/vector.Vector2[float32]),
// or an error wrapping [ErrNotFound] if not found.
func TypeByNameTry(nm string) (*Type, error) {
	tp := TypeByName(nm)
	if tp == nil {
		return nil, fmt.Errorf("type %q: %w", nm, ErrNotFound)
	}
	return tp, nil
}

// TypeByIDName returns the first Type registered with the given IDName (eg: vec2),
// or nil.
func TypeByIDName(id string) *Type {
	mu.RLock()
	defer mu.RUnlock()
	return byIDName[id]
}

// TypeByValue returns the [Type] of the given value, or nil.
func TypeByValue(v any) *Type {
	return TypeByName(TypeNameValue(v))
}

// AllTypes returns all registered types in the order they were added.
func AllTypes() []*Type {
	mu.RLock()
	all := make([]*Type, 0, len(registry))
	for _, tp := range registry {
		all = append(all, tp)
	}
	mu.RUnlock()
	slices.SortFunc(all, func(a, b *Type) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return all
}

// TypeName returns the long, full package-path qualified type name.
// This is guaranteed to be unique and is the registry key.
// Pointer types are named by their element type. Unnamed and
// predeclared types, which have no package path, use [reflect.Type.String].
func TypeName(typ reflect.Type) string {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Name() == "" || typ.PkgPath() == "" {
		return typ.String()
	}
	return typ.PkgPath() + "." + typ.Name()
}

// TypeNameValue returns the long, full package-path qualified type name
// of the given value.
func TypeNameValue(v any) string {
	return TypeName(reflect.TypeOf(v))
}

// baseName returns the unqualified name of the type,
// without package path or type arguments.
func baseName(nm string) string {
	if bi := strings.Index(nm, "["); bi >= 0 {
		nm = nm[:bi]
	}
	if li := strings.LastIndex(nm, "."); li >= 0 {
		nm = nm[li+1:]
	}
	return nm
}
