// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides reflection helpers for converting
// values exchanged with the script engine.
package reflectx

import (
	"reflect"
)

// NonPointerValue follows pointers until it reaches a value that is
// not a pointer, or an invalid value for a nil pointer.
func NonPointerValue(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return v
}

// AnyIsNil returns whether v is nil or holds a nil pointer, map,
// slice, func, chan or interface.
func AnyIsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// IsFunc returns whether v holds a non-nil function, as script
// event handlers must.
func IsFunc(v any) bool {
	if AnyIsNil(v) {
		return false
	}
	return reflect.ValueOf(v).Kind() == reflect.Func
}
