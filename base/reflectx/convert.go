// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"math"
	"reflect"
)

// Script values only convert between kinds with the same meaning:
// a string never becomes a number.

// ToBool converts the given value to a bool, accepting only bool kinds.
func ToBool(v any) (bool, bool) {
	if AnyIsNil(v) {
		return false, false
	}
	rv := NonPointerValue(reflect.ValueOf(v))
	if rv.Kind() == reflect.Bool {
		return rv.Bool(), true
	}
	return false, false
}

// ToFloat converts the given value of any numeric kind to a float64.
func ToFloat(v any) (float64, bool) {
	if AnyIsNil(v) {
		return 0, false
	}
	rv := NonPointerValue(reflect.ValueOf(v))
	switch {
	case rv.CanInt():
		return float64(rv.Int()), true
	case rv.CanUint():
		return float64(rv.Uint()), true
	case rv.CanFloat():
		return rv.Float(), true
	}
	return 0, false
}

// ToInt converts the given value of any numeric kind to an int.
// Floating point values must be integral, and all values must be
// in the int range.
func ToInt(v any) (int, bool) {
	if AnyIsNil(v) {
		return 0, false
	}
	rv := NonPointerValue(reflect.ValueOf(v))
	switch {
	case rv.CanInt():
		i := rv.Int()
		if i < math.MinInt || i > math.MaxInt {
			return 0, false
		}
		return int(i), true
	case rv.CanUint():
		u := rv.Uint()
		if u > math.MaxInt {
			return 0, false
		}
		return int(u), true
	case rv.CanFloat():
		f := rv.Float()
		if f != math.Trunc(f) || f < math.MinInt || f >= math.MaxInt {
			return 0, false
		}
		return int(f), true
	}
	return 0, false
}

// ToFloat32 converts the given value of any numeric kind to a finite
// float32. Values out of the float32 range are rejected.
func ToFloat32(v any) (float32, bool) {
	f, ok := ToFloat(v)
	if !ok || math.IsNaN(f) || math.Abs(f) > math.MaxFloat32 {
		return 0, false
	}
	return float32(f), true
}

// ToString converts the given value of a string kind to a string.
func ToString(v any) (string, bool) {
	if AnyIsNil(v) {
		return "", false
	}
	rv := NonPointerValue(reflect.ValueOf(v))
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}
