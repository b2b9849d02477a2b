// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings provides typed, named settings tables for GUI objects.
// Each setting holds a value of one of a fixed set of types, enumerated
// by [Kinds], and can be parsed from markup attribute text and converted
// to and from values exchanged with the script engine.
package settings

import (
	"errors"
	"image/color"
)

var (
	// ErrSettingNotFound is returned when a setting name is not
	// registered in a table.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrTypeMismatch is returned when a setting is accessed with a
	// type other than the one it was registered with, or when a script
	// value can not be converted to the setting type.
	ErrTypeMismatch = errors.New("setting type mismatch")

	// ErrParse is returned when text can not be parsed as a setting value.
	ErrParse = errors.New("unable to parse setting value")
)

// Kinds enumerates the types that setting values can have.
type Kinds int32

const (
	// KindBool is a bool setting.
	KindBool Kinds = iota

	// KindInt is an int setting.
	KindInt

	// KindFloat is a float32 setting.
	KindFloat

	// KindString is a plain string setting.
	KindString

	// KindCaption is a [Caption] setting.
	KindCaption

	// KindColor is a [color.RGBA] setting.
	KindColor

	// KindSprite is a [Sprite] setting.
	KindSprite

	// KindClientArea is a [ClientArea] setting.
	KindClientArea

	// KindRect is a [Rect] setting.
	KindRect

	// KindAlign is an [Align] setting.
	KindAlign

	// KindVAlign is a [VAlign] setting.
	KindVAlign

	// KindsN is the number of setting kinds.
	KindsN
)

var kindNames = [KindsN]string{"bool", "int", "float", "string", "caption", "color", "sprite", "client-area", "rect", "align", "valign"}

// String returns the name of the kind.
func (k Kinds) String() string {
	if k < 0 || k >= KindsN {
		return "invalid"
	}
	return kindNames[k]
}

// KindFromString returns the kind with the given name, as returned
// by [Kinds.String].
func KindFromString(s string) (Kinds, bool) {
	for i, nm := range kindNames {
		if nm == s {
			return Kinds(i), true
		}
	}
	return KindsN, false
}

// Value is the constraint satisfied by exactly the Go types that
// settings can hold, one for each of the [Kinds].
type Value interface {
	bool | int | float32 | string | Caption | color.RGBA | Sprite | ClientArea | Rect | Align | VAlign
}

// KindOf returns the kind corresponding to the value type T.
func KindOf[T Value]() Kinds {
	var v T
	switch any(v).(type) {
	case bool:
		return KindBool
	case int:
		return KindInt
	case float32:
		return KindFloat
	case string:
		return KindString
	case Caption:
		return KindCaption
	case color.RGBA:
		return KindColor
	case Sprite:
		return KindSprite
	case ClientArea:
		return KindClientArea
	case Rect:
		return KindRect
	case Align:
		return KindAlign
	case VAlign:
		return KindVAlign
	}
	panic("unreachable")
}

// newValue returns a pointer to a new zero value of the given kind.
func newValue(k Kinds) any {
	switch k {
	case KindBool:
		return new(bool)
	case KindInt:
		return new(int)
	case KindFloat:
		return new(float32)
	case KindString:
		return new(string)
	case KindCaption:
		return new(Caption)
	case KindColor:
		return new(color.RGBA)
	case KindSprite:
		return new(Sprite)
	case KindClientArea:
		return new(ClientArea)
	case KindRect:
		return new(Rect)
	case KindAlign:
		return new(Align)
	case KindVAlign:
		return new(VAlign)
	}
	panic("settings: invalid kind " + k.String())
}

// derefKind returns the value pointed to by ptr, of the given kind.
func derefKind(k Kinds, ptr any) any {
	switch k {
	case KindBool:
		return *ptr.(*bool)
	case KindInt:
		return *ptr.(*int)
	case KindFloat:
		return *ptr.(*float32)
	case KindString:
		return *ptr.(*string)
	case KindCaption:
		return *ptr.(*Caption)
	case KindColor:
		return *ptr.(*color.RGBA)
	case KindSprite:
		return *ptr.(*Sprite)
	case KindClientArea:
		return *ptr.(*ClientArea)
	case KindRect:
		return *ptr.(*Rect)
	case KindAlign:
		return *ptr.(*Align)
	case KindVAlign:
		return *ptr.(*VAlign)
	}
	return nil
}

// setKind stores v, a value of the given kind, through ptr.
func setKind(k Kinds, ptr, v any) {
	switch k {
	case KindBool:
		*ptr.(*bool) = v.(bool)
	case KindInt:
		*ptr.(*int) = v.(int)
	case KindFloat:
		*ptr.(*float32) = v.(float32)
	case KindString:
		*ptr.(*string) = v.(string)
	case KindCaption:
		*ptr.(*Caption) = v.(Caption)
	case KindColor:
		*ptr.(*color.RGBA) = v.(color.RGBA)
	case KindSprite:
		*ptr.(*Sprite) = v.(Sprite)
	case KindClientArea:
		*ptr.(*ClientArea) = v.(ClientArea)
	case KindRect:
		*ptr.(*Rect) = v.(Rect)
	case KindAlign:
		*ptr.(*Align) = v.(Align)
	case KindVAlign:
		*ptr.(*VAlign) = v.(VAlign)
	}
}
