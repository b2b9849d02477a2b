// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"image/color"

	"cogentcore.org/gamegui/base/reflectx"
	"cogentcore.org/gamegui/colors"
)

// fromScript converts the given script value to a value of the given kind.
// It returns false if the script value can not represent the kind.
func fromScript(k Kinds, sv any) (any, bool) {
	switch k {
	case KindBool:
		return reflectx.ToBool(sv)
	case KindInt:
		return reflectx.ToInt(sv)
	case KindFloat:
		return reflectx.ToFloat32(sv)
	case KindString:
		return reflectx.ToString(sv)
	case KindCaption:
		s, ok := reflectx.ToString(sv)
		return Caption(s), ok
	case KindColor:
		return colorFromScript(sv)
	case KindSprite:
		s, ok := reflectx.ToString(sv)
		return Sprite(s), ok
	case KindClientArea:
		switch v := sv.(type) {
		case ClientArea:
			return v, true
		case *ClientArea:
			if v != nil {
				return *v, true
			}
		case string:
			ca, err := ParseClientArea(v)
			return ca, err == nil
		}
	case KindRect:
		return rectFromScript(sv)
	case KindAlign:
		switch v := sv.(type) {
		case Align:
			return v, true
		case string:
			var a Align
			return a, a.SetString(v) == nil
		}
	case KindVAlign:
		switch v := sv.(type) {
		case VAlign:
			return v, true
		case string:
			var a VAlign
			return a, a.SetString(v) == nil
		}
	}
	return nil, false
}

// colorFromScript accepts colors, color strings, and objects
// with r, g, b and optional a fields.
func colorFromScript(sv any) (any, bool) {
	switch v := sv.(type) {
	case color.RGBA:
		return v, true
	case color.Color:
		return colors.AsRGBA(v), true
	case string:
		c, err := colors.FromString(v)
		return c, err == nil
	case map[string]any:
		comps := [4]uint8{0, 0, 0, 255}
		for i, key := range []string{"r", "g", "b", "a"} {
			cv, has := v[key]
			if !has {
				if i < 3 {
					return nil, false
				}
				continue
			}
			n, ok := reflectx.ToFloat(cv)
			if !ok || n < 0 || n > 255 {
				return nil, false
			}
			comps[i] = uint8(n + 0.5)
		}
		return color.RGBA{comps[0], comps[1], comps[2], comps[3]}, true
	}
	return nil, false
}

// rectFromScript accepts rects, rect strings, and objects with
// left, top, right and bottom fields.
func rectFromScript(sv any) (any, bool) {
	switch v := sv.(type) {
	case Rect:
		return v, true
	case string:
		r, err := ParseRect(v)
		return r, err == nil
	case map[string]any:
		var edges [4]float32
		for i, key := range []string{"left", "top", "right", "bottom"} {
			f, ok := reflectx.ToFloat(v[key])
			if !ok {
				return nil, false
			}
			edges[i] = float32(f)
		}
		return Rect{edges[0], edges[1], edges[2], edges[3]}, true
	}
	return nil, false
}

// toScript converts the value pointed to by ptr, of the given kind,
// to a script value.
func toScript(k Kinds, ptr any) any {
	switch k {
	case KindBool:
		return *ptr.(*bool)
	case KindInt:
		return *ptr.(*int)
	case KindFloat:
		return float64(*ptr.(*float32))
	case KindString:
		return *ptr.(*string)
	case KindCaption:
		return string(*ptr.(*Caption))
	case KindColor:
		return *ptr.(*color.RGBA)
	case KindSprite:
		return string(*ptr.(*Sprite))
	case KindClientArea:
		return *ptr.(*ClientArea)
	case KindRect:
		return *ptr.(*Rect)
	case KindAlign:
		return ptr.(*Align).String()
	case KindVAlign:
		return ptr.(*VAlign).String()
	}
	return nil
}
