// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"cogentcore.org/gamegui/colors"
)

// ParseString parses the given markup attribute text as a value of type T.
// It returns an error wrapping [ErrParse] if the text is not valid for T.
func ParseString[T Value](text string) (T, error) {
	v, err := parseKind(KindOf[T](), text)
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// parseKind parses the given text as a value of the given kind,
// returning the value itself (not a pointer).
func parseKind(k Kinds, text string) (any, error) {
	var v any
	var err error
	switch k {
	case KindBool:
		// only the exact markup spellings are accepted
		switch text {
		case "true":
			v = true
		case "false":
			v = false
		default:
			err = fmt.Errorf("%q is not true or false", text)
		}
	case KindInt:
		var i int
		i, err = strconv.Atoi(strings.TrimSpace(text))
		v = i
	case KindFloat:
		var f float32
		f, err = parseFloat32(strings.TrimSpace(text))
		v = f
	case KindString:
		v = text
	case KindCaption:
		v = Caption(text)
	case KindColor:
		v, err = colors.FromString(text)
	case KindSprite:
		s := Sprite(strings.TrimSpace(text))
		if strings.HasPrefix(string(s), spriteColorPrefix) {
			if _, ok := s.Color(); !ok {
				err = fmt.Errorf("invalid color sprite %q", text)
			}
		}
		v = s
	case KindClientArea:
		v, err = ParseClientArea(text)
	case KindRect:
		v, err = ParseRect(text)
	case KindAlign:
		var a Align
		err = a.SetString(text)
		v = a
	case KindVAlign:
		var a VAlign
		err = a.SetString(text)
		v = a
	default:
		err = fmt.Errorf("invalid kind %v", k)
	}
	if err != nil {
		return nil, fmt.Errorf("%w as %v: %w", ErrParse, k, err)
	}
	return v, nil
}

// formatKind returns the markup attribute text of the value
// pointed to by ptr, which must be of the given kind.
func formatKind(k Kinds, ptr any) string {
	switch k {
	case KindBool:
		return strconv.FormatBool(*ptr.(*bool))
	case KindInt:
		return strconv.Itoa(*ptr.(*int))
	case KindFloat:
		return formatFloat(*ptr.(*float32))
	case KindString:
		return *ptr.(*string)
	case KindCaption:
		return string(*ptr.(*Caption))
	case KindColor:
		c := *ptr.(*color.RGBA)
		if colors.IsNil(c) {
			return ""
		}
		return colors.AsString(c)
	case KindSprite:
		return string(*ptr.(*Sprite))
	case KindClientArea:
		return ptr.(*ClientArea).String()
	case KindRect:
		return ptr.(*Rect).String()
	case KindAlign:
		return ptr.(*Align).String()
	case KindVAlign:
		return ptr.(*VAlign).String()
	}
	return ""
}
