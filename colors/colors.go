// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors parses and formats the colors used by GUI settings.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Transparent is a fully transparent color that is distinct from
// the nil color, so it is kept by fallback selection.
var Transparent = color.RGBA{0, 0, 0, 1}

// Presets contains named colors defined by the application in addition
// to the CSS color names. Presets take precedence over CSS names.
var Presets = map[string]color.RGBA{}

// IsNil returns whether the color is the nil initial default color,
// which is the "unset" value of color settings.
func IsNil(c color.RGBA) bool {
	return c == color.RGBA{}
}

// AsRGBA returns the given color as an RGBA color
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// AsString returns the given color in the space separated
// "r g b a" form accepted by [FromString].
func AsString(c color.RGBA) string {
	return fmt.Sprintf("%d %d %d %d", c.R, c.G, c.B, c.A)
}

// FromName returns the color value specified by the given
// preset or CSS standard color name.
func FromName(name string) (color.RGBA, error) {
	if c, ok := Presets[name]; ok {
		return c, nil
	}
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, errors.New("colors.FromName: name not found: " + name)
	}
	return c, nil
}

// FromString returns a color value from the given string.
// It accepts the following forms:
//   - space separated components "r g b" or "r g b a" in the range 0-255
//     (alpha defaults to 255)
//   - hex values "#rgb", "#rrggbb" or "#rrggbbaa"
//   - "none" or "" for the nil color, "transparent" for [Transparent]
//   - a preset name from [Presets] or a CSS color name
func FromString(str string) (color.RGBA, error) {
	str = strings.TrimSpace(str)
	lstr := strings.ToLower(str)
	switch {
	case lstr == "" || lstr == "none":
		return color.RGBA{}, nil
	case lstr == "transparent":
		return Transparent, nil
	case lstr[0] == '#':
		return FromHex(lstr)
	case (lstr[0] >= '0' && lstr[0] <= '9') || lstr[0] == '.':
		return fromComponents(lstr)
	}
	return FromName(str)
}

// fromComponents parses the "r g b [a]" form.
func fromComponents(str string) (color.RGBA, error) {
	fields := strings.Fields(str)
	if len(fields) != 3 && len(fields) != 4 {
		return color.RGBA{}, fmt.Errorf("colors.FromString: expected 3 or 4 components, got %d in %q", len(fields), str)
	}
	comps := [4]uint8{0, 0, 0, 255}
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromString: invalid component %q: %w", f, err)
		}
		if v < 0 || v > 255 {
			return color.RGBA{}, fmt.Errorf("colors.FromString: component %q out of range 0-255", f)
		}
		comps[i] = uint8(v + 0.5)
	}
	return color.RGBA{comps[0], comps[1], comps[2], comps[3]}, nil
}

// FromHex parses the given hex color string
// and returns the resulting color.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b, a uint8
	a = 255
	var err error
	switch len(hex) {
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return color.RGBA{}, errors.New("colors.FromHex: could not process: " + hex)
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, err)
	}
	return color.RGBA{r, g, b, a}, nil
}

// AsHex returns the color as a standard
// 2-hexadecimal-digits-per-component string
func AsHex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
