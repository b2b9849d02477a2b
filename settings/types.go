// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/gamegui/colors"
)

// Caption is the text displayed by a widget. It is kept distinct from
// plain strings since it is the input of text generation.
type Caption string

// Sprite identifies what to draw for a widget state. It is either the
// name of a sprite known to the renderer, or a solid color sprite of the
// form "color: r g b a". The empty sprite is the null sprite.
type Sprite string

// spriteColorPrefix starts a solid color sprite.
const spriteColorPrefix = "color:"

// IsEmpty returns whether the sprite is the null sprite.
func (s Sprite) IsEmpty() bool {
	return strings.TrimSpace(string(s)) == ""
}

// Color returns the fill color of a solid color sprite, and false
// if the sprite is not a valid solid color sprite.
func (s Sprite) Color() (color.RGBA, bool) {
	str := strings.TrimSpace(string(s))
	if !strings.HasPrefix(str, spriteColorPrefix) {
		return color.RGBA{}, false
	}
	c, err := colors.FromString(str[len(spriteColorPrefix):])
	if err != nil {
		return color.RGBA{}, false
	}
	return c, true
}

// Align is the horizontal alignment of text within a widget.
type Align int32

const (
	// AlignLeft aligns to the left edge.
	AlignLeft Align = iota

	// AlignCenter centers horizontally.
	AlignCenter

	// AlignRight aligns to the right edge.
	AlignRight
)

// String returns the markup name of the alignment.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return fmt.Sprintf("Align(%d)", int32(a))
}

// SetString sets the alignment from its markup name.
func (a *Align) SetString(s string) error {
	switch strings.TrimSpace(s) {
	case "left":
		*a = AlignLeft
	case "center":
		*a = AlignCenter
	case "right":
		*a = AlignRight
	default:
		return fmt.Errorf("%q is not a valid horizontal alignment", s)
	}
	return nil
}

// VAlign is the vertical alignment of text within a widget.
type VAlign int32

const (
	// VAlignTop aligns to the top edge.
	VAlignTop VAlign = iota

	// VAlignCenter centers vertically.
	VAlignCenter

	// VAlignBottom aligns to the bottom edge.
	VAlignBottom
)

// String returns the markup name of the alignment.
func (a VAlign) String() string {
	switch a {
	case VAlignTop:
		return "top"
	case VAlignCenter:
		return "center"
	case VAlignBottom:
		return "bottom"
	}
	return fmt.Sprintf("VAlign(%d)", int32(a))
}

// SetString sets the alignment from its markup name.
func (a *VAlign) SetString(s string) error {
	switch strings.TrimSpace(s) {
	case "top":
		*a = VAlignTop
	case "center":
		*a = VAlignCenter
	case "bottom":
		*a = VAlignBottom
	default:
		return fmt.Errorf("%q is not a valid vertical alignment", s)
	}
	return nil
}
