// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gui

import (
	"cogentcore.org/gamegui/settings"
	"cogentcore.org/gamegui/text"
)

// TextOwner caches the generated texts of an object and their
// positions. Texts are regenerated lazily after being invalidated.
type TextOwner struct {

	// Texts are the generated text slots.
	Texts []*text.Generated

	// Positions are the top left positions of the texts.
	Positions []TextPos

	valid bool
}

// TextPos is the position of a generated text.
type TextPos struct {
	X, Y float32
}

// AddText adds an empty generated text slot and returns its index.
func (to *TextOwner) AddText() int {
	to.Texts = append(to.Texts, &text.Generated{})
	to.Positions = append(to.Positions, TextPos{})
	to.valid = false
	return len(to.Texts) - 1
}

// Invalidate marks the texts as needing regeneration.
func (to *TextOwner) Invalidate() {
	to.valid = false
}

// Valid returns whether the texts are up to date.
func (to *TextOwner) Valid() bool {
	return to.valid
}

// SetText stores a newly generated text in the given slot, positioned
// within the given rectangle by the given alignments, and marks the
// texts valid.
func (to *TextOwner) SetText(index int, gt *text.Generated, in settings.Rect, align settings.Align, valign settings.VAlign) {
	to.Texts[index] = gt
	to.Positions[index] = TextPosition(gt, in, align, valign)
	to.valid = true
}

// TextPosition returns the top left position of the given text when
// aligned within the given rectangle.
func TextPosition(gt *text.Generated, in settings.Rect, align settings.Align, valign settings.VAlign) TextPos {
	var p TextPos
	switch align {
	case settings.AlignLeft:
		p.X = in.Left
	case settings.AlignCenter:
		p.X = in.Left + (in.Width()-gt.Width)/2
	case settings.AlignRight:
		p.X = in.Right - gt.Width
	}
	switch valign {
	case settings.VAlignTop:
		p.Y = in.Top
	case settings.VAlignCenter:
		p.Y = in.Top + (in.Height()-gt.Height)/2
	case settings.VAlignBottom:
		p.Y = in.Bottom - gt.Height
	}
	return p
}
