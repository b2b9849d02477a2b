// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import (
	"strings"

	"github.com/chewxy/math32"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Line is one wrapped line of generated text.
type Line struct {

	// Text is the content of the line, without trailing spaces.
	Text string

	// X is the horizontal offset of the line start from the
	// left edge of the text box.
	X float32

	// Baseline is the vertical offset of the line baseline from the
	// top edge of the text box.
	Baseline float32

	// Width is the advance width of the line.
	Width float32
}

// Generated is a caption laid out in a given font and width.
// It is the renderable unit of text: it has a size but no position.
type Generated struct {

	// Font is the name of the font the text was generated with.
	Font string

	// Lines are the wrapped lines.
	Lines []Line

	// Width and Height are the size of the text box,
	// including the buffer zone on each side.
	Width, Height float32

	// LineHeight is the distance between successive baselines.
	LineHeight float32
}

// Generate lays out the given caption in the named font. Lines are
// wrapped at word boundaries to fit within width less bufferZone on each
// side; a width of zero or less disables wrapping. Newlines always
// start a new line. A single word wider than the available width is
// kept on its own line.
func Generate(caption, fontName string, width, bufferZone float32) *Generated {
	face := Font(fontName)
	m := face.Metrics()
	gt := &Generated{Font: fontName, LineHeight: fixedToFloat(m.Height)}
	ascent := fixedToFloat(m.Ascent)
	avail := width - 2*bufferZone
	wrap := width > 0

	var maxw float32
	addLine := func(s string) {
		w := measure(face, s)
		maxw = math32.Max(maxw, w)
		gt.Lines = append(gt.Lines, Line{
			Text:     s,
			X:        bufferZone,
			Baseline: bufferZone + ascent + float32(len(gt.Lines))*gt.LineHeight,
			Width:    w,
		})
	}
	for _, para := range strings.Split(caption, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			addLine("")
			continue
		}
		cur := words[0]
		for _, w := range words[1:] {
			next := cur + " " + w
			if wrap && measure(face, next) > avail {
				addLine(cur)
				cur = w
				continue
			}
			cur = next
		}
		addLine(cur)
	}
	gt.Width = math32.Ceil(maxw) + 2*bufferZone
	gt.Height = float32(len(gt.Lines))*gt.LineHeight + 2*bufferZone
	return gt
}

// Size returns the width and height of the text box.
func (gt *Generated) Size() (w, h float32) {
	return gt.Width, gt.Height
}

func measure(face font.Face, s string) float32 {
	return fixedToFloat(font.MeasureString(face, s))
}

func fixedToFloat(x fixed.Int26_6) float32 {
	return float32(x) / 64
}
