// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// Rect is an axis aligned rectangle given by its edges, in pixels.
type Rect struct {
	Left, Top, Right, Bottom float32
}

// Width returns the width of the rectangle.
func (r Rect) Width() float32 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float32 {
	return r.Bottom - r.Top
}

// Contains returns whether the given point is inside the rectangle.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// String returns the rectangle in the "left top right bottom" form
// accepted by [ParseRect].
func (r Rect) String() string {
	return formatFloats(r.Left, r.Top, r.Right, r.Bottom)
}

// ParseRect parses a rectangle from four space separated numbers.
func ParseRect(s string) (Rect, error) {
	fields := strings.Fields(s)
	if len(fields) != 4 {
		return Rect{}, fmt.Errorf("rect needs 4 values, got %d in %q", len(fields), s)
	}
	var v [4]float32
	for i, f := range fields {
		x, err := parseFloat32(f)
		if err != nil {
			return Rect{}, fmt.Errorf("invalid rect value %q", f)
		}
		v[i] = x
	}
	return Rect{v[0], v[1], v[2], v[3]}, nil
}

// ClientArea is the size and position of a widget relative to its
// parent. Each edge is a percentage of the parent size plus a pixel
// offset, so "0 0 100% 100%" fills the parent and "50%-20 0 50%+20 40"
// is a 40 pixel wide box centered horizontally.
type ClientArea struct {

	// Pixel is the pixel offset of each edge.
	Pixel Rect

	// Percent is the percentage of the parent size of each edge.
	Percent Rect
}

// Resolve returns the absolute rectangle of the client area
// within the given parent rectangle.
func (ca ClientArea) Resolve(parent Rect) Rect {
	w, h := parent.Width(), parent.Height()
	return Rect{
		Left:   parent.Left + ca.Pixel.Left + ca.Percent.Left*w/100,
		Top:    parent.Top + ca.Pixel.Top + ca.Percent.Top*h/100,
		Right:  parent.Left + ca.Pixel.Right + ca.Percent.Right*w/100,
		Bottom: parent.Top + ca.Pixel.Bottom + ca.Percent.Bottom*h/100,
	}
}

// String returns the client area in the form accepted by [ParseClientArea].
func (ca ClientArea) String() string {
	return strings.Join([]string{
		formatEdge(ca.Percent.Left, ca.Pixel.Left),
		formatEdge(ca.Percent.Top, ca.Pixel.Top),
		formatEdge(ca.Percent.Right, ca.Pixel.Right),
		formatEdge(ca.Percent.Bottom, ca.Pixel.Bottom),
	}, " ")
}

// ParseClientArea parses a client area from four space separated edges,
// each of the form "N", "N%", "N%+M" or "N%-M".
func ParseClientArea(s string) (ClientArea, error) {
	fields := strings.Fields(s)
	if len(fields) != 4 {
		return ClientArea{}, fmt.Errorf("client area needs 4 edges, got %d in %q", len(fields), s)
	}
	var pct, px [4]float32
	for i, f := range fields {
		p, x, err := parseEdge(f)
		if err != nil {
			return ClientArea{}, err
		}
		pct[i], px[i] = p, x
	}
	return ClientArea{
		Pixel:   Rect{px[0], px[1], px[2], px[3]},
		Percent: Rect{pct[0], pct[1], pct[2], pct[3]},
	}, nil
}

// parseEdge parses one client area edge into its percent and pixel parts.
func parseEdge(s string) (pct, px float32, err error) {
	pi := strings.IndexByte(s, '%')
	if pi < 0 {
		v, err := parseFloat32(s)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid client area edge %q", s)
		}
		return 0, v, nil
	}
	p, perr := parseFloat32(s[:pi])
	if perr != nil {
		return 0, 0, fmt.Errorf("invalid client area percentage in %q", s)
	}
	rest := s[pi+1:]
	if rest == "" {
		return p, 0, nil
	}
	if rest[0] != '+' && rest[0] != '-' {
		return 0, 0, fmt.Errorf("invalid client area offset in %q", s)
	}
	v, verr := parseFloat32(rest)
	if verr != nil {
		return 0, 0, fmt.Errorf("invalid client area offset in %q", s)
	}
	return p, v, nil
}

// parseFloat32 parses a finite float32. NaN and infinities are rejected.
func parseFloat32(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return float32(f), nil
}

func formatEdge(pct, px float32) string {
	switch {
	case pct == 0:
		return formatFloat(px)
	case px == 0:
		return formatFloat(pct) + "%"
	case math32.Signbit(px):
		return formatFloat(pct) + "%" + formatFloat(px)
	}
	return formatFloat(pct) + "%+" + formatFloat(px)
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func formatFloats(fs ...float32) string {
	strs := make([]string, len(fs))
	for i, f := range fs {
		strs[i] = formatFloat(f)
	}
	return strings.Join(strs, " ")
}
