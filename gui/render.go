// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gui

import (
	"image"
	"image/color"
	"log/slog"
	"sort"

	"cogentcore.org/gamegui/colors"
	"cogentcore.org/gamegui/settings"
	"cogentcore.org/gamegui/text"
	"github.com/chewxy/math32"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Renderer is the backend that widgets issue draw calls to.
// Draw calls with a higher z appear above those with a lower z.
type Renderer interface {

	// DrawSprite draws the given sprite, using the given cell of
	// a sprite sheet, stretched to fill the given rectangle.
	DrawSprite(sprite settings.Sprite, cellID int, z float32, rect settings.Rect)

	// DrawText draws the given generated text in the given color,
	// with its top left corner at x, y.
	DrawText(gt *text.Generated, clr color.RGBA, x, y, z float32)
}

// SpriteImage is an image that sprites can be drawn from. A non-zero
// CellSize divides the image into a grid of cells numbered in row major
// order, of which the cell_id setting selects one.
type SpriteImage struct {
	Image    image.Image
	CellSize image.Point
}

// cell returns the bounds of the given cell.
func (si *SpriteImage) cell(id int) image.Rectangle {
	b := si.Image.Bounds()
	if si.CellSize.X <= 0 || si.CellSize.Y <= 0 {
		return b
	}
	cols := max(b.Dx()/si.CellSize.X, 1)
	x, y := id%cols, id/cols
	p := b.Min.Add(image.Pt(x*si.CellSize.X, y*si.CellSize.Y))
	return image.Rectangle{Min: p, Max: p.Add(si.CellSize)}.Intersect(b)
}

// ImageRenderer is a [Renderer] that paints onto an image. Draw calls
// are recorded, and painted in z order by [ImageRenderer.Render].
type ImageRenderer struct {

	// Image is the image to paint onto.
	Image draw.Image

	// Sprites are the named sprite images.
	Sprites map[string]*SpriteImage

	ops     []renderOp
	missing map[string]bool
}

type renderOp struct {
	z     float32
	paint func(dst draw.Image)
}

// NewImageRenderer returns a renderer that paints onto a new
// RGBA image of the given size.
func NewImageRenderer(width, height int) *ImageRenderer {
	return &ImageRenderer{
		Image:   image.NewRGBA(image.Rect(0, 0, width, height)),
		Sprites: map[string]*SpriteImage{},
		missing: map[string]bool{},
	}
}

// AddSprite registers the given image as a named sprite.
func (ir *ImageRenderer) AddSprite(name string, img image.Image, cellSize image.Point) {
	ir.Sprites[name] = &SpriteImage{Image: img, CellSize: cellSize}
}

func toImageRect(r settings.Rect) image.Rectangle {
	return image.Rect(int(math32.Round(r.Left)), int(math32.Round(r.Top)), int(math32.Round(r.Right)), int(math32.Round(r.Bottom)))
}

func (ir *ImageRenderer) DrawSprite(sprite settings.Sprite, cellID int, z float32, rect settings.Rect) {
	if sprite.IsEmpty() {
		return
	}
	dr := toImageRect(rect)
	if c, ok := sprite.Color(); ok {
		ir.ops = append(ir.ops, renderOp{z, func(dst draw.Image) {
			draw.Draw(dst, dr, image.NewUniform(c), image.Point{}, draw.Over)
		}})
		return
	}
	si, ok := ir.Sprites[string(sprite)]
	if !ok {
		if !ir.missing[string(sprite)] {
			ir.missing[string(sprite)] = true
			slog.Warn("gui: unknown sprite", "sprite", sprite)
		}
		return
	}
	sr := si.cell(cellID)
	ir.ops = append(ir.ops, renderOp{z, func(dst draw.Image) {
		draw.ApproxBiLinear.Scale(dst, dr, si.Image, sr, draw.Over, nil)
	}})
}

func (ir *ImageRenderer) DrawText(gt *text.Generated, clr color.RGBA, x, y, z float32) {
	if gt == nil || colors.IsNil(clr) {
		return
	}
	ir.ops = append(ir.ops, renderOp{z, func(dst draw.Image) {
		d := &font.Drawer{Dst: dst, Src: image.NewUniform(clr), Face: text.Font(gt.Font)}
		for _, ln := range gt.Lines {
			d.Dot = fixed.Point26_6{X: toFixed(x + ln.X), Y: toFixed(y + ln.Baseline)}
			d.DrawString(ln.Text)
		}
	}})
}

func toFixed(f float32) fixed.Int26_6 {
	return fixed.Int26_6(math32.Round(f * 64))
}

// Render paints all recorded draw calls in ascending z order,
// keeping the call order for equal z, and clears them.
func (ir *ImageRenderer) Render() {
	sort.SliceStable(ir.ops, func(i, j int) bool { return ir.ops[i].z < ir.ops[j].z })
	for _, op := range ir.ops {
		op.paint(ir.Image)
	}
	ir.ops = ir.ops[:0]
}
