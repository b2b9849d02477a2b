// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gui

import (
	"fmt"
	"image/color"

	"cogentcore.org/gamegui/settings"
	"cogentcore.org/gamegui/text"
)

// Button is a clickable object with a sprite and a caption,
// both of which depend on its [ButtonStates].
type Button struct {
	Object

	// Behavior tracks the hover and press state.
	Behavior ButtonBehavior

	// Text holds the generated caption text.
	Text TextOwner
}

// NewButton returns a new button with the given name.
func NewButton(name string) *Button {
	b := &Button{}
	b.InitObject(b, name)
	t := b.settings
	settings.Add[float32](t, SettingBufferZone)
	settings.Add[settings.Caption](t, SettingCaption)
	settings.Add[int](t, SettingCellID)
	settings.Add[string](t, SettingFont)
	settings.Add[string](t, SettingSoundDisabled)
	settings.Add[string](t, SettingSoundEnter)
	settings.Add[string](t, SettingSoundLeave)
	settings.Add[string](t, SettingSoundPressed)
	settings.Add[string](t, SettingSoundReleased)
	settings.Add[settings.Sprite](t, SettingSprite)
	settings.Add[settings.Sprite](t, SettingSpriteOver)
	settings.Add[settings.Sprite](t, SettingSpritePressed)
	settings.Add[settings.Sprite](t, SettingSpriteDisabled)
	settings.Add[settings.Align](t, SettingTextAlign)
	settings.Add[settings.VAlign](t, SettingTextVAlign)
	settings.Add[color.RGBA](t, SettingTextColor)
	settings.Add[color.RGBA](t, SettingTextColorOver)
	settings.Add[color.RGBA](t, SettingTextColorPressed)
	settings.Add[color.RGBA](t, SettingTextColorDisabled)
	t.Seal()
	b.Text.AddText()
	return b
}

var _ Widget = (*Button)(nil)

// AsButtonBehavior returns the press state tracker of the button.
func (b *Button) AsButtonBehavior() *ButtonBehavior {
	return &b.Behavior
}

// State returns the current state of the button.
func (b *Button) State() ButtonStates {
	return b.Behavior.State(b.IsEnabled())
}

// HandleMessage updates the press state, and invalidates the caption
// text when a setting it depends on changes.
func (b *Button) HandleMessage(msg Message) {
	b.Behavior.HandleMessage(&b.Object, msg)
	if msg.Type == MsgSettingsUpdated {
		switch msg.Value {
		case SettingCaption, SettingFont, SettingBufferZone, SettingTextAlign, SettingTextVAlign:
			b.Text.Invalidate()
		}
	}
	b.Object.HandleMessage(msg)
}

// UpdateCachedSize recomputes the cached size and invalidates
// the caption text, which is wrapped to the button width.
func (b *Button) UpdateCachedSize() {
	b.Object.UpdateCachedSize()
	b.Text.Invalidate()
}

// SetupText regenerates the caption text from the caption, font and
// buffer_zone settings at the cached width, and positions it by the
// text_align and text_valign settings. An unset font uses the default
// font of the GUI. It panics if the button does not have exactly one
// generated text slot.
func (b *Button) SetupText() {
	if n := len(b.Text.Texts); n != 1 {
		panic(fmt.Sprintf("gui.Button %q: must have exactly 1 generated text, has %d", b.Name, n))
	}
	font, _ := GetSetting[string](b, SettingFont)
	if font == "" {
		font = text.DefaultFont
		if g := b.GUI(); g != nil && g.DefaultFont != "" {
			font = g.DefaultFont
		}
	}
	caption, _ := GetSetting[settings.Caption](b, SettingCaption)
	bz, _ := GetSetting[float32](b, SettingBufferZone)
	align, _ := GetSetting[settings.Align](b, SettingTextAlign)
	valign, _ := GetSetting[settings.VAlign](b, SettingTextVAlign)
	gt := text.Generate(string(caption), font, b.cachedSize.Width(), bz)
	b.Text.SetText(0, gt, b.cachedSize, align, valign)
}

// sprites gives the state specific sprite setting for each state.
var sprites = [...]string{
	ButtonNormal:   SettingSprite,
	ButtonHover:    SettingSpriteOver,
	ButtonPressed:  SettingSpritePressed,
	ButtonDisabled: SettingSpriteDisabled,
}

// textColors gives the state specific text color setting for each state.
var textColors = [...]string{
	ButtonNormal:   SettingTextColor,
	ButtonHover:    SettingTextColorOver,
	ButtonPressed:  SettingTextColorPressed,
	ButtonDisabled: SettingTextColorDisabled,
}

// ChooseSprite returns the sprite for the current state,
// falling back to the sprite setting when it is unset.
func (b *Button) ChooseSprite() settings.Sprite {
	base, _ := GetSetting[settings.Sprite](b, SettingSprite)
	s, _ := GetSetting[settings.Sprite](b, sprites[b.State()])
	return FallBackSprite(s, base)
}

// ChooseColor returns the text color for the current state,
// falling back to the textcolor setting when it is unset.
func (b *Button) ChooseColor() color.RGBA {
	base, _ := GetSetting[color.RGBA](b, SettingTextColor)
	c, _ := GetSetting[color.RGBA](b, textColors[b.State()])
	return FallBackColor(c, base)
}

// Draw draws the sprite of the current state at the cached size,
// and the caption text just above it.
func (b *Button) Draw(r Renderer) {
	z := b.BufferedZ()
	cell, _ := GetSetting[int](b, SettingCellID)
	r.DrawSprite(b.ChooseSprite(), cell, z, b.cachedSize)
	if !b.Text.Valid() {
		b.SetupText()
	}
	pos := b.Text.Positions[0]
	r.DrawText(b.Text.Texts[0], b.ChooseColor(), pos.X, pos.Y, z+0.1)
}
