// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gui

import (
	"cogentcore.org/gamegui/base/errors"
)

// ButtonStates are the visual states of a clickable object.
type ButtonStates int32

const (
	// ButtonNormal is the state when not hovered or pressed.
	ButtonNormal ButtonStates = iota

	// ButtonHover is the state while the mouse is over the object.
	ButtonHover

	// ButtonPressed is the state while the left mouse button is
	// held down over the object.
	ButtonPressed

	// ButtonDisabled is the state when the object is not enabled.
	// It overrides all other states.
	ButtonDisabled
)

func (s ButtonStates) String() string {
	switch s {
	case ButtonNormal:
		return "normal"
	case ButtonHover:
		return "hover"
	case ButtonPressed:
		return "pressed"
	case ButtonDisabled:
		return "disabled"
	}
	return "invalid"
}

// ButtonBehavior tracks the hover and press state of a clickable
// object from the mouse messages it receives, playing the object's
// sounds and firing its press script event.
type ButtonBehavior struct {

	// Hovered is whether the mouse is over the object.
	Hovered bool

	// Pressed is whether the left mouse button went down over the
	// object and has not been released yet.
	Pressed bool
}

// behaviorHolder is implemented by widgets with a [ButtonBehavior].
type behaviorHolder interface {
	AsButtonBehavior() *ButtonBehavior
}

// State returns the current state for an object that is enabled or not.
func (bb *ButtonBehavior) State(enabled bool) ButtonStates {
	switch {
	case !enabled:
		return ButtonDisabled
	case bb.Pressed && bb.Hovered:
		return ButtonPressed
	case bb.Hovered:
		return ButtonHover
	}
	return ButtonNormal
}

// HandleMessage updates the state of the behavior of the given object
// from a mouse message. Disabled objects only play their disabled sound
// when pressed.
func (bb *ButtonBehavior) HandleMessage(o *Object, msg Message) {
	enabled := o.IsEnabled()
	switch msg.Type {
	case MsgMouseEnter:
		bb.Hovered = true
		if enabled {
			o.PlaySound(SettingSoundEnter)
		}
	case MsgMouseLeave:
		bb.Hovered = false
		if enabled {
			o.PlaySound(SettingSoundLeave)
		}
	case MsgMousePressLeft:
		if !enabled {
			o.PlaySound(SettingSoundDisabled)
			return
		}
		bb.Pressed = true
		o.PlaySound(SettingSoundPressed)
	case MsgMouseReleaseLeft:
		if !enabled || !bb.Pressed {
			return
		}
		bb.Pressed = false
		o.PlaySound(SettingSoundReleased)
		errors.Log(o.ScriptEvent(EventPress))
	case MsgSettingsUpdated:
		if msg.Value == SettingEnabled && !enabled {
			bb.Pressed = false
		}
	}
}
