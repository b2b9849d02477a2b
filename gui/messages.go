// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gui

import "fmt"

// MessageTypes are the types of [Message] that objects react to.
type MessageTypes int32

const (
	// MsgMouseEnter is sent when the mouse starts hovering over the object.
	MsgMouseEnter MessageTypes = iota

	// MsgMouseLeave is sent when the mouse stops hovering over the object.
	MsgMouseLeave

	// MsgMousePressLeft is sent when the left mouse button is pressed
	// over the object.
	MsgMousePressLeft

	// MsgMouseReleaseLeft is sent when the left mouse button is released
	// over the object.
	MsgMouseReleaseLeft

	// MsgSettingsUpdated is sent after a setting changes, with the
	// name of the setting as the message value.
	MsgSettingsUpdated

	// MsgLoad is sent to every object once a page has finished loading.
	MsgLoad

	// MsgGotFocus is sent when the object gains input focus.
	MsgGotFocus

	// MsgLostFocus is sent when the object loses input focus.
	MsgLostFocus
)

var messageTypeNames = []string{"MouseEnter", "MouseLeave", "MousePressLeft", "MouseReleaseLeft", "SettingsUpdated", "Load", "GotFocus", "LostFocus"}

func (mt MessageTypes) String() string {
	if mt < 0 || int(mt) >= len(messageTypeNames) {
		return fmt.Sprintf("MessageTypes(%d)", int32(mt))
	}
	return messageTypeNames[mt]
}

// Message is a notification sent to an object.
type Message struct {
	Type MessageTypes

	// Value is the setting name for [MsgSettingsUpdated].
	Value string
}

func (m Message) String() string {
	if m.Value == "" {
		return m.Type.String()
	}
	return m.Type.String() + "(" + m.Value + ")"
}
