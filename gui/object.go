// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gui provides the retained object tree of a game GUI: objects
// with typed settings, the button widget, and drawing onto a [Renderer].
package gui

import (
	"fmt"
	"log/slog"
	"reflect"

	"cogentcore.org/gamegui/base/errors"
	"cogentcore.org/gamegui/base/reflectx"
	"cogentcore.org/gamegui/settings"
	"cogentcore.org/gamegui/tree"
	"golang.org/x/text/cases"
)

// Widget is the interface that all GUI objects satisfy. The core
// functionality is defined on [Object], which all widget types must
// embed. This interface only contains the methods that widget types
// may need to override.
type Widget interface {
	tree.Node

	// AsObject returns the [Object] of this Widget.
	AsObject() *Object

	// HandleMessage reacts to the given message. Widgets that override
	// it should call [Object.HandleMessage] for the base reactions.
	HandleMessage(msg Message)

	// UpdateCachedSize recomputes the actual size of the widget
	// from its size setting and its parent.
	UpdateCachedSize()

	// Draw issues the draw calls for the widget.
	Draw(r Renderer)
}

// Object is the base of all GUI objects. It holds the settings table,
// the script event handlers, and the cached actual size.
type Object struct {
	tree.NodeBase

	settings *settings.Table

	// handlers are the script event handlers, keyed by folded event name.
	handlers map[string]any

	// cachedSize is the actual size computed by UpdateCachedSize.
	cachedSize settings.Rect

	// gui is only set on the root object of a [GUI].
	gui *GUI
}

// NewObject returns a new plain object with the given name.
// Plain objects have only the base settings and draw nothing;
// they group and position their children.
func NewObject(name string) *Object {
	o := &Object{}
	o.InitObject(o, name)
	o.settings.Seal()
	return o
}

// InitObject initializes the object with the given true underlying
// widget and name, and registers the base settings. Widget types call
// it from their constructor, then register their own settings and
// seal the table with [settings.Table.Seal].
func (o *Object) InitObject(this Widget, name string) {
	o.InitName(this, name)
	o.settings = settings.NewTable(o)
	o.handlers = map[string]any{}

	t := o.settings
	settings.Add[bool](t, SettingEnabled)
	settings.Add[bool](t, SettingHidden)
	settings.Add[bool](t, SettingGhost)
	settings.Add[bool](t, SettingAbsolute)
	settings.Add[settings.ClientArea](t, SettingSize)
	settings.Add[float32](t, SettingZ)
	settings.Add[float32](t, SettingAspectRatio)
	settings.Add[string](t, SettingTooltip)
	settings.Add[string](t, SettingTooltipStyle)
	errors.Log(settings.Set(t, SettingEnabled, true, true))
	errors.Log(settings.Set(t, SettingAbsolute, true, true))
}

// AsObject returns the object itself.
func (o *Object) AsObject() *Object {
	return o
}

// Widget returns the true underlying widget of the object.
func (o *Object) Widget() Widget {
	if o.This == nil {
		return nil
	}
	return o.This.(Widget)
}

// Settings returns the settings table of the object.
func (o *Object) Settings() *settings.Table {
	return o.settings
}

// SettingExists returns whether the object has a setting with the given name.
func (o *Object) SettingExists(name string) bool {
	return o.settings.Exists(name)
}

// SettingsUpdated implements [settings.Notifier] by sending a
// [MsgSettingsUpdated] message to the object.
func (o *Object) SettingsUpdated(name string) {
	if w := o.Widget(); w != nil {
		w.HandleMessage(Message{Type: MsgSettingsUpdated, Value: name})
	}
}

// HandleMessage implements the reactions common to all objects:
// a change of the size or aspectratio setting recomputes the cached
// size of the object and all of its descendants.
func (o *Object) HandleMessage(msg Message) {
	if msg.Type != MsgSettingsUpdated {
		return
	}
	switch msg.Value {
	case SettingSize, SettingAspectRatio:
		RecurseObject(0, o.Widget(), Widget.UpdateCachedSize)
	}
}

// Draw draws nothing for plain objects.
func (o *Object) Draw(r Renderer) {}

// GUI returns the GUI the object belongs to, or nil if it has not
// been added to one.
func (o *Object) GUI() *GUI {
	if o.This == nil {
		return nil
	}
	root := tree.Root(o.This)
	if w, ok := root.(Widget); ok {
		return w.AsObject().gui
	}
	return nil
}

// ParentObject returns the parent object, or nil for the root.
func (o *Object) ParentObject() *Object {
	if w, ok := o.Parent.(Widget); ok {
		return w.AsObject()
	}
	return nil
}

// CachedSize returns the actual size computed by the last
// [Object.UpdateCachedSize].
func (o *Object) CachedSize() settings.Rect {
	return o.cachedSize
}

// UpdateCachedSize resolves the size setting against the cached size
// of the parent, or the screen for the root object. A non-zero
// aspectratio shrinks the width or height to keep that ratio,
// centered within the resolved size.
func (o *Object) UpdateCachedSize() {
	var parent settings.Rect
	if p := o.ParentObject(); p != nil {
		parent = p.cachedSize
	} else if g := o.GUI(); g != nil {
		parent = g.Screen
	}
	ca, _ := GetSetting[settings.ClientArea](o, SettingSize)
	r := ca.Resolve(parent)
	if ar, _ := GetSetting[float32](o, SettingAspectRatio); ar > 0 && r.Height() > 0 {
		w, h := r.Width(), r.Height()
		if w/h > ar {
			d := (w - h*ar) / 2
			r.Left += d
			r.Right -= d
		} else {
			d := (h - w/ar) / 2
			r.Top += d
			r.Bottom -= d
		}
	}
	o.cachedSize = r
}

// BufferedZ returns the drawing depth of the object: its z setting,
// plus the buffered z of its parent unless the object is absolute.
func (o *Object) BufferedZ() float32 {
	z, _ := GetSetting[float32](o, SettingZ)
	if abs, _ := GetSetting[bool](o, SettingAbsolute); abs {
		return z
	}
	if p := o.ParentObject(); p != nil {
		return p.BufferedZ() + z
	}
	return z
}

// IsEnabled returns the enabled setting.
func (o *Object) IsEnabled() bool {
	v, _ := GetSetting[bool](o, SettingEnabled)
	return v
}

// IsHidden returns whether the object or any of its ancestors is hidden.
func (o *Object) IsHidden() bool {
	hidden := false
	o.WalkUp(func(n tree.Node) bool {
		if w, ok := n.(Widget); ok {
			if h, _ := GetSetting[bool](w, SettingHidden); h {
				hidden = true
				return tree.Break
			}
		}
		return tree.Continue
	})
	return hidden
}

// PlaySound plays the sound named by the given string setting,
// if it is set and the object belongs to a GUI.
func (o *Object) PlaySound(setting string) {
	name := errors.Log1(GetSetting[string](o, setting))
	if name == "" {
		return
	}
	if g := o.GUI(); g != nil {
		g.PlaySound(name)
	}
}

var eventFolder = cases.Fold()

// EventName returns the canonical form of the given script event name,
// so that "Press" and "press" name the same event.
func EventName(event string) string {
	return eventFolder.String(event)
}

// SetScriptHandler sets the handler called for the given script event.
// The handler must be a function; a nil handler removes it.
func (o *Object) SetScriptHandler(event string, fun any) error {
	ev := EventName(event)
	if fun == nil {
		delete(o.handlers, ev)
		return nil
	}
	if !reflectx.IsFunc(fun) {
		return fmt.Errorf("gui: handler for event %q is %T, not a function", event, fun)
	}
	o.handlers[ev] = fun
	return nil
}

// ScriptHandler returns the handler for the given script event, or nil.
func (o *Object) ScriptHandler(event string) any {
	return o.handlers[EventName(event)]
}

// ScriptEvent calls the handler of the given script event, if any,
// with the leading args it accepts. It returns the error returned or
// raised by the handler.
func (o *Object) ScriptEvent(event string, args ...any) (err error) {
	fun := o.ScriptHandler(event)
	if fun == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("gui: script event %q of %q panicked: %v", event, o.Name, r)
		}
	}()
	fv := reflect.ValueOf(fun)
	ft := fv.Type()
	n := ft.NumIn()
	if ft.IsVariadic() {
		n = max(n-1, len(args))
	}
	in := make([]reflect.Value, 0, n)
	for i := 0; i < n; i++ {
		var at reflect.Type
		if ft.IsVariadic() && i >= ft.NumIn()-1 {
			at = ft.In(ft.NumIn() - 1).Elem()
		} else {
			at = ft.In(i)
		}
		if i >= len(args) || args[i] == nil {
			in = append(in, reflect.Zero(at))
			continue
		}
		av := reflect.ValueOf(args[i])
		if !av.Type().AssignableTo(at) {
			return fmt.Errorf("gui: script event %q of %q: argument %d is %v, handler wants %v", event, o.Name, i, av.Type(), at)
		}
		in = append(in, av)
	}
	out := fv.Call(in)
	if len(out) > 0 {
		if e, ok := out[len(out)-1].Interface().(error); ok && e != nil {
			return e
		}
	}
	slog.Debug("gui: script event", "object", o.Name, "event", event)
	return nil
}
