// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsi binds GUI objects to the script engine. Scripts access
// the properties of an object by name through [Binding], which maps
// them onto settings, event handlers, and the object tree.
package jsi

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/gamegui/base/reflectx"
	"cogentcore.org/gamegui/gui"
	"cogentcore.org/gamegui/settings"
)

var (
	// ErrPropertyNotFound is returned for property names that are
	// neither special properties nor settings of the object.
	ErrPropertyNotFound = errors.New("does not exist")

	// ErrNotFunction is returned when an event handler property
	// is set to a value that is not a function.
	ErrNotFunction = errors.New("on- event handlers must be functions")

	// ErrDestroyed is returned when the object behind a binding
	// has been destroyed.
	ErrDestroyed = errors.New("object has been destroyed")
)

// Binding is the property protocol between the script engine and
// a native object.
type Binding interface {

	// Get returns the value of the named property.
	Get(name string) (any, error)

	// Set sets the value of the named property.
	Set(name string, value any) error
}

// reserved are the names of methods and built in properties, which
// the script engine resolves itself.
var reserved = map[string]bool{
	"constructor":     true,
	"prototype":       true,
	"toString":        true,
	"toJSON":          true,
	"focus":           true,
	"blur":            true,
	"getTextSize":     true,
	"getComputedSize": true,
}

// Special property names.
const (
	propName     = "name"
	propParent   = "parent"
	propChildren = "children"
	eventPrefix  = "on"
)

// Object is the script side of a GUI object. It holds a non-owning
// reference to the widget.
type Object struct {
	widget gui.Widget
	host   *Host
}

var _ Binding = (*Object)(nil)

// NewObject returns a new binding for the given widget.
func NewObject(w gui.Widget) *Object {
	return &Object{widget: w}
}

// Widget returns the bound widget.
func (ob *Object) Widget() gui.Widget {
	return ob.widget
}

func (ob *Object) wrap(w gui.Widget) *Object {
	if ob.host != nil {
		return ob.host.Object(w)
	}
	return NewObject(w)
}

// object returns the bound object, or an error if it has been destroyed.
func (ob *Object) object() (*gui.Object, error) {
	if ob.widget == nil || ob.widget.AsTree().This == nil {
		return nil, ErrDestroyed
	}
	return ob.widget.AsObject(), nil
}

// Get returns the value of the named property. Reserved method names
// return nil. "on" followed by an event name returns the handler of
// that event, or nil. The parent, children and name properties return
// the tree position and name of the object. Any other name returns
// the script value of the setting with that name.
func (ob *Object) Get(name string) (any, error) {
	if reserved[name] {
		return nil, nil
	}
	o, err := ob.object()
	if err != nil {
		return nil, err
	}
	if ev, ok := strings.CutPrefix(name, eventPrefix); ok {
		return o.ScriptHandler(ev), nil
	}
	switch name {
	case propParent:
		if p := o.ParentObject(); p != nil {
			return ob.wrap(p.Widget()), nil
		}
		return nil, nil
	case propChildren:
		kids := make([]*Object, 0, o.NumChildren())
		for _, k := range o.Children {
			if w, ok := k.(gui.Widget); ok {
				kids = append(kids, ob.wrap(w))
			}
		}
		return kids, nil
	case propName:
		return o.Name, nil
	}
	s := o.Settings().Setting(name)
	if s == nil {
		return nil, fmt.Errorf("property %q %w", name, ErrPropertyNotFound)
	}
	return s.ToScriptValue(), nil
}

// Set sets the value of the named property. Setting name renames the
// object, which fails if another object of its GUI has the name. "on" followed by an event name sets the handler of that
// event, which must be a function. Any other name sets the setting
// with that name from the script value, notifying the object.
func (ob *Object) Set(name string, value any) error {
	o, err := ob.object()
	if err != nil {
		return err
	}
	if name == propName {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("property %q: %w: %T is not a string", name, settings.ErrTypeMismatch, value)
		}
		if g := o.GUI(); g != nil {
			if err := g.RenameObject(o.Widget(), s); err != nil {
				return fmt.Errorf("property %q: %w", name, err)
			}
			return nil
		}
		o.Name = s
		return nil
	}
	if ev, ok := strings.CutPrefix(name, eventPrefix); ok {
		if !reflectx.IsFunc(value) {
			return fmt.Errorf("property %q: %w", name, ErrNotFunction)
		}
		return o.SetScriptHandler(ev, value)
	}
	s := o.Settings().Setting(name)
	if s == nil {
		return fmt.Errorf("property %q %w", name, ErrPropertyNotFound)
	}
	if err := s.FromScriptValue(value); err != nil {
		return fmt.Errorf("property %q: %w", name, err)
	}
	return nil
}

// ToString returns a description of the object for scripts.
func (ob *Object) ToString() string {
	o, err := ob.object()
	if err != nil {
		return "[GUIObject: destroyed]"
	}
	return "[GUIObject: " + o.Name + "]"
}

// String implements [fmt.Stringer].
func (ob *Object) String() string {
	return ob.ToString()
}

// Focus gives input focus to the object.
func (ob *Object) Focus() {
	if g := ob.gui(); g != nil {
		g.SetFocus(ob.widget)
	}
}

// Blur removes input focus from whatever object has it.
func (ob *Object) Blur() {
	if g := ob.gui(); g != nil {
		g.SetFocus(nil)
	}
}

func (ob *Object) gui() *gui.GUI {
	o, err := ob.object()
	if err != nil {
		slog.Warn("jsi: using destroyed object")
		return nil
	}
	g := o.GUI()
	if g == nil {
		slog.Warn("jsi: object is not in a GUI", "object", o.Name)
	}
	return g
}

// ComputedSize is the actual rectangle of an object, as returned
// to scripts.
type ComputedSize struct {
	Left, Right, Top, Bottom float32
}

// GetComputedSize recomputes the actual size of the object
// and returns it.
func (ob *Object) GetComputedSize() ComputedSize {
	o, err := ob.object()
	if err != nil {
		return ComputedSize{}
	}
	ob.widget.UpdateCachedSize()
	r := o.CachedSize()
	return ComputedSize{Left: r.Left, Right: r.Right, Top: r.Top, Bottom: r.Bottom}
}
