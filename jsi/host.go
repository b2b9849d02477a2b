// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsi

import (
	"context"
	"os"
	"reflect"

	"cogentcore.org/gamegui/gui"
	"github.com/cogentcore/yaegi/interp"
	"github.com/cogentcore/yaegi/stdlib"
)

// Host runs scripts against the objects of a GUI. Scripts reach the
// objects through the gui package, whose Get function returns the
// [Object] binding with a given name:
//
//	gui.Get("ok").Set("caption", "Start")
type Host struct {

	// GUI is the GUI whose objects scripts can access.
	GUI *gui.GUI

	// Interp is the yaegi interpreter running the scripts.
	Interp *interp.Interpreter

	objects map[gui.Widget]*Object
}

// NewHost returns a new script host for the given GUI, with an
// interpreter created with the given options.
func NewHost(g *gui.GUI, options interp.Options) (*Host, error) {
	h := &Host{GUI: g, objects: map[gui.Widget]*Object{}}
	h.Interp = interp.New(options)
	if err := h.Interp.Use(stdlib.Symbols); err != nil {
		return nil, err
	}
	if err := h.Interp.Use(h.symbols()); err != nil {
		return nil, err
	}
	h.Interp.ImportUsed()
	return h, nil
}

// symbols returns the gui package seen by scripts.
func (h *Host) symbols() interp.Exports {
	return interp.Exports{
		"gamegui/gui/gui": {
			"Get":          reflect.ValueOf(h.Get),
			"Root":         reflect.ValueOf(h.Root),
			"Focused":      reflect.ValueOf(h.Focused),
			"Object":       reflect.ValueOf((*Object)(nil)),
			"ComputedSize": reflect.ValueOf((*ComputedSize)(nil)),
			"Binding":      reflect.ValueOf((*Binding)(nil)),
		},
	}
}

// Object returns the binding of the given widget, which is the same
// for every call with the same widget.
func (h *Host) Object(w gui.Widget) *Object {
	if w == nil {
		return nil
	}
	if ob, ok := h.objects[w]; ok {
		return ob
	}
	ob := &Object{widget: w, host: h}
	h.objects[w] = ob
	return ob
}

// Get returns the binding of the object with the given name, or nil.
func (h *Host) Get(name string) *Object {
	return h.Object(h.GUI.FindObject(name))
}

// Root returns the binding of the root object.
func (h *Host) Root() *Object {
	return h.Object(h.GUI.Root())
}

// Focused returns the binding of the focused object, or nil.
func (h *Host) Focused() *Object {
	return h.Object(h.GUI.Focused())
}

// Prune forgets the bindings of destroyed objects.
func (h *Host) Prune() {
	for w := range h.objects {
		if w.AsTree().This == nil {
			delete(h.objects, w)
		}
	}
}

// Eval evaluates the given script code, returning the value of its
// last expression, if any.
func (h *Host) Eval(ctx context.Context, code string) (any, error) {
	v, err := h.Interp.EvalWithContext(ctx, code)
	if err != nil {
		return nil, err
	}
	if !v.IsValid() || !v.CanInterface() {
		return nil, nil
	}
	return v.Interface(), nil
}

// EvalFile evaluates the script in the given file.
func (h *Host) EvalFile(ctx context.Context, filename string) (any, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return h.Eval(ctx, string(b))
}
