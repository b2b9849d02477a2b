// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gui

import (
	"fmt"
	"log/slog"

	"cogentcore.org/gamegui/base/errors"
	"cogentcore.org/gamegui/settings"
	"cogentcore.org/gamegui/text"
)

// RootName is the name of the root object of every [GUI].
const RootName = "__root"

// SoundPlayer plays named sounds.
type SoundPlayer interface {
	Play(name string)
}

// GUI is one page of GUI objects: a tree of objects under a root object
// that fills the screen, along with input focus and hover state.
type GUI struct {

	// Screen is the screen rectangle the root object fills.
	Screen settings.Rect

	// DefaultFont is the font used by objects with no font setting.
	DefaultFont string

	// Sounds plays the sounds of objects. It may be nil.
	Sounds SoundPlayer

	root    *Object
	focused Widget
	hovered Widget
	pressed Widget
}

// New returns a new GUI with the given screen size.
func New(width, height float32) *GUI {
	g := &GUI{Screen: settings.Rect{Right: width, Bottom: height}, DefaultFont: text.DefaultFont}
	g.root = NewObject(RootName)
	g.root.gui = g
	errors.Must(SetSetting(g.root, SettingSize, settings.ClientArea{Percent: settings.Rect{Right: 100, Bottom: 100}}, true))
	g.root.UpdateCachedSize()
	return g
}

// Root returns the root object.
func (g *GUI) Root() *Object {
	return g.root
}

// ErrNameInUse is returned when an object would get the name of
// another object of the same GUI.
var ErrNameInUse = errors.New("already in use")

// AddObject adds the given widget, with its children, as the last child
// of the given parent, or of the root if parent is nil. Object names must
// be unique within the GUI.
func (g *GUI) AddObject(parent, w Widget) error {
	if parent == nil {
		parent = g.root
	}
	if parent.AsObject().GUI() != g {
		return fmt.Errorf("gui: parent %q is not in this GUI", parent.AsTree().Name)
	}
	if err := g.checkNames(w); err != nil {
		return err
	}
	parent.AsTree().AddChild(w)
	RecurseObject(0, w, Widget.UpdateCachedSize)
	return nil
}

// checkNames returns an error if two objects of the tree of w have the
// same name, or one of them has the name of an object in the GUI.
func (g *GUI) checkNames(w Widget) error {
	var err error
	names := map[string]bool{}
	RecurseObject(0, w, func(k Widget) {
		name := k.AsTree().Name
		switch {
		case err != nil:
		case names[name]:
			err = fmt.Errorf("gui: object name %q is used twice: %w", name, ErrNameInUse)
		case g.FindObject(name) != nil:
			err = fmt.Errorf("gui: object name %q: %w", name, ErrNameInUse)
		}
		names[name] = true
	})
	return err
}

// RenameObject renames the given object of the GUI, unless another
// object already has the name.
func (g *GUI) RenameObject(w Widget, name string) error {
	if other := g.FindObject(name); other != nil && other != w {
		return fmt.Errorf("gui: object name %q: %w", name, ErrNameInUse)
	}
	w.AsTree().Name = name
	return nil
}

// FindObject returns the object with the given name, or nil.
func (g *GUI) FindObject(name string) Widget {
	if n := g.root.FindByName(name); n != nil {
		return n.(Widget)
	}
	return nil
}

// Objects returns all objects below the root, in depth-first order.
func (g *GUI) Objects() []Widget {
	var objs []Widget
	RecurseObject(0, g.root, func(w Widget) {
		if w != Widget(g.root) {
			objs = append(objs, w)
		}
	})
	return objs
}

// DeleteObject deletes the given object and its children.
func (g *GUI) DeleteObject(w Widget) {
	if w == Widget(g.root) {
		slog.Error("gui: the root object can not be deleted")
		return
	}
	RecurseObject(0, w, func(k Widget) {
		if k == g.focused {
			g.focused = nil
		}
		if k == g.hovered {
			g.hovered = nil
		}
		if k == g.pressed {
			g.pressed = nil
		}
	})
	w.AsTree().Delete()
}

// UpdateResolution sets the screen size and recomputes the
// cached sizes of all objects.
func (g *GUI) UpdateResolution(width, height float32) {
	g.Screen = settings.Rect{Right: width, Bottom: height}
	RecurseObject(0, g.root, Widget.UpdateCachedSize)
}

// SendMessage sends the given message to every object.
func (g *GUI) SendMessage(msg Message) {
	RecurseObject(0, g.root, func(w Widget) { w.HandleMessage(msg) })
}

// PlaySound plays the named sound if there is a sound player.
func (g *GUI) PlaySound(name string) {
	if g.Sounds != nil {
		g.Sounds.Play(name)
	}
}

// Focused returns the object with input focus, or nil.
func (g *GUI) Focused() Widget {
	return g.focused
}

// SetFocus gives input focus to the given object, or removes focus
// when it is nil.
func (g *GUI) SetFocus(w Widget) {
	if w == g.focused {
		return
	}
	if g.focused != nil {
		g.focused.HandleMessage(Message{Type: MsgLostFocus})
	}
	g.focused = w
	if w != nil {
		w.HandleMessage(Message{Type: MsgGotFocus})
	}
}

// Draw draws all objects that are not hidden onto the given renderer.
func (g *GUI) Draw(r Renderer) {
	RecurseObject(RestrictHidden, g.root, func(w Widget) { w.Draw(r) })
}

// ObjectAt returns the object under the given point that receives
// mouse input, or nil. Hidden and ghost objects are skipped, and of
// overlapping objects the one with the highest z wins.
func (g *GUI) ObjectAt(x, y float32) Widget {
	var found Widget
	var fz float32
	RecurseObject(RestrictHidden|RestrictGhost, g.root, func(w Widget) {
		o := w.AsObject()
		if o == g.root || !o.cachedSize.Contains(x, y) {
			return
		}
		if z := o.BufferedZ(); found == nil || z >= fz {
			found, fz = w, z
		}
	})
	return found
}

// MouseMove updates the hovered object for a mouse at the given point,
// sending [MsgMouseLeave] and [MsgMouseEnter] as it changes.
func (g *GUI) MouseMove(x, y float32) {
	w := g.ObjectAt(x, y)
	if w == g.hovered {
		return
	}
	if g.hovered != nil {
		g.hovered.HandleMessage(Message{Type: MsgMouseLeave})
	}
	g.hovered = w
	if w != nil {
		w.HandleMessage(Message{Type: MsgMouseEnter})
	}
}

// MousePress handles a left button press at the given point, sending
// [MsgMousePressLeft] to the object under it and focusing it.
func (g *GUI) MousePress(x, y float32) {
	g.MouseMove(x, y)
	g.pressed = g.hovered
	if g.hovered != nil {
		g.hovered.HandleMessage(Message{Type: MsgMousePressLeft})
	}
	g.SetFocus(g.hovered)
}

// MouseRelease handles a left button release at the given point,
// sending [MsgMouseReleaseLeft] to the object under it.
func (g *GUI) MouseRelease(x, y float32) {
	g.MouseMove(x, y)
	if g.hovered != nil {
		g.hovered.HandleMessage(Message{Type: MsgMouseReleaseLeft})
	}
	if g.pressed != nil && g.pressed != g.hovered {
		if bh, ok := g.pressed.(behaviorHolder); ok {
			bh.AsButtonBehavior().Pressed = false
		}
	}
	g.pressed = nil
}

// Click presses and releases the left mouse button at the given point.
func (g *GUI) Click(x, y float32) {
	g.MousePress(x, y)
	g.MouseRelease(x, y)
}
