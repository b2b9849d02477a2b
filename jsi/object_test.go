// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsi

import (
	"image/color"
	"reflect"
	"testing"

	"cogentcore.org/gamegui/gui"
	"cogentcore.org/gamegui/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGUI(t *testing.T) (*gui.GUI, *gui.Object, *gui.Button) {
	g := gui.New(800, 600)
	panel := gui.NewObject("panel")
	ok := gui.NewButton("ok")
	panel.AddChild(ok)
	require.NoError(t, g.AddObject(nil, panel))
	return g, panel, ok
}

func funcPointer(f any) uintptr {
	return reflect.ValueOf(f).Pointer()
}

func TestReserved(t *testing.T) {
	_, _, ok := testGUI(t)
	ob := NewObject(ok)
	for name := range reserved {
		v, err := ob.Get(name)
		assert.NoError(t, err, name)
		assert.Nil(t, v, name)
	}
}

func TestEventHandlers(t *testing.T) {
	_, _, ok := testGUI(t)
	ob := NewObject(ok)

	v, err := ob.Get("onPress")
	require.NoError(t, err)
	assert.Nil(t, v)

	presses := 0
	someFunction := func() { presses++ }
	require.NoError(t, ob.Set("onPress", someFunction))
	v, err = ob.Get("onPress")
	require.NoError(t, err)
	assert.Equal(t, funcPointer(someFunction), funcPointer(v))
	v, err = ob.Get("onpress")
	require.NoError(t, err)
	assert.Equal(t, funcPointer(someFunction), funcPointer(v))

	err = ob.Set("onPress", 42)
	assert.ErrorIs(t, err, ErrNotFunction)
	assert.ErrorContains(t, err, `"onPress"`)
	assert.ErrorIs(t, ob.Set("onPress", nil), ErrNotFunction)
	v, err = ob.Get("onPress")
	require.NoError(t, err)
	assert.Equal(t, funcPointer(someFunction), funcPointer(v))

	ok.HandleMessage(gui.Message{Type: gui.MsgMousePressLeft})
	ok.HandleMessage(gui.Message{Type: gui.MsgMouseReleaseLeft})
	assert.Equal(t, 1, presses)
}

func TestTreeProperties(t *testing.T) {
	g, panel, ok := testGUI(t)
	h := &Host{GUI: g, objects: map[gui.Widget]*Object{}}
	pob := h.Object(panel)

	kids, err := pob.Get("children")
	require.NoError(t, err)
	require.Len(t, kids, 1)
	assert.Same(t, h.Object(ok), kids.([]*Object)[0])

	parent, err := h.Object(ok).Get("parent")
	require.NoError(t, err)
	assert.Same(t, pob, parent)

	root, err := h.Root().Get("parent")
	require.NoError(t, err)
	assert.Nil(t, root)

	name, err := pob.Get("name")
	require.NoError(t, err)
	assert.Equal(t, "panel", name)
	require.NoError(t, pob.Set("name", "frame"))
	assert.Equal(t, "frame", panel.Name)
	assert.Same(t, pob, h.Get("frame"))
	assert.ErrorIs(t, pob.Set("name", 3), settings.ErrTypeMismatch)
	assert.ErrorIs(t, pob.Set("name", "ok"), gui.ErrNameInUse)
	assert.Equal(t, "frame", panel.Name)
	require.NoError(t, pob.Set("name", "frame"))

	assert.ErrorIs(t, pob.Set("parent", h.Root()), ErrPropertyNotFound)
}

func TestSettingProperties(t *testing.T) {
	_, _, ok := testGUI(t)
	ob := NewObject(ok)

	require.NoError(t, ob.Set("caption", "Start"))
	caption, err := gui.GetSetting[settings.Caption](ok, gui.SettingCaption)
	require.NoError(t, err)
	assert.Equal(t, settings.Caption("Start"), caption)
	assert.False(t, ok.Text.Valid())

	v, err := ob.Get("caption")
	require.NoError(t, err)
	assert.Equal(t, "Start", v)

	require.NoError(t, ob.Set("textcolor", "gold"))
	v, err = ob.Get("textcolor")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 215, 0, 255}, v)

	err = ob.Set("enabled", "yes")
	assert.ErrorIs(t, err, settings.ErrTypeMismatch)
	assert.ErrorContains(t, err, `"enabled"`)
	v, err = ob.Get("enabled")
	require.NoError(t, err)
	assert.Equal(t, true, v)

	_, err = ob.Get("checked")
	assert.ErrorIs(t, err, ErrPropertyNotFound)
	assert.EqualError(t, err, `property "checked" does not exist`)
	assert.ErrorIs(t, ob.Set("checked", true), ErrPropertyNotFound)
}

func TestMethods(t *testing.T) {
	g, panel, ok := testGUI(t)
	ob := NewObject(ok)
	assert.Equal(t, "[GUIObject: ok]", ob.ToString())

	ob.Focus()
	assert.Equal(t, gui.Widget(ok), g.Focused())
	ob.Blur()
	assert.Nil(t, g.Focused())

	require.NoError(t, gui.SetSetting(panel, gui.SettingSize, settings.ClientArea{Pixel: settings.Rect{Left: 10, Top: 20, Right: 210, Bottom: 120}}, true))
	require.NoError(t, gui.SetSetting(ok, gui.SettingSize, settings.ClientArea{Percent: settings.Rect{Right: 50, Bottom: 100}}, true))
	panel.UpdateCachedSize()
	assert.Equal(t, ComputedSize{Left: 10, Right: 110, Top: 20, Bottom: 120}, ob.GetComputedSize())
}

func TestDestroyed(t *testing.T) {
	g, panel, ok := testGUI(t)
	ob := NewObject(ok)
	g.DeleteObject(panel)
	_, err := ob.Get("caption")
	assert.ErrorIs(t, err, ErrDestroyed)
	assert.ErrorIs(t, ob.Set("caption", "x"), ErrDestroyed)
	assert.Equal(t, "[GUIObject: destroyed]", ob.ToString())
	assert.Equal(t, ComputedSize{}, ob.GetComputedSize())
}
