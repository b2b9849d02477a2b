// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	names []string
}

func (r *recorder) SettingsUpdated(name string) {
	r.names = append(r.names, name)
}

func allKindsTable(owner Notifier) *Table {
	t := NewTable(owner)
	Add[bool](t, "bool")
	Add[int](t, "int")
	Add[float32](t, "float")
	Add[string](t, "string")
	Add[Caption](t, "caption")
	Add[color.RGBA](t, "color")
	Add[Sprite](t, "sprite")
	Add[ClientArea](t, "size")
	Add[Rect](t, "rect")
	Add[Align](t, "align")
	Add[VAlign](t, "valign")
	t.Seal()
	return t
}

func testGetZero[T Value](t *testing.T, tb *Table, name string) {
	v, err := Get[T](tb, name)
	require.NoError(t, err, name)
	var zero T
	assert.Equal(t, zero, v, name)
}

func testRoundTrip[T Value](t *testing.T, tb *Table, name string, v T) {
	require.NoError(t, Set(tb, name, v, false), name)
	got, err := Get[T](tb, name)
	require.NoError(t, err, name)
	assert.Equal(t, v, got, name)
}

func TestDefaults(t *testing.T) {
	tb := allKindsTable(nil)
	testGetZero[bool](t, tb, "bool")
	testGetZero[int](t, tb, "int")
	testGetZero[float32](t, tb, "float")
	testGetZero[string](t, tb, "string")
	testGetZero[Caption](t, tb, "caption")
	testGetZero[color.RGBA](t, tb, "color")
	testGetZero[Sprite](t, tb, "sprite")
	testGetZero[ClientArea](t, tb, "size")
	testGetZero[Rect](t, tb, "rect")
	testGetZero[Align](t, tb, "align")
	testGetZero[VAlign](t, tb, "valign")
}

func TestRoundTrip(t *testing.T) {
	tb := allKindsTable(nil)
	testRoundTrip(t, tb, "bool", true)
	testRoundTrip(t, tb, "int", -7)
	testRoundTrip(t, tb, "float", float32(2.5))
	testRoundTrip(t, tb, "string", "sans-14")
	testRoundTrip(t, tb, "caption", Caption("OK"))
	testRoundTrip(t, tb, "color", color.RGBA{1, 2, 3, 4})
	testRoundTrip(t, tb, "sprite", Sprite("button_wide"))
	testRoundTrip(t, tb, "size", ClientArea{Pixel: Rect{1, 2, 3, 4}, Percent: Rect{0, 0, 100, 100}})
	testRoundTrip(t, tb, "rect", Rect{1, 2, 3, 4})
	testRoundTrip(t, tb, "align", AlignRight)
	testRoundTrip(t, tb, "valign", VAlignBottom)
}

func TestNotFound(t *testing.T) {
	tb := allKindsTable(nil)
	_, err := Get[bool](tb, "missing")
	assert.ErrorIs(t, err, ErrSettingNotFound)
	assert.ErrorIs(t, Set(tb, "missing", 1, false), ErrSettingNotFound)
	_, err = GetPointer[int](tb, "missing")
	assert.ErrorIs(t, err, ErrSettingNotFound)
	assert.False(t, tb.Exists("missing"))
	assert.Nil(t, tb.Setting("missing"))
}

func TestTypeMismatch(t *testing.T) {
	tb := allKindsTable(nil)
	_, err := Get[int](tb, "bool")
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.ErrorIs(t, Set(tb, "caption", "plain string", false), ErrTypeMismatch)
	c, err := Get[Caption](tb, "caption")
	require.NoError(t, err)
	assert.Equal(t, Caption(""), c)
}

func TestGetPointer(t *testing.T) {
	rec := &recorder{}
	tb := allKindsTable(rec)
	p, err := GetPointer[int](tb, "int")
	require.NoError(t, err)
	*p = 12
	v, err := Get[int](tb, "int")
	require.NoError(t, err)
	assert.Equal(t, 12, v)
	assert.Empty(t, rec.names)
}

func TestNotify(t *testing.T) {
	rec := &recorder{}
	tb := allKindsTable(rec)
	require.NoError(t, Set(tb, "int", 1, false))
	require.NoError(t, Set(tb, "float", float32(1), true))
	require.NoError(t, tb.Setting("caption").FromString("hi", false))
	require.NoError(t, tb.Setting("string").FromString("x", true))
	require.NoError(t, tb.Setting("bool").FromScriptValue(true))
	assert.Equal(t, []string{"int", "caption", "bool"}, rec.names)
}

func TestRegistration(t *testing.T) {
	tb := NewTable(nil)
	Add[int](tb, "a")
	Add[bool](tb, "b")
	assert.Panics(t, func() { Add[int](tb, "a") })
	assert.Equal(t, []string{"a", "b"}, tb.Names())
	assert.Equal(t, 2, tb.Len())
	tb.Seal()
	assert.Panics(t, func() { Add[int](tb, "c") })
	assert.False(t, tb.Exists("c"))
}

func TestKinds(t *testing.T) {
	assert.Equal(t, KindColor, KindOf[color.RGBA]())
	assert.Equal(t, KindClientArea, KindOf[ClientArea]())
	assert.Equal(t, "client-area", KindClientArea.String())
	k, ok := KindFromString("valign")
	assert.True(t, ok)
	assert.Equal(t, KindVAlign, k)
	_, ok = KindFromString("matrix")
	assert.False(t, ok)
	assert.Equal(t, "invalid", KindsN.String())
}
