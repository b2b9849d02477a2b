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

func TestParseString(t *testing.T) {
	b, err := ParseString[bool]("true")
	require.NoError(t, err)
	assert.True(t, b)

	i, err := ParseString[int](" 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, i)

	f, err := ParseString[float32]("1.5")
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), f)

	c, err := ParseString[color.RGBA]("255 255 0")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 255, 0, 255}, c)

	s, err := ParseString[Sprite]("color: 10 20 30 255")
	require.NoError(t, err)
	sc, ok := s.Color()
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{10, 20, 30, 255}, sc)

	a, err := ParseString[Align]("center")
	require.NoError(t, err)
	assert.Equal(t, AlignCenter, a)

	va, err := ParseString[VAlign]("bottom")
	require.NoError(t, err)
	assert.Equal(t, VAlignBottom, va)

	ca, err := ParseString[ClientArea]("0 0 100% 100%")
	require.NoError(t, err)
	assert.Equal(t, Rect{0, 0, 100, 100}, ca.Percent)

	capt, err := ParseString[Caption]("  spaced  ")
	require.NoError(t, err)
	assert.Equal(t, Caption("  spaced  "), capt)
}

func TestParseStringErrors(t *testing.T) {
	_, err := ParseString[bool]("yes")
	assert.ErrorIs(t, err, ErrParse)
	_, err = ParseString[bool]("True")
	assert.ErrorIs(t, err, ErrParse)
	_, err = ParseString[int]("4.5")
	assert.ErrorIs(t, err, ErrParse)
	_, err = ParseString[float32]("wide")
	assert.ErrorIs(t, err, ErrParse)
	_, err = ParseString[color.RGBA]("1 2")
	assert.ErrorIs(t, err, ErrParse)
	_, err = ParseString[Sprite]("color: nope")
	assert.ErrorIs(t, err, ErrParse)
	_, err = ParseString[Align]("middle")
	assert.ErrorIs(t, err, ErrParse)
	_, err = ParseString[VAlign]("left")
	assert.ErrorIs(t, err, ErrParse)
	_, err = ParseString[Rect]("1 2 3")
	assert.ErrorIs(t, err, ErrParse)
	_, err = ParseString[ClientArea]("0 0 100%x 100%")
	assert.ErrorIs(t, err, ErrParse)
}

func TestParseStringNonFinite(t *testing.T) {
	for _, text := range []string{"NaN", "nan", "Inf", "-Inf", "+infinity", "1e39"} {
		_, err := ParseString[float32](text)
		assert.ErrorIs(t, err, ErrParse, text)
	}
	_, err := ParseString[Rect]("0 0 NaN 10")
	assert.ErrorIs(t, err, ErrParse)
	_, err = ParseString[ClientArea]("0 0 Inf% 100%")
	assert.ErrorIs(t, err, ErrParse)
	_, err = ParseString[ClientArea]("0 0 50%+Inf 100%")
	assert.ErrorIs(t, err, ErrParse)
}

func TestFromStringUnchanged(t *testing.T) {
	rec := &recorder{}
	tb := allKindsTable(rec)
	require.NoError(t, Set(tb, "int", 5, true))
	err := tb.Setting("int").FromString("five", false)
	assert.ErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), `"int"`)
	v, _ := Get[int](tb, "int")
	assert.Equal(t, 5, v)
	assert.Empty(t, rec.names)
}

func TestSettingString(t *testing.T) {
	tb := allKindsTable(nil)
	for name, text := range map[string]string{
		"bool":    "true",
		"int":     "3",
		"float":   "0.5",
		"string":  "hello world",
		"caption": "OK",
		"color":   "1 2 3 255",
		"sprite":  "stone",
		"size":    "50%-20 0 50%+20 40",
		"rect":    "1 2 3 4",
		"align":   "right",
		"valign":  "center",
	} {
		s := tb.Setting(name)
		require.NoError(t, s.FromString(text, true), name)
		assert.Equal(t, text, s.String(), name)
	}
	require.NoError(t, tb.Setting("color").FromString("none", true))
	assert.Equal(t, "", tb.Setting("color").String())
}
