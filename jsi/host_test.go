// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsi

import (
	"context"
	"testing"

	"cogentcore.org/gamegui/gui"
	"cogentcore.org/gamegui/settings"
	"github.com/cogentcore/yaegi/interp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHost(t *testing.T) {
	g, _, ok := testGUI(t)
	h, err := NewHost(g, interp.Options{})
	require.NoError(t, err)
	ctx := context.Background()

	assert.Same(t, h.Get("ok"), h.Object(ok))
	assert.Nil(t, h.Get("missing"))

	v, err := h.Eval(ctx, `1 + 2`)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = h.Eval(ctx, `_ = gui.Get("ok").Set("caption", "Start")`)
	require.NoError(t, err)
	caption, err := gui.GetSetting[settings.Caption](ok, gui.SettingCaption)
	require.NoError(t, err)
	assert.Equal(t, settings.Caption("Start"), caption)

	v, err = h.Eval(ctx, `gui.Get("ok").ToString()`)
	require.NoError(t, err)
	assert.Equal(t, "[GUIObject: ok]", v)

	_, err = h.Eval(ctx, `gui.Get("ok").Focus()`)
	require.NoError(t, err)
	assert.Equal(t, gui.Widget(ok), g.Focused())

	g.DeleteObject(ok)
	h.Prune()
	assert.Len(t, h.objects, 0)
}
