// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestLevelFromString(t *testing.T) {
	l, ok := LevelFromString(" Info ")
	assert.True(t, ok)
	assert.Equal(t, slog.LevelInfo, l)
	_, ok = LevelFromString("loud")
	assert.False(t, ok)
}

func TestHandler(t *testing.T) {
	old := UserLevel
	defer func() { UserLevel = old }()
	UserLevel = slog.LevelInfo

	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf)).With("page", "main")
	lg.Debug("hidden")
	lg.WithGroup("obj").Warn("missing sprite", "name", "button1")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "missing sprite")
	assert.Contains(t, out, "page=main")
	assert.Contains(t, out, "obj.name=button1")
}
