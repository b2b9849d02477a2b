// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPage = `
version = "1.0"
scripts = ["menu.go"]

[[objects]]
type = "button"
name = "ok"
attrs = { caption = "OK", size = "10 10 110 40", sprite = "color: 255 0 0 255" }
`

const testScript = `_ = gui.Get("ok").Set("tooltip", "press me")`

func setup(t *testing.T) (dir, cfg string) {
	dir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "menu.toml"), []byte(testPage), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "menu.go"), []byte(testScript), 0o644))
	cfg = filepath.Join(dir, "guictl.toml")
	conf := "screen_width = 200\nscreen_height = 100\npage_dirs = [\"" + filepath.ToSlash(dir) + "\"]\n"
	require.NoError(t, os.WriteFile(cfg, []byte(conf), 0o644))
	return dir, cfg
}

func TestRun(t *testing.T) {
	dir, cfg := setup(t)
	out := filepath.Join(dir, "out.png")
	var buf bytes.Buffer
	err := run(context.Background(), []string{
		"-q", "--config", cfg, "--png", out,
		"-e", `set ok caption "Start game"`,
		"-e", "get ok caption",
		"-e", "get ok tooltip",
		"-e", "click 50 20",
		"-e", "list",
		"menu.toml",
	}, &buf)
	require.NoError(t, err)
	assert.Equal(t, "Start game\npress me\nok 10 10 110 40\n", buf.String())

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, color.RGBAModel.Convert(img.At(12, 12)), color.RGBA{255, 0, 0, 255})
	assert.Equal(t, color.RGBAModel.Convert(img.At(150, 80)), color.RGBA{})
}

func TestRunWAV(t *testing.T) {
	dir, cfg := setup(t)
	out := filepath.Join(dir, "out.wav")
	require.NoError(t, run(context.Background(), []string{"-q", "-c", cfg, "--wav", out, "menu.toml"}, &bytes.Buffer{}))
	st, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, st.Size(), int64(44100))
}

func TestRunErrors(t *testing.T) {
	_, cfg := setup(t)
	for _, args := range [][]string{
		{"-q", "-c", cfg},
		{"-q", "-c", cfg, "none.toml"},
		{"-q", "-c", cfg, "-e", "jump", "menu.toml"},
		{"-q", "-c", cfg, "-e", "get ok", "menu.toml"},
		{"-q", "-c", cfg, "-e", "get ok colour", "menu.toml"},
		{"-q", "-c", cfg, "-e", "get cancel caption", "menu.toml"},
		{"-q", "-c", cfg, "-e", "set ok enabled yes", "menu.toml"},
		{"-q", "-c", cfg, "-e", "click left top", "menu.toml"},
		{"-q", "-c", cfg, "-e", `eval "undefined()"`, "menu.toml"},
		{"-q", "-c", cfg, "-e", `get "ok`, "menu.toml"},
	} {
		assert.Error(t, run(context.Background(), args, &bytes.Buffer{}), args)
	}
}

func TestCommands(t *testing.T) {
	_, cfg := setup(t)
	var buf bytes.Buffer
	err := run(context.Background(), []string{
		"-q", "-c", cfg,
		"-e", "focus ok",
		"-e", `eval "gui.Focused().ToString()"`,
		"-e", "blur",
		"-e", "resize 400 200",
		"-e", "settings ok",
		"menu.toml",
	}, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "[GUIObject: ok]\n")
	assert.Contains(t, buf.String(), "caption = OK\n")
	assert.Contains(t, buf.String(), "size = 10 10 110 40\n")
}
