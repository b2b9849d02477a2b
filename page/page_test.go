// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package page

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cogentcore.org/gamegui/gui"
	"cogentcore.org/gamegui/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const menuTOML = `
version = "1.0"
scripts = ["menu.go"]

[[objects]]
type = "object"
name = "menu"
attrs = { size = "50%-100 50%-50 50%+100 50%+50" }

[[objects.children]]
type = "button"
name = "start"
attrs = { caption = "Start", size = "0 0 100% 50%", sprite = "color: 40 40 40 255", textcolor = "white" }

[[objects.children]]
type = "button"
attrs = { caption = "Quit", size = "0 50% 100% 100%", enabled = "false" }
`

const menuYAML = `
version: "1.2.0"
objects:
  - type: object
    name: menu
    attrs:
      size: "0 0 100% 100%"
    children:
      - type: button
        name: start
        attrs:
          caption: Start
          text_align: center
`

func TestBuildTOML(t *testing.T) {
	p, err := ReadTOML([]byte(menuTOML))
	require.NoError(t, err)
	g := gui.New(800, 600)
	require.NoError(t, p.Build(g))

	objs := g.Objects()
	require.Len(t, objs, 3)
	start, ok := g.FindObject("start").(*gui.Button)
	require.True(t, ok)
	assert.Equal(t, settings.Rect{Left: 300, Top: 250, Right: 500, Bottom: 300}, start.CachedSize())
	caption, err := gui.GetSetting[settings.Caption](start, gui.SettingCaption)
	require.NoError(t, err)
	assert.Equal(t, settings.Caption("Start"), caption)

	quit := objs[2]
	assert.True(t, strings.HasPrefix(quit.AsTree().Name, "__internal("))
	assert.False(t, quit.AsObject().IsEnabled())
}

func TestBuildYAML(t *testing.T) {
	p, err := ReadYAML([]byte(menuYAML))
	require.NoError(t, err)
	g := gui.New(800, 600)
	require.NoError(t, p.Build(g))
	start := g.FindObject("start")
	require.NotNil(t, start)
	a, err := gui.GetSetting[settings.Align](start, gui.SettingTextAlign)
	require.NoError(t, err)
	assert.Equal(t, settings.AlignCenter, a)
}

func TestBuildErrors(t *testing.T) {
	g := gui.New(800, 600)
	for _, src := range []string{
		`objects = []`,
		`version = "2.0"`,
		`version = "one"`,
		"version = \"1.0\"\n[[objects]]\ntype = \"slider\"",
		"version = \"1.0\"\n[[objects]]\ntype = \"button\"\nattrs = { colour = \"red\" }",
		"version = \"1.0\"\n[[objects]]\ntype = \"button\"\nattrs = { enabled = \"yes\" }",
		"version = \"1.0\"\n[[objects]]\ntype = \"object\"\nname = \"a\"\n[[objects]]\ntype = \"object\"\nname = \"a\"",
		"version = \"1.0\"\n[[objects]]\ntype = \"object\"\nname = \"__root\"",
		dupSiblings,
	} {
		p, err := ReadTOML([]byte(src))
		require.NoError(t, err, src)
		assert.Error(t, p.Build(g), src)
		assert.Empty(t, g.Objects(), src)
	}
}

const dupSiblings = `
version = "1.0"

[[objects]]
type = "object"
name = "box"

[[objects.children]]
type = "button"
name = "x"

[[objects.children]]
type = "button"
name = "x"
`

func TestDuplicateNames(t *testing.T) {
	p, err := ReadTOML([]byte(dupSiblings))
	require.NoError(t, err)
	g := gui.New(800, 600)
	err = p.Build(g)
	assert.ErrorIs(t, err, gui.ErrNameInUse)
	assert.ErrorContains(t, err, `"x"`)
	assert.Empty(t, g.Objects())
}

func TestRebuildKeepsObjects(t *testing.T) {
	p, err := ReadTOML([]byte(menuTOML))
	require.NoError(t, err)
	g := gui.New(800, 600)
	require.NoError(t, p.Build(g))
	before := g.Objects()

	for _, src := range []string{
		"version = \"1.0\"\n[[objects]]\ntype = \"button\"\nattrs = { bogus = \"1\" }",
		"version = \"1.0\"\n[[objects]]\ntype = \"slider\"",
		`version = "3.0"`,
		dupSiblings,
	} {
		bad, err := ReadTOML([]byte(src))
		require.NoError(t, err, src)
		assert.Error(t, bad.Rebuild(g), src)
		assert.Equal(t, before, g.Objects(), src)
	}
	assert.NotNil(t, g.FindObject("start"))

	// names of the objects being replaced can be reused
	require.NoError(t, p.Rebuild(g))
	assert.Len(t, g.Objects(), 3)
	assert.NotSame(t, before[0], g.Objects()[0])
}

func TestOpenAndRebuild(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "menu.toml")
	require.NoError(t, os.WriteFile(fn, []byte(menuTOML), 0o644))
	p, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "menu.go")}, p.ScriptFiles())

	g := gui.New(800, 600)
	require.NoError(t, p.Build(g))
	require.NoError(t, p.Rebuild(g))
	assert.Len(t, g.Objects(), 3)

	yfn := filepath.Join(dir, "menu.yml")
	require.NoError(t, os.WriteFile(yfn, []byte(menuYAML), 0o644))
	p, err = Open(yfn)
	require.NoError(t, err)
	require.NoError(t, p.Rebuild(g))
	assert.Len(t, g.Objects(), 2)

	_, err = Open(filepath.Join(dir, "none.toml"))
	assert.Error(t, err)
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "menu.toml")
	require.NoError(t, os.WriteFile(fn, []byte(menuTOML), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pages := make(chan *Page, 10)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, fn, func(p *Page, err error) {
			if err == nil && p.Version == "1.1" {
				select {
				case pages <- p:
				default:
				}
			}
		})
	}()

	// give the watcher time to start
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(fn, []byte(strings.Replace(menuTOML, `"1.0"`, `"1.1"`, 1)), 0o644))
	select {
	case p := <-pages:
		assert.Equal(t, "1.1", p.Version)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after writing the page")
	}
	cancel()
	assert.NoError(t, <-done)
}
