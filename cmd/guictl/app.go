// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cogentcore.org/gamegui/base/logx"
	"cogentcore.org/gamegui/config"
	"cogentcore.org/gamegui/gui"
	"cogentcore.org/gamegui/jsi"
	"cogentcore.org/gamegui/page"
	"cogentcore.org/gamegui/sound"
	"github.com/cogentcore/yaegi/interp"
	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

// app is a loaded GUI with its script host, sounds and sprites.
type app struct {
	opts     *options
	cfg      *config.Config
	pagePath string
	gui      *gui.GUI
	host     *jsi.Host
	sounds   *sound.Library
	sprites  map[string]image.Image
}

// newApp loads the configuration and the sounds and sprites it names.
// The config log level is used unless levelSet.
func newApp(opts *options, levelSet bool) (*app, error) {
	cfg, err := loadConfig(opts.config)
	if err != nil {
		return nil, err
	}
	if !levelSet {
		logx.UserLevel = cfg.Level()
	}
	a := &app{opts: opts, cfg: cfg, sprites: map[string]image.Image{}}
	a.pagePath, err = cfg.FindPage(opts.page)
	if err != nil {
		return nil, err
	}
	a.gui = gui.New(cfg.ScreenWidth, cfg.ScreenHeight)
	a.gui.DefaultFont = cfg.DefaultFont
	a.sounds = sound.NewLibrary(sound.SampleRate)
	if cfg.SoundDir != "" {
		if err := a.sounds.LoadFS(os.DirFS(cfg.SoundDir), "."); err != nil {
			return nil, err
		}
	}
	a.gui.Sounds = a.sounds
	if cfg.SpriteDir != "" {
		if err := a.loadSprites(os.DirFS(cfg.SpriteDir)); err != nil {
			return nil, err
		}
	}
	a.host, err = jsi.NewHost(a.gui, interp.Options{GoPath: os.Getenv("GOPATH")})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// loadConfig opens the given config file, or guictl.toml if
// filename is empty and it exists, or returns the defaults.
func loadConfig(filename string) (*config.Config, error) {
	if filename == "" {
		fn, err := config.Find("guictl.toml")
		if errors.Is(err, config.ErrNoConfig) {
			return config.Default(), nil
		}
		filename = fn
	}
	return config.Open(filename)
}

// loadSprites decodes all PNG files of fsys as sprites named by
// their file name without extension.
func (a *app) loadSprites(fsys fs.FS) error {
	files, err := fs.Glob(fsys, "*.png")
	if err != nil {
		return err
	}
	for _, fn := range files {
		f, err := fsys.Open(fn)
		if err != nil {
			return err
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("guictl: sprite %s: %w", fn, err)
		}
		a.sprites[strings.TrimSuffix(fn, filepath.Ext(fn))] = img
	}
	return nil
}

// run loads the page, runs the commands and writes the outputs,
// then watches the page if requested.
func (a *app) run(ctx context.Context, out io.Writer) error {
	p, err := page.Open(a.pagePath)
	if err != nil {
		return err
	}
	if err := a.load(ctx, p, out); err != nil {
		return err
	}
	if !a.opts.watch {
		return nil
	}
	slog.Info("guictl: watching", "page", a.pagePath)
	return page.Watch(ctx, a.pagePath, func(p *page.Page, err error) {
		if err == nil {
			err = a.load(ctx, p, out)
		}
		if err != nil {
			slog.Error(err.Error())
		}
	})
}

// load builds the page into the GUI, replacing what is there, and
// runs its scripts, the extra scripts and the commands.
func (a *app) load(ctx context.Context, p *page.Page, out io.Writer) error {
	if err := p.Rebuild(a.gui); err != nil {
		return err
	}
	a.host.Prune()
	scripts := append(p.ScriptFiles(), a.opts.scripts...)
	for _, fn := range scripts {
		slog.Debug("guictl: running script", "file", fn)
		if _, err := a.host.EvalFile(ctx, fn); err != nil {
			return fmt.Errorf("guictl: script %s: %w", fn, err)
		}
	}
	for _, cmd := range a.opts.commands {
		if err := a.exec(ctx, cmd, out); err != nil {
			return err
		}
	}
	if a.opts.png != "" {
		if err := a.writePNG(a.opts.png); err != nil {
			return err
		}
	}
	if a.opts.wav != "" {
		if err := a.writeWAV(a.opts.wav, time.Second); err != nil {
			return err
		}
	}
	return nil
}

// render draws the GUI into a new image.
func (a *app) render() image.Image {
	ir := gui.NewImageRenderer(int(a.cfg.ScreenWidth), int(a.cfg.ScreenHeight))
	for name, img := range a.sprites {
		ir.AddSprite(name, img, image.Point{})
	}
	a.gui.Draw(ir)
	ir.Render()
	return ir.Image
}

func (a *app) writePNG(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, a.render()); err != nil {
		return err
	}
	slog.Info("guictl: wrote", "file", filename)
	return f.Close()
}

// writeWAV writes the given duration of the sounds being played.
func (a *app) writeWAV(filename string, d time.Duration) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	sr := a.sounds.Format.SampleRate
	if err := wav.Encode(f, beep.Take(sr.N(d), a.sounds), a.sounds.Format); err != nil {
		return err
	}
	slog.Info("guictl: wrote", "file", filename)
	return f.Close()
}
