// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cogentcore.org/gamegui/gui"
	"cogentcore.org/gamegui/settings"
	"github.com/mattn/go-shellwords"
)

// command is a guictl command run with -e.
type command struct {
	usage string
	nargs int
	run   func(a *app, ctx context.Context, args []string, out io.Writer) error
}

var commands = map[string]command{
	"list":     {"list", 0, listCmd},
	"settings": {"settings object", 1, settingsCmd},
	"get":      {"get object setting", 2, getCmd},
	"set":      {"set object setting value", 3, setCmd},
	"move":     {"move x y", 2, mouseCmd((*gui.GUI).MouseMove)},
	"press":    {"press x y", 2, mouseCmd((*gui.GUI).MousePress)},
	"release":  {"release x y", 2, mouseCmd((*gui.GUI).MouseRelease)},
	"click":    {"click x y", 2, mouseCmd((*gui.GUI).Click)},
	"focus":    {"focus object", 1, focusCmd},
	"blur":     {"blur", 0, blurCmd},
	"resize":   {"resize width height", 2, resizeCmd},
	"eval":     {"eval code", 1, evalCmd},
}

// exec runs the given command line.
func (a *app) exec(ctx context.Context, line string, out io.Writer) error {
	args, err := shellwords.Parse(line)
	if err != nil {
		return fmt.Errorf("guictl: command %q: %w", line, err)
	}
	if len(args) == 0 {
		return nil
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("guictl: unknown command %q", args[0])
	}
	if len(args)-1 != cmd.nargs {
		return fmt.Errorf("guictl: usage: %s", cmd.usage)
	}
	if err := cmd.run(a, ctx, args[1:], out); err != nil {
		return fmt.Errorf("guictl: %s: %w", args[0], err)
	}
	return nil
}

func (a *app) object(name string) (*gui.Object, error) {
	w := a.gui.FindObject(name)
	if w == nil {
		return nil, fmt.Errorf("no object named %q", name)
	}
	return w.AsObject(), nil
}

func (a *app) setting(object, name string) (*settings.Setting, error) {
	o, err := a.object(object)
	if err != nil {
		return nil, err
	}
	return o.Settings().Lookup(name)
}

func listCmd(a *app, ctx context.Context, args []string, out io.Writer) error {
	for _, w := range a.gui.Objects() {
		depth := 0
		for p := w.AsObject().ParentObject(); p != nil && p != a.gui.Root(); p = p.ParentObject() {
			depth++
		}
		fmt.Fprintf(out, "%s%s %v\n", strings.Repeat("  ", depth), w.AsTree().Name, w.AsObject().CachedSize())
	}
	return nil
}

func settingsCmd(a *app, ctx context.Context, args []string, out io.Writer) error {
	o, err := a.object(args[0])
	if err != nil {
		return err
	}
	for _, name := range o.Settings().Names() {
		fmt.Fprintf(out, "%s = %s\n", name, o.Settings().Setting(name))
	}
	return nil
}

func getCmd(a *app, ctx context.Context, args []string, out io.Writer) error {
	s, err := a.setting(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(out, s)
	return nil
}

func setCmd(a *app, ctx context.Context, args []string, out io.Writer) error {
	s, err := a.setting(args[0], args[1])
	if err != nil {
		return err
	}
	return s.FromString(args[2], false)
}

func mouseCmd(fun func(g *gui.GUI, x, y float32)) func(a *app, ctx context.Context, args []string, out io.Writer) error {
	return func(a *app, ctx context.Context, args []string, out io.Writer) error {
		x, err := gui.ParseString[float32](args[0])
		if err != nil {
			return err
		}
		y, err := gui.ParseString[float32](args[1])
		if err != nil {
			return err
		}
		fun(a.gui, x, y)
		return nil
	}
}

func focusCmd(a *app, ctx context.Context, args []string, out io.Writer) error {
	o, err := a.object(args[0])
	if err != nil {
		return err
	}
	a.host.Object(o.Widget()).Focus()
	return nil
}

func blurCmd(a *app, ctx context.Context, args []string, out io.Writer) error {
	if f := a.host.Focused(); f != nil {
		f.Blur()
	}
	return nil
}

func resizeCmd(a *app, ctx context.Context, args []string, out io.Writer) error {
	w, err := gui.ParseString[float32](args[0])
	if err != nil {
		return err
	}
	h, err := gui.ParseString[float32](args[1])
	if err != nil {
		return err
	}
	a.cfg.ScreenWidth, a.cfg.ScreenHeight = w, h
	a.gui.UpdateResolution(w, h)
	return nil
}

func evalCmd(a *app, ctx context.Context, args []string, out io.Writer) error {
	v, err := a.host.Eval(ctx, args[0])
	if err != nil {
		return err
	}
	if v != nil {
		fmt.Fprintln(out, v)
	}
	return nil
}
