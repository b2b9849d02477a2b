// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command guictl loads a GUI page, runs its scripts and the given
// commands against it, and renders the result.
//
// Usage:
//
//	guictl [flags] page
//
// Commands given with -e are split into words like a shell does:
//
//	guictl -e 'set ok caption "Start game"' -e 'click 100 40' --png out.png menu.toml
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/gamegui/base/logx"
	"github.com/spf13/pflag"
)

// options are the command line options.
type options struct {
	config   string
	commands []string
	scripts  []string
	png      string
	wav      string
	watch    bool
	page     string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// run parses the given arguments and runs guictl, writing
// command output to out.
func run(ctx context.Context, args []string, out io.Writer) error {
	opts := &options{}
	var vv, v, q bool
	fs := pflag.NewFlagSet("guictl", pflag.ContinueOnError)
	fs.StringVarP(&opts.config, "config", "c", "", "config file (default guictl.toml if it exists)")
	fs.StringArrayVarP(&opts.commands, "exec", "e", nil, "command to run after loading the page (repeatable)")
	fs.StringArrayVarP(&opts.scripts, "script", "s", nil, "script file to run after the page scripts (repeatable)")
	fs.StringVar(&opts.png, "png", "", "write the rendered GUI to this PNG file")
	fs.StringVar(&opts.wav, "wav", "", "write the sounds played by the commands to this WAV file")
	fs.BoolVarP(&opts.watch, "watch", "w", false, "rebuild and render again when the page file changes")
	fs.BoolVar(&vv, "vv", false, "log debug messages")
	fs.BoolVarP(&v, "verbose", "v", false, "log info messages")
	fs.BoolVarP(&q, "quiet", "q", false, "only log errors")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("guictl: expected one page file, got %d arguments", fs.NArg())
	}
	opts.page = fs.Arg(0)

	logx.UserLevel = logx.LevelFromFlags(vv, v, q)
	logx.SetDefaultLogger()

	a, err := newApp(opts, vv || v || q)
	if err != nil {
		return err
	}
	return a.run(ctx, out)
}
