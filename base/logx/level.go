// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the logging level selection and default
// terminal log handler used by the GUI packages.
package logx

import (
	"log/slog"
	"strings"
)

// UserLevel is the lowest level of the records that [Handler] writes.
// It is set from the command line flags or the config log_level.
var UserLevel = defaultUserLevel

// LevelFromFlags returns the level selected by the -vv (debug),
// -v (info) and -q (error) flags, warn if none is set. The first
// set flag in that order wins.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// LevelFromString returns the level with the given case-insensitive
// name (debug, info, warn, error), and false if there is none.
func LevelFromString(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return UserLevel, false
}
