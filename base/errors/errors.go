// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors re-exports the standard errors functions used by the
// GUI packages, and adds helpers for errors that are logged instead of
// returned, such as those of draw calls and script handlers.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
)

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// Join is [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }

// Log logs a non-nil err at the error level, with the file and line
// of the caller, and returns err:
//
//	errors.Log(o.ScriptEvent("press"))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error(), "at", caller())
	}
	return err
}

// Log1 is [Log] for functions that also return a value:
//
//	v := errors.Log1(settings.Get[float32](t, "z"))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error(), "at", caller())
	}
	return v
}

// Must panics if err is non-nil. It is for errors that can only come
// from a programming mistake.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// caller returns file:line of the caller of the exported function.
func caller() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "?"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
