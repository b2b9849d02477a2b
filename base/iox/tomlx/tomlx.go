// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx reads TOML files through [iox].
package tomlx

import (
	"io"
	"io/fs"

	"cogentcore.org/gamegui/base/iox"
	"github.com/pelletier/go-toml/v2"
)

// NewDecoder returns a TOML [iox.Decoder] that rejects keys
// with no matching field.
func NewDecoder(r io.Reader) iox.Decoder {
	return toml.NewDecoder(r).DisallowUnknownFields()
}

// Open reads the given object from the given TOML file.
func Open(v any, filename string) error {
	return iox.Open(v, filename, NewDecoder)
}

// OpenFS reads the given object from the given TOML file in the given filesystem.
func OpenFS(v any, fsys fs.FS, filename string) error {
	return iox.OpenFS(v, fsys, filename, NewDecoder)
}

// ReadBytes reads the given object from the given TOML bytes.
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, NewDecoder)
}
