// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx reads YAML files through [iox].
package yamlx

import (
	"io"
	"io/fs"

	"cogentcore.org/gamegui/base/iox"
	"gopkg.in/yaml.v3"
)

// NewDecoder returns a YAML [iox.Decoder] that rejects keys
// with no matching field.
func NewDecoder(r io.Reader) iox.Decoder {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	return d
}

// Open reads the given object from the given YAML file.
func Open(v any, filename string) error {
	return iox.Open(v, filename, NewDecoder)
}

// OpenFS reads the given object from the given YAML file in the given filesystem.
func OpenFS(v any, fsys fs.FS, filename string) error {
	return iox.OpenFS(v, fsys, filename, NewDecoder)
}

// ReadBytes reads the given object from the given YAML bytes.
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, NewDecoder)
}
