// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iox reads config and page files with any decoder that has
// a Decode method, such as those of the TOML and YAML packages.
// The format subpackages make decoders that reject unknown fields,
// so that a misspelled key is an error instead of being ignored.
package iox

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Decoder decodes values from the reader it was made with.
type Decoder interface {
	Decode(v any) error
}

// DecoderFunc makes a [Decoder] reading from r.
type DecoderFunc func(r io.Reader) Decoder

// Open decodes v from the named file. Errors name the file.
func Open(v any, filename string, f DecoderFunc) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	if err := Read(v, bufio.NewReader(fp), f); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	return nil
}

// OpenFS is like [Open] for a file of the given filesystem.
func OpenFS(v any, fsys fs.FS, filename string, f DecoderFunc) error {
	fp, err := fsys.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	if err := Read(v, bufio.NewReader(fp), f); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	return nil
}

// Read decodes v from r. Empty input leaves v unchanged.
func Read(v any, r io.Reader, f DecoderFunc) error {
	err := f(r).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// ReadBytes decodes v from data.
func ReadBytes(v any, data []byte, f DecoderFunc) error {
	return Read(v, bytes.NewReader(data), f)
}
