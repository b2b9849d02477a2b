// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package text provides the font registry and the text generation
// used to lay out widget captions.
package text

import (
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFont is the name of the font used when a widget does not
// specify one. It is always registered.
const DefaultFont = "default"

var (
	fontsMu sync.RWMutex
	fonts   = map[string]font.Face{DefaultFont: basicfont.Face7x13}
)

// AddFont registers the given face under the given name,
// replacing any existing face with that name.
func AddFont(name string, face font.Face) {
	fontsMu.Lock()
	fonts[name] = face
	fontsMu.Unlock()
}

// HasFont returns whether a font with the given name is registered.
func HasFont(name string) bool {
	fontsMu.RLock()
	defer fontsMu.RUnlock()
	_, ok := fonts[name]
	return ok
}

// Font returns the face registered under the given name.
// Unknown names log a warning and return the [DefaultFont] face.
func Font(name string) font.Face {
	fontsMu.RLock()
	defer fontsMu.RUnlock()
	if f, ok := fonts[name]; ok {
		return f
	}
	slog.Warn("text: unknown font, using default", "font", name)
	return fonts[DefaultFont]
}

// FontNames returns the sorted names of all registered fonts.
func FontNames() []string {
	fontsMu.RLock()
	defer fontsMu.RUnlock()
	names := make([]string, 0, len(fonts))
	for nm := range fonts {
		names = append(names, nm)
	}
	sort.Strings(names)
	return names
}
