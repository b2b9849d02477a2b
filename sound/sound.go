// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sound provides a library of named sounds that are mixed
// into a single output stream when played.
package sound

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"cogentcore.org/gamegui/base/errors"
	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

// SampleRate is the default output sample rate.
const SampleRate beep.SampleRate = 44100

// Library holds decoded sounds by name, and mixes the sounds being
// played into a single stream. Library is itself a [beep.Streamer], so it
// can be handed to an audio output such as the beep speaker.
type Library struct {

	// Format is the output format. Loaded sounds are resampled to it.
	Format beep.Format

	mu     sync.Mutex
	sounds map[string]*beep.Buffer
	mixer  beep.Mixer
}

// NewLibrary returns a new empty library with the given output sample rate.
func NewLibrary(sr beep.SampleRate) *Library {
	return &Library{
		Format: beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2},
		sounds: map[string]*beep.Buffer{},
	}
}

// Add buffers the given stream, which must already be in the output
// format, under the given name.
func (l *Library) Add(name string, s beep.Streamer) {
	buf := beep.NewBuffer(l.Format)
	buf.Append(s)
	l.mu.Lock()
	l.sounds[name] = buf
	l.mu.Unlock()
}

// Load decodes WAV data from the given reader and adds it under
// the given name, resampling it to the output sample rate.
func (l *Library) Load(name string, r io.Reader) error {
	s, format, err := wav.Decode(r)
	if err != nil {
		return fmt.Errorf("sound: decoding %q: %w", name, err)
	}
	defer s.Close()
	var st beep.Streamer = s
	if format.SampleRate != l.Format.SampleRate {
		st = beep.Resample(4, format.SampleRate, l.Format.SampleRate, s)
	}
	l.Add(name, st)
	return nil
}

// LoadFile loads the given WAV file under the given name.
func (l *Library) LoadFile(name, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return l.Load(name, f)
}

// LoadFS loads every .wav file in the given directory of fsys,
// named by the file name without its extension.
func (l *Library) LoadFS(fsys fs.FS, dir string) error {
	ents, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return err
	}
	var errs []error
	for _, e := range ents {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".wav") {
			continue
		}
		f, err := fsys.Open(path.Join(dir, e.Name()))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		errs = append(errs, l.Load(strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())), f))
		f.Close()
	}
	return errors.Join(errs...)
}

// Has returns whether a sound with the given name exists.
func (l *Library) Has(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.sounds[name]
	return ok
}

// Names returns the sorted names of all sounds.
func (l *Library) Names() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	names := make([]string, 0, len(l.sounds))
	for nm := range l.sounds {
		names = append(names, nm)
	}
	sort.Strings(names)
	return names
}

// Play starts playing the named sound. An empty name does nothing,
// and an unknown name logs a warning.
func (l *Library) Play(name string) {
	if name == "" {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	buf, ok := l.sounds[name]
	if !ok {
		slog.Warn("sound: unknown sound", "sound", name)
		return
	}
	l.mixer.Add(buf.Streamer(0, buf.Len()))
}

// Playing returns the number of sounds currently playing.
func (l *Library) Playing() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mixer.Len()
}

// Stream mixes the playing sounds into samples. It always fills all
// of samples, with silence when nothing is playing.
func (l *Library) Stream(samples [][2]float64) (n int, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mixer.Stream(samples)
}

// Err always returns nil.
func (l *Library) Err() error {
	return nil
}
