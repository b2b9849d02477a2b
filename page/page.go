// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package page loads trees of GUI objects from TOML or YAML page files.
// Each object has a type, an optional name, and attributes that are
// parsed as the settings of the same name.
package page

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync/atomic"

	"cogentcore.org/gamegui/base/iox/tomlx"
	"cogentcore.org/gamegui/base/iox/yamlx"
	"cogentcore.org/gamegui/gui"
	"github.com/Masterminds/semver/v3"
)

// Versions is the range of page format versions that can be loaded.
const Versions = "^1.0"

// Page is the content of a page file.
type Page struct {

	// Version is the page format version.
	Version string `toml:"version" yaml:"version"`

	// Scripts are script files run after the objects are built,
	// relative to the page file.
	Scripts []string `toml:"scripts" yaml:"scripts"`

	// Objects are the top level objects.
	Objects []Object `toml:"objects" yaml:"objects"`

	// Dir is the directory of the page file, if loaded from a file.
	Dir string `toml:"-" yaml:"-"`
}

// Object describes one GUI object and its children.
type Object struct {

	// Type is the object type, a key of [Types].
	Type string `toml:"type" yaml:"type"`

	// Name is the object name. Unnamed objects get a unique
	// internal name.
	Name string `toml:"name" yaml:"name"`

	// Attrs are the setting values in markup attribute text.
	Attrs map[string]string `toml:"attrs" yaml:"attrs"`

	// Children are the child objects.
	Children []Object `toml:"children" yaml:"children"`
}

// Types are the constructors of the object types that pages can use.
var Types = map[string]func(name string) gui.Widget{
	"object": func(name string) gui.Widget { return gui.NewObject(name) },
	"button": func(name string) gui.Widget { return gui.NewButton(name) },
}

var internalNames atomic.Int64

// Open reads the given page file, as YAML if it has a .yaml or .yml
// extension and as TOML otherwise.
func Open(filename string) (*Page, error) {
	p := &Page{}
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yamlx.Open(p, filename)
	default:
		err = tomlx.Open(p, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("page: %w", err)
	}
	p.Dir = filepath.Dir(filename)
	return p, nil
}

// ReadTOML reads a page from the given TOML bytes.
func ReadTOML(data []byte) (*Page, error) {
	p := &Page{}
	if err := tomlx.ReadBytes(p, data); err != nil {
		return nil, fmt.Errorf("page: %w", err)
	}
	return p, nil
}

// ReadYAML reads a page from the given YAML bytes.
func ReadYAML(data []byte) (*Page, error) {
	p := &Page{}
	if err := yamlx.ReadBytes(p, data); err != nil {
		return nil, fmt.Errorf("page: %w", err)
	}
	return p, nil
}

// CheckVersion returns an error if the page format version
// is missing or not within [Versions].
func (p *Page) CheckVersion() error {
	if p.Version == "" {
		return fmt.Errorf("page: missing version")
	}
	v, err := semver.NewVersion(p.Version)
	if err != nil {
		return fmt.Errorf("page: invalid version %q: %w", p.Version, err)
	}
	c, err := semver.NewConstraint(Versions)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return fmt.Errorf("page: version %v is not supported (need %s)", v, Versions)
	}
	return nil
}

// Build creates the objects of the page and adds them to the root of
// the given GUI, then sends [gui.MsgLoad] to all objects. Nothing is
// added if any object is invalid.
func (p *Page) Build(g *gui.GUI) error {
	ws, err := p.widgets()
	if err != nil {
		return err
	}
	return add(g, ws)
}

// Rebuild replaces all objects of the given GUI with those of the page.
// The objects are only replaced if all of the new ones are valid.
func (p *Page) Rebuild(g *gui.GUI) error {
	ws, err := p.widgets()
	if err != nil {
		return err
	}
	for _, w := range g.Objects() {
		if w.AsObject().ParentObject() == g.Root() {
			g.DeleteObject(w)
		}
	}
	return add(g, ws)
}

// widgets checks the version and creates the widgets of all objects,
// which must have unique names.
func (p *Page) widgets() ([]gui.Widget, error) {
	if err := p.CheckVersion(); err != nil {
		return nil, err
	}
	ws := make([]gui.Widget, 0, len(p.Objects))
	names := map[string]bool{gui.RootName: true}
	for i := range p.Objects {
		w, err := p.Objects[i].build()
		if err != nil {
			return nil, err
		}
		gui.RecurseObject(0, w, func(k gui.Widget) {
			name := k.AsTree().Name
			if names[name] && err == nil {
				err = fmt.Errorf("page: object name %q: %w", name, gui.ErrNameInUse)
			}
			names[name] = true
		})
		if err != nil {
			return nil, err
		}
		ws = append(ws, w)
	}
	return ws, nil
}

// add adds the given widgets to the root of g and sends [gui.MsgLoad].
// If any can not be added, those already added are deleted.
func add(g *gui.GUI, ws []gui.Widget) error {
	for i, w := range ws {
		if err := g.AddObject(nil, w); err != nil {
			for _, added := range ws[:i] {
				g.DeleteObject(added)
			}
			return fmt.Errorf("page: %w", err)
		}
	}
	g.SendMessage(gui.Message{Type: gui.MsgLoad})
	return nil
}

// ScriptFiles returns the paths of the scripts of the page.
func (p *Page) ScriptFiles() []string {
	files := make([]string, len(p.Scripts))
	for i, s := range p.Scripts {
		if filepath.IsAbs(s) {
			files[i] = s
		} else {
			files[i] = filepath.Join(p.Dir, s)
		}
	}
	return files
}

// build creates the widget of the object and its children.
func (ob *Object) build() (gui.Widget, error) {
	newFunc, ok := Types[ob.Type]
	if !ok {
		return nil, fmt.Errorf("page: object %q has unknown type %q", ob.Name, ob.Type)
	}
	name := ob.Name
	if name == "" {
		name = fmt.Sprintf("__internal(%d)", internalNames.Add(1))
	}
	w := newFunc(name)
	o := w.AsObject()
	keys := make([]string, 0, len(ob.Attrs))
	for k := range ob.Attrs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		s := o.Settings().Setting(k)
		if s == nil {
			return nil, fmt.Errorf("page: object %q of type %q has no attribute %q", name, ob.Type, k)
		}
		if err := s.FromString(ob.Attrs[k], true); err != nil {
			return nil, fmt.Errorf("page: object %q: %w", name, err)
		}
	}
	for i := range ob.Children {
		kid, err := ob.Children[i].build()
		if err != nil {
			return nil, err
		}
		o.AddChild(kid)
	}
	return w, nil
}
