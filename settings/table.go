// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"fmt"
	"slices"
)

// Table is the set of settings of one GUI object, keyed by name.
// Settings are added while the object is constructed, after which
// the table is sealed and its set of names never changes.
type Table struct {
	settings map[string]*Setting

	// order is the setting names in registration order.
	order []string

	owner  Notifier
	sealed bool
}

// NewTable returns a new empty table whose settings notify
// the given owner, which may be nil.
func NewTable(owner Notifier) *Table {
	return &Table{settings: map[string]*Setting{}, owner: owner}
}

// Add registers a new setting with the given name and the type T,
// with the zero value of T. It panics if the name is already registered
// or the table is sealed, since both are programming errors.
func Add[T Value](t *Table, name string) *Setting {
	if t.sealed {
		panic(fmt.Sprintf("settings: adding %q to a sealed table", name))
	}
	if _, has := t.settings[name]; has {
		panic(fmt.Sprintf("settings: duplicate setting %q", name))
	}
	k := KindOf[T]()
	s := &Setting{Name: name, Kind: k, value: newValue(k), table: t}
	t.settings[name] = s
	t.order = append(t.order, name)
	return s
}

// Seal marks the table as complete, so that no more settings can be added.
func (t *Table) Seal() {
	t.sealed = true
}

// Exists returns whether a setting with the given name is registered.
func (t *Table) Exists(name string) bool {
	_, has := t.settings[name]
	return has
}

// Setting returns the setting with the given name, or nil if there is none.
func (t *Table) Setting(name string) *Setting {
	return t.settings[name]
}

// Lookup returns the setting with the given name, or an error
// wrapping [ErrSettingNotFound].
func (t *Table) Lookup(name string) (*Setting, error) {
	s, has := t.settings[name]
	if !has {
		return nil, fmt.Errorf("%w: %q", ErrSettingNotFound, name)
	}
	return s, nil
}

// Names returns the names of all settings in registration order.
func (t *Table) Names() []string {
	return slices.Clone(t.order)
}

// Len returns the number of settings.
func (t *Table) Len() int {
	return len(t.order)
}

func (t *Table) notify(name string) {
	if t.owner != nil {
		t.owner.SettingsUpdated(name)
	}
}

// GetPointer returns a pointer to the value of the setting with the
// given name, which can be used to modify it without notification.
// It returns an error wrapping [ErrSettingNotFound] if there is no such
// setting, and [ErrTypeMismatch] if the setting is not of type T.
func GetPointer[T Value](t *Table, name string) (*T, error) {
	s, err := t.Lookup(name)
	if err != nil {
		return nil, err
	}
	p, ok := s.value.(*T)
	if !ok {
		return nil, fmt.Errorf("%w: setting %q is %v, not %v", ErrTypeMismatch, name, s.Kind, KindOf[T]())
	}
	return p, nil
}

// Get returns a copy of the value of the setting with the given name.
// See [GetPointer] for the errors.
func Get[T Value](t *Table, name string) (T, error) {
	p, err := GetPointer[T](t, name)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Set sets the value of the setting with the given name, notifying
// the owner unless skipNotify is true. See [GetPointer] for the errors.
func Set[T Value](t *Table, name string, value T, skipNotify bool) error {
	p, err := GetPointer[T](t, name)
	if err != nil {
		return err
	}
	*p = value
	if !skipNotify {
		t.notify(name)
	}
	return nil
}
