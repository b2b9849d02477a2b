// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"fmt"
)

// Notifier is notified after a setting value changes.
// GUI objects implement it to update cached state.
type Notifier interface {
	SettingsUpdated(name string)
}

// Setting is one named, typed value owned by a [Table].
// Its kind is fixed when it is added to the table.
type Setting struct {

	// Name is the name of the setting, unique within its table.
	Name string

	// Kind is the type of the value.
	Kind Kinds

	// value is a pointer to the value, of the type given by Kind.
	value any

	// table is the table that owns the setting.
	table *Table
}

// FromString parses the given markup attribute text and assigns the
// result to the setting. On failure it returns an error wrapping
// [ErrParse] and the value is unchanged. The owner is notified
// unless skipNotify is true.
func (s *Setting) FromString(text string, skipNotify bool) error {
	v, err := parseKind(s.Kind, text)
	if err != nil {
		return fmt.Errorf("setting %q: %w", s.Name, err)
	}
	s.assign(v)
	if !skipNotify {
		s.table.notify(s.Name)
	}
	return nil
}

// FromScriptValue converts the given script value and assigns the
// result to the setting, notifying the owner. On failure it returns
// an error wrapping [ErrTypeMismatch] and the value is unchanged.
func (s *Setting) FromScriptValue(sv any) error {
	v, ok := fromScript(s.Kind, sv)
	if !ok {
		return fmt.Errorf("%w: setting %q of kind %v can not be set from %T", ErrTypeMismatch, s.Name, s.Kind, sv)
	}
	s.assign(v)
	s.table.notify(s.Name)
	return nil
}

// ToScriptValue returns the value of the setting as a script value.
func (s *Setting) ToScriptValue() any {
	return toScript(s.Kind, s.value)
}

// String returns the value of the setting as markup attribute text.
func (s *Setting) String() string {
	return formatKind(s.Kind, s.value)
}

// Any returns the value of the setting (not a pointer to it),
// as its Go type.
func (s *Setting) Any() any {
	return derefKind(s.Kind, s.value)
}

// assign stores the given value, which must be of the setting kind.
func (s *Setting) assign(v any) {
	setKind(s.Kind, s.value, v)
}
