// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gui

import (
	"image/color"

	"cogentcore.org/gamegui/colors"
	"cogentcore.org/gamegui/settings"
	"cogentcore.org/gamegui/tree"
)

// GetSetting returns a copy of the value of the named setting of the
// given widget. It returns an error wrapping [settings.ErrSettingNotFound]
// if there is no such setting, and [settings.ErrTypeMismatch] if the
// setting is not of type T.
func GetSetting[T settings.Value](w Widget, name string) (T, error) {
	return settings.Get[T](w.AsObject().settings, name)
}

// GetSettingPointer returns a pointer to the value of the named setting
// of the given widget. Changes made through the pointer do not notify
// the widget. See [GetSetting] for the errors.
func GetSettingPointer[T settings.Value](w Widget, name string) (*T, error) {
	return settings.GetPointer[T](w.AsObject().settings, name)
}

// SetSetting sets the value of the named setting of the given widget,
// sending it a [MsgSettingsUpdated] message unless skipNotify is passed
// as true. See [GetSetting] for the errors.
func SetSetting[T settings.Value](w Widget, name string, value T, skipNotify ...bool) error {
	skip := len(skipNotify) > 0 && skipNotify[0]
	return settings.Set(w.AsObject().settings, name, value, skip)
}

// ParseString parses the given markup attribute text as a value
// of type T. See [settings.ParseString].
func ParseString[T settings.Value](text string) (T, error) {
	return settings.ParseString[T](text)
}

// FallBackSprite returns primary unless it is the null sprite,
// in which case it returns secondary.
func FallBackSprite(primary, secondary settings.Sprite) settings.Sprite {
	if primary.IsEmpty() {
		return secondary
	}
	return primary
}

// FallBackColor returns primary unless it is the nil color,
// in which case it returns secondary.
func FallBackColor(primary, secondary color.RGBA) color.RGBA {
	if colors.IsNil(primary) {
		return secondary
	}
	return primary
}

// Restrictions are flags that prune objects from [RecurseObject].
type Restrictions int32

const (
	// RestrictHidden skips hidden objects.
	RestrictHidden Restrictions = 1 << iota

	// RestrictDisabled skips disabled objects.
	RestrictDisabled

	// RestrictGhost skips ghost objects, which do not
	// receive mouse input.
	RestrictGhost
)

// Has returns whether all of the given flags are set.
func (r Restrictions) Has(flag Restrictions) bool {
	return r&flag == flag
}

// restricted returns whether the widget is pruned by the given
// restrictions. A missing setting counts as restricted.
func (r Restrictions) restricted(w Widget) bool {
	if r.Has(RestrictHidden) && boolSetting(w, SettingHidden, true) {
		return true
	}
	if r.Has(RestrictDisabled) && !boolSetting(w, SettingEnabled, false) {
		return true
	}
	if r.Has(RestrictGhost) && boolSetting(w, SettingGhost, true) {
		return true
	}
	return false
}

func boolSetting(w Widget, name string, def bool) bool {
	v, err := GetSetting[bool](w, name)
	if err != nil {
		return def
	}
	return v
}

// RecurseObject calls op on root and its descendants, depth-first with
// each object before its children, which are visited in their stored
// order. An object pruned by the given restrictions is skipped along
// with its whole subtree, whatever the settings of its descendants.
// op may delete the object it is given, whose subtree is then skipped,
// or objects already visited; any other change to the tree made by op
// is not supported.
func RecurseObject(restrictions Restrictions, root Widget, op func(w Widget)) {
	if root == nil {
		return
	}
	root.AsTree().WalkDown(func(n tree.Node) bool {
		w, ok := n.(Widget)
		if !ok || restrictions.restricted(w) {
			return tree.Break
		}
		op(w)
		return tree.Continue
	})
}
