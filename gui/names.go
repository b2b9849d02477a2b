// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gui

// Names of the settings registered by [Object].
const (
	SettingEnabled      = "enabled"
	SettingHidden       = "hidden"
	SettingGhost        = "ghost"
	SettingAbsolute     = "absolute"
	SettingSize         = "size"
	SettingZ            = "z"
	SettingAspectRatio  = "aspectratio"
	SettingTooltip      = "tooltip"
	SettingTooltipStyle = "tooltip_style"
)

// Names of the settings registered by [Button].
const (
	SettingBufferZone        = "buffer_zone"
	SettingCaption           = "caption"
	SettingCellID            = "cell_id"
	SettingFont              = "font"
	SettingSoundDisabled     = "sound_disabled"
	SettingSoundEnter        = "sound_enter"
	SettingSoundLeave        = "sound_leave"
	SettingSoundPressed      = "sound_pressed"
	SettingSoundReleased     = "sound_released"
	SettingSprite            = "sprite"
	SettingSpriteOver        = "sprite_over"
	SettingSpritePressed     = "sprite_pressed"
	SettingSpriteDisabled    = "sprite_disabled"
	SettingTextAlign         = "text_align"
	SettingTextVAlign        = "text_valign"
	SettingTextColor         = "textcolor"
	SettingTextColorOver     = "textcolor_over"
	SettingTextColorPressed  = "textcolor_pressed"
	SettingTextColorDisabled = "textcolor_disabled"
)

// EventPress is the script event fired when a button is clicked.
const EventPress = "press"
