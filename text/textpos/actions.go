// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpos

import (
	"fmt"
	"strings"
)

// Actions are the kinds of user-level edit actions recorded in an [Edit],
// so that an editor can describe what will be undone or redone.
// The kind never changes how an edit is applied or inverted: that is
// determined entirely by the Delete and Lines flags and the Region.
type Actions int32 //enums:enum

const (
	ActionInsert Actions = iota
	ActionDelete
	ActionMoveCaret
	ActionSelect
	ActionCut
	ActionPaste
	ActionType
	ActionTab
	ActionEnter
	ActionBackspace
	ActionIndent
	ActionUnindent
	ActionComment
	ActionUncomment
	ActionDragDrop
	ActionTabsToSpaces
	ActionSpacesToTabs
	ActionAutoIndent
	ActionReplace
	ActionReplaceAll
	ActionChangeCase
	ActionDeleteHorizontalWhitespace
	ActionInsertLine
	ActionRemoveLine
	ActionsN
)

var actionNames = [...]string{
	"Insert", "Delete", "MoveCaret", "Select", "Cut", "Paste", "Type", "Tab",
	"Enter", "Backspace", "Indent", "Unindent", "Comment", "Uncomment",
	"DragDrop", "TabsToSpaces", "SpacesToTabs", "AutoIndent", "Replace",
	"ReplaceAll", "ChangeCase", "DeleteHorizontalWhitespace", "InsertLine",
	"RemoveLine",
}

// String returns the name of the action.
func (i Actions) String() string {
	if i < 0 || i >= ActionsN {
		return fmt.Sprintf("Actions(%d)", int32(i))
	}
	return actionNames[i]
}

// SetString sets the action from its name, case-insensitively.
func (i *Actions) SetString(s string) error {
	for a, nm := range actionNames {
		if strings.EqualFold(nm, s) {
			*i = Actions(a)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Actions", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Actions) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Actions) UnmarshalText(text []byte) error { return i.SetString(string(text)) }
