// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"fmt"

	"cogentcore.org/codetext/base/errors"
	"cogentcore.org/codetext/text/textpos"
	"cogentcore.org/codetext/undo"
)

// Undo undoes the most recent group of edits, returning the inverse
// edits that were applied, most recent first. It returns
// [ErrNothingToUndo] if there is nothing to undo.
func (ls *Lines) Undo() ([]*textpos.Edit, error) {
	ls.Lock()
	defer ls.unlock()
	return ls.undo()
}

// Redo redoes the most recently undone group of edits, returning the
// edits that were applied again, in their original order. It returns
// [ErrNothingToRedo] if nothing has been undone since the last edit.
func (ls *Lines) Redo() ([]*textpos.Edit, error) {
	ls.Lock()
	defer ls.unlock()
	return ls.redo()
}

// NewUndoGroup starts a group of edits that are undone and redone
// together, until [Lines.EndUndoGroup] is called. Groups nest.
func (ls *Lines) NewUndoGroup() {
	ls.Lock()
	defer ls.Unlock()
	ls.undos.NewGroup()
}

// EndUndoGroup ends the group started by [Lines.NewUndoGroup].
func (ls *Lines) EndUndoGroup() {
	ls.Lock()
	defer ls.Unlock()
	ls.undos.EndGroup()
}

// SetUndoOn turns undo recording on or off.
func (ls *Lines) SetUndoOn(on bool) {
	ls.Lock()
	defer ls.Unlock()
	ls.undos.Off = !on
}

// UndoReset clears all undo and redo records.
func (ls *Lines) UndoReset() {
	ls.Lock()
	defer ls.Unlock()
	ls.undos.Reset()
}

// NumUndo returns the number of edits that can be undone.
func (ls *Lines) NumUndo() int {
	ls.Lock()
	defer ls.Unlock()
	return ls.undos.Undos.Len()
}

// NumRedo returns the number of undone edits that can be redone.
func (ls *Lines) NumRedo() int {
	ls.Lock()
	defer ls.Unlock()
	return ls.undos.Redos.Len()
}

// undo applies the inverse of each edit in the most recent undo
// group, moving the edits onto the redo stack.
func (ls *Lines) undo() ([]*textpos.Edit, error) {
	eds, err := ls.undos.PopUndo()
	if errors.Is(err, undo.ErrEmptyStack) {
		return nil, ErrNothingToUndo
	}
	if err != nil {
		return nil, err
	}
	var applied []*textpos.Edit
	for i, tbe := range eds {
		utbe, err := ls.applyEdit(tbe.Inverse())
		if err != nil {
			// the history no longer matches the text
			ls.undos.Reset()
			return applied, errors.Log(fmt.Errorf("lines: undo of edit %d of group %d failed: %w", i, tbe.Group, err))
		}
		ls.undos.PushRedo(tbe)
		if utbe != nil {
			utbe.Group = tbe.Group
			applied = append(applied, utbe)
		}
	}
	return applied, nil
}

// redo applies again each edit in the most recently undone group,
// moving the edits back onto the undo stack.
func (ls *Lines) redo() ([]*textpos.Edit, error) {
	eds, err := ls.undos.PopRedo()
	if errors.Is(err, undo.ErrEmptyStack) {
		return nil, ErrNothingToRedo
	}
	if err != nil {
		return nil, err
	}
	var applied []*textpos.Edit
	for i, tbe := range eds {
		rtbe, err := ls.applyEdit(tbe)
		if err != nil {
			ls.undos.Reset()
			return applied, errors.Log(fmt.Errorf("lines: redo of edit %d of group %d failed: %w", i, tbe.Group, err))
		}
		ls.undos.PushUndo(tbe)
		if rtbe != nil {
			rtbe.Group = tbe.Group
			applied = append(applied, rtbe)
		}
	}
	return applied, nil
}
