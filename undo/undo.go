// Copyright (c) 2021, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package undo provides the edit history used for undo and redo:
// a strict LIFO [Stack] and a [History] made of an undo and a redo stack.
package undo

import (
	"fmt"
	"log/slog"

	"cogentcore.org/codetext/base/errors"
	"cogentcore.org/codetext/text/textpos"
)

// Trace; set to true to get a debug log of undo actions.
var Trace = false

// ErrEmptyStack is returned when popping or peeking an empty [Stack].
var ErrEmptyStack = errors.New("undo: stack is empty")

// Stack is a last-in, first-out stack of items.
// It performs no inversion of its own: items are stored and
// returned exactly as pushed. The zero value is an empty stack.
type Stack[T any] struct {
	items []T
}

// Push adds the given item to the top of the stack.
func (st *Stack[T]) Push(item T) {
	st.items = append(st.items, item)
}

// Pop removes and returns the most recently pushed item.
func (st *Stack[T]) Pop() (T, error) {
	var zv T
	n := len(st.items)
	if n == 0 {
		return zv, ErrEmptyStack
	}
	item := st.items[n-1]
	st.items[n-1] = zv
	st.items = st.items[:n-1]
	return item, nil
}

// Peek returns the most recently pushed item without removing it.
func (st *Stack[T]) Peek() (T, error) {
	var zv T
	n := len(st.items)
	if n == 0 {
		return zv, ErrEmptyStack
	}
	return st.items[n-1], nil
}

// Clear removes all items.
func (st *Stack[T]) Clear() {
	clear(st.items)
	st.items = st.items[:0]
}

// Len returns the number of items on the stack.
func (st *Stack[T]) Len() int {
	return len(st.items)
}

// History is the undo / redo manager for text edits.
// Saving a new edit discards the redo stack. Edits saved while a group
// is open (see [History.NewGroup]) share a group number and are undone
// and redone together. History is not safe for concurrent use: the
// owner of the text serializes access.
type History struct {

	// Off turns off saving and using undo records.
	Off bool

	// Undos is the stack of edits that can be undone.
	Undos Stack[*textpos.Edit]

	// Redos is the stack of undone edits that can be redone.
	Redos Stack[*textpos.Edit]

	// group is the last group number assigned.
	group int

	// open is the nesting depth of open groups.
	open int
}

// NewGroup opens a group: all edits saved until the matching
// [History.EndGroup] get the same group number. Groups nest, and
// only the outermost call starts a new group number.
func (hs *History) NewGroup() {
	if hs.open == 0 {
		hs.group++
	}
	hs.open++
}

// EndGroup closes the group opened by [History.NewGroup].
func (hs *History) EndGroup() {
	if hs.open > 0 {
		hs.open--
	}
}

// Reset clears all undo and redo records.
func (hs *History) Reset() {
	hs.Undos.Clear()
	hs.Redos.Clear()
	hs.group = 0
	hs.open = 0
}

// Save saves the given edit to the undo stack, and discards any
// redo records, since the new edit starts a new branch of history.
func (hs *History) Save(tbe *textpos.Edit) {
	if hs.Off || tbe == nil {
		return
	}
	if hs.open == 0 {
		hs.group++
	}
	tbe.Group = hs.group
	if Trace {
		slog.Debug("undo: save", "group", hs.group, "pos", hs.Undos.Len(), "edit", tbe.String())
	}
	hs.Undos.Push(tbe)
	hs.Redos.Clear()
}

// PopUndo pops the most recent group of edits from the undo stack,
// most recent first. It returns [ErrEmptyStack] if there is nothing to undo.
func (hs *History) PopUndo() ([]*textpos.Edit, error) {
	return hs.popGroup(&hs.Undos, "undo")
}

// PopRedo pops the most recently undone group of edits from the redo
// stack, in the order in which they were originally applied.
// It returns [ErrEmptyStack] if there is nothing to redo.
func (hs *History) PopRedo() ([]*textpos.Edit, error) {
	return hs.popGroup(&hs.Redos, "redo")
}

// PushRedo pushes an undone edit onto the redo stack.
func (hs *History) PushRedo(tbe *textpos.Edit) {
	hs.Redos.Push(tbe)
}

// PushUndo pushes a redone edit back onto the undo stack, without
// discarding the redo stack.
func (hs *History) PushUndo(tbe *textpos.Edit) {
	hs.Undos.Push(tbe)
}

func (hs *History) popGroup(st *Stack[*textpos.Edit], what string) ([]*textpos.Edit, error) {
	if hs.Off {
		return nil, ErrEmptyStack
	}
	tbe, err := st.Pop()
	if err != nil {
		return nil, err
	}
	eds := []*textpos.Edit{tbe}
	for {
		nx, err := st.Peek()
		if err != nil || nx.Group != tbe.Group {
			break
		}
		st.Pop()
		eds = append(eds, nx)
	}
	if Trace {
		slog.Debug(fmt.Sprintf("undo: pop %s", what), "group", tbe.Group, "edits", len(eds))
	}
	return eds, nil
}
