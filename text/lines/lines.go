// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lines provides the line store of a text document, with
// incremental lexical coloring of keywords and multi-line blocks,
// and undo / redo of edits.
//
// All exported methods lock the Lines, and all edits are applied and
// recolored before they return. The unexported methods assume that
// the lock is held.
package lines

import (
	"fmt"
	"slices"
	"sync"

	"cogentcore.org/codetext/base/errors"
	"cogentcore.org/codetext/text/highlighting"
	"cogentcore.org/codetext/text/textpos"
	"cogentcore.org/codetext/undo"
)

var (
	// ErrIndexOutOfRange is returned for a line or char index outside the text.
	ErrIndexOutOfRange = errors.New("lines: index out of range")

	// ErrInvalidRegion is returned for a region whose end is before its start.
	ErrInvalidRegion = errors.New("lines: invalid region")

	// ErrNothingToUndo is returned by [Lines.Undo] when the undo history is empty.
	ErrNothingToUndo = fmt.Errorf("lines: nothing to undo: %w", undo.ErrEmptyStack)

	// ErrNothingToRedo is returned by [Lines.Redo] when there is nothing undone.
	ErrNothingToRedo = fmt.Errorf("lines: nothing to redo: %w", undo.ErrEmptyStack)
)

// Settings are the settings of a [Lines].
type Settings struct {

	// MaxScanLines is the maximum number of lines past the edited lines
	// that one edit rescans for changes in multi-line block state.
	// The rest of the cascade is resumed by the next edit or colorize
	// call. Zero means no limit.
	MaxScanLines int
}

// Lines is the text of a document as a list of lines, each holding its
// runes and its color ranges. It is safe to use from multiple
// goroutines, but edits of one Lines are always serialized.
type Lines struct {

	// Settings are the settings for this document.
	Settings Settings

	// Highlighter is the coloring configuration. It can be shared
	// among documents. Use [Lines.SetHighlighter] to change it.
	Highlighter *highlighting.Highlighter

	// ColorizeDoneFunc is called, without the lock, after lines st
	// through ed inclusive have been recolored by an edit or colorize call.
	ColorizeDoneFunc func(st, ed int)

	// lines are the lines of text.
	lines []*Line

	// undos is the undo and redo history.
	undos undo.History

	// dirtyFrom is the first line whose block state has not been
	// reconciled because of MaxScanLines, or -1.
	dirtyFrom int

	// doneSt and doneEd are the recolored lines to report to
	// ColorizeDoneFunc, with doneSt = -1 if none.
	doneSt, doneEd int

	sync.Mutex
}

// NewLines returns a new Lines with no lines, using the given highlighter,
// which may be nil for no coloring.
func NewLines(hi *highlighting.Highlighter) *Lines {
	ls := &Lines{Highlighter: hi}
	ls.dirtyFrom = -1
	ls.doneSt = -1
	return ls
}

// NewLinesFromStrings returns a new Lines with the given text lines,
// colored with the given highlighter.
func NewLinesFromStrings(hi *highlighting.Highlighter, strs []string) *Lines {
	ls := NewLines(hi)
	ls.setStrings(strs)
	ls.doneSt = -1
	return ls
}

func (ls *Lines) numLines() int {
	return len(ls.lines)
}

func (ls *Lines) isValidLine(ln int) bool {
	return ln >= 0 && ln < len(ls.lines)
}

// validLine returns an error if the line index is not valid.
func (ls *Lines) validLine(ln int) error {
	if !ls.isValidLine(ln) {
		return fmt.Errorf("%w: line %d, have %d lines", ErrIndexOutOfRange, ln, len(ls.lines))
	}
	return nil
}

// validPos returns an error if the position is not within the text.
// The position just after the last rune of a line is valid.
func (ls *Lines) validPos(pos textpos.Pos) error {
	if err := ls.validLine(pos.Line); err != nil {
		return err
	}
	if pos.Char < 0 || pos.Char > len(ls.lines[pos.Line].text) {
		return fmt.Errorf("%w: char %d of line %d with %d chars", ErrIndexOutOfRange, pos.Char, pos.Line, len(ls.lines[pos.Line].text))
	}
	return nil
}

// validRegion returns an error if either end of the region is not
// within the text, or the end is before the start.
func (ls *Lines) validRegion(st, ed textpos.Pos) error {
	if err := ls.validPos(st); err != nil {
		return err
	}
	if err := ls.validPos(ed); err != nil {
		return err
	}
	if ed.IsLess(st) {
		return fmt.Errorf("%w: %s is before %s", ErrInvalidRegion, ed, st)
	}
	return nil
}

// setStrings replaces all of the text, resets the undo history,
// and colors everything.
func (ls *Lines) setStrings(strs []string) {
	ls.lines = make([]*Line, len(strs))
	for i, s := range strs {
		ls.lines[i] = newLine([]rune(s))
	}
	ls.undos.Reset()
	ls.dirtyFrom = -1
	ls.colorizeAll()
}

func (ls *Lines) strings() []string {
	strs := make([]string, len(ls.lines))
	for i, l := range ls.lines {
		strs[i] = string(l.text)
	}
	return strs
}

// insertLine inserts the given lines before line ln, which can be
// the number of lines to append. The new lines are not yet scanned.
func (ls *Lines) insertLine(ln int, txt ...[]rune) {
	nl := make([]*Line, len(txt))
	for i, t := range txt {
		nl[i] = newLine(slices.Clone(t))
	}
	ls.lines = slices.Insert(ls.lines, ln, nl...)
	if ls.dirtyFrom >= ln {
		ls.dirtyFrom += len(txt)
	}
}

// removeLine removes n lines starting at line ln.
func (ls *Lines) removeLine(ln, n int) {
	ls.lines = slices.Delete(ls.lines, ln, ln+n)
	if ls.dirtyFrom > ln {
		ls.dirtyFrom = max(ln, ls.dirtyFrom-n)
	}
	if ls.dirtyFrom >= len(ls.lines) {
		ls.dirtyFrom = -1
	}
}

// setLineText replaces the text of the line and clears its now stale
// color ranges. It does not recolor.
func (ls *Lines) setLineText(ln int, txt []rune) {
	l := ls.lines[ln]
	l.text = txt
	l.ranges = nil
}

// regionText returns a copy of the text in the given region,
// which must be valid.
func (ls *Lines) regionText(st, ed textpos.Pos) [][]rune {
	if st.Line == ed.Line {
		return [][]rune{slices.Clone(ls.lines[st.Line].text[st.Char:ed.Char])}
	}
	txt := make([][]rune, 0, ed.Line-st.Line+1)
	txt = append(txt, slices.Clone(ls.lines[st.Line].text[st.Char:]))
	for ln := st.Line + 1; ln < ed.Line; ln++ {
		txt = append(txt, slices.Clone(ls.lines[ln].text))
	}
	txt = append(txt, slices.Clone(ls.lines[ed.Line].text[:ed.Char]))
	return txt
}
