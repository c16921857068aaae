// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"slices"
	"strings"

	"cogentcore.org/codetext/text/highlighting"
	"cogentcore.org/codetext/text/textpos"
)

// this file contains the exported API for Lines

// SetStrings sets the text to the given lines, resetting the undo
// history, and colors all of it.
func (ls *Lines) SetStrings(strs []string) *Lines {
	ls.Lock()
	defer ls.unlock()
	ls.setStrings(strs)
	return ls
}

// SetText sets the text to the given string, split into lines at
// each newline. The empty string is one empty line.
func (ls *Lines) SetText(text string) *Lines {
	return ls.SetStrings(strings.Split(text, "\n"))
}

// Strings returns the text lines.
func (ls *Lines) Strings() []string {
	ls.Lock()
	defer ls.Unlock()
	return ls.strings()
}

// String returns the text, with a newline between lines.
func (ls *Lines) String() string {
	return strings.Join(ls.Strings(), "\n")
}

// SetHighlighter sets the coloring configuration, and recolors
// all of the text.
func (ls *Lines) SetHighlighter(hi *highlighting.Highlighter) {
	ls.Lock()
	defer ls.unlock()
	ls.Highlighter = hi
	ls.colorizeAll()
}

// NumLines returns the number of lines.
func (ls *Lines) NumLines() int {
	ls.Lock()
	defer ls.Unlock()
	return ls.numLines()
}

// IsValidLine returns true if given line number is in range.
func (ls *Lines) IsValidLine(ln int) bool {
	ls.Lock()
	defer ls.Unlock()
	return ls.isValidLine(ln)
}

// Line returns a copy of the given line, with its text, color ranges
// and block continuation state.
func (ls *Lines) Line(ln int) (*Line, error) {
	ls.Lock()
	defer ls.Unlock()
	if err := ls.validLine(ln); err != nil {
		return nil, err
	}
	return ls.lines[ln].clone(), nil
}

// LineText returns the text of the given line.
func (ls *Lines) LineText(ln int) (string, error) {
	ls.Lock()
	defer ls.Unlock()
	if err := ls.validLine(ln); err != nil {
		return "", err
	}
	return string(ls.lines[ln].text), nil
}

// ColorRanges returns a copy of the color ranges of the given line,
// sorted by Start and not overlapping.
func (ls *Lines) ColorRanges(ln int) ([]ColorRange, error) {
	ls.Lock()
	defer ls.Unlock()
	if err := ls.validLine(ln); err != nil {
		return nil, err
	}
	return slices.Clone(ls.lines[ln].ranges), nil
}

// Blocks returns the multi-line blocks of the text, in order.
func (ls *Lines) Blocks() []Block {
	ls.Lock()
	defer ls.Unlock()
	return ls.blocks()
}

// BlockAt returns the block containing the given position, if any.
func (ls *Lines) BlockAt(pos textpos.Pos) (Block, bool) {
	ls.Lock()
	defer ls.Unlock()
	return ls.blockAt(pos)
}

// EndPos returns the position at the end of the text.
func (ls *Lines) EndPos() textpos.Pos {
	ls.Lock()
	defer ls.Unlock()
	n := ls.numLines()
	if n == 0 {
		return textpos.Pos{}
	}
	return textpos.Pos{Line: n - 1, Char: len(ls.lines[n-1].text)}
}

// Region returns the text between the start and end positions,
// with End exclusive, as an insertion edit.
func (ls *Lines) Region(st, ed textpos.Pos) (*textpos.Edit, error) {
	ls.Lock()
	defer ls.Unlock()
	if err := ls.validRegion(st, ed); err != nil {
		return nil, err
	}
	return &textpos.Edit{Region: textpos.NewRegionPos(st, ed), Text: ls.regionText(st, ed)}, nil
}

// ColorizeLine rebuilds the color ranges of the given line from the
// current block state. A line whose block state has not been scanned
// yet is scanned first, along with the lines that depend on it.
func (ls *Lines) ColorizeLine(ln int) error {
	ls.Lock()
	defer ls.unlock()
	if err := ls.validLine(ln); err != nil {
		return err
	}
	if !ls.lines[ln].scanned || (ls.dirtyFrom >= 0 && ls.dirtyFrom <= ln) {
		ls.colorizeRange(ln, ln)
		return nil
	}
	ls.colorizeLine(ln)
	ls.colorizeDone(ln, ln)
	return nil
}

// ColorizeRange rescans the block state of lines st through ed inclusive,
// and recolors them along with any later lines whose block state changed.
func (ls *Lines) ColorizeRange(st, ed int) error {
	ls.Lock()
	defer ls.unlock()
	if err := ls.validLine(st); err != nil {
		return err
	}
	if err := ls.validLine(ed); err != nil {
		return err
	}
	if ed < st {
		return ErrInvalidRegion
	}
	ls.colorizeRange(st, ed)
	return nil
}

// AdjustPos returns the given position moved by each of the given edits
// in turn, such as those returned by an edit or by [Lines.Undo], so that
// it stays at the same place in the text. A position inside deleted text
// is handled according to del, and [textpos.PosErr] is returned as is.
// Other results are clamped to the current text.
func (ls *Lines) AdjustPos(pos textpos.Pos, del textpos.AdjustPosDel, edits ...*textpos.Edit) textpos.Pos {
	for _, tbe := range edits {
		pos = tbe.AdjustPos(pos, del)
		if pos == textpos.PosErr {
			return pos
		}
	}
	ls.Lock()
	defer ls.Unlock()
	n := ls.numLines()
	if n == 0 {
		return textpos.Pos{}
	}
	pos.Line = min(max(pos.Line, 0), n-1)
	pos.Char = min(max(pos.Char, 0), len(ls.lines[pos.Line].text))
	return pos
}

////////   Edits

// InsertText inserts the given text at the given position, which can
// be at the end of a line. Newlines in the text start new lines.
// An undo record is saved, and the affected lines are recolored.
// It returns the insertion edit, or nil if the text is empty.
func (ls *Lines) InsertText(st textpos.Pos, text string) (*textpos.Edit, error) {
	return ls.InsertTextAs(textpos.ActionInsert, st, text)
}

// InsertTextAs is [Lines.InsertText] recording the given kind of action.
func (ls *Lines) InsertTextAs(kind textpos.Actions, st textpos.Pos, text string) (*textpos.Edit, error) {
	ls.Lock()
	defer ls.unlock()
	return ls.insertText(kind, st, splitText(text))
}

// DeleteText deletes the text from st up to ed.
// An undo record is saved, and the affected lines are recolored.
// It returns the deletion edit, or nil if the region is empty.
func (ls *Lines) DeleteText(st, ed textpos.Pos) (*textpos.Edit, error) {
	return ls.DeleteTextAs(textpos.ActionDelete, st, ed)
}

// DeleteTextAs is [Lines.DeleteText] recording the given kind of action.
func (ls *Lines) DeleteTextAs(kind textpos.Actions, st, ed textpos.Pos) (*textpos.Edit, error) {
	ls.Lock()
	defer ls.unlock()
	return ls.deleteText(kind, st, ed)
}

// ReplaceText replaces the text from st up to ed with the given text.
// The deletion and insertion are undone together.
func (ls *Lines) ReplaceText(st, ed textpos.Pos, text string) (*textpos.Edit, error) {
	ls.Lock()
	defer ls.unlock()
	return ls.replaceText(textpos.ActionReplace, st, ed, splitText(text))
}

// InsertLine inserts a new line with the given text before line ln,
// which can be the number of lines to append a line.
func (ls *Lines) InsertLine(ln int, text string) (*textpos.Edit, error) {
	ls.Lock()
	defer ls.unlock()
	return ls.edit(textpos.ActionInsertLine, &textpos.Edit{Region: textpos.NewRegion(ln, 0, ln, 0), Text: [][]rune{[]rune(text)}, Lines: true})
}

// RemoveLine removes line ln.
func (ls *Lines) RemoveLine(ln int) (*textpos.Edit, error) {
	ls.Lock()
	defer ls.unlock()
	if err := ls.validLine(ln); err != nil {
		return nil, err
	}
	return ls.edit(textpos.ActionRemoveLine, &textpos.Edit{Region: textpos.NewRegion(ln, 0, ln+1, 0), Text: [][]rune{nil}, Lines: true, Delete: true})
}

// SetLineText replaces the text of line ln.
// The stale color ranges of the line are rebuilt, as for any edit.
func (ls *Lines) SetLineText(ln int, text string) (*textpos.Edit, error) {
	ls.Lock()
	defer ls.unlock()
	if err := ls.validLine(ln); err != nil {
		return nil, err
	}
	ed := textpos.Pos{Line: ln, Char: len(ls.lines[ln].text)}
	return ls.replaceText(textpos.ActionReplace, textpos.Pos{Line: ln}, ed, splitText(text))
}
