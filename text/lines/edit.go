// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"slices"

	"cogentcore.org/codetext/text/runes"
	"cogentcore.org/codetext/text/textpos"
)

// splitText splits the text into lines at each newline.
func splitText(text string) [][]rune {
	return runes.Split([]rune(text), []rune("\n"))
}

// insertTextImpl inserts the given lines of text at the given position,
// joining the first line to the text before the position and the last
// line to the text after it, and returns the insertion edit.
// It does not save undo or recolor.
func (ls *Lines) insertTextImpl(st textpos.Pos, text [][]rune) (*textpos.Edit, error) {
	if err := ls.validPos(st); err != nil {
		return nil, err
	}
	if len(text) == 0 || (len(text) == 1 && len(text[0]) == 0) {
		return nil, nil
	}
	l := ls.lines[st.Line]
	nl := len(text)
	tbe := &textpos.Edit{Kind: textpos.ActionInsert}
	tbe.Text = make([][]rune, nl)
	for i, t := range text {
		tbe.Text[i] = slices.Clone(t)
	}
	if nl == 1 {
		nt := slices.Concat(l.text[:st.Char], text[0], l.text[st.Char:])
		ls.setLineText(st.Line, nt)
		tbe.Region = textpos.NewRegion(st.Line, st.Char, st.Line, st.Char+len(text[0]))
		return tbe, nil
	}
	after := slices.Clone(l.text[st.Char:])
	ls.setLineText(st.Line, slices.Concat(l.text[:st.Char], text[0]))
	ls.insertLine(st.Line+1, text[1:]...)
	last := ls.lines[st.Line+nl-1]
	last.text = append(last.text, after...)
	// the tail of the edited line now ends the last line, so that line
	// takes over its old end state, and the edited line must be rescanned.
	last.end, last.scanned = l.end, l.scanned
	l.scanned = false
	tbe.Region = textpos.NewRegion(st.Line, st.Char, st.Line+nl-1, len(text[nl-1]))
	return tbe, nil
}

// deleteTextImpl deletes the text in the region from st up to ed,
// and returns the deletion edit, or nil if the region is empty.
// It does not save undo or recolor.
func (ls *Lines) deleteTextImpl(st, ed textpos.Pos) (*textpos.Edit, error) {
	if err := ls.validRegion(st, ed); err != nil {
		return nil, err
	}
	if st == ed {
		return nil, nil
	}
	tbe := &textpos.Edit{Kind: textpos.ActionDelete, Delete: true}
	tbe.Region = textpos.NewRegionPos(st, ed)
	tbe.Text = ls.regionText(st, ed)
	l := ls.lines[st.Line]
	if st.Line == ed.Line {
		ls.setLineText(st.Line, slices.Concat(l.text[:st.Char], l.text[ed.Char:]))
		return tbe, nil
	}
	el := ls.lines[ed.Line]
	ls.setLineText(st.Line, slices.Concat(l.text[:st.Char], el.text[ed.Char:]))
	// the merged line ends with the tail of the last deleted line.
	l.end, l.scanned = el.end, el.scanned
	ls.removeLine(st.Line+1, ed.Line-st.Line)
	return tbe, nil
}

// insertLinesImpl inserts whole lines before line ln, which can be
// the number of lines to append, and returns the lines edit.
func (ls *Lines) insertLinesImpl(ln int, text [][]rune) (*textpos.Edit, error) {
	if ln < 0 || ln > ls.numLines() {
		return nil, ls.validLine(ln)
	}
	if len(text) == 0 {
		return nil, nil
	}
	ls.insertLine(ln, text...)
	tbe := &textpos.Edit{Kind: textpos.ActionInsertLine, Lines: true}
	tbe.Region = textpos.NewRegion(ln, 0, ln+len(text), 0)
	tbe.Text = make([][]rune, len(text))
	for i, t := range text {
		tbe.Text[i] = slices.Clone(t)
	}
	return tbe, nil
}

// removeLinesImpl removes n whole lines starting at line ln,
// and returns the lines edit.
func (ls *Lines) removeLinesImpl(ln, n int) (*textpos.Edit, error) {
	if n <= 0 {
		return nil, nil
	}
	if err := ls.validLine(ln); err != nil {
		return nil, err
	}
	if err := ls.validLine(ln + n - 1); err != nil {
		return nil, err
	}
	tbe := &textpos.Edit{Kind: textpos.ActionRemoveLine, Lines: true, Delete: true}
	tbe.Region = textpos.NewRegion(ln, 0, ln+n, 0)
	tbe.Text = make([][]rune, n)
	for i := range n {
		tbe.Text[i] = slices.Clone(ls.lines[ln+i].text)
	}
	ls.removeLine(ln, n)
	return tbe, nil
}

// applyEdit applies the given edit to the text and recolors the
// affected lines. It does not save undo.
func (ls *Lines) applyEdit(tbe *textpos.Edit) (*textpos.Edit, error) {
	var res *textpos.Edit
	var err error
	switch {
	case tbe.Lines && tbe.Delete:
		res, err = ls.removeLinesImpl(tbe.Region.Start.Line, len(tbe.Text))
	case tbe.Lines:
		res, err = ls.insertLinesImpl(tbe.Region.Start.Line, tbe.Text)
	case tbe.Delete:
		res, err = ls.deleteTextImpl(tbe.Region.Start, tbe.Region.End)
	default:
		res, err = ls.insertTextImpl(tbe.Region.Start, tbe.Text)
	}
	if err != nil || res == nil {
		return res, err
	}
	res.Kind = tbe.Kind
	ls.recolorEdit(res)
	return res, nil
}

// recolorEdit recolors the lines affected by the given applied edit.
func (ls *Lines) recolorEdit(tbe *textpos.Edit) {
	st := tbe.Region.Start.Line
	switch {
	case tbe.Lines && tbe.Delete:
		ls.colorizeRange(st, st)
	case tbe.Lines:
		ls.colorizeRange(st, tbe.Region.End.Line-1)
	case tbe.Delete:
		ls.colorizeRange(st, st)
	default:
		ls.colorizeRange(st, tbe.Region.End.Line)
	}
}

// edit applies the given edit, saves it for undo, and recolors.
func (ls *Lines) edit(kind textpos.Actions, tbe *textpos.Edit) (*textpos.Edit, error) {
	tbe.Kind = kind
	res, err := ls.applyEdit(tbe)
	if err != nil || res == nil {
		return res, err
	}
	ls.undos.Save(res)
	return res, nil
}

// insertText inserts the text at the given position as an edit of the given kind.
func (ls *Lines) insertText(kind textpos.Actions, st textpos.Pos, text [][]rune) (*textpos.Edit, error) {
	return ls.edit(kind, &textpos.Edit{Region: textpos.NewRegionPos(st, st), Text: text})
}

// deleteText deletes the region from st up to ed as an edit of the given kind.
func (ls *Lines) deleteText(kind textpos.Actions, st, ed textpos.Pos) (*textpos.Edit, error) {
	return ls.edit(kind, &textpos.Edit{Region: textpos.NewRegionPos(st, ed), Delete: true})
}

// replaceText replaces the region from st up to ed with the given
// text, as one undo group, and returns the insertion edit, or the
// deletion edit if the text is empty.
func (ls *Lines) replaceText(kind textpos.Actions, st, ed textpos.Pos, text [][]rune) (*textpos.Edit, error) {
	if err := ls.validRegion(st, ed); err != nil {
		return nil, err
	}
	ls.undos.NewGroup()
	defer ls.undos.EndGroup()
	del, err := ls.deleteText(kind, st, ed)
	if err != nil {
		return nil, err
	}
	ins, err := ls.insertText(kind, st, text)
	if ins == nil {
		return del, err
	}
	return ins, err
}
