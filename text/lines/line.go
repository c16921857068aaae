// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"fmt"
	"slices"
)

// ColorRange is a range of chars in one line that is colored with
// a color group. Start and End are both inclusive rune offsets.
// The ranges of a line are sorted by Start and do not overlap;
// chars outside of any range are in the Default group.
type ColorRange struct {

	// Start is the first char in the range.
	Start int

	// End is the last char in the range.
	End int

	// Group is the index of the color group in the registry.
	Group int
}

// Len returns the number of chars in the range.
func (cr ColorRange) Len() int {
	return cr.End - cr.Start + 1
}

func (cr ColorRange) String() string {
	return fmt.Sprintf("[%d,%d]->%d", cr.Start, cr.End, cr.Group)
}

// BlockState is the state of multi-line block scanning at the start
// or end of a line. Two states are equal when they are in the same
// block tag at the same nesting depth, and the block scanner stops
// rescanning after an edit when a line ends in the same state as before.
type BlockState struct {

	// Open is whether the line is inside a block.
	Open bool

	// Tag is the position of the open block's tag in [highlighting.Tags].
	Tag int

	// Depth is the nesting depth of an open advanced block, and 1
	// for any other open block.
	Depth int
}

// blockSpan is the part of one line covered by a block.
type blockSpan struct {

	// start and end are the inclusive chars covered. end is start-1
	// when the block covers none of the line's chars, which happens
	// on an empty line inside a block.
	start, end int

	// tag is the position of the block's tag in [highlighting.Tags].
	tag int

	// cont is whether the block continues from the previous line.
	cont bool

	// closed is whether the block ends on this line.
	closed bool
}

// Line is one line of text with its coloring.
type Line struct {
	text   []rune
	ranges []ColorRange

	// spans are the parts of the line covered by blocks, in order.
	spans []blockSpan

	// begin and end are the block states at the start and end of the line.
	begin, end BlockState

	// scanned is whether spans and end are valid.
	scanned bool
}

func newLine(txt []rune) *Line {
	return &Line{text: txt}
}

// clone returns a copy of the line that shares nothing with it.
func (l *Line) clone() *Line {
	cp := *l
	cp.text = slices.Clone(l.text)
	cp.ranges = slices.Clone(l.ranges)
	cp.spans = slices.Clone(l.spans)
	return &cp
}

// Text returns the text of the line.
func (l *Line) Text() string { return string(l.text) }

// Runes returns the text of the line as runes, which must not be modified.
func (l *Line) Runes() []rune { return l.text }

// Len returns the number of runes in the line.
func (l *Line) Len() int { return len(l.text) }

// ColorRanges returns the color ranges of the line, which must not be modified.
func (l *Line) ColorRanges() []ColorRange { return l.ranges }

// ContinuesFromPrevious returns whether the line starts inside a
// multi-line block that started on an earlier line.
func (l *Line) ContinuesFromPrevious() bool { return l.begin.Open }

// ContinuesToNext returns whether the line ends inside a multi-line
// block that continues on the next line.
func (l *Line) ContinuesToNext() bool { return l.end.Open }

// BeginState returns the block state at the start of the line.
func (l *Line) BeginState() BlockState { return l.begin }

// EndState returns the block state at the end of the line.
func (l *Line) EndState() BlockState { return l.end }
