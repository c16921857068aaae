// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textpos provides positions, regions and edit records
// for line-based text.
package textpos

import "fmt"

// Pos is a position within the source lines, in terms of a 0-based
// line index and a 0-based rune (char) index within that line.
type Pos struct {
	Line int
	Char int
}

// PosErr represents an error text position (-1 for both line and char)
// used as a return value in cases where error positions are possible.
var PosErr = Pos{-1, -1}

// AddLine returns a Pos with Line number added.
func (ps Pos) AddLine(ln int) Pos {
	ps.Line += ln
	return ps
}

// AddChar returns a Pos with Char number added.
func (ps Pos) AddChar(ch int) Pos {
	ps.Char += ch
	return ps
}

// IsLess returns true if receiver position is less than given comparison,
// in lexicographic order: line first, then char.
func (ps Pos) IsLess(cmp Pos) bool {
	switch {
	case ps.Line < cmp.Line:
		return true
	case ps.Line == cmp.Line:
		return ps.Char < cmp.Char
	default:
		return false
	}
}

// Compare returns -1, 0 or 1 according to the lexicographic order
// of the two positions, for use with sort functions.
func (ps Pos) Compare(cmp Pos) int {
	switch {
	case ps == cmp:
		return 0
	case ps.IsLess(cmp):
		return -1
	default:
		return 1
	}
}

// String satisfies the fmt.Stringer interface, using 1-based
// line and char numbers: L1C1.
func (ps Pos) String() string {
	return fmt.Sprintf("L%dC%d", ps.Line+1, ps.Char+1)
}

// FromString decodes a text position from a string representation
// of the form: [#]LxxCxx, with 1-based numbers. Returns true if successful.
func (ps *Pos) FromString(link string) bool {
	if link == "" {
		return false
	}
	if link[0] == '#' {
		link = link[1:]
	}
	var ln, ch int
	n, _ := fmt.Sscanf(link, "L%dC%d", &ln, &ch)
	if n == 0 {
		return false
	}
	ps.Line = ln - 1
	if n == 2 {
		ps.Char = ch - 1
	} else {
		ps.Char = 0
	}
	return true
}
