// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpos

import "fmt"

// Region is a contiguous region within the source lines,
// defined by start and end [Pos] positions, with Start <= End
// in lexicographic order. For edits, End is exclusive.
type Region struct {
	// starting position of region
	Start Pos
	// ending position of region
	End Pos
}

// NewRegion creates a new text region using separate line and char
// values for start and end.
func NewRegion(stLn, stCh, edLn, edCh int) Region {
	return Region{Start: Pos{Line: stLn, Char: stCh}, End: Pos{Line: edLn, Char: edCh}}
}

// NewRegionPos creates a new text region using position values.
func NewRegionPos(st, ed Pos) Region {
	return Region{Start: st, End: ed}
}

// IsNil checks if the region is empty, because the start is after or equal to the end.
func (tr Region) IsNil() bool {
	return !tr.Start.IsLess(tr.End)
}

// IsValid returns false if the start is after the end.
func (tr Region) IsValid() bool {
	return !tr.End.IsLess(tr.Start)
}

// Contains returns true if the half-open region contains position.
func (tr Region) Contains(ps Pos) bool {
	return ps.IsLess(tr.End) && (tr.Start == ps || tr.Start.IsLess(ps))
}

// NumLines returns the number of lines spanned by the region.
func (tr Region) NumLines() int {
	return 1 + (tr.End.Line - tr.Start.Line)
}

func (tr Region) String() string {
	return fmt.Sprintf("[%s - %s]", tr.Start, tr.End)
}
