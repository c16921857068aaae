// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpos

import (
	"fmt"
	"slices"

	"cogentcore.org/codetext/text/runes"
)

// Edit describes an edit action to line-based text, operating on
// a [Region] of the text.
// Edits are only deletions and insertions (a change is a sequence
// of each, given normal editing processes), and each one carries the
// text needed to apply its inverse.
type Edit struct {

	// Kind is the user-level action that produced this edit.
	Kind Actions

	// Region for the edit, specifying the region to delete, or the
	// region occupied by the inserted Text after insertion.
	// End is exclusive.
	Region Region

	// Text deleted or inserted, in rune lines.
	// For a Lines edit, this is the list of whole lines.
	Text [][]rune

	// Group is the grouping number, for grouping edits in Undo.
	Group int

	// Delete indicates a deletion, otherwise an insertion.
	Delete bool

	// Lines indicates an edit of whole lines, inserted before or
	// removed at Region.Start.Line. Region.End is then at char 0 of the
	// line after the last affected line. This allows lines to be added
	// to or removed from a document that has no lines at all.
	Lines bool
}

// ToBytes returns the Text of this edit record to a byte string, with
// newlines between lines. It is nil if Text is empty.
func (te *Edit) ToBytes() []byte {
	if te == nil || len(te.Text) == 0 {
		return nil
	}
	return []byte(string(runes.Join(te.Text, []rune("\n"))))
}

// Inverse returns the edit that undoes this one: an insertion of the
// deleted text at the same place for a deletion, and a deletion of the
// inserted region for an insertion. The region is the same in both cases.
func (te *Edit) Inverse() *Edit {
	inv := te.Clone()
	inv.Delete = !te.Delete
	return inv
}

// AdjustPos adjusts the given text position as a function of the edit.
// If the position was within a deleted region of text, del determines
// what is returned.
func (te *Edit) AdjustPos(pos Pos, del AdjustPosDel) Pos {
	if te == nil {
		return pos
	}
	if pos.IsLess(te.Region.Start) || pos == te.Region.Start {
		return pos
	}
	dl := te.Region.End.Line - te.Region.Start.Line
	if pos.Line > te.Region.End.Line {
		if te.Delete {
			pos.Line -= dl
		} else {
			pos.Line += dl
		}
		return pos
	}
	if te.Delete {
		if pos.Line < te.Region.End.Line || pos.Char < te.Region.End.Char {
			switch del {
			case AdjustPosDelStart:
				return te.Region.Start
			case AdjustPosDelEnd:
				return te.Region.End
			case AdjustPosDelErr:
				return PosErr
			}
		}
		// this means pos.Line == te.Region.End.Line, Ch >= end
		if dl == 0 {
			pos.Char -= (te.Region.End.Char - te.Region.Start.Char)
		} else {
			pos.Line -= dl
			pos.Char = te.Region.Start.Char + pos.Char - te.Region.End.Char
		}
	} else {
		if dl == 0 {
			pos.Char += (te.Region.End.Char - te.Region.Start.Char)
		} else {
			if pos.Line == te.Region.Start.Line {
				pos.Char = te.Region.End.Char + pos.Char - te.Region.Start.Char
			}
			pos.Line += dl
		}
	}
	return pos
}

// AdjustPosDel determines what to do with positions within a deleted region.
type AdjustPosDel int32 //enums:enum

// these are options for what to do with positions within deleted region
// for the AdjustPos function
const (
	// AdjustPosDelErr means return a PosErr when in deleted region.
	AdjustPosDelErr AdjustPosDel = iota

	// AdjustPosDelStart means return start of deleted region.
	AdjustPosDelStart

	// AdjustPosDelEnd means return end of deleted region.
	AdjustPosDelEnd

	AdjustPosDelN
)

var adjustPosDelNames = [...]string{"AdjustPosDelErr", "AdjustPosDelStart", "AdjustPosDelEnd"}

func (i AdjustPosDel) String() string {
	if i < 0 || i >= AdjustPosDelN {
		return fmt.Sprintf("AdjustPosDel(%d)", int32(i))
	}
	return adjustPosDelNames[i]
}

// Clone returns a clone of the edit record.
func (te *Edit) Clone() *Edit {
	rc := &Edit{}
	rc.Copy(te)
	return rc
}

// Copy copies from other Edit, making a clone of the source text.
func (te *Edit) Copy(cp *Edit) {
	*te = *cp
	nl := len(cp.Text)
	if nl == 0 {
		te.Text = nil
		return
	}
	te.Text = make([][]rune, nl)
	for i, r := range cp.Text {
		te.Text[i] = slices.Clone(r)
	}
}

func (te *Edit) String() string {
	str := te.Kind.String() + " " + te.Region.String()
	if te.Lines {
		str += " [Lines]"
	}
	if te.Delete {
		str += " [Delete]"
	}
	str += fmt.Sprintf(" Gp: %d\n", te.Group)
	for li := range te.Text {
		str += fmt.Sprintf("%d\t%s\n", li, string(te.Text[li]))
	}
	return str
}
