// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"fmt"

	"cogentcore.org/codetext/text/textpos"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CaseMode is a change of case for [Lines.ChangeCase].
type CaseMode int32 //enums:enum

const (
	// UpperCase converts to upper case.
	UpperCase CaseMode = iota

	// LowerCase converts to lower case.
	LowerCase

	// TitleCase converts the first letter of each word to upper case
	// and the rest to lower case.
	TitleCase

	CaseModeN
)

var caseModeNames = [...]string{"UpperCase", "LowerCase", "TitleCase"}

func (i CaseMode) String() string {
	if i < 0 || i >= CaseModeN {
		return fmt.Sprintf("CaseMode(%d)", int32(i))
	}
	return caseModeNames[i]
}

// caser returns the [cases.Caser] for the mode.
func (i CaseMode) caser() cases.Caser {
	switch i {
	case LowerCase:
		return cases.Lower(language.Und)
	case TitleCase:
		return cases.Title(language.Und)
	default:
		return cases.Upper(language.Und)
	}
}

// ChangeCase changes the case of the text from st up to ed. The change
// is recorded as a replacement of the region, which is undone in one step.
// Changing case can change the number of runes in the text.
// It returns the insertion edit of the new text, or nil if the text is
// unchanged.
func (ls *Lines) ChangeCase(st, ed textpos.Pos, mode CaseMode) (*textpos.Edit, error) {
	ls.Lock()
	defer ls.unlock()
	if err := ls.validRegion(st, ed); err != nil {
		return nil, err
	}
	if mode < 0 || mode >= CaseModeN {
		return nil, fmt.Errorf("lines: invalid case mode %d", int32(mode))
	}
	old := string((&textpos.Edit{Text: ls.regionText(st, ed)}).ToBytes())
	nw := mode.caser().String(old)
	if nw == old {
		return nil, nil
	}
	return ls.replaceText(textpos.ActionChangeCase, st, ed, splitText(nw))
}
