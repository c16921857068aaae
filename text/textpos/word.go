// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpos

import "unicode"

// RuneIsWordBreak returns true if given rune counts as a word break:
// white space, symbols and punctuation other than the underscore,
// which is part of identifiers in most languages.
func RuneIsWordBreak(r rune) bool {
	if r == '_' {
		return false
	}
	return unicode.IsSpace(r) || unicode.IsSymbol(r) || unicode.IsPunct(r)
}

// Words returns the ranges of the maximal runs of non-break runes
// within txt[st:ed], using the given break function, or
// [RuneIsWordBreak] if it is nil.
func Words(txt []rune, st, ed int, isBreak func(r rune) bool) []Range {
	if isBreak == nil {
		isBreak = RuneIsWordBreak
	}
	var out []Range
	ed = min(ed, len(txt))
	ws := -1
	for i := max(st, 0); i < ed; i++ {
		if isBreak(txt[i]) {
			if ws >= 0 {
				out = append(out, Range{Start: ws, End: i})
				ws = -1
			}
			continue
		}
		if ws < 0 {
			ws = i
		}
	}
	if ws >= 0 {
		out = append(out, Range{Start: ws, End: ed})
	}
	return out
}
