// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"strings"
	"unicode"

	"cogentcore.org/codetext/text/textpos"
)

// DefaultSeparators are the runes other than white space that separate
// words for keyword lookup: ASCII punctuation and symbols, except the
// underscore.
const DefaultSeparators = "!\"#$%&'()*+,-./:;<=>?@[\\]^`{|}~"

// Highlighter holds the lexical coloring configuration of a document:
// the color groups, the keyword index and the block tags.
// All of its parts are read-only during coloring, so one Highlighter
// can be shared among many documents.
type Highlighter struct {

	// Groups is the color group registry.
	Groups *Registry

	// Keywords maps words to color groups.
	Keywords *Keywords

	// Tags are the multi-line block tags.
	Tags *Tags

	// Separators are the runes, in addition to white space, that
	// separate words for keyword lookup.
	Separators string
}

// NewHighlighter returns a new [Highlighter] for the given registry,
// with an empty keyword index and tag table and [DefaultSeparators].
func NewHighlighter(rg *Registry) *Highlighter {
	return &Highlighter{Groups: rg, Keywords: NewKeywords(rg), Tags: &Tags{}, Separators: DefaultSeparators}
}

// Has returns true if there is anything to color with.
func (hi *Highlighter) Has() bool {
	return hi != nil && (hi.Keywords.Len() > 0 || hi.Tags.Len() > 0)
}

// IsBreak returns true if the given rune separates words.
func (hi *Highlighter) IsBreak(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(hi.Separators, r)
}

// Words returns the word ranges of txt[st:ed] for keyword lookup.
func (hi *Highlighter) Words(txt []rune, st, ed int) []textpos.Range {
	return textpos.Words(txt, st, ed, hi.IsBreak)
}
