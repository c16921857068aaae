// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"fmt"
	"log/slog"

	"cogentcore.org/codetext/text/highlighting"
	"cogentcore.org/codetext/text/runes"
	"cogentcore.org/codetext/text/textpos"
)

// Block is a region of text delimited by the start and end markers
// of a block tag, such as a block comment, which can span lines.
type Block struct {

	// Region of the block, from the first char of the start marker
	// through the last char of the end marker. Unlike edit regions,
	// End is inclusive. An unterminated block ends at the last char of
	// the document, or char 0 if the last line is empty.
	Region textpos.Region

	// Group is the index of the block's color group.
	Group int

	// Tag is the [highlighting.Tag.Index] of the block's tag.
	Tag int

	// Advanced is whether the tag nests.
	Advanced bool
}

func (bk Block) String() string {
	return fmt.Sprintf("%s tag: %d group: %d", bk.Region, bk.Tag, bk.Group)
}

// scanLine finds the block spans of the given line text starting
// in the given block state, and returns them with the end state.
// A tag opens at the earliest start marker, with ties going to the tag
// first in priority order. An advanced tag counts nested start markers
// and closes when its end markers bring the depth back to zero; any
// other tag closes at its first end marker. A tag without an end marker
// closes at the end of the line.
func scanLine(tags *highlighting.Tags, txt []rune, st BlockState) ([]blockSpan, BlockState) {
	var spans []blockSpan
	pos := 0
	ntags := tags.Len()
	if st.Open && st.Tag >= ntags {
		st = BlockState{}
	}
	cont := st.Open
	spanSt := 0
	for {
		if !st.Open {
			best, bidx := -1, len(txt)
			for ti := range ntags {
				idx := runes.IndexFrom(txt, tags.At(ti).StartRunes(), pos)
				if idx >= 0 && idx < bidx {
					best, bidx = ti, idx
				}
			}
			if best < 0 {
				return spans, st
			}
			tg := tags.At(best)
			spanSt = bidx
			pos = bidx + len(tg.StartRunes())
			cont = false
			if tg.SingleLine() {
				spans = append(spans, blockSpan{start: spanSt, end: len(txt) - 1, tag: best, closed: true})
				return spans, BlockState{}
			}
			st = BlockState{Open: true, Tag: best, Depth: 1}
		}
		tg := tags.At(st.Tag)
		var ed int
		if tg.Advanced {
			ed, st.Depth = findNestedEnd(txt, pos, tg.StartRunes(), tg.EndRunes(), st.Depth)
		} else {
			ed = runes.IndexFrom(txt, tg.EndRunes(), pos)
		}
		if ed < 0 {
			spans = append(spans, blockSpan{start: spanSt, end: len(txt) - 1, tag: st.Tag, cont: cont})
			return spans, st
		}
		pos = ed + len(tg.EndRunes())
		spans = append(spans, blockSpan{start: spanSt, end: pos - 1, tag: st.Tag, cont: cont, closed: true})
		st = BlockState{}
	}
}

// findNestedEnd returns the index of the end marker that brings the
// given depth to zero, searching from pos, or -1 and the depth at
// the end of the text. An end marker is matched before a start
// marker at the same char, so that tags with equal markers do not nest.
func findNestedEnd(txt []rune, pos int, start, end []rune, depth int) (int, int) {
	for i := pos; i < len(txt); {
		switch {
		case runes.HasPrefixAt(txt, i, end):
			depth--
			if depth == 0 {
				return i, 0
			}
			i += len(end)
		case runes.HasPrefixAt(txt, i, start):
			depth++
			i += len(start)
		default:
			i++
		}
	}
	return -1, depth
}

// tags returns the block tags of the highlighter, which may be nil.
func (ls *Lines) tags() *highlighting.Tags {
	if ls.Highlighter == nil {
		return nil
	}
	return ls.Highlighter.Tags
}

// scanBlocks rescans the block spans of lines starting at line st,
// which begins in the end state of the line before it. Lines are
// rescanned at least through line ed, and after that until a line ends
// in the same block state that it ended in before, or until
// Settings.MaxScanLines lines past ed, in which case the rest is left
// for the next call. It returns the last line rescanned.
func (ls *Lines) scanBlocks(st, ed int) int {
	n := ls.numLines()
	tags := ls.tags()
	var in BlockState
	if st > 0 {
		in = ls.lines[st-1].end
	}
	ln := st
	for ; ln < n; ln++ {
		l := ls.lines[ln]
		old, was := l.end, l.scanned
		l.begin = in
		l.spans, l.end = scanLine(tags, l.text, in)
		l.scanned = true
		in = l.end
		if ln < ed {
			continue
		}
		if was && old == l.end {
			break
		}
		if ls.Settings.MaxScanLines > 0 && ln-ed >= ls.Settings.MaxScanLines && ln+1 < n {
			ls.dirtyFrom = ln + 1
			slog.Debug("lines: block scan limit reached", "from", st, "to", ed, "resume", ls.dirtyFrom)
			break
		}
	}
	ln = min(ln, n-1)
	if ln > ed {
		slog.Debug("lines: block state cascade", "from", st, "to", ed, "last", ln)
	}
	return ln
}

// blocks returns the blocks in the text from the scanned line spans.
func (ls *Lines) blocks() []Block {
	tags := ls.tags()
	var bks []Block
	var cur *Block
	lastEnd := func(ln int) textpos.Pos {
		return textpos.Pos{Line: ln, Char: max(0, len(ls.lines[ln].text)-1)}
	}
	for ln, l := range ls.lines {
		for _, sp := range l.spans {
			if !sp.cont || cur == nil {
				if cur != nil { // not reconciled yet
					cur.Region.End = lastEnd(max(0, ln-1))
					bks = append(bks, *cur)
				}
				tg := tags.At(sp.tag)
				cur = &Block{Region: textpos.Region{Start: textpos.Pos{Line: ln, Char: sp.start}}, Group: tg.GroupIndex, Tag: tg.Index, Advanced: tg.Advanced}
			}
			if sp.closed {
				cur.Region.End = textpos.Pos{Line: ln, Char: max(sp.end, sp.start)}
				bks = append(bks, *cur)
				cur = nil
			}
		}
	}
	if cur != nil {
		cur.Region.End = lastEnd(ls.numLines() - 1)
		bks = append(bks, *cur)
	}
	return bks
}

// blockAt returns the block containing the given position.
func (ls *Lines) blockAt(pos textpos.Pos) (Block, bool) {
	for _, bk := range ls.blocks() {
		if pos.IsLess(bk.Region.Start) {
			break
		}
		if !bk.Region.End.IsLess(pos) {
			return bk, true
		}
	}
	return Block{}, false
}
