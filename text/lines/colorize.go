// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

// colorizeLine rebuilds the color ranges of the given line from its
// block spans and the keyword index. Keywords are only looked up in
// the text that is not in a block.
func (ls *Lines) colorizeLine(ln int) {
	l := ls.lines[ln]
	l.ranges = nil
	hi := ls.Highlighter
	if hi == nil {
		return
	}
	tags := hi.Tags
	pos := 0
	for _, sp := range l.spans {
		ls.colorizeWords(l, pos, sp.start)
		if sp.end >= sp.start {
			l.ranges = append(l.ranges, ColorRange{Start: sp.start, End: sp.end, Group: tags.At(sp.tag).GroupIndex})
		}
		pos = sp.end + 1
	}
	ls.colorizeWords(l, pos, len(l.text))
}

// colorizeWords adds color ranges for the keywords in l.text[st:ed].
func (ls *Lines) colorizeWords(l *Line, st, ed int) {
	if st >= ed {
		return
	}
	kw := ls.Highlighter.Keywords
	if kw.Len() == 0 {
		return
	}
	for _, w := range ls.Highlighter.Words(l.text, st, ed) {
		if gi, ok := kw.Lookup(string(l.text[w.Start:w.End])); ok {
			l.ranges = append(l.ranges, ColorRange{Start: w.Start, End: w.End - 1, Group: gi})
		}
	}
}

// colorizeRange rescans the block state starting at line st and
// recolors every line from there through line ed and any later lines
// whose block state changed. A cascade left pending by
// Settings.MaxScanLines is resumed first: the scan then starts no
// later than the pending line and runs at least through it.
func (ls *Lines) colorizeRange(st, ed int) {
	n := ls.numLines()
	if n == 0 {
		ls.dirtyFrom = -1
		return
	}
	st = max(st, 0)
	if ls.dirtyFrom >= 0 {
		st = min(st, ls.dirtyFrom)
		ed = max(ed, ls.dirtyFrom)
		ls.dirtyFrom = -1
	}
	for st > 0 && !ls.lines[st-1].scanned {
		st--
	}
	if st >= n {
		return
	}
	ed = min(max(ed, st), n-1)
	last := max(ls.scanBlocks(st, ed), ed)
	for ln := st; ln <= last; ln++ {
		ls.colorizeLine(ln)
	}
	ls.colorizeDone(st, last)
}

// colorizeAll rescans and recolors all of the lines.
func (ls *Lines) colorizeAll() {
	for _, l := range ls.lines {
		l.scanned = false
	}
	ls.dirtyFrom = -1
	ls.colorizeRange(0, ls.numLines()-1)
}
