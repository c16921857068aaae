// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"cogentcore.org/codetext/text/highlighting"
	"cogentcore.org/codetext/text/lines"
	"github.com/charmbracelet/lipgloss"
)

// write writes the text of the lines to w, either colored or as
// color ranges, followed by the blocks if requested.
func write(w io.Writer, ls *lines.Lines, opts *options) error {
	var err error
	if opts.ranges {
		err = writeRanges(w, ls)
	} else {
		err = writeColored(w, ls)
	}
	if err != nil || !opts.blocks {
		return err
	}
	for _, bk := range ls.Blocks() {
		if _, err := fmt.Fprintf(w, "block %s %s\n", bk.Region, groupName(ls.Highlighter, bk.Group)); err != nil {
			return err
		}
	}
	return nil
}

// writeRanges writes each line number followed by its color ranges,
// with the group names.
func writeRanges(w io.Writer, ls *lines.Lines) error {
	n := ls.NumLines()
	for ln := range n {
		rs, err := ls.ColorRanges(ln)
		if err != nil {
			return err
		}
		var b strings.Builder
		fmt.Fprintf(&b, "%d:", ln)
		for _, r := range rs {
			fmt.Fprintf(&b, " [%d,%d]%s", r.Start, r.End, groupName(ls.Highlighter, r.Group))
		}
		b.WriteByte('\n')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

// writeColored writes the text with each color range rendered in
// the style of its group.
func writeColored(w io.Writer, ls *lines.Lines) error {
	styles := groupStyles(ls.Highlighter)
	n := ls.NumLines()
	for ln := range n {
		l, err := ls.Line(ln)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, renderLine(l.Runes(), l.ColorRanges(), styles)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func groupName(hi *highlighting.Highlighter, idx int) string {
	if hi == nil || hi.Groups == nil {
		return fmt.Sprint(idx)
	}
	cg, err := hi.Groups.Group(idx)
	if err != nil {
		return fmt.Sprint(idx)
	}
	return cg.Name
}

// groupStyles returns the style of each group of the highlighter,
// by group index.
func groupStyles(hi *highlighting.Highlighter) []lipgloss.Style {
	if hi == nil || hi.Groups == nil {
		return nil
	}
	n := hi.Groups.Len()
	styles := make([]lipgloss.Style, n)
	for i := range n {
		cg, err := hi.Groups.Group(i)
		if err != nil {
			continue
		}
		styles[i] = groupStyle(cg)
	}
	return styles
}

// groupStyle returns the terminal style of the given color group.
func groupStyle(cg highlighting.ColorGroup) lipgloss.Style {
	st := lipgloss.NewStyle()
	if !cg.AutoForeground {
		st = st.Foreground(hexColor(cg.Foreground))
	}
	if !cg.AutoBackground {
		st = st.Background(hexColor(cg.Background))
	}
	switch cg.Emphasis {
	case highlighting.Bold:
		st = st.Bold(true)
	case highlighting.Underline:
		st = st.Underline(true)
	case highlighting.Framed:
		st = st.Reverse(true)
	}
	return st
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// renderLine renders the text with each of the ranges in the style
// of its group. Text outside of the ranges is left plain.
func renderLine(txt []rune, ranges []lines.ColorRange, styles []lipgloss.Style) string {
	var b strings.Builder
	pos := 0
	for _, r := range ranges {
		if r.Start < pos || r.End >= len(txt) || r.End < r.Start {
			continue
		}
		b.WriteString(string(txt[pos:r.Start]))
		seg := string(txt[r.Start : r.End+1])
		if r.Group >= 0 && r.Group < len(styles) {
			seg = styles[r.Group].Render(seg)
		}
		b.WriteString(seg)
		pos = r.End + 1
	}
	b.WriteString(string(txt[pos:]))
	return b.String()
}
