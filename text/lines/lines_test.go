// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"testing"

	"cogentcore.org/codetext/base/errors"
	"cogentcore.org/codetext/text/highlighting"
	"cogentcore.org/codetext/text/textpos"
	"cogentcore.org/codetext/undo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// group indexes in the test highlighter
const (
	commentGroup = 2
	keywordGroup = 3
)

func testHighlighter(t *testing.T, extra ...highlighting.Tag) *highlighting.Highlighter {
	rg := highlighting.NewRegistry()
	gi, err := rg.Register(highlighting.ColorGroup{Name: "Comment", AutoForeground: true, AutoBackground: true})
	require.NoError(t, err)
	require.Equal(t, commentGroup, gi)
	gi, err = rg.Register(highlighting.ColorGroup{Name: "Keyword", AutoForeground: true, AutoBackground: true, Emphasis: highlighting.Bold})
	require.NoError(t, err)
	require.Equal(t, keywordGroup, gi)
	hi := highlighting.NewHighlighter(rg)
	require.NoError(t, hi.Keywords.AddWords("Keyword", "if", "return"))
	defs := append([]highlighting.Tag{{Start: "/*", End: "*/", Group: "Comment", Index: 0}}, extra...)
	hi.Tags, err = highlighting.NewTags(rg, defs...)
	require.NoError(t, err)
	return hi
}

// checkRanges checks that the color ranges of every line
// are sorted, within the line, and do not overlap.
func checkRanges(t *testing.T, ls *Lines) {
	for ln := range ls.NumLines() {
		l, err := ls.Line(ln)
		require.NoError(t, err)
		prev := -1
		for _, cr := range l.ColorRanges() {
			assert.LessOrEqual(t, cr.Start, cr.End, "line %d %s", ln, cr)
			assert.Greater(t, cr.Start, prev, "line %d %s", ln, cr)
			assert.Less(t, cr.End, l.Len(), "line %d %s", ln, cr)
			prev = cr.End
		}
	}
}

func allRanges(t *testing.T, ls *Lines) [][]ColorRange {
	var all [][]ColorRange
	for ln := range ls.NumLines() {
		all = append(all, errors.Must1(ls.ColorRanges(ln)))
	}
	return all
}

func pos(ln, ch int) textpos.Pos {
	return textpos.Pos{Line: ln, Char: ch}
}

func TestCommentBlock(t *testing.T) {
	ls := NewLinesFromStrings(testHighlighter(t), []string{"int x; /* start", "still comment */ y"})
	l0, err := ls.Line(0)
	require.NoError(t, err)
	assert.Equal(t, []ColorRange{{Start: 7, End: 14, Group: commentGroup}}, l0.ColorRanges())
	assert.False(t, l0.ContinuesFromPrevious())
	assert.True(t, l0.ContinuesToNext())

	l1, err := ls.Line(1)
	require.NoError(t, err)
	assert.Equal(t, []ColorRange{{Start: 0, End: 15, Group: commentGroup}}, l1.ColorRanges())
	assert.True(t, l1.ContinuesFromPrevious())
	assert.False(t, l1.ContinuesToNext())

	bks := ls.Blocks()
	require.Len(t, bks, 1)
	assert.Equal(t, textpos.NewRegion(0, 7, 1, 15), bks[0].Region)
	assert.Equal(t, commentGroup, bks[0].Group)
	assert.Equal(t, 0, bks[0].Tag)

	bk, ok := ls.BlockAt(pos(1, 3))
	assert.True(t, ok)
	assert.Equal(t, bks[0], bk)
	_, ok = ls.BlockAt(pos(1, 16))
	assert.False(t, ok)
	_, ok = ls.BlockAt(pos(0, 6))
	assert.False(t, ok)
	checkRanges(t, ls)
}

func TestKeywords(t *testing.T) {
	ls := NewLinesFromStrings(testHighlighter(t), []string{"return 5;", "If ifx if", "", "x=return;"})
	assert.Equal(t, [][]ColorRange{
		{{Start: 0, End: 5, Group: keywordGroup}},
		{{Start: 7, End: 8, Group: keywordGroup}},
		nil,
		{{Start: 2, End: 7, Group: keywordGroup}},
	}, allRanges(t, ls))
}

func TestDefaultSyntax(t *testing.T) {
	hi, err := highlighting.DefaultSyntax().Highlighter()
	require.NoError(t, err)
	kw := errors.Must1(hi.Groups.IndexOf("Keyword"))
	str := errors.Must1(hi.Groups.IndexOf("String"))
	cmt := errors.Must1(hi.Groups.IndexOf("Comment"))
	ls := NewLinesFromStrings(hi, []string{`if x { return "a b" } // if`})
	rs := errors.Must1(ls.ColorRanges(0))
	assert.Equal(t, []ColorRange{
		{Start: 0, End: 1, Group: kw},
		{Start: 7, End: 12, Group: kw},
		{Start: 14, End: 18, Group: str},
		{Start: 22, End: 26, Group: cmt},
	}, rs)
	l0 := errors.Must1(ls.Line(0))
	assert.False(t, l0.ContinuesToNext())
}

func TestUnmatchedEnd(t *testing.T) {
	ls := NewLinesFromStrings(testHighlighter(t), []string{"a */ if"})
	assert.Equal(t, []ColorRange{{Start: 5, End: 6, Group: keywordGroup}}, errors.Must1(ls.ColorRanges(0)))
	assert.Empty(t, ls.Blocks())
}

func TestUnterminatedBlock(t *testing.T) {
	ls := NewLinesFromStrings(testHighlighter(t), []string{"x /* open", "if y"})
	bks := ls.Blocks()
	require.Len(t, bks, 1)
	assert.Equal(t, textpos.NewRegion(0, 2, 1, 3), bks[0].Region)
	assert.Equal(t, []ColorRange{{Start: 0, End: 3, Group: commentGroup}}, errors.Must1(ls.ColorRanges(1)))
	assert.True(t, errors.Must1(ls.Line(1)).ContinuesToNext())

	ls.SetStrings([]string{"x /* open", ""})
	bks = ls.Blocks()
	require.Len(t, bks, 1)
	assert.Equal(t, textpos.NewRegion(0, 2, 1, 0), bks[0].Region)
	assert.Empty(t, errors.Must1(ls.ColorRanges(1)))
	assert.True(t, errors.Must1(ls.Line(1)).ContinuesFromPrevious())
}

func TestNesting(t *testing.T) {
	hi := testHighlighter(t, highlighting.Tag{Start: "{-", End: "-}", Group: "Comment", Index: 2, Advanced: true})
	ls := NewLinesFromStrings(hi, []string{"{- a {- b", "-} c -} d", "/* a /* b */ c */"})
	bks := ls.Blocks()
	require.Len(t, bks, 2)
	assert.Equal(t, textpos.NewRegion(0, 0, 1, 6), bks[0].Region)
	assert.Equal(t, 2, bks[0].Tag)
	assert.True(t, bks[0].Advanced)
	assert.Equal(t, 2, errors.Must1(ls.Line(0)).EndState().Depth)
	// not advanced: closed by the first end marker
	assert.Equal(t, textpos.NewRegion(2, 0, 2, 11), bks[1].Region)
	assert.False(t, bks[1].Advanced)
}

func TestTagPriority(t *testing.T) {
	hi := testHighlighter(t,
		highlighting.Tag{Start: "#", Group: "Keyword", Index: 3},
		highlighting.Tag{Start: "#[", End: "]#", Group: "Comment", Index: 1},
	)
	ls := NewLinesFromStrings(hi, []string{"a #[ x ]# b", "c # d"})
	assert.Equal(t, []ColorRange{{Start: 2, End: 8, Group: commentGroup}}, errors.Must1(ls.ColorRanges(0)))
	assert.Equal(t, []ColorRange{{Start: 2, End: 4, Group: keywordGroup}}, errors.Must1(ls.ColorRanges(1)))
	bks := ls.Blocks()
	require.Len(t, bks, 2)
	assert.Equal(t, 1, bks[0].Tag)
	assert.Equal(t, 3, bks[1].Tag)
	assert.Equal(t, textpos.NewRegion(1, 2, 1, 4), bks[1].Region)
}

func TestInsertInBlock(t *testing.T) {
	ls := NewLinesFromStrings(testHighlighter(t), []string{"a /* b", "c", "d */ e", "f"})
	bks := ls.Blocks()
	require.Len(t, bks, 1)
	end := bks[0].Region.End
	assert.Equal(t, pos(2, 3), end)

	_, err := ls.InsertText(pos(1, 0), "xyz")
	require.NoError(t, err)
	bks = ls.Blocks()
	require.Len(t, bks, 1)
	assert.Equal(t, end, bks[0].Region.End)

	_, err = ls.InsertText(pos(1, 1), "*/")
	require.NoError(t, err)
	assert.Equal(t, "x*/yzc", errors.Must1(ls.LineText(1)))
	bks = ls.Blocks()
	require.Len(t, bks, 1)
	assert.Equal(t, pos(1, 2), bks[0].Region.End)
	assert.Empty(t, errors.Must1(ls.ColorRanges(2)))
	assert.False(t, errors.Must1(ls.Line(2)).ContinuesFromPrevious())
	assert.False(t, errors.Must1(ls.Line(3)).ContinuesFromPrevious())
	checkRanges(t, ls)
}

func TestCascade(t *testing.T) {
	ls := NewLinesFromStrings(testHighlighter(t), []string{"/* a", "b", "c", "d */", "e"})
	var st, ed int
	ls.ColorizeDoneFunc = func(s, e int) {
		st, ed = s, e
	}
	_, err := ls.InsertText(pos(4, 1), "x")
	require.NoError(t, err)
	assert.Equal(t, 4, st)
	assert.Equal(t, 4, ed)

	_, err = ls.DeleteText(pos(0, 0), pos(0, 2))
	require.NoError(t, err)
	assert.Equal(t, 0, st)
	assert.Equal(t, 3, ed)
	assert.Empty(t, ls.Blocks())
	for ln := range 4 {
		assert.Empty(t, errors.Must1(ls.ColorRanges(ln)), "line %d", ln)
	}

	_, err = ls.Undo()
	require.NoError(t, err)
	assert.Equal(t, 0, st)
	assert.Equal(t, 3, ed)
	assert.Equal(t, []ColorRange{{Start: 0, End: 0, Group: commentGroup}}, errors.Must1(ls.ColorRanges(2)))
}

func TestMaxScanLines(t *testing.T) {
	ls := NewLinesFromStrings(testHighlighter(t), []string{"a", "b", "c", "d", "e"})
	ls.Settings.MaxScanLines = 1
	var st, ed int
	ls.ColorizeDoneFunc = func(s, e int) {
		st, ed = s, e
	}
	_, err := ls.InsertText(pos(0, 0), "/*")
	require.NoError(t, err)
	assert.Equal(t, 0, st)
	assert.Equal(t, 1, ed)
	assert.True(t, errors.Must1(ls.Line(1)).ContinuesFromPrevious())
	assert.False(t, errors.Must1(ls.Line(2)).ContinuesFromPrevious())

	require.NoError(t, ls.ColorizeRange(4, 4))
	assert.Equal(t, 2, st)
	assert.Equal(t, 4, ed)
	for ln := 1; ln < 5; ln++ {
		assert.True(t, errors.Must1(ls.Line(ln)).ContinuesFromPrevious(), "line %d", ln)
	}
	assert.Equal(t, []ColorRange{{Start: 0, End: 0, Group: commentGroup}}, errors.Must1(ls.ColorRanges(4)))
}

func TestColorizeLine(t *testing.T) {
	ls := NewLinesFromStrings(testHighlighter(t), []string{"if /* x", "return */"})
	assert.ErrorIs(t, ls.ColorizeLine(2), ErrIndexOutOfRange)
	before := allRanges(t, ls)
	require.NoError(t, ls.ColorizeLine(1))
	assert.Equal(t, before, allRanges(t, ls))
	assert.ErrorIs(t, ls.ColorizeRange(1, 0), ErrInvalidRegion)
	assert.ErrorIs(t, ls.ColorizeRange(0, 5), ErrIndexOutOfRange)
}

func TestInsertRemoveLine(t *testing.T) {
	ls := NewLinesFromStrings(testHighlighter(t), []string{"int x; /* a */", "return y;", "z"})
	n := ls.NumLines()
	before := allRanges(t, ls)

	_, err := ls.InsertLine(1, "/* open")
	require.NoError(t, err)
	assert.Equal(t, n+1, ls.NumLines())
	assert.Equal(t, []ColorRange{{Start: 0, End: 8, Group: commentGroup}}, errors.Must1(ls.ColorRanges(2)))
	checkRanges(t, ls)

	_, err = ls.RemoveLine(1)
	require.NoError(t, err)
	assert.Equal(t, n, ls.NumLines())
	assert.Equal(t, before, allRanges(t, ls))

	_, err = ls.RemoveLine(n)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = ls.InsertLine(n+1, "x")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = ls.InsertLine(n, "appended")
	require.NoError(t, err)
	assert.Equal(t, "appended", errors.Must1(ls.LineText(n)))
}

func TestEmpty(t *testing.T) {
	ls := NewLines(testHighlighter(t))
	assert.Equal(t, 0, ls.NumLines())
	_, err := ls.InsertText(pos(0, 0), "x")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = ls.LineText(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Empty(t, ls.Blocks())

	_, err = ls.InsertLine(0, "return /* x")
	require.NoError(t, err)
	assert.Equal(t, []string{"return /* x"}, ls.Strings())
	_, err = ls.Undo()
	require.NoError(t, err)
	assert.Equal(t, 0, ls.NumLines())
	_, err = ls.Redo()
	require.NoError(t, err)
	assert.Equal(t, 1, ls.NumLines())
	assert.Len(t, ls.Blocks(), 1)
}

func TestIndexErrors(t *testing.T) {
	ls := NewLinesFromStrings(testHighlighter(t), []string{"abc", "de"})
	_, err := ls.Line(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = ls.ColorRanges(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = ls.InsertText(pos(0, 4), "x")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = ls.DeleteText(pos(1, 1), pos(0, 1))
	assert.ErrorIs(t, err, ErrInvalidRegion)
	_, err = ls.DeleteText(pos(0, 1), pos(1, 3))
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = ls.SetLineText(2, "x")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, []string{"abc", "de"}, ls.Strings())
	assert.Equal(t, 0, ls.NumUndo())

	tbe, err := ls.InsertText(pos(0, 1), "")
	assert.NoError(t, err)
	assert.Nil(t, tbe)
	tbe, err = ls.DeleteText(pos(0, 1), pos(0, 1))
	assert.NoError(t, err)
	assert.Nil(t, tbe)
}

func TestUndoRoundTrip(t *testing.T) {
	orig := []string{"int x; /* a", "b */ return", "if c"}
	ls := NewLinesFromStrings(testHighlighter(t), orig)
	ranges := allRanges(t, ls)

	tbe, err := ls.InsertText(pos(1, 2), "x\n/* y\nz")
	require.NoError(t, err)
	assert.Equal(t, textpos.NewRegion(1, 2, 3, 1), tbe.Region)
	assert.Equal(t, []string{"int x; /* a", "b x", "/* y", "z*/ return", "if c"}, ls.Strings())
	checkRanges(t, ls)
	_, err = ls.Undo()
	require.NoError(t, err)
	assert.Equal(t, orig, ls.Strings())
	assert.Equal(t, ranges, allRanges(t, ls))

	tbe, err = ls.DeleteText(pos(0, 4), pos(2, 1))
	require.NoError(t, err)
	assert.Equal(t, "x; /* a\nb */ return\ni", string(tbe.ToBytes()))
	assert.Equal(t, []string{"int f c"}, ls.Strings())
	_, err = ls.Undo()
	require.NoError(t, err)
	assert.Equal(t, orig, ls.Strings())
	assert.Equal(t, ranges, allRanges(t, ls))

	_, err = ls.Undo()
	assert.ErrorIs(t, err, ErrNothingToUndo)
	assert.ErrorIs(t, err, undo.ErrEmptyStack)
}

func TestAdjustPos(t *testing.T) {
	ls := NewLinesFromStrings(testHighlighter(t), []string{"abc def", "ghi"})
	tbe, err := ls.InsertText(pos(0, 3), "X\nY")
	require.NoError(t, err)
	assert.Equal(t, "X\nY", string(tbe.ToBytes()))
	assert.Equal(t, pos(2, 2), ls.AdjustPos(pos(1, 2), textpos.AdjustPosDelErr, tbe))
	assert.Equal(t, pos(1, 3), ls.AdjustPos(pos(0, 5), textpos.AdjustPosDelErr, tbe))
	assert.Equal(t, pos(0, 1), ls.AdjustPos(pos(0, 1), textpos.AdjustPosDelErr, tbe))

	eds, err := ls.Undo()
	require.NoError(t, err)
	assert.Equal(t, pos(1, 2), ls.AdjustPos(pos(2, 2), textpos.AdjustPosDelErr, eds...))
	assert.Equal(t, pos(0, 5), ls.AdjustPos(pos(1, 3), textpos.AdjustPosDelErr, eds...))
	assert.Equal(t, pos(0, 3), ls.AdjustPos(pos(1, 0), textpos.AdjustPosDelStart, eds...))
	assert.Equal(t, textpos.PosErr, ls.AdjustPos(pos(1, 0), textpos.AdjustPosDelErr, eds...))
	assert.Equal(t, pos(1, 3), ls.AdjustPos(pos(9, 9), textpos.AdjustPosDelErr))

	tbe, err = ls.RemoveLine(0)
	require.NoError(t, err)
	assert.Equal(t, pos(0, 2), ls.AdjustPos(pos(1, 2), textpos.AdjustPosDelErr, tbe))
	assert.Equal(t, pos(0, 0), ls.AdjustPos(pos(0, 4), textpos.AdjustPosDelStart, tbe))
}

func TestRedo(t *testing.T) {
	ls := NewLinesFromStrings(testHighlighter(t), []string{"abc"})
	_, err := ls.Redo()
	assert.ErrorIs(t, err, ErrNothingToRedo)

	_, err = ls.InsertText(pos(0, 3), "\ndef")
	require.NoError(t, err)
	_, err = ls.InsertText(pos(1, 0), "x")
	require.NoError(t, err)
	after := ls.Strings()
	assert.Equal(t, []string{"abc", "xdef"}, after)
	assert.Equal(t, 2, ls.NumUndo())

	_, err = ls.Undo()
	require.NoError(t, err)
	_, err = ls.Undo()
	require.NoError(t, err)
	assert.Equal(t, []string{"abc"}, ls.Strings())
	assert.Equal(t, 2, ls.NumRedo())

	eds, err := ls.Redo()
	require.NoError(t, err)
	require.Len(t, eds, 1)
	assert.Equal(t, []string{"abc", "def"}, ls.Strings())
	_, err = ls.Redo()
	require.NoError(t, err)
	assert.Equal(t, after, ls.Strings())
	assert.Equal(t, 0, ls.NumRedo())

	// a new edit discards what could be redone
	_, err = ls.Undo()
	require.NoError(t, err)
	assert.Equal(t, 1, ls.NumRedo())
	_, err = ls.DeleteText(pos(0, 0), pos(0, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, ls.NumRedo())
	_, err = ls.Redo()
	assert.ErrorIs(t, err, ErrNothingToRedo)
	assert.ErrorIs(t, err, undo.ErrEmptyStack)
}

func TestReplaceText(t *testing.T) {
	ls := NewLinesFromStrings(testHighlighter(t), []string{"x = 1", "y"})
	tbe, err := ls.ReplaceText(pos(0, 4), pos(1, 1), "return\nz")
	require.NoError(t, err)
	assert.Equal(t, textpos.ActionReplace, tbe.Kind)
	assert.Equal(t, []string{"x = return", "z"}, ls.Strings())
	assert.Equal(t, []ColorRange{{Start: 4, End: 9, Group: keywordGroup}}, errors.Must1(ls.ColorRanges(0)))

	eds, err := ls.Undo()
	require.NoError(t, err)
	assert.Len(t, eds, 2)
	assert.Equal(t, []string{"x = 1", "y"}, ls.Strings())
	assert.Equal(t, 0, ls.NumUndo())

	_, err = ls.SetLineText(1, "if")
	require.NoError(t, err)
	assert.Equal(t, []ColorRange{{Start: 0, End: 1, Group: keywordGroup}}, errors.Must1(ls.ColorRanges(1)))
	_, err = ls.Undo()
	require.NoError(t, err)
	assert.Equal(t, "y", errors.Must1(ls.LineText(1)))
}

func TestUndoGroup(t *testing.T) {
	ls := NewLinesFromStrings(nil, []string{"abc"})
	ls.NewUndoGroup()
	for range 3 {
		_, err := ls.InsertText(pos(0, 0), "x")
		require.NoError(t, err)
	}
	ls.EndUndoGroup()
	_, err := ls.InsertText(pos(0, 0), "y")
	require.NoError(t, err)
	assert.Equal(t, "yxxxabc", ls.String())

	_, err = ls.Undo()
	require.NoError(t, err)
	assert.Equal(t, "xxxabc", ls.String())
	eds, err := ls.Undo()
	require.NoError(t, err)
	assert.Len(t, eds, 3)
	assert.Equal(t, "abc", ls.String())

	ls.SetUndoOn(false)
	_, err = ls.InsertText(pos(0, 0), "z")
	require.NoError(t, err)
	_, err = ls.Undo()
	assert.ErrorIs(t, err, ErrNothingToUndo)
	ls.SetUndoOn(true)
	ls.UndoReset()
	assert.Equal(t, 0, ls.NumRedo())
}

func TestChangeCase(t *testing.T) {
	ls := NewLinesFromStrings(testHighlighter(t), []string{"hello world", "IF x"})
	tbe, err := ls.ChangeCase(pos(0, 0), pos(0, 5), UpperCase)
	require.NoError(t, err)
	assert.Equal(t, textpos.ActionChangeCase, tbe.Kind)
	assert.Equal(t, "HELLO world", errors.Must1(ls.LineText(0)))

	_, err = ls.ChangeCase(pos(1, 0), pos(1, 2), LowerCase)
	require.NoError(t, err)
	assert.Equal(t, []ColorRange{{Start: 0, End: 1, Group: keywordGroup}}, errors.Must1(ls.ColorRanges(1)))

	_, err = ls.ChangeCase(pos(0, 0), pos(1, 4), TitleCase)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello World", "If X"}, ls.Strings())

	tbe, err = ls.ChangeCase(pos(0, 0), pos(0, 5), TitleCase)
	assert.NoError(t, err)
	assert.Nil(t, tbe)

	for range 3 {
		_, err = ls.Undo()
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"hello world", "IF x"}, ls.Strings())
	assert.Empty(t, errors.Must1(ls.ColorRanges(1)))
}

func TestLineSnapshot(t *testing.T) {
	ls := NewLinesFromStrings(testHighlighter(t), []string{"return"})
	l, err := ls.Line(0)
	require.NoError(t, err)
	_, err = ls.SetLineText(0, "x")
	require.NoError(t, err)
	assert.Equal(t, "return", l.Text())
	assert.Len(t, l.ColorRanges(), 1)
	assert.Equal(t, "x", errors.Must1(ls.LineText(0)))

	r, err := ls.Region(pos(0, 0), pos(0, 1))
	require.NoError(t, err)
	assert.Equal(t, "x", string(r.ToBytes()))
	assert.Equal(t, pos(0, 1), ls.EndPos())
}

func TestSetHighlighter(t *testing.T) {
	ls := NewLinesFromStrings(nil, []string{"return /* x */"})
	assert.Empty(t, errors.Must1(ls.ColorRanges(0)))
	assert.Empty(t, ls.Blocks())
	ls.SetHighlighter(testHighlighter(t))
	assert.Equal(t, []ColorRange{
		{Start: 0, End: 5, Group: keywordGroup},
		{Start: 7, End: 13, Group: commentGroup},
	}, errors.Must1(ls.ColorRanges(0)))
	ls.SetText("a\nb")
	assert.Equal(t, 2, ls.NumLines())
	assert.Equal(t, "a\nb", ls.String())
}
