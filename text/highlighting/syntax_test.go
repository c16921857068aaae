// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTOML = `
name = "test"

[[groups]]
name = "Comment"
foreground = "0,128,0"
autoBackground = true

[[groups]]
name = "Keyword"
foreground = "0,0,255"
background = "255,255,255"
emphasis = "bold"

[[keywords]]
group = "Keyword"
words = ["if", "return"]

[[tags]]
start = "/*"
end = "*/"
group = "Comment"
index = 0
`

const testYAML = `
name: test
groups:
  - name: Comment
    foreground: "0,128,0"
    autoBackground: true
  - name: Keyword
    foreground: "0,0,255"
    background: "255,255,255"
    emphasis: bold
keywords:
  - group: Keyword
    words: [if, return]
tags:
  - start: "/*"
    end: "*/"
    group: Comment
    index: 0
`

const testJSON = `{
  "name": "test",
  "groups": [
    {"name": "Comment", "foreground": "0,128,0", "autoBackground": true},
    {"name": "Keyword", "foreground": "0,0,255", "background": "255,255,255", "emphasis": "bold"}
  ],
  "keywords": [{"group": "Keyword", "words": ["if", "return"]}],
  "tags": [{"start": "/*", "end": "*/", "group": "Comment", "index": 0}]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	fn := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0644))
	return fn
}

func TestOpenSyntaxFormats(t *testing.T) {
	dir := t.TempDir()
	st, err := OpenSyntax(writeFile(t, dir, "a.toml", testTOML))
	require.NoError(t, err)
	sy, err := OpenSyntax(writeFile(t, dir, "a.yaml", testYAML))
	require.NoError(t, err)
	sj, err := OpenSyntax(writeFile(t, dir, "a.json", testJSON))
	require.NoError(t, err)
	assert.Equal(t, st, sy)
	assert.Equal(t, st, sj)

	_, err = OpenSyntax(writeFile(t, dir, "a.txt", testTOML))
	assert.Error(t, err)
	_, err = OpenSyntax(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	hi, err := st.Highlighter()
	require.NoError(t, err)
	assert.True(t, hi.Has())
	assert.Equal(t, 4, hi.Groups.Len())
	gi, ok := hi.Keywords.Lookup("return")
	assert.True(t, ok)
	g, err := hi.Groups.Group(gi)
	require.NoError(t, err)
	assert.Equal(t, "Keyword", g.Name)
	assert.Equal(t, Bold, g.Emphasis)
	assert.Equal(t, 1, hi.Tags.Len())
	assert.Equal(t, DefaultSeparators, hi.Separators)
}

func TestSyntaxSave(t *testing.T) {
	dir := t.TempDir()
	st, err := OpenSyntax(writeFile(t, dir, "a.toml", testTOML))
	require.NoError(t, err)
	for _, fn := range []string{"b.toml", "b.yaml", "b.json"} {
		path := filepath.Join(dir, fn)
		require.NoError(t, st.Save(path))
		back, err := OpenSyntax(path)
		require.NoError(t, err)
		assert.Equal(t, st, back, fn)
	}
}

func TestSyntaxErrors(t *testing.T) {
	sy := &Syntax{Name: "bad", Groups: []GroupSpec{{Name: "C", Foreground: "1,2"}}}
	_, err := sy.Highlighter()
	assert.ErrorIs(t, err, ErrInvalidColorFormat)

	sy = &Syntax{Name: "bad", Groups: []GroupSpec{{Name: "C", AutoForeground: true}}}
	_, err = sy.Highlighter()
	assert.ErrorIs(t, err, ErrInvalidColorFormat, "missing background without autoBackground")

	sy = &Syntax{Name: "ok", Groups: []GroupSpec{{Name: "C", AutoForeground: true, AutoBackground: true}}}
	_, err = sy.Highlighter()
	assert.NoError(t, err)

	sy = &Syntax{Name: "bad", Groups: []GroupSpec{
		{Name: "C", AutoForeground: true, AutoBackground: true},
		{Name: "C", AutoForeground: true, AutoBackground: true},
	}}
	_, err = sy.Highlighter()
	assert.ErrorIs(t, err, ErrDuplicateName)

	sy = &Syntax{Name: "bad", Tags: []TagSpec{{Start: "", End: "*/", Group: "Default"}}}
	_, err = sy.Highlighter()
	assert.ErrorIs(t, err, ErrInvalidTagDefinition)

	sy = &Syntax{Name: "bad", Chroma: "no-such-style"}
	_, err = sy.Highlighter()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSyntaxMerge(t *testing.T) {
	base := DefaultSyntax()
	over := &Syntax{
		Separators: ".",
		Groups:     []GroupSpec{{Name: "Comment", Foreground: "1,1,1", AutoBackground: true}, {Name: "Special", AutoForeground: true, AutoBackground: true}},
		Keywords:   []KeywordSpec{{Group: "Special", Words: []string{"goto"}}},
		Tags:       []TagSpec{{Start: "#", Group: "Comment", Index: 1}},
	}
	m := base.Merge(over)
	assert.Equal(t, base.Name, m.Name)
	assert.Equal(t, ".", m.Separators)
	assert.Equal(t, len(base.Groups)+1, len(m.Groups))
	assert.Equal(t, len(base.Tags), len(m.Tags))

	// base is not modified
	assert.NotEqual(t, ".", base.Separators)
	m.Groups[0].Name = "Changed"
	assert.NotEqual(t, "Changed", base.Groups[0].Name)

	hi, err := m.Highlighter()
	require.NoError(t, err)
	gi, ok := hi.Keywords.Lookup("goto")
	require.True(t, ok)
	g, _ := hi.Groups.Group(gi)
	assert.Equal(t, "Special", g.Name)
	assert.Equal(t, "#", hi.Tags.At(1).Start)
}

func TestDefaultSyntax(t *testing.T) {
	hi, err := DefaultSyntax().Highlighter()
	require.NoError(t, err)
	_, ok := hi.Keywords.Lookup("return")
	assert.True(t, ok)
	assert.Equal(t, 4, hi.Tags.Len())
	assert.Equal(t, "/*", hi.Tags.At(0).Start)
}

func TestOpenSyntaxFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.toml", testTOML)
	b := writeFile(t, dir, "b.yaml", "separators: \"-\"\nkeywords:\n  - group: Keyword\n    words: [while]\n")
	sy, err := OpenSyntaxFiles(a, b)
	require.NoError(t, err)
	assert.Equal(t, "-", sy.Separators)
	assert.Len(t, sy.Keywords, 2)
	_, err = OpenSyntaxFiles()
	assert.Error(t, err)
}

func TestWatchSyntax(t *testing.T) {
	dir := t.TempDir()
	fn := writeFile(t, dir, "w.toml", testTOML)
	w, err := WatchSyntax(fn)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(fn, []byte("separators = \"+\"\n"+testTOML), 0644))
	timeout := time.After(5 * time.Second)
	for {
		select {
		case sy := <-w.Changes:
			// a write can be seen part way through
			if sy.Separators == "+" {
				assert.Equal(t, "test", sy.Name)
				return
			}
		case <-w.Errors:
		case <-timeout:
			t.Fatal("no reload after writing the syntax file")
		}
	}
}
