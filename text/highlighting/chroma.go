// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"fmt"
	"image/color"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// ChromaTokens are the chroma token types that are imported as color
// groups by [AddChromaStyle], named by their chroma names
// (e.g., "Keyword", "Comment", "LiteralString").
var ChromaTokens = []chroma.TokenType{
	chroma.Keyword,
	chroma.KeywordConstant,
	chroma.KeywordDeclaration,
	chroma.KeywordType,
	chroma.Name,
	chroma.NameBuiltin,
	chroma.NameClass,
	chroma.NameFunction,
	chroma.NameTag,
	chroma.LiteralString,
	chroma.LiteralStringChar,
	chroma.LiteralNumber,
	chroma.Operator,
	chroma.Punctuation,
	chroma.Comment,
	chroma.CommentPreproc,
	chroma.GenericHeading,
	chroma.GenericEmph,
	chroma.Error,
}

// ColorGroupFromChroma returns a color group with the given name
// from the given chroma style entry. The background is automatic
// if it is the same as the style background bg.
func ColorGroupFromChroma(name string, ce chroma.StyleEntry, bg chroma.Colour) ColorGroup {
	cg := ColorGroup{Name: name, AutoForeground: !ce.Colour.IsSet(), AutoBackground: true}
	if ce.Colour.IsSet() {
		cg.Foreground = chromaColor(ce.Colour)
	}
	if ce.Background.IsSet() && ce.Background != bg {
		cg.AutoBackground = false
		cg.Background = chromaColor(ce.Background)
	}
	switch {
	case ce.Bold == chroma.Yes:
		cg.Emphasis = Bold
	case ce.Underline == chroma.Yes:
		cg.Emphasis = Underline
	case ce.Border.IsSet():
		cg.Emphasis = Framed
	}
	return cg
}

func chromaColor(c chroma.Colour) color.RGBA {
	return color.RGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: 255}
}

// AddChromaStyle adds (or replaces) color groups in the given registry for
// each of [ChromaTokens], from the chroma style with the given name.
// [ErrNotFound] is returned if there is no such style.
func AddChromaStyle(rg *Registry, style string) error {
	cs, ok := styles.Registry[style]
	if !ok {
		return fmt.Errorf("%w: chroma style %q", ErrNotFound, style)
	}
	bg := cs.Get(chroma.Background).Background
	for _, tt := range ChromaTokens {
		rg.Replace(ColorGroupFromChroma(tt.String(), cs.Get(tt), bg))
	}
	return nil
}

// RegistryFromChroma returns a new [Registry] with the built-in groups
// plus groups for [ChromaTokens] from the given chroma style.
func RegistryFromChroma(style string) (*Registry, error) {
	rg := NewRegistry()
	if err := AddChromaStyle(rg, style); err != nil {
		return nil, err
	}
	return rg, nil
}
