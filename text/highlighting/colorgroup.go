// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package highlighting provides the lexical coloring configuration for
// line-based text: named color groups, the keyword index, and the
// multi-line block tags, along with loading them from syntax files.
package highlighting

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Emphasis is the type of emphasis applied to text in a color group.
type Emphasis int32 //enums:enum

const (
	Regular Emphasis = iota
	Bold
	Underline
	Framed
	EmphasisN
)

var emphasisNames = [...]string{"Regular", "Bold", "Underline", "Framed"}

func (i Emphasis) String() string {
	if i < 0 || i >= EmphasisN {
		return fmt.Sprintf("Emphasis(%d)", int32(i))
	}
	return emphasisNames[i]
}

// SetString sets the emphasis from its name, case-insensitively.
// The empty string is Regular.
func (i *Emphasis) SetString(s string) error {
	if s == "" {
		*i = Regular
		return nil
	}
	for e, nm := range emphasisNames {
		if strings.EqualFold(nm, s) {
			*i = Emphasis(e)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Emphasis", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Emphasis) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Emphasis) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// Names of the built-in color groups, which are always present
// at indexes [DefaultIndex] and [UnknownIndex].
const (
	Default = "Default"
	Unknown = "Unknown"
)

const (
	// DefaultIndex is the index of the [Default] group.
	DefaultIndex = 0

	// UnknownIndex is the index of the [Unknown] group,
	// used for classifications that do not resolve to a group.
	UnknownIndex = 1
)

// ColorGroup is a named visual style applied to classified text.
// Its name is unique within a [Registry], and case-sensitive.
type ColorGroup struct {

	// Name of the group.
	Name string

	// Foreground is the text color, unless AutoForeground is set.
	Foreground color.RGBA

	// Background is the background color, unless AutoBackground is set.
	Background color.RGBA

	// AutoForeground means to use the default foreground color of the view.
	AutoForeground bool

	// AutoBackground means to use the default background color of the view.
	AutoBackground bool

	// Emphasis applied to the text.
	Emphasis Emphasis
}

func (cg ColorGroup) String() string {
	fg, bg := "auto", "auto"
	if !cg.AutoForeground {
		fg = FormatColor(cg.Foreground)
	}
	if !cg.AutoBackground {
		bg = FormatColor(cg.Background)
	}
	return fmt.Sprintf("%s fg:%s bg:%s %s", cg.Name, fg, bg, cg.Emphasis)
}

// ParseColor parses a color spec of the form "R,G,B" where each
// component is a decimal value in [0,255]. Spaces around components
// are allowed. Malformed specs return [ErrInvalidColorFormat].
func ParseColor(spec string) (color.RGBA, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 3 {
		return color.RGBA{}, fmt.Errorf("%w: %q: want R,G,B", ErrInvalidColorFormat, spec)
	}
	var c [3]uint8
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return color.RGBA{}, fmt.Errorf("%w: %q: component %d is not in [0,255]", ErrInvalidColorFormat, spec, i+1)
		}
		c[i] = uint8(v)
	}
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}, nil
}

// FormatColor returns the "R,G,B" spec for the given color.
func FormatColor(c color.RGBA) string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}
