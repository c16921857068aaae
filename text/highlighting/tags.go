// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"fmt"
	"log/slog"
	"slices"
)

// Tag defines a tagged block of text delimited by a start and an end
// marker, such as a block comment or a string, which may span lines.
type Tag struct {

	// Start is the marker that opens the block. It must not be empty.
	Start string

	// End is the marker that closes the block. If it is empty, the block
	// always ends at the end of the line where it starts.
	End string

	// Group is the name of the color group for the block.
	Group string

	// GroupIndex is the resolved index of Group in the [Registry].
	GroupIndex int

	// Index is the priority of this tag: when two tags start at the same
	// character, the lower index wins. Indexes are unique within [Tags].
	Index int

	// Advanced tags nest: a start marker inside the block must be
	// closed by its own end marker before the block ends. Otherwise the
	// first end marker closes the block regardless of nesting.
	Advanced bool

	start, end []rune
}

// StartRunes returns the start marker as runes.
func (tg *Tag) StartRunes() []rune { return tg.start }

// EndRunes returns the end marker as runes, which is empty
// for a single-line tag.
func (tg *Tag) EndRunes() []rune { return tg.end }

// SingleLine returns true if the tag has no end marker.
func (tg *Tag) SingleLine() bool { return len(tg.end) == 0 }

// Tags is a validated table of block tags, sorted by [Tag.Index].
// It is immutable once created, so it can be shared among documents.
type Tags struct {
	list []Tag
}

// NewTags validates the given tag definitions and returns them as a table,
// resolving group names in the given registry. A tag with an empty start
// marker, a negative index, or an index already used by another tag returns
// [ErrInvalidTagDefinition]. An unregistered group falls back on [Unknown],
// as do all groups if the registry is nil.
func NewTags(rg *Registry, defs ...Tag) (*Tags, error) {
	if rg == nil {
		rg = NewRegistry()
	}
	tt := &Tags{list: make([]Tag, 0, len(defs))}
	used := make(map[int]bool, len(defs))
	for _, td := range defs {
		if td.Start == "" {
			return nil, fmt.Errorf("%w: tag %d for group %q has an empty start marker", ErrInvalidTagDefinition, td.Index, td.Group)
		}
		if td.Index < 0 {
			return nil, fmt.Errorf("%w: tag %q has negative index %d", ErrInvalidTagDefinition, td.Start, td.Index)
		}
		if used[td.Index] {
			return nil, fmt.Errorf("%w: tag index %d is used more than once", ErrInvalidTagDefinition, td.Index)
		}
		used[td.Index] = true
		gi, err := rg.IndexOf(td.Group)
		if err != nil {
			slog.Warn("tag group not registered, using Unknown", "start", td.Start, "err", err)
			gi = UnknownIndex
		}
		td.GroupIndex = gi
		td.start = []rune(td.Start)
		td.end = []rune(td.End)
		tt.list = append(tt.list, td)
	}
	slices.SortFunc(tt.list, func(a, b Tag) int { return a.Index - b.Index })
	return tt, nil
}

// Len returns the number of tags.
func (tt *Tags) Len() int {
	if tt == nil {
		return 0
	}
	return len(tt.list)
}

// At returns the tag at the given position in priority order.
func (tt *Tags) At(i int) *Tag {
	return &tt.list[i]
}

// Tags returns a copy of the tag definitions, in priority order.
func (tt *Tags) Tags() []Tag {
	if tt == nil {
		return nil
	}
	return slices.Clone(tt.list)
}
