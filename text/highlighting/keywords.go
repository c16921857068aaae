// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
)

// KeywordInfo associates a keyword with a color group.
type KeywordInfo struct {

	// Keyword is the exact text of the keyword.
	Keyword string

	// Group is the name of the color group.
	Group string

	// GroupIndex is the index of Group in the [Registry], resolved when
	// the keyword is added, or [UnknownIndex] if the group is not registered.
	GroupIndex int
}

// compareKeyword is the ordinal ordering of keyword entries.
func compareKeyword(a KeywordInfo, b string) int {
	return strings.Compare(a.Keyword, b)
}

// Keywords is an index from keyword text to color group, kept sorted
// by ordinal keyword order for binary search lookup. Matching is exact
// and case-sensitive. There are no duplicate keywords: adding an
// existing keyword replaces its group (last write wins).
// Keywords is safe for concurrent use.
type Keywords struct {
	mu sync.RWMutex

	// Registry used to resolve group names.
	Registry *Registry

	list []KeywordInfo
}

// NewKeywords returns a new empty [Keywords] resolving groups in the given
// registry, or in a new registry of the built-in groups if it is nil.
func NewKeywords(rg *Registry) *Keywords {
	if rg == nil {
		rg = NewRegistry()
	}
	return &Keywords{Registry: rg}
}

// Add adds the given keyword with the given color group name.
// The group is resolved at add time; an unregistered group falls back on
// the [Unknown] group, which is logged but not an error.
// An empty keyword returns [ErrInvalidKeyword].
func (kw *Keywords) Add(keyword, group string) error {
	if keyword == "" {
		return fmt.Errorf("%w: empty keyword for group %q", ErrInvalidKeyword, group)
	}
	gi, err := kw.Registry.IndexOf(group)
	if err != nil {
		slog.Warn("keyword group not registered, using Unknown", "keyword", keyword, "err", err)
		gi = UnknownIndex
	}
	ki := KeywordInfo{Keyword: keyword, Group: group, GroupIndex: gi}
	kw.mu.Lock()
	defer kw.mu.Unlock()
	idx, found := slices.BinarySearchFunc(kw.list, keyword, compareKeyword)
	if found {
		kw.list[idx] = ki
		return nil
	}
	kw.list = slices.Insert(kw.list, idx, ki)
	return nil
}

// AddWords adds all of the given keywords with the given group.
func (kw *Keywords) AddWords(group string, words ...string) error {
	for _, w := range words {
		if err := kw.Add(w, group); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the color group index for the given word,
// and false if it is not a keyword.
func (kw *Keywords) Lookup(word string) (int, bool) {
	kw.mu.RLock()
	defer kw.mu.RUnlock()
	idx, found := slices.BinarySearchFunc(kw.list, word, compareKeyword)
	if !found {
		return -1, false
	}
	return kw.list[idx].GroupIndex, true
}

// Info returns the full entry for the given keyword.
func (kw *Keywords) Info(word string) (KeywordInfo, bool) {
	kw.mu.RLock()
	defer kw.mu.RUnlock()
	idx, found := slices.BinarySearchFunc(kw.list, word, compareKeyword)
	if !found {
		return KeywordInfo{}, false
	}
	return kw.list[idx], true
}

// Len returns the number of keywords.
func (kw *Keywords) Len() int {
	kw.mu.RLock()
	defer kw.mu.RUnlock()
	return len(kw.list)
}

// Keywords returns a copy of the sorted keyword entries.
func (kw *Keywords) Keywords() []KeywordInfo {
	kw.mu.RLock()
	defer kw.mu.RUnlock()
	return slices.Clone(kw.list)
}
