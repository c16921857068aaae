// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"fmt"
	"sync"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// SuggestThreshold is the minimum similarity in [0,1] for a registered
// name to be suggested in the error for an unknown color group name.
var SuggestThreshold = 0.5

// Registry is an ordered list of [ColorGroup] values, with a map from
// name to index to support fast lookup by name. Indexes are assigned
// densely at registration and never reused or removed, so indexes
// stored in color ranges, keywords and tags stay valid for the life of
// the registry. The [Default] and [Unknown] groups are always present.
// A Registry is safe for concurrent use, so it can be shared read-only
// among many documents.
type Registry struct {
	mu sync.RWMutex

	// groups is the ordered list of groups, indexed by group index.
	groups []ColorGroup

	// indexes is the name-to-index mapping.
	indexes map[string]int
}

// NewRegistry returns a new [Registry] holding only the built-in groups.
func NewRegistry() *Registry {
	rg := &Registry{indexes: make(map[string]int)}
	rg.add(ColorGroup{Name: Default, AutoForeground: true, AutoBackground: true})
	rg.add(ColorGroup{Name: Unknown, AutoForeground: true, AutoBackground: true})
	return rg
}

func (rg *Registry) add(g ColorGroup) int {
	idx := len(rg.groups)
	rg.indexes[g.Name] = idx
	rg.groups = append(rg.groups, g)
	return idx
}

// Register adds the given group and returns its index.
// [ErrDuplicateName] is returned if the name is already registered.
// See [Registry.Replace] for a version that replaces.
func (rg *Registry) Register(g ColorGroup) (int, error) {
	rg.mu.Lock()
	defer rg.mu.Unlock()
	if g.Name == "" {
		return -1, fmt.Errorf("%w: color group name is empty", ErrInvalidName)
	}
	if idx, ok := rg.indexes[g.Name]; ok {
		return idx, fmt.Errorf("%w: color group %q is already registered at index %d", ErrDuplicateName, g.Name, idx)
	}
	return rg.add(g), nil
}

// Replace sets the group with the name of the given group, keeping
// its existing index, or adds it at the end if it is not registered.
// This is the same semantics as a Go map.
func (rg *Registry) Replace(g ColorGroup) int {
	rg.mu.Lock()
	defer rg.mu.Unlock()
	if idx, ok := rg.indexes[g.Name]; ok {
		rg.groups[idx] = g
		return idx
	}
	return rg.add(g)
}

// IndexOf returns the index of the group with the given name.
// [ErrNotFound] is returned for a name that is not registered, with
// the closest registered name suggested in the message. A nil registry
// has no groups.
func (rg *Registry) IndexOf(name string) (int, error) {
	if rg == nil {
		return -1, fmt.Errorf("%w: color group %q: no registry", ErrNotFound, name)
	}
	rg.mu.RLock()
	defer rg.mu.RUnlock()
	if idx, ok := rg.indexes[name]; ok {
		return idx, nil
	}
	if sug := rg.suggest(name); sug != "" {
		return -1, fmt.Errorf("%w: color group %q (did you mean %q?)", ErrNotFound, name, sug)
	}
	return -1, fmt.Errorf("%w: color group %q", ErrNotFound, name)
}

// IndexOrUnknown returns the index of the group with the given name,
// or [UnknownIndex] if it is not registered.
func (rg *Registry) IndexOrUnknown(name string) int {
	idx, err := rg.IndexOf(name)
	if err != nil {
		return UnknownIndex
	}
	return idx
}

// suggest returns the most similar registered name, if any is at least
// [SuggestThreshold] similar. Must be called under the lock.
func (rg *Registry) suggest(name string) string {
	lev := metrics.NewLevenshtein()
	best, bsim := "", SuggestThreshold
	for _, g := range rg.groups {
		sim := strutil.Similarity(name, g.Name, lev)
		if sim >= bsim {
			best, bsim = g.Name, sim
		}
	}
	return best
}

// Group returns the group at the given index.
// [ErrIndexOutOfRange] is returned for an invalid index.
func (rg *Registry) Group(idx int) (ColorGroup, error) {
	rg.mu.RLock()
	defer rg.mu.RUnlock()
	if idx < 0 || idx >= len(rg.groups) {
		return ColorGroup{}, fmt.Errorf("%w: color group index %d, registry has %d groups", ErrIndexOutOfRange, idx, len(rg.groups))
	}
	return rg.groups[idx], nil
}

// Len returns the number of groups.
func (rg *Registry) Len() int {
	rg.mu.RLock()
	defer rg.mu.RUnlock()
	return len(rg.groups)
}

// Names returns the group names in index order.
func (rg *Registry) Names() []string {
	rg.mu.RLock()
	defer rg.mu.RUnlock()
	nms := make([]string, len(rg.groups))
	for i, g := range rg.groups {
		nms[i] = g.Name
	}
	return nms
}
