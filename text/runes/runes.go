// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package runes provides a small subset of functions that are found in strings,
bytes standard packages, for rune slices. Line text is kept in runes so that
character offsets are rune offsets, and converting back and forth to strings
in the scanning loops is avoided.
*/
package runes

// HasPrefixAt reports whether s contains sub starting at index i.
func HasPrefixAt(s []rune, i int, sub []rune) bool {
	if i < 0 || len(sub) == 0 || i+len(sub) > len(s) {
		return false
	}
	for j, r := range sub {
		if s[i+j] != r {
			return false
		}
	}
	return true
}

// IndexFrom returns the index of the first instance of sub in s
// at or after index from, or -1 if sub is not present.
func IndexFrom(s []rune, sub []rune, from int) int {
	n := len(sub)
	if n == 0 || from < 0 {
		return -1
	}
	first := sub[0]
	for i := from; i+n <= len(s); i++ {
		if s[i] != first {
			continue
		}
		if HasPrefixAt(s, i, sub) {
			return i
		}
	}
	return -1
}

// Index returns the index of the first instance of sub in s, or -1.
func Index(s, sub []rune) int {
	return IndexFrom(s, sub, 0)
}

// Split slices s into all subslices separated by sep and returns a slice of
// the subslices between those separators. The subslices are copies.
func Split(s, sep []rune) [][]rune {
	var out [][]rune
	st := 0
	for {
		i := IndexFrom(s, sep, st)
		if i < 0 {
			break
		}
		out = append(out, clone(s[st:i]))
		st = i + len(sep)
	}
	return append(out, clone(s[st:]))
}

// clone returns a non-nil copy of s.
func clone(s []rune) []rune {
	c := make([]rune, len(s))
	copy(c, s)
	return c
}

// Join concatenates the elements of its first argument to create a single
// rune slice, placing sep between the elements.
func Join(elems [][]rune, sep []rune) []rune {
	n := 0
	for _, e := range elems {
		n += len(e) + len(sep)
	}
	out := make([]rune, 0, n)
	for i, e := range elems {
		if i > 0 {
			out = append(out, sep...)
		}
		out = append(out, e...)
	}
	return out
}
