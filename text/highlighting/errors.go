// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import "cogentcore.org/codetext/base/errors"

var (
	// ErrNotFound is returned for a color group name that is not registered.
	// Callers typically fall back on the [Unknown] group.
	ErrNotFound = errors.New("highlighting: not found")

	// ErrDuplicateName is returned when registering a color group
	// whose name is already registered.
	ErrDuplicateName = errors.New("highlighting: duplicate name")

	// ErrIndexOutOfRange is returned for a color group index
	// outside of the registry.
	ErrIndexOutOfRange = errors.New("highlighting: index out of range")

	// ErrInvalidTagDefinition is returned for a malformed block tag.
	ErrInvalidTagDefinition = errors.New("highlighting: invalid tag definition")

	// ErrInvalidColorFormat is returned for a color spec that is not
	// an "R,G,B" triple of decimal values in [0,255].
	ErrInvalidColorFormat = errors.New("highlighting: invalid color format")

	// ErrInvalidName is returned for a color group with an empty name.
	ErrInvalidName = errors.New("highlighting: invalid name")

	// ErrInvalidKeyword is returned for an empty keyword.
	ErrInvalidKeyword = errors.New("highlighting: invalid keyword")
)
