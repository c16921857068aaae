// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import "errors"

// New returns an error that formats as the given text.
// See [errors.New] for more information.
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's tree matches target.
// See [errors.Is] for more information.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
