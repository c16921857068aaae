// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTest = New("test error")

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	assert.ErrorIs(t, Log(fmt.Errorf("wrapped: %w", errTest)), errTest)
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(errTest) })
	assert.Equal(t, "a", Must1("a", nil))
	assert.Panics(t, func() { Must1("a", errTest) })
}

func TestCallerInfo(t *testing.T) {
	assert.Contains(t, callerWrapper(), "errors_test.go")
}

func callerWrapper() string {
	return CallerInfo()
}

func TestIs(t *testing.T) {
	assert.True(t, Is(fmt.Errorf("wrapped: %w", errTest), errTest))
	assert.False(t, Is(New("other"), errTest))
}
