/*
Copyright (C) 2025 The Posacs Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package emacs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/posacs/posacs-module-go/pkg/emacs"
	"github.com/posacs/posacs-module-go/pkg/emacs/emacstest"
)

func TestCopyString(t *testing.T) {
	e := emacstest.NewEnv()

	s, ok := emacs.CopyString(e, e.MakeString("hello posacs"))
	require.True(t, ok)
	assert.Equal(t, "hello posacs", s)

	s, ok = emacs.CopyString(e, e.MakeString(""))
	require.True(t, ok)
	assert.Equal(t, "", s)
}

func TestCopyStringNonString(t *testing.T) {
	e := emacstest.NewEnv()

	_, ok := emacs.CopyString(e, e.MakeInteger(42))
	assert.False(t, ok)
	assert.False(t, e.SignaledSymbol("memory-full"))
}

func TestCopyStringCopyFailure(t *testing.T) {
	e := emacstest.NewEnv()
	e.FailCopy = true

	_, ok := emacs.CopyString(e, e.MakeString("hello"))
	assert.False(t, ok)
	assert.Empty(t, e.Signaled)
}

func TestCopyStringAllocFailure(t *testing.T) {
	prev := emacs.SetAlloc(func(size int) []byte { return nil })
	defer emacs.SetAlloc(prev)

	e := emacstest.NewEnv()
	_, ok := emacs.CopyString(e, e.MakeString("hello"))
	assert.False(t, ok)
	assert.True(t, e.SignaledSymbol("memory-full"))
	assert.Equal(t, emacs.FuncallExitSignal, e.NonLocalExitCheck())
}

func TestSetAllocNilRestoresDefault(t *testing.T) {
	prev := emacs.SetAlloc(nil)
	defer emacs.SetAlloc(prev)

	e := emacstest.NewEnv()
	s, ok := emacs.CopyString(e, e.MakeString("still works"))
	require.True(t, ok)
	assert.Equal(t, "still works", s)
}

func TestValueHelpers(t *testing.T) {
	e := emacstest.NewEnv()

	assert.True(t, emacs.IsNil(e, emacs.Nil(e)))
	assert.False(t, emacs.IsNil(e, emacs.T(e)))
	assert.True(t, e.Eq(emacs.Bool(e, true), emacs.T(e)))
	assert.True(t, e.Eq(emacs.Bool(e, false), emacs.Nil(e)))

	assert.True(t, emacs.IsString(e, e.MakeString("x")))
	assert.False(t, emacs.IsString(e, e.MakeInteger(1)))
	assert.True(t, emacs.IsInteger(e, e.MakeInteger(1)))
	assert.True(t, emacs.IsFloat(e, e.MakeFloat(1.5)))
	assert.False(t, emacs.IsFloat(e, e.MakeString("1.5")))
	assert.False(t, emacs.IsString(e, emacs.Nil(e)))
}
