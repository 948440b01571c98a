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

package module_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/posacs/posacs-module-go/pkg/emacs"
	"github.com/posacs/posacs-module-go/pkg/emacs/emacstest"
	"github.com/posacs/posacs-module-go/pkg/module"
	"github.com/posacs/posacs-module-go/pkg/posix"
)

func TestInitABIMismatch(t *testing.T) {
	rt := &emacstest.InMemoryRuntime{Err: emacs.ErrRuntimeTooSmall}
	assert.Equal(t, module.InitBadRuntime, module.Init(rt, nil))

	rt = &emacstest.InMemoryRuntime{Err: emacs.ErrEnvTooSmall}
	assert.Equal(t, module.InitBadEnv, module.Init(rt, nil))
}

func TestInitBindsTable(t *testing.T) {
	e := emacstest.NewEnv()
	rt := &emacstest.InMemoryRuntime{Env: e}

	rc := module.Init(rt, posix.NewBindings(nil).Funcs())
	require.Equal(t, module.InitSuccess, rc)

	for _, name := range []string{"posacs--getenv", "posacs--setenv", "posacs--unsetenv"} {
		assert.True(t, e.IsBound(name), "expected %s to be bound", name)
	}
	assert.Equal(t, "getenv internal", e.Doc("posacs--getenv"))
}

func TestDefun(t *testing.T) {
	e := emacstest.NewEnv()
	module.Defun(e, module.Func{
		Name:     "posacs--answer",
		MinArity: 0,
		MaxArity: 0,
		Doc:      "answer internal",
		Call: func(env emacs.Env, args []emacs.Value, data interface{}) emacs.Value {
			return env.MakeInteger(42)
		},
	})
	require.True(t, e.IsBound("posacs--answer"))
	ret := e.Call("posacs--answer")
	assert.True(t, e.Eq(ret, e.MakeInteger(42)))
}

// The module scenario as a host script would run it:
// (posacs--setenv "FOO" "bar") => t
// (posacs--getenv "FOO")       => "bar"
// (posacs--unsetenv "FOO")     => t
// (posacs--getenv "FOO")       => nil
func TestScenarioThroughHostCalls(t *testing.T) {
	const name = "POSACS_MODULE_SCENARIO_VAR"
	os.Unsetenv(name)
	t.Cleanup(func() { os.Unsetenv(name) })

	e := emacstest.NewEnv()
	rc := module.Init(&emacstest.InMemoryRuntime{Env: e}, posix.NewBindings(nil).Funcs())
	require.Equal(t, module.InitSuccess, rc)

	ret := e.Call("posacs--setenv", e.MakeString(name), e.MakeString("bar"))
	assert.True(t, e.Eq(ret, emacs.T(e)))

	s, ok := e.GoString(e.Call("posacs--getenv", e.MakeString(name)))
	require.True(t, ok)
	assert.Equal(t, "bar", s)

	ret = e.Call("posacs--unsetenv", e.MakeString(name))
	assert.True(t, e.Eq(ret, emacs.T(e)))

	assert.True(t, emacs.IsNil(e, e.Call("posacs--getenv", e.MakeString(name))))
}

func TestArityEnforcedAtHostLayer(t *testing.T) {
	e := emacstest.NewEnv()
	require.Equal(t, module.InitSuccess,
		module.Init(&emacstest.InMemoryRuntime{Env: e}, posix.NewBindings(nil).Funcs()))

	ret := e.Call("posacs--setenv", e.MakeString("ONLY_ONE_ARG"))
	assert.True(t, emacs.IsNil(e, ret))
	assert.True(t, e.SignaledSymbol("wrong-number-of-arguments"))
}
