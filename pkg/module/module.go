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

// Package module implements the load-time half of a dynamic module:
// the ABI compatibility handshake and the registration of exported
// functions into the host's global namespace.
package module

import (
	"errors"

	"github.com/posacs/posacs-module-go/pkg/emacs"
)

// The values the module load entry point returns to the host loader.
// Non-zero values tell the host which half of the ABI is too old
// without crashing the process.
const (
	InitSuccess    int32 = 0
	InitBadRuntime int32 = 1 // host runtime structure too small
	InitBadEnv     int32 = 2 // host environment structure too small
)

// Func is one row of a module's registration table: a function to
// expose to host scripts under a fixed name and arity range.
type Func struct {
	Name     string
	MinArity int
	MaxArity int
	Doc      string
	Call     emacs.Callable
}

// Init verifies binary compatibility with the host and binds every
// function of the table into the host's global namespace. It returns
// InitSuccess, or the distinct failure code for whichever ABI check
// failed.
func Init(rt emacs.Runtime, funcs []Func) int32 {
	env, err := rt.Environment()
	switch {
	case errors.Is(err, emacs.ErrRuntimeTooSmall):
		return InitBadRuntime
	case errors.Is(err, emacs.ErrEnvTooSmall):
		return InitBadEnv
	case err != nil:
		return InitBadRuntime
	}

	for _, f := range funcs {
		Defun(env, f)
	}
	return InitSuccess
}

// Defun binds f under its exported name using the host's own function
// definition primitive, the equivalent of (fset 'name function).
func Defun(e emacs.Env, f Func) {
	fn := e.MakeFunction(f.MinArity, f.MaxArity, f.Doc, f.Call, nil)
	e.Funcall(e.Intern("fset"), e.Intern(f.Name), fn)
}
