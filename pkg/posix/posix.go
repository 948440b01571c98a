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

// Package posix implements the environment-variable operations the
// module exposes to host scripts: posacs--getenv, posacs--setenv and
// posacs--unsetenv.
//
// The operations follow the host's leniency convention: a call with a
// wrong argument type, a failed string copy or a failed OS call
// returns host-nil rather than raising. The only condition ever raised
// is memory-full, from the string marshaling layer. Callers therefore
// cannot tell "variable unset" apart from "wrong type passed"; that
// unification is part of the exposed contract.
package posix

import (
	"os"

	"github.com/posacs/posacs-module-go/pkg/emacs"
	"github.com/posacs/posacs-module-go/pkg/module"
)

// Bindings holds the state shared by the three operations. The zero
// value protects nothing.
type Bindings struct {
	protected map[string]struct{}
}

// NewBindings returns bindings that refuse to set or unset the given
// variable names.
func NewBindings(protected []string) *Bindings {
	b := &Bindings{}
	if len(protected) > 0 {
		b.protected = make(map[string]struct{}, len(protected))
		for _, name := range protected {
			b.protected[name] = struct{}{}
		}
	}
	return b
}

func (b *Bindings) isProtected(name string) bool {
	_, ok := b.protected[name]
	return ok
}

// Getenv looks up the environment variable named by its single string
// argument. It returns a fresh host string with the value, or nil when
// the variable is unset, the argument is not a string, or the name
// cannot be copied out of the host.
func (b *Bindings) Getenv(e emacs.Env, args []emacs.Value, _ interface{}) emacs.Value {
	if !emacs.IsString(e, args[0]) {
		return emacs.Nil(e)
	}
	name, ok := emacs.CopyString(e, args[0])
	if !ok {
		return emacs.Nil(e)
	}
	val, found := os.LookupEnv(name)
	if !found {
		return emacs.Nil(e)
	}
	return e.MakeString(val)
}

// Setenv sets the environment variable named by its first argument to
// its second, replacing any existing binding. It returns t on success
// and nil when either argument is not a string, either copy fails, the
// name is protected, or the OS call fails. On every nil path the
// process environment is left untouched.
func (b *Bindings) Setenv(e emacs.Env, args []emacs.Value, _ interface{}) emacs.Value {
	if !emacs.IsString(e, args[0]) {
		return emacs.Nil(e)
	}
	name, ok := emacs.CopyString(e, args[0])
	if !ok {
		return emacs.Nil(e)
	}
	if !emacs.IsString(e, args[1]) {
		return emacs.Nil(e)
	}
	val, ok := emacs.CopyString(e, args[1])
	if !ok {
		return emacs.Nil(e)
	}
	if b.isProtected(name) {
		return emacs.Nil(e)
	}
	if err := os.Setenv(name, val); err != nil {
		return emacs.Nil(e)
	}
	return emacs.T(e)
}

// Unsetenv removes the environment variable named by its single string
// argument. Removing a variable that does not exist still succeeds, so
// for valid unprotected names this effectively always returns t.
func (b *Bindings) Unsetenv(e emacs.Env, args []emacs.Value, _ interface{}) emacs.Value {
	if !emacs.IsString(e, args[0]) {
		return emacs.Nil(e)
	}
	name, ok := emacs.CopyString(e, args[0])
	if !ok {
		return emacs.Nil(e)
	}
	if b.isProtected(name) {
		return emacs.Nil(e)
	}
	if err := os.Unsetenv(name); err != nil {
		return emacs.Nil(e)
	}
	return emacs.T(e)
}

// Funcs returns the registration table of the module: the fixed list
// of exported names, arities and docstrings bound at load time.
func (b *Bindings) Funcs() []module.Func {
	return []module.Func{
		{Name: "posacs--getenv", MinArity: 1, MaxArity: 1, Doc: "getenv internal", Call: b.Getenv},
		{Name: "posacs--setenv", MinArity: 2, MaxArity: 2, Doc: "setenv internal", Call: b.Setenv},
		{Name: "posacs--unsetenv", MinArity: 1, MaxArity: 1, Doc: "unsetenv internal", Call: b.Unsetenv},
	}
}
