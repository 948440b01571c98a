// SPDX-License-Identifier: Apache-2.0
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

// Package emacstest provides an in-memory implementation of the host
// boundary for use in tests, with hooks to inject protocol failures
// and inspect signaled conditions.
package emacstest

import (
	"github.com/posacs/posacs-module-go/pkg/emacs"
)

type symbolValue struct {
	name string
}

type stringValue struct {
	contents string
}

type integerValue struct {
	v int64
}

type floatValue struct {
	v float64
}

type functionValue struct {
	minArity int
	maxArity int
	doc      string
	fn       emacs.Callable
	data     interface{}
}

// Signal records one condition raised through NonLocalExitSignal.
type Signal struct {
	Symbol emacs.Value
	Data   emacs.Value
}

// InMemoryEnv is an in-memory implementation of emacs.Env. Symbols are
// canonicalized the way a host obarray would, fset bindings are kept so
// that registered functions can be called back through Funcall, and
// raised conditions are recorded instead of unwinding anything.
type InMemoryEnv struct {
	symbols  map[string]*symbolValue
	bindings map[*symbolValue]*functionValue
	exit     emacs.FuncallExit

	// Signaled collects every condition raised on this environment, in
	// order.
	Signaled []Signal

	// FailCopy forces the string copy-out protocol to report failure,
	// simulating a host that refuses the copy.
	FailCopy bool
}

// NewEnv returns an empty in-memory environment.
func NewEnv() *InMemoryEnv {
	return &InMemoryEnv{
		symbols:  make(map[string]*symbolValue),
		bindings: make(map[*symbolValue]*functionValue),
	}
}

func (e *InMemoryEnv) Intern(name string) emacs.Value {
	if s, ok := e.symbols[name]; ok {
		return s
	}
	s := &symbolValue{name: name}
	e.symbols[name] = s
	return s
}

func (e *InMemoryEnv) TypeOf(v emacs.Value) emacs.Value {
	switch v.(type) {
	case stringValue:
		return e.Intern("string")
	case integerValue:
		return e.Intern("integer")
	case floatValue:
		return e.Intern("float")
	case *symbolValue:
		return e.Intern("symbol")
	case *functionValue:
		return e.Intern("subr")
	default:
		return e.Intern("symbol")
	}
}

func (e *InMemoryEnv) IsNotNil(v emacs.Value) bool {
	if s, ok := v.(*symbolValue); ok && s.name == "nil" {
		return false
	}
	return v != nil
}

func (e *InMemoryEnv) Eq(a, b emacs.Value) bool {
	return a == b
}

func (e *InMemoryEnv) MakeInteger(v int64) emacs.Value {
	return integerValue{v: v}
}

func (e *InMemoryEnv) MakeFloat(v float64) emacs.Value {
	return floatValue{v: v}
}

func (e *InMemoryEnv) MakeString(s string) emacs.Value {
	return stringValue{contents: s}
}

func (e *InMemoryEnv) CopyStringContents(v emacs.Value, buf []byte, size *int) bool {
	if e.FailCopy || e.exit != emacs.FuncallExitReturn {
		return false
	}
	sv, ok := v.(stringValue)
	if !ok {
		e.NonLocalExitSignal(e.Intern("wrong-type-argument"), e.Intern("nil"))
		return false
	}
	if buf == nil {
		*size = len(sv.contents) + 1
		return true
	}
	if len(buf) < len(sv.contents)+1 {
		return false
	}
	copy(buf, sv.contents)
	buf[len(sv.contents)] = 0
	*size = len(sv.contents) + 1
	return true
}

func (e *InMemoryEnv) NonLocalExitCheck() emacs.FuncallExit {
	return e.exit
}

func (e *InMemoryEnv) NonLocalExitSignal(symbol, data emacs.Value) {
	e.Signaled = append(e.Signaled, Signal{Symbol: symbol, Data: data})
	e.exit = emacs.FuncallExitSignal
}

// ClearExit resets the pending non-local exit, the way the host does
// between evaluations.
func (e *InMemoryEnv) ClearExit() {
	e.exit = emacs.FuncallExitReturn
}

// Funcall resolves fn to a binding and invokes it. The host primitive
// fset is built in, so that module registration can run against this
// environment unchanged. Arity violations raise
// wrong-number-of-arguments, as the host's own call layer would.
func (e *InMemoryEnv) Funcall(fn emacs.Value, args ...emacs.Value) emacs.Value {
	if e.exit != emacs.FuncallExitReturn {
		return e.Intern("nil")
	}

	sym, ok := fn.(*symbolValue)
	if !ok {
		e.NonLocalExitSignal(e.Intern("invalid-function"), e.Intern("nil"))
		return e.Intern("nil")
	}

	if sym.name == "fset" && len(args) == 2 {
		name, nameOk := args[0].(*symbolValue)
		def, defOk := args[1].(*functionValue)
		if nameOk && defOk {
			e.bindings[name] = def
			return args[0]
		}
	}

	def, bound := e.bindings[sym]
	if !bound {
		e.NonLocalExitSignal(e.Intern("void-function"), sym)
		return e.Intern("nil")
	}
	if len(args) < def.minArity || (def.maxArity >= 0 && len(args) > def.maxArity) {
		e.NonLocalExitSignal(e.Intern("wrong-number-of-arguments"), e.MakeInteger(int64(len(args))))
		return e.Intern("nil")
	}
	return def.fn(e, args, def.data)
}

func (e *InMemoryEnv) MakeFunction(minArity, maxArity int, doc string, fn emacs.Callable, data interface{}) emacs.Value {
	return &functionValue{
		minArity: minArity,
		maxArity: maxArity,
		doc:      doc,
		fn:       fn,
		data:     data,
	}
}

// Call invokes the function bound under name, as a host script would.
func (e *InMemoryEnv) Call(name string, args ...emacs.Value) emacs.Value {
	return e.Funcall(e.Intern(name), args...)
}

// IsBound reports whether a function is bound under name.
func (e *InMemoryEnv) IsBound(name string) bool {
	sym, ok := e.symbols[name]
	if !ok {
		return false
	}
	_, bound := e.bindings[sym]
	return bound
}

// Doc returns the docstring registered for the function bound under
// name.
func (e *InMemoryEnv) Doc(name string) string {
	if sym, ok := e.symbols[name]; ok {
		if def, bound := e.bindings[sym]; bound {
			return def.doc
		}
	}
	return ""
}

// GoString unwraps a host string value created by this environment.
func (e *InMemoryEnv) GoString(v emacs.Value) (string, bool) {
	sv, ok := v.(stringValue)
	if !ok {
		return "", false
	}
	return sv.contents, true
}

// SignaledSymbol reports whether a condition with the given symbol name
// has been raised on this environment.
func (e *InMemoryEnv) SignaledSymbol(name string) bool {
	for _, s := range e.Signaled {
		if sym, ok := s.Symbol.(*symbolValue); ok && sym.name == name {
			return true
		}
	}
	return false
}

// InMemoryRuntime is an in-memory implementation of emacs.Runtime that
// can hand out an environment or fail with either ABI mismatch.
type InMemoryRuntime struct {
	Env emacs.Env
	Err error
}

func (r *InMemoryRuntime) Environment() (emacs.Env, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Env, nil
}
