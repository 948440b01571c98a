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

package emacs

import "errors"

// FuncallExit describes the state of the host's pending non-local exit,
// mirroring the enum emacs_funcall_exit values of the module API.
type FuncallExit int

const (
	// FuncallExitReturn means the last host call returned normally.
	FuncallExitReturn FuncallExit = 0
	// FuncallExitSignal means an error condition has been signaled
	// and is waiting to unwind the current evaluation.
	FuncallExitSignal FuncallExit = 1
	// FuncallExitThrow means a tag has been thrown.
	FuncallExitThrow FuncallExit = 2
)

// Value is an opaque handle to a host value (string, integer, float,
// symbol, nil, t, function). The host owns the memory behind a Value;
// a Value must only be interpreted by the Env that produced it, and
// must not be retained past the host call that handed it over.
type Value interface{}

// Callable is the Go signature of a function exposed to the host.
// args carries exactly the values the host passed for the call, and
// data is the opaque payload that was registered together with the
// function. A Callable must return a Value obtained from e.
type Callable func(e Env, args []Value, data interface{}) Value

// Env is the capability surface the host hands to a module for the
// duration of a single call. It is the abstract counterpart of the
// emacs_env struct-of-function-pointers: every concrete embedding
// target (the native cgo target, the in-memory test target) implements
// it, and module code depends on nothing else.
//
// An Env is only valid within the host call that provided it and must
// not be used from other goroutines.
type Env interface {
	// Intern returns the canonical symbol with the given name.
	Intern(name string) Value

	// TypeOf returns a symbol describing the type of v, following the
	// host's type-of convention (e.g. the symbols string, integer, float).
	TypeOf(v Value) Value

	// IsNotNil reports whether v is anything other than the host's nil.
	IsNotNil(v Value) bool

	// Eq reports host object identity of a and b.
	Eq(a, b Value) bool

	MakeInteger(v int64) Value
	MakeFloat(v float64) Value
	MakeString(s string) Value

	// CopyStringContents is the host's two-phase string copy-out
	// primitive. With a nil buf it stores in *size the number of bytes
	// required to hold the contents of v plus a terminating NUL. With a
	// non-nil buf it fills buf and stores the number of bytes written in
	// *size. It reports false if the copy protocol fails, e.g. because v
	// is not a string or a non-local exit is already pending.
	CopyStringContents(v Value, buf []byte, size *int) bool

	// NonLocalExitCheck reports whether an error or throw is pending on
	// this environment.
	NonLocalExitCheck() FuncallExit

	// NonLocalExitSignal raises an error condition named by the given
	// symbol, with the given data payload, unwinding the host's current
	// evaluation once control returns to it.
	NonLocalExitSignal(symbol, data Value)

	// Funcall invokes the host function designated by fn with the given
	// arguments and returns its result.
	Funcall(fn Value, args ...Value) Value

	// MakeFunction wraps fn into a host function value accepting between
	// minArity and maxArity arguments, with the given docstring. data is
	// passed verbatim to every invocation of fn.
	MakeFunction(minArity, maxArity int, doc string, fn Callable, data interface{}) Value
}

// The two possible ABI incompatibilities a host can expose at module
// load time. A module compiled against a newer module API than the
// running host provides must refuse to load rather than crash.
var (
	// ErrRuntimeTooSmall reports that the host's runtime structure is
	// smaller than the one this module was compiled against.
	ErrRuntimeTooSmall = errors.New("emacs: runtime structure smaller than expected")

	// ErrEnvTooSmall reports that the host's environment structure is
	// smaller than the one this module was compiled against.
	ErrEnvTooSmall = errors.New("emacs: environment structure smaller than expected")
)

// Runtime is the handle the host passes to the module load entry point.
type Runtime interface {
	// Environment verifies binary compatibility with the host and
	// returns the environment for the current module initialization.
	// It returns ErrRuntimeTooSmall or ErrEnvTooSmall if the host is
	// older than the module build.
	Environment() (Env, error)
}
