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

// Package native implements the host capability boundary over a live
// editor host, through the dynamic module ABI declared in the vendored
// emacs-module.h.
package native

// note: cgo does not support calling C function pointers, so we have
// to create static wrappers around every member of the host's
// struct-of-function-pointers to access them from Go code

/*
#cgo CFLAGS: -I${SRCDIR}

#include <stdlib.h>
#include "emacs-module.h"

extern emacs_value posacsModuleDispatch(emacs_env *env, ptrdiff_t nargs,
                                        emacs_value *args, void *data);

static int posacs_runtime_compatible(struct emacs_runtime *rt)
{
	return (size_t)rt->size >= sizeof (*rt);
}

static emacs_env *posacs_get_environment(struct emacs_runtime *rt)
{
	return rt->get_environment (rt);
}

static int posacs_env_compatible(emacs_env *env)
{
	return (size_t)env->size >= sizeof (*env);
}

static emacs_value posacs_intern(emacs_env *env, const char *name)
{
	return env->intern (env, name);
}

static emacs_value posacs_type_of(emacs_env *env, emacs_value v)
{
	return env->type_of (env, v);
}

static bool posacs_is_not_nil(emacs_env *env, emacs_value v)
{
	return env->is_not_nil (env, v);
}

static bool posacs_eq(emacs_env *env, emacs_value a, emacs_value b)
{
	return env->eq (env, a, b);
}

static emacs_value posacs_make_integer(emacs_env *env, intmax_t v)
{
	return env->make_integer (env, v);
}

static emacs_value posacs_make_float(emacs_env *env, double v)
{
	return env->make_float (env, v);
}

static emacs_value posacs_make_string(emacs_env *env, const char *s, ptrdiff_t len)
{
	return env->make_string (env, s, len);
}

static bool posacs_copy_string_contents(emacs_env *env, emacs_value v,
                                        char *buf, ptrdiff_t *size)
{
	return env->copy_string_contents (env, v, buf, size);
}

static int posacs_non_local_exit_check(emacs_env *env)
{
	return (int)env->non_local_exit_check (env);
}

static void posacs_non_local_exit_signal(emacs_env *env, emacs_value sym,
                                         emacs_value data)
{
	env->non_local_exit_signal (env, sym, data);
}

static emacs_value posacs_funcall(emacs_env *env, emacs_value fn,
                                  ptrdiff_t nargs, emacs_value *args)
{
	return env->funcall (env, fn, nargs, args);
}

static emacs_value posacs_make_function(emacs_env *env, ptrdiff_t min_arity,
                                        ptrdiff_t max_arity, const char *doc,
                                        uintptr_t data)
{
	return env->make_function (env, min_arity, max_arity,
	                           posacsModuleDispatch, doc, (void *)data);
}
*/
import "C"
import (
	"unsafe"

	"github.com/posacs/posacs-module-go/pkg/cgo"
	"github.com/posacs/posacs-module-go/pkg/emacs"
	"github.com/posacs/posacs-module-go/pkg/ptr"
)

// value wraps a host emacs_value for this embedding target. It is the
// concrete emacs.Value; only this package ever looks inside it.
type value struct {
	v C.emacs_value
}

// Runtime implements emacs.Runtime over the struct emacs_runtime
// handle the host passes to the module load entry point.
type Runtime struct {
	rt *C.struct_emacs_runtime
}

// NewRuntime wraps the raw runtime pointer received from the host.
func NewRuntime(rt unsafe.Pointer) *Runtime {
	return &Runtime{rt: (*C.struct_emacs_runtime)(rt)}
}

// Environment performs the two struct-size compatibility checks of the
// module ABI and, when both pass, returns the environment for the
// current module initialization.
func (r *Runtime) Environment() (emacs.Env, error) {
	if C.posacs_runtime_compatible(r.rt) == 0 {
		return nil, emacs.ErrRuntimeTooSmall
	}
	env := C.posacs_get_environment(r.rt)
	if C.posacs_env_compatible(env) == 0 {
		return nil, emacs.ErrEnvTooSmall
	}
	return &Env{env: env}, nil
}

// Env implements emacs.Env over a live emacs_env pointer. It is only
// valid for the duration of the host call that provided the pointer.
type Env struct {
	env *C.emacs_env
}

func (e *Env) Intern(name string) emacs.Value {
	var buf ptr.StringBuffer
	defer buf.Free()
	buf.Write(name)
	return value{v: C.posacs_intern(e.env, (*C.char)(buf.CharPtr()))}
}

func (e *Env) TypeOf(v emacs.Value) emacs.Value {
	return value{v: C.posacs_type_of(e.env, v.(value).v)}
}

func (e *Env) IsNotNil(v emacs.Value) bool {
	return bool(C.posacs_is_not_nil(e.env, v.(value).v))
}

func (e *Env) Eq(a, b emacs.Value) bool {
	return bool(C.posacs_eq(e.env, a.(value).v, b.(value).v))
}

func (e *Env) MakeInteger(v int64) emacs.Value {
	return value{v: C.posacs_make_integer(e.env, C.intmax_t(v))}
}

func (e *Env) MakeFloat(v float64) emacs.Value {
	return value{v: C.posacs_make_float(e.env, C.double(v))}
}

func (e *Env) MakeString(s string) emacs.Value {
	var buf ptr.StringBuffer
	defer buf.Free()
	buf.Write(s)
	return value{v: C.posacs_make_string(e.env, (*C.char)(buf.CharPtr()), C.ptrdiff_t(len(s)))}
}

func (e *Env) CopyStringContents(v emacs.Value, buf []byte, size *int) bool {
	var n C.ptrdiff_t
	var p *C.char
	if buf != nil {
		if len(buf) == 0 {
			return false
		}
		p = (*C.char)(unsafe.Pointer(&buf[0]))
		n = C.ptrdiff_t(len(buf))
	}
	ok := bool(C.posacs_copy_string_contents(e.env, v.(value).v, p, &n))
	*size = int(n)
	return ok
}

func (e *Env) NonLocalExitCheck() emacs.FuncallExit {
	return emacs.FuncallExit(C.posacs_non_local_exit_check(e.env))
}

func (e *Env) NonLocalExitSignal(symbol, data emacs.Value) {
	C.posacs_non_local_exit_signal(e.env, symbol.(value).v, data.(value).v)
}

func (e *Env) Funcall(fn emacs.Value, args ...emacs.Value) emacs.Value {
	var argp *C.emacs_value
	if len(args) > 0 {
		cargs := make([]C.emacs_value, len(args))
		for i, a := range args {
			cargs[i] = a.(value).v
		}
		argp = &cargs[0]
	}
	return value{v: C.posacs_funcall(e.env, fn.(value).v, C.ptrdiff_t(len(args)), argp)}
}

// MakeFunction wraps fn into a host function value. The callback state
// travels through a cgo.Handle attached as the host-side data pointer;
// the handle stays live for the rest of the process, since the host
// may call the function at any later time.
func (e *Env) MakeFunction(minArity, maxArity int, doc string, fn emacs.Callable, data interface{}) emacs.Value {
	var buf ptr.StringBuffer
	defer buf.Free()
	buf.Write(doc)
	h := cgo.NewHandle(&callback{fn: fn, data: data})
	return value{v: C.posacs_make_function(e.env,
		C.ptrdiff_t(minArity), C.ptrdiff_t(maxArity),
		(*C.char)(buf.CharPtr()), C.uintptr_t(h))}
}
