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

package native

/*
#include "emacs-module.h"
*/
import "C"
import (
	"unsafe"

	"github.com/posacs/posacs-module-go/pkg/cgo"
	"github.com/posacs/posacs-module-go/pkg/emacs"
)

// callback bundles a registered Callable with its opaque payload; a
// cgo.Handle to it is what the host holds as the function data pointer.
type callback struct {
	fn   emacs.Callable
	data interface{}
}

// posacsModuleDispatch is the single C-visible trampoline behind every
// function this module exposes. The host calls it with the handle it
// was given at registration time; the handle resolves back to the Go
// callback.
//
//export posacsModuleDispatch
func posacsModuleDispatch(env *C.emacs_env, nargs C.ptrdiff_t, args *C.emacs_value, data unsafe.Pointer) C.emacs_value {
	e := &Env{env: env}
	cb := cgo.Handle(uintptr(data)).Value().(*callback)

	goArgs := make([]emacs.Value, int(nargs))
	for i := range goArgs {
		p := unsafe.Pointer(uintptr(unsafe.Pointer(args)) + uintptr(i)*unsafe.Sizeof(*args))
		goArgs[i] = value{v: *(*C.emacs_value)(p)}
	}

	ret := cb.fn(e, goArgs, cb.data)
	rv, ok := ret.(value)
	if !ok {
		// a Callable must return a value produced by its Env; fall
		// back to nil rather than hand the host a foreign handle
		rv = e.Intern("nil").(value)
	}
	return rv.v
}
