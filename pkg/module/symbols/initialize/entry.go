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

package initialize

/*
#cgo CFLAGS: -I${SRCDIR}/../../../emacs/native

#include "emacs-module.h"
*/
import "C"
import (
	"unsafe"

	"github.com/posacs/posacs-module-go/pkg/emacs/native"
)

//export emacs_module_init
func emacs_module_init(rt *C.struct_emacs_runtime) C.int {
	if onInitFn == nil {
		panic("posacs-module-go/module/symbols/initialize: SetOnInit must be called")
	}
	return C.int(onInitFn(native.NewRuntime(unsafe.Pointer(rt))))
}
