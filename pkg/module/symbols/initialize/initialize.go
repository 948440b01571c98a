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

// Package initialize exports the emacs_module_init symbol, the entry
// point the host loader calls right after loading the shared object,
// and declares the license compatibility flag the loader checks before
// that. The module's main package registers its initialization
// callback with SetOnInit at program init time.
package initialize

/*
// The host loader refuses to load a module that does not declare this
// flag. Its presence is the entire contract; the value is never read.
int plugin_is_GPL_compatible;
*/
import "C"
import (
	"github.com/posacs/posacs-module-go/pkg/emacs"
)

// OnInitFn performs the module initialization against the runtime
// handle received from the host, and returns the code the load entry
// point hands back to the loader.
type OnInitFn func(rt emacs.Runtime) int32

var onInitFn OnInitFn

// SetOnInit sets the callback invoked by emacs_module_init.
func SetOnInit(fn OnInitFn) {
	if fn == nil {
		panic("posacs-module-go/module/symbols/initialize.SetOnInit: fn must not be nil")
	}
	onInitFn = fn
}
