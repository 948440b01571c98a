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

// Posacs bindings to POSIX environment-variable functions, packaged as
// a dynamic module for the editor host.
//
// Build it as a shared object and load it from the host:
//
//	go build -buildmode=c-shared -o posacs-module.so .
//
// Loading the module binds posacs--getenv, posacs--setenv and
// posacs--unsetenv in the host's global namespace.
//
// Load-time options can be supplied as a JSON document in the
// POSACS_OPTIONS process environment variable, for example:
//
//	POSACS_OPTIONS='{"protected":["HOME","PATH"]}'
//
// which makes the module refuse to set or unset the listed variables.
package main

import (
	"github.com/posacs/posacs-module-go/pkg/emacs"
	"github.com/posacs/posacs-module-go/pkg/module"
	"github.com/posacs/posacs-module-go/pkg/module/symbols/initialize"
	"github.com/posacs/posacs-module-go/pkg/posix"
)

func init() {
	initialize.SetOnInit(func(rt emacs.Runtime) int32 {
		opts, err := module.LoadOptions()
		if err != nil {
			// malformed options never block the load
			opts = &module.Options{}
		}
		return module.Init(rt, posix.NewBindings(opts.Protected).Funcs())
	})
}

func main() {}
