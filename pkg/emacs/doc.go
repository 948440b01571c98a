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

// Package emacs models the boundary between a dynamic module and its
// embedding editor host as a small capability interface.
//
// The host hands the module an Env, a struct-of-function-pointers in
// the native ABI, through which every host value is created, inspected
// and copied. Module code written against Env runs unchanged on any
// embedding target: the cgo-backed target in pkg/emacs/native talks to
// a live host, while pkg/emacs/emacstest provides a pure-Go target for
// tests.
package emacs
