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

// Alloc produces a byte buffer of the given size, or nil if the buffer
// cannot be obtained.
type Alloc func(size int) []byte

func defaultAlloc(size int) []byte {
	if size < 0 {
		return nil
	}
	return make([]byte, size)
}

var alloc Alloc = defaultAlloc

// SetAlloc replaces the allocator used by CopyString and returns the
// previous one. Embedding targets that manage their own memory can
// install a custom allocator; tests use it to inject allocation
// failures. Passing nil restores the default allocator.
func SetAlloc(fn Alloc) Alloc {
	prev := alloc
	if fn == nil {
		fn = defaultAlloc
	}
	alloc = fn
	return prev
}

// CopyString copies the contents of a host string value into a freshly
// allocated buffer and returns them as a Go string. The buffer is owned
// by this call alone and becomes garbage as soon as it returns, on
// every path.
//
// The copy runs the host's two-phase protocol: one query for the
// required size, one call to fill the buffer. If the buffer cannot be
// allocated, CopyString signals a memory-full condition with a nil
// payload on e and reports failure. If either phase of the protocol
// fails (v is not a string, or a non-local exit is already pending),
// CopyString reports failure without raising anything further.
func CopyString(e Env, v Value) (string, bool) {
	var size int
	if !e.CopyStringContents(v, nil, &size) {
		return "", false
	}

	buf := alloc(size)
	if buf == nil {
		e.NonLocalExitSignal(e.Intern("memory-full"), Nil(e))
		return "", false
	}

	if !e.CopyStringContents(v, buf, &size) {
		return "", false
	}

	// size accounts for the terminating NUL, which has no meaning on
	// the Go side.
	if size > 0 {
		buf = buf[:size-1]
	}
	return string(buf), true
}
