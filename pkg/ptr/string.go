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

// Package ptr provides helpers to manage NUL-terminated strings
// allocated on the C heap, out of the scope of garbage collection.
// These are the buffers handed to the host across the module ABI.
package ptr

/*
#include <stdlib.h>
#include <string.h>
*/
import "C"
import (
	"reflect"
	"unsafe"
)

const cStringNullTerminator = byte(0)

// GoString creates a Go string aliasing a NUL-terminated C string.
// No copy happens: the returned string points to the same memory, so
// it becomes invalid once the C string is freed.
func GoString(charPtr unsafe.Pointer) string {
	if charPtr == nil {
		return ""
	}
	len := int(C.strlen((*C.char)(charPtr)))
	var res string
	(*reflect.StringHeader)(unsafe.Pointer(&res)).Data = uintptr(charPtr)
	(*reflect.StringHeader)(unsafe.Pointer(&res)).Len = len
	return res
}

// StringBuffer is a reusable NUL-terminated string buffer allocated on
// the C heap. It is exclusively owned by its creator and must be
// released with Free on every exit path; the garbage collector never
// touches it. The zero value is an empty buffer that allocates on
// first Write.
type StringBuffer struct {
	charPtr unsafe.Pointer
	size    int
}

// Write copies str into the buffer, NUL-terminated, growing it if the
// current allocation is too small.
func (s *StringBuffer) Write(str string) {
	if s.charPtr == nil || s.size < len(str)+1 {
		s.Free()
		s.size = len(str) + 1
		s.charPtr = unsafe.Pointer(C.malloc(C.size_t(s.size)))
	}

	var alias []byte
	(*reflect.SliceHeader)(unsafe.Pointer(&alias)).Data = uintptr(s.charPtr)
	(*reflect.SliceHeader)(unsafe.Pointer(&alias)).Len = s.size
	(*reflect.SliceHeader)(unsafe.Pointer(&alias)).Cap = s.size
	copy(alias, str)
	alias[len(str)] = cStringNullTerminator
}

// CharPtr returns the underlying C string, or nil if nothing has been
// written yet. The pointer stays valid until the next Write or Free.
func (s *StringBuffer) CharPtr() unsafe.Pointer {
	return s.charPtr
}

// String returns a Go string aliasing the buffer contents.
func (s *StringBuffer) String() string {
	return GoString(s.charPtr)
}

// Free deallocates the buffer. The zero value and already-freed
// buffers are no-ops.
func (s *StringBuffer) Free() {
	if s.charPtr != nil {
		C.free(s.charPtr)
		s.charPtr = nil
		s.size = 0
	}
}
