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

// Nil returns the host's nil value.
func Nil(e Env) Value {
	return e.Intern("nil")
}

// T returns the host's canonical truth value.
func T(e Env) Value {
	return e.Intern("t")
}

// Bool converts a Go boolean to the host's t/nil convention.
func Bool(e Env, v bool) Value {
	if v {
		return T(e)
	}
	return Nil(e)
}

// IsNil reports whether v is the host's nil.
func IsNil(e Env, v Value) bool {
	return !e.IsNotNil(v)
}

func typeIs(e Env, v Value, name string) bool {
	return e.Eq(e.TypeOf(v), e.Intern(name))
}

// IsString reports whether v is a host string.
func IsString(e Env, v Value) bool {
	return typeIs(e, v, "string")
}

// IsInteger reports whether v is a host integer.
func IsInteger(e Env, v Value) bool {
	return typeIs(e, v, "integer")
}

// IsFloat reports whether v is a host float.
func IsFloat(e Env, v Value) bool {
	return typeIs(e, v, "float")
}
