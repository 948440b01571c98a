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

package module

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionsDefaults(t *testing.T) {
	opts, err := parseOptions("")
	require.NoError(t, err)
	assert.Empty(t, opts.Protected)
}

func TestParseOptionsValid(t *testing.T) {
	opts, err := parseOptions(`{"protected": ["HOME", "PATH"]}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"HOME", "PATH"}, opts.Protected)

	opts, err = parseOptions(`{}`)
	require.NoError(t, err)
	assert.Empty(t, opts.Protected)
}

func TestParseOptionsInvalid(t *testing.T) {
	cases := map[string]string{
		"malformed json":   `{"protected": [`,
		"wrong item type":  `{"protected": [1, 2]}`,
		"wrong field type": `{"protected": "HOME"}`,
		"unknown field":    `{"sheltered": ["HOME"]}`,
		"not an object":    `["HOME"]`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseOptions(doc)
			assert.Error(t, err)
		})
	}
}

func TestLoadOptionsFromEnvironment(t *testing.T) {
	prev, had := os.LookupEnv(OptionsEnvVar)
	t.Cleanup(func() {
		if had {
			os.Setenv(OptionsEnvVar, prev)
		} else {
			os.Unsetenv(OptionsEnvVar)
		}
	})

	require.NoError(t, os.Setenv(OptionsEnvVar, `{"protected": ["TERM"]}`))
	opts, err := LoadOptions()
	require.NoError(t, err)
	assert.Equal(t, []string{"TERM"}, opts.Protected)

	require.NoError(t, os.Setenv(OptionsEnvVar, `not json`))
	_, err = LoadOptions()
	assert.Error(t, err)
}
