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
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

// OptionsEnvVar is the process environment variable holding the
// optional JSON options document read at module load time.
const OptionsEnvVar = "POSACS_OPTIONS"

const optionsSchema = `{
	"$schema": "http://json-schema.org/draft-04/schema#",
	"type": "object",
	"properties": {
		"protected": {
			"type": "array",
			"items": {
				"type": "string"
			}
		}
	},
	"additionalProperties": false
}`

// Options are the load-time options of the module. The zero value is
// the default configuration, which reproduces the behavior of a module
// with no options at all.
type Options struct {
	// Protected lists environment variable names the module refuses to
	// set or unset on behalf of host scripts.
	Protected []string `json:"protected"`
}

// LoadOptions reads the options document from OptionsEnvVar. An unset
// or empty variable yields the defaults; a document that is not valid
// JSON or does not conform to the options schema yields an error, and
// the caller decides whether to fall back to the defaults.
func LoadOptions() (*Options, error) {
	return parseOptions(os.Getenv(OptionsEnvVar))
}

func parseOptions(doc string) (*Options, error) {
	opts := &Options{}
	if doc == "" {
		return opts, nil
	}

	res, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(optionsSchema),
		gojsonschema.NewStringLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("options: %w", err)
	}
	if !res.Valid() {
		return nil, fmt.Errorf("options: invalid document: %s", res.Errors()[0])
	}

	if err := json.Unmarshal([]byte(doc), opts); err != nil {
		return nil, fmt.Errorf("options: %w", err)
	}
	return opts, nil
}
