// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package defaults holds the default-value table surfaced in the generated
// configuration stanza.
package defaults

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/chartops/pkg/errors"
)

// Table maps a chart configuration key to the literal default rendered in
// the generated configuration stanza. Values are emitted verbatim as bare
// tokens; numeric defaults are stored in their bare-number form.
type Table map[string]string

// Builtin returns the default-value table for the dns-controller-manager
// chart. Keys not derived from any flag (persistent cache sizing) are chart
// values maintained alongside the flag-derived ones.
func Builtin() Table {
	return Table{
		"controllers":                        "all",
		"persistentCache":                    "false",
		"persistentCacheStorageSize":         "1Gi",
		"persistentCacheStorageSizeAlicloud": "20Gi",
		"serverPortHttp":                     "8080",
		"ttl":                                "120",
	}
}

// Load reads a default-value table from a YAML mapping file. Scalar values
// of any type are rendered to their literal string form.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("failed to read defaults file %s", path), err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("failed to parse defaults file %s", path), err)
	}
	table := make(Table, len(raw))
	for key, value := range raw {
		table[key] = fmt.Sprintf("%v", value)
	}
	return table, nil
}
