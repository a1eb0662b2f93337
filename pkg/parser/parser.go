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

// Package parser extracts flag long-names from a command-line help listing.
package parser

import (
	"regexp"
	"strings"
)

// flagLine matches a line that declares a flag: leading whitespace, an
// optional short-flag token ("-c,"), then the long name followed by
// whitespace. Blank lines and wrapped help-text continuations do not match.
var flagLine = regexp.MustCompile(`^\s+(?:-[^-]+)?--(\S+)\s`)

// Extract returns the long name of every flag declared in the given help
// listing, in the order the declarations appear. Lines that do not declare
// a flag are skipped silently.
func Extract(text string) []string {
	var names []string
	for _, line := range strings.Split(text, "\n") {
		m := flagLine.FindStringSubmatch(line)
		if m == nil || m[1] == "" {
			continue
		}
		names = append(names, m[1])
	}
	return names
}
