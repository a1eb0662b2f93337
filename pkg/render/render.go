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

// Package render emits the two generated chart artifacts: the conditional
// deployment-template blocks and the default configuration stanza.
package render

import (
	"fmt"
	"io"

	"github.com/NVIDIA/chartops/pkg/defaults"
)

// Option pairs a flag long-name with its chart configuration key. The
// long-name is what ends up in the generated command-line argument; the key
// is used only in the templating-language variable references.
type Option struct {
	Name string
	Key  string
}

// Templates writes one conditional template block per option, in order:
//
//	{{- if .Values.configuration.<key> }}
//	- --<name>={{ .Values.configuration.<key> }}
//	{{- end }}
//
// Blocks are emitted back to back with no blank-line separators. The
// eight-space indentation matches the container args list in the chart's
// deployment template.
func Templates(w io.Writer, opts []Option) error {
	for _, o := range opts {
		_, err := fmt.Fprintf(w,
			"        {{- if .Values.configuration.%s }}\n"+
				"        - --%s={{ .Values.configuration.%s }}\n"+
				"        {{- end }}\n",
			o.Key, o.Name, o.Key)
		if err != nil {
			return err
		}
	}
	return nil
}

// Values writes the default configuration stanza: a "configuration:" header
// followed by one line per option. Options with a known default are active
// mapping entries; the rest are commented placeholders.
func Values(w io.Writer, opts []Option, table defaults.Table) error {
	if _, err := fmt.Fprintln(w, "configuration:"); err != nil {
		return err
	}
	for _, o := range opts {
		var err error
		if value, ok := table[o.Key]; ok {
			_, err = fmt.Fprintf(w, "  %s: %s\n", o.Key, value)
		} else {
			_, err = fmt.Fprintf(w, "# %s:\n", o.Key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
