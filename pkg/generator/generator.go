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

// Package generator orchestrates the chart-option pipeline: acquire the help
// listing, extract flag names, drop excluded ones, and render the deployment
// template blocks followed by the default configuration stanza.
package generator

import (
	"context"
	"io"
	"log/slog"

	"github.com/NVIDIA/chartops/pkg/defaults"
	"github.com/NVIDIA/chartops/pkg/errors"
	"github.com/NVIDIA/chartops/pkg/exclude"
	"github.com/NVIDIA/chartops/pkg/parser"
	"github.com/NVIDIA/chartops/pkg/render"
	"github.com/NVIDIA/chartops/pkg/source"
	"github.com/NVIDIA/chartops/pkg/transform"
)

// Generator runs the help-listing pipeline. Policy defaults to the canonical
// exclusion policy; a nil Defaults table renders every key commented out.
type Generator struct {
	Source   source.Source
	Policy   *exclude.Policy
	Defaults defaults.Table
}

// Run executes the pipeline and writes both artifacts to w, template blocks
// first. If the source fails, no output is produced.
func (g *Generator) Run(ctx context.Context, w io.Writer) error {
	if g.Source == nil {
		return errors.New(errors.ErrCodeInvalidRequest, "generator requires a source")
	}

	text, err := g.Source.Text(ctx)
	if err != nil {
		return err
	}

	policy := g.Policy
	if policy == nil {
		policy = exclude.Default()
	}

	opts := options(text, policy)
	slog.Debug("extracted chart options", slog.Int("count", len(opts)))

	if err := render.Templates(w, opts); err != nil {
		return err
	}
	return render.Values(w, opts, g.Defaults)
}

// options extracts, filters, and keys the surviving flags in extraction
// order. Distinct flag names collapsing to the same key are kept as-is; the
// collision is logged so the operator can rename one of the flags.
func options(text string, policy *exclude.Policy) []render.Option {
	seen := make(map[string]string)
	var opts []render.Option
	for _, name := range parser.Extract(text) {
		if policy.Excluded(name) {
			continue
		}
		key := transform.ConfigKey(name)
		if prev, ok := seen[key]; ok && prev != name {
			slog.Warn("configuration key collision",
				slog.String("key", key),
				slog.String("flag", name),
				slog.String("previous", prev))
		}
		seen[key] = name
		opts = append(opts, render.Option{Name: name, Key: key})
	}
	return opts
}
