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

// Package exclude decides which flag long-names are suppressed from the
// generated chart configuration.
package exclude

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/chartops/pkg/errors"
)

// Policy is an ordered set of exclusion rules. A flag long-name matching any
// rule is dropped from both generated artifacts.
type Policy struct {
	exact    map[string]struct{}
	patterns []*regexp.Regexp
}

// The canonical policy: core identity flags by exact name, plus patterns for
// per-deployment operational flags (cache locations, internal remote-access
// wiring) that must never be chart-configurable regardless of provider.
var (
	defaultExact = []string{
		"name",
		"help",
		"identifier",
		"dry-run",
	}
	defaultPatterns = []string{
		`cache-dir$`,
		`blocked-zone$`,
		`remote-access-.+`,
	}
)

// New builds a policy from exact names and regular expression patterns.
func New(exact []string, patterns []string) (*Policy, error) {
	p := &Policy{
		exact: make(map[string]struct{}, len(exact)),
	}
	for _, name := range exact {
		p.exact[name] = struct{}{}
	}
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("invalid exclusion pattern %q", pattern), err)
		}
		p.patterns = append(p.patterns, re)
	}
	return p, nil
}

// Default returns the canonical exclusion policy.
func Default() *Policy {
	p, err := New(defaultExact, defaultPatterns)
	if err != nil {
		// the canonical patterns are static
		panic(err)
	}
	return p
}

// Excluded reports whether the given flag long-name matches any rule.
func (p *Policy) Excluded(name string) bool {
	if _, ok := p.exact[name]; ok {
		return true
	}
	for _, re := range p.patterns {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// rulesFile is the on-disk YAML shape of an exclusion policy.
type rulesFile struct {
	Exact    []string `yaml:"exact"`
	Patterns []string `yaml:"patterns"`
}

// Load reads a complete exclusion policy from a YAML rules file. The file
// replaces the canonical policy rather than extending it.
func Load(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("failed to read rules file %s", path), err)
	}
	var rules rulesFile
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("failed to parse rules file %s", path), err)
	}
	return New(rules.Exact, rules.Patterns)
}
