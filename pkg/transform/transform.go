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

// Package transform converts flag long-names into the camel-case identifiers
// used as chart configuration keys.
package transform

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// providers lists the known multi-part provider/source identifiers. The
// acronym replacement table is derived from this list: entries with a
// trailing "dns" segment get their DNS casing corrected, the rest need no
// replacement. New providers are appended here.
var providers = []string{
	"alicloud-dns",
	"aws-route53",
	"azure-dns",
	"google-clouddns",
	"openstack-designate",
	"cloudflare-dns",
	"infoblox-dns",
	"ingress-dns",
	"service-dns",
	"dnsentry-source",
}

type replacement struct {
	from string
	to   string
}

// acronyms is the ordered replacement table applied after generic
// capitalization. Each entry maps the generically-capitalized rendering of a
// provider name to its canonical form. Replacements are idempotent: no
// entry's output contains another entry's input.
var acronyms = buildAcronyms(providers)

func buildAcronyms(names []string) []replacement {
	reps := make([]replacement, 0, len(names))
	for _, n := range names {
		from := lowerFirst(joinSegments(n))
		if !strings.HasSuffix(strings.ToLower(from), "dns") {
			continue
		}
		reps = append(reps, replacement{
			from: from,
			to:   from[:len(from)-3] + "DNS",
		})
	}
	return reps
}

// ConfigKey converts a dash/dot-delimited flag long-name into the camel-case
// chart configuration key: every segment is capitalized, the segments are
// concatenated, the first character is lowercased, and known provider
// acronyms are re-cased. The name must be non-empty.
func ConfigKey(name string) string {
	return CorrectAcronyms(lowerFirst(joinSegments(name)))
}

// CorrectAcronyms applies the provider acronym replacement table to an
// already camel-cased key. Applying it to a corrected key is a no-op.
func CorrectAcronyms(key string) string {
	for _, r := range acronyms {
		key = strings.ReplaceAll(key, r.from, r.to)
	}
	return key
}

func joinSegments(name string) string {
	caser := cases.Title(language.English)
	var b strings.Builder
	for _, seg := range strings.FieldsFunc(name, isDelimiter) {
		b.WriteString(caser.String(seg))
	}
	return b.String()
}

func isDelimiter(r rune) bool {
	return r == '-' || r == '.'
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
