// Copyright 2026 The workspace-client Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package codegen

import (
	"strings"
	"unicode"
)

// initialisms are written in all caps inside Go identifiers.
var initialisms = map[string]bool{
	"API":   true,
	"DAG":   true,
	"DHIS2": true,
	"GCS":   true,
	"HTML":  true,
	"HTTP":  true,
	"ID":    true,
	"IASO":  true,
	"JSON":  true,
	"S3":    true,
	"SQL":   true,
	"URL":   true,
	"UUID":  true,
}

// splitWords splits a GraphQL name into words at underscores and case
// changes: "externalId" gives ["external", "Id"] and "DAGRun" gives
// ["DAG", "Run"]. Digits stick to the preceding word.
func splitWords(s string) []string {
	var words []string
	runes := []rune(s)
	start := 0
	flush := func(end int) {
		if end > start {
			words = append(words, string(runes[start:end]))
		}
	}
	for i, r := range runes {
		if r == '_' {
			flush(i)
			start = i + 1
			continue
		}
		if i == start || !unicode.IsUpper(r) {
			continue
		}
		prev := runes[i-1]
		nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
		if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
			flush(i)
			start = i
		}
	}
	flush(len(runes))
	return words
}

// exportName converts a GraphQL name to an exported Go identifier.
func exportName(s string) string {
	var sb strings.Builder
	for _, w := range splitWords(s) {
		upper := strings.ToUpper(w)
		if initialisms[upper] {
			sb.WriteString(upper)
			continue
		}
		runes := []rune(w)
		sb.WriteRune(unicode.ToUpper(runes[0]))
		sb.WriteString(string(runes[1:]))
	}
	if sb.Len() == 0 {
		return "X"
	}
	return sb.String()
}

// enumValueName converts an enum value to the suffix of its Go constant.
// SCREAMING_CASE values are title-cased word by word.
func enumValueName(v string) string {
	if strings.ToUpper(v) != v {
		return exportName(v)
	}
	var sb strings.Builder
	for _, w := range strings.Split(v, "_") {
		if w == "" {
			continue
		}
		if initialisms[w] {
			sb.WriteString(w)
			continue
		}
		sb.WriteString(w[:1])
		sb.WriteString(strings.ToLower(w[1:]))
	}
	if sb.Len() == 0 {
		return "X"
	}
	return sb.String()
}
