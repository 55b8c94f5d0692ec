// Copyright 2025 Greenmask
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

// Package naming converts snake_case database identifiers into the casings used by generated code.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ToCamel - converts snake_case into camelCase. The first segment is kept as is and every following
// non-empty segment gets its first character upper-cased. Empty segments produced by consecutive
// underscores are skipped. A name without underscores is returned unchanged.
func ToCamel(name string) string {
	if !strings.Contains(name, "_") {
		return name
	}
	var sb strings.Builder
	sb.Grow(len(name))
	for _, segment := range strings.Split(name, "_") {
		word := strings.TrimSpace(segment)
		if word == "" {
			continue
		}
		if sb.Len() == 0 {
			sb.WriteString(word)
			continue
		}
		sb.WriteString(upperFirst(word))
	}
	return sb.String()
}

// ToFileName - converts snake_case into PascalCase that is used as a generated file name prefix.
func ToFileName(name string) string {
	return upperFirst(ToCamel(name))
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
