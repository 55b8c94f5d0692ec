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

package template

import (
	"maps"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/go-openapi/inflect"

	"github.com/pighand/codebuilder/internal/mysql/reserved"
	"github.com/pighand/codebuilder/internal/naming"
)

// FuncMap - sprig functions plus the naming helpers. Own functions override sprig ones.
func FuncMap() template.FuncMap {
	functions := template.FuncMap{
		"camel":      naming.ToCamel,
		"fileName":   naming.ToFileName,
		"plural":     inflect.Pluralize,
		"singular":   inflect.Singularize,
		"underscore": inflect.Underscore,
		"quoteIdent": quoteIdent,
		"isReserved": reserved.IsReservedWord,
		"javaPkg":    javaPkg,
	}

	tm := make(template.FuncMap)
	maps.Copy(tm, sprig.TxtFuncMap())
	maps.Copy(tm, functions)
	return tm
}

// quoteIdent - wraps MySQL reserved words into backticks.
func quoteIdent(identifier string) string {
	if reserved.IsReservedWord(identifier) {
		return "`" + identifier + "`"
	}
	return identifier
}

// javaPkg - joins package segments with dots skipping the empty ones, so an empty base package
// yields "domain" instead of ".domain".
func javaPkg(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s = strings.Trim(s, ". "); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ".")
}
