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
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/pighand/codebuilder/internal/common/models"
	"github.com/pighand/codebuilder/internal/naming"
)

// Template - compiled template of a descriptor.
type Template struct {
	models.TemplateDescriptor
	tmpl *template.Template
}

// Compile - reads and parses every template of the set. A missing map key in the context is
// an execution error.
func Compile(set *Set) ([]*Template, error) {
	res := make([]*Template, 0, len(set.Descriptors))
	funcs := FuncMap()
	for _, d := range set.Descriptors {
		data, err := set.readFile(d.TemplateFile)
		if err != nil {
			return nil, fmt.Errorf("read template \"%s\": %w: %w", d.TemplateFile, models.ErrTemplateLoad, err)
		}
		tmpl, err := template.New(d.Name).
			Funcs(funcs).
			Option("missingkey=error").
			Parse(string(data))
		if err != nil {
			return nil, fmt.Errorf("parse template \"%s\": %w: %w", d.TemplateFile, models.ErrRender, err)
		}
		res = append(res, &Template{
			TemplateDescriptor: d,
			tmpl:               tmpl,
		})
	}
	return res, nil
}

// Render - executes the template against the table context.
func (t *Template) Render(data any) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := t.tmpl.Execute(buf, data); err != nil {
		return nil, fmt.Errorf("render template \"%s\": %w: %w", t.TemplateFile, models.ErrRender, err)
	}
	return buf.Bytes(), nil
}

// FileName - returns <tableFileName><FileName(name)>.<ext>, e.g. UserProfileModel.js.
func (t *Template) FileName(tableFileName string) string {
	return fmt.Sprintf("%s%s.%s", tableFileName, naming.ToFileName(t.Name), t.FileExtension)
}

// TargetPath - returns the output path relative to the save root.
func (t *Template) TargetPath(tableFileName string) string {
	return filepath.Join(filepath.FromSlash(t.SaveFilePath), t.FileName(tableFileName))
}
