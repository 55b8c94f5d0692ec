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

package cmdrun

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/olekukonko/tablewriter"

	"github.com/pighand/codebuilder/internal/config"
	"github.com/pighand/codebuilder/internal/template"
)

type templateResponse struct {
	Set           string `json:"set"`
	Name          string `json:"name"`
	TemplateFile  string `json:"template_file"`
	SaveFilePath  string `json:"save_file_path"`
	FileExtension string `json:"file_extension"`
	Example       string `json:"example"`
}

// RunListTemplates - prints the descriptors of the requested built-in sets. Without set names it
// prints the configured descriptor file, or every built-in set if there is none.
func RunListTemplates(cfg *config.Config, setNames []string, format OutputFormat, out io.Writer) error {
	if err := format.Validate(); err != nil {
		return err
	}

	names := setNames
	if len(names) == 0 && cfg.Template.Path != "" {
		names = []string{cfg.Template.Path}
	} else if len(names) == 0 {
		names = template.BuiltinNames()
	}

	var templates []templateResponse
	for _, name := range names {
		opt := *cfg
		if len(setNames) > 0 || cfg.Template.Path == "" {
			opt.Template.Path = ""
			opt.Template.Name = name
		}
		set, err := template.LoadSet(&opt)
		if err != nil {
			return fmt.Errorf("load templates: %w", err)
		}
		for _, d := range set.Descriptors {
			t := &template.Template{TemplateDescriptor: d}
			templates = append(templates, templateResponse{
				Set:           set.Name,
				Name:          d.Name,
				TemplateFile:  d.TemplateFile,
				SaveFilePath:  d.SaveFilePath,
				FileExtension: d.FileExtension,
				Example:       t.TargetPath("UserProfile"),
			})
		}
	}

	switch format {
	case FormatNameJson:
		if err := json.NewEncoder(out).Encode(templates); err != nil {
			return fmt.Errorf("error listing templates: %w", err)
		}
	case FormatNameText:
		listTemplatesText(templates, out)
	}
	return nil
}

func listTemplatesText(templates []templateResponse, out io.Writer) {
	data := make([][]string, 0, len(templates))
	for _, t := range templates {
		data = append(data, []string{
			t.Set,
			t.Name,
			filepath.Base(t.TemplateFile),
			t.SaveFilePath,
			t.FileExtension,
			t.Example,
		})
	}
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{
		"set",
		"name",
		"template file",
		"save path",
		"extension",
		"example",
	})
	table.AppendBulk(data)
	table.SetAutoMergeCellsByColumnIndex([]int{0})
	table.SetRowLine(true)
	table.Render()
}
