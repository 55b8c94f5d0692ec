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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pighand/codebuilder/internal/common/models"
)

type options interface {
	GetTemplateName() string
	GetTemplatePath() string
	GetFileExtension() string
}

// Set - ordered template descriptors and the place their template files are read from.
type Set struct {
	Name        string
	Descriptors []models.TemplateDescriptor
	readFile    func(name string) ([]byte, error)
}

// LoadSet - loads the descriptor file if the path is set, otherwise the built-in set by name.
// Relative template files of a descriptor file are resolved against the directory of that file.
func LoadSet(opt options) (*Set, error) {
	var (
		set *Set
		err error
	)
	if opt.GetTemplatePath() != "" {
		set, err = loadDescriptorFile(opt.GetTemplatePath())
	} else {
		set, err = loadBuiltin(opt.GetTemplateName())
	}
	if err != nil {
		return nil, err
	}

	for i := range set.Descriptors {
		if err := validateDescriptor(set.Descriptors[i]); err != nil {
			return nil, fmt.Errorf("descriptor %d of \"%s\": %w", i, set.Name, err)
		}
		set.Descriptors[i] = set.Descriptors[i].WithDefaults(opt.GetFileExtension())
	}
	return set, nil
}

func loadBuiltin(name string) (*Set, error) {
	descriptors, ok := BuiltinDescriptors(name)
	if !ok {
		return nil, fmt.Errorf(
			"unknown built-in template set \"%s\", available %s: %w",
			name, strings.Join(BuiltinNames(), "|"), models.ErrTemplateLoad,
		)
	}
	return &Set{
		Name:        name,
		Descriptors: descriptors,
		readFile:    builtinFS.ReadFile,
	}, nil
}

func loadDescriptorFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template descriptors: %w: %w", models.ErrTemplateLoad, err)
	}
	var descriptors []models.TemplateDescriptor
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &descriptors)
	default:
		err = json.Unmarshal(data, &descriptors)
	}
	if err != nil {
		return nil, fmt.Errorf("decode template descriptors \"%s\": %w: %w", path, models.ErrTemplateLoad, err)
	}
	if len(descriptors) == 0 {
		return nil, fmt.Errorf("template descriptors \"%s\" are empty: %w", path, models.ErrTemplateLoad)
	}

	baseDir := filepath.Dir(path)
	return &Set{
		Name:        path,
		Descriptors: descriptors,
		readFile: func(name string) ([]byte, error) {
			if !filepath.IsAbs(name) {
				name = filepath.Join(baseDir, name)
			}
			return os.ReadFile(name)
		},
	}, nil
}

func validateDescriptor(d models.TemplateDescriptor) error {
	if d.Name == "" {
		return fmt.Errorf("name cannot be empty: %w", models.ErrTemplateLoad)
	}
	if d.TemplateFile == "" {
		return fmt.Errorf("templateFile of \"%s\" cannot be empty: %w", d.Name, models.ErrTemplateLoad)
	}
	return nil
}
