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
	"embed"
	"slices"

	"github.com/pighand/codebuilder/internal/common/models"
)

const (
	BuiltinDefault       = "default"
	BuiltinPighandSpring = "pighand-spring"
)

//go:embed builtin
var builtinFS embed.FS

var builtinSets = map[string][]models.TemplateDescriptor{
	BuiltinDefault: {
		{Name: "model", TemplateFile: "builtin/default/model.tmpl", SaveFilePath: "model"},
		{Name: "service", TemplateFile: "builtin/default/service.tmpl", SaveFilePath: "service"},
		{Name: "controller", TemplateFile: "builtin/default/controller.tmpl", SaveFilePath: "controller"},
		{Name: "router", TemplateFile: "builtin/default/router.tmpl", SaveFilePath: "router"},
		{Name: "api", TemplateFile: "builtin/default/api.tmpl", FileExtension: "json"},
	},
	BuiltinPighandSpring: {
		{Name: "domain", TemplateFile: "builtin/pighand-spring/domain.tmpl", SaveFilePath: "domain", FileExtension: "java"},
		{Name: "VO", TemplateFile: "builtin/pighand-spring/vo.tmpl", SaveFilePath: "vo", FileExtension: "java"},
		{Name: "mapper", TemplateFile: "builtin/pighand-spring/mapper.tmpl", SaveFilePath: "mapper", FileExtension: "java"},
		{Name: "mapper", TemplateFile: "builtin/pighand-spring/xml.tmpl", FileExtension: "xml"},
		{Name: "service", TemplateFile: "builtin/pighand-spring/service.tmpl", SaveFilePath: "service", FileExtension: "java"},
		{Name: "serviceImpl", TemplateFile: "builtin/pighand-spring/service_impl.tmpl", SaveFilePath: "service/impl", FileExtension: "java"},
		{Name: "controller", TemplateFile: "builtin/pighand-spring/controller.tmpl", SaveFilePath: "controller", FileExtension: "java"},
	},
}

// BuiltinNames - returns the names of the built-in template sets in alphabetical order.
func BuiltinNames() []string {
	res := make([]string, 0, len(builtinSets))
	for name := range builtinSets {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}

// BuiltinDescriptors - returns a copy of the built-in set descriptors.
func BuiltinDescriptors(name string) ([]models.TemplateDescriptor, bool) {
	set, ok := builtinSets[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(set), true
}
