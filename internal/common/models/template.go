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

package models

// TemplateDescriptor - one template file and the place where its result is stored.
type TemplateDescriptor struct {
	// Name - used as the output file name suffix and the default SaveFilePath.
	Name string `json:"name" yaml:"name"`
	// TemplateFile - path to the template. For built-in sets it is a path inside the embedded FS.
	TemplateFile string `json:"templateFile" yaml:"templateFile"`
	// SaveFilePath - sub directory of the save root.
	SaveFilePath string `json:"saveFilePath,omitempty" yaml:"saveFilePath,omitempty"`
	// FileExtension - output file extension without the leading dot.
	FileExtension string `json:"fileExtension,omitempty" yaml:"fileExtension,omitempty"`
}

// WithDefaults - returns a copy with SaveFilePath and FileExtension filled in.
func (d TemplateDescriptor) WithDefaults(fileExtension string) TemplateDescriptor {
	if d.SaveFilePath == "" {
		d.SaveFilePath = d.Name
	}
	if d.FileExtension == "" {
		d.FileExtension = fileExtension
	}
	return d
}
