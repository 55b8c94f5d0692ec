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

import "errors"

var (
	// ErrConfig - required input is missing or contradictory. The run does not start.
	ErrConfig = errors.New("configuration error")
	// ErrQuery - table or column introspection query failed. Fatal.
	ErrQuery = errors.New("query error")
	// ErrRelationLookup - relation table cannot be read. Never fatal, relations are optional.
	ErrRelationLookup = errors.New("relation lookup error")
	// ErrTemplateLoad - template descriptors or template files cannot be loaded.
	ErrTemplateLoad = errors.New("template load error")
	// ErrRender - template cannot be parsed or executed against the table context.
	ErrRender = errors.New("render error")
	// ErrFileSystem - directory creation or file write failed.
	ErrFileSystem = errors.New("file system error")
)
