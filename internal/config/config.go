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

package config

import (
	"fmt"
	"strings"

	"github.com/pighand/codebuilder/internal/common/models"
	"github.com/pighand/codebuilder/internal/mysql/relation"
)

const (
	ConflictAsk     = "ask"
	ConflictReplace = "replace"
	ConflictSkip    = "skip"
)

const (
	defaultTemplateName   = "default"
	defaultFileExtension  = "js"
	defaultSavePath       = "."
	defaultConflictPolicy = ConflictAsk
)

func NewConfig() *Config {
	return &Config{
		Connection: NewConnection(),
		Template: Template{
			Name:          defaultTemplateName,
			FileExtension: defaultFileExtension,
		},
		SavePath: defaultSavePath,
		Relation: Relation{
			Enabled: true,
			Table:   relation.DefaultRelationTable,
		},
		Conflict: defaultConflictPolicy,
		Log:      NewLog(),
	}
}

// Config - options of a single run. Params and ParamsPath are raw inputs, they are merged into
// the substitution context by the params package.
type Config struct {
	Connection Connection `mapstructure:"connection" yaml:"connection" json:"connection"`
	Tables     []string   `mapstructure:"tables" yaml:"tables" json:"tables,omitempty"`
	Template   Template   `mapstructure:"template" yaml:"template" json:"template"`
	// Params - inline custom parameters in the form k1=v1&k2=v2.
	Params string `mapstructure:"params" yaml:"params" json:"params,omitempty"`
	// ParamsPath - JSON or YAML file with custom parameters. Overrides Params.
	ParamsPath string   `mapstructure:"params_path" yaml:"params_path" json:"params_path,omitempty"`
	SavePath   string   `mapstructure:"save_path" yaml:"save_path" json:"save_path"`
	Relation   Relation `mapstructure:"relation" yaml:"relation" json:"relation"`
	Conflict   string   `mapstructure:"conflict" yaml:"conflict" json:"conflict"`
	DryRun     bool     `mapstructure:"dry_run" yaml:"dry_run" json:"dry_run,omitempty"`
	Log        Log      `mapstructure:"log" yaml:"log" json:"log"`
}

type Template struct {
	// Name - built-in template set.
	Name string `mapstructure:"name" yaml:"name" json:"name,omitempty"`
	// Path - template descriptor file. Takes precedence over Name.
	Path          string `mapstructure:"path" yaml:"path" json:"path,omitempty"`
	FileExtension string `mapstructure:"file_extension" yaml:"file_extension" json:"file_extension,omitempty"`
}

type Relation struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled" json:"enabled"`
	Table   string `mapstructure:"table" yaml:"table" json:"table,omitempty"`
}

// Normalize - trims and deduplicates table names. Every entry may hold several names
// separated by commas or spaces.
func (c *Config) Normalize() {
	seen := make(map[string]struct{}, len(c.Tables))
	tables := make([]string, 0, len(c.Tables))
	for _, item := range c.Tables {
		for _, name := range strings.FieldsFunc(item, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n'
		}) {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			tables = append(tables, name)
		}
	}
	c.Tables = tables
	c.Conflict = strings.ToLower(strings.TrimSpace(c.Conflict))
	c.Template.FileExtension = strings.TrimPrefix(c.Template.FileExtension, ".")
}

func (c *Config) Validate() error {
	if err := c.Connection.Validate(); err != nil {
		return err
	}
	if c.Template.Name == "" && c.Template.Path == "" {
		return fmt.Errorf("template.name or template.path must be set: %w", models.ErrConfig)
	}
	if c.SavePath == "" {
		return fmt.Errorf("save_path cannot be empty: %w", models.ErrConfig)
	}
	if c.Relation.Enabled && c.Relation.Table == "" {
		return fmt.Errorf("relation.table cannot be empty when relations are enabled: %w", models.ErrConfig)
	}
	switch c.Conflict {
	case ConflictAsk, ConflictReplace, ConflictSkip:
	default:
		return fmt.Errorf(
			"conflict policy \"%s\" is not supported, use %s|%s|%s: %w",
			c.Conflict, ConflictAsk, ConflictReplace, ConflictSkip, models.ErrConfig,
		)
	}
	return c.Log.Validate()
}

func (c *Config) GetDatabase() string {
	return c.Connection.Database
}

func (c *Config) GetTableNames() []string {
	return c.Tables
}

func (c *Config) GetRelationTable() string {
	return c.Relation.Table
}

func (c *Config) GetParams() string {
	return c.Params
}

func (c *Config) GetParamsPath() string {
	return c.ParamsPath
}

func (c *Config) GetSavePath() string {
	return c.SavePath
}

func (c *Config) GetTemplateName() string {
	return c.Template.Name
}

func (c *Config) GetTemplatePath() string {
	return c.Template.Path
}

func (c *Config) GetFileExtension() string {
	return c.Template.FileExtension
}
