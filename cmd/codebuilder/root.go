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

package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pighand/codebuilder/internal/common/cmd"
	"github.com/pighand/codebuilder/internal/config"
)

var (
	Version string

	defaults = config.NewConfig()

	rootFlags = []cmd.Flag{
		{
			Name:         "log-format",
			Usage:        "Logging format [text|json]",
			ConfigPath:   "log.format",
			BindToConfig: true,
			Type:         cmd.FlagTypeString,
			Default:      defaults.Log.Format,
		},
		{
			Name: "log-level",
			Usage: fmt.Sprintf(
				"logging level [%s|%s|%s|%s]",
				zerolog.LevelDebugValue,
				zerolog.LevelInfoValue,
				zerolog.LevelWarnValue,
				zerolog.LevelErrorValue,
			),
			ConfigPath:   "log.level",
			BindToConfig: true,
			Type:         cmd.FlagTypeString,
			Default:      defaults.Log.Level,
		},
		{
			Name:         "host",
			Shorthand:    "h",
			Usage:        "database host",
			ConfigPath:   "connection.host",
			BindToConfig: true,
			Type:         cmd.FlagTypeString,
			Default:      defaults.Connection.Host,
		},
		{
			Name:         "port",
			Shorthand:    "p",
			Usage:        "database port",
			ConfigPath:   "connection.port",
			BindToConfig: true,
			Type:         cmd.FlagTypeInt,
			Default:      defaults.Connection.Port,
		},
		{
			Name:         "user",
			Shorthand:    "u",
			Usage:        "database user",
			ConfigPath:   "connection.user",
			BindToConfig: true,
			Type:         cmd.FlagTypeString,
			Default:      defaults.Connection.User,
		},
		{
			Name:         "password",
			Shorthand:    "x",
			Usage:        "database password, prefer CODEBUILDER_CONNECTION_PASSWORD",
			ConfigPath:   "connection.password",
			BindToConfig: true,
			Type:         cmd.FlagTypeString,
			Default:      "",
		},
		{
			Name:         "database",
			Shorthand:    "d",
			Usage:        "database (schema) name",
			ConfigPath:   "connection.database",
			BindToConfig: true,
			Type:         cmd.FlagTypeString,
			Default:      "",
		},
		{
			Name:         "timeout",
			Usage:        "connect timeout, e.g. 10s or 1m",
			ConfigPath:   "connection.timeout",
			BindToConfig: true,
			Type:         cmd.FlagTypeString,
			Default:      defaults.Connection.Timeout.String(),
		},
		{
			Name:         "tables",
			Shorthand:    "t",
			Usage:        "tables to scaffold, comma separated or repeated. All tables if empty",
			ConfigPath:   "tables",
			BindToConfig: true,
			Type:         cmd.FlagTypeStringSlice,
			Default:      []string{},
		},
		{
			Name:         "template",
			Shorthand:    "m",
			Usage:        "built-in template set name",
			ConfigPath:   "template.name",
			BindToConfig: true,
			Type:         cmd.FlagTypeString,
			Default:      defaults.Template.Name,
		},
		{
			Name:         "template-path",
			Shorthand:    "c",
			Usage:        "template descriptor file (json|yaml), takes precedence over --template",
			ConfigPath:   "template.path",
			BindToConfig: true,
			Type:         cmd.FlagTypeString,
			Default:      "",
		},
		{
			Name:         "file-extension",
			Usage:        "default extension of the generated files",
			ConfigPath:   "template.file_extension",
			BindToConfig: true,
			Type:         cmd.FlagTypeString,
			Default:      defaults.Template.FileExtension,
		},
		{
			Name:         "relation",
			Usage:        "read the relation table and expose relations to the templates",
			ConfigPath:   "relation.enabled",
			BindToConfig: true,
			Type:         cmd.FlagTypeBool,
			Default:      defaults.Relation.Enabled,
		},
		{
			Name:         "relation-table",
			Usage:        "name of the relation table",
			ConfigPath:   "relation.table",
			BindToConfig: true,
			Type:         cmd.FlagTypeString,
			Default:      defaults.Relation.Table,
		},
	}

	rootCmd = cmd.MustRootCommand(
		&cobra.Command{
			Use:   "codebuilder",
			Short: "Scaffold source files from MySQL table metadata and templates",
		},
		getVersion(Version),
		config.NewConfig(),
		rootFlags...,
	)
)

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(templatesCmd)

	rootCmd.InitDefaultCompletionCmd()
	rootCmd.InitDefaultHelpCmd()
	rootCmd.InitDefaultVersionFlag()

	for _, c := range rootCmd.Commands() {
		if c.Name() == "completion" || c.Name() == "help" {
			c.DisableFlagParsing = true
			for _, subc := range c.Commands() {
				subc.DisableFlagParsing = true
			}
		}
	}
}
