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
	"os"

	"github.com/spf13/cobra"

	"github.com/pighand/codebuilder/internal/cmdrun"
	"github.com/pighand/codebuilder/internal/common/cmd"
	"github.com/pighand/codebuilder/internal/config"
)

var (
	generateFlags = []cmd.Flag{
		{
			Name:         "params",
			Shorthand:    "n",
			Usage:        "custom template parameters, e.g. author=me&projectName=demo",
			ConfigPath:   "params",
			BindToConfig: true,
			Type:         cmd.FlagTypeString,
			Default:      "",
		},
		{
			Name:         "params-path",
			Shorthand:    "s",
			Usage:        "custom template parameters file (json|yaml), overrides --params",
			ConfigPath:   "params_path",
			BindToConfig: true,
			Type:         cmd.FlagTypeString,
			Default:      "",
		},
		{
			Name:         "save-path",
			Shorthand:    "r",
			Usage:        "root directory of the generated files",
			ConfigPath:   "save_path",
			BindToConfig: true,
			Type:         cmd.FlagTypeString,
			Default:      defaults.SavePath,
		},
		{
			Name:         "conflict",
			Usage:        "what to do with existing files [ask|replace|skip]",
			ConfigPath:   "conflict",
			BindToConfig: true,
			Type:         cmd.FlagTypeString,
			Default:      config.ConflictAsk,
		},
		{
			Name:         "dry-run",
			Usage:        "render the templates without writing files",
			ConfigPath:   "dry_run",
			BindToConfig: true,
			Type:         cmd.FlagTypeBool,
			Default:      false,
		},
	}

	generateCmd = cmd.MustCommand(&cobra.Command{
		Use:   "generate",
		Short: "render the templates for every selected table and write the files",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return cmdrun.RunGenerate(c.Context(), rootCmd.MustGetConfig(), os.Stdin, os.Stdout)
		},
	}, generateFlags...)
)
