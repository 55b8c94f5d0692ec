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
)

var (
	format string

	tablesCmd = cmd.MustCommand(&cobra.Command{
		Use:   "tables",
		Short: "list the tables selected for scaffolding",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return cmdrun.RunListTables(c.Context(), rootCmd.MustGetConfig(), cmdrun.OutputFormat(format), os.Stdout)
		},
	})

	templatesCmd = cmd.MustCommand(&cobra.Command{
		Use:   "templates [set...]",
		Short: "list the template descriptors of the built-in sets or the configured descriptor file",
		RunE: func(c *cobra.Command, args []string) error {
			return cmdrun.RunListTemplates(rootCmd.MustGetConfig(), args, cmdrun.OutputFormat(format), os.Stdout)
		},
	})
)

func init() {
	for _, c := range []*cmd.Command{tablesCmd, templatesCmd} {
		c.Flags().StringVar(&format, "format", string(cmdrun.FormatNameText), "output format [text|json]")
	}
}
