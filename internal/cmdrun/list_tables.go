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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/pighand/codebuilder/internal/config"
	"github.com/pighand/codebuilder/internal/mysql/introspect"
	"github.com/pighand/codebuilder/internal/naming"
)

type tableResponse struct {
	Name        string   `json:"name"`
	FileName    string   `json:"file_name"`
	Comment     string   `json:"comment,omitempty"`
	Columns     int      `json:"columns"`
	PrimaryKeys []string `json:"primary_keys,omitempty"`
}

// RunListTables - prints the tables that would be scaffolded with the current selection.
func RunListTables(ctx context.Context, cfg *config.Config, format OutputFormat, out io.Writer) error {
	if err := format.Validate(); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	db, err := openDB(ctx, cfg.Connection)
	if err != nil {
		return err
	}
	defer closeDB(ctx, db)
	return ListTables(ctx, introspect.NewIntrospector(db, cfg), format, out)
}

func ListTables(ctx context.Context, in introspector, format OutputFormat, out io.Writer) error {
	res, err := in.Introspect(ctx)
	if err != nil {
		return fmt.Errorf("introspect: %w", err)
	}
	tables := make([]tableResponse, 0, len(res.Tables))
	for _, t := range res.Tables {
		var pks []string
		for _, c := range res.TableColumnMap.PrimaryKeys(t.TableName) {
			pks = append(pks, c.ColumnName)
		}
		tables = append(tables, tableResponse{
			Name:        t.TableName,
			FileName:    naming.ToFileName(t.TableName),
			Comment:     t.TableComment,
			Columns:     len(res.TableColumnMap[t.TableName]),
			PrimaryKeys: pks,
		})
	}

	switch format {
	case FormatNameJson:
		if err := json.NewEncoder(out).Encode(tables); err != nil {
			return fmt.Errorf("error listing tables: %w", err)
		}
	case FormatNameText:
		listTablesText(tables, out)
	}
	return nil
}

func listTablesText(tables []tableResponse, out io.Writer) {
	data := make([][]string, 0, len(tables))
	for _, t := range tables {
		data = append(data, []string{
			t.Name,
			t.FileName,
			t.Comment,
			fmt.Sprintf("%d", t.Columns),
			strings.Join(t.PrimaryKeys, ", "),
		})
	}
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{
		"name",
		"file name",
		"comment",
		"columns",
		"primary key",
	})
	table.AppendBulk(data)
	table.Render()
}
