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

package introspect

import (
	"context"
	"database/sql"
	"fmt"
	"slices"

	"github.com/huandu/go-sqlbuilder"
	"github.com/rs/zerolog/log"

	"github.com/pighand/codebuilder/internal/common/models"
)

// Querier - read-only query interface. It is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type options interface {
	// GetDatabase - the schema that is introspected.
	GetDatabase() string
	// GetTableNames - explicitly requested tables. Empty means all tables of the schema.
	GetTableNames() []string
	// GetRelationTable - the relation table that must never be scaffolded itself.
	GetRelationTable() string
}

// Result - introspected tables and their columns.
type Result struct {
	Tables         []models.TableInfo
	TableColumnMap models.TableColumnMap
}

type Introspector struct {
	db  Querier
	opt options
}

func NewIntrospector(db Querier, opt options) *Introspector {
	return &Introspector{
		db:  db,
		opt: opt,
	}
}

// Introspect - collects the tables and their columns. Any query failure is wrapped into models.ErrQuery
// and must be considered fatal.
func (i *Introspector) Introspect(ctx context.Context) (Result, error) {
	tables, err := i.getTables(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("introspect tables: %w", err)
	}

	tableNames := make([]string, 0, len(tables))
	for _, t := range tables {
		tableNames = append(tableNames, t.TableName)
	}
	columns, err := i.Columns(ctx, tableNames)
	if err != nil {
		return Result{}, fmt.Errorf("introspect columns: %w", err)
	}
	for _, name := range tableNames {
		if _, ok := columns[name]; !ok {
			columns[name] = []models.ColumnInfo{}
		}
	}
	return Result{
		Tables:         tables,
		TableColumnMap: columns,
	}, nil
}

// Columns - returns the enriched columns of the provided tables grouped by table name. The columns
// are ordered by their ordinal position.
func (i *Introspector) Columns(ctx context.Context, tableNames []string) (models.TableColumnMap, error) {
	res := make(models.TableColumnMap, len(tableNames))
	if len(tableNames) == 0 {
		return res, nil
	}

	sb := sqlbuilder.MySQL.NewSelectBuilder()
	sb.Select(
		"c.TABLE_NAME",
		"c.COLUMN_NAME",
		"c.IS_NULLABLE",
		"c.DATA_TYPE",
		"c.COLUMN_TYPE",
		"c.CHARACTER_MAXIMUM_LENGTH",
		"c.COLUMN_KEY",
		"c.EXTRA",
		"c.COLUMN_COMMENT",
	).
		From(sb.As("information_schema.COLUMNS", "c")).
		Where(
			sb.Equal("c.TABLE_SCHEMA", i.opt.GetDatabase()),
			sb.In("c.TABLE_NAME", sqlbuilder.Flatten(tableNames)...),
		).
		OrderBy("c.TABLE_NAME", "c.ORDINAL_POSITION")
	query, args := sb.Build()

	rows, err := i.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("execute column introspection query: %w: %w", models.ErrQuery, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		var (
			raw                       rawColumn
			charMaxLength             sql.NullInt64
			columnKey, extra, comment sql.NullString
		)
		if err := rows.Scan(
			&raw.tableName, &raw.columnName, &raw.isNullable, &raw.dataType, &raw.columnType,
			&charMaxLength, &columnKey, &extra, &comment,
		); err != nil {
			return nil, fmt.Errorf("scan column introspection row: %w: %w", models.ErrQuery, err)
		}
		if charMaxLength.Valid {
			raw.characterMaximumLength = &charMaxLength.Int64
		}
		raw.columnKey = columnKey.String
		raw.extra = extra.String
		raw.columnComment = comment.String
		res[raw.tableName] = append(res[raw.tableName], newColumnInfo(raw))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate column introspection rows: %w: %w", models.ErrQuery, err)
	}
	return res, nil
}

// getTables - get the requested tables or all tables of the database except the relation table.
func (i *Introspector) getTables(ctx context.Context) ([]models.TableInfo, error) {
	tableNames := i.opt.GetTableNames()

	sb := sqlbuilder.MySQL.NewSelectBuilder()
	sb.Select("t.TABLE_NAME", "t.TABLE_COMMENT").
		From(sb.As("information_schema.TABLES", "t")).
		Where(sb.Equal("t.TABLE_SCHEMA", i.opt.GetDatabase()))
	if len(tableNames) > 0 {
		sb.Where(sb.In("t.TABLE_NAME", sqlbuilder.Flatten(tableNames)...))
	} else if relationTable := i.opt.GetRelationTable(); relationTable != "" {
		sb.Where(sb.NotEqual("t.TABLE_NAME", relationTable))
	}
	sb.OrderBy("t.TABLE_NAME")
	query, args := sb.Build()

	rows, err := i.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("execute table introspection query: %w: %w", models.ErrQuery, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var tables []models.TableInfo
	for rows.Next() {
		var (
			tableName string
			comment   sql.NullString
		)
		if err := rows.Scan(&tableName, &comment); err != nil {
			return nil, fmt.Errorf("scan table introspection row: %w: %w", models.ErrQuery, err)
		}
		tables = append(tables, models.NewTableInfo(tableName, comment.String))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate table introspection rows: %w: %w", models.ErrQuery, err)
	}

	for _, name := range tableNames {
		found := slices.ContainsFunc(tables, func(t models.TableInfo) bool {
			return t.TableName == name
		})
		if !found {
			log.Ctx(ctx).Warn().
				Str(models.MetaKeyTableName, name).
				Str("Database", i.opt.GetDatabase()).
				Msg("requested table is not found, skipping")
		}
	}
	return tables, nil
}
