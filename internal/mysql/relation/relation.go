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

// Package relation builds the bidirectional relation map from the auxiliary relation table.
//
// The relation table is optional. When it is absent, unreadable or contains a broken row the builder
// returns an empty map and the generation continues without relations.
package relation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/huandu/go-sqlbuilder"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"

	"github.com/pighand/codebuilder/internal/common/models"
	"github.com/pighand/codebuilder/internal/naming"
)

const (
	DefaultRelationTable = "code_builder_relation"

	mysqlErrNoSuchTable uint16 = 1146
)

const (
	fieldTableA    = "table_a"
	fieldTableAKey = "table_a_key"
	fieldTableB    = "table_b"
	fieldTableBKey = "table_b_key"
	fieldRelation  = "relation"
	fieldJoin      = "join"
)

var errMissingField = errors.New("missing field")

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type columnsGetter interface {
	Columns(ctx context.Context, tableNames []string) (models.TableColumnMap, error)
}

type Builder struct {
	db      querier
	columns columnsGetter
	table   string
}

func NewBuilder(db querier, columns columnsGetter, relationTable string) *Builder {
	if relationTable == "" {
		relationTable = DefaultRelationTable
	}
	return &Builder{
		db:      db,
		columns: columns,
		table:   relationTable,
	}
}

// Build - reads the relation table and builds the relation map. It never fails, any error is
// logged and an empty map is returned.
func (b *Builder) Build(ctx context.Context) models.RelationMap {
	res, err := b.build(ctx)
	if err != nil {
		if IsTableNotFound(err) {
			log.Ctx(ctx).Debug().
				Str("RelationTable", b.table).
				Msg("relation table is absent, relations are not used")
		} else {
			log.Ctx(ctx).Warn().
				Err(err).
				Str("RelationTable", b.table).
				Msg("unable to build relation map, relations are not used")
		}
		return models.RelationMap{}
	}
	return res
}

func (b *Builder) build(ctx context.Context) (models.RelationMap, error) {
	entries, err := b.readEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("read relation table: %w: %w", models.ErrRelationLookup, err)
	}

	cache := make(map[string][]models.ColumnInfo)
	getColumns := func(table string) ([]models.ColumnInfo, error) {
		if columns, ok := cache[table]; ok {
			return columns, nil
		}
		columnMap, err := b.columns.Columns(ctx, []string{table})
		if err != nil {
			return nil, err
		}
		columns := columnMap[table]
		if columns == nil {
			columns = []models.ColumnInfo{}
		}
		cache[table] = columns
		return columns, nil
	}

	res := make(models.RelationMap)
	for _, e := range entries {
		columnsA, err := getColumns(e.TableA)
		if err != nil {
			return nil, fmt.Errorf("get columns of %s: %w: %w", e.TableA, models.ErrRelationLookup, err)
		}
		columnsB, err := getColumns(e.TableB)
		if err != nil {
			return nil, fmt.Errorf("get columns of %s: %w: %w", e.TableB, models.ErrRelationLookup, err)
		}
		res[e.TableA] = append(res[e.TableA], newRelatedTable(
			e.TableB, e.TableAKey, e.TableBKey, e.Relation, e.Join, columnsB,
		))
		res[e.TableB] = append(res[e.TableB], newRelatedTable(
			e.TableA, e.TableBKey, e.TableAKey, models.ReverseRelation(e.Relation), e.Join, columnsA,
		))
	}
	return res, nil
}

func (b *Builder) readEntries(ctx context.Context) ([]models.RelationEntry, error) {
	sb := sqlbuilder.MySQL.NewSelectBuilder()
	sb.Select(
		fieldTableA,
		fieldTableAKey,
		fieldTableB,
		fieldTableBKey,
		fieldRelation,
		sqlbuilder.MySQL.Quote(fieldJoin),
	).From(sqlbuilder.MySQL.Quote(b.table))
	query, args := sb.Build()

	rows, err := b.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("execute relation query: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	records, err := scanRowMaps(rows)
	if err != nil {
		return nil, err
	}
	entries := make([]models.RelationEntry, 0, len(records))
	for idx, record := range records {
		e, err := newRelationEntry(record)
		if err != nil {
			return nil, fmt.Errorf("relation row %d: %w", idx, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// IsTableNotFound - reports whether the error is caused by the missing relation table.
func IsTableNotFound(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrNoSuchTable
}

func newRelatedTable(
	table, mainKey, relationKey, relation, join string, columns []models.ColumnInfo,
) models.RelatedTable {
	return models.RelatedTable{
		Table:               table,
		TableFileName:       naming.ToFileName(table),
		TableHumpName:       naming.ToCamel(table),
		MainKey:             mainKey,
		MainKeyHumpName:     naming.ToCamel(mainKey),
		RelationKey:         relationKey,
		RelationKeyHumpName: naming.ToCamel(relationKey),
		RelationKeyFileName: naming.ToFileName(relationKey),
		Relation:            relation,
		Join:                join,
		Columns:             columns,
	}
}

func newRelationEntry(record map[string]any) (models.RelationEntry, error) {
	fields := []string{fieldTableA, fieldTableAKey, fieldTableB, fieldTableBKey, fieldRelation, fieldJoin}
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		v, ok := record[f]
		if !ok || v == nil {
			return models.RelationEntry{}, fmt.Errorf("field \"%s\": %w", f, errMissingField)
		}
		s, err := cast.ToStringE(v)
		if err != nil {
			return models.RelationEntry{}, fmt.Errorf("cast field \"%s\": %w", f, err)
		}
		values[f] = s
	}
	e := models.RelationEntry{
		TableA:    values[fieldTableA],
		TableAKey: values[fieldTableAKey],
		TableB:    values[fieldTableB],
		TableBKey: values[fieldTableBKey],
		Relation:  values[fieldRelation],
		Join:      values[fieldJoin],
	}
	if err := e.Validate(); err != nil {
		return models.RelationEntry{}, err
	}
	return e, nil
}

// scanRowMaps - scans all rows into column name to value maps.
func scanRowMaps(rows *sql.Rows) ([]map[string]any, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("get columns: %w", err)
	}
	var res []map[string]any
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		record := make(map[string]any, len(columns))
		for i, c := range columns {
			record[c] = values[i]
		}
		res = append(res, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return res, nil
}
