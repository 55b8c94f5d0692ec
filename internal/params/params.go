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

package params

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/pighand/codebuilder/internal/common/models"
	"github.com/pighand/codebuilder/internal/naming"
)

const DateTimeLayout = "2006-01-02 15:04:05"

// Custom parameter names filled in before the user input is applied.
const (
	KeyJavaPackage = "javaPackage"
	KeyDateTime    = "dateTime"
	KeyAuthor      = "author"
	KeyRunID       = "runId"
)

// Per-table keys. They always win over custom parameters.
const (
	KeyTableName     = "tableName"
	KeyTableFileName = "tableFileName"
	KeyTableHumpName = "tableHumpName"
	KeyTableComment  = "tableComment"
	KeyColumns       = "columns"
	KeyPrimaryKeys   = "primaryKeys"
	KeyRelations     = "relations"
	KeyRelationMap   = "relationMap"
)

var tableKeys = []string{
	KeyTableName, KeyTableFileName, KeyTableHumpName, KeyTableComment,
	KeyColumns, KeyPrimaryKeys, KeyRelations, KeyRelationMap,
}

type options interface {
	GetParams() string
	GetParamsPath() string
	GetSavePath() string
}

// Context - substitution context of a single table.
type Context map[string]any

func (c Context) TableFileName() string {
	v, _ := c[KeyTableFileName].(string)
	return v
}

// Assembler - builds the substitution context of each table. The custom parameters are resolved
// once per run.
type Assembler struct {
	custom map[string]any
}

func NewAssembler(ctx context.Context, opt options) (*Assembler, error) {
	custom, err := defaults(opt.GetSavePath())
	if err != nil {
		return nil, err
	}
	for k, v := range ParseInline(opt.GetParams()) {
		custom[k] = v
	}
	if opt.GetParamsPath() != "" {
		fromFile, err := ReadFile(opt.GetParamsPath())
		if err != nil {
			return nil, err
		}
		for k, v := range fromFile {
			custom[k] = v
		}
	}

	var collisions []string
	for _, k := range tableKeys {
		if _, ok := custom[k]; ok {
			collisions = append(collisions, k)
			delete(custom, k)
		}
	}
	if len(collisions) > 0 {
		log.Ctx(ctx).Warn().
			Strs("Keys", collisions).
			Msg("custom parameters collide with table fields and are ignored")
	}
	return &Assembler{custom: custom}, nil
}

// Custom - returns a copy of the merged custom parameters.
func (a *Assembler) Custom() map[string]any {
	res := make(map[string]any, len(a.custom))
	for k, v := range a.custom {
		res[k] = v
	}
	return res
}

// Assemble - builds the context of the table. The relation keys are always present, they are empty
// when relations are disabled.
func (a *Assembler) Assemble(
	table models.TableInfo, columns []models.ColumnInfo, relations models.RelationMap,
) Context {
	res := make(Context, len(a.custom)+len(tableKeys))
	for k, v := range a.custom {
		res[k] = v
	}
	if columns == nil {
		columns = []models.ColumnInfo{}
	}
	primaryKeys := make([]models.ColumnInfo, 0, 1)
	for _, c := range columns {
		if c.PrimaryKey {
			primaryKeys = append(primaryKeys, c)
		}
	}
	if relations == nil {
		relations = models.RelationMap{}
	}
	tableRelations := relations[table.TableName]
	if tableRelations == nil {
		tableRelations = []models.RelatedTable{}
	}

	res[KeyTableName] = table.TableName
	res[KeyTableFileName] = naming.ToFileName(table.TableName)
	res[KeyTableHumpName] = naming.ToCamel(table.TableName)
	res[KeyTableComment] = table.TableComment
	res[KeyColumns] = columns
	res[KeyPrimaryKeys] = primaryKeys
	res[KeyRelations] = tableRelations
	res[KeyRelationMap] = relations
	return res
}

func defaults(savePath string) (map[string]any, error) {
	absPath, err := filepath.Abs(savePath)
	if err != nil {
		return nil, fmt.Errorf("resolve save path \"%s\": %w: %w", savePath, models.ErrConfig, err)
	}
	return map[string]any{
		KeyJavaPackage: JavaPackage(absPath),
		KeyDateTime:    time.Now().Format(DateTimeLayout),
		KeyAuthor:      currentUser(),
		KeyRunID:       uuid.NewString(),
	}, nil
}

// JavaPackage - derives a dotted package from the path segments after the first "java" segment.
// Returns an empty string if the path has no such segment.
func JavaPackage(path string) string {
	segments := strings.FieldsFunc(filepath.ToSlash(path), func(r rune) bool {
		return r == '/'
	})
	idx := slices.Index(segments, "java")
	if idx == -1 {
		return ""
	}
	return strings.Join(segments[idx+1:], ".")
}

func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}

// ParseInline - parses k1=v1&k2=v2. The value is everything after the first "=", items without
// "=" or with an empty key are skipped. The last occurrence of a key wins.
func ParseInline(raw string) map[string]any {
	res := make(map[string]any)
	if raw == "" {
		return res
	}
	for _, item := range strings.Split(raw, "&") {
		key, value, ok := strings.Cut(item, "=")
		if !ok || key == "" {
			continue
		}
		res[key] = value
	}
	return res
}

// ReadFile - reads a parameter file. YAML is used for .yaml and .yml extensions, JSON otherwise.
// The document must be an object.
func ReadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read params file \"%s\": %w: %w", path, models.ErrConfig, err)
	}
	res := make(map[string]any)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &res)
	default:
		err = json.Unmarshal(data, &res)
	}
	if err != nil {
		return nil, fmt.Errorf("decode params file \"%s\": %w: %w", path, models.ErrConfig, err)
	}
	return res, nil
}
