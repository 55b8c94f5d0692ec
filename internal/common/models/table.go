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

// TableInfo - a table selected for scaffolding.
type TableInfo struct {
	TableName    string `json:"tableName" yaml:"tableName"`
	TableComment string `json:"tableComment" yaml:"tableComment"`
}

func NewTableInfo(name, comment string) TableInfo {
	return TableInfo{
		TableName:    name,
		TableComment: comment,
	}
}

// ColumnInfo - a column enriched with naming and type metadata. The fields are exposed to the
// templates as is, e.g. {{ .ColumnHumpName }} inside {{ range .columns }}.
type ColumnInfo struct {
	TableName              string `json:"tableName" yaml:"tableName"`
	ColumnName             string `json:"columnName" yaml:"columnName"`
	ColumnHumpName         string `json:"columnHumpName" yaml:"columnHumpName"`
	ColumnFileName         string `json:"columnFileName" yaml:"columnFileName"`
	IsNullable             bool   `json:"isNullable" yaml:"isNullable"`
	DataType               string `json:"dataType" yaml:"dataType"`
	ColumnType             string `json:"columnType" yaml:"columnType"`
	CharacterMaximumLength *int64 `json:"characterMaximumLength" yaml:"characterMaximumLength"`
	PrimaryKey             bool   `json:"primaryKey" yaml:"primaryKey"`
	AutoIncrement          bool   `json:"autoIncrement" yaml:"autoIncrement"`
	ColumnComment          string `json:"columnComment" yaml:"columnComment"`
	IsReservedWord         bool   `json:"isReservedWord" yaml:"isReservedWord"`
	JavaDataType           string `json:"javaDataType" yaml:"javaDataType"`
	TSDataType             string `json:"tsDataType" yaml:"tsDataType"`
	GoDataType             string `json:"goDataType" yaml:"goDataType"`
	IsString               bool   `json:"isString" yaml:"isString"`
	IsNumber               bool   `json:"isNumber" yaml:"isNumber"`
}

// TableColumnMap - columns of each introspected table in ordinal order.
type TableColumnMap map[string][]ColumnInfo

// PrimaryKeys - returns the primary key columns of the table in ordinal order.
func (m TableColumnMap) PrimaryKeys(tableName string) []ColumnInfo {
	var res []ColumnInfo
	for _, c := range m[tableName] {
		if c.PrimaryKey {
			res = append(res, c)
		}
	}
	return res
}
