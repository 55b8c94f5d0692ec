package introspect

import (
	"strings"

	"github.com/pighand/codebuilder/internal/common/models"
	"github.com/pighand/codebuilder/internal/mysql/reserved"
	"github.com/pighand/codebuilder/internal/mysql/typemap"
	"github.com/pighand/codebuilder/internal/naming"
)

const (
	columnKeyPrimary   = "PRI"
	extraAutoIncrement = "auto_increment"
	isNullableYes      = "YES"
)

// rawColumn - a row of information_schema.COLUMNS.
type rawColumn struct {
	tableName              string
	columnName             string
	isNullable             string
	dataType               string
	columnType             string
	characterMaximumLength *int64
	columnKey              string
	extra                  string
	columnComment          string
}

func newColumnInfo(raw rawColumn) models.ColumnInfo {
	mapping := typemap.MapType(raw.columnType, raw.dataType)
	return models.ColumnInfo{
		TableName:              raw.tableName,
		ColumnName:             raw.columnName,
		ColumnHumpName:         naming.ToCamel(raw.columnName),
		ColumnFileName:         naming.ToFileName(raw.columnName),
		IsNullable:             raw.isNullable == isNullableYes,
		DataType:               strings.ToUpper(raw.dataType),
		ColumnType:             raw.columnType,
		CharacterMaximumLength: raw.characterMaximumLength,
		PrimaryKey:             raw.columnKey == columnKeyPrimary,
		AutoIncrement:          strings.Contains(strings.ToLower(raw.extra), extraAutoIncrement),
		ColumnComment:          raw.columnComment,
		IsReservedWord:         reserved.IsReservedWord(raw.columnName),
		JavaDataType:           mapping.Java,
		TSDataType:             mapping.TS,
		GoDataType:             mapping.Go,
		IsString:               mapping.IsString,
		IsNumber:               mapping.IsNumber,
	}
}
