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

package typemap

import "strings"

// Mapping - target language type names of a column.
type Mapping struct {
	// Java - type name for the Spring template sets.
	Java string
	// TS - type name for the JavaScript/TypeScript template sets.
	TS string
	// Go - type name for Go template sets.
	Go string
	// IsString - the column holds character data.
	IsString bool
	// IsNumber - the column holds a numeric value. Timestamps are not flagged.
	IsNumber bool
}

var (
	boolMapping      = Mapping{Java: "Boolean", TS: "boolean", Go: "bool"}
	stringMapping    = Mapping{Java: "String", TS: "string", Go: "string", IsString: true}
	int64Mapping     = Mapping{Java: "Long", TS: "number", Go: "int64", IsNumber: true}
	int32Mapping     = Mapping{Java: "Integer", TS: "number", Go: "int32", IsNumber: true}
	float32Mapping   = Mapping{Java: "Float", TS: "number", Go: "float32", IsNumber: true}
	float64Mapping   = Mapping{Java: "Double", TS: "number", Go: "float64", IsNumber: true}
	decimalMapping   = Mapping{Java: "BigDecimal", TS: "string", Go: "decimal.Decimal", IsNumber: true}
	dateTimeMapping  = Mapping{Java: "Date", TS: "Date", Go: "time.Time"}
	timestampMapping = Mapping{Java: "Long", TS: "number", Go: "int64"}
	bytesMapping     = Mapping{Java: "byte[]", TS: "Buffer", Go: "[]byte"}
	jsonMapping      = Mapping{Java: "List<String>", TS: "string[]", Go: "[]string"}
)

// MapType - maps the MySQL column type to the target language types. columnType is the full type
// including length, e.g. "tinyint(1)", dataType is the bare type name. The first matching rule wins
// and unknown types are passed through unchanged.
func MapType(columnType, dataType string) Mapping {
	ct := strings.ToLower(columnType)
	dt := strings.ToLower(dataType)

	if ct == "tinyint(1)" {
		return boolMapping
	}
	switch dt {
	case "varchar", "char", "text":
		return stringMapping
	case "bigint":
		return int64Mapping
	case "integer", "int", "tinyint", "smallint", "bit":
		return int32Mapping
	case "float":
		return float32Mapping
	case "double":
		return float64Mapping
	case "numeric", "decimal", "bigdecimal":
		return decimalMapping
	case "date", "time", "datetime":
		return dateTimeMapping
	case "timestamp":
		return timestampMapping
	case "blob", "varbinary":
		return bytesMapping
	case "json":
		return jsonMapping
	}
	return Mapping{Java: dataType, TS: dataType, Go: dataType}
}
