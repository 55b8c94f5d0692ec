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

import (
	"errors"
	"fmt"
)

var (
	errUnknownRelation = errors.New("unknown relation code")
	errUnknownJoin     = errors.New("unknown join code")
)

const (
	RelationOneToOne   = "11"
	RelationOneToMany  = "1n"
	RelationManyToOne  = "n1"
	RelationManyToMany = "nn"
)

const (
	JoinLeft  = "l"
	JoinInner = "i"
)

// RelationEntry - a row of the relation table. It declares a relation between table A and table B.
type RelationEntry struct {
	TableA    string `json:"table_a"`
	TableAKey string `json:"table_a_key"`
	TableB    string `json:"table_b"`
	TableBKey string `json:"table_b_key"`
	Relation  string `json:"relation"`
	Join      string `json:"join"`
}

func (e RelationEntry) Validate() error {
	switch e.Relation {
	case RelationOneToOne, RelationOneToMany, RelationManyToOne, RelationManyToMany:
	default:
		return fmt.Errorf("relation \"%s\" between %s and %s: %w", e.Relation, e.TableA, e.TableB, errUnknownRelation)
	}
	switch e.Join {
	case JoinLeft, JoinInner:
	default:
		return fmt.Errorf("join \"%s\" between %s and %s: %w", e.Join, e.TableA, e.TableB, errUnknownJoin)
	}
	return nil
}

// ReverseRelation - reverses the relation code, so 1n becomes n1. Symmetric codes stay as is.
func ReverseRelation(relation string) string {
	r := []rune(relation)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// RelatedTable - the other side of a relation as seen from the table that owns the map entry.
type RelatedTable struct {
	Table               string       `json:"table"`
	TableFileName       string       `json:"tableFileName"`
	TableHumpName       string       `json:"tableHumpName"`
	MainKey             string       `json:"mainKey"`
	MainKeyHumpName     string       `json:"mainKeyHumpName"`
	RelationKey         string       `json:"relationKey"`
	RelationKeyHumpName string       `json:"relationKeyHumpName"`
	RelationKeyFileName string       `json:"relationKeyFileName"`
	Relation            string       `json:"relation"`
	Join                string       `json:"join"`
	Columns             []ColumnInfo `json:"columns"`
}

// RelationMap - relations of each table. Every relation row produces one entry for each side.
type RelationMap map[string][]RelatedTable
