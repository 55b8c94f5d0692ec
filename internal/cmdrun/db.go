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
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"github.com/pighand/codebuilder/internal/common/models"
	"github.com/pighand/codebuilder/internal/config"
)

// openDB - opens the connection pool limited to a single connection and checks it is alive.
func openDB(ctx context.Context, conn config.Connection) (*sql.DB, error) {
	connector, err := mysql.NewConnector(conn.MySQLConfig())
	if err != nil {
		return nil, fmt.Errorf("create connector: %w: %w", models.ErrQuery, err)
	}
	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect to %s:%d: %w: %w", conn.Host, conn.Port, models.ErrQuery, err)
	}
	log.Ctx(ctx).Debug().
		Str("Host", conn.Host).
		Int("Port", conn.Port).
		Str("Database", conn.Database).
		Msg("connected")
	return db, nil
}

func closeDB(ctx context.Context, db *sql.DB) {
	if err := db.Close(); err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("close connection")
	}
}
