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

package testutils

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcmysql "github.com/testcontainers/testcontainers-go/modules/mysql"

	"github.com/pighand/codebuilder/internal/config"
)

var (
	mysqlTestContainerImage          = "mysql:8"
	mysqlTestContainerPort  nat.Port = "3306"
)

const (
	testContainerDatabase = "testdb"
	testContainerUser     = "testuser"
	testContainerPassword = "testpassword"

	MysqlRootUser     = "root"
	MysqlRootPassword = testContainerPassword
)

// MySQLContainerSuite - runs a MySQL container for the whole suite and applies the migrations
// as root.
type MySQLContainerSuite struct {
	suite.Suite
	database      string
	username      string
	password      string
	Container     testcontainers.Container
	MigrationUp   []string
	MigrationDown []string
	image         string
}

func (s *MySQLContainerSuite) SetupSuite() {
	if testing.Short() {
		s.T().Skip("skipping MySQL container tests in short mode")
	}
	ctx := context.Background()
	if s.username == "" {
		s.username = testContainerUser
	}
	if s.password == "" {
		s.password = testContainerPassword
	}
	if s.database == "" {
		s.database = testContainerDatabase
	}
	if s.image == "" {
		s.image = mysqlTestContainerImage
	}
	var err error
	s.Container, err = tcmysql.Run(
		ctx,
		s.image,
		tcmysql.WithDatabase(s.database),
		tcmysql.WithUsername(s.username),
		tcmysql.WithPassword(s.password),
		testcontainers.CustomizeRequestOption(
			func(req *testcontainers.GenericContainerRequest) error {
				req.Env["MYSQL_ROOT_PASSWORD"] = MysqlRootPassword
				return nil
			},
		),
	)
	s.Require().NoErrorf(err, "failed to start MySQL Container")

	s.MigrateUp(ctx, s.MigrationUp)
}

func (s *MySQLContainerSuite) TearDownSuite() {
	if s.Container == nil {
		return
	}
	ctx := context.Background()
	s.MigrateDown(ctx, s.MigrationDown)
	err := s.Container.Terminate(ctx)
	s.Assert().NoErrorf(err, "failed to terminate MySQL Container")
}

func (s *MySQLContainerSuite) SetImage(image string) *MySQLContainerSuite {
	s.image = image
	return s
}

func (s *MySQLContainerSuite) SetMigrationUp(sqls []string) *MySQLContainerSuite {
	s.MigrationUp = sqls
	return s
}

func (s *MySQLContainerSuite) SetMigrationDown(sqls []string) *MySQLContainerSuite {
	s.MigrationDown = sqls
	return s
}

func (s *MySQLContainerSuite) SetDatabase(name string) *MySQLContainerSuite {
	s.database = name
	return s
}

func (s *MySQLContainerSuite) GetDatabase() string {
	return s.database
}

// GetConnectionConfig - returns the connection options of the suite user.
func (s *MySQLContainerSuite) GetConnectionConfig(ctx context.Context) config.Connection {
	return s.GetConnectionConfigWithUser(ctx, s.username, s.password)
}

func (s *MySQLContainerSuite) GetConnectionConfigWithUser(
	ctx context.Context, username, password string,
) config.Connection {
	host, err := s.Container.Host(ctx)
	s.Require().NoErrorf(err, "failed to get Container host")
	port, err := s.Container.MappedPort(ctx, mysqlTestContainerPort)
	s.Require().NoErrorf(err, "failed to get Container port")
	return config.Connection{
		Host:     host,
		Port:     port.Int(),
		User:     username,
		Password: password,
		Database: s.database,
		Timeout:  30 * time.Second,
	}
}

func (s *MySQLContainerSuite) GetConnection(ctx context.Context) (*sql.DB, error) {
	return s.GetConnectionWithUser(ctx, s.username, s.password)
}

func (s *MySQLContainerSuite) GetConnectionWithUser(ctx context.Context, username, password string) (*sql.DB, error) {
	conn := s.GetConnectionConfigWithUser(ctx, username, password)
	cfg := conn.MySQLConfig()
	cfg.MultiStatements = true
	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, err
	}
	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(1)
	return db, nil
}

func (s *MySQLContainerSuite) MigrateUp(ctx context.Context, sqls []string) {
	s.migrate(ctx, "up", sqls)
}

func (s *MySQLContainerSuite) MigrateDown(ctx context.Context, sqls []string) {
	s.migrate(ctx, "down", sqls)
}

func (s *MySQLContainerSuite) migrate(ctx context.Context, direction string, sqls []string) {
	if len(sqls) == 0 {
		return
	}
	conn, err := s.GetConnectionWithUser(ctx, MysqlRootUser, MysqlRootPassword)
	s.Require().NoErrorf(err, "failed to connect to MySQL")
	defer conn.Close()
	s.Require().NoErrorf(conn.PingContext(ctx), "failed to ping MySQL")
	for i, migration := range sqls {
		log.Info().
			Str("Direction", direction).
			Int("Index", i).
			Msg("applying migration")
		_, err = conn.ExecContext(ctx, migration)
		s.Require().NoErrorf(err, "failed to apply migration %d", i)
	}
}
