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

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/pighand/codebuilder/internal/common/models"
)

const (
	defaultHost    = "localhost"
	defaultPort    = 3306
	defaultUser    = "root"
	defaultTimeout = 10 * time.Second
)

func NewConnection() Connection {
	return Connection{
		Host:    defaultHost,
		Port:    defaultPort,
		User:    defaultUser,
		Timeout: defaultTimeout,
	}
}

type Connection struct {
	Host     string        `mapstructure:"host" yaml:"host" json:"host"`
	Port     int           `mapstructure:"port" yaml:"port" json:"port"`
	User     string        `mapstructure:"user" yaml:"user" json:"user"`
	Password string        `mapstructure:"password" yaml:"password" json:"-"`
	Database string        `mapstructure:"database" yaml:"database" json:"database"`
	Timeout  time.Duration `mapstructure:"timeout" yaml:"timeout" json:"timeout"`
}

func (c *Connection) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("connection.host cannot be empty: %w", models.ErrConfig)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("connection.port %d is out of range: %w", c.Port, models.ErrConfig)
	}
	if c.User == "" {
		return fmt.Errorf("connection.user cannot be empty: %w", models.ErrConfig)
	}
	if c.Database == "" {
		return fmt.Errorf("connection.database cannot be empty: %w", models.ErrConfig)
	}
	return nil
}

// MySQLConfig - returns the go-sql-driver config used to build the connector.
func (c *Connection) MySQLConfig() *mysql.Config {
	cfg := mysql.NewConfig()
	cfg.User = c.User
	cfg.Passwd = c.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	cfg.DBName = c.Database
	cfg.Timeout = c.Timeout
	cfg.Params = map[string]string{
		"charset": "utf8mb4",
	}
	return cfg
}
