package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pighand/codebuilder/internal/common/models"
	"github.com/pighand/codebuilder/internal/common/utils"
)

func newValidConfig() *Config {
	cfg := NewConfig()
	cfg.Connection.Database = "shop"
	return cfg
}

func TestConfig_Normalize(t *testing.T) {
	cfg := NewConfig()
	cfg.Tables = []string{"user, role", " user_profile ", "role", "order item", ""}
	cfg.Conflict = " Replace "
	cfg.Template.FileExtension = ".java"
	cfg.Normalize()
	assert.Equal(t, []string{"user", "role", "user_profile", "order", "item"}, cfg.Tables)
	assert.Equal(t, ConflictReplace, cfg.Conflict)
	assert.Equal(t, "java", cfg.Template.FileExtension)
}

func TestConfig_Validate(t *testing.T) {
	t.Run("defaults with database are valid", func(t *testing.T) {
		require.NoError(t, newValidConfig().Validate())
	})

	tests := []struct {
		name   string
		modify func(cfg *Config)
	}{
		{name: "no database", modify: func(cfg *Config) { cfg.Connection.Database = "" }},
		{name: "no host", modify: func(cfg *Config) { cfg.Connection.Host = "" }},
		{name: "port out of range", modify: func(cfg *Config) { cfg.Connection.Port = 70000 }},
		{name: "no user", modify: func(cfg *Config) { cfg.Connection.User = "" }},
		{name: "no template source", modify: func(cfg *Config) {
			cfg.Template.Name = ""
			cfg.Template.Path = ""
		}},
		{name: "empty save path", modify: func(cfg *Config) { cfg.SavePath = "" }},
		{name: "relations without table", modify: func(cfg *Config) { cfg.Relation.Table = "" }},
		{name: "unknown conflict policy", modify: func(cfg *Config) { cfg.Conflict = "merge" }},
		{name: "unknown log format", modify: func(cfg *Config) { cfg.Log.Format = "xml" }},
		{name: "unknown log level", modify: func(cfg *Config) { cfg.Log.Level = "trace" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newValidConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrConfig)
		})
	}

	t.Run("relations disabled without table", func(t *testing.T) {
		cfg := newValidConfig()
		cfg.Relation.Enabled = false
		cfg.Relation.Table = ""
		require.NoError(t, cfg.Validate())
	})
}

func TestConnection_MySQLConfig(t *testing.T) {
	conn := NewConnection()
	conn.Host = "db.local"
	conn.Port = 3307
	conn.User = "app"
	conn.Password = "secret"
	conn.Database = "shop"
	conn.Timeout = 5 * time.Second

	uri := conn.MySQLConfig().FormatDSN()
	assert.Contains(t, uri, "app:secret@tcp(db.local:3307)/shop")
	assert.Contains(t, uri, "timeout=5s")
	assert.Contains(t, uri, "charset=utf8mb4")
}

func TestLoad(t *testing.T) {
	raw := []byte(`
connection:
  host: db.local
  port: 3307
  database: shop
  timeout: 1d
tables:
  - user,role
  - user
template:
  path: ./templates.yaml
  file_extension: .ts
params: "a=1&b=2"
params_path: ./params.json
save_path: ./out
relation:
  enabled: false
conflict: skip
dry_run: true
log:
  level: debug
  format: json
`)
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewReader(raw)))

	cfg := NewConfig()
	require.NoError(t, Load(v, cfg))

	assert.Equal(t, "db.local", cfg.Connection.Host)
	assert.Equal(t, 3307, cfg.Connection.Port)
	assert.Equal(t, defaultUser, cfg.Connection.User)
	assert.Equal(t, 24*time.Hour, cfg.Connection.Timeout)
	assert.Equal(t, []string{"user", "role"}, cfg.Tables)
	assert.Equal(t, "./templates.yaml", cfg.Template.Path)
	assert.Equal(t, defaultTemplateName, cfg.Template.Name)
	assert.Equal(t, "ts", cfg.Template.FileExtension)
	assert.Equal(t, "a=1&b=2", cfg.Params)
	assert.Equal(t, "./params.json", cfg.ParamsPath)
	assert.Equal(t, "./out", cfg.SavePath)
	assert.False(t, cfg.Relation.Enabled)
	assert.Equal(t, ConflictSkip, cfg.Conflict)
	assert.True(t, cfg.DryRun)
	assert.Equal(t, utils.LogFormatJsonValue, cfg.Log.Format)
	require.NoError(t, cfg.Validate())
}

func TestLoad_UnknownKey(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewReader([]byte("unknown_key: 1\n"))))
	require.Error(t, Load(v, NewConfig()))
}

func TestLog_FormatsAcceptedByLogger(t *testing.T) {
	for _, format := range []string{utils.LogFormatJsonValue, utils.LogFormatTextValue} {
		l := NewLog()
		l.Format = format
		require.NoError(t, l.Validate())
		_, err := utils.GetLogger(new(bytes.Buffer), l.Level, l.Format)
		require.NoError(t, err, format)
	}
	assert.Equal(t, utils.LogFormatTextValue, NewLog().Format)
}
