package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pighand/codebuilder/internal/common/models"
	"github.com/pighand/codebuilder/internal/config"
)

func testFlags() []Flag {
	return []Flag{
		{
			Name: "host", Shorthand: "h", Usage: "database host", ConfigPath: "connection.host",
			BindToConfig: true, Type: FlagTypeString, Default: "localhost",
		},
		{
			Name: "port", Shorthand: "p", Usage: "database port", ConfigPath: "connection.port",
			BindToConfig: true, Type: FlagTypeInt, Default: 3306,
		},
		{
			Name: "timeout", Usage: "connect timeout", ConfigPath: "connection.timeout",
			BindToConfig: true, Type: FlagTypeString, Default: "10s",
		},
		{
			Name: "tables", Shorthand: "t", Usage: "tables", ConfigPath: "tables",
			BindToConfig: true, Type: FlagTypeStringSlice, Default: []string{},
		},
		{
			Name: "relation", Usage: "use relations", ConfigPath: "relation.enabled",
			BindToConfig: true, Type: FlagTypeBool, Default: true,
		},
	}
}

func newTestRoot(t *testing.T, captured **config.Config) *RootCommand {
	t.Helper()
	t.Chdir(t.TempDir())
	root, err := NewRootCommand(viper.New(), &cobra.Command{Use: "codebuilder"}, "v0.0.1", config.NewConfig(), testFlags()...)
	require.NoError(t, err)
	sub := MustCommand(&cobra.Command{
		Use: "generate",
		RunE: func(*cobra.Command, []string) error {
			*captured = root.MustGetConfig()
			return nil
		},
	})
	root.AddCommand(sub)
	return root
}

func TestRootCommand_Flags(t *testing.T) {
	var cfg *config.Config
	root := newTestRoot(t, &cfg)
	root.SetArgs([]string{
		"generate", "-h", "db.local", "-p", "3307", "--timeout", "1d", "-t", "user,role", "-t", "user",
		"--relation=false",
	})
	require.NoError(t, root.Execute())
	require.NotNil(t, cfg)

	assert.Equal(t, "db.local", cfg.Connection.Host)
	assert.Equal(t, 3307, cfg.Connection.Port)
	assert.Equal(t, 24*time.Hour, cfg.Connection.Timeout)
	assert.Equal(t, []string{"user", "role"}, cfg.Tables)
	assert.False(t, cfg.Relation.Enabled)
}

func TestRootCommand_ConfigFileAndEnv(t *testing.T) {
	var cfg *config.Config
	root := newTestRoot(t, &cfg)
	cfgFile := filepath.Join(t.TempDir(), "codebuilder.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("connection:\n  host: from-file\n  port: 3310\n"), 0o600))
	t.Setenv("CODEBUILDER_CONNECTION_PORT", "3311")

	root.SetArgs([]string{"generate", "--config", cfgFile})
	require.NoError(t, root.Execute())
	require.NotNil(t, cfg)
	assert.Equal(t, "from-file", cfg.Connection.Host)
	assert.Equal(t, 3311, cfg.Connection.Port)
}

func TestRootCommand_DotEnv(t *testing.T) {
	var cfg *config.Config
	root := newTestRoot(t, &cfg)
	require.NoError(t, os.WriteFile(".env", []byte("CODEBUILDER_CONNECTION_HOST=from-dotenv\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("CODEBUILDER_CONNECTION_HOST")
	})

	root.SetArgs([]string{"generate"})
	require.NoError(t, root.Execute())
	require.NotNil(t, cfg)
	assert.Equal(t, "from-dotenv", cfg.Connection.Host)
}

func TestRootCommand_BrokenConfigFile(t *testing.T) {
	var cfg *config.Config
	root := newTestRoot(t, &cfg)
	root.SetArgs([]string{"generate", "--config", filepath.Join(t.TempDir(), "missing.yml")})
	err := root.Execute()
	require.ErrorIs(t, err, models.ErrConfig)
	assert.Nil(t, cfg)
}

func TestRootCommand_MustGetConfigBeforeLoad(t *testing.T) {
	root, err := NewRootCommand(viper.New(), &cobra.Command{Use: "codebuilder"}, "", config.NewConfig())
	require.NoError(t, err)
	assert.Panics(t, func() {
		root.MustGetConfig()
	})
}

func TestNewCommand_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		flag Flag
	}{
		{name: "no name", flag: Flag{Usage: "u", Default: ""}},
		{name: "no usage", flag: Flag{Name: "a", Default: ""}},
		{name: "no default", flag: Flag{Name: "a", Usage: "u"}},
		{name: "wrong default type", flag: Flag{Name: "a", Usage: "u", Type: FlagTypeInt, Default: "1"}},
		{name: "unknown type", flag: Flag{Name: "a", Usage: "u", Type: FlagType(42), Default: ""}},
		{name: "bind without path", flag: Flag{Name: "a", Usage: "u", Default: "", BindToConfig: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newCommand(viper.New(), &cobra.Command{Use: "x"}, tt.flag)
			require.Error(t, err)
		})
	}
}
