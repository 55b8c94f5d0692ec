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

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pighand/codebuilder/internal/common/models"
	"github.com/pighand/codebuilder/internal/common/utils"
	"github.com/pighand/codebuilder/internal/config"
)

const (
	EnvPrefix   = "CODEBUILDER"
	envFileName = ".env"
)

// RootCommand - the root command. It owns the configuration that is loaded once before any sub
// command runs: .env file, config file, environment variables and flags, in ascending priority.
type RootCommand struct {
	*Command
	cfgFile string
	cfg     *config.Config
	loaded  bool
}

func MustRootCommand(cobraCmd *cobra.Command, version string, cfg *config.Config, flags ...Flag) *RootCommand {
	res, err := NewRootCommand(viper.GetViper(), cobraCmd, version, cfg, flags...)
	if err != nil {
		panic(err)
	}
	return res
}

// NewRootCommand - the flags are registered as persistent ones.
func NewRootCommand(
	v *viper.Viper, cobraCmd *cobra.Command, version string, cfg *config.Config, flags ...Flag,
) (*RootCommand, error) {
	res := &RootCommand{cfg: cfg}
	cobraCmd.Version = version
	cobraCmd.SilenceUsage = true
	cobraCmd.SilenceErrors = true
	// Removing short help flag from default
	cobraCmd.PersistentFlags().BoolP("help", "", false, "help for "+cobraCmd.Name())
	cobraCmd.PersistentFlags().StringVar(&res.cfgFile, "config", "", "config file (yaml|json|toml)")
	cobraCmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		return res.loadConfig()
	}

	persistent := make([]Flag, len(flags))
	for i, f := range flags {
		f.Persistent = true
		persistent[i] = f
	}
	c, err := newCommand(v, cobraCmd, persistent...)
	if err != nil {
		return nil, err
	}
	res.Command = c
	return res, nil
}

func (r *RootCommand) loadConfig() error {
	if err := godotenv.Load(envFileName); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w: %w", envFileName, models.ErrConfig, err)
	}
	if r.cfgFile != "" {
		r.v.SetConfigFile(r.cfgFile)
		if err := r.v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading from config file: %w: %w", models.ErrConfig, err)
		}
	}
	r.v.SetEnvPrefix(EnvPrefix)
	r.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	r.v.AutomaticEnv()

	if err := config.Load(r.v, r.cfg); err != nil {
		return fmt.Errorf("decode config: %w: %w", models.ErrConfig, err)
	}
	if err := utils.SetDefaultContextLogger(r.cfg.Log.Level, r.cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w: %w", models.ErrConfig, err)
	}
	r.loaded = true
	return nil
}

// MustGetConfig - returns the loaded configuration. It panics when called before the command
// execution started.
func (r *RootCommand) MustGetConfig() *config.Config {
	if !r.loaded {
		panic("config is not loaded yet")
	}
	return r.cfg
}
