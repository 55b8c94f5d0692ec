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

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	errWrongTypeProvided   = errors.New("wrong type provided")
	errFlagIsNotRegistered = errors.New("flag is not registered")
)

type Command struct {
	*cobra.Command
	v *viper.Viper
}

func MustCommand(cobraCmd *cobra.Command, flags ...Flag) *Command {
	res, err := NewCommand(cobraCmd, flags...)
	if err != nil {
		panic(err)
	}
	return res
}

func NewCommand(cobraCmd *cobra.Command, flags ...Flag) (*Command, error) {
	return newCommand(viper.GetViper(), cobraCmd, flags...)
}

func newCommand(v *viper.Viper, cobraCmd *cobra.Command, flags ...Flag) (*Command, error) {
	res := &Command{
		Command: cobraCmd,
		v:       v,
	}
	if err := res.registerFlags(flags...); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Command) flagSet(flag Flag) *pflag.FlagSet {
	if flag.Persistent {
		return c.PersistentFlags()
	}
	return c.Flags()
}

func (c *Command) bindToConfig(flag Flag) error {
	f := c.flagSet(flag).Lookup(flag.Name)
	if f == nil {
		return fmt.Errorf("lookup flag \"%s\": %w", flag.Name, errFlagIsNotRegistered)
	}
	if err := c.v.BindPFlag(flag.ConfigPath, f); err != nil {
		return fmt.Errorf("bind flag \"%s\": %w", flag.ConfigPath, err)
	}
	return nil
}

func (c *Command) registerBool(flag Flag) error {
	vv, ok := flag.Default.(bool)
	if !ok {
		return fmt.Errorf("flag %s is not a bool: %w", flag.Name, errWrongTypeProvided)
	}
	c.flagSet(flag).BoolP(flag.Name, flag.Shorthand, vv, flag.Usage)
	return nil
}

func (c *Command) registerString(flag Flag) error {
	vv, ok := flag.Default.(string)
	if !ok {
		return fmt.Errorf("flag %s is not a string: %w", flag.Name, errWrongTypeProvided)
	}
	c.flagSet(flag).StringP(flag.Name, flag.Shorthand, vv, flag.Usage)
	return nil
}

func (c *Command) registerInt(flag Flag) error {
	vv, ok := flag.Default.(int)
	if !ok {
		return fmt.Errorf("flag %s is not an int: %w", flag.Name, errWrongTypeProvided)
	}
	c.flagSet(flag).IntP(flag.Name, flag.Shorthand, vv, flag.Usage)
	return nil
}

func (c *Command) registerStringSlice(flag Flag) error {
	vv, ok := flag.Default.([]string)
	if !ok {
		return fmt.Errorf("flag %s is not a []string: %w", flag.Name, errWrongTypeProvided)
	}
	c.flagSet(flag).StringSliceP(flag.Name, flag.Shorthand, vv, flag.Usage)
	return nil
}

func (c *Command) registerFlag(opt Flag) error {
	switch opt.Type {
	case FlagTypeString:
		return c.registerString(opt)
	case FlagTypeBool:
		return c.registerBool(opt)
	case FlagTypeStringSlice:
		return c.registerStringSlice(opt)
	case FlagTypeInt:
		return c.registerInt(opt)
	default:
		return fmt.Errorf("flag type %s: %w", opt.Name, errUnknownFlagType)
	}
}

func (c *Command) register(opt Flag) error {
	if err := opt.Validate(); err != nil {
		return fmt.Errorf("validate flag: %w", err)
	}
	if err := c.registerFlag(opt); err != nil {
		return fmt.Errorf("register flag: %w", err)
	}
	if err := c.markIsRequired(opt); err != nil {
		return fmt.Errorf("mark flag as required: %w", err)
	}
	if !opt.BindToConfig {
		return nil
	}
	if err := c.bindToConfig(opt); err != nil {
		return fmt.Errorf("bind flag: %w", err)
	}
	return nil
}

func (c *Command) markIsRequired(flag Flag) error {
	if !flag.IsRequired {
		return nil
	}
	if flag.Persistent {
		return c.MarkPersistentFlagRequired(flag.Name)
	}
	return c.MarkFlagRequired(flag.Name)
}

func (c *Command) registerFlags(flags ...Flag) error {
	for _, opt := range flags {
		if err := c.register(opt); err != nil {
			return fmt.Errorf("register flag: %w", err)
		}
	}
	return nil
}

func (c *Command) AddCommand(cmds ...*Command) *Command {
	for _, cmd := range cmds {
		c.Command.AddCommand(cmd.Command)
	}
	return c
}
