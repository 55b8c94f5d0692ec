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
)

var (
	errUnknownFlagType        = errors.New("unknown option type")
	errFlagNameIsEmpty        = errors.New("option name is empty")
	errFlagDescriptionIsEmpty = errors.New("option description is empty")
	errDefaultValueIsEmpty    = errors.New("default value is empty")
	errConfigPathIsEmpty      = errors.New("config path is empty")
)

type FlagType int

const (
	FlagTypeString FlagType = iota
	FlagTypeStringSlice
	FlagTypeInt
	FlagTypeBool
)

func (o FlagType) Validate() error {
	switch o {
	case FlagTypeString, FlagTypeStringSlice, FlagTypeInt, FlagTypeBool:
		return nil
	default:
		return fmt.Errorf("type %d is not supported: %w", o, errUnknownFlagType)
	}
}

type Flag struct {
	Name      string
	Shorthand string
	Usage     string
	// ConfigPath - full config key the flag is bound to, e.g. connection.host.
	ConfigPath   string
	Default      any
	BindToConfig bool
	Type         FlagType
	IsRequired   bool
	// Persistent - the flag is inherited by the sub commands.
	Persistent bool
}

func (o *Flag) Validate() error {
	if o.Name == "" {
		return errFlagNameIsEmpty
	}
	if o.Usage == "" {
		return errFlagDescriptionIsEmpty
	}
	if o.Default == nil {
		return errDefaultValueIsEmpty
	}
	if o.BindToConfig && o.ConfigPath == "" {
		return fmt.Errorf("flag \"%s\": %w", o.Name, errConfigPathIsEmpty)
	}
	if err := o.Type.Validate(); err != nil {
		return fmt.Errorf("validate option type: %w", err)
	}
	return nil
}
