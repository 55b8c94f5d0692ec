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
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"github.com/xhit/go-str2duration/v2"
)

// StringToDurationHookFunc - decodes durations with day and week units, e.g. "1d12h".
func StringToDurationHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}
		return str2duration.ParseDuration(data.(string))
	}
}

// DecoderOption - decoder settings used for unmarshalling the merged viper settings.
func DecoderOption() viper.DecoderConfigOption {
	return func(cfg *mapstructure.DecoderConfig) {
		cfg.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			StringToDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
		cfg.ErrorUnused = true
	}
}

// Load - unmarshals the viper settings into cfg and normalizes it. Validation is left to the caller.
func Load(v *viper.Viper, cfg *Config) error {
	if err := v.Unmarshal(cfg, DecoderOption()); err != nil {
		return err
	}
	cfg.Normalize()
	return nil
}
