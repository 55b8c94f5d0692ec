package config

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pighand/codebuilder/internal/common/models"
	"github.com/pighand/codebuilder/internal/common/utils"
)

func NewLog() Log {
	return Log{
		Format: utils.LogFormatTextValue,
		Level:  zerolog.LevelInfoValue,
	}
}

type Log struct {
	Format string `mapstructure:"format" yaml:"format" json:"format,omitempty"`
	Level  string `mapstructure:"level" yaml:"level" json:"level,omitempty"`
}

func (l Log) Validate() error {
	switch l.Format {
	case utils.LogFormatJsonValue, utils.LogFormatTextValue:
	default:
		return fmt.Errorf("log.format \"%s\" is not supported: %w", l.Format, models.ErrConfig)
	}
	switch l.Level {
	case zerolog.LevelDebugValue, zerolog.LevelInfoValue, zerolog.LevelWarnValue, zerolog.LevelErrorValue:
	default:
		return fmt.Errorf("log.level \"%s\" is not supported: %w", l.Level, models.ErrConfig)
	}
	return nil
}
