package env

import (
	"fmt"
	"game_roulette/internal/config"
	"os"

	"github.com/rs/zerolog"
)

const (
	logLevelEnvName  = "LOG_LEVEL"
	logPrettyEnvName = "LOG_PRETTY"
)

type logConfig struct {
	level  zerolog.Level
	pretty bool
}

func NewLogConfig() (config.LogConfig, error) {
	level := zerolog.InfoLevel
	if raw := os.Getenv(logLevelEnvName); raw != "" {
		parsed, err := zerolog.ParseLevel(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
		level = parsed
	}

	return &logConfig{
		level:  level,
		pretty: os.Getenv(logPrettyEnvName) != "",
	}, nil
}

func (l *logConfig) Level() zerolog.Level {
	return l.level
}

func (l *logConfig) Pretty() bool {
	return l.pretty
}
