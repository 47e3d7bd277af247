package config

import (
	"game_roulette/internal/model"
	"game_roulette/internal/spin"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
	AllowedOrigins() []string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}

// HostConfig - пароль ведущего, пустой хэш отключает проверку
type HostConfig interface {
	PasswordHash() string
	Enabled() bool
}

type HistoryConfig interface {
	Path() string
	Limit() int
}

type LogConfig interface {
	Level() zerolog.Level
	Pretty() bool
}

// SpinConfig - параметры кривой замедления из config.yaml
type SpinConfig interface {
	Timing() spin.Timing
}

// WheelDefaults - колеса по умолчанию из config.yaml
type WheelDefaults interface {
	Wheels() []model.Wheel
}

// ImportRules - правила разбора таблицы игр из config.yaml: допустимые категории,
// синонимы, объединение в группы и иконки итоговых категорий
type ImportRules interface {
	ValidCategories() []string
	Aliases() map[string]string
	Groups() map[string]string
	Icon(category string) string
}
