package env

import (
	"errors"
	"game_roulette/internal/config"
	"os"

	"github.com/rs/zerolog/log"
)

const (
	dsnName = "PG_DSN"
)

type pgConfig struct {
	dsn string
}

func NewPGConfig() (config.PGConfig, error) {
	dsn := os.Getenv(dsnName)
	if len(dsn) == 0 {
		return nil, errors.New("pg dsn not found")
	}
	log.Debug().Int("dsn_len", len(dsn)).Msg("pg config loaded")

	return &pgConfig{
		dsn: dsn,
	}, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.dsn
}
