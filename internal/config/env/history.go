package env

import (
	"fmt"
	"game_roulette/internal/config"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
)

const (
	historyPathEnvName  = "HISTORY_PATH"
	historyLimitEnvName = "HISTORY_LIMIT"

	// maxHistoryLimit - больше 50 записей история не хранит
	maxHistoryLimit = 50
)

type historyConfig struct {
	path  string
	limit int
}

func NewHistoryConfig() (config.HistoryConfig, error) {
	limit := maxHistoryLimit
	if raw := os.Getenv(historyLimitEnvName); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid history limit %q", raw)
		}
		if parsed > maxHistoryLimit {
			log.Warn().Int("limit", parsed).Int("max", maxHistoryLimit).Msg("history limit is capped")
			parsed = maxHistoryLimit
		}
		limit = parsed
	}

	return &historyConfig{
		path:  os.Getenv(historyPathEnvName),
		limit: limit,
	}, nil
}

func (h *historyConfig) Path() string {
	return h.path
}

func (h *historyConfig) Limit() int {
	return h.limit
}
