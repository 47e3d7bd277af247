package env

import (
	"game_roulette/internal/config"
	"os"
)

const hostPasswordHashEnvName = "HOST_PASSWORD_HASH"

type hostConfig struct {
	passwordHash string
}

// NewHostConfig - если хэш не задан, изменяющие ручки открыты всем (игра на одном компьютере)
func NewHostConfig() config.HostConfig {
	return &hostConfig{passwordHash: os.Getenv(hostPasswordHashEnvName)}
}

func (h *hostConfig) PasswordHash() string {
	return h.passwordHash
}

func (h *hostConfig) Enabled() bool {
	return h.passwordHash != ""
}
