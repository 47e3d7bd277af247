package env

import (
	"game_roulette/internal/config"
	"net"
	"os"
	"strings"
)

const (
	httpHostEnvName    = "HTTP_HOST"
	httpPortEnvName    = "HTTP_PORT"
	corsOriginsEnvName = "CORS_ORIGINS"

	defaultHTTPPort = "8080"
)

type httpConfig struct {
	host    string
	port    string
	origins []string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	port := strings.TrimSpace(os.Getenv(httpPortEnvName))
	if port == "" {
		port = defaultHTTPPort
	}

	origins := []string{"*"}
	if raw := os.Getenv(corsOriginsEnvName); raw != "" {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return &httpConfig{
		host:    strings.TrimSpace(os.Getenv(httpHostEnvName)),
		port:    port,
		origins: origins,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return net.JoinHostPort(cfg.host, cfg.port)
}

func (cfg *httpConfig) AllowedOrigins() []string {
	return cfg.origins
}
