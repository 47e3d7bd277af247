package app

import (
	"context"
	"errors"
	"game_roulette/internal/config"
	"game_roulette/internal/config/env"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

// initLogger - уровень и формат логов из окружения
func initLogger() {
	cfg, err := env.NewLogConfig()
	if err != nil {
		log.Warn().Err(err).Msg("bad log config, using defaults")
		return
	}
	zerolog.SetGlobalLevel(cfg.Level())
	if cfg.Pretty() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	}
}

func (s *App) Run() error {
	err := config.Load(".env")
	if err != nil {
		log.Info().Err(err).Msg("no .env file, using environment")
	}
	initLogger()
	s.initServiceProvider()
	defer s.ServiceProvider.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := s.ServiceProvider.Router(ctx)

	server := &http.Server{
		Addr:              s.ServiceProvider.HTTPCfg().Address(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("starting server")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Колеса останавливаем до Shutdown: потоки /roll/stream закроются сами
	s.ServiceProvider.RollService(ctx).Close()
	return server.Shutdown(shutdownCtx)
}
