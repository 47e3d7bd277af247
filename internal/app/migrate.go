package app

import (
	"context"
	"game_roulette/internal/config"
	"game_roulette/internal/importer"
	"game_roulette/internal/model"

	"github.com/rs/zerolog/log"
)

// MigrateOptions - что загружать в базу. Пустой путь пропускает шаг.
// CSVPath, если задан, используется вместо ListsDir
type MigrateOptions struct {
	ListsDir   string
	CSVPath    string
	PlayersDir string
	Wheels     bool
}

// Migrate загружает категории, игроков и колеса по умолчанию
func (s *App) Migrate(ctx context.Context, opts MigrateOptions) error {
	if err := config.Load(".env"); err != nil {
		log.Info().Err(err).Msg("no .env file, using environment")
	}
	initLogger()
	s.initServiceProvider()
	defer s.ServiceProvider.Close()

	sp := s.ServiceProvider
	deps := importer.Deps{
		Categories: sp.CategoryRepository(ctx),
		Players:    sp.PlayerRepository(ctx),
		Wheels:     sp.WheelService(ctx),
		TxManager:  sp.TXManager(ctx),
	}

	if opts.CSVPath != "" || opts.ListsDir != "" {
		categories, err := s.loadCategories(opts)
		if err != nil {
			return err
		}
		stats, err := importer.ImportCategories(ctx, deps, categories)
		if err != nil {
			return err
		}
		log.Info().Int("categories", stats.Categories).Int("games", stats.Games).Msg("categories migrated")
	}

	if opts.PlayersDir != "" {
		players, err := importer.LoadPlayers(opts.PlayersDir)
		if err != nil {
			return err
		}
		stats, err := importer.ImportPlayers(ctx, deps, players)
		if err != nil {
			return err
		}
		log.Info().Int("players", stats.Players).Msg("players migrated")
	}

	if opts.Wheels {
		stats, err := importer.ResetWheels(ctx, deps)
		if err != nil {
			return err
		}
		log.Info().Int("wheels", stats.Wheels).Msg("default wheels saved")
	}

	return nil
}

func (s *App) loadCategories(opts MigrateOptions) ([]model.Category, error) {
	if opts.CSVPath != "" {
		log.Info().Str("path", opts.CSVPath).Msg("loading categories from csv")
		return importer.LoadCategoriesCSV(opts.CSVPath, s.ServiceProvider.ImportRules())
	}
	return importer.LoadCategories(opts.ListsDir)
}
