package main

import (
	"context"
	"flag"
	"game_roulette/internal/app"

	"github.com/rs/zerolog/log"
)

func main() {
	var opts app.MigrateOptions
	flag.StringVar(&opts.ListsDir, "lists", "public/lists", "directory with _index.json and category files, empty to skip")
	flag.StringVar(&opts.CSVPath, "csv", "", "games table export (csv), replaces -lists when set")
	flag.StringVar(&opts.PlayersDir, "players", "public/players", "directory with _index.json and player files, empty to skip")
	flag.BoolVar(&opts.Wheels, "wheels", true, "replace custom wheels with the defaults from config.yaml")
	flag.Parse()

	if err := app.NewApp().Migrate(context.Background(), opts); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	log.Info().Msg("migration completed")
}
