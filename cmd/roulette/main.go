package main

import (
	"game_roulette/internal/app"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := app.NewApp().Run(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
