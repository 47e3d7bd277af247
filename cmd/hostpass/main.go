package main

import (
	"flag"
	"fmt"
	"game_roulette/pkg/pass"
	"os"

	"github.com/rs/zerolog/log"
)

// Печатает bcrypt хэш для HOST_PASSWORD_HASH
func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: hostpass <password>")
	}
	flag.Parse()
	if flag.NArg() != 1 || flag.Arg(0) == "" {
		flag.Usage()
		os.Exit(2)
	}

	hash, err := pass.HashPassword(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}
	fmt.Println(hash)
}
