package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := newRootCommand().Execute(); err != nil {
		log.Error().Err(err).Msg("wordbreak failed")
		os.Exit(1)
	}
}
