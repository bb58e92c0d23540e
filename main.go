package main

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/irevoire/angle/internal/config"
	"github.com/irevoire/angle/internal/daily"
	"github.com/irevoire/angle/internal/httpserver"
	"github.com/irevoire/angle/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	st := store.NewMemoryStore()
	if cfg.DBPath != "" {
		st, err = store.OpenSQLite(context.Background(), cfg.DBPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open session store")
		}
	}
	defer st.Close()

	srv := httpserver.New(st, cfg, daily.RealClock{})
	log.Info().
		Str("port", cfg.Port).
		Str("tz", cfg.Location.String()).
		Bool("sqlite", cfg.DBPath != "").
		Msg("starting angle server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
