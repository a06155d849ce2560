package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/coregames/apps/go-server/internal/config"
	"github.com/robalobadob/coregames/apps/go-server/internal/connections"
	"github.com/robalobadob/coregames/apps/go-server/internal/httpserver"
	"github.com/robalobadob/coregames/apps/go-server/internal/store"
	"github.com/robalobadob/coregames/apps/go-server/internal/words"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := words.Init(words.Sources{PrimaryPath: cfg.WordsFile, SecondaryPath: cfg.WordsSecondary}); err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionaries")
	}
	if err := connections.Init(cfg.ConnectionsFile); err != nil {
		log.Fatal().Err(err).Msg("failed to load connections data")
	}

	db, err := openDB(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
	}
	defer db.Close()
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	srv := httpserver.New(cfg, store.NewMemoryStore(cfg.StoreCapacity), db)
	log.Info().Str("port", cfg.Port).Int("gridSize", cfg.GridSize).Msg("starting go-server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
