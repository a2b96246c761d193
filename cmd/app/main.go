package main

import (
	"context"
	"lumen/config"
	"lumen/di"
	"lumen/shared/logger"
	"lumen/shared/timezone"

	"github.com/rs/zerolog/log"
)

// @title Lumen Lighting API
// @version 1.0
// @description Booking, contact and quote intake plus the admin installation map.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if err := timezone.Init(cfg.App.Timezone); err != nil {
		log.Fatal().Err(err).Msg("Failed to load application timezone")
	}

	app, err := di.InitializeApp()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	ctx := context.Background()

	switch {
	case cfg.Seed.Enable:
		res, err := app.Seeder.Run(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to seed database")
		}

		log.Info().
			Bool("role_created", res.RoleCreated).
			Bool("user_created", res.UserCreated).
			Int("locations_inserted", res.LocationsInserted).
			Msg("Database ready")
	case cfg.DB.Postgres.AutoMigrate:
		if err := app.Migrator.Up(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	app.HTTP.Serve()
}
