package main

import (
	"os"
	_ "time/tzdata"

	"github.com/rs/zerolog/log"

	"tzform/config"
	"tzform/di"
	"tzform/helper"
	"tzform/shared/logger"
	"tzform/shared/timezone"
)

// @title tzform API
// @version 1.0
// @description Contact preferences with zone-aware date and time entry.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.UseStructuredOutput(cfg, os.Stdout)

	logger.SetLogLevel(cfg)

	timezone.SetAppLocation(cfg.App.Timezone)

	if cfg.DB.Driver == config.DBDriverPostgres && cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http, cleanup, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}
	defer cleanup()

	http.Serve()
}
