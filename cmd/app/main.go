package main

import (
	"context"

	"casatente/config"
	"casatente/di"
	"casatente/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeApp()

	if err := app.Scheduler.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start lifecycle sweep")
	}

	defer app.Scheduler.Stop()

	app.HTTP.Serve()
}
