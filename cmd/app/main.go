package main

import (
	"context"

	"lodge/config"
	"lodge/di"
	"lodge/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeService()

	go app.Housekeeping.Run(context.Background())

	app.HTTP.Serve()
}
