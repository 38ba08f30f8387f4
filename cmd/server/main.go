package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"ministry/internal/app/server"
	"ministry/internal/config"
	"ministry/internal/utils/logger"
)

func main() {
	conf := config.NewConfig()
	log := logger.NewWithLevel(conf.Env, conf.Logger.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := server.New(ctx, conf, log)
	if err != nil {
		log.Error("failed to init server", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
