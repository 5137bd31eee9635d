package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	api "todolist/internal/adapter/http"
	"todolist/pkg/config"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))

	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "todolist").Logger()

	if cfg.Environment == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := api.StartServer(ctx, cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
