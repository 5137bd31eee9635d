package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"todolist/internal/adapter/http/routes"
	"todolist/internal/core/telemetry"
	"todolist/pkg/config"
)

func StartServer(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	registry := prometheus.NewRegistry()
	probe := telemetry.NewPrometheusProbe(registry)

	container, err := NewContainer(ctx, cfg, logger, probe)

	if err != nil {
		return err
	}

	defer container.Close()

	router := routes.SetupRouter(routes.HandlersConfig{
		TodoHandler:         container.TodoHandler,
		NotificationHandler: container.NotificationHandler,
	}, cfg, logger, registry)

	slog.Info("Server starting",
		"port", cfg.Server.Port,
		"environment", cfg.Environment,
		"storage_backend", cfg.Storage.Backend)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout(),
		WriteTimeout: cfg.WriteTimeout(),
	}

	errCh := make(chan error, 1)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
