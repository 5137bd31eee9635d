package http

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"todolist/internal/adapter/http/handler"
	"todolist/internal/adapter/storage/memory"
	"todolist/internal/adapter/storage/redis"
	"todolist/internal/core/port"
	"todolist/internal/core/service"
	"todolist/pkg/config"
)

type Container struct {
	Store         port.KeyValueStore
	Storage       port.TodoStorage
	Notifications port.NotificationService
	Todos         port.TodoService

	TodoHandler         *handler.TodoHandler
	NotificationHandler *handler.NotificationHandler
}

func NewContainer(ctx context.Context, cfg *config.Config, logger zerolog.Logger, probe port.Probe) (*Container, error) {
	store, err := newSessionStore(cfg)

	if err != nil {
		return nil, err
	}

	storage := service.NewTodoStorage(store, logger, probe)
	notifier := service.NewNotifier(cfg.ToastDuration(), logger, probe)
	todos := service.NewTodoService(ctx, storage, notifier, probe)

	return &Container{
		Store:         store,
		Storage:       storage,
		Notifications: notifier,
		Todos:         todos,

		TodoHandler:         handler.NewTodoHandler(todos),
		NotificationHandler: handler.NewNotificationHandler(notifier),
	}, nil
}

func newSessionStore(cfg *config.Config) (port.KeyValueStore, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return memory.NewSessionStore(cfg.SessionTTL(), cfg.Storage.QuotaBytes), nil
	case config.BackendRedis:
		return redis.NewSessionStore(cfg.Storage.RedisAddr, cfg.SessionTTL()), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}

func (c *Container) Close() {
	if notifier, ok := c.Notifications.(*service.Notifier); ok {
		notifier.Close()
	}

	_ = c.Store.Close()
}
