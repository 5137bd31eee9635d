package routes

import (
	"net/http"

	"todolist/internal/adapter/http/handler"
	"todolist/internal/adapter/http/middleware"
	"todolist/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

type HandlersConfig struct {
	TodoHandler         *handler.TodoHandler
	NotificationHandler *handler.NotificationHandler
}

func SetupRouter(handlers HandlersConfig, cfg *config.Config, logger zerolog.Logger, registry *prometheus.Registry) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if registry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	todos := router.Group("/todos")
	{
		todos.GET("", handlers.TodoHandler.GetAllTodos)
		todos.POST("", handlers.TodoHandler.CreateTodo)
		todos.PATCH("/:id", handlers.TodoHandler.UpdateTodo)
		todos.POST("/:id/toggle", handlers.TodoHandler.ToggleTodo)
		todos.DELETE("/:id", handlers.TodoHandler.DeleteTodo)
	}

	notifications := router.Group("/notifications")
	{
		notifications.GET("", handlers.NotificationHandler.GetActive)
		notifications.DELETE("/:id", handlers.NotificationHandler.Dismiss)
	}

	return router
}
