package handler

import (
	"net/http"

	"todolist/internal/core/model/response"
	"todolist/internal/core/port"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	svc port.NotificationService
}

func NewNotificationHandler(svc port.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		svc: svc,
	}
}

func (n *NotificationHandler) GetActive(c *gin.Context) {
	toasts := n.svc.Active()

	data := make([]response.NotificationResponse, 0, len(toasts))

	for _, toast := range toasts {
		data = append(data, response.NotificationResponse{
			ID:        toast.ID,
			Message:   toast.Message,
			Severity:  string(toast.Severity),
			CreatedAt: toast.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, response.NotificationListResponse{
		Size: len(data),
		Data: data,
	})
}

// Dismiss is idempotent: dismissing an unknown id still returns 200.
func (n *NotificationHandler) Dismiss(c *gin.Context) {
	n.svc.Dismiss(c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Notification dismissed",
	})
}
