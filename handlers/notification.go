package handlers

import (
	"errors"
	"net/http"

	"darshanam/models"
	"darshanam/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler exposes the confirmation dispatcher endpoint. The
// booking orchestrator also reaches the same service through the task
// queue; this endpoint exists for the web client's direct fire-and-forget
// call.
type NotificationHandler struct {
	Svc    notification.NotificationService
	Logger *zap.Logger
}

// NewNotificationHandler creates a new NotificationHandler instance.
func NewNotificationHandler(svc notification.NotificationService, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{Svc: svc, Logger: logger}
}

// SendConfirmationHandler renders and sends one confirmation email.
// Registered for all methods so non-POST requests get a proper 405.
func (h *NotificationHandler) SendConfirmationHandler(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.Header("Allow", http.MethodPost)
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method Not Allowed"})
		return
	}

	var payload models.ConfirmationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if payload.Email == "" || payload.BookingID == "" || payload.Date == "" || payload.Time == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	err := h.Svc.SendConfirmation(c.Request.Context(), payload)
	if err != nil {
		var provErr *notification.ProviderError
		switch {
		case errors.Is(err, notification.ErrNotConfigured):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Email is not configured"})
		case errors.As(err, &provErr):
			c.JSON(http.StatusBadGateway, gin.H{"error": provErr.Message})
		default:
			h.Logger.Error("confirmation send failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
