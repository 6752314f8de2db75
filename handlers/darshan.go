package handlers

import (
	"net/http"
	"time"

	"darshanam/models"
	"darshanam/services/darshan"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DarshanHandler exposes the slot picker and the booking flow.
type DarshanHandler struct {
	Svc    darshan.Service
	Logger *zap.Logger
}

// NewDarshanHandler creates a new DarshanHandler instance.
func NewDarshanHandler(svc darshan.Service, logger *zap.Logger) *DarshanHandler {
	return &DarshanHandler{Svc: svc, Logger: logger}
}

func sessionFromCtx(c *gin.Context) *models.DevoteeSession {
	if v, exists := c.Get("session"); exists {
		if sess, ok := v.(*models.DevoteeSession); ok {
			return sess
		}
	}
	return nil
}

func tokenFromCtx(c *gin.Context) string {
	if v, exists := c.Get("accessToken"); exists {
		if token, ok := v.(string); ok {
			return token
		}
	}
	return ""
}

// GetSlotsHandler returns the offerable slot grid for a date.
func (h *DarshanHandler) GetSlotsHandler(c *gin.Context) {
	dateParam := c.Query("date")
	if dateParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required (YYYY-MM-DD)"})
		return
	}
	date, err := time.ParseInLocation("2006-01-02", dateParam, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	avail, err := h.Svc.AvailableSlots(c.Request.Context(), tokenFromCtx(c), date)
	if err != nil {
		h.Logger.Error("failed to compute slot availability", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute availability"})
		return
	}
	c.JSON(http.StatusOK, avail)
}

// BookDarshanHandler submits one (date, time) pair. The outcome body always
// carries the user-facing message and, when applicable, a navigation target.
func (h *DarshanHandler) BookDarshanHandler(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	date, err := time.ParseInLocation("2006-01-02", input.Date, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	outcome := h.Svc.Book(c.Request.Context(), sessionFromCtx(c), tokenFromCtx(c), date, input.Time)
	c.JSON(statusForOutcome(outcome), outcome)
}

// statusForOutcome maps a booking outcome to an HTTP status.
func statusForOutcome(o *darshan.BookingOutcome) int {
	if o.OK {
		return http.StatusOK
	}
	switch o.Kind {
	case darshan.KindSlotFull, darshan.KindAlreadyBooked:
		return http.StatusConflict
	case darshan.KindPastSlot, darshan.KindInvalidTime:
		return http.StatusBadRequest
	case darshan.KindNotAuthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// MyBookingsHandler lists the caller's bookings, newest first.
func (h *DarshanHandler) MyBookingsHandler(c *gin.Context) {
	bookings, err := h.Svc.MyBookings(c.Request.Context(), tokenFromCtx(c))
	if err != nil {
		h.Logger.Error("failed to load bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load bookings", "details": err.Error()})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}
