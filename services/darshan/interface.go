package darshan

import (
	"context"
	"time"

	"darshanam/models"
)

// BookingOutcome is the terminal result of one submission attempt. Exactly
// one navigation directive is issued per attempt: the bookings list on
// success, the login page on an authentication failure, otherwise none (the
// devotee stays on the booking screen to retry).
type BookingOutcome struct {
	OK        bool      `json:"ok"`
	BookingID string    `json:"bookingId,omitempty"`
	Kind      ErrorKind `json:"kind,omitempty"`
	Message   string    `json:"message"`
	Navigate  string    `json:"navigate,omitempty"`
}

// ConfirmationDispatcher hands a confirmation payload to the notification
// pipeline. The call must be cheap; delivery happens elsewhere.
type ConfirmationDispatcher interface {
	EnqueueConfirmation(payload models.ConfirmationPayload) error
}

// Service sequences the darshan booking flow.
type Service interface {
	// AvailableSlots returns the offerable slot grid for a date, with the
	// backend-reported full slots for that date as advisory UI state.
	AvailableSlots(ctx context.Context, token string, date time.Time) (*models.SlotAvailability, error)

	// Book submits one (date, slot) pair for the given session. All failure
	// branches are handled here and folded into the outcome; nothing
	// propagates further up.
	Book(ctx context.Context, sess *models.DevoteeSession, token string, date time.Time, timeSlot string) *BookingOutcome

	// MyBookings returns the session's bookings, newest first.
	MyBookings(ctx context.Context, token string) ([]models.Booking, error)
}
