package models

import "time"

// ConfirmationPayload carries everything the dispatcher needs to render and
// send one booking-confirmation email.
type ConfirmationPayload struct {
	Email     string `json:"email"`
	BookingID string `json:"bookingId"`
	Date      string `json:"date"` // display-formatted, day-first
	Time      string `json:"time"`
}

// DispatchRecord is one confirmation send attempt, persisted for support
// diagnosis. A failed send never surfaces as a booking failure; the record
// is the only trace it leaves.
type DispatchRecord struct {
	ID          string    `bson:"id" json:"id"`
	BookingID   string    `bson:"bookingId" json:"bookingId"`
	Email       string    `bson:"email" json:"email"`
	Status      string    `bson:"status" json:"status"` // "sent", "failed"
	ProviderID  string    `bson:"providerId,omitempty" json:"providerId,omitempty"`
	Error       string    `bson:"error,omitempty" json:"error,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	CompletedAt time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
}
