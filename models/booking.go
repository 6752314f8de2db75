package models

import "time"

// Booking is a darshan booking record as the managed backend returns it.
// Records are created through the book_darshan procedure and never mutated
// by this service afterwards.
type Booking struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	BookingDate string    `json:"booking_date"` // YYYY-MM-DD, local calendar date
	TimeSlot    string    `json:"time_slot"`    // HH:MM, 24-hour
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// SlotGridConfig describes the bookable grid for a day.
type SlotGridConfig struct {
	StartHour       int `json:"startHour"`
	EndHour         int `json:"endHour"`
	IntervalMinutes int `json:"intervalMinutes"`
}

// DefaultSlotGrid is the temple's darshan window: 09:00 through 18:00
// inclusive, every 15 minutes.
var DefaultSlotGrid = SlotGridConfig{
	StartHour:       9,
	EndHour:         18,
	IntervalMinutes: 15,
}

// SlotAvailability is the slot picker payload for one calendar date.
type SlotAvailability struct {
	Date      string   `json:"date"`
	Slots     []string `json:"slots"`
	FullSlots []string `json:"fullSlots"`
	// Message is set when Slots is empty so the UI never renders a silent
	// blank list.
	Message string `json:"message,omitempty"`
}
