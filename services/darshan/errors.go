package darshan

import "strings"

// ErrorKind is the closed taxonomy of booking-submission failures. The
// backend signals the condition by embedding one of these tokens in its
// error message text.
type ErrorKind string

const (
	KindSlotFull         ErrorKind = "slot_full"
	KindAlreadyBooked    ErrorKind = "already_booked"
	KindPastSlot         ErrorKind = "past_slot"
	KindInvalidTime      ErrorKind = "invalid_time_format"
	KindNotAuthenticated ErrorKind = "not_authenticated"
	KindUnknown          ErrorKind = "unknown"
)

// Navigation targets issued with booking outcomes.
const (
	NavigateBookings = "/bookings"
	NavigateLogin    = "/login"
)

// ClassifyBookingError maps a backend error message to exactly one kind.
// Matching is by substring in fixed priority order; the first match wins,
// which keeps classification deterministic when a message carries more than
// one token. Anything unmatched lands in KindUnknown and must still reach
// the user verbatim.
func ClassifyBookingError(msg string) ErrorKind {
	switch {
	case strings.Contains(msg, "slot_full"):
		return KindSlotFull
	case strings.Contains(msg, "already_booked"):
		return KindAlreadyBooked
	case strings.Contains(msg, "past_slot"):
		return KindPastSlot
	case strings.Contains(msg, "invalid_time_format"):
		return KindInvalidTime
	case strings.Contains(msg, "not_authenticated"), strings.Contains(msg, "JWT"):
		return KindNotAuthenticated
	default:
		return KindUnknown
	}
}

// UserMessage renders the human-facing message for a failure kind. The
// unknown bucket surfaces the raw backend text to aid support diagnosis.
func (k ErrorKind) UserMessage(raw string) string {
	switch k {
	case KindSlotFull:
		return "Selected slot is full. Please choose another time."
	case KindAlreadyBooked:
		return "You already have a booking for this time."
	case KindPastSlot:
		return "That time is in the past. Please choose a future slot."
	case KindInvalidTime:
		return "Invalid time selected. Please try again."
	case KindNotAuthenticated:
		return "Please login to book a darshan."
	default:
		return "Booking failed: " + raw
	}
}

// Recoverable reports whether the user can retry from the booking screen
// without re-authenticating.
func (k ErrorKind) Recoverable() bool {
	return k != KindNotAuthenticated
}
