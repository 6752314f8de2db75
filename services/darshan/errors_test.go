package darshan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBookingError(t *testing.T) {
	cases := []struct {
		msg  string
		want ErrorKind
	}{
		{"slot_full", KindSlotFull},
		{"booking rejected: slot_full for 10:00", KindSlotFull},
		{"already_booked", KindAlreadyBooked},
		{"past_slot: time has already elapsed", KindPastSlot},
		{"invalid_time_format", KindInvalidTime},
		{"not_authenticated", KindNotAuthenticated},
		{"JWT expired", KindNotAuthenticated},
		{"invalid JWT: unable to parse", KindNotAuthenticated},
		{"something else entirely", KindUnknown},
		{"", KindUnknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyBookingError(tc.msg), "msg=%q", tc.msg)
	}
}

func TestClassifyBookingErrorPriority(t *testing.T) {
	// Ambiguous messages resolve deterministically by the fixed priority.
	assert.Equal(t, KindSlotFull, ClassifyBookingError("already_booked and slot_full"))
	assert.Equal(t, KindAlreadyBooked, ClassifyBookingError("already_booked past_slot"))
	assert.Equal(t, KindPastSlot, ClassifyBookingError("past_slot invalid_time_format"))
	assert.Equal(t, KindInvalidTime, ClassifyBookingError("invalid_time_format JWT"))
}

func TestClassifyIgnoresUnrelatedSubstrings(t *testing.T) {
	got := ClassifyBookingError("rpc book_darshan failed with slot_full (request id 8f2)")
	assert.Equal(t, KindSlotFull, got)
}

func TestUserMessageFallbackCarriesRawText(t *testing.T) {
	raw := "connection reset by peer"
	assert.Equal(t, "Booking failed: "+raw, KindUnknown.UserMessage(raw))

	// Classified kinds use their fixed copy, not the raw text.
	assert.NotContains(t, KindSlotFull.UserMessage(raw), raw)
}

func TestRecoverable(t *testing.T) {
	assert.True(t, KindSlotFull.Recoverable())
	assert.True(t, KindUnknown.Recoverable())
	assert.False(t, KindNotAuthenticated.Recoverable())
}
