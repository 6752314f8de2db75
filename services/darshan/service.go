package darshan

import (
	"context"
	"fmt"
	"time"

	"darshanam/backend"
	"darshanam/models"

	"go.uber.org/zap"
)

// DefaultService is the production implementation of Service.
type DefaultService struct {
	Backend    backend.Client
	Dispatcher ConfirmationDispatcher
	Grid       models.SlotGridConfig
	Logger     *zap.Logger

	// Now is the clock used for past-slot filtering; overridable in tests.
	Now func() time.Time
}

func (s *DefaultService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// AvailableSlots builds the offerable grid for a date. A full-slots query
// failure degrades to an empty advisory list; the booking procedure remains
// the only authority on capacity.
func (s *DefaultService) AvailableSlots(ctx context.Context, token string, date time.Time) (*models.SlotAvailability, error) {
	slots := FilterPast(SlotGrid(s.Grid), date, s.now())

	full, err := s.Backend.FullTimes(ctx, token, FormatLocalDate(date))
	if err != nil {
		s.Logger.Warn("full-slots query failed, serving grid without capacity hints",
			zap.String("date", FormatLocalDate(date)),
			zap.Error(err))
		full = nil
	}

	avail := &models.SlotAvailability{
		Date:      FormatLocalDate(date),
		Slots:     slots,
		FullSlots: full,
	}
	if len(slots) == 0 {
		avail.Message = "No slots available today. Choose another date."
	}
	return avail, nil
}

// Book runs the submission sequence: normalize the date locally, invoke the
// booking procedure, then on success fire the confirmation dispatch without
// waiting on it. Failures are classified into the fixed taxonomy.
func (s *DefaultService) Book(ctx context.Context, sess *models.DevoteeSession, token string, date time.Time, timeSlot string) *BookingOutcome {
	localDate := FormatLocalDate(date)

	bookingID, err := s.Backend.BookDarshan(ctx, token, localDate, timeSlot)
	if err != nil {
		kind := ClassifyBookingError(err.Error())
		outcome := &BookingOutcome{
			Kind:    kind,
			Message: kind.UserMessage(err.Error()),
		}
		if kind == KindNotAuthenticated {
			outcome.Navigate = NavigateLogin
		}
		s.Logger.Warn("darshan booking rejected",
			zap.String("date", localDate),
			zap.String("slot", timeSlot),
			zap.String("kind", string(kind)),
			zap.Error(err))
		return outcome
	}

	// Best-effort confirmation email. An enqueue failure must never fail or
	// roll back the booking, so it is logged and swallowed.
	var email string
	if sess != nil {
		email = sess.Email
	}
	payload := models.ConfirmationPayload{
		Email:     email,
		BookingID: bookingID,
		Date:      FormatDisplayDate(date),
		Time:      timeSlot,
	}
	if err := s.Dispatcher.EnqueueConfirmation(payload); err != nil {
		s.Logger.Warn("failed to enqueue booking confirmation",
			zap.String("bookingId", bookingID),
			zap.Error(err))
	}

	s.Logger.Info("darshan booked",
		zap.String("bookingId", bookingID),
		zap.String("date", localDate),
		zap.String("slot", timeSlot))

	return &BookingOutcome{
		OK:        true,
		BookingID: bookingID,
		Message:   "Darshan booked successfully",
		Navigate:  NavigateBookings,
	}
}

// MyBookings fetches the caller's bookings; the backend orders them by
// creation time descending.
func (s *DefaultService) MyBookings(ctx context.Context, token string) ([]models.Booking, error) {
	bookings, err := s.Backend.MyBookings(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	return bookings, nil
}
