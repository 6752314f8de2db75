package darshan

import (
	"context"
	"errors"
	"testing"
	"time"

	"darshanam/backend"
	"darshanam/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeBackend implements backend.Client for orchestrator tests.
type fakeBackend struct {
	bookID    string
	bookErr   error
	bookCalls int
	lastDate  string
	lastSlot  string

	fullTimes []string
	fullErr   error

	bookings    []models.Booking
	bookingsErr error
}

func (f *fakeBackend) BookDarshan(ctx context.Context, token, date, slot string) (string, error) {
	f.bookCalls++
	f.lastDate = date
	f.lastSlot = slot
	if f.bookErr != nil {
		return "", f.bookErr
	}
	return f.bookID, nil
}

func (f *fakeBackend) FullTimes(ctx context.Context, token, date string) ([]string, error) {
	return f.fullTimes, f.fullErr
}

func (f *fakeBackend) MyBookings(ctx context.Context, token string) ([]models.Booking, error) {
	return f.bookings, f.bookingsErr
}

func (f *fakeBackend) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	return nil, nil
}

func (f *fakeBackend) UpsertProfile(ctx context.Context, token string, row backend.ProfileUpsert) error {
	return nil
}

func (f *fakeBackend) SignIn(ctx context.Context, creds backend.Credentials) (*backend.AuthSession, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBackend) SignOut(ctx context.Context, token string) error { return nil }

type fakeDispatcher struct {
	payloads []models.ConfirmationPayload
	err      error
}

func (f *fakeDispatcher) EnqueueConfirmation(p models.ConfirmationPayload) error {
	f.payloads = append(f.payloads, p)
	return f.err
}

func newTestService(be *fakeBackend, d *fakeDispatcher) *DefaultService {
	return &DefaultService{
		Backend:    be,
		Dispatcher: d,
		Grid:       models.DefaultSlotGrid,
		Logger:     zap.NewNop(),
		Now:        func() time.Time { return time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func TestBookSuccess(t *testing.T) {
	be := &fakeBackend{bookID: "abc123"}
	d := &fakeDispatcher{}
	svc := newTestService(be, d)

	sess := &models.DevoteeSession{UserID: "u1", Email: "devotee@example.com"}
	date := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)

	outcome := svc.Book(context.Background(), sess, "tok", date, "10:00")

	require.True(t, outcome.OK)
	assert.Equal(t, "abc123", outcome.BookingID)
	assert.Equal(t, NavigateBookings, outcome.Navigate)
	assert.Equal(t, "2025-05-02", be.lastDate)
	assert.Equal(t, "10:00", be.lastSlot)
	assert.Equal(t, 1, be.bookCalls)

	// Notification attempted exactly once with the booking id.
	require.Len(t, d.payloads, 1)
	assert.Equal(t, "abc123", d.payloads[0].BookingID)
	assert.Equal(t, "devotee@example.com", d.payloads[0].Email)
	assert.Equal(t, "02/05/2025", d.payloads[0].Date)
	assert.Equal(t, "10:00", d.payloads[0].Time)
}

func TestBookSuccessDispatchFailureIsSwallowed(t *testing.T) {
	be := &fakeBackend{bookID: "abc123"}
	d := &fakeDispatcher{err: errors.New("queue unavailable")}
	svc := newTestService(be, d)

	outcome := svc.Book(context.Background(), &models.DevoteeSession{Email: "x@y.z"}, "tok",
		time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC), "10:00")

	// The booking must not appear to fail because the email could not be
	// queued, and the attempt is not retried.
	require.True(t, outcome.OK)
	assert.Equal(t, NavigateBookings, outcome.Navigate)
	assert.Len(t, d.payloads, 1)
}

func TestBookPastSlot(t *testing.T) {
	be := &fakeBackend{bookErr: &backend.Error{Message: "past_slot: time has already elapsed"}}
	d := &fakeDispatcher{}
	svc := newTestService(be, d)

	outcome := svc.Book(context.Background(), &models.DevoteeSession{}, "tok",
		time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC), "10:00")

	require.False(t, outcome.OK)
	assert.Equal(t, KindPastSlot, outcome.Kind)
	assert.Equal(t, "That time is in the past. Please choose a future slot.", outcome.Message)
	// No navigation: the devotee stays on the booking screen.
	assert.Empty(t, outcome.Navigate)
	assert.Empty(t, d.payloads)
}

func TestBookSlotFullWinsOverAlreadyBooked(t *testing.T) {
	be := &fakeBackend{bookErr: &backend.Error{Message: "already_booked; slot_full"}}
	svc := newTestService(be, &fakeDispatcher{})

	outcome := svc.Book(context.Background(), nil, "tok",
		time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC), "10:00")

	assert.Equal(t, KindSlotFull, outcome.Kind)
}

func TestBookAuthFailureRedirectsToLogin(t *testing.T) {
	be := &fakeBackend{bookErr: &backend.Error{Message: "invalid JWT: token is expired"}}
	svc := newTestService(be, &fakeDispatcher{})

	outcome := svc.Book(context.Background(), nil, "", time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC), "10:00")

	require.False(t, outcome.OK)
	assert.Equal(t, KindNotAuthenticated, outcome.Kind)
	assert.Equal(t, NavigateLogin, outcome.Navigate)
	assert.Equal(t, "Please login to book a darshan.", outcome.Message)
}

func TestBookUnknownErrorSurfacesRawText(t *testing.T) {
	be := &fakeBackend{bookErr: &backend.Error{Code: "XX000", Message: "connection reset"}}
	d := &fakeDispatcher{}
	svc := newTestService(be, d)

	outcome := svc.Book(context.Background(), nil, "tok",
		time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC), "10:00")

	require.False(t, outcome.OK)
	assert.Equal(t, KindUnknown, outcome.Kind)
	assert.Contains(t, outcome.Message, "connection reset")
	assert.Empty(t, outcome.Navigate)
	assert.Empty(t, d.payloads)
}

func TestAvailableSlotsToday(t *testing.T) {
	be := &fakeBackend{fullTimes: []string{"18:00"}}
	svc := newTestService(be, &fakeDispatcher{})
	svc.Now = func() time.Time { return time.Date(2025, 5, 2, 17, 50, 0, 0, time.UTC) }

	avail, err := svc.AvailableSlots(context.Background(), "tok",
		time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, []string{"18:00"}, avail.Slots)
	assert.Equal(t, []string{"18:00"}, avail.FullSlots)
	assert.Empty(t, avail.Message)
}

func TestAvailableSlotsEmptyCarriesMessage(t *testing.T) {
	be := &fakeBackend{}
	svc := newTestService(be, &fakeDispatcher{})
	svc.Now = func() time.Time { return time.Date(2025, 5, 2, 19, 0, 0, 0, time.UTC) }

	avail, err := svc.AvailableSlots(context.Background(), "tok",
		time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Empty(t, avail.Slots)
	assert.Equal(t, "No slots available today. Choose another date.", avail.Message)
}

func TestAvailableSlotsFullTimesFailureDegrades(t *testing.T) {
	be := &fakeBackend{fullErr: errors.New("rpc unavailable")}
	svc := newTestService(be, &fakeDispatcher{})

	avail, err := svc.AvailableSlots(context.Background(), "tok",
		time.Date(2025, 5, 9, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Len(t, avail.Slots, 37)
	assert.Empty(t, avail.FullSlots)
}

func TestMyBookings(t *testing.T) {
	be := &fakeBackend{bookings: []models.Booking{
		{ID: "b2", TimeSlot: "11:00"},
		{ID: "b1", TimeSlot: "10:00"},
	}}
	svc := newTestService(be, &fakeDispatcher{})

	got, err := svc.MyBookings(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b2", got[0].ID)
}

func TestMyBookingsError(t *testing.T) {
	be := &fakeBackend{bookingsErr: errors.New("backend down")}
	svc := newTestService(be, &fakeDispatcher{})

	_, err := svc.MyBookings(context.Background(), "tok")
	assert.Error(t, err)
}
