// Package backend is the typed client for the external managed backend.
// Persistence, authentication and booking-conflict resolution all live on
// the other side of this boundary: the procedures invoked here are opaque
// and authoritative, and this service only orchestrates around them.
package backend

import (
	"context"

	"darshanam/models"
)

// ProfileUpsert is the writable column set for a profile row. Phone and
// Location are optional columns that may be missing from the deployed
// schema; see Client.UpsertProfile.
type ProfileUpsert struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	AvatarURL   string `json:"avatar_url"`
	UpdatedAt   string `json:"updated_at"`
	Phone       string `json:"phone,omitempty"`
	Location    string `json:"location,omitempty"`
}

// Credentials is the password-grant sign-in request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthSession is the backend's answer to a successful sign-in.
type AuthSession struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
}

// Client is the managed-backend boundary: one method per named procedure or
// table query. Implementations must surface backend failures as *Error so
// the caller can classify them by message text.
type Client interface {
	// BookDarshan invokes the book_darshan procedure. The call is atomic
	// and authoritative: capacity, duplicates and past-time conditions are
	// re-validated server-side regardless of any client-side filtering.
	// On success it returns the opaque booking identifier.
	BookDarshan(ctx context.Context, token, date, timeSlot string) (string, error)

	// FullTimes invokes darshan_full_times and returns the time slots that
	// are already at capacity for the given date.
	FullTimes(ctx context.Context, token, date string) ([]string, error)

	// MyBookings returns all bookings owned by the token's identity,
	// created_at descending.
	MyBookings(ctx context.Context, token string) ([]models.Booking, error)

	// GetProfile fetches a profile row, or nil when absent.
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)

	// UpsertProfile writes a profile row keyed by id.
	UpsertProfile(ctx context.Context, token string, row ProfileUpsert) error

	// SignIn performs a password-grant authentication.
	SignIn(ctx context.Context, creds Credentials) (*AuthSession, error)

	// SignOut revokes the given access token.
	SignOut(ctx context.Context, token string) error
}
