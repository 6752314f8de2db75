package models

import (
	"strings"
	"time"
)

// Profile is a devotee profile row in the managed backend.
type Profile struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio"`
	Phone       string    `json:"phone,omitempty"`
	Location    string    `json:"location,omitempty"`
	AvatarURL   string    `json:"avatar_url"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProfileView is the profile as served to clients, with derived fields.
type ProfileView struct {
	Profile
	DevoteeID string `json:"devoteeId"`
}

// DevoteeID derives the human-facing devotee identifier from a user id.
func DevoteeID(userID string) string {
	short := userID
	if len(short) > 6 {
		short = short[:6]
	}
	return "AYY-" + strings.ToUpper(short)
}
