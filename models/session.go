package models

import "time"

// DevoteeSession represents an authenticated devotee identity as cached by
// this service. The access token itself is issued and verified by the
// managed backend; only its fingerprint is used as the cache key.
type DevoteeSession struct {
	UserID        string    `json:"userId"`
	Email         string    `json:"email"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

// AuthResult is returned to the client after a successful sign-in.
type AuthResult struct {
	AccessToken string         `json:"accessToken"`
	Session     DevoteeSession `json:"session"`
}
