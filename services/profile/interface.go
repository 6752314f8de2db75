package profile

import (
	"context"

	"darshanam/models"
)

// ProfileInput is the editable field set submitted by the devotee.
type ProfileInput struct {
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	AvatarURL   string `json:"avatar_url"`
}

// SaveResult reports how a profile save landed. OptionalDropped is set when
// the backend schema is missing the optional columns and the write was
// retried with the guaranteed set only; the user must be told those fields
// were not persisted.
type SaveResult struct {
	OptionalDropped bool `json:"optionalDropped"`
}

// ProfileService is the profile view-model: fetch-or-absent reads, upserts
// with schema-drift tolerance, and avatar upload.
type ProfileService interface {
	Get(ctx context.Context, userID string) (*models.ProfileView, error)
	Save(ctx context.Context, token, userID string, in ProfileInput) (*SaveResult, error)
	UploadAvatar(ctx context.Context, userID, localFilePath string) (string, error)
}
