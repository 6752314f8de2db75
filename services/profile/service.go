package profile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"darshanam/backend"
	"darshanam/models"
	"darshanam/services/storage"

	"go.uber.org/zap"
)

// DefaultProfileService is the production implementation.
type DefaultProfileService struct {
	Backend backend.Client
	Storage storage.StorageService
	Logger  *zap.Logger
}

// Get returns the profile view for a user. An absent profile row is not an
// error: the view carries the derived devotee id with empty fields.
func (s *DefaultProfileService) Get(ctx context.Context, userID string) (*models.ProfileView, error) {
	p, err := s.Backend.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	view := &models.ProfileView{DevoteeID: models.DevoteeID(userID)}
	if p != nil {
		view.Profile = *p
	}
	view.ID = userID
	return view, nil
}

// Save upserts the profile row. When the backend rejects the write because
// the deployed schema lacks the optional phone/location columns, the write
// is retried with the guaranteed column set and the result flags that the
// optional fields were not persisted.
func (s *DefaultProfileService) Save(ctx context.Context, token, userID string, in ProfileInput) (*SaveResult, error) {
	base := backend.ProfileUpsert{
		ID:          userID,
		DisplayName: strings.TrimSpace(in.DisplayName),
		Bio:         strings.TrimSpace(in.Bio),
		AvatarURL:   in.AvatarURL,
		UpdatedAt:   time.Now().Format(time.RFC3339),
	}

	withOptional := base
	withOptional.Phone = strings.TrimSpace(in.Phone)
	withOptional.Location = strings.TrimSpace(in.Location)

	err := s.Backend.UpsertProfile(ctx, token, withOptional)
	if err == nil {
		return &SaveResult{}, nil
	}
	if !backend.IsUndefinedColumn(err) {
		return nil, err
	}

	s.Logger.Info("optional profile columns missing in backend schema, retrying with base columns",
		zap.String("userId", userID))
	if err := s.Backend.UpsertProfile(ctx, token, base); err != nil {
		return nil, err
	}
	return &SaveResult{OptionalDropped: true}, nil
}

// UploadAvatar pushes the file to object storage and returns the public
// URL. The URL is merged into the profile record on the next save; the two
// writes are independent.
func (s *DefaultProfileService) UploadAvatar(ctx context.Context, userID, localFilePath string) (string, error) {
	url, err := s.Storage.UploadAvatar(ctx, localFilePath, userID)
	if err != nil {
		return "", err
	}
	s.Logger.Info("avatar uploaded", zap.String("userId", userID))
	return url, nil
}
