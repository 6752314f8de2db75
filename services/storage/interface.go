package storage

import "context"

// StorageService is the object-storage boundary for devotee avatars.
type StorageService interface {
	// UploadAvatar stores the file and returns its public URL.
	UploadAvatar(ctx context.Context, localFilePath, userID string) (string, error)
	// DeleteFile removes a previously uploaded object.
	DeleteFile(ctx context.Context, publicID string) error
}
