package notification

import (
	"context"
	"errors"

	"darshanam/models"
)

// ErrNotConfigured signals that the mail provider key or from-address is
// missing from configuration.
var ErrNotConfigured = errors.New("email is not configured")

// ProviderError is a rejection from the transactional-email provider.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}

// Mailer sends one rendered email and returns the provider's message id.
type Mailer interface {
	Send(ctx context.Context, msg Email) (string, error)
}

// Email is a rendered message with an optional inline attachment.
type Email struct {
	To          string
	Subject     string
	HTML        string
	Attachment  []byte
	AttachName  string
	AttachCID   string
	ContentType string
}

// NotificationService renders and sends booking-confirmation emails. Every
// attempt is recorded; the caller decides whether a failure matters.
type NotificationService interface {
	SendConfirmation(ctx context.Context, payload models.ConfirmationPayload) error
}
