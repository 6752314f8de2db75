package notification

import (
	"context"

	"github.com/resend/resend-go/v2"
)

// ResendMailer sends email through the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
}

// NewResendMailer returns a Mailer backed by Resend, or ErrNotConfigured
// when the key or from-address is missing.
func NewResendMailer(apiKey, from string) (*ResendMailer, error) {
	if apiKey == "" || from == "" {
		return nil, ErrNotConfigured
	}
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
	}, nil
}

func (m *ResendMailer) Send(ctx context.Context, msg Email) (string, error) {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	if len(msg.Attachment) > 0 {
		params.Attachments = []*resend.Attachment{{
			Content:     msg.Attachment,
			Filename:    msg.AttachName,
			ContentType: msg.ContentType,
			ContentId:   msg.AttachCID,
		}}
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", &ProviderError{Message: err.Error()}
	}
	return sent.Id, nil
}
