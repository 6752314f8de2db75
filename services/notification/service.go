package notification

import (
	"context"
	"encoding/json"
	"fmt"

	dispatchRepo "darshanam/database/repository/dispatch"
	"darshanam/models"

	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Mailer  Mailer
	Records dispatchRepo.DispatchRecordRepository
	Logger  *zap.Logger

	// BaseURL is the public origin used for the bookings link embedded in
	// the email and the QR payload.
	BaseURL string
}

// ticketPayload is what the temple-entry scanner reads off the QR code.
type ticketPayload struct {
	BookingID string `json:"bookingId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	URL       string `json:"url"`
}

// SendConfirmation renders the confirmation email with an embedded ticket
// QR and sends it, recording the attempt either way.
func (s *DefaultNotificationService) SendConfirmation(ctx context.Context, payload models.ConfirmationPayload) error {
	if s.Mailer == nil {
		return ErrNotConfigured
	}

	recordID, err := s.Records.Create(ctx, models.DispatchRecord{
		BookingID: payload.BookingID,
		Email:     payload.Email,
	})
	if err != nil {
		// Accounting must not block delivery.
		s.Logger.Warn("failed to create dispatch record", zap.Error(err))
	}

	ticketURL := s.BaseURL + "/bookings"

	qrJSON, err := json.Marshal(ticketPayload{
		BookingID: payload.BookingID,
		Date:      payload.Date,
		Time:      payload.Time,
		URL:       ticketURL,
	})
	if err != nil {
		return s.fail(ctx, recordID, fmt.Errorf("failed to build ticket payload: %w", err))
	}
	qrPNG, err := qrcode.Encode(string(qrJSON), qrcode.Medium, 320)
	if err != nil {
		return s.fail(ctx, recordID, fmt.Errorf("failed to encode ticket QR: %w", err))
	}

	msg := Email{
		To:          payload.Email,
		Subject:     "Darshan Booking Confirmed",
		HTML:        renderConfirmationHTML(payload, ticketURL),
		Attachment:  qrPNG,
		AttachName:  "ticket-qr.png",
		AttachCID:   "ticket-qr",
		ContentType: "image/png",
	}

	providerID, err := s.Mailer.Send(ctx, msg)
	if err != nil {
		return s.fail(ctx, recordID, err)
	}

	if recordID != "" {
		if err := s.Records.MarkResult(ctx, recordID, "sent", providerID, ""); err != nil {
			s.Logger.Warn("failed to mark dispatch record sent", zap.Error(err))
		}
	}
	s.Logger.Info("booking confirmation sent",
		zap.String("bookingId", payload.BookingID),
		zap.String("providerId", providerID))
	return nil
}

func (s *DefaultNotificationService) fail(ctx context.Context, recordID string, err error) error {
	if recordID != "" {
		if merr := s.Records.MarkResult(ctx, recordID, "failed", "", err.Error()); merr != nil {
			s.Logger.Warn("failed to mark dispatch record failed", zap.Error(merr))
		}
	}
	return err
}

// renderConfirmationHTML builds the email body. Kept as plain string
// assembly; the message is short and fixed.
func renderConfirmationHTML(p models.ConfirmationPayload, ticketURL string) string {
	return fmt.Sprintf(`
      <div style="font-family: system-ui, -apple-system, Segoe UI, Roboto, sans-serif; max-width: 520px; margin: 0 auto; color: #111;">
        <h2 style="margin: 0 0 12px;">Darshan Booking Confirmed</h2>
        <p style="margin: 0 0 8px;">Swami Saranam! Your darshan booking has been confirmed.</p>
        <ul style="padding-left: 18px; margin: 10px 0;">
          <li><strong>Booking ID:</strong> %s</li>
          <li><strong>Date:</strong> %s</li>
          <li><strong>Time:</strong> %s</li>
        </ul>
        <p style="margin: 12px 0;">Please present this QR code at the temple entry:</p>
        <img alt="Darshan Ticket QR" width="240" height="240" src="cid:ticket-qr" style="display:block; border: 8px solid #fef3c7; border-radius: 16px;" />
        <p style="margin: 16px 0;">You can also manage your bookings here: <a href="%s">%s</a></p>
        <p style="margin: 16px 0; color:#555; font-size: 14px;">Harivarasanam Hariharatmajam Devam!</p>
      </div>
    `, p.BookingID, p.Date, p.Time, ticketURL, ticketURL)
}
