package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"darshanam/models"

	"go.uber.org/zap"
)

// HTTPClient talks to the managed backend over its REST surface: named
// procedures under /rest/v1/rpc, table queries under /rest/v1, auth under
// /auth/v1.
type HTTPClient struct {
	baseURL    string
	serviceKey string
	http       *http.Client
	logger     *zap.Logger
}

// NewHTTPClient creates a backend client for the given base URL and API key.
func NewHTTPClient(baseURL, serviceKey string, logger *zap.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		http:       &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path, token string, body any) (*http.Request, error) {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("backend: failed to marshal request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, fmt.Errorf("backend: failed to build request: %w", err)
	}
	req.Header.Set("apikey", c.serviceKey)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// do executes the request and decodes the response into out (when non-nil).
// Non-2xx responses become *Error with the backend's own message text.
func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend: request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("backend: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.asError(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("backend: failed to decode response: %w", err)
		}
	}
	return nil
}

// asError maps a backend error body to *Error, preserving the literal
// message text for downstream classification.
func (c *HTTPClient) asError(status int, body []byte) error {
	var parsed struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Msg     string `json:"msg"`
		Err     string `json:"error"`
	}
	berr := &Error{}
	if err := json.Unmarshal(body, &parsed); err == nil {
		berr.Code = parsed.Code
		switch {
		case parsed.Message != "":
			berr.Message = parsed.Message
		case parsed.Msg != "":
			berr.Message = parsed.Msg
		case parsed.Err != "":
			berr.Message = parsed.Err
		}
	}
	if berr.Message == "" {
		berr.Message = fmt.Sprintf("backend returned status %d", status)
	}
	c.logger.Debug("backend error response",
		zap.Int("status", status),
		zap.String("code", berr.Code),
		zap.String("message", berr.Message))
	return berr
}

func (c *HTTPClient) BookDarshan(ctx context.Context, token, date, timeSlot string) (string, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/rest/v1/rpc/book_darshan", token, map[string]string{
		"p_date": date,
		"p_time": timeSlot,
	})
	if err != nil {
		return "", err
	}
	var bookingID string
	if err := c.do(req, &bookingID); err != nil {
		return "", err
	}
	return bookingID, nil
}

func (c *HTTPClient) FullTimes(ctx context.Context, token, date string) ([]string, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/rest/v1/rpc/darshan_full_times", token, map[string]string{
		"p_date": date,
	})
	if err != nil {
		return nil, err
	}
	var rows []struct {
		TimeSlot string `json:"time_slot"`
	}
	if err := c.do(req, &rows); err != nil {
		return nil, err
	}
	times := make([]string, 0, len(rows))
	for _, r := range rows {
		times = append(times, r.TimeSlot)
	}
	return times, nil
}

func (c *HTTPClient) MyBookings(ctx context.Context, token string) ([]models.Booking, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/rest/v1/darshan_bookings?select=*&order=created_at.desc", token, nil)
	if err != nil {
		return nil, err
	}
	var bookings []models.Booking
	if err := c.do(req, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *HTTPClient) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/rest/v1/profiles?select=*&id=eq."+userID, "", nil)
	if err != nil {
		return nil, err
	}
	var rows []models.Profile
	if err := c.do(req, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (c *HTTPClient) UpsertProfile(ctx context.Context, token string, row ProfileUpsert) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/rest/v1/profiles?on_conflict=id", token, row)
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "resolution=merge-duplicates")
	return c.do(req, nil)
}

func (c *HTTPClient) SignIn(ctx context.Context, creds Credentials) (*AuthSession, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", "", creds)
	if err != nil {
		return nil, err
	}
	var parsed struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
		User        struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := c.do(req, &parsed); err != nil {
		return nil, err
	}
	return &AuthSession{
		AccessToken: parsed.AccessToken,
		ExpiresIn:   parsed.ExpiresIn,
		UserID:      parsed.User.ID,
		Email:       parsed.User.Email,
	}, nil
}

func (c *HTTPClient) SignOut(ctx context.Context, token string) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/v1/logout", token, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}
