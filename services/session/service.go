// Package session holds the process-wide authenticated-identity store.
// Authentication itself is owned by the managed backend; this service only
// exchanges credentials for a backend-issued token and caches the resulting
// identity in redis, keyed by a fingerprint of the token.
package session

import (
	"context"
	"fmt"
	"time"

	"darshanam/backend"
	"darshanam/models"
	"darshanam/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SessionService exposes login/logout and the read path the auth middleware
// uses to resolve a bearer token into an identity.
type SessionService interface {
	SignIn(ctx context.Context, email, password string) (*models.AuthResult, error)
	SignOut(ctx context.Context, token string) error
	FromToken(ctx context.Context, token string) (*models.DevoteeSession, error)
}

// DefaultSessionService is the production implementation.
type DefaultSessionService struct {
	Backend backend.Client
	Cache   *redis.Client
	Logger  *zap.Logger
}

func (s *DefaultSessionService) SignIn(ctx context.Context, email, password string) (*models.AuthResult, error) {
	auth, err := s.Backend.SignIn(ctx, backend.Credentials{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	sess := models.DevoteeSession{
		UserID:    auth.UserID,
		Email:     auth.Email,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Duration(auth.ExpiresIn) * time.Second),
	}
	if err := saveSession(ctx, s.Cache, utils.HashToken(auth.AccessToken), sess); err != nil {
		// The token is still valid; FromToken rebuilds the session on demand.
		s.Logger.Warn("failed to cache session after sign-in", zap.Error(err))
	}

	return &models.AuthResult{AccessToken: auth.AccessToken, Session: sess}, nil
}

func (s *DefaultSessionService) SignOut(ctx context.Context, token string) error {
	if err := deleteSession(ctx, s.Cache, utils.HashToken(token)); err != nil {
		s.Logger.Warn("failed to evict session on sign-out", zap.Error(err))
	}
	return s.Backend.SignOut(ctx, token)
}

// FromToken resolves a bearer token to a session. A cache hit refreshes the
// TTL; a miss falls back to validating the token locally and rebuilding the
// session from its claims.
func (s *DefaultSessionService) FromToken(ctx context.Context, token string) (*models.DevoteeSession, error) {
	tokenHash := utils.HashToken(token)

	sess, err := getSession(ctx, s.Cache, tokenHash)
	if err == nil {
		return sess, nil
	}
	if err != redis.Nil {
		s.Logger.Warn("session cache read failed, falling back to token claims", zap.Error(err))
	}

	claims, err := utils.ExtractClaimsFromToken(token)
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}

	rebuilt := models.DevoteeSession{
		UserID:    claims.UserID,
		Email:     claims.Email,
		CreatedAt: time.Now(),
		ExpiresAt: claims.Expiry,
	}
	if err := saveSession(ctx, s.Cache, tokenHash, rebuilt); err != nil {
		s.Logger.Warn("failed to re-cache session", zap.Error(err))
	}
	return &rebuilt, nil
}
