package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"darshanam/models"

	"github.com/go-redis/redis/v8"
)

const sessionPrefix = "devoteeSession:"

// sessionTTL bounds how long a cached session lives without being refreshed.
const sessionTTL = time.Hour

// saveSession stores the session blob in redis keyed by the token
// fingerprint, with a TTL.
func saveSession(ctx context.Context, client *redis.Client, tokenHash string, sess models.DevoteeSession) error {
	sess.LastUpdatedAt = time.Now()
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	ttl := sessionTTL
	if !sess.ExpiresAt.IsZero() {
		if until := time.Until(sess.ExpiresAt); until < ttl {
			ttl = until
		}
	}
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}
	if err := client.Set(ctx, sessionPrefix+tokenHash, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// getSession retrieves a cached session, or redis.Nil when absent.
func getSession(ctx context.Context, client *redis.Client, tokenHash string) (*models.DevoteeSession, error) {
	data, err := client.Get(ctx, sessionPrefix+tokenHash).Result()
	if err != nil {
		return nil, err
	}
	var sess models.DevoteeSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &sess, nil
}

// deleteSession removes a cached session.
func deleteSession(ctx context.Context, client *redis.Client, tokenHash string) error {
	return client.Del(ctx, sessionPrefix+tokenHash).Err()
}
