package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"darshanam/backend"
	"darshanam/config"
	"darshanam/models"
	"darshanam/utils"

	"github.com/go-redis/redismock/v8"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAuthBackend struct {
	backend.Client

	auth       *backend.AuthSession
	signInErr  error
	signOutErr error
	signOuts   []string
}

func (f *fakeAuthBackend) SignIn(ctx context.Context, creds backend.Credentials) (*backend.AuthSession, error) {
	return f.auth, f.signInErr
}

func (f *fakeAuthBackend) SignOut(ctx context.Context, token string) error {
	f.signOuts = append(f.signOuts, token)
	return f.signOutErr
}

func signToken(t *testing.T, sub, email string, exp time.Time) string {
	t.Helper()
	config.AppConfig.JWTSecret = "test-secret"
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   sub,
		"email": email,
		"exp":   exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestSignInReturnsTokenAndSession(t *testing.T) {
	cache, _ := redismock.NewClientMock()
	be := &fakeAuthBackend{auth: &backend.AuthSession{
		AccessToken: "tok-1",
		ExpiresIn:   3600,
		UserID:      "u1",
		Email:       "devotee@example.com",
	}}
	svc := &DefaultSessionService{Backend: be, Cache: cache, Logger: zap.NewNop()}

	// The cache write is best-effort: no expectation is registered, so the
	// SET fails, and sign-in must still succeed.
	res, err := svc.SignIn(context.Background(), "devotee@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", res.AccessToken)
	assert.Equal(t, "u1", res.Session.UserID)
	assert.Equal(t, "devotee@example.com", res.Session.Email)
}

func TestSignInBackendRejection(t *testing.T) {
	cache, _ := redismock.NewClientMock()
	be := &fakeAuthBackend{signInErr: &backend.Error{Message: "invalid login credentials"}}
	svc := &DefaultSessionService{Backend: be, Cache: cache, Logger: zap.NewNop()}

	_, err := svc.SignIn(context.Background(), "devotee@example.com", "wrong")
	assert.Error(t, err)
}

func TestSignOutRevokesBackendToken(t *testing.T) {
	cache, mock := redismock.NewClientMock()
	mock.ExpectDel(sessionPrefix + utils.HashToken("tok-1")).SetVal(1)
	be := &fakeAuthBackend{}
	svc := &DefaultSessionService{Backend: be, Cache: cache, Logger: zap.NewNop()}

	err := svc.SignOut(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"tok-1"}, be.signOuts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSignOutEvictionFailureStillRevokes(t *testing.T) {
	cache, _ := redismock.NewClientMock()
	be := &fakeAuthBackend{}
	svc := &DefaultSessionService{Backend: be, Cache: cache, Logger: zap.NewNop()}

	// No DEL expectation registered, so eviction fails; the backend revoke
	// must still run.
	err := svc.SignOut(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Len(t, be.signOuts, 1)
}

func TestFromTokenCacheHit(t *testing.T) {
	cache, mock := redismock.NewClientMock()
	cached := models.DevoteeSession{UserID: "u1", Email: "devotee@example.com"}
	blob, err := json.Marshal(cached)
	require.NoError(t, err)
	mock.ExpectGet(sessionPrefix + utils.HashToken("tok-1")).SetVal(string(blob))

	svc := &DefaultSessionService{Backend: &fakeAuthBackend{}, Cache: cache, Logger: zap.NewNop()}

	sess, err := svc.FromToken(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "u1", sess.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFromTokenCacheMissRebuildsFromClaims(t *testing.T) {
	token := signToken(t, "u1", "devotee@example.com", time.Now().Add(time.Hour))

	cache, mock := redismock.NewClientMock()
	mock.ExpectGet(sessionPrefix + utils.HashToken(token)).RedisNil()
	// The re-cache write is best-effort and unasserted.

	svc := &DefaultSessionService{Backend: &fakeAuthBackend{}, Cache: cache, Logger: zap.NewNop()}

	sess, err := svc.FromToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "u1", sess.UserID)
	assert.Equal(t, "devotee@example.com", sess.Email)
}

func TestFromTokenInvalidToken(t *testing.T) {
	cache, mock := redismock.NewClientMock()
	mock.ExpectGet(sessionPrefix + utils.HashToken("garbage")).RedisNil()

	svc := &DefaultSessionService{Backend: &fakeAuthBackend{}, Cache: cache, Logger: zap.NewNop()}

	_, err := svc.FromToken(context.Background(), "garbage")
	assert.Error(t, err)
}

func TestFromTokenExpiredToken(t *testing.T) {
	token := signToken(t, "u1", "devotee@example.com", time.Now().Add(-time.Hour))

	cache, mock := redismock.NewClientMock()
	mock.ExpectGet(sessionPrefix + utils.HashToken(token)).RedisNil()

	svc := &DefaultSessionService{Backend: &fakeAuthBackend{}, Cache: cache, Logger: zap.NewNop()}

	_, err := svc.FromToken(context.Background(), token)
	assert.Error(t, err)
}
