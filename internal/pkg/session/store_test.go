package session

import (
	"context"
	"testing"
	"time"

	"github.com/bashyamgroup/employee-console/internal/domain/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CreateAndGet(t *testing.T) {
	store := NewStore(time.Hour)

	sess := store.Create("upstream-token", auth.User{ID: 1, Username: "admin"}, nil, nil)
	require.NotEmpty(t, sess.ID)

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "upstream-token", got.Token)
	assert.Equal(t, "admin", got.User.Username)
}

func TestStore_GetUnknown(t *testing.T) {
	store := NewStore(time.Hour)

	_, err := store.Get("nope")
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
}

func TestStore_GetExpired(t *testing.T) {
	store := NewStore(-time.Second)
	sess := store.Create("t", auth.User{}, nil, nil)

	_, err := store.Get(sess.ID)
	assert.ErrorIs(t, err, auth.ErrSessionExpired)

	// Expired sessions are evicted on access.
	_, err = store.Get(sess.ID)
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
}

func TestStore_Delete(t *testing.T) {
	store := NewStore(time.Hour)
	sess := store.Create("t", auth.User{}, nil, nil)

	store.Delete(sess.ID)

	_, err := store.Get(sess.ID)
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret-key", time.Hour)

	token, expiresAt, err := svc.Generate("session-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)
	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "session-123", claims["session_id"])
}

func TestTokenService_Cookies(t *testing.T) {
	svc := NewTokenService("test-secret-key", time.Hour)

	cookie := svc.Cookie("tok", time.Now().Add(time.Hour).Unix())
	assert.Equal(t, CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)

	expired := svc.ExpiredCookie()
	assert.Equal(t, CookieName, expired.Name)
	assert.Negative(t, expired.MaxAge)
}
