// Package session replaces the SPA's localStorage token: the browser holds a
// signed cookie naming an in-memory session, and the session holds the
// upstream bearer token plus the per-screen view state.
package session

import (
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const CookieName = "console_session"

// TokenService signs and verifies the console's own session tokens. The
// upstream API token never reaches the browser.
type TokenService struct {
	tokenAuth *jwtauth.JWTAuth
	ttl       time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		tokenAuth: jwtauth.New("HS256", []byte(secret), nil, jwt.WithAcceptableSkew(30*time.Second)),
		ttl:       ttl,
	}
}

func (s *TokenService) JWTAuth() *jwtauth.JWTAuth {
	return s.tokenAuth
}

func (s *TokenService) Generate(sessionID string) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(s.ttl).Unix()
	_, tokenString, err := s.tokenAuth.Encode(map[string]interface{}{
		"session_id": sessionID,
		"exp":        expiresAt,
	})
	return tokenString, expiresAt, err
}

func (s *TokenService) Cookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (s *TokenService) ExpiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
