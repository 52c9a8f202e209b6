package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid session token")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
	// ErrUpstreamRejected covers the upstream API refusing the stored bearer
	// token mid-session, which forces a fresh login.
	ErrUpstreamRejected = errors.New("upstream rejected credentials")
)
