package upstream

import (
	"context"
	"errors"
	"net/http"

	"github.com/bashyamgroup/employee-console/internal/domain/auth"
)

// AuthRepository implements auth.Repository against auth/login/.
type AuthRepository struct {
	client *Client
}

func NewAuthRepository(client *Client) *AuthRepository {
	return &AuthRepository{client: client}
}

func (r *AuthRepository) Login(ctx context.Context, req auth.LoginRequest) (auth.Credentials, error) {
	var creds auth.Credentials
	err := r.client.do(ctx, http.MethodPost, "auth/login/", nil, req, &creds)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrNotFound) {
			return auth.Credentials{}, auth.ErrInvalidCredentials
		}
		return auth.Credentials{}, err
	}
	if creds.Token == "" {
		return auth.Credentials{}, auth.ErrInvalidCredentials
	}
	return creds, nil
}
