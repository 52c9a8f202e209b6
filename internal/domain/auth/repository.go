package auth

import "context"

type Repository interface {
	Login(ctx context.Context, req LoginRequest) (Credentials, error)
}
