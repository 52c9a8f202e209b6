package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bashyamgroup/employee-console/internal/domain/auth"
	"github.com/bashyamgroup/employee-console/internal/handler/http/response"
	"github.com/bashyamgroup/employee-console/internal/pkg/session"
	authService "github.com/bashyamgroup/employee-console/internal/service/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService *authService.Service
	tokens      *session.TokenService
}

func NewAuthHandler(svc *authService.Service, tokens *session.TokenService) AuthHandler {
	return &authHandlerImpl{
		authService: svc,
		tokens:      tokens,
	}
}

// Login implements AuthHandler.
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	sess, cookieToken, expiresAt, err := h.authService.Login(r.Context(), req)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.tokens.Cookie(cookieToken, expiresAt))
	response.SuccessWithMessage(w, "Logged in", auth.LoginResponse{User: sess.User})
}

// Logout implements AuthHandler.
func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if sess, ok := session.FromContext(r.Context()); ok {
		h.authService.Logout(sess.ID)
	}
	http.SetCookie(w, h.tokens.ExpiredCookie())
	response.SuccessWithMessage(w, "Logged out", nil)
}

// Me returns the session's user profile, letting the browser restore its
// header state after a reload.
func (h *authHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrSessionNotFound)
		return
	}
	response.Success(w, sess.User)
}
