package middleware

import (
	"net/http"

	"github.com/bashyamgroup/employee-console/internal/domain/auth"
	"github.com/bashyamgroup/employee-console/internal/handler/http/response"
	"github.com/bashyamgroup/employee-console/internal/pkg/session"
	"github.com/bashyamgroup/employee-console/internal/upstream"
	"github.com/go-chi/jwtauth/v5"
)

// SessionResolver looks a verified cookie's session up in the live store.
type SessionResolver interface {
	Resolve(sessionID string) (*session.Session, error)
}

// SessionRequired runs after jwtauth.Verifier: it checks the decoded cookie
// token, resolves the live session, and stores both the session and the
// upstream bearer token on the request context.
func SessionRequired(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			sessionID, ok := claims["session_id"].(string)
			if !ok || sessionID == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			sess, err := resolver.Resolve(sessionID)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			ctx := session.WithSession(r.Context(), sess)
			ctx = upstream.WithToken(ctx, sess.Token)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}
