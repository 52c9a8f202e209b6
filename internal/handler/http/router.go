package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/bashyamgroup/employee-console/internal/handler/http/middleware"
	"github.com/bashyamgroup/employee-console/internal/pkg/session"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	tokens *session.TokenService,
	resolver middleware.SessionResolver,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	leaveHandler LeaveHandler,
	masterHandler MasterHandler,
	env string,
	allowedOrigins []string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "employee-console"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires a live session
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verify(tokens.JWTAuth(), jwtauth.TokenFromHeader, sessionTokenFromCookie))
			r.Use(middleware.SessionRequired(resolver))

			r.Post("/auth/logout", authHandler.Logout)
			r.Get("/auth/me", authHandler.Me)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.Listing)
				r.Post("/", employeeHandler.CreateEmployee)
				r.Get("/form-data", employeeHandler.FormData)

				r.Route("/search", func(r chi.Router) {
					r.Post("/input", employeeHandler.SearchInput)
					r.Post("/filter", employeeHandler.SearchFilter)
					r.Post("/suggestion", employeeHandler.SearchSuggestion)
					r.Post("/clear", employeeHandler.SearchClear)
					r.Post("/page", employeeHandler.SearchPage)
				})

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", employeeHandler.GetEmployee)
					r.Put("/", employeeHandler.UpdateEmployee)
					r.Delete("/", employeeHandler.DeleteEmployee)
				})
			})

			r.Get("/departments", masterHandler.ListDepartments)
			r.Get("/designations", masterHandler.ListDesignations)

			r.Route("/leave", func(r chi.Router) {
				r.Post("/select", leaveHandler.Select)
				r.Get("/summary", leaveHandler.Summary)
				r.Post("/records", leaveHandler.Submit)
			})
		})
	})
	return r
}

func sessionTokenFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
