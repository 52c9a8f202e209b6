package auth

import (
	"context"
	"log/slog"

	"github.com/bashyamgroup/employee-console/internal/domain/auth"
	"github.com/bashyamgroup/employee-console/internal/domain/employee"
	domainLeave "github.com/bashyamgroup/employee-console/internal/domain/leave"
	"github.com/bashyamgroup/employee-console/internal/pkg/session"
	leaveService "github.com/bashyamgroup/employee-console/internal/service/leave"
	"github.com/bashyamgroup/employee-console/internal/service/search"
	"github.com/bashyamgroup/employee-console/internal/upstream"
)

// Service logs the user in upstream and builds the console session around the
// returned bearer token, including the per-session view state.
type Service struct {
	authRepo     auth.Repository
	employeeRepo employee.Repository
	leaveRepo    domainLeave.Repository
	tokens       *session.TokenService
	sessions     *session.Store
	logger       *slog.Logger
	searchOpts   search.Options
	entitlements domainLeave.Entitlements
}

func NewService(
	authRepo auth.Repository,
	employeeRepo employee.Repository,
	leaveRepo domainLeave.Repository,
	tokens *session.TokenService,
	sessions *session.Store,
	logger *slog.Logger,
	searchOpts search.Options,
	entitlements domainLeave.Entitlements,
) *Service {
	return &Service{
		authRepo:     authRepo,
		employeeRepo: employeeRepo,
		leaveRepo:    leaveRepo,
		tokens:       tokens,
		sessions:     sessions,
		logger:       logger,
		searchOpts:   searchOpts,
		entitlements: entitlements,
	}
}

// Login exchanges credentials for an upstream token, creates the session, and
// returns the signed cookie token the browser will present from now on.
func (s *Service) Login(ctx context.Context, req auth.LoginRequest) (sess *session.Session, cookieToken string, expiresAt int64, err error) {
	if err := req.Validate(); err != nil {
		return nil, "", 0, err
	}

	creds, err := s.authRepo.Login(ctx, req)
	if err != nil {
		return nil, "", 0, err
	}

	// View state outlives the login request, so its base context is not the
	// request's; it carries the upstream token for the session's async work.
	base := upstream.WithToken(context.Background(), creds.Token)
	searchView := search.New(base, s.employeeRepo, s.logger, s.searchOpts)
	leaveView := leaveService.NewView(s.leaveRepo, s.entitlements)

	sess = s.sessions.Create(creds.Token, creds.User, searchView, leaveView)
	cookieToken, expiresAt, err = s.tokens.Generate(sess.ID)
	if err != nil {
		s.sessions.Delete(sess.ID)
		return nil, "", 0, err
	}

	// Prime the listing so the first page render has data.
	searchView.Load()

	return sess, cookieToken, expiresAt, nil
}

// Logout tears the session down; the upstream token is simply forgotten.
func (s *Service) Logout(sessionID string) {
	s.sessions.Delete(sessionID)
}

// Resolve maps a verified cookie's session id to the live session.
func (s *Service) Resolve(sessionID string) (*session.Session, error) {
	return s.sessions.Get(sessionID)
}
