package service

import (
	"context"
	"net/http"
	"sync"
	"time"

	"lavadero/internal/apierr"
	"lavadero/internal/entities"
	"lavadero/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// SessionService holds the admin session: the bearer token and the verified
// user. It is an explicit object created in main and injected where needed,
// with a clear lifecycle: optional Restore + silent Verify at startup, Clear
// on logout or on any upstream 401/403.
type SessionService struct {
	repo repository.AuthRepository
	log  *zap.Logger

	mu    sync.RWMutex
	token string
	user  *entities.AdminUser
}

func NewSessionService(repo repository.AuthRepository, log *zap.Logger) *SessionService {
	return &SessionService{repo: repo, log: log}
}

// Token is wired into the gateway as its token source.
func (s *SessionService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *SessionService) User() *entities.AdminUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *SessionService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}

// Restore seeds a token persisted from a previous run, to be validated by the
// next Verify.
func (s *SessionService) Restore(token string) {
	s.mu.Lock()
	s.token = token
	s.user = nil
	s.mu.Unlock()
}

// Clear drops the session. Wired into the gateway as the 401/403 hook.
func (s *SessionService) Clear() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
}

func (s *SessionService) Login(ctx context.Context, email, password string) (*entities.AdminUser, error) {
	if email == "" || password == "" {
		return nil, apierr.Validation("email y contraseña son obligatorios")
	}
	resp, err := s.repo.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.token = resp.Token
	s.user = &resp.User
	s.mu.Unlock()
	s.log.Info("admin logged in", zap.String("email", resp.User.Email))
	return &resp.User, nil
}

// Verify validates the held token against the backend. A token whose exp
// claim is already past is cleared locally without a round trip.
func (s *SessionService) Verify(ctx context.Context) (*entities.AdminUser, error) {
	token := s.Token()
	if token == "" {
		return nil, apierr.Auth(http.StatusUnauthorized, "no hay sesión activa")
	}
	if tokenExpired(token) {
		s.Clear()
		return nil, apierr.Auth(http.StatusUnauthorized, "la sesión expiró")
	}
	user, err := s.repo.Verify(ctx)
	if err != nil {
		s.Clear()
		return nil, err
	}
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return user, nil
}

// Logout tells the backend goodbye on a best-effort basis and always clears
// the local session.
func (s *SessionService) Logout(ctx context.Context) error {
	token := s.Token()
	var err error
	if token != "" {
		if err = s.repo.Logout(ctx); err != nil {
			s.log.Warn("upstream logout failed", zap.Error(err))
		}
	}
	s.Clear()
	return err
}

// tokenExpired inspects the JWT's exp claim without verifying the signature;
// only the backend can truly validate the token, this is just a fast path to
// skip a doomed round trip.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
