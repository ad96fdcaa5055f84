package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"lavadero/internal/apierr"
	"lavadero/internal/entities"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "admin@example.com",
		"exp":   exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestLoginStoresSession(t *testing.T) {
	repo := &mockAuthRepo{
		LoginFn: func(_ context.Context, email, password string) (*entities.LoginResponse, error) {
			assert.Equal(t, "admin@example.com", email)
			assert.Equal(t, "secret", password)
			return &entities.LoginResponse{
				User:  entities.AdminUser{Email: email},
				Token: "tok-123",
			}, nil
		},
	}
	s := NewSessionService(repo, zap.NewNop())

	user, err := s.Login(context.Background(), "admin@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", user.Email)
	assert.Equal(t, "tok-123", s.Token())
	assert.True(t, s.IsAuthenticated())
}

func TestLoginRequiresCredentials(t *testing.T) {
	calls := 0
	repo := &mockAuthRepo{
		LoginFn: func(context.Context, string, string) (*entities.LoginResponse, error) {
			calls++
			return nil, nil
		},
	}
	s := NewSessionService(repo, zap.NewNop())

	_, err := s.Login(context.Background(), "", "secret")
	assert.True(t, apierr.IsValidation(err))
	_, err = s.Login(context.Background(), "admin@example.com", "")
	assert.True(t, apierr.IsValidation(err))
	assert.Zero(t, calls)
	assert.False(t, s.IsAuthenticated())
}

func TestLoginFailureLeavesSessionEmpty(t *testing.T) {
	repo := &mockAuthRepo{
		LoginFn: func(context.Context, string, string) (*entities.LoginResponse, error) {
			return nil, apierr.Auth(401, "credenciales inválidas")
		},
	}
	s := NewSessionService(repo, zap.NewNop())

	_, err := s.Login(context.Background(), "admin@example.com", "wrong")
	assert.True(t, apierr.IsAuth(err))
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())
}

func TestVerifyWithoutTokenFails(t *testing.T) {
	s := NewSessionService(&mockAuthRepo{}, zap.NewNop())
	_, err := s.Verify(context.Background())
	assert.True(t, apierr.IsAuth(err))
}

func TestVerifyExpiredTokenSkipsRoundTrip(t *testing.T) {
	calls := 0
	repo := &mockAuthRepo{
		VerifyFn: func(context.Context) (*entities.AdminUser, error) {
			calls++
			return nil, nil
		},
	}
	s := NewSessionService(repo, zap.NewNop())
	s.Restore(signedToken(t, time.Now().Add(-time.Hour)))

	_, err := s.Verify(context.Background())

	assert.True(t, apierr.IsAuth(err))
	assert.Zero(t, calls)
	assert.Empty(t, s.Token())
}

func TestVerifyValidTokenLoadsUser(t *testing.T) {
	repo := &mockAuthRepo{
		VerifyFn: func(context.Context) (*entities.AdminUser, error) {
			return &entities.AdminUser{Email: "admin@example.com"}, nil
		},
	}
	s := NewSessionService(repo, zap.NewNop())
	s.Restore(signedToken(t, time.Now().Add(time.Hour)))

	user, err := s.Verify(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", user.Email)
	assert.True(t, s.IsAuthenticated())
}

func TestVerifyBackendRejectionClearsSession(t *testing.T) {
	repo := &mockAuthRepo{
		VerifyFn: func(context.Context) (*entities.AdminUser, error) {
			return nil, apierr.Auth(401, "session expired")
		},
	}
	s := NewSessionService(repo, zap.NewNop())
	s.Restore(signedToken(t, time.Now().Add(time.Hour)))

	_, err := s.Verify(context.Background())

	assert.True(t, apierr.IsAuth(err))
	assert.Empty(t, s.Token())
	assert.False(t, s.IsAuthenticated())
}

func TestVerifyOpaqueTokenStillGoesUpstream(t *testing.T) {
	// A token that is not a JWT cannot be pre-checked locally; the backend
	// remains the authority.
	calls := 0
	repo := &mockAuthRepo{
		VerifyFn: func(context.Context) (*entities.AdminUser, error) {
			calls++
			return &entities.AdminUser{Email: "admin@example.com"}, nil
		},
	}
	s := NewSessionService(repo, zap.NewNop())
	s.Restore("opaque-session-token")

	_, err := s.Verify(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestLogoutAlwaysClears(t *testing.T) {
	repo := &mockAuthRepo{
		LogoutFn: func(context.Context) error { return errors.New("backend down") },
	}
	s := NewSessionService(repo, zap.NewNop())
	s.Restore("tok-123")

	err := s.Logout(context.Background())

	assert.Error(t, err)
	assert.Empty(t, s.Token())
	assert.False(t, s.IsAuthenticated())
}

func TestLogoutWithoutTokenSkipsBackend(t *testing.T) {
	calls := 0
	repo := &mockAuthRepo{
		LogoutFn: func(context.Context) error {
			calls++
			return nil
		},
	}
	s := NewSessionService(repo, zap.NewNop())

	require.NoError(t, s.Logout(context.Background()))
	assert.Zero(t, calls)
}

func TestRestoreAloneIsNotAuthenticated(t *testing.T) {
	s := NewSessionService(&mockAuthRepo{}, zap.NewNop())
	s.Restore("tok-123")
	assert.Equal(t, "tok-123", s.Token())
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
}
