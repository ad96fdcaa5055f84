package repository

import (
	"context"

	"lavadero/internal/entities"
	"lavadero/internal/gateway"
)

type AuthRepository interface {
	Login(ctx context.Context, email, password string) (*entities.LoginResponse, error)
	Verify(ctx context.Context) (*entities.AdminUser, error)
	Logout(ctx context.Context) error
}

type authRepository struct {
	gw *gateway.Client
}

func NewAuthRepository(gw *gateway.Client) AuthRepository {
	return &authRepository{gw: gw}
}

func (r *authRepository) Login(ctx context.Context, email, password string) (*entities.LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp entities.LoginResponse
	if err := r.gw.PostJSON(ctx, "/admin/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (r *authRepository) Verify(ctx context.Context) (*entities.AdminUser, error) {
	var resp entities.VerifyResponse
	if err := r.gw.GetJSON(ctx, "/admin/verify", &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (r *authRepository) Logout(ctx context.Context) error {
	return r.gw.PostJSON(ctx, "/admin/logout", nil, nil)
}
