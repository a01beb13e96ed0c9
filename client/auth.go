package client

import (
	"context"
	"net/http"

	"meetspace-admin/dto"
)

type AuthService struct {
	c *Client
}

// Login authenticates and stores the token on the client for later
// requests.
func (s *AuthService) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	var resp dto.LoginResponse
	req := dto.LoginRequest{Email: email, Password: password}
	if _, err := s.c.do(ctx, http.MethodPost, "/api/auth/login", nil, req, &resp); err != nil {
		return nil, err
	}
	s.c.Token = resp.Token
	return &resp, nil
}

func (s *AuthService) Logout(ctx context.Context, email string) error {
	req := dto.EmailRequest{Email: email}
	if _, err := s.c.do(ctx, http.MethodPost, "/api/auth/logout", nil, req, nil); err != nil {
		return err
	}
	s.c.Token = ""
	return nil
}

func (s *AuthService) ChangePassword(ctx context.Context, email, current, next string) error {
	req := map[string]string{
		"email":           email,
		"currentPassword": current,
		"newPassword":     next,
	}
	_, err := s.c.do(ctx, http.MethodPost, "/api/auth/change-password", nil, req, nil)
	return err
}
