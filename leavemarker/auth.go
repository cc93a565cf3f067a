package leavemarker

import (
	"context"
	"net/http"
)

// AuthService talks to the authentication endpoints. Most callers want the
// SessionStore instead, which owns the Identity lifecycle on top of this.
type AuthService struct {
	client *Client
}

func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*AuthResult, error) {
	var out AuthResult
	if err := s.client.do(ctx, http.MethodPost, "/auth/signup", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var out AuthResult
	if err := s.client.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.client.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// VerifySession returns the identity bound to the current session cookie, or
// an error when no valid session exists.
func (s *AuthService) VerifySession(ctx context.Context) (*Identity, error) {
	var out Identity
	if err := s.client.do(ctx, http.MethodGet, "/auth/verify-session", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return s.client.do(ctx, http.MethodPost, "/auth/password-reset-request", body, nil)
}

func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"token": token, "newPassword": newPassword}
	return s.client.do(ctx, http.MethodPost, "/auth/password-reset-confirm", body, nil)
}
