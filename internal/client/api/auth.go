package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shipdeck/shipdeck/internal/client/models"
)

// AuthService covers account operations and the token lifecycle.
type AuthService struct {
	rt *Transport
}

func NewAuthService(rt *Transport) *AuthService {
	return &AuthService{rt: rt}
}

// Login exchanges credentials for a bearer token. The endpoint takes
// form-encoded fields, not JSON. On success the token is installed into the
// transport and persisted; on failure the server error propagates and the
// stored session is left untouched.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.TokenResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var tr models.TokenResponse
	if err := s.rt.postForm(ctx, "/auth/token", form, &tr); err != nil {
		return nil, err
	}

	if err := s.rt.SaveLogin(ctx, username, tr.AccessToken); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return &tr, nil
}

// Register creates an account. Uniqueness checks are server-side.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	var user models.User
	if err := s.rt.postJSON(ctx, "/auth/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Profile fetches the current user. Requires a valid token.
func (s *AuthService) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.rt.getJSON(ctx, "/auth/profile", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePassword changes the password of the current user. There is no
// response payload; a wrong current password surfaces as a server error.
func (s *AuthService) UpdatePassword(ctx context.Context, current, updated string) error {
	body := struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}{CurrentPassword: current, NewPassword: updated}

	return s.rt.putJSON(ctx, "/auth/password", body, nil)
}

// SetToken imperatively installs or clears (token == "") the bearer token
// in both the transport and the persistent store.
func (s *AuthService) SetToken(ctx context.Context, token string) error {
	return s.rt.SetToken(ctx, token)
}

// Logout clears the token and all remembered session state.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.rt.SetToken(ctx, ""); err != nil {
		return err
	}
	return s.rt.session.Clear(ctx)
}
