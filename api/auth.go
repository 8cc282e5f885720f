package api

import (
	"context"
	"net/http"
	"net/url"
)

// Register creates a pending account. The backend emails a verification code
// on success.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var out RegisterResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Verify confirms the emailed verification code for a pending account.
func (c *Client) Verify(ctx context.Context, req VerifyRequest) (*VerifyResponse, error) {
	var out VerifyResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/verify", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResendVerification asks the backend to email a fresh code.
func (c *Client) ResendVerification(ctx context.Context, email string) (*MessageResponse, error) {
	var out MessageResponse
	req := ResendVerificationRequest{Email: email}
	if err := c.do(ctx, http.MethodPost, "/api/auth/resend-verification", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	req := LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ForgotPassword starts a password reset for email.
func (c *Client) ForgotPassword(ctx context.Context, email string) (*MessageResponse, error) {
	var out MessageResponse
	req := ForgotPasswordRequest{Email: email}
	if err := c.do(ctx, http.MethodPost, "/api/auth/forgot-password", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetPassword completes a password reset with the emailed token.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) (*MessageResponse, error) {
	var out MessageResponse
	req := ResetPasswordRequest{Token: token, NewPassword: newPassword}
	if err := c.do(ctx, http.MethodPost, "/api/auth/reset-password", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckResetToken reports whether a reset token is still valid.
func (c *Client) CheckResetToken(ctx context.Context, token string) (*MessageResponse, error) {
	var out MessageResponse
	path := "/api/auth/check-reset-token/" + url.PathEscape(token)
	if err := c.do(ctx, http.MethodPost, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProfile reads the authenticated user's profile.
func (c *Client) GetProfile(ctx context.Context) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodGet, "/api/auth/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile applies a partial profile update for the authenticated user.
func (c *Client) UpdateProfile(ctx context.Context, req ProfileUpdate) (*ProfileUpdateResponse, error) {
	var out ProfileUpdateResponse
	if err := c.do(ctx, http.MethodPut, "/api/auth/profile", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
