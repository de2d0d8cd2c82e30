package api

import (
	"context"
	"net/http"
)

// RegisterRequest carries the fields the registration form collects.
type RegisterRequest struct {
	Username       string `json:"username"`
	Password       string `json:"password"`
	BusinessName   string `json:"business_name"`
	Specialization string `json:"specialization"`
}

// AuthResponse is returned by both Register and Login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Register creates a new account and returns a fresh token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, username, password string) (*AuthResponse, error) {
	req := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{username, password}

	var resp AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
