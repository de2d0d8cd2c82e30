package api

import (
	"context"
	"net/http"
	"time"
)

// User is the account profile.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	BusinessName   string    `json:"business_name"`
	Specialization string    `json:"specialization"`
	CreatedAt      time.Time `json:"created_at"`
}

// Stats are the account usage counters shown on the account page.
type Stats struct {
	FilesCount    int `json:"files_count"`
	MessagesCount int `json:"messages_count"`
}

// GetUser returns the current user's profile and usage stats.
func (c *Client) GetUser(ctx context.Context) (*User, *Stats, error) {
	var resp struct {
		User  User  `json:"user"`
		Stats Stats `json:"stats"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/user", nil, &resp); err != nil {
		return nil, nil, err
	}
	return &resp.User, &resp.Stats, nil
}
