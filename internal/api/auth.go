package api

import (
	"context"
	"net/http"

	"github.com/divyam007142/Railway-reservation/internal/dto"
)

// Login exchanges credentials for an access token and identity.
func (c *Client) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, req, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new passenger account. Password rules are validated
// before this call is made.
func (c *Client) Register(ctx context.Context, req *dto.RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/api/auth/register", nil, req, nil, false)
}
