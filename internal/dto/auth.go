package dto

import (
	"strings"

	"github.com/divyam007142/Railway-reservation/internal/domain"
)

// LoginRequest is the login payload
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the registration payload. ConfirmPassword never leaves
// the client.
type RegisterRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"-"`
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
}

// ValidatePassword checks the password rules enforced before any network
// call is made.
func (r *RegisterRequest) ValidatePassword() (bool, string) {
	if len(r.Password) < 6 {
		return false, "Password must be at least 6 characters"
	}
	if r.Password != r.ConfirmPassword {
		return false, "Passwords do not match"
	}
	return true, ""
}

// Validate checks the remaining registration fields
func (r *RegisterRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.Username) == "" {
		return false, "Username is required"
	}
	if strings.TrimSpace(r.FullName) == "" {
		return false, "Full name is required"
	}
	return r.ValidatePassword()
}

// AuthResponse is the login response body
type AuthResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type,omitempty"`
	User        domain.Identity `json:"user"`
}
