package domain

import "strings"

// Role represents an identity role
type Role string

const (
	RoleAdmin     Role = "admin"
	RolePassenger Role = "passenger"
)

// IsValid checks if the role is a known Role
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RolePassenger:
		return true
	}
	return false
}

// String returns the string representation of Role
func (r Role) String() string {
	return string(r)
}

// Identity represents the authenticated user attached to a session
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
}

// Validate validates the identity fields
func (i *Identity) Validate() error {
	if strings.TrimSpace(i.Username) == "" {
		return ErrInvalidIdentity
	}
	if !i.Role.IsValid() {
		return ErrInvalidIdentity
	}
	return nil
}
