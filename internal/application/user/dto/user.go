package dto

import (
	"time"

	"lotledger/internal/domain/user"
)

// UserResponse is the API shape of an operator account. The password hash
// never leaves the application layer.
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name,omitempty"`
	Role      string    `json:"role"`
	Locked    bool      `json:"locked"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse carries the session token plus the modules the role may
// open, which the client uses to build its menu.
type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	User      *UserResponse `json:"user"`
	Modules   []string      `json:"modules"`
}

// UserToResponse converts a domain user.
func UserToResponse(u *user.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID(),
		Username:  u.Username(),
		FullName:  u.FullName(),
		Role:      u.Role().String(),
		Locked:    u.IsLocked(),
		CreatedAt: u.CreatedAt(),
	}
}

// UsersToResponse converts a slice of domain users.
func UsersToResponse(users []*user.User) []*UserResponse {
	out := make([]*UserResponse, len(users))
	for i, u := range users {
		out[i] = UserToResponse(u)
	}
	return out
}
