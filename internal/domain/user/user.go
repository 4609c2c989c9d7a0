package user

import (
	"fmt"
	"strings"
	"time"

	"lotledger/internal/shared/errors"
)

// User is an operator account. Password hashing happens in the
// infrastructure layer; the aggregate only ever sees the hash.
type User struct {
	id           uint
	username     string
	fullName     string
	passwordHash string
	role         Role
	locked       bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates an unlocked account with an already-hashed password.
func NewUser(username, fullName, passwordHash string, role Role) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.NewValidationError("username is required")
	}
	if passwordHash == "" {
		return nil, errors.NewValidationError("password hash is required")
	}
	if _, err := ParseRole(string(role)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	now := time.Now()
	return &User{
		username:     strings.ToLower(username),
		fullName:     strings.TrimSpace(fullName),
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser rebuilds an account from persistence.
func ReconstructUser(id uint, username, fullName, passwordHash string, role Role, locked bool, createdAt, updatedAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	return &User{
		id:           id,
		username:     username,
		fullName:     fullName,
		passwordHash: passwordHash,
		role:         role,
		locked:       locked,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint             { return u.id }
func (u *User) Username() string     { return u.username }
func (u *User) FullName() string     { return u.fullName }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) IsLocked() bool       { return u.locked }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// AssignRole changes the account role, returning a change descriptor or ""
// when the role is unchanged.
func (u *User) AssignRole(role Role) (string, error) {
	parsed, err := ParseRole(string(role))
	if err != nil {
		return "", errors.NewValidationError(err.Error())
	}
	if parsed == u.role {
		return "", nil
	}

	change := fmt.Sprintf("role: %s -> %s", u.role, parsed)
	u.role = parsed
	u.updatedAt = time.Now()
	return change, nil
}

// Lock disables logins for the account. Locked accounts are refused before
// password verification so the response does not leak whether the password
// was right.
func (u *User) Lock() string {
	if u.locked {
		return ""
	}
	u.locked = true
	u.updatedAt = time.Now()
	return "account locked"
}

// Unlock re-enables logins.
func (u *User) Unlock() string {
	if !u.locked {
		return ""
	}
	u.locked = false
	u.updatedAt = time.Now()
	return "account unlocked"
}

// ChangePasswordHash swaps the stored hash.
func (u *User) ChangePasswordHash(hash string) error {
	if hash == "" {
		return errors.NewValidationError("password hash is required")
	}
	u.passwordHash = hash
	u.updatedAt = time.Now()
	return nil
}
