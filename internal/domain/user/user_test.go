package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lotledger/internal/shared/errors"
)

func TestNewUser(t *testing.T) {
	t.Run("creates unlocked account", func(t *testing.T) {
		u, err := NewUser("JDoe", "Jane Doe", "$2a$10$hash", RoleAnalyst)
		require.NoError(t, err)
		assert.Equal(t, "jdoe", u.Username())
		assert.Equal(t, RoleAnalyst, u.Role())
		assert.False(t, u.IsLocked())
	})

	t.Run("requires username", func(t *testing.T) {
		_, err := NewUser("  ", "Jane Doe", "$2a$10$hash", RoleAnalyst)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("requires password hash", func(t *testing.T) {
		_, err := NewUser("jdoe", "Jane Doe", "", RoleAnalyst)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := NewUser("jdoe", "Jane Doe", "$2a$10$hash", Role("SUPERUSER"))
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestUser_AssignRole(t *testing.T) {
	u, err := NewUser("jdoe", "Jane Doe", "$2a$10$hash", RoleOperator)
	require.NoError(t, err)

	t.Run("same role is a no-op", func(t *testing.T) {
		change, err := u.AssignRole(RoleOperator)
		require.NoError(t, err)
		assert.Empty(t, change)
	})

	t.Run("new role produces descriptor", func(t *testing.T) {
		change, err := u.AssignRole(RoleAnalyst)
		require.NoError(t, err)
		assert.Equal(t, "role: OPERATOR -> ANALYST", change)
		assert.Equal(t, RoleAnalyst, u.Role())
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		_, err := u.AssignRole(Role("ROOT"))
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestUser_LockUnlock(t *testing.T) {
	u, err := NewUser("jdoe", "Jane Doe", "$2a$10$hash", RoleAnalyst)
	require.NoError(t, err)

	assert.Equal(t, "account locked", u.Lock())
	assert.True(t, u.IsLocked())
	assert.Empty(t, u.Lock())

	assert.Equal(t, "account unlocked", u.Unlock())
	assert.False(t, u.IsLocked())
	assert.Empty(t, u.Unlock())
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		input   string
		want    Role
		wantErr bool
	}{
		{"ADMIN", RoleAdmin, false},
		{"analyst", RoleAnalyst, false},
		{" operator ", RoleOperator, false},
		{"AUDITOR", RoleAuditor, false},
		{"ROOT", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRole(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
