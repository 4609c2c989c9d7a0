package usecases

import (
	"context"
	"fmt"
	"time"

	"lotledger/internal/shared/constants"
	"lotledger/internal/shared/errors"
)

// TransactionManager runs a function inside a database transaction. The
// transaction travels in the context, where repositories pick it up.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PasswordHasher hashes and verifies login passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) error
}

// TokenService issues signed session tokens.
type TokenService interface {
	Generate(userID uint, username, role string) (token string, expiresAt time.Time, err error)
}

// LoginRateLimiter throttles login attempts per username. RecordFailure
// counts a bad attempt; Reset clears the counter after a successful login.
type LoginRateLimiter interface {
	Allow(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// ModuleResolver maps a role to the modules it may open.
type ModuleResolver interface {
	ModulesFor(role string) []string
}

// PolicyChecker re-checks a role against the access policy. User management
// verifies the actor's role again on entry even though routing already
// enforced it.
type PolicyChecker interface {
	Enforce(role, module, action string) (bool, error)
}

func requireUsersAccess(policy PolicyChecker, role, action string) error {
	allowed, err := policy.Enforce(role, constants.ModuleUsers, action)
	if err != nil {
		return err
	}
	if !allowed {
		return errors.NewForbiddenError(
			fmt.Sprintf("role %s may not %s user accounts", role, action))
	}
	return nil
}
