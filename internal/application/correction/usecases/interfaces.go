package usecases

import (
	"context"
	"fmt"

	"lotledger/internal/shared/constants"
	"lotledger/internal/shared/errors"
)

// TransactionManager runs a function inside a database transaction. The
// transaction travels in the context, where repositories pick it up.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PolicyChecker re-checks a role against the access policy. Corrections
// verify the actor's role again on entry even though routing already
// enforced it.
type PolicyChecker interface {
	Enforce(role, module, action string) (bool, error)
}

func requireModuleWrite(policy PolicyChecker, role, module string) error {
	allowed, err := policy.Enforce(role, module, constants.ActionWrite)
	if err != nil {
		return err
	}
	if !allowed {
		return errors.NewForbiddenError(
			fmt.Sprintf("role %s may not write to the %s module", role, module))
	}
	return nil
}
