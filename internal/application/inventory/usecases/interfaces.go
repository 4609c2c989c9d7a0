package usecases

import "context"

// TransactionManager runs a function inside a database transaction. The
// transaction travels in the context, where repositories pick it up.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
