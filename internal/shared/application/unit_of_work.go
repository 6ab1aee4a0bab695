package application

import "context"

// UnitOfWork scopes a set of repository operations to one transaction. The
// state change, the audit transition append and the outbox enqueue for a
// single decision all commit or roll back together.
type UnitOfWork interface {
	Begin(ctx context.Context) (context.Context, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// WithUnitOfWork runs fn inside a transaction, committing on success and
// rolling back on error.
func WithUnitOfWork(ctx context.Context, uow UnitOfWork, fn func(ctx context.Context) error) error {
	txCtx, err := uow.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(txCtx); err != nil {
		_ = uow.Rollback(txCtx)
		return err
	}
	return uow.Commit(txCtx)
}
