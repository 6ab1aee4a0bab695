package database

import (
	"context"
	"errors"
)

// UnitOfWork implements application.UnitOfWork over any Connection by
// carrying the transaction in the context.
type UnitOfWork struct {
	conn Connection
}

// NewUnitOfWork creates a unit of work bound to a connection.
func NewUnitOfWork(conn Connection) *UnitOfWork {
	return &UnitOfWork{conn: conn}
}

// Begin starts a transaction, or joins an existing one without taking
// ownership so nested scopes cannot commit the outer transaction.
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if tx, _, ok := OwnsTx(ctx); ok {
		return WithTx(ctx, tx, false), nil
	}
	tx, err := u.conn.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	return WithTx(ctx, tx, true), nil
}

// Commit commits when this scope owns the transaction.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, owned, ok := OwnsTx(ctx)
	if !ok {
		return errors.New("no transaction in context")
	}
	if !owned {
		return nil
	}
	return tx.Commit(ctx)
}

// Rollback rolls back when this scope owns the transaction.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, owned, ok := OwnsTx(ctx)
	if !ok {
		return errors.New("no transaction in context")
	}
	if !owned {
		return nil
	}
	return tx.Rollback(ctx)
}
