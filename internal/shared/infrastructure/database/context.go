package database

import "context"

type txKey struct{}

type txInfo struct {
	tx    Transaction
	owned bool
}

// WithTx stores a transaction in the context. owned marks whether the caller
// started it; nested units of work reuse an existing transaction and leave
// commit/rollback to the owner.
func WithTx(ctx context.Context, tx Transaction, owned bool) context.Context {
	return context.WithValue(ctx, txKey{}, txInfo{tx: tx, owned: owned})
}

// TxFromContext returns the context's transaction, or nil.
func TxFromContext(ctx context.Context) Transaction {
	info, ok := ctx.Value(txKey{}).(txInfo)
	if !ok {
		return nil
	}
	return info.tx
}

// OwnsTx reports whether the context holds a transaction owned by the
// current unit of work.
func OwnsTx(ctx context.Context) (Transaction, bool, bool) {
	info, ok := ctx.Value(txKey{}).(txInfo)
	if !ok || info.tx == nil {
		return nil, false, false
	}
	return info.tx, info.owned, true
}

// ExecutorFromContext returns the context's transaction when present,
// otherwise the connection. Repositories call this on every operation.
func ExecutorFromContext(ctx context.Context, conn Connection) Executor {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return conn
}
