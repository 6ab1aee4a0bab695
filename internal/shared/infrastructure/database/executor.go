// Package database abstracts the SQL backends (PostgreSQL for deployments,
// SQLite for zero-config local use) behind one executor interface so that
// repositories are written once in driver-portable SQL.
package database

import (
	"context"
	"database/sql"
)

// Row is a single result row, abstracting pgx.Row and *sql.Row.
type Row interface {
	Scan(dest ...any) error
}

// Rows abstracts pgx.Rows and *sql.Rows.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Close() error
	Err() error
}

// Result reports the outcome of an Exec. RowsAffected carries the
// optimistic-concurrency signal: zero rows on a conditional update means the
// expected state was gone by write time.
type Result interface {
	RowsAffected() (int64, error)
}

// Executor runs queries. Both connections and transactions satisfy it, so
// repositories work transparently inside or outside a unit of work.
type Executor interface {
	Exec(ctx context.Context, query string, args ...any) (Result, error)
	QueryRow(ctx context.Context, query string, args ...any) Row
	Query(ctx context.Context, query string, args ...any) (Rows, error)
}

// Transaction is an Executor with commit/rollback semantics.
type Transaction interface {
	Executor
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Connection is a database handle that can open transactions.
type Connection interface {
	Executor
	BeginTx(ctx context.Context) (Transaction, error)
	Close() error
	Ping(ctx context.Context) error
	Driver() Driver
}

type sqlResult struct{ res sql.Result }

func (r sqlResult) RowsAffected() (int64, error) { return r.res.RowsAffected() }

// WrapSQLResult adapts a database/sql result to the Result interface.
func WrapSQLResult(res sql.Result) Result { return sqlResult{res: res} }

type sqlRows struct{ rows *sql.Rows }

func (r sqlRows) Next() bool             { return r.rows.Next() }
func (r sqlRows) Scan(dest ...any) error { return r.rows.Scan(dest...) }
func (r sqlRows) Close() error           { return r.rows.Close() }
func (r sqlRows) Err() error             { return r.rows.Err() }

// WrapSQLRows adapts database/sql rows to the Rows interface.
func WrapSQLRows(rows *sql.Rows) Rows { return sqlRows{rows: rows} }
