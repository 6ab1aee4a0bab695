package application

import "context"

// Query is a read-side request; queries never mutate state.
type Query interface {
	QueryName() string
}

// QueryHandler executes one query type.
type QueryHandler[Q Query, R any] interface {
	Handle(ctx context.Context, q Q) (R, error)
}
