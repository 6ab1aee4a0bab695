// Package application holds the contracts shared by every bounded context's
// application layer: commands, queries, the uniform result shape returned at
// the module boundary, unit-of-work, and event metadata propagation.
package application

import "context"

// Command is a request to change system state.
type Command interface {
	CommandName() string
}

// CommandHandler executes one command type. Handlers are stateless; all
// durable state lives behind the repositories they are constructed with.
type CommandHandler[C Command, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}
