package persistence

import (
	"context"
	"fmt"

	"github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/domain"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/outbox"
	"github.com/sbhunu/landadmin/internal/workflow"
)

// Audited is an aggregate that buffers both domain events and workflow
// transition records between load and save.
type Audited interface {
	domain.AggregateRoot
	Pending() []workflow.Transition
	ClearPending()
}

// TransitionAppender appends audit records inside the caller's transaction.
type TransitionAppender interface {
	AppendAll(ctx context.Context, transitions []workflow.Transition) error
}

// Committer flushes the by-products of a state change in the caller's
// transaction: the audit transitions and the outbox messages. Handlers call
// it after the aggregate's own conditional save succeeds.
type Committer struct {
	transitions TransitionAppender
	outbox      outbox.Repository
}

// NewCommitter creates a committer.
func NewCommitter(transitions TransitionAppender, outboxRepo outbox.Repository) *Committer {
	return &Committer{transitions: transitions, outbox: outboxRepo}
}

// Flush stamps buffered events with the actor's metadata, enqueues them on
// the outbox, appends the pending transitions, and clears both buffers.
func (c *Committer) Flush(ctx context.Context, agg Audited, md domain.EventMetadata) error {
	events := agg.DomainEvents()
	application.ApplyEventMetadata(events, md)

	msgs, err := outbox.FromEvents(events)
	if err != nil {
		return fmt.Errorf("serialize events: %w", err)
	}
	if err := c.outbox.SaveBatch(ctx, msgs); err != nil {
		return fmt.Errorf("enqueue events: %w", err)
	}
	if err := c.transitions.AppendAll(ctx, agg.Pending()); err != nil {
		return err
	}

	agg.ClearDomainEvents()
	agg.ClearPending()
	return nil
}
