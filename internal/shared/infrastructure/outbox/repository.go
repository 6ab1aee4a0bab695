package outbox

import (
	"context"
	"time"
)

// Repository persists outbox messages.
type Repository interface {
	// SaveBatch stores messages inside the caller's transaction.
	SaveBatch(ctx context.Context, msgs []*Message) error

	// GetUnpublished returns due, unpublished messages oldest first.
	GetUnpublished(ctx context.Context, limit int) ([]*Message, error)

	// MarkPublished records a successful publish.
	MarkPublished(ctx context.Context, id int64) error

	// MarkFailed records a publish failure and schedules the retry.
	MarkFailed(ctx context.Context, id int64, errMsg string, nextRetryAt time.Time) error

	// MarkDead parks a message that exhausted its retries.
	MarkDead(ctx context.Context, id int64, reason string) error

	// DeleteOld prunes published messages past the retention window.
	DeleteOld(ctx context.Context, olderThan time.Duration) (int64, error)
}
