package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrConcurrentModification is returned by Save when the conditional update
// matches zero rows: another caller changed the record between this caller's
// read and write. The losing caller must re-fetch and retry or report the
// conflict; the core never retries on its own.
var ErrConcurrentModification = errors.New("record was modified concurrently")

// Repository is the base contract implemented by every aggregate store.
// Save must condition its write on the version the aggregate was loaded at
// and report a conflict when zero rows match.
type Repository[T AggregateRoot] interface {
	Save(ctx context.Context, aggregate T) error
	FindByID(ctx context.Context, id uuid.UUID) (T, error)
}
