package deed

import (
	"context"
	"errors"

	"github.com/sbhunu/landadmin/internal/shared/domain"
)

// ErrDeedNotFound is returned when no deed matches the lookup.
var ErrDeedNotFound = errors.New("deed not found")

// Repository persists deeds with optimistic concurrency.
type Repository interface {
	domain.Repository[*Deed]
	FindByDeedNumber(ctx context.Context, deedNumber string) (*Deed, error)
}
