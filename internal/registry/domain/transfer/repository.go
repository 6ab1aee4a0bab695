package transfer

import (
	"context"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/shared/domain"
)

// Repository persists transfers.
type Repository interface {
	domain.Repository[*Transfer]

	// ListByTitle returns the title's transfers, newest first.
	ListByTitle(ctx context.Context, titleID uuid.UUID) ([]*Transfer, error)
}
