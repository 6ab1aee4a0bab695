package title

import (
	"context"

	"github.com/sbhunu/landadmin/internal/shared/domain"
)

// Repository persists titles with optimistic concurrency.
type Repository interface {
	domain.Repository[*Title]
	FindByTitleNumber(ctx context.Context, titleNumber string) (*Title, error)
}
