package amendment

import (
	"context"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/shared/domain"
)

// Repository persists amendments.
type Repository interface {
	domain.Repository[*Amendment]

	// ListByScheme returns the scheme's amendments, newest first.
	ListByScheme(ctx context.Context, schemeID uuid.UUID) ([]*Amendment, error)
}
