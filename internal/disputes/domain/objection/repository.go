package objection

import (
	"context"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/shared/domain"
)

// Repository persists objections.
type Repository interface {
	domain.Repository[*Objection]

	// ListByScheme returns the scheme's objections, newest first.
	ListByScheme(ctx context.Context, schemeID uuid.UUID) ([]*Objection, error)
}
