package dispute

import (
	"context"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/shared/domain"
)

// Repository persists disputes.
type Repository interface {
	domain.Repository[*Dispute]

	// ListBySubject returns the disputes lodged against one record,
	// newest first.
	ListBySubject(ctx context.Context, subjectID uuid.UUID) ([]*Dispute, error)
}
