package plan

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/shared/domain"
)

// ErrPlanNotFound is returned when no plan matches the lookup.
var ErrPlanNotFound = errors.New("survey plan not found")

// Repository persists survey plans with optimistic concurrency.
type Repository interface {
	domain.Repository[*SurveyPlan]
	FindByPlanNumber(ctx context.Context, planNumber string) (*SurveyPlan, error)
	// FindSealedByScheme returns the sealed plan for a scheme, the record
	// deed examination cross-validates against.
	FindSealedByScheme(ctx context.Context, schemeID uuid.UUID) (*SurveyPlan, error)
}
