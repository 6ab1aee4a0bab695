// Package queries implements the read side of the survey context.
package queries

import (
	"context"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/survey/domain/geometry"
	"github.com/sbhunu/landadmin/internal/survey/domain/plan"
)

// ValidateTopologyQuery runs the advisory topology check against a plan's
// current sections, or against caller-supplied boundaries when set (a
// speculative check before any data is saved).
type ValidateTopologyQuery struct {
	PlanID     uuid.UUID
	Boundaries []geometry.Boundary
}

func (ValidateTopologyQuery) QueryName() string { return "survey.validate_topology" }

// ValidateTopologyHandler handles the ValidateTopologyQuery.
type ValidateTopologyHandler struct {
	plans plan.Repository
}

// NewValidateTopologyHandler creates a new ValidateTopologyHandler.
func NewValidateTopologyHandler(plans plan.Repository) *ValidateTopologyHandler {
	return &ValidateTopologyHandler{plans: plans}
}

// Handle executes the ValidateTopologyQuery.
func (h *ValidateTopologyHandler) Handle(ctx context.Context, q ValidateTopologyQuery) (geometry.Report, error) {
	if len(q.Boundaries) > 0 {
		return geometry.ValidateTopology(q.Boundaries), nil
	}
	p, err := h.plans.FindByID(ctx, q.PlanID)
	if err != nil {
		return geometry.Report{}, err
	}
	return p.TopologyReport(), nil
}
