package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/survey/domain/plan"
	"github.com/sbhunu/landadmin/internal/workflow"
)

// GetPlanQuery fetches one survey plan by ID or plan number.
type GetPlanQuery struct {
	PlanID     uuid.UUID
	PlanNumber string
}

func (GetPlanQuery) QueryName() string { return "survey.get_plan" }

// PlanView is the read model returned across the module boundary.
type PlanView struct {
	ID         uuid.UUID        `json:"id"`
	PlanNumber string           `json:"plan_number"`
	SchemeID   uuid.UUID        `json:"scheme_id"`
	SurveyorID uuid.UUID        `json:"surveyor_id"`
	State      workflow.State   `json:"state"`
	NextStates []workflow.State `json:"next_states"`
	ReviewerID *uuid.UUID       `json:"reviewer_id,omitempty"`
	Sections   []plan.Section   `json:"sections"`
	Sealed     bool             `json:"sealed"`
	Version    int              `json:"version"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// NewPlanView projects a plan aggregate into its read model.
func NewPlanView(p *plan.SurveyPlan) *PlanView {
	return &PlanView{
		ID:         p.ID(),
		PlanNumber: p.PlanNumber(),
		SchemeID:   p.SchemeID(),
		SurveyorID: p.SurveyorID(),
		State:      p.State(),
		NextStates: workflow.SurveyTable.NextStates(p.State()),
		ReviewerID: p.ReviewerID(),
		Sections:   p.Sections(),
		Sealed:     p.IsSealed(),
		Version:    p.Version(),
		CreatedAt:  p.CreatedAt(),
		UpdatedAt:  p.UpdatedAt(),
	}
}

// GetPlanHandler handles the GetPlanQuery.
type GetPlanHandler struct {
	plans plan.Repository
}

// NewGetPlanHandler creates a new GetPlanHandler.
func NewGetPlanHandler(plans plan.Repository) *GetPlanHandler {
	return &GetPlanHandler{plans: plans}
}

// Handle executes the GetPlanQuery.
func (h *GetPlanHandler) Handle(ctx context.Context, q GetPlanQuery) (*PlanView, error) {
	var (
		p   *plan.SurveyPlan
		err error
	)
	if q.PlanID != uuid.Nil {
		p, err = h.plans.FindByID(ctx, q.PlanID)
	} else {
		p, err = h.plans.FindByPlanNumber(ctx, q.PlanNumber)
	}
	if err != nil {
		return nil, err
	}
	return NewPlanView(p), nil
}
