// Package queries implements the read side of the planning context.
package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/planning/domain/scheme"
	"github.com/sbhunu/landadmin/internal/review"
	"github.com/sbhunu/landadmin/internal/workflow"
)

// GetSchemeQuery fetches one scheme by ID or by scheme number.
type GetSchemeQuery struct {
	SchemeID     uuid.UUID
	SchemeNumber string
}

func (GetSchemeQuery) QueryName() string { return "planning.get_scheme" }

// SchemeView is the read model returned across the module boundary.
type SchemeView struct {
	ID             uuid.UUID              `json:"id"`
	SchemeNumber   string                 `json:"scheme_number"`
	Name           string                 `json:"name"`
	LocalAuthority string                 `json:"local_authority,omitempty"`
	PlannerID      uuid.UUID              `json:"planner_id"`
	State          workflow.State         `json:"state"`
	NextStates     []workflow.State       `json:"next_states"`
	ReviewerID     *uuid.UUID             `json:"reviewer_id,omitempty"`
	Checklist      []review.ChecklistItem `json:"checklist,omitempty"`
	WindowStart    *time.Time             `json:"window_start,omitempty"`
	WindowEnd      *time.Time             `json:"window_end,omitempty"`
	Version        int                    `json:"version"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// NewSchemeView projects a scheme aggregate into its read model.
func NewSchemeView(s *scheme.Scheme) *SchemeView {
	start, end := s.Window()
	return &SchemeView{
		ID:             s.ID(),
		SchemeNumber:   s.SchemeNumber(),
		Name:           s.Name(),
		LocalAuthority: s.LocalAuthority(),
		PlannerID:      s.PlannerID(),
		State:          s.State(),
		NextStates:     workflow.PlanningTable.NextStates(s.State()),
		ReviewerID:     s.ReviewerID(),
		Checklist:      s.Checklist(),
		WindowStart:    start,
		WindowEnd:      end,
		Version:        s.Version(),
		CreatedAt:      s.CreatedAt(),
		UpdatedAt:      s.UpdatedAt(),
	}
}

// GetSchemeHandler handles the GetSchemeQuery.
type GetSchemeHandler struct {
	schemes scheme.Repository
}

// NewGetSchemeHandler creates a new GetSchemeHandler.
func NewGetSchemeHandler(schemes scheme.Repository) *GetSchemeHandler {
	return &GetSchemeHandler{schemes: schemes}
}

// Handle executes the GetSchemeQuery.
func (h *GetSchemeHandler) Handle(ctx context.Context, q GetSchemeQuery) (*SchemeView, error) {
	var (
		s   *scheme.Scheme
		err error
	)
	if q.SchemeID != uuid.Nil {
		s, err = h.schemes.FindByID(ctx, q.SchemeID)
	} else {
		s, err = h.schemes.FindBySchemeNumber(ctx, q.SchemeNumber)
	}
	if err != nil {
		return nil, err
	}
	return NewSchemeView(s), nil
}
