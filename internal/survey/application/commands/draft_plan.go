// Package commands implements the state-changing operations of the survey
// context, from drafting a plan through computing quotas to the
// Surveyor-General's seal.
package commands

import (
	"context"

	"github.com/google/uuid"

	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
	"github.com/sbhunu/landadmin/internal/survey/domain/plan"
)

// DraftPlanCommand creates a survey plan in the draft state.
type DraftPlanCommand struct {
	PlanNumber string
	SchemeID   uuid.UUID
	Sections   []plan.Section
	Actor      sharedApplication.Actor
}

func (DraftPlanCommand) CommandName() string { return "survey.draft_plan" }

// DraftPlanResult carries the identifier of the new plan.
type DraftPlanResult struct {
	PlanID uuid.UUID
}

// DraftPlanHandler handles the DraftPlanCommand.
type DraftPlanHandler struct {
	plans     plan.Repository
	committer *persistence.Committer
	uow       sharedApplication.UnitOfWork
}

// NewDraftPlanHandler creates a new DraftPlanHandler.
func NewDraftPlanHandler(plans plan.Repository, committer *persistence.Committer, uow sharedApplication.UnitOfWork) *DraftPlanHandler {
	return &DraftPlanHandler{plans: plans, committer: committer, uow: uow}
}

// Handle executes the DraftPlanCommand.
func (h *DraftPlanHandler) Handle(ctx context.Context, cmd DraftPlanCommand) (*DraftPlanResult, error) {
	var result *DraftPlanResult

	err := sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		p, err := plan.NewSurveyPlan(cmd.PlanNumber, cmd.SchemeID, cmd.Actor.ID)
		if err != nil {
			return err
		}
		if len(cmd.Sections) > 0 {
			if err := p.SetSections(cmd.Sections, cmd.Actor.ID); err != nil {
				return err
			}
		}

		if err := h.plans.Save(txCtx, p); err != nil {
			return err
		}
		if err := h.committer.Flush(txCtx, p, sharedApplication.NewEventMetadata(cmd.Actor)); err != nil {
			return err
		}

		result = &DraftPlanResult{PlanID: p.ID()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
