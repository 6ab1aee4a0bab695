package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/review"
	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
	"github.com/sbhunu/landadmin/internal/survey/domain/plan"
)

// SubmitDecisionCommand records the Surveyor-General's verdict. An approval
// seals the plan, freezing its geometry and quotas for good.
type SubmitDecisionCommand struct {
	PlanID   uuid.UUID
	Decision string
	Notes    string
	Actor    sharedApplication.Actor
}

func (SubmitDecisionCommand) CommandName() string { return "survey.submit_decision" }

// SubmitDecisionHandler handles the SubmitDecisionCommand.
type SubmitDecisionHandler struct {
	plans     plan.Repository
	committer *persistence.Committer
	uow       sharedApplication.UnitOfWork
}

// NewSubmitDecisionHandler creates a new SubmitDecisionHandler.
func NewSubmitDecisionHandler(plans plan.Repository, committer *persistence.Committer, uow sharedApplication.UnitOfWork) *SubmitDecisionHandler {
	return &SubmitDecisionHandler{plans: plans, committer: committer, uow: uow}
}

// Handle executes the SubmitDecisionCommand.
func (h *SubmitDecisionHandler) Handle(ctx context.Context, cmd SubmitDecisionCommand) error {
	decision, err := review.ParseDecision(cmd.Decision)
	if err != nil {
		return err
	}

	return sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		p, err := h.plans.FindByID(txCtx, cmd.PlanID)
		if err != nil {
			return err
		}
		if err := p.Decide(decision, cmd.Notes, cmd.Actor.ID); err != nil {
			return err
		}
		if err := h.plans.Save(txCtx, p); err != nil {
			return err
		}
		return h.committer.Flush(txCtx, p, sharedApplication.NewEventMetadata(cmd.Actor))
	})
}
