package commands

import (
	"context"

	"github.com/google/uuid"

	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
	"github.com/sbhunu/landadmin/internal/survey/domain/plan"
)

// ComputeQuotasCommand derives participation quotas from the plan's
// sectional floor areas. Sections may be replaced in the same call.
type ComputeQuotasCommand struct {
	PlanID   uuid.UUID
	Sections []plan.Section
	Actor    sharedApplication.Actor
}

func (ComputeQuotasCommand) CommandName() string { return "survey.compute_quotas" }

// ComputeQuotasHandler handles the ComputeQuotasCommand.
type ComputeQuotasHandler struct {
	plans     plan.Repository
	committer *persistence.Committer
	uow       sharedApplication.UnitOfWork
}

// NewComputeQuotasHandler creates a new ComputeQuotasHandler.
func NewComputeQuotasHandler(plans plan.Repository, committer *persistence.Committer, uow sharedApplication.UnitOfWork) *ComputeQuotasHandler {
	return &ComputeQuotasHandler{plans: plans, committer: committer, uow: uow}
}

// Handle executes the ComputeQuotasCommand.
func (h *ComputeQuotasHandler) Handle(ctx context.Context, cmd ComputeQuotasCommand) error {
	return sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		p, err := h.plans.FindByID(txCtx, cmd.PlanID)
		if err != nil {
			return err
		}
		if len(cmd.Sections) > 0 {
			if err := p.SetSections(cmd.Sections, cmd.Actor.ID); err != nil {
				return err
			}
		}
		if err := p.Compute(cmd.Actor.ID); err != nil {
			return err
		}
		if err := h.plans.Save(txCtx, p); err != nil {
			return err
		}
		return h.committer.Flush(txCtx, p, sharedApplication.NewEventMetadata(cmd.Actor))
	})
}
