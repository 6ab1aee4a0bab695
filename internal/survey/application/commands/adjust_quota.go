package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
	"github.com/sbhunu/landadmin/internal/survey/domain/plan"
)

// AdjustQuotaCommand overrides one section's participation quota and
// redistributes the remainder across the other sections.
type AdjustQuotaCommand struct {
	PlanID        uuid.UUID
	SectionNumber int
	NewQuota      decimal.Decimal
	Actor         sharedApplication.Actor
}

func (AdjustQuotaCommand) CommandName() string { return "survey.adjust_quota" }

// AdjustQuotaHandler handles the AdjustQuotaCommand.
type AdjustQuotaHandler struct {
	plans     plan.Repository
	committer *persistence.Committer
	uow       sharedApplication.UnitOfWork
}

// NewAdjustQuotaHandler creates a new AdjustQuotaHandler.
func NewAdjustQuotaHandler(plans plan.Repository, committer *persistence.Committer, uow sharedApplication.UnitOfWork) *AdjustQuotaHandler {
	return &AdjustQuotaHandler{plans: plans, committer: committer, uow: uow}
}

// Handle executes the AdjustQuotaCommand.
func (h *AdjustQuotaHandler) Handle(ctx context.Context, cmd AdjustQuotaCommand) error {
	return sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		p, err := h.plans.FindByID(txCtx, cmd.PlanID)
		if err != nil {
			return err
		}
		if err := p.AdjustQuota(cmd.SectionNumber, cmd.NewQuota, cmd.Actor.ID); err != nil {
			return err
		}
		if err := h.plans.Save(txCtx, p); err != nil {
			return err
		}
		return h.committer.Flush(txCtx, p, sharedApplication.NewEventMetadata(cmd.Actor))
	})
}
