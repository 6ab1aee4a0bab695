package commands

import (
	"context"

	"github.com/google/uuid"

	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
	"github.com/sbhunu/landadmin/internal/survey/domain/plan"
)

// WithdrawPlanCommand pulls a plan out of the sealing process.
type WithdrawPlanCommand struct {
	PlanID uuid.UUID
	Reason string
	Actor  sharedApplication.Actor
}

func (WithdrawPlanCommand) CommandName() string { return "survey.withdraw_plan" }

// WithdrawPlanHandler handles the WithdrawPlanCommand.
type WithdrawPlanHandler struct {
	plans     plan.Repository
	committer *persistence.Committer
	uow       sharedApplication.UnitOfWork
}

// NewWithdrawPlanHandler creates a new WithdrawPlanHandler.
func NewWithdrawPlanHandler(plans plan.Repository, committer *persistence.Committer, uow sharedApplication.UnitOfWork) *WithdrawPlanHandler {
	return &WithdrawPlanHandler{plans: plans, committer: committer, uow: uow}
}

// Handle executes the WithdrawPlanCommand.
func (h *WithdrawPlanHandler) Handle(ctx context.Context, cmd WithdrawPlanCommand) error {
	return sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		p, err := h.plans.FindByID(txCtx, cmd.PlanID)
		if err != nil {
			return err
		}
		if err := p.Withdraw(cmd.Actor.ID, cmd.Reason); err != nil {
			return err
		}
		if err := h.plans.Save(txCtx, p); err != nil {
			return err
		}
		return h.committer.Flush(txCtx, p, sharedApplication.NewEventMetadata(cmd.Actor))
	})
}
