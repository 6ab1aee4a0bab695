package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/registry/domain/amendment"
	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
)

// ApproveAmendmentCommand clears an amendment for processing.
type ApproveAmendmentCommand struct {
	AmendmentID uuid.UUID
	Actor       sharedApplication.Actor
}

func (ApproveAmendmentCommand) CommandName() string { return "registry.approve_amendment" }

// RejectAmendmentCommand closes an amendment without processing.
type RejectAmendmentCommand struct {
	AmendmentID uuid.UUID
	Reason      string
	Actor       sharedApplication.Actor
}

func (RejectAmendmentCommand) CommandName() string { return "registry.reject_amendment" }

// DecideAmendmentHandler handles approval and rejection; both are plain
// guarded transitions with no registry mutation attached.
type DecideAmendmentHandler struct {
	amendments amendment.Repository
	committer  *persistence.Committer
	uow        sharedApplication.UnitOfWork
}

// NewDecideAmendmentHandler creates a new DecideAmendmentHandler.
func NewDecideAmendmentHandler(amendments amendment.Repository, committer *persistence.Committer, uow sharedApplication.UnitOfWork) *DecideAmendmentHandler {
	return &DecideAmendmentHandler{amendments: amendments, committer: committer, uow: uow}
}

// HandleApprove executes the ApproveAmendmentCommand.
func (h *DecideAmendmentHandler) HandleApprove(ctx context.Context, cmd ApproveAmendmentCommand) error {
	return h.decide(ctx, cmd.AmendmentID, cmd.Actor, func(a *amendment.Amendment) error {
		return a.Approve(cmd.Actor.ID)
	})
}

// HandleReject executes the RejectAmendmentCommand.
func (h *DecideAmendmentHandler) HandleReject(ctx context.Context, cmd RejectAmendmentCommand) error {
	return h.decide(ctx, cmd.AmendmentID, cmd.Actor, func(a *amendment.Amendment) error {
		return a.Reject(cmd.Reason, cmd.Actor.ID)
	})
}

func (h *DecideAmendmentHandler) decide(ctx context.Context, id uuid.UUID, actor sharedApplication.Actor, verdict func(*amendment.Amendment) error) error {
	return sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		a, err := h.amendments.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := verdict(a); err != nil {
			return err
		}
		if err := h.amendments.Save(txCtx, a); err != nil {
			return err
		}
		return h.committer.Flush(txCtx, a, sharedApplication.NewEventMetadata(actor))
	})
}
