package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/registry/domain/transfer"
	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
)

// ApproveTransferCommand clears a transfer for processing.
type ApproveTransferCommand struct {
	TransferID uuid.UUID
	Actor      sharedApplication.Actor
}

func (ApproveTransferCommand) CommandName() string { return "registry.approve_transfer" }

// RejectTransferCommand closes a transfer without touching the title.
type RejectTransferCommand struct {
	TransferID uuid.UUID
	Reason     string
	Actor      sharedApplication.Actor
}

func (RejectTransferCommand) CommandName() string { return "registry.reject_transfer" }

// DecideTransferHandler handles transfer approval and rejection.
type DecideTransferHandler struct {
	transfers transfer.Repository
	committer *persistence.Committer
	uow       sharedApplication.UnitOfWork
}

// NewDecideTransferHandler creates a new DecideTransferHandler.
func NewDecideTransferHandler(transfers transfer.Repository, committer *persistence.Committer, uow sharedApplication.UnitOfWork) *DecideTransferHandler {
	return &DecideTransferHandler{transfers: transfers, committer: committer, uow: uow}
}

// HandleApprove executes the ApproveTransferCommand.
func (h *DecideTransferHandler) HandleApprove(ctx context.Context, cmd ApproveTransferCommand) error {
	return h.decide(ctx, cmd.TransferID, cmd.Actor, func(tr *transfer.Transfer) error {
		return tr.Approve(cmd.Actor.ID)
	})
}

// HandleReject executes the RejectTransferCommand.
func (h *DecideTransferHandler) HandleReject(ctx context.Context, cmd RejectTransferCommand) error {
	return h.decide(ctx, cmd.TransferID, cmd.Actor, func(tr *transfer.Transfer) error {
		return tr.Reject(cmd.Reason, cmd.Actor.ID)
	})
}

func (h *DecideTransferHandler) decide(ctx context.Context, id uuid.UUID, actor sharedApplication.Actor, verdict func(*transfer.Transfer) error) error {
	return sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		tr, err := h.transfers.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := verdict(tr); err != nil {
			return err
		}
		if err := h.transfers.Save(txCtx, tr); err != nil {
			return err
		}
		return h.committer.Flush(txCtx, tr, sharedApplication.NewEventMetadata(actor))
	})
}
