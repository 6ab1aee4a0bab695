package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/deeds/domain/title"
	"github.com/sbhunu/landadmin/internal/registry/domain/transfer"
	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
)

// SubmitTransferCommand lodges an ownership transfer for a registered
// title. The current holder is read from the title, not trusted from the
// caller.
type SubmitTransferCommand struct {
	TitleID    uuid.UUID
	ToHolderID uuid.UUID
	Actor      sharedApplication.Actor
}

func (SubmitTransferCommand) CommandName() string { return "registry.submit_transfer" }

// SubmitTransferResult carries the new transfer's identifier.
type SubmitTransferResult struct {
	TransferID uuid.UUID
}

// SubmitTransferHandler handles the SubmitTransferCommand.
type SubmitTransferHandler struct {
	transfers transfer.Repository
	titles    title.Repository
	committer *persistence.Committer
	uow       sharedApplication.UnitOfWork
}

// NewSubmitTransferHandler creates a new SubmitTransferHandler.
func NewSubmitTransferHandler(transfers transfer.Repository, titles title.Repository, committer *persistence.Committer, uow sharedApplication.UnitOfWork) *SubmitTransferHandler {
	return &SubmitTransferHandler{transfers: transfers, titles: titles, committer: committer, uow: uow}
}

// Handle executes the SubmitTransferCommand.
func (h *SubmitTransferHandler) Handle(ctx context.Context, cmd SubmitTransferCommand) (*SubmitTransferResult, error) {
	var result *SubmitTransferResult

	err := sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		ti, err := h.titles.FindByID(txCtx, cmd.TitleID)
		if err != nil {
			return err
		}

		tr, err := transfer.NewTransfer(ti.ID(), ti.HolderID(), cmd.ToHolderID, cmd.Actor.ID)
		if err != nil {
			return err
		}
		if err := h.transfers.Save(txCtx, tr); err != nil {
			return err
		}
		if err := h.committer.Flush(txCtx, tr, sharedApplication.NewEventMetadata(cmd.Actor)); err != nil {
			return err
		}
		result = &SubmitTransferResult{TransferID: tr.ID()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
