package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/deeds/domain/title"
	"github.com/sbhunu/landadmin/internal/registry/domain/transfer"
	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
)

// ProcessTransferCommand performs the ownership change for an approved
// transfer: the title's holder is swapped and a fresh registration number
// issued, atomically with the transfer's own status move.
type ProcessTransferCommand struct {
	TransferID uuid.UUID
	Actor      sharedApplication.Actor
}

func (ProcessTransferCommand) CommandName() string { return "registry.process_transfer" }

// ProcessTransferResult carries the issued registration number. On a
// repeated call it reports the number issued the first time.
type ProcessTransferResult struct {
	RegistrationNumber string
	AlreadyProcessed   bool
}

// ProcessTransferHandler handles the ProcessTransferCommand.
type ProcessTransferHandler struct {
	transfers transfer.Repository
	titles    title.Repository
	committer *persistence.Committer
	uow       sharedApplication.UnitOfWork
	now       func() time.Time
}

// NewProcessTransferHandler creates a new ProcessTransferHandler.
func NewProcessTransferHandler(transfers transfer.Repository, titles title.Repository, committer *persistence.Committer, uow sharedApplication.UnitOfWork) *ProcessTransferHandler {
	return &ProcessTransferHandler{
		transfers: transfers,
		titles:    titles,
		committer: committer,
		uow:       uow,
		now:       time.Now,
	}
}

// Handle executes the ProcessTransferCommand. Idempotent: a transfer that
// is already processed returns its registration number without touching the
// title again.
func (h *ProcessTransferHandler) Handle(ctx context.Context, cmd ProcessTransferCommand) (*ProcessTransferResult, error) {
	var result *ProcessTransferResult

	err := sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		tr, err := h.transfers.FindByID(txCtx, cmd.TransferID)
		if err != nil {
			return err
		}
		if tr.IsProcessed() {
			var issued string
			if tr.RegistrationNumber() != nil {
				issued = *tr.RegistrationNumber()
			}
			result = &ProcessTransferResult{RegistrationNumber: issued, AlreadyProcessed: true}
			return nil
		}

		now := h.now()
		regNumber := title.GenerateRegistrationNumber(now)

		ti, err := h.titles.FindByID(txCtx, tr.TitleID())
		if err != nil {
			return err
		}
		if err := ti.TransferTo(tr.ToHolderID(), regNumber, cmd.Actor.ID); err != nil {
			return err
		}
		if _, err := tr.Process(regNumber, cmd.Actor.ID, now); err != nil {
			return err
		}

		md := sharedApplication.NewEventMetadata(cmd.Actor)
		if err := h.titles.Save(txCtx, ti); err != nil {
			return err
		}
		if err := h.committer.Flush(txCtx, ti, md); err != nil {
			return err
		}
		if err := h.transfers.Save(txCtx, tr); err != nil {
			return err
		}
		if err := h.committer.Flush(txCtx, tr, md); err != nil {
			return err
		}

		result = &ProcessTransferResult{RegistrationNumber: regNumber}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
