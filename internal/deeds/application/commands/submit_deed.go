package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/deeds/domain/deed"
	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
)

// SubmitDeedCommand lodges a draft (or corrected revision) for examination.
type SubmitDeedCommand struct {
	DeedID uuid.UUID
	Actor  sharedApplication.Actor
}

func (SubmitDeedCommand) CommandName() string { return "deeds.submit_deed" }

// SubmitDeedHandler handles the SubmitDeedCommand.
type SubmitDeedHandler struct {
	deeds     deed.Repository
	committer *persistence.Committer
	uow       sharedApplication.UnitOfWork
}

// NewSubmitDeedHandler creates a new SubmitDeedHandler.
func NewSubmitDeedHandler(deeds deed.Repository, committer *persistence.Committer, uow sharedApplication.UnitOfWork) *SubmitDeedHandler {
	return &SubmitDeedHandler{deeds: deeds, committer: committer, uow: uow}
}

// Handle executes the SubmitDeedCommand.
func (h *SubmitDeedHandler) Handle(ctx context.Context, cmd SubmitDeedCommand) error {
	return sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		d, err := h.deeds.FindByID(txCtx, cmd.DeedID)
		if err != nil {
			return err
		}
		if err := d.Submit(cmd.Actor.ID); err != nil {
			return err
		}
		if err := h.deeds.Save(txCtx, d); err != nil {
			return err
		}
		return h.committer.Flush(txCtx, d, sharedApplication.NewEventMetadata(cmd.Actor))
	})
}
