package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/deeds/domain/deed"
	"github.com/sbhunu/landadmin/internal/deeds/domain/title"
	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
)

// RegisterDeedCommand moves an approved deed onto the register and opens
// the pending title record in the same transaction.
type RegisterDeedCommand struct {
	DeedID      uuid.UUID
	TitleNumber string
	Actor       sharedApplication.Actor
}

func (RegisterDeedCommand) CommandName() string { return "deeds.register_deed" }

// RegisterDeedResult carries the identifier of the opened title.
type RegisterDeedResult struct {
	TitleID uuid.UUID
}

// RegisterDeedHandler handles the RegisterDeedCommand.
type RegisterDeedHandler struct {
	deeds     deed.Repository
	titles    title.Repository
	committer *persistence.Committer
	uow       sharedApplication.UnitOfWork
}

// NewRegisterDeedHandler creates a new RegisterDeedHandler.
func NewRegisterDeedHandler(deeds deed.Repository, titles title.Repository, committer *persistence.Committer, uow sharedApplication.UnitOfWork) *RegisterDeedHandler {
	return &RegisterDeedHandler{deeds: deeds, titles: titles, committer: committer, uow: uow}
}

// Handle executes the RegisterDeedCommand. The deed's transition and the
// title insert share one transaction: a half-registered deed cannot exist.
func (h *RegisterDeedHandler) Handle(ctx context.Context, cmd RegisterDeedCommand) (*RegisterDeedResult, error) {
	var result *RegisterDeedResult

	err := sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		d, err := h.deeds.FindByID(txCtx, cmd.DeedID)
		if err != nil {
			return err
		}
		if err := d.Register(cmd.Actor.ID); err != nil {
			return err
		}

		ti, err := title.NewTitle(cmd.TitleNumber, d.ID(), d.SchemeID(), d.SectionNumber(), d.HolderID())
		if err != nil {
			return err
		}

		md := sharedApplication.NewEventMetadata(cmd.Actor)
		if err := h.deeds.Save(txCtx, d); err != nil {
			return err
		}
		if err := h.committer.Flush(txCtx, d, md); err != nil {
			return err
		}
		if err := h.titles.Save(txCtx, ti); err != nil {
			return err
		}
		if err := h.committer.Flush(txCtx, ti, md); err != nil {
			return err
		}

		result = &RegisterDeedResult{TitleID: ti.ID()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
