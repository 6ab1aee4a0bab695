// Package commands implements the state-changing operations of the deeds
// context: lodging, examination, registration, and the title lifecycle that
// registration opens.
package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbhunu/landadmin/internal/deeds/domain/deed"
	"github.com/sbhunu/landadmin/internal/review"
	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
)

// LodgeDeedCommand lodges a new deed draft for a section.
type LodgeDeedCommand struct {
	DeedNumber    string
	SchemeID      uuid.UUID
	SectionNumber int
	HolderID      uuid.UUID
	Area          decimal.Decimal
	Checklist     []review.ChecklistItem
	Actor         sharedApplication.Actor
}

func (LodgeDeedCommand) CommandName() string { return "deeds.lodge_deed" }

// LodgeDeedResult carries the identifier of the new draft.
type LodgeDeedResult struct {
	DeedID uuid.UUID
}

// LodgeDeedHandler handles the LodgeDeedCommand.
type LodgeDeedHandler struct {
	deeds     deed.Repository
	committer *persistence.Committer
	uow       sharedApplication.UnitOfWork
}

// NewLodgeDeedHandler creates a new LodgeDeedHandler.
func NewLodgeDeedHandler(deeds deed.Repository, committer *persistence.Committer, uow sharedApplication.UnitOfWork) *LodgeDeedHandler {
	return &LodgeDeedHandler{deeds: deeds, committer: committer, uow: uow}
}

// Handle executes the LodgeDeedCommand. The caller is recorded as the
// conveyancer of record.
func (h *LodgeDeedHandler) Handle(ctx context.Context, cmd LodgeDeedCommand) (*LodgeDeedResult, error) {
	var result *LodgeDeedResult

	err := sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		d, err := deed.NewDeed(cmd.DeedNumber, cmd.SchemeID, cmd.SectionNumber, cmd.HolderID, cmd.Actor.ID, cmd.Area)
		if err != nil {
			return err
		}
		if len(cmd.Checklist) > 0 {
			if err := d.SetChecklist(cmd.Checklist); err != nil {
				return err
			}
		}

		if err := h.deeds.Save(txCtx, d); err != nil {
			return err
		}
		if err := h.committer.Flush(txCtx, d, sharedApplication.NewEventMetadata(cmd.Actor)); err != nil {
			return err
		}

		result = &LodgeDeedResult{DeedID: d.ID()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
