package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/planning/domain/scheme"
	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
)

// CompleteChecklistItemCommand marks one compliance item done during review.
type CompleteChecklistItemCommand struct {
	SchemeID uuid.UUID
	ItemCode string
	Actor    sharedApplication.Actor
}

func (CompleteChecklistItemCommand) CommandName() string {
	return "planning.complete_checklist_item"
}

// CompleteChecklistItemHandler handles the CompleteChecklistItemCommand.
type CompleteChecklistItemHandler struct {
	schemes   scheme.Repository
	committer *persistence.Committer
	uow       sharedApplication.UnitOfWork
}

// NewCompleteChecklistItemHandler creates a new CompleteChecklistItemHandler.
func NewCompleteChecklistItemHandler(schemes scheme.Repository, committer *persistence.Committer, uow sharedApplication.UnitOfWork) *CompleteChecklistItemHandler {
	return &CompleteChecklistItemHandler{schemes: schemes, committer: committer, uow: uow}
}

// Handle executes the CompleteChecklistItemCommand.
func (h *CompleteChecklistItemHandler) Handle(ctx context.Context, cmd CompleteChecklistItemCommand) error {
	return sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		s, err := h.schemes.FindByID(txCtx, cmd.SchemeID)
		if err != nil {
			return err
		}
		if err := s.CompleteChecklistItem(cmd.ItemCode); err != nil {
			return err
		}
		if err := h.schemes.Save(txCtx, s); err != nil {
			return err
		}
		return h.committer.Flush(txCtx, s, sharedApplication.NewEventMetadata(cmd.Actor))
	})
}
