package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/planning/domain/scheme"
	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
)

// SubmitSchemeCommand moves a draft (or a revision) into the review queue.
type SubmitSchemeCommand struct {
	SchemeID uuid.UUID
	Actor    sharedApplication.Actor
}

func (SubmitSchemeCommand) CommandName() string { return "planning.submit_scheme" }

// SubmitSchemeHandler handles the SubmitSchemeCommand.
type SubmitSchemeHandler struct {
	schemes   scheme.Repository
	committer *persistence.Committer
	uow       sharedApplication.UnitOfWork
}

// NewSubmitSchemeHandler creates a new SubmitSchemeHandler.
func NewSubmitSchemeHandler(schemes scheme.Repository, committer *persistence.Committer, uow sharedApplication.UnitOfWork) *SubmitSchemeHandler {
	return &SubmitSchemeHandler{schemes: schemes, committer: committer, uow: uow}
}

// Handle executes the SubmitSchemeCommand.
func (h *SubmitSchemeHandler) Handle(ctx context.Context, cmd SubmitSchemeCommand) error {
	return sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		s, err := h.schemes.FindByID(txCtx, cmd.SchemeID)
		if err != nil {
			return err
		}
		if err := s.Submit(cmd.Actor.ID); err != nil {
			return err
		}
		if err := h.schemes.Save(txCtx, s); err != nil {
			return err
		}
		return h.committer.Flush(txCtx, s, sharedApplication.NewEventMetadata(cmd.Actor))
	})
}
