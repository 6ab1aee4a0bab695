package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/planning/domain/scheme"
	"github.com/sbhunu/landadmin/internal/review"
	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
)

// SubmitDecisionCommand records the reviewer's verdict on a scheme.
type SubmitDecisionCommand struct {
	SchemeID uuid.UUID
	Decision string
	Notes    string
	Actor    sharedApplication.Actor
}

func (SubmitDecisionCommand) CommandName() string { return "planning.submit_decision" }

// SubmitDecisionHandler handles the SubmitDecisionCommand.
type SubmitDecisionHandler struct {
	schemes   scheme.Repository
	committer *persistence.Committer
	uow       sharedApplication.UnitOfWork
}

// NewSubmitDecisionHandler creates a new SubmitDecisionHandler.
func NewSubmitDecisionHandler(schemes scheme.Repository, committer *persistence.Committer, uow sharedApplication.UnitOfWork) *SubmitDecisionHandler {
	return &SubmitDecisionHandler{schemes: schemes, committer: committer, uow: uow}
}

// Handle executes the SubmitDecisionCommand.
func (h *SubmitDecisionHandler) Handle(ctx context.Context, cmd SubmitDecisionCommand) error {
	decision, err := review.ParseDecision(cmd.Decision)
	if err != nil {
		return err
	}

	return sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		s, err := h.schemes.FindByID(txCtx, cmd.SchemeID)
		if err != nil {
			return err
		}
		if err := s.Decide(decision, cmd.Notes, cmd.Actor.ID); err != nil {
			return err
		}
		if err := h.schemes.Save(txCtx, s); err != nil {
			return err
		}
		return h.committer.Flush(txCtx, s, sharedApplication.NewEventMetadata(cmd.Actor))
	})
}
