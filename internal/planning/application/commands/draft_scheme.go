// Package commands implements the state-changing operations of the planning
// context. Every handler runs inside a unit of work: the scheme's conditional
// save, the audit transitions and the outbox enqueue commit together.
package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/planning/domain/scheme"
	"github.com/sbhunu/landadmin/internal/review"
	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
)

// DraftSchemeCommand creates a scheme in the draft state.
type DraftSchemeCommand struct {
	SchemeNumber   string
	Name           string
	LocalAuthority string
	Checklist      []review.ChecklistItem
	Actor          sharedApplication.Actor
}

func (DraftSchemeCommand) CommandName() string { return "planning.draft_scheme" }

// DraftSchemeResult carries the identifier of the new scheme.
type DraftSchemeResult struct {
	SchemeID uuid.UUID
}

// DraftSchemeHandler handles the DraftSchemeCommand.
type DraftSchemeHandler struct {
	schemes   scheme.Repository
	committer *persistence.Committer
	uow       sharedApplication.UnitOfWork
}

// NewDraftSchemeHandler creates a new DraftSchemeHandler.
func NewDraftSchemeHandler(schemes scheme.Repository, committer *persistence.Committer, uow sharedApplication.UnitOfWork) *DraftSchemeHandler {
	return &DraftSchemeHandler{schemes: schemes, committer: committer, uow: uow}
}

// Handle executes the DraftSchemeCommand.
func (h *DraftSchemeHandler) Handle(ctx context.Context, cmd DraftSchemeCommand) (*DraftSchemeResult, error) {
	var result *DraftSchemeResult

	err := sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		s, err := scheme.NewScheme(cmd.SchemeNumber, cmd.Name, cmd.LocalAuthority, cmd.Actor.ID)
		if err != nil {
			return err
		}
		if len(cmd.Checklist) > 0 {
			if err := s.SetChecklist(cmd.Checklist); err != nil {
				return err
			}
		}

		if err := h.schemes.Save(txCtx, s); err != nil {
			return err
		}
		if err := h.committer.Flush(txCtx, s, sharedApplication.NewEventMetadata(cmd.Actor)); err != nil {
			return err
		}

		result = &DraftSchemeResult{SchemeID: s.ID()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
