package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/planning/domain/scheme"
	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
)

// WithdrawSchemeCommand pulls a scheme out of the process.
type WithdrawSchemeCommand struct {
	SchemeID uuid.UUID
	Reason   string
	Actor    sharedApplication.Actor
}

func (WithdrawSchemeCommand) CommandName() string { return "planning.withdraw_scheme" }

// WithdrawSchemeHandler handles the WithdrawSchemeCommand.
type WithdrawSchemeHandler struct {
	schemes   scheme.Repository
	committer *persistence.Committer
	uow       sharedApplication.UnitOfWork
}

// NewWithdrawSchemeHandler creates a new WithdrawSchemeHandler.
func NewWithdrawSchemeHandler(schemes scheme.Repository, committer *persistence.Committer, uow sharedApplication.UnitOfWork) *WithdrawSchemeHandler {
	return &WithdrawSchemeHandler{schemes: schemes, committer: committer, uow: uow}
}

// Handle executes the WithdrawSchemeCommand.
func (h *WithdrawSchemeHandler) Handle(ctx context.Context, cmd WithdrawSchemeCommand) error {
	return sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		s, err := h.schemes.FindByID(txCtx, cmd.SchemeID)
		if err != nil {
			return err
		}
		if err := s.Withdraw(cmd.Actor.ID, cmd.Reason); err != nil {
			return err
		}
		if err := h.schemes.Save(txCtx, s); err != nil {
			return err
		}
		return h.committer.Flush(txCtx, s, sharedApplication.NewEventMetadata(cmd.Actor))
	})
}
