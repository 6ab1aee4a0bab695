package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/planning/domain/scheme"
	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
)

// OpenObjectionWindowCommand sets the statutory objection period on a scheme.
// A zero WindowEnd defaults the window to DefaultDays after WindowStart.
type OpenObjectionWindowCommand struct {
	SchemeID    uuid.UUID
	WindowStart time.Time
	WindowEnd   time.Time
	DefaultDays int
	Actor       sharedApplication.Actor
}

func (OpenObjectionWindowCommand) CommandName() string { return "planning.open_objection_window" }

// OpenObjectionWindowHandler handles the OpenObjectionWindowCommand.
type OpenObjectionWindowHandler struct {
	schemes   scheme.Repository
	committer *persistence.Committer
	uow       sharedApplication.UnitOfWork
}

// NewOpenObjectionWindowHandler creates a new OpenObjectionWindowHandler.
func NewOpenObjectionWindowHandler(schemes scheme.Repository, committer *persistence.Committer, uow sharedApplication.UnitOfWork) *OpenObjectionWindowHandler {
	return &OpenObjectionWindowHandler{schemes: schemes, committer: committer, uow: uow}
}

// Handle executes the OpenObjectionWindowCommand.
func (h *OpenObjectionWindowHandler) Handle(ctx context.Context, cmd OpenObjectionWindowCommand) error {
	start := cmd.WindowStart
	if start.IsZero() {
		start = time.Now().UTC()
	}
	end := cmd.WindowEnd
	if end.IsZero() {
		end = start.AddDate(0, 0, cmd.DefaultDays)
	}

	return sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		s, err := h.schemes.FindByID(txCtx, cmd.SchemeID)
		if err != nil {
			return err
		}
		if err := s.OpenObjectionWindow(start, end); err != nil {
			return err
		}
		if err := h.schemes.Save(txCtx, s); err != nil {
			return err
		}
		return h.committer.Flush(txCtx, s, sharedApplication.NewEventMetadata(cmd.Actor))
	})
}
