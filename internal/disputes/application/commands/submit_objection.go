package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/disputes/domain/objection"
	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
)

// SchemeWindowSource reads a scheme's statutory objection window from the
// planning context.
type SchemeWindowSource interface {
	ObjectionWindow(ctx context.Context, schemeID uuid.UUID) (start, end *time.Time, err error)
}

// SubmitObjectionCommand lodges an objection against a scheme. Time-gated:
// it fails with a WindowClosedError outside the scheme's window.
type SubmitObjectionCommand struct {
	SchemeID uuid.UUID
	Grounds  string
	Actor    sharedApplication.Actor
}

func (SubmitObjectionCommand) CommandName() string { return "disputes.submit_objection" }

// SubmitObjectionResult carries the new objection's identifier and how
// much of the window remains for further objectors.
type SubmitObjectionResult struct {
	ObjectionID   uuid.UUID
	DaysRemaining int
}

// SubmitObjectionHandler handles the SubmitObjectionCommand.
type SubmitObjectionHandler struct {
	objections objection.Repository
	windows    SchemeWindowSource
	committer  *persistence.Committer
	uow        sharedApplication.UnitOfWork
	now        func() time.Time
}

// NewSubmitObjectionHandler creates a new SubmitObjectionHandler.
func NewSubmitObjectionHandler(objections objection.Repository, windows SchemeWindowSource, committer *persistence.Committer, uow sharedApplication.UnitOfWork) *SubmitObjectionHandler {
	return &SubmitObjectionHandler{
		objections: objections,
		windows:    windows,
		committer:  committer,
		uow:        uow,
		now:        time.Now,
	}
}

// Handle executes the SubmitObjectionCommand.
func (h *SubmitObjectionHandler) Handle(ctx context.Context, cmd SubmitObjectionCommand) (*SubmitObjectionResult, error) {
	start, end, err := h.windows.ObjectionWindow(ctx, cmd.SchemeID)
	if err != nil {
		return nil, err
	}
	now := h.now()

	var result *SubmitObjectionResult
	err = sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		o, err := objection.NewObjection(cmd.SchemeID, cmd.Actor.ID, cmd.Grounds, start, end, now)
		if err != nil {
			return err
		}
		if err := h.objections.Save(txCtx, o); err != nil {
			return err
		}
		if err := h.committer.Flush(txCtx, o, sharedApplication.NewEventMetadata(cmd.Actor)); err != nil {
			return err
		}
		result = &SubmitObjectionResult{
			ObjectionID:   o.ID(),
			DaysRemaining: objection.DaysRemaining(end, now),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
