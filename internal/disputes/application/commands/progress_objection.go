package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/disputes/domain/objection"
	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
)

// ScheduleObjectionHearingCommand fixes a sitting for an objection. An
// empty OfficerID means the caller presides.
type ScheduleObjectionHearingCommand struct {
	ObjectionID uuid.UUID
	Date        time.Time
	Location    string
	OfficerID   uuid.UUID
	Actor       sharedApplication.Actor
}

func (ScheduleObjectionHearingCommand) CommandName() string { return "disputes.schedule_objection_hearing" }

// ResolveObjectionCommand closes an objection with a recorded outcome.
type ResolveObjectionCommand struct {
	ObjectionID    uuid.UUID
	ResolutionType string
	ResolutionText string
	DocumentRef    string
	Actor          sharedApplication.Actor
}

func (ResolveObjectionCommand) CommandName() string { return "disputes.resolve_objection" }

// ProgressObjectionHandler handles the operations that move a lodged
// objection toward resolution.
type ProgressObjectionHandler struct {
	objections objection.Repository
	committer  *persistence.Committer
	uow        sharedApplication.UnitOfWork
}

// NewProgressObjectionHandler creates a new ProgressObjectionHandler.
func NewProgressObjectionHandler(objections objection.Repository, committer *persistence.Committer, uow sharedApplication.UnitOfWork) *ProgressObjectionHandler {
	return &ProgressObjectionHandler{objections: objections, committer: committer, uow: uow}
}

// HandleScheduleHearing executes the ScheduleObjectionHearingCommand.
func (h *ProgressObjectionHandler) HandleScheduleHearing(ctx context.Context, cmd ScheduleObjectionHearingCommand) error {
	return h.progress(ctx, cmd.ObjectionID, cmd.Actor, func(o *objection.Objection) error {
		return o.ScheduleHearing(cmd.Date, cmd.Location, cmd.OfficerID, cmd.Actor.ID)
	})
}

// HandleResolve executes the ResolveObjectionCommand.
func (h *ProgressObjectionHandler) HandleResolve(ctx context.Context, cmd ResolveObjectionCommand) error {
	return h.progress(ctx, cmd.ObjectionID, cmd.Actor, func(o *objection.Objection) error {
		return o.Resolve(objection.Resolution{
			Type:        cmd.ResolutionType,
			Text:        cmd.ResolutionText,
			DocumentRef: cmd.DocumentRef,
		}, cmd.Actor.ID)
	})
}

func (h *ProgressObjectionHandler) progress(ctx context.Context, id uuid.UUID, actor sharedApplication.Actor, step func(*objection.Objection) error) error {
	return sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		o, err := h.objections.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := step(o); err != nil {
			return err
		}
		if err := h.objections.Save(txCtx, o); err != nil {
			return err
		}
		return h.committer.Flush(txCtx, o, sharedApplication.NewEventMetadata(actor))
	})
}
