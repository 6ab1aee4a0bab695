package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/disputes/domain/dispute"
	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
)

// AssignDisputeCommand hands the dispute to a resolving officer.
type AssignDisputeCommand struct {
	DisputeID  uuid.UUID
	AssigneeID uuid.UUID
	Authority  string
	Actor      sharedApplication.Actor
}

func (AssignDisputeCommand) CommandName() string { return "disputes.assign_dispute" }

// ScheduleDisputeHearingCommand fixes a sitting. An empty OfficerID means
// the caller presides.
type ScheduleDisputeHearingCommand struct {
	DisputeID uuid.UUID
	Date      time.Time
	Location  string
	OfficerID uuid.UUID
	Actor     sharedApplication.Actor
}

func (ScheduleDisputeHearingCommand) CommandName() string { return "disputes.schedule_hearing" }

// ResolveDisputeCommand closes the dispute with a recorded outcome.
type ResolveDisputeCommand struct {
	DisputeID      uuid.UUID
	ResolutionType string
	ResolutionText string
	DocumentRef    string
	Actor          sharedApplication.Actor
}

func (ResolveDisputeCommand) CommandName() string { return "disputes.resolve_dispute" }

// ProgressDisputeHandler handles the three operations that move a lodged
// dispute toward resolution.
type ProgressDisputeHandler struct {
	disputes  dispute.Repository
	committer *persistence.Committer
	uow       sharedApplication.UnitOfWork
}

// NewProgressDisputeHandler creates a new ProgressDisputeHandler.
func NewProgressDisputeHandler(disputes dispute.Repository, committer *persistence.Committer, uow sharedApplication.UnitOfWork) *ProgressDisputeHandler {
	return &ProgressDisputeHandler{disputes: disputes, committer: committer, uow: uow}
}

// HandleAssign executes the AssignDisputeCommand.
func (h *ProgressDisputeHandler) HandleAssign(ctx context.Context, cmd AssignDisputeCommand) error {
	return h.progress(ctx, cmd.DisputeID, cmd.Actor, func(d *dispute.Dispute) error {
		return d.Assign(cmd.AssigneeID, cmd.Authority, cmd.Actor.ID)
	})
}

// HandleScheduleHearing executes the ScheduleDisputeHearingCommand.
func (h *ProgressDisputeHandler) HandleScheduleHearing(ctx context.Context, cmd ScheduleDisputeHearingCommand) error {
	return h.progress(ctx, cmd.DisputeID, cmd.Actor, func(d *dispute.Dispute) error {
		return d.ScheduleHearing(cmd.Date, cmd.Location, cmd.OfficerID, cmd.Actor.ID)
	})
}

// HandleResolve executes the ResolveDisputeCommand.
func (h *ProgressDisputeHandler) HandleResolve(ctx context.Context, cmd ResolveDisputeCommand) error {
	return h.progress(ctx, cmd.DisputeID, cmd.Actor, func(d *dispute.Dispute) error {
		return d.Resolve(dispute.Resolution{
			Type:        cmd.ResolutionType,
			Text:        cmd.ResolutionText,
			DocumentRef: cmd.DocumentRef,
		}, cmd.Actor.ID)
	})
}

func (h *ProgressDisputeHandler) progress(ctx context.Context, id uuid.UUID, actor sharedApplication.Actor, step func(*dispute.Dispute) error) error {
	return sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		d, err := h.disputes.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := step(d); err != nil {
			return err
		}
		if err := h.disputes.Save(txCtx, d); err != nil {
			return err
		}
		return h.committer.Flush(txCtx, d, sharedApplication.NewEventMetadata(actor))
	})
}
