package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/deeds/domain/deed"
	"github.com/sbhunu/landadmin/internal/review"
	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/notify"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
)

// SubmitDecisionCommand records the examiner's verdict on a deed draft.
type SubmitDecisionCommand struct {
	DeedID   uuid.UUID
	Decision string
	Notes    string
	Defects  []review.Defect
	Actor    sharedApplication.Actor
}

func (SubmitDecisionCommand) CommandName() string { return "deeds.submit_decision" }

// SubmitDecisionResult carries the delivery outcomes of any correction
// notices. The decision itself has already committed by the time notices go
// out; a failed notice shows up here, never as an operation failure.
type SubmitDecisionResult struct {
	Notifications []notify.Outcome
}

// NoticeDispatcher fans out best-effort notices after commit.
type NoticeDispatcher interface {
	DispatchAll(ctx context.Context, notices []notify.Notice) []notify.Outcome
}

// SubmitDecisionHandler handles the SubmitDecisionCommand.
type SubmitDecisionHandler struct {
	deeds      deed.Repository
	committer  *persistence.Committer
	uow        sharedApplication.UnitOfWork
	dispatcher NoticeDispatcher
}

// NewSubmitDecisionHandler creates a new SubmitDecisionHandler.
func NewSubmitDecisionHandler(deeds deed.Repository, committer *persistence.Committer, uow sharedApplication.UnitOfWork, dispatcher NoticeDispatcher) *SubmitDecisionHandler {
	return &SubmitDecisionHandler{deeds: deeds, committer: committer, uow: uow, dispatcher: dispatcher}
}

// Handle executes the SubmitDecisionCommand. The transition and audit
// append commit first; correction notices are dispatched afterwards.
func (h *SubmitDecisionHandler) Handle(ctx context.Context, cmd SubmitDecisionCommand) (*SubmitDecisionResult, error) {
	decision, err := review.ParseDecision(cmd.Decision)
	if err != nil {
		return nil, err
	}

	var d *deed.Deed
	err = sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		var err error
		d, err = h.deeds.FindByID(txCtx, cmd.DeedID)
		if err != nil {
			return err
		}
		if err := d.Decide(decision, cmd.Notes, cmd.Defects, cmd.Actor.ID); err != nil {
			return err
		}
		if err := h.deeds.Save(txCtx, d); err != nil {
			return err
		}
		return h.committer.Flush(txCtx, d, sharedApplication.NewEventMetadata(cmd.Actor))
	})
	if err != nil {
		return nil, err
	}

	result := &SubmitDecisionResult{}
	if h.dispatcher != nil {
		result.Notifications = h.dispatcher.DispatchAll(ctx, correctionNotices(d))
	}
	return result, nil
}

func correctionNotices(d *deed.Deed) []notify.Notice {
	domainNotices := d.CorrectionNotices()
	notices := make([]notify.Notice, 0, len(domainNotices))
	for _, n := range domainNotices {
		notices = append(notices, notify.Notice{
			Party:     review.Party(n.Party),
			EntityID:  n.DeedID,
			Subject:   fmt.Sprintf("Correction required on deed %s", n.DeedNumber),
			Body:      strings.Join(n.Findings, "; "),
			Reference: n.DeedNumber,
		})
	}
	return notices
}
