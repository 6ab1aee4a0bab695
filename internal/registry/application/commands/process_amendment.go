package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/registry/domain/amendment"
	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
	"github.com/sbhunu/landadmin/internal/survey/domain/plan"
)

// ProcessAmendmentCommand performs the actual registry mutation for an
// approved amendment: the sealed plan's sections are rewritten and quotas
// recomputed. This is the only path that writes to a sealed plan.
type ProcessAmendmentCommand struct {
	AmendmentID uuid.UUID
	Actor       sharedApplication.Actor
}

func (ProcessAmendmentCommand) CommandName() string { return "registry.process_amendment" }

// ProcessAmendmentResult reports whether this call did the mutation or
// found it already done.
type ProcessAmendmentResult struct {
	AlreadyProcessed bool
}

// ProcessAmendmentHandler handles the ProcessAmendmentCommand.
type ProcessAmendmentHandler struct {
	amendments amendment.Repository
	plans      plan.Repository
	committer  *persistence.Committer
	uow        sharedApplication.UnitOfWork
	now        func() time.Time
}

// NewProcessAmendmentHandler creates a new ProcessAmendmentHandler.
func NewProcessAmendmentHandler(amendments amendment.Repository, plans plan.Repository, committer *persistence.Committer, uow sharedApplication.UnitOfWork) *ProcessAmendmentHandler {
	return &ProcessAmendmentHandler{
		amendments: amendments,
		plans:      plans,
		committer:  committer,
		uow:        uow,
		now:        time.Now,
	}
}

// Handle executes the ProcessAmendmentCommand. Reprocessing an amendment
// that is already processed returns success without touching the plan: the
// mutation happens at most once even under caller retries.
func (h *ProcessAmendmentHandler) Handle(ctx context.Context, cmd ProcessAmendmentCommand) (*ProcessAmendmentResult, error) {
	var result *ProcessAmendmentResult

	err := sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		a, err := h.amendments.FindByID(txCtx, cmd.AmendmentID)
		if err != nil {
			return err
		}

		already, err := a.Process(cmd.Actor.ID, h.now())
		if err != nil {
			return err
		}
		if already {
			result = &ProcessAmendmentResult{AlreadyProcessed: true}
			return nil
		}

		p, err := h.plans.FindSealedByScheme(txCtx, a.SchemeID())
		if err != nil {
			return err
		}
		if err := p.ApplyAmendment(toPlanSections(a.NewSections()), a.ID(), cmd.Actor.ID); err != nil {
			return err
		}

		md := sharedApplication.NewEventMetadata(cmd.Actor)
		if err := h.plans.Save(txCtx, p); err != nil {
			return err
		}
		if err := h.committer.Flush(txCtx, p, md); err != nil {
			return err
		}
		if err := h.amendments.Save(txCtx, a); err != nil {
			return err
		}
		if err := h.committer.Flush(txCtx, a, md); err != nil {
			return err
		}

		result = &ProcessAmendmentResult{}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func toPlanSections(changes []amendment.Section) []plan.Section {
	out := make([]plan.Section, len(changes))
	for i, c := range changes {
		out[i] = plan.Section{Number: c.Number, FloorArea: c.FloorArea, Boundary: c.Boundary}
	}
	return out
}
