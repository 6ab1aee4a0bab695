// Package commands implements the registry context's write side: the
// amendment and transfer sub-workflows layered on top of the core records.
package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbhunu/landadmin/internal/registry/domain/amendment"
	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
	"github.com/sbhunu/landadmin/internal/survey/domain/geometry"
)

// SectionInput is the wire shape of one proposed section.
type SectionInput struct {
	Number    int
	FloorArea decimal.Decimal
	Boundary  geometry.Ring
}

func toAmendmentSections(inputs []SectionInput) []amendment.Section {
	out := make([]amendment.Section, len(inputs))
	for i, in := range inputs {
		out[i] = amendment.Section{Number: in.Number, FloorArea: in.FloorArea, Boundary: in.Boundary}
	}
	return out
}

// SubmitAmendmentCommand lodges an amendment against a scheme.
type SubmitAmendmentCommand struct {
	SchemeID    uuid.UUID
	Kind        string
	Reason      string
	NewSections []SectionInput
	Actor       sharedApplication.Actor
}

func (SubmitAmendmentCommand) CommandName() string { return "registry.submit_amendment" }

// SubmitAmendmentResult carries the new amendment's identifier.
type SubmitAmendmentResult struct {
	AmendmentID uuid.UUID
}

// SubmitAmendmentHandler handles the SubmitAmendmentCommand.
type SubmitAmendmentHandler struct {
	amendments amendment.Repository
	committer  *persistence.Committer
	uow        sharedApplication.UnitOfWork
}

// NewSubmitAmendmentHandler creates a new SubmitAmendmentHandler.
func NewSubmitAmendmentHandler(amendments amendment.Repository, committer *persistence.Committer, uow sharedApplication.UnitOfWork) *SubmitAmendmentHandler {
	return &SubmitAmendmentHandler{amendments: amendments, committer: committer, uow: uow}
}

// Handle executes the SubmitAmendmentCommand.
func (h *SubmitAmendmentHandler) Handle(ctx context.Context, cmd SubmitAmendmentCommand) (*SubmitAmendmentResult, error) {
	kind, err := amendment.ParseKind(cmd.Kind)
	if err != nil {
		return nil, err
	}

	var result *SubmitAmendmentResult
	err = sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		a, err := amendment.NewAmendment(cmd.SchemeID, kind, cmd.Reason, toAmendmentSections(cmd.NewSections), cmd.Actor.ID)
		if err != nil {
			return err
		}
		if err := h.amendments.Save(txCtx, a); err != nil {
			return err
		}
		if err := h.committer.Flush(txCtx, a, sharedApplication.NewEventMetadata(cmd.Actor)); err != nil {
			return err
		}
		result = &SubmitAmendmentResult{AmendmentID: a.ID()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
