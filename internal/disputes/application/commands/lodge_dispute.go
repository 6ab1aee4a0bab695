// Package commands implements the disputes context's write side: dispute
// resolution and the window-gated statutory objection flow.
package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/disputes/domain/dispute"
	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
)

// LodgeDisputeCommand opens a dispute against a scheme, plan or title.
type LodgeDisputeCommand struct {
	SubjectType  string
	SubjectID    uuid.UUID
	RespondentID uuid.UUID
	Grounds      string
	Actor        sharedApplication.Actor
}

func (LodgeDisputeCommand) CommandName() string { return "disputes.lodge_dispute" }

// LodgeDisputeResult carries the new dispute's identifier.
type LodgeDisputeResult struct {
	DisputeID uuid.UUID
}

// LodgeDisputeHandler handles the LodgeDisputeCommand.
type LodgeDisputeHandler struct {
	disputes  dispute.Repository
	committer *persistence.Committer
	uow       sharedApplication.UnitOfWork
}

// NewLodgeDisputeHandler creates a new LodgeDisputeHandler.
func NewLodgeDisputeHandler(disputes dispute.Repository, committer *persistence.Committer, uow sharedApplication.UnitOfWork) *LodgeDisputeHandler {
	return &LodgeDisputeHandler{disputes: disputes, committer: committer, uow: uow}
}

// Handle executes the LodgeDisputeCommand. The complainant is the caller.
func (h *LodgeDisputeHandler) Handle(ctx context.Context, cmd LodgeDisputeCommand) (*LodgeDisputeResult, error) {
	subjectType, err := dispute.ParseSubjectType(cmd.SubjectType)
	if err != nil {
		return nil, err
	}
	var respondent *uuid.UUID
	if cmd.RespondentID != uuid.Nil {
		respondent = &cmd.RespondentID
	}

	var result *LodgeDisputeResult
	err = sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		d, err := dispute.NewDispute(subjectType, cmd.SubjectID, cmd.Actor.ID, respondent, cmd.Grounds)
		if err != nil {
			return err
		}
		if err := h.disputes.Save(txCtx, d); err != nil {
			return err
		}
		if err := h.committer.Flush(txCtx, d, sharedApplication.NewEventMetadata(cmd.Actor)); err != nil {
			return err
		}
		result = &LodgeDisputeResult{DisputeID: d.ID()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
