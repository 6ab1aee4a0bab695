package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/planning/domain/scheme"
	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
)

// StartReviewCommand assigns a reviewer and opens the review. The reviewer
// defaults to the caller when not set.
type StartReviewCommand struct {
	SchemeID   uuid.UUID
	ReviewerID uuid.UUID
	Actor      sharedApplication.Actor
}

func (StartReviewCommand) CommandName() string { return "planning.start_review" }

// StartReviewResult reports whether the call actually opened the review or
// found it already running.
type StartReviewResult struct {
	AlreadyStarted bool
}

// StartReviewHandler handles the StartReviewCommand.
type StartReviewHandler struct {
	schemes   scheme.Repository
	committer *persistence.Committer
	uow       sharedApplication.UnitOfWork
}

// NewStartReviewHandler creates a new StartReviewHandler.
func NewStartReviewHandler(schemes scheme.Repository, committer *persistence.Committer, uow sharedApplication.UnitOfWork) *StartReviewHandler {
	return &StartReviewHandler{schemes: schemes, committer: committer, uow: uow}
}

// Handle executes the StartReviewCommand.
func (h *StartReviewHandler) Handle(ctx context.Context, cmd StartReviewCommand) (*StartReviewResult, error) {
	reviewerID := cmd.ReviewerID
	if reviewerID == uuid.Nil {
		reviewerID = cmd.Actor.ID
	}

	var result *StartReviewResult
	err := sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		s, err := h.schemes.FindByID(txCtx, cmd.SchemeID)
		if err != nil {
			return err
		}

		alreadyStarted, err := s.StartReview(reviewerID, cmd.Actor.ID)
		if err != nil {
			return err
		}
		result = &StartReviewResult{AlreadyStarted: alreadyStarted}
		if alreadyStarted {
			return nil
		}

		if err := h.schemes.Save(txCtx, s); err != nil {
			return err
		}
		return h.committer.Flush(txCtx, s, sharedApplication.NewEventMetadata(cmd.Actor))
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
