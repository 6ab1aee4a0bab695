package commands

import (
	"context"

	"github.com/google/uuid"

	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
	"github.com/sbhunu/landadmin/internal/survey/domain/plan"
)

// StartReviewCommand submits a computed plan for sealing review.
type StartReviewCommand struct {
	PlanID     uuid.UUID
	ReviewerID uuid.UUID
	Actor      sharedApplication.Actor
}

func (StartReviewCommand) CommandName() string { return "survey.start_review" }

// StartReviewResult reports whether the review was freshly opened.
type StartReviewResult struct {
	AlreadyStarted bool
}

// StartReviewHandler handles the StartReviewCommand.
type StartReviewHandler struct {
	plans     plan.Repository
	committer *persistence.Committer
	uow       sharedApplication.UnitOfWork
}

// NewStartReviewHandler creates a new StartReviewHandler.
func NewStartReviewHandler(plans plan.Repository, committer *persistence.Committer, uow sharedApplication.UnitOfWork) *StartReviewHandler {
	return &StartReviewHandler{plans: plans, committer: committer, uow: uow}
}

// Handle executes the StartReviewCommand.
func (h *StartReviewHandler) Handle(ctx context.Context, cmd StartReviewCommand) (*StartReviewResult, error) {
	reviewerID := cmd.ReviewerID
	if reviewerID == uuid.Nil {
		reviewerID = cmd.Actor.ID
	}

	var result *StartReviewResult
	err := sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		p, err := h.plans.FindByID(txCtx, cmd.PlanID)
		if err != nil {
			return err
		}

		alreadyStarted, err := p.StartReview(reviewerID, cmd.Actor.ID)
		if err != nil {
			return err
		}
		result = &StartReviewResult{AlreadyStarted: alreadyStarted}
		if alreadyStarted {
			return nil
		}

		if err := h.plans.Save(txCtx, p); err != nil {
			return err
		}
		return h.committer.Flush(txCtx, p, sharedApplication.NewEventMetadata(cmd.Actor))
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
