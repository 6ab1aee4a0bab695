package commands

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sbhunu/landadmin/internal/planning/domain/scheme"
	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/workflow"
)

func submittedScheme(id uuid.UUID) *scheme.Scheme {
	now := time.Now().UTC()
	return scheme.Rehydrate(id, 1, now.Add(-time.Hour), now,
		"SS-7/2026", "Greendale Court", "City of Harare", uuid.New(),
		workflow.PlanningSubmitted, nil, nil, nil, nil)
}

func TestStartReviewHandler_Handle(t *testing.T) {
	schemeID := uuid.New()
	actor := sharedApplication.Actor{ID: uuid.New(), Role: "reviewer"}

	t.Run("assigns the caller when no reviewer is given", func(t *testing.T) {
		repo, outboxRepo, appender, uow, committer := newHarness()
		handler := NewStartReviewHandler(repo, committer, uow)

		ctx := context.Background()
		txCtx := context.WithValue(ctx, ctxKey("tx"), "transaction")

		s := submittedScheme(schemeID)

		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Commit", txCtx).Return(nil)
		repo.On("FindByID", txCtx, schemeID).Return(s, nil)
		repo.On("Save", txCtx, s).Return(nil)
		outboxRepo.On("SaveBatch", txCtx, mock.AnythingOfType("[]*outbox.Message")).Return(nil)
		appender.On("AppendAll", txCtx, mock.AnythingOfType("[]workflow.Transition")).Return(nil)

		result, err := handler.Handle(ctx, StartReviewCommand{SchemeID: schemeID, Actor: actor})

		require.NoError(t, err)
		assert.False(t, result.AlreadyStarted)
		require.NotNil(t, s.ReviewerID())
		assert.Equal(t, actor.ID, *s.ReviewerID())
	})

	t.Run("reports an already running review without writing", func(t *testing.T) {
		repo, _, _, uow, committer := newHarness()
		handler := NewStartReviewHandler(repo, committer, uow)

		ctx := context.Background()
		txCtx := context.WithValue(ctx, ctxKey("tx"), "transaction")

		reviewer := uuid.New()
		now := time.Now().UTC()
		s := scheme.Rehydrate(schemeID, 2, now.Add(-time.Hour), now,
			"SS-7/2026", "Greendale Court", "City of Harare", uuid.New(),
			workflow.PlanningUnderReview, &reviewer, nil, nil, nil)

		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Commit", txCtx).Return(nil)
		repo.On("FindByID", txCtx, schemeID).Return(s, nil)

		result, err := handler.Handle(ctx, StartReviewCommand{SchemeID: schemeID, Actor: actor})

		require.NoError(t, err)
		assert.True(t, result.AlreadyStarted)
		assert.Equal(t, reviewer, *s.ReviewerID())
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("refuses to open a review on a draft", func(t *testing.T) {
		repo, _, _, uow, committer := newHarness()
		handler := NewStartReviewHandler(repo, committer, uow)

		ctx := context.Background()
		txCtx := context.WithValue(ctx, ctxKey("tx"), "transaction")

		now := time.Now().UTC()
		s := scheme.Rehydrate(schemeID, 1, now, now,
			"SS-7/2026", "Greendale Court", "City of Harare", uuid.New(),
			workflow.PlanningDraft, nil, nil, nil, nil)

		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Rollback", txCtx).Return(nil)
		repo.On("FindByID", txCtx, schemeID).Return(s, nil)

		_, err := handler.Handle(ctx, StartReviewCommand{SchemeID: schemeID, Actor: actor})

		assert.ErrorIs(t, err, workflow.ErrIllegalTransition)
		uow.AssertExpectations(t)
	})
}
