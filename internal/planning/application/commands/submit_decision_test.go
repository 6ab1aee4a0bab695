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
	"github.com/sbhunu/landadmin/internal/review"
	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/domain"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
	"github.com/sbhunu/landadmin/internal/workflow"
)

type ctxKey string

func schemeUnderReview(id uuid.UUID, checklist []review.ChecklistItem) *scheme.Scheme {
	now := time.Now().UTC()
	reviewer := uuid.New()
	return scheme.Rehydrate(id, 2, now.Add(-time.Hour), now,
		"SS-42/2026", "Avondale Heights", "City of Harare", uuid.New(),
		workflow.PlanningUnderReview, &reviewer, checklist, nil, nil)
}

func newHarness() (*mockSchemeRepo, *mockOutboxRepo, *mockTransitionAppender, *mockUnitOfWork, *persistence.Committer) {
	repo := new(mockSchemeRepo)
	outboxRepo := new(mockOutboxRepo)
	appender := new(mockTransitionAppender)
	uow := new(mockUnitOfWork)
	return repo, outboxRepo, appender, uow, persistence.NewCommitter(appender, outboxRepo)
}

func TestSubmitDecisionHandler_Handle(t *testing.T) {
	schemeID := uuid.New()
	actor := sharedApplication.Actor{ID: uuid.New(), Role: "reviewer"}

	t.Run("approves a scheme with a complete checklist", func(t *testing.T) {
		repo, outboxRepo, appender, uow, committer := newHarness()
		handler := NewSubmitDecisionHandler(repo, committer, uow)

		ctx := context.Background()
		txCtx := context.WithValue(ctx, ctxKey("tx"), "transaction")

		s := schemeUnderReview(schemeID, []review.ChecklistItem{
			{Code: "zoning", Required: true, Complete: true},
		})

		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Commit", txCtx).Return(nil)
		repo.On("FindByID", txCtx, schemeID).Return(s, nil)
		repo.On("Save", txCtx, s).Return(nil)
		outboxRepo.On("SaveBatch", txCtx, mock.AnythingOfType("[]*outbox.Message")).Return(nil)
		appender.On("AppendAll", txCtx, mock.AnythingOfType("[]workflow.Transition")).Return(nil)

		err := handler.Handle(ctx, SubmitDecisionCommand{
			SchemeID: schemeID,
			Decision: "approve",
			Actor:    actor,
		})

		require.NoError(t, err)
		assert.Equal(t, workflow.PlanningApproved, s.State())
		assert.Empty(t, s.DomainEvents(), "events must be cleared after flush")
		assert.Empty(t, s.Pending(), "transitions must be cleared after flush")

		repo.AssertExpectations(t)
		outboxRepo.AssertExpectations(t)
		appender.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("rejects an unknown decision before touching storage", func(t *testing.T) {
		repo, _, _, uow, committer := newHarness()
		handler := NewSubmitDecisionHandler(repo, committer, uow)

		err := handler.Handle(context.Background(), SubmitDecisionCommand{
			SchemeID: schemeID,
			Decision: "maybe",
			Actor:    actor,
		})

		assert.ErrorIs(t, err, review.ErrInvalidDecision)
		repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("rolls back when the checklist blocks approval", func(t *testing.T) {
		repo, _, _, uow, committer := newHarness()
		handler := NewSubmitDecisionHandler(repo, committer, uow)

		ctx := context.Background()
		txCtx := context.WithValue(ctx, ctxKey("tx"), "transaction")

		s := schemeUnderReview(schemeID, []review.ChecklistItem{
			{Code: "zoning", Required: true, Complete: false},
		})

		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Rollback", txCtx).Return(nil)
		repo.On("FindByID", txCtx, schemeID).Return(s, nil)

		err := handler.Handle(ctx, SubmitDecisionCommand{
			SchemeID: schemeID,
			Decision: "approve",
			Actor:    actor,
		})

		var incomplete *review.ChecklistIncompleteError
		require.ErrorAs(t, err, &incomplete)
		assert.True(t, sharedApplication.IsBusinessError(err))
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		uow.AssertExpectations(t)
	})

	t.Run("surfaces a write conflict from the conditional save", func(t *testing.T) {
		repo, _, _, uow, committer := newHarness()
		handler := NewSubmitDecisionHandler(repo, committer, uow)

		ctx := context.Background()
		txCtx := context.WithValue(ctx, ctxKey("tx"), "transaction")

		s := schemeUnderReview(schemeID, nil)

		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Rollback", txCtx).Return(nil)
		repo.On("FindByID", txCtx, schemeID).Return(s, nil)
		repo.On("Save", txCtx, s).Return(domain.ErrConcurrentModification)

		err := handler.Handle(ctx, SubmitDecisionCommand{
			SchemeID: schemeID,
			Decision: "reject",
			Notes:    "duplicate of SS-41",
			Actor:    actor,
		})

		assert.ErrorIs(t, err, domain.ErrConcurrentModification)
		assert.True(t, sharedApplication.IsBusinessError(err))
		uow.AssertExpectations(t)
	})
}
