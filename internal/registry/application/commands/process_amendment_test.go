package commands

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sbhunu/landadmin/internal/registry/domain/amendment"
	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
	"github.com/sbhunu/landadmin/internal/survey/domain/plan"
	"github.com/sbhunu/landadmin/internal/workflow"
)

type ctxKey string

func approvedAmendment(id, schemeID uuid.UUID) *amendment.Amendment {
	now := time.Now().UTC()
	decider := uuid.New()
	return amendment.Rehydrate(id, 2, now.Add(-time.Hour), now,
		schemeID, amendment.KindSectionSplit, "split section 2",
		[]amendment.Section{
			{Number: 2, FloorArea: decimal.NewFromInt(60)},
			{Number: 3, FloorArea: decimal.NewFromInt(40)},
		},
		workflow.SubWorkflowApproved, uuid.New(), &decider, nil)
}

func sealedPlan(schemeID uuid.UUID) *plan.SurveyPlan {
	now := time.Now().UTC()
	reviewer := uuid.New()
	return plan.Rehydrate(uuid.New(), 5, now.Add(-24*time.Hour), now,
		"SG-1001/2026", schemeID, uuid.New(),
		workflow.SurveySealed, &reviewer,
		[]plan.Section{
			{Number: 1, FloorArea: decimal.NewFromInt(100), Quota: decimal.RequireFromString("50.0000")},
			{Number: 2, FloorArea: decimal.NewFromInt(100), Quota: decimal.RequireFromString("50.0000")},
		})
}

func newRegistryHarness() (*mockAmendmentRepo, *mockPlanRepo, *mockOutboxRepo, *mockTransitionAppender, *mockUnitOfWork, *persistence.Committer) {
	amendments := new(mockAmendmentRepo)
	plans := new(mockPlanRepo)
	outboxRepo := new(mockOutboxRepo)
	appender := new(mockTransitionAppender)
	uow := new(mockUnitOfWork)
	return amendments, plans, outboxRepo, appender, uow, persistence.NewCommitter(appender, outboxRepo)
}

func TestProcessAmendmentHandler_Handle(t *testing.T) {
	amendmentID := uuid.New()
	schemeID := uuid.New()
	actor := sharedApplication.Actor{ID: uuid.New(), Role: "registrar"}

	t.Run("rewrites the sealed plan and marks the amendment processed", func(t *testing.T) {
		amendments, plans, outboxRepo, appender, uow, committer := newRegistryHarness()
		handler := NewProcessAmendmentHandler(amendments, plans, committer, uow)

		ctx := context.Background()
		txCtx := context.WithValue(ctx, ctxKey("tx"), "transaction")

		a := approvedAmendment(amendmentID, schemeID)
		p := sealedPlan(schemeID)

		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Commit", txCtx).Return(nil)
		amendments.On("FindByID", txCtx, amendmentID).Return(a, nil)
		amendments.On("Save", txCtx, a).Return(nil)
		plans.On("FindSealedByScheme", txCtx, schemeID).Return(p, nil)
		plans.On("Save", txCtx, p).Return(nil)
		outboxRepo.On("SaveBatch", txCtx, mock.AnythingOfType("[]*outbox.Message")).Return(nil)
		appender.On("AppendAll", txCtx, mock.AnythingOfType("[]workflow.Transition")).Return(nil)

		result, err := handler.Handle(ctx, ProcessAmendmentCommand{AmendmentID: amendmentID, Actor: actor})

		require.NoError(t, err)
		assert.False(t, result.AlreadyProcessed)
		assert.True(t, a.IsProcessed())

		sections := p.Sections()
		require.Len(t, sections, 3, "section 2 split into 2 and 3")
		quotas := map[int]string{}
		for _, s := range sections {
			quotas[s.Number] = s.Quota.StringFixed(4)
		}
		assert.Equal(t, "50.0000", quotas[1])
		assert.Equal(t, "30.0000", quotas[2])
		assert.Equal(t, "20.0000", quotas[3])

		amendments.AssertExpectations(t)
		plans.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("reprocessing an already-processed amendment is a reported no-op", func(t *testing.T) {
		amendments, plans, _, _, uow, committer := newRegistryHarness()
		handler := NewProcessAmendmentHandler(amendments, plans, committer, uow)

		ctx := context.Background()
		txCtx := context.WithValue(ctx, ctxKey("tx"), "transaction")

		a := approvedAmendment(amendmentID, schemeID)
		_, err := a.Process(actor.ID, time.Now())
		require.NoError(t, err)
		a.ClearDomainEvents()
		a.ClearPending()

		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Commit", txCtx).Return(nil)
		amendments.On("FindByID", txCtx, amendmentID).Return(a, nil)

		result, err := handler.Handle(ctx, ProcessAmendmentCommand{AmendmentID: amendmentID, Actor: actor})

		require.NoError(t, err)
		assert.True(t, result.AlreadyProcessed)
		amendments.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		plans.AssertNotCalled(t, "FindSealedByScheme", mock.Anything, mock.Anything)
	})

	t.Run("refuses to process a submitted amendment", func(t *testing.T) {
		amendments, plans, _, _, uow, committer := newRegistryHarness()
		handler := NewProcessAmendmentHandler(amendments, plans, committer, uow)

		ctx := context.Background()
		txCtx := context.WithValue(ctx, ctxKey("tx"), "transaction")

		a, err := amendment.NewAmendment(schemeID, amendment.KindSectionSplit, "split",
			[]amendment.Section{{Number: 2, FloorArea: decimal.NewFromInt(60)}}, uuid.New())
		require.NoError(t, err)

		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Rollback", txCtx).Return(nil)
		amendments.On("FindByID", txCtx, amendmentID).Return(a, nil)

		_, err = handler.Handle(ctx, ProcessAmendmentCommand{AmendmentID: amendmentID, Actor: actor})

		var illegal *workflow.IllegalTransitionError
		require.ErrorAs(t, err, &illegal)
		amendments.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
