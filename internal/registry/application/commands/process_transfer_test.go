package commands

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sbhunu/landadmin/internal/deeds/domain/title"
	"github.com/sbhunu/landadmin/internal/registry/domain/transfer"
	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
	"github.com/sbhunu/landadmin/internal/workflow"
)

type mockTitleRepo struct{ mock.Mock }

func (m *mockTitleRepo) Save(ctx context.Context, t *title.Title) error {
	return m.Called(ctx, t).Error(0)
}

func (m *mockTitleRepo) FindByID(ctx context.Context, id uuid.UUID) (*title.Title, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*title.Title), args.Error(1)
}

func (m *mockTitleRepo) FindByTitleNumber(ctx context.Context, titleNumber string) (*title.Title, error) {
	args := m.Called(ctx, titleNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*title.Title), args.Error(1)
}

func registeredTitle(id, holderID uuid.UUID) *title.Title {
	now := time.Now().UTC()
	reg := "REG-2025-0000BEEF"
	return title.Rehydrate(id, 4, now.Add(-48*time.Hour), now,
		"ST-17/2025", uuid.New(), uuid.New(), 7, holderID,
		workflow.TitleRegistered, &reg)
}

func approvedTransfer(id, titleID, fromHolder, toHolder uuid.UUID) *transfer.Transfer {
	now := time.Now().UTC()
	decider := uuid.New()
	return transfer.Rehydrate(id, 2, now.Add(-time.Hour), now,
		titleID, fromHolder, toHolder,
		workflow.SubWorkflowApproved, uuid.New(), &decider, nil, nil)
}

func TestProcessTransferHandler_Handle(t *testing.T) {
	transferID := uuid.New()
	titleID := uuid.New()
	fromHolder := uuid.New()
	toHolder := uuid.New()
	actor := sharedApplication.Actor{ID: uuid.New(), Role: "registrar"}

	t.Run("swaps the holder and issues a fresh registration number", func(t *testing.T) {
		transfers := new(mockTransferRepo)
		titles := new(mockTitleRepo)
		outboxRepo := new(mockOutboxRepo)
		appender := new(mockTransitionAppender)
		uow := new(mockUnitOfWork)
		handler := NewProcessTransferHandler(transfers, titles, persistence.NewCommitter(appender, outboxRepo), uow)

		ctx := context.Background()
		txCtx := context.WithValue(ctx, ctxKey("tx"), "transaction")

		tr := approvedTransfer(transferID, titleID, fromHolder, toHolder)
		ti := registeredTitle(titleID, fromHolder)

		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Commit", txCtx).Return(nil)
		transfers.On("FindByID", txCtx, transferID).Return(tr, nil)
		transfers.On("Save", txCtx, tr).Return(nil)
		titles.On("FindByID", txCtx, titleID).Return(ti, nil)
		titles.On("Save", txCtx, ti).Return(nil)
		outboxRepo.On("SaveBatch", txCtx, mock.AnythingOfType("[]*outbox.Message")).Return(nil)
		appender.On("AppendAll", txCtx, mock.AnythingOfType("[]workflow.Transition")).Return(nil)

		result, err := handler.Handle(ctx, ProcessTransferCommand{TransferID: transferID, Actor: actor})

		require.NoError(t, err)
		assert.False(t, result.AlreadyProcessed)
		assert.True(t, strings.HasPrefix(result.RegistrationNumber, "REG-"))
		assert.Equal(t, toHolder, ti.HolderID())
		assert.Equal(t, result.RegistrationNumber, *ti.RegistrationNumber())
		assert.True(t, tr.IsProcessed())

		transfers.AssertExpectations(t)
		titles.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("reprocessing returns the original number without touching the title", func(t *testing.T) {
		transfers := new(mockTransferRepo)
		titles := new(mockTitleRepo)
		uow := new(mockUnitOfWork)
		handler := NewProcessTransferHandler(transfers, titles, persistence.NewCommitter(new(mockTransitionAppender), new(mockOutboxRepo)), uow)

		ctx := context.Background()
		txCtx := context.WithValue(ctx, ctxKey("tx"), "transaction")

		tr := approvedTransfer(transferID, titleID, fromHolder, toHolder)
		_, err := tr.Process("REG-2026-00AB12CD", actor.ID, time.Now())
		require.NoError(t, err)
		tr.ClearDomainEvents()
		tr.ClearPending()

		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Commit", txCtx).Return(nil)
		transfers.On("FindByID", txCtx, transferID).Return(tr, nil)

		result, err := handler.Handle(ctx, ProcessTransferCommand{TransferID: transferID, Actor: actor})

		require.NoError(t, err)
		assert.True(t, result.AlreadyProcessed)
		assert.Equal(t, "REG-2026-00AB12CD", result.RegistrationNumber)
		titles.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		transfers.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
