package commands

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sbhunu/landadmin/internal/disputes/domain/objection"
	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/outbox"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
	"github.com/sbhunu/landadmin/internal/workflow"
)

type ctxKey string

type mockObjectionRepo struct{ mock.Mock }

func (m *mockObjectionRepo) Save(ctx context.Context, o *objection.Objection) error {
	return m.Called(ctx, o).Error(0)
}

func (m *mockObjectionRepo) FindByID(ctx context.Context, id uuid.UUID) (*objection.Objection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*objection.Objection), args.Error(1)
}

func (m *mockObjectionRepo) ListByScheme(ctx context.Context, schemeID uuid.UUID) ([]*objection.Objection, error) {
	args := m.Called(ctx, schemeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*objection.Objection), args.Error(1)
}

type mockWindowSource struct{ mock.Mock }

func (m *mockWindowSource) ObjectionWindow(ctx context.Context, schemeID uuid.UUID) (*time.Time, *time.Time, error) {
	args := m.Called(ctx, schemeID)
	var start, end *time.Time
	if args.Get(0) != nil {
		start = args.Get(0).(*time.Time)
	}
	if args.Get(1) != nil {
		end = args.Get(1).(*time.Time)
	}
	return start, end, args.Error(2)
}

type mockOutboxRepo struct{ mock.Mock }

func (m *mockOutboxRepo) SaveBatch(ctx context.Context, msgs []*outbox.Message) error {
	return m.Called(ctx, msgs).Error(0)
}

func (m *mockOutboxRepo) GetUnpublished(ctx context.Context, limit int) ([]*outbox.Message, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*outbox.Message), args.Error(1)
}

func (m *mockOutboxRepo) MarkPublished(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockOutboxRepo) MarkFailed(ctx context.Context, id int64, errMsg string, nextRetryAt time.Time) error {
	return m.Called(ctx, id, errMsg, nextRetryAt).Error(0)
}

func (m *mockOutboxRepo) MarkDead(ctx context.Context, id int64, reason string) error {
	return m.Called(ctx, id, reason).Error(0)
}

func (m *mockOutboxRepo) DeleteOld(ctx context.Context, olderThan time.Duration) (int64, error) {
	args := m.Called(ctx, olderThan)
	return args.Get(0).(int64), args.Error(1)
}

type mockTransitionAppender struct{ mock.Mock }

func (m *mockTransitionAppender) AppendAll(ctx context.Context, transitions []workflow.Transition) error {
	return m.Called(ctx, transitions).Error(0)
}

type mockUnitOfWork struct{ mock.Mock }

func (m *mockUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(context.Context), args.Error(1)
}

func (m *mockUnitOfWork) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockUnitOfWork) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestSubmitObjectionHandler_Handle(t *testing.T) {
	schemeID := uuid.New()
	actor := sharedApplication.Actor{ID: uuid.New(), Role: "objector"}
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

	newHandler := func(windows *mockWindowSource, repo *mockObjectionRepo, uow *mockUnitOfWork, outboxRepo *mockOutboxRepo, appender *mockTransitionAppender) *SubmitObjectionHandler {
		h := NewSubmitObjectionHandler(repo, windows, persistence.NewCommitter(appender, outboxRepo), uow)
		h.now = func() time.Time { return now }
		return h
	}

	t.Run("lodges inside the window and reports days remaining", func(t *testing.T) {
		repo := new(mockObjectionRepo)
		windows := new(mockWindowSource)
		outboxRepo := new(mockOutboxRepo)
		appender := new(mockTransitionAppender)
		uow := new(mockUnitOfWork)
		handler := newHandler(windows, repo, uow, outboxRepo, appender)

		ctx := context.Background()
		txCtx := context.WithValue(ctx, ctxKey("tx"), "transaction")

		start := now.AddDate(0, 0, -5)
		end := now.AddDate(0, 0, 16)
		windows.On("ObjectionWindow", ctx, schemeID).Return(&start, &end, nil)
		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Commit", txCtx).Return(nil)
		repo.On("Save", txCtx, mock.AnythingOfType("*objection.Objection")).Return(nil)
		outboxRepo.On("SaveBatch", txCtx, mock.AnythingOfType("[]*outbox.Message")).Return(nil)
		appender.On("AppendAll", txCtx, mock.AnythingOfType("[]workflow.Transition")).Return(nil)

		result, err := handler.Handle(ctx, SubmitObjectionCommand{
			SchemeID: schemeID,
			Grounds:  "shadowing of adjoining stand",
			Actor:    actor,
		})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, result.ObjectionID)
		assert.Equal(t, 16, result.DaysRemaining)
		repo.AssertExpectations(t)
	})

	t.Run("lodges at the window's exact end instant", func(t *testing.T) {
		repo := new(mockObjectionRepo)
		windows := new(mockWindowSource)
		outboxRepo := new(mockOutboxRepo)
		appender := new(mockTransitionAppender)
		uow := new(mockUnitOfWork)
		handler := newHandler(windows, repo, uow, outboxRepo, appender)

		ctx := context.Background()
		txCtx := context.WithValue(ctx, ctxKey("tx"), "transaction")

		start := now.AddDate(0, 0, -30)
		end := now
		windows.On("ObjectionWindow", ctx, schemeID).Return(&start, &end, nil)
		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Commit", txCtx).Return(nil)
		repo.On("Save", txCtx, mock.AnythingOfType("*objection.Objection")).Return(nil)
		outboxRepo.On("SaveBatch", txCtx, mock.AnythingOfType("[]*outbox.Message")).Return(nil)
		appender.On("AppendAll", txCtx, mock.AnythingOfType("[]workflow.Transition")).Return(nil)

		result, err := handler.Handle(ctx, SubmitObjectionCommand{
			SchemeID: schemeID,
			Grounds:  "last-minute objection",
			Actor:    actor,
		})

		require.NoError(t, err, "the end bound is inclusive")
		assert.Equal(t, 0, result.DaysRemaining)
	})

	t.Run("refuses a closed window with negative days remaining", func(t *testing.T) {
		repo := new(mockObjectionRepo)
		windows := new(mockWindowSource)
		uow := new(mockUnitOfWork)
		handler := newHandler(windows, repo, uow, new(mockOutboxRepo), new(mockTransitionAppender))

		ctx := context.Background()
		txCtx := context.WithValue(ctx, ctxKey("tx"), "transaction")

		start := now.AddDate(0, 0, -60)
		end := now.AddDate(0, 0, -14)
		windows.On("ObjectionWindow", ctx, schemeID).Return(&start, &end, nil)
		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Rollback", txCtx).Return(nil)

		_, err := handler.Handle(ctx, SubmitObjectionCommand{
			SchemeID: schemeID,
			Grounds:  "late objection",
			Actor:    actor,
		})

		var closed *objection.WindowClosedError
		require.ErrorAs(t, err, &closed)
		assert.Equal(t, -14, closed.DaysRemaining)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
