package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/sbhunu/landadmin/internal/planning/domain/scheme"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/outbox"
	"github.com/sbhunu/landadmin/internal/workflow"
)

type mockSchemeRepo struct{ mock.Mock }

func (m *mockSchemeRepo) Save(ctx context.Context, s *scheme.Scheme) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockSchemeRepo) FindByID(ctx context.Context, id uuid.UUID) (*scheme.Scheme, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*scheme.Scheme), args.Error(1)
}

func (m *mockSchemeRepo) FindBySchemeNumber(ctx context.Context, schemeNumber string) (*scheme.Scheme, error) {
	args := m.Called(ctx, schemeNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*scheme.Scheme), args.Error(1)
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
