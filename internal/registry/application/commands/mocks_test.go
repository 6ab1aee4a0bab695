package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/sbhunu/landadmin/internal/registry/domain/amendment"
	"github.com/sbhunu/landadmin/internal/registry/domain/transfer"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/outbox"
	"github.com/sbhunu/landadmin/internal/survey/domain/plan"
	"github.com/sbhunu/landadmin/internal/workflow"
)

type mockAmendmentRepo struct{ mock.Mock }

func (m *mockAmendmentRepo) Save(ctx context.Context, a *amendment.Amendment) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockAmendmentRepo) FindByID(ctx context.Context, id uuid.UUID) (*amendment.Amendment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*amendment.Amendment), args.Error(1)
}

func (m *mockAmendmentRepo) ListByScheme(ctx context.Context, schemeID uuid.UUID) ([]*amendment.Amendment, error) {
	args := m.Called(ctx, schemeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*amendment.Amendment), args.Error(1)
}

type mockTransferRepo struct{ mock.Mock }

func (m *mockTransferRepo) Save(ctx context.Context, t *transfer.Transfer) error {
	return m.Called(ctx, t).Error(0)
}

func (m *mockTransferRepo) FindByID(ctx context.Context, id uuid.UUID) (*transfer.Transfer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transfer.Transfer), args.Error(1)
}

func (m *mockTransferRepo) ListByTitle(ctx context.Context, titleID uuid.UUID) ([]*transfer.Transfer, error) {
	args := m.Called(ctx, titleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transfer.Transfer), args.Error(1)
}

type mockPlanRepo struct{ mock.Mock }

func (m *mockPlanRepo) Save(ctx context.Context, p *plan.SurveyPlan) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPlanRepo) FindByID(ctx context.Context, id uuid.UUID) (*plan.SurveyPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.SurveyPlan), args.Error(1)
}

func (m *mockPlanRepo) FindByPlanNumber(ctx context.Context, planNumber string) (*plan.SurveyPlan, error) {
	args := m.Called(ctx, planNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.SurveyPlan), args.Error(1)
}

func (m *mockPlanRepo) FindSealedByScheme(ctx context.Context, schemeID uuid.UUID) (*plan.SurveyPlan, error) {
	args := m.Called(ctx, schemeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.SurveyPlan), args.Error(1)
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
