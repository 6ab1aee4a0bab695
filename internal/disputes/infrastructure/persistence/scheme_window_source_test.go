package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbhunu/landadmin/internal/planning/domain/scheme"
	"github.com/sbhunu/landadmin/internal/workflow"
)

type stubSchemeRepo struct {
	scheme *scheme.Scheme
	err    error
}

func (r *stubSchemeRepo) Save(ctx context.Context, s *scheme.Scheme) error { return nil }

func (r *stubSchemeRepo) FindByID(ctx context.Context, id uuid.UUID) (*scheme.Scheme, error) {
	return r.scheme, r.err
}

func (r *stubSchemeRepo) FindBySchemeNumber(ctx context.Context, schemeNumber string) (*scheme.Scheme, error) {
	return r.scheme, r.err
}

func windowedScheme(t *testing.T, start, end *time.Time) *scheme.Scheme {
	t.Helper()
	now := time.Now().UTC()
	return scheme.Rehydrate(
		uuid.New(), 1, now, now,
		"SS-2026-0001", "Msasa Park", "City of Harare",
		uuid.New(), workflow.PlanningApproved, nil, nil,
		start, end,
	)
}

func TestSchemeWindowsReturnsBounds(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 30)
	repo := &stubSchemeRepo{scheme: windowedScheme(t, &start, &end)}

	gotStart, gotEnd, err := NewSchemeWindows(repo).ObjectionWindow(context.Background(), uuid.New())
	require.NoError(t, err)
	require.NotNil(t, gotStart)
	require.NotNil(t, gotEnd)
	assert.True(t, gotStart.Equal(start))
	assert.True(t, gotEnd.Equal(end))
}

func TestSchemeWindowsNilWhenNeverOpened(t *testing.T) {
	repo := &stubSchemeRepo{scheme: windowedScheme(t, nil, nil)}

	start, end, err := NewSchemeWindows(repo).ObjectionWindow(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, start)
	assert.Nil(t, end)
}

func TestSchemeWindowsPropagatesNotFound(t *testing.T) {
	repo := &stubSchemeRepo{err: scheme.ErrSchemeNotFound}

	_, _, err := NewSchemeWindows(repo).ObjectionWindow(context.Background(), uuid.New())
	assert.ErrorIs(t, err, scheme.ErrSchemeNotFound)
}
