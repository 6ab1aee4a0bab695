package app

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	planningCommands "github.com/sbhunu/landadmin/internal/planning/application/commands"
	planningQueries "github.com/sbhunu/landadmin/internal/planning/application/queries"
	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	sharedQueries "github.com/sbhunu/landadmin/internal/shared/application/queries"
	surveyCommands "github.com/sbhunu/landadmin/internal/survey/application/commands"
	surveyQueries "github.com/sbhunu/landadmin/internal/survey/application/queries"
	"github.com/sbhunu/landadmin/internal/survey/domain/geometry"
	"github.com/sbhunu/landadmin/internal/survey/domain/plan"
	"github.com/sbhunu/landadmin/internal/workflow"
	"github.com/sbhunu/landadmin/pkg/config"
)

// setupContainer builds a container on a throwaway SQLite database. No
// broker or cache is configured, so events are log-only and the
// sealed-plan cache is in-memory.
func setupContainer(t *testing.T) (*Container, context.Context) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "registry.db")

	cfg := &config.Config{
		AppEnv:     "test",
		SQLitePath: dbPath,
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	ctx := context.Background()
	container, err := NewContainer(ctx, cfg, logger)
	require.NoError(t, err)
	require.NotNil(t, container)
	t.Cleanup(container.Close)

	return container, ctx
}

func TestContainerSQLite(t *testing.T) {
	container, ctx := setupContainer(t)

	assert.Equal(t, "sqlite", container.Conn.Driver().String())

	assert.NotNil(t, container.SchemeRepo)
	assert.NotNil(t, container.PlanRepo)
	assert.NotNil(t, container.DeedRepo)
	assert.NotNil(t, container.TitleRepo)
	assert.NotNil(t, container.AmendmentRepo)
	assert.NotNil(t, container.TransferRepo)
	assert.NotNil(t, container.DisputeRepo)
	assert.NotNil(t, container.ObjectionRepo)
	assert.NotNil(t, container.OutboxRepo)

	assert.NotNil(t, container.DraftSchemeHandler)
	assert.NotNil(t, container.ProcessAmendmentHandler)
	assert.NotNil(t, container.SubmitObjectionHandler)
	assert.NotNil(t, container.CrossValidateHandler)
	assert.NotNil(t, container.OutboxProcessor)

	// Migrations ran: the outbox table exists and is empty.
	messages, err := container.OutboxRepo.GetUnpublished(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestSchemeLifecycleSQLite(t *testing.T) {
	container, ctx := setupContainer(t)

	planner := sharedApplication.Actor{ID: uuid.New(), Role: "planner"}
	reviewer := sharedApplication.Actor{ID: uuid.New(), Role: "reviewer"}

	draft, err := container.DraftSchemeHandler.Handle(ctx, planningCommands.DraftSchemeCommand{
		SchemeNumber:   "SS-2026-0001",
		Name:           "Kopje Heights Sectional Scheme",
		LocalAuthority: "City of Harare",
		Actor:          planner,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, draft.SchemeID)

	err = container.SubmitSchemeHandler.Handle(ctx, planningCommands.SubmitSchemeCommand{
		SchemeID: draft.SchemeID,
		Actor:    planner,
	})
	require.NoError(t, err)

	started, err := container.StartSchemeReviewHandler.Handle(ctx, planningCommands.StartReviewCommand{
		SchemeID:   draft.SchemeID,
		ReviewerID: reviewer.ID,
		Actor:      reviewer,
	})
	require.NoError(t, err)
	assert.False(t, started.AlreadyStarted)

	// Starting again is a no-op, not an error.
	again, err := container.StartSchemeReviewHandler.Handle(ctx, planningCommands.StartReviewCommand{
		SchemeID:   draft.SchemeID,
		ReviewerID: reviewer.ID,
		Actor:      reviewer,
	})
	require.NoError(t, err)
	assert.True(t, again.AlreadyStarted)

	view, err := container.GetSchemeHandler.Handle(ctx, planningQueries.GetSchemeQuery{SchemeID: draft.SchemeID})
	require.NoError(t, err)
	assert.Equal(t, workflow.PlanningUnderReview, view.State)
	require.NotNil(t, view.ReviewerID)
	assert.Equal(t, reviewer.ID, *view.ReviewerID)

	// The audit trail recorded every move.
	transitions, err := container.ListTransitionsHandler.Handle(ctx, sharedQueries.ListTransitionsQuery{
		EntityID: draft.SchemeID,
	})
	require.NoError(t, err)
	require.Len(t, transitions, 2)
	assert.Equal(t, workflow.PlanningSubmitted, transitions[0].To)
	assert.Equal(t, workflow.PlanningUnderReview, transitions[1].To)
}

func TestPlanQuotaWorkflowSQLite(t *testing.T) {
	container, ctx := setupContainer(t)

	surveyor := sharedApplication.Actor{ID: uuid.New(), Role: "surveyor"}
	schemeID := uuid.New()

	sections := []plan.Section{
		{Number: 1, FloorArea: decimal.NewFromInt(120), Boundary: unitSquare(0)},
		{Number: 2, FloorArea: decimal.NewFromInt(80), Boundary: unitSquare(2)},
	}

	draft, err := container.DraftPlanHandler.Handle(ctx, surveyCommands.DraftPlanCommand{
		PlanNumber: "SP-2026-0042",
		SchemeID:   schemeID,
		Sections:   sections,
		Actor:      surveyor,
	})
	require.NoError(t, err)

	err = container.ComputeQuotasHandler.Handle(ctx, surveyCommands.ComputeQuotasCommand{
		PlanID: draft.PlanID,
		Actor:  surveyor,
	})
	require.NoError(t, err)

	view, err := container.GetPlanHandler.Handle(ctx, surveyQueries.GetPlanQuery{PlanID: draft.PlanID})
	require.NoError(t, err)
	assert.Equal(t, workflow.SurveyComputed, view.State)
	require.Len(t, view.Sections, 2)
	assert.Equal(t, "60.0000", view.Sections[0].Quota.StringFixed(4))
	assert.Equal(t, "40.0000", view.Sections[1].Quota.StringFixed(4))
}

func TestContainerProductionRequiresReachableRedis(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	cfg := &config.Config{
		AppEnv:     "production",
		SQLitePath: filepath.Join(t.TempDir(), "registry.db"),
		RedisURL:   "redis://127.0.0.1:1",
	}

	container, err := NewContainer(context.Background(), cfg, logger)
	require.Error(t, err)
	assert.Nil(t, container)
	assert.Contains(t, err.Error(), "Redis")

	cfg.RedisURL = "not-a-url"
	container, err = NewContainer(context.Background(), cfg, logger)
	require.Error(t, err)
	assert.Nil(t, container)
	assert.Contains(t, err.Error(), "Redis")
}

// unitSquare builds a closed 1x1 ring offset along the x axis.
func unitSquare(offset float64) geometry.Ring {
	return geometry.Ring{
		{X: offset, Y: 0},
		{X: offset + 1, Y: 0},
		{X: offset + 1, Y: 1},
		{X: offset, Y: 1},
		{X: offset, Y: 0},
	}
}
