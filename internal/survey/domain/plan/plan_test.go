package plan

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbhunu/landadmin/internal/review"
	"github.com/sbhunu/landadmin/internal/survey/domain/geometry"
	"github.com/sbhunu/landadmin/internal/workflow"
)

func draftPlan(t *testing.T) *SurveyPlan {
	t.Helper()
	p, err := NewSurveyPlan("SG-1042/2026", uuid.New(), uuid.New())
	require.NoError(t, err)
	require.NoError(t, p.SetSections([]Section{
		{Number: 1, FloorArea: decimal.NewFromInt(100)},
		{Number: 2, FloorArea: decimal.NewFromInt(100)},
		{Number: 3, FloorArea: decimal.NewFromInt(101)},
	}, uuid.New()))
	return p
}

func computedPlan(t *testing.T) *SurveyPlan {
	t.Helper()
	p := draftPlan(t)
	require.NoError(t, p.Compute(uuid.New()))
	return p
}

func TestNewSurveyPlan(t *testing.T) {
	_, err := NewSurveyPlan("", uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrEmptyPlanNumber)

	_, err = NewSurveyPlan("SG-1", uuid.Nil, uuid.New())
	assert.ErrorIs(t, err, ErrNoScheme)

	p := draftPlan(t)
	assert.Equal(t, workflow.SurveyDraft, p.State())
	assert.False(t, p.IsSealed())
}

func TestComputeDerivesQuotas(t *testing.T) {
	p := computedPlan(t)

	assert.Equal(t, workflow.SurveyComputed, p.State())
	s1, _ := p.Section(1)
	s3, _ := p.Section(3)
	assert.Equal(t, "33.2226", s1.Quota.StringFixed(4))
	assert.Equal(t, "33.5548", s3.Quota.StringFixed(4))

	require.Len(t, p.DomainEvents(), 1)
	_, ok := p.DomainEvents()[0].(*QuotasComputed)
	assert.True(t, ok)
}

func TestComputeWithoutSectionsFails(t *testing.T) {
	p, err := NewSurveyPlan("SG-2/2026", uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.Error(t, p.Compute(uuid.New()))
	assert.Equal(t, workflow.SurveyDraft, p.State(), "failed compute must not move the state")
}

func TestSetSectionsRejectsDuplicates(t *testing.T) {
	p, err := NewSurveyPlan("SG-3/2026", uuid.New(), uuid.New())
	require.NoError(t, err)
	err = p.SetSections([]Section{
		{Number: 1, FloorArea: decimal.NewFromInt(50)},
		{Number: 1, FloorArea: decimal.NewFromInt(60)},
	}, uuid.New())
	assert.ErrorIs(t, err, ErrDuplicateSection)
}

func TestSetSectionsOnComputedPlanDropsBackToDraft(t *testing.T) {
	p := computedPlan(t)
	require.NoError(t, p.SetSections([]Section{
		{Number: 1, FloorArea: decimal.NewFromInt(200)},
	}, uuid.New()))
	assert.Equal(t, workflow.SurveyDraft, p.State())
}

func TestAdjustQuota(t *testing.T) {
	p := computedPlan(t)
	require.NoError(t, p.AdjustQuota(3, decimal.NewFromInt(40), uuid.New()))

	s1, _ := p.Section(1)
	s3, _ := p.Section(3)
	assert.Equal(t, "30.0000", s1.Quota.StringFixed(4))
	assert.Equal(t, "40.0000", s3.Quota.StringFixed(4))
}

func TestAdjustQuotaOnlyWhileComputed(t *testing.T) {
	p := draftPlan(t)
	assert.ErrorIs(t, p.AdjustQuota(1, decimal.NewFromInt(50), uuid.New()), ErrNotComputed)
}

func TestSealRoundTrip(t *testing.T) {
	p := computedPlan(t)
	reviewer := uuid.New()

	already, err := p.StartReview(reviewer, reviewer)
	require.NoError(t, err)
	assert.False(t, already)

	already, err = p.StartReview(uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.True(t, already)

	require.NoError(t, p.Decide(review.DecisionApprove, "", reviewer))
	assert.True(t, p.IsSealed())
	assert.True(t, workflow.SurveyTable.IsTerminal(p.State()))

	var sealed bool
	for _, ev := range p.DomainEvents() {
		if _, ok := ev.(*PlanSealed); ok {
			sealed = true
		}
	}
	assert.True(t, sealed)
}

func TestSealedPlanIsImmutable(t *testing.T) {
	p := computedPlan(t)
	_, err := p.StartReview(uuid.New(), uuid.New())
	require.NoError(t, err)
	require.NoError(t, p.Decide(review.DecisionApprove, "", uuid.New()))

	assert.ErrorIs(t, p.SetSections(nil, uuid.New()), ErrSealedPlanImmutable)
	assert.ErrorIs(t, p.AdjustQuota(1, decimal.NewFromInt(10), uuid.New()), ErrSealedPlanImmutable)
	assert.ErrorIs(t, p.Withdraw(uuid.New(), "late"), workflow.ErrIllegalTransition)
}

func TestRevisionRecompute(t *testing.T) {
	p := computedPlan(t)
	_, err := p.StartReview(uuid.New(), uuid.New())
	require.NoError(t, err)
	require.NoError(t, p.Decide(review.DecisionRequestRevision, "beacon 3 disputed", uuid.New()))
	assert.Equal(t, workflow.SurveyRevisionRequested, p.State())

	// the surveyor recomputes after amending field data
	require.NoError(t, p.Compute(uuid.New()))
	assert.Equal(t, workflow.SurveyComputed, p.State())
}

func TestDecideRejectRequiresNotes(t *testing.T) {
	p := computedPlan(t)
	_, err := p.StartReview(uuid.New(), uuid.New())
	require.NoError(t, err)

	err = p.Decide(review.DecisionReject, "", uuid.New())
	var missing *review.MissingReasonError
	assert.ErrorAs(t, err, &missing)
}

func TestTopologyReport(t *testing.T) {
	p, err := NewSurveyPlan("SG-9/2026", uuid.New(), uuid.New())
	require.NoError(t, err)
	require.NoError(t, p.SetSections([]Section{
		{Number: 1, FloorArea: decimal.NewFromInt(100), Boundary: geometry.Ring{
			{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0},
		}},
		{Number: 2, FloorArea: decimal.NewFromInt(100), Boundary: geometry.Ring{
			{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: 15}, {X: 5, Y: 15}, {X: 5, Y: 5},
		}},
	}, uuid.New()))

	report := p.TopologyReport()
	assert.False(t, report.Valid)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, geometry.LocationPolygon, report.Errors[0].Type)
}
