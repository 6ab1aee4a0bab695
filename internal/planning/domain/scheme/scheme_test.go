package scheme

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbhunu/landadmin/internal/review"
	"github.com/sbhunu/landadmin/internal/workflow"
)

func draftScheme(t *testing.T) *Scheme {
	t.Helper()
	s, err := NewScheme("SS-123/2026", "Borrowdale Gardens", "City of Harare", uuid.New())
	require.NoError(t, err)
	return s
}

func TestNewScheme(t *testing.T) {
	s := draftScheme(t)
	assert.Equal(t, workflow.PlanningDraft, s.State())
	assert.Equal(t, 0, s.Version())
	assert.Empty(t, s.DomainEvents())

	_, err := NewScheme("  ", "name", "", uuid.New())
	assert.ErrorIs(t, err, ErrEmptySchemeNumber)

	_, err = NewScheme("SS-1", "", "", uuid.New())
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestSubmitRecordsTransitionAndEvent(t *testing.T) {
	s := draftScheme(t)
	actor := uuid.New()

	require.NoError(t, s.Submit(actor))

	assert.Equal(t, workflow.PlanningSubmitted, s.State())
	require.Len(t, s.Pending(), 1)
	tr := s.Pending()[0]
	assert.Equal(t, s.ID(), tr.EntityID)
	assert.Equal(t, workflow.DomainPlanning, tr.Domain)
	assert.Equal(t, workflow.PlanningDraft, tr.From)
	assert.Equal(t, workflow.PlanningSubmitted, tr.To)
	assert.Equal(t, actor, tr.ActorID)

	require.Len(t, s.DomainEvents(), 1)
	ev, ok := s.DomainEvents()[0].(*SchemeSubmitted)
	require.True(t, ok)
	assert.Equal(t, "SS-123/2026", ev.SchemeNumber)
}

func TestSubmitFromApprovedIsIllegal(t *testing.T) {
	s := draftScheme(t)
	require.NoError(t, s.Submit(uuid.New()))
	_, err := s.StartReview(uuid.New(), uuid.New())
	require.NoError(t, err)
	require.NoError(t, s.Decide(review.DecisionApprove, "", uuid.New()))

	err = s.Submit(uuid.New())
	assert.ErrorIs(t, err, workflow.ErrIllegalTransition)

	var illegal *workflow.IllegalTransitionError
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, workflow.PlanningApproved, illegal.From)
}

func TestStartReviewIsIdempotent(t *testing.T) {
	s := draftScheme(t)
	require.NoError(t, s.Submit(uuid.New()))

	reviewer := uuid.New()
	already, err := s.StartReview(reviewer, reviewer)
	require.NoError(t, err)
	assert.False(t, already)
	require.NotNil(t, s.ReviewerID())
	assert.Equal(t, reviewer, *s.ReviewerID())

	already, err = s.StartReview(uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.True(t, already)
	// the second call must not reassign or re-record
	assert.Equal(t, reviewer, *s.ReviewerID())
	assert.Len(t, s.Pending(), 2)
}

func TestStartReviewFromDraftIsIllegal(t *testing.T) {
	s := draftScheme(t)
	_, err := s.StartReview(uuid.New(), uuid.New())
	assert.ErrorIs(t, err, workflow.ErrIllegalTransition)
}

func TestDecideApproveBlockedByChecklist(t *testing.T) {
	s := draftScheme(t)
	require.NoError(t, s.SetChecklist([]review.ChecklistItem{
		{Code: "zoning", Description: "Zoning certificate", Required: true},
		{Code: "egress", Description: "Fire egress plan", Required: false},
	}))
	require.NoError(t, s.Submit(uuid.New()))
	_, err := s.StartReview(uuid.New(), uuid.New())
	require.NoError(t, err)

	err = s.Decide(review.DecisionApprove, "", uuid.New())
	var incomplete *review.ChecklistIncompleteError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, []string{"zoning"}, incomplete.Missing)
	assert.Equal(t, workflow.PlanningUnderReview, s.State())

	require.NoError(t, s.CompleteChecklistItem("zoning"))
	require.NoError(t, s.Decide(review.DecisionApprove, "", uuid.New()))
	assert.Equal(t, workflow.PlanningApproved, s.State())
}

func TestDecideRejectRequiresNotes(t *testing.T) {
	s := draftScheme(t)
	require.NoError(t, s.Submit(uuid.New()))
	_, err := s.StartReview(uuid.New(), uuid.New())
	require.NoError(t, err)

	err = s.Decide(review.DecisionReject, "   ", uuid.New())
	var missing *review.MissingReasonError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, review.DecisionReject, missing.Decision)

	require.NoError(t, s.Decide(review.DecisionReject, "conflicts with zoning", uuid.New()))
	assert.Equal(t, workflow.PlanningRejected, s.State())
	assert.True(t, workflow.PlanningTable.IsTerminal(s.State()))
}

func TestRevisionRoundTrip(t *testing.T) {
	s := draftScheme(t)
	require.NoError(t, s.Submit(uuid.New()))
	_, err := s.StartReview(uuid.New(), uuid.New())
	require.NoError(t, err)
	require.NoError(t, s.Decide(review.DecisionRequestRevision, "access road missing", uuid.New()))
	assert.Equal(t, workflow.PlanningRevisionRequested, s.State())

	// the planner may amend the checklist and resubmit
	require.NoError(t, s.SetChecklist([]review.ChecklistItem{{Code: "road", Required: true, Complete: true}}))
	require.NoError(t, s.Submit(uuid.New()))
	assert.Equal(t, workflow.PlanningSubmitted, s.State())
}

func TestWithdraw(t *testing.T) {
	s := draftScheme(t)
	require.NoError(t, s.Withdraw(uuid.New(), "project cancelled"))
	assert.Equal(t, workflow.PlanningWithdrawn, s.State())

	err := s.Withdraw(uuid.New(), "again")
	assert.ErrorIs(t, err, workflow.ErrIllegalTransition)
}

func TestSetChecklistOnlyBeforeSubmission(t *testing.T) {
	s := draftScheme(t)
	require.NoError(t, s.Submit(uuid.New()))
	err := s.SetChecklist([]review.ChecklistItem{{Code: "x"}})
	assert.ErrorIs(t, err, workflow.ErrIllegalTransition)
}

func TestOpenObjectionWindow(t *testing.T) {
	s := draftScheme(t)
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 30)

	err := s.OpenObjectionWindow(start, end)
	assert.ErrorIs(t, err, ErrWindowNotOpen)

	require.NoError(t, s.Submit(uuid.New()))
	assert.ErrorIs(t, s.OpenObjectionWindow(end, start), ErrWindowInverted)

	require.NoError(t, s.OpenObjectionWindow(start, end))
	gotStart, gotEnd := s.Window()
	require.NotNil(t, gotStart)
	require.NotNil(t, gotEnd)
	assert.True(t, gotStart.Equal(start))
	assert.True(t, gotEnd.Equal(end))

	var found bool
	for _, ev := range s.DomainEvents() {
		if _, ok := ev.(*ObjectionWindowOpened); ok {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCompleteChecklistItemUnknownCode(t *testing.T) {
	s := draftScheme(t)
	require.NoError(t, s.SetChecklist([]review.ChecklistItem{{Code: "zoning", Required: true}}))
	err := s.CompleteChecklistItem("nope")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, workflow.ErrIllegalTransition))
}

func TestRehydrateRestoresState(t *testing.T) {
	id := uuid.New()
	reviewer := uuid.New()
	now := time.Now().UTC()
	s := Rehydrate(id, 3, now, now, "SS-9", "Msasa Park", "Ruwa", uuid.New(),
		workflow.PlanningUnderReview, &reviewer, nil, nil, nil)

	assert.Equal(t, id, s.ID())
	assert.Equal(t, 3, s.Version())
	assert.Equal(t, workflow.PlanningUnderReview, s.State())
	assert.Empty(t, s.DomainEvents())
	assert.Empty(t, s.Pending())
}
