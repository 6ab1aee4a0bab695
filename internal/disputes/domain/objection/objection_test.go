package objection

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbhunu/landadmin/internal/workflow"
)

func openWindow(now time.Time) (start, end *time.Time) {
	s := now.AddDate(0, 0, -7)
	e := now.AddDate(0, 0, 21)
	return &s, &e
}

func lodgedObjection(t *testing.T) *Objection {
	t.Helper()
	now := time.Now()
	start, end := openWindow(now)
	o, err := NewObjection(uuid.New(), uuid.New(), "blocks access to the servitude", start, end, now)
	require.NoError(t, err)
	return o
}

func TestNewObjectionValidation(t *testing.T) {
	now := time.Now()
	start, end := openWindow(now)

	_, err := NewObjection(uuid.Nil, uuid.New(), "grounds", start, end, now)
	assert.ErrorIs(t, err, ErrNoScheme)

	_, err = NewObjection(uuid.New(), uuid.New(), "  ", start, end, now)
	assert.ErrorIs(t, err, ErrEmptyGrounds)
}

func TestNewObjectionOutsideWindow(t *testing.T) {
	now := time.Now()
	start := now.AddDate(0, 0, -60)
	end := now.AddDate(0, 0, -30)

	_, err := NewObjection(uuid.New(), uuid.New(), "too late", &start, &end, now)

	var closed *WindowClosedError
	require.ErrorAs(t, err, &closed)
	assert.Negative(t, closed.DaysRemaining)
}

func TestNewObjectionWithoutWindow(t *testing.T) {
	_, err := NewObjection(uuid.New(), uuid.New(), "no window ever opened", nil, nil, time.Now())

	var closed *WindowClosedError
	require.ErrorAs(t, err, &closed)
	assert.Equal(t, -1, closed.DaysRemaining)
}

func TestObjectionLifecycleWithHearing(t *testing.T) {
	o := lodgedObjection(t)
	assert.Equal(t, workflow.CasePending, o.Status())

	actor := uuid.New()
	hearingDate := time.Now().AddDate(0, 1, 0)
	require.NoError(t, o.ScheduleHearing(hearingDate, "council chambers", uuid.Nil, actor))
	assert.Equal(t, workflow.CaseHearingScheduled, o.Status())
	assert.Equal(t, actor, o.Hearing().OfficerID, "officer defaults to the scheduling actor")

	require.NoError(t, o.Resolve(Resolution{Type: "dismissed", Text: "no standing"}, actor))
	assert.Equal(t, workflow.CaseResolved, o.Status())
	assert.Equal(t, "dismissed", o.Resolution().Type)
}

func TestObjectionResolvedWithoutHearing(t *testing.T) {
	o := lodgedObjection(t)
	require.NoError(t, o.Resolve(Resolution{Type: "upheld", Text: "scheme amended in response"}, uuid.New()))
	assert.Equal(t, workflow.CaseResolved, o.Status())
}

func TestResolveRequiresOutcome(t *testing.T) {
	o := lodgedObjection(t)
	assert.ErrorIs(t, o.Resolve(Resolution{Type: "upheld"}, uuid.New()), ErrIncompleteOutcome)
	assert.ErrorIs(t, o.Resolve(Resolution{Text: "words only"}, uuid.New()), ErrIncompleteOutcome)
}

func TestResolvedObjectionIsTerminal(t *testing.T) {
	o := lodgedObjection(t)
	require.NoError(t, o.Resolve(Resolution{Type: "dismissed", Text: "out of scope"}, uuid.New()))

	var illegal *workflow.IllegalTransitionError
	assert.ErrorAs(t, o.ScheduleHearing(time.Now(), "", uuid.New(), uuid.New()), &illegal)
}
