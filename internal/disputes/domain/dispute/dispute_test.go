package dispute

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbhunu/landadmin/internal/workflow"
)

func lodgedDispute(t *testing.T) *Dispute {
	t.Helper()
	d, err := NewDispute(SubjectTitle, uuid.New(), uuid.New(), nil, "boundary encroaches on section 3")
	require.NoError(t, err)
	return d
}

func TestNewDisputeValidation(t *testing.T) {
	_, err := NewDispute(SubjectType("garden"), uuid.New(), uuid.New(), nil, "grounds")
	assert.Error(t, err)

	_, err = NewDispute(SubjectPlan, uuid.Nil, uuid.New(), nil, "grounds")
	assert.ErrorIs(t, err, ErrNoSubject)

	_, err = NewDispute(SubjectPlan, uuid.New(), uuid.New(), nil, "   ")
	assert.ErrorIs(t, err, ErrEmptyGrounds)
}

func TestDisputeLifecycleWithHearing(t *testing.T) {
	d := lodgedDispute(t)
	assert.Equal(t, workflow.CasePending, d.Status())

	assignee := uuid.New()
	require.NoError(t, d.Assign(assignee, "Registrar of Deeds", uuid.New()))
	assert.Equal(t, workflow.CaseAssigned, d.Status())
	assert.Equal(t, assignee, *d.AssigneeID())
	assert.Equal(t, "Registrar of Deeds", d.Authority())

	actor := uuid.New()
	hearingDate := time.Now().AddDate(0, 0, 30)
	require.NoError(t, d.ScheduleHearing(hearingDate, "magistrates court", uuid.Nil, actor))
	assert.Equal(t, workflow.CaseHearingScheduled, d.Status())
	assert.Equal(t, actor, d.Hearing().OfficerID, "officer defaults to the scheduling actor")

	require.NoError(t, d.Resolve(Resolution{Type: "settled", Text: "parties agreed a new beacon", DocumentRef: "doc-771"}, actor))
	assert.Equal(t, workflow.CaseResolved, d.Status())
	assert.Equal(t, "doc-771", d.Resolution().DocumentRef)
}

func TestDisputeResolvedWithoutHearing(t *testing.T) {
	d := lodgedDispute(t)
	require.NoError(t, d.Assign(uuid.New(), "Surveyor-General", uuid.New()))
	require.NoError(t, d.Resolve(Resolution{Type: "dismissed", Text: "no merit"}, uuid.New()))
	assert.Equal(t, workflow.CaseResolved, d.Status())
}

func TestResolveRequiresAssignment(t *testing.T) {
	d := lodgedDispute(t)
	err := d.Resolve(Resolution{Type: "dismissed", Text: "no merit"}, uuid.New())

	var illegal *workflow.IllegalTransitionError
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, workflow.CasePending, illegal.From)
}

func TestAssignValidation(t *testing.T) {
	d := lodgedDispute(t)
	assert.ErrorIs(t, d.Assign(uuid.Nil, "Registrar of Deeds", uuid.New()), ErrNoAssignee)
	assert.ErrorIs(t, d.Assign(uuid.New(), " ", uuid.New()), ErrEmptyAuthority)
}

func TestResolveRequiresOutcome(t *testing.T) {
	d := lodgedDispute(t)
	require.NoError(t, d.Assign(uuid.New(), "Registrar of Deeds", uuid.New()))
	assert.ErrorIs(t, d.Resolve(Resolution{Type: "settled"}, uuid.New()), ErrIncompleteOutcome)
}
