package amendment

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbhunu/landadmin/internal/workflow"
)

func lodgedAmendment(t *testing.T) *Amendment {
	t.Helper()
	a, err := NewAmendment(uuid.New(), KindSectionSplit, "split section 4", []Section{
		{Number: 4, FloorArea: decimal.NewFromInt(60)},
		{Number: 9, FloorArea: decimal.NewFromInt(40)},
	}, uuid.New())
	require.NoError(t, err)
	return a
}

func TestNewAmendmentValidation(t *testing.T) {
	_, err := NewAmendment(uuid.Nil, KindSectionSplit, "", []Section{{Number: 1}}, uuid.New())
	assert.ErrorIs(t, err, ErrNoScheme)

	_, err = NewAmendment(uuid.New(), Kind("demolition"), "", []Section{{Number: 1}}, uuid.New())
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = NewAmendment(uuid.New(), KindSectionSplit, "", nil, uuid.New())
	assert.ErrorIs(t, err, ErrNoSections)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Section_Split ")
	require.NoError(t, err)
	assert.Equal(t, KindSectionSplit, k)

	_, err = ParseKind("repaint")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestAmendmentLifecycle(t *testing.T) {
	a := lodgedAmendment(t)
	assert.Equal(t, workflow.SubWorkflowSubmitted, a.Status())

	registrar := uuid.New()
	require.NoError(t, a.Approve(registrar))
	assert.Equal(t, workflow.SubWorkflowApproved, a.Status())
	assert.Equal(t, registrar, *a.DecidedBy())

	now := time.Now()
	already, err := a.Process(registrar, now)
	require.NoError(t, err)
	assert.False(t, already)
	assert.True(t, a.IsProcessed())
	assert.Equal(t, now, *a.ProcessedAt())
}

func TestProcessIsIdempotent(t *testing.T) {
	a := lodgedAmendment(t)
	require.NoError(t, a.Approve(uuid.New()))

	first := time.Now()
	_, err := a.Process(uuid.New(), first)
	require.NoError(t, err)
	eventsAfterFirst := len(a.DomainEvents())
	transitionsAfterFirst := len(a.Pending())

	already, err := a.Process(uuid.New(), first.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, already, "reprocessing reports success, not an error")
	assert.Equal(t, first, *a.ProcessedAt(), "processed timestamp does not move")
	assert.Len(t, a.DomainEvents(), eventsAfterFirst, "no duplicate event")
	assert.Len(t, a.Pending(), transitionsAfterFirst, "no duplicate transition")
}

func TestProcessRequiresApproval(t *testing.T) {
	a := lodgedAmendment(t)
	_, err := a.Process(uuid.New(), time.Now())

	var illegal *workflow.IllegalTransitionError
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, workflow.SubWorkflowSubmitted, illegal.From)
}

func TestRejectRequiresReason(t *testing.T) {
	a := lodgedAmendment(t)
	assert.ErrorIs(t, a.Reject("  ", uuid.New()), ErrMissingReason)

	require.NoError(t, a.Reject("overlaps the common property", uuid.New()))
	assert.Equal(t, workflow.SubWorkflowRejected, a.Status())
}

func TestRejectedAmendmentIsTerminal(t *testing.T) {
	a := lodgedAmendment(t)
	require.NoError(t, a.Reject("no survey backing", uuid.New()))

	var illegal *workflow.IllegalTransitionError
	assert.ErrorAs(t, a.Approve(uuid.New()), &illegal)
}
