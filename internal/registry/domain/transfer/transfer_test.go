package transfer

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbhunu/landadmin/internal/workflow"
)

func lodgedTransfer(t *testing.T) *Transfer {
	t.Helper()
	tr, err := NewTransfer(uuid.New(), uuid.New(), uuid.New(), uuid.New())
	require.NoError(t, err)
	return tr
}

func TestNewTransferValidation(t *testing.T) {
	_, err := NewTransfer(uuid.Nil, uuid.New(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrNoTitle)

	_, err = NewTransfer(uuid.New(), uuid.New(), uuid.Nil, uuid.New())
	assert.ErrorIs(t, err, ErrNoRecipient)

	holder := uuid.New()
	_, err = NewTransfer(uuid.New(), holder, holder, uuid.New())
	assert.ErrorIs(t, err, ErrSameHolder)
}

func TestTransferLifecycle(t *testing.T) {
	tr := lodgedTransfer(t)
	require.NoError(t, tr.Approve(uuid.New()))

	now := time.Now()
	already, err := tr.Process("REG-2026-00AB12CD", uuid.New(), now)
	require.NoError(t, err)
	assert.False(t, already)
	assert.True(t, tr.IsProcessed())
	assert.Equal(t, "REG-2026-00AB12CD", *tr.RegistrationNumber())
	assert.Equal(t, now, *tr.ProcessedAt())
}

func TestProcessIsIdempotent(t *testing.T) {
	tr := lodgedTransfer(t)
	require.NoError(t, tr.Approve(uuid.New()))
	_, err := tr.Process("REG-2026-00AB12CD", uuid.New(), time.Now())
	require.NoError(t, err)
	events := len(tr.DomainEvents())

	already, err := tr.Process("REG-2026-FFFFFFFF", uuid.New(), time.Now())
	require.NoError(t, err)
	assert.True(t, already)
	assert.Equal(t, "REG-2026-00AB12CD", *tr.RegistrationNumber(), "first registration number stands")
	assert.Len(t, tr.DomainEvents(), events, "no duplicate event")
}

func TestProcessRequiresApproval(t *testing.T) {
	tr := lodgedTransfer(t)
	_, err := tr.Process("REG-2026-00AB12CD", uuid.New(), time.Now())

	var illegal *workflow.IllegalTransitionError
	assert.ErrorAs(t, err, &illegal)
}

func TestRejectRequiresReason(t *testing.T) {
	tr := lodgedTransfer(t)
	assert.ErrorIs(t, tr.Reject("", uuid.New()), ErrMissingReason)

	require.NoError(t, tr.Reject("deceased estate not yet wound up", uuid.New()))
	assert.Equal(t, workflow.SubWorkflowRejected, tr.Status())
}
