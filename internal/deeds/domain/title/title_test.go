package title

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbhunu/landadmin/internal/workflow"
)

func pendingTitle(t *testing.T) *Title {
	t.Helper()
	ti, err := NewTitle("CT-881/2026", uuid.New(), uuid.New(), 3, uuid.New())
	require.NoError(t, err)
	return ti
}

func registeredTitle(t *testing.T) *Title {
	t.Helper()
	ti := pendingTitle(t)
	actor := uuid.New()
	require.NoError(t, ti.StartReview(actor))
	require.NoError(t, ti.Approve(actor))
	require.NoError(t, ti.Register("REG-2026-000123", actor))
	return ti
}

func TestTitleLifecycle(t *testing.T) {
	ti := registeredTitle(t)
	assert.Equal(t, workflow.TitleRegistered, ti.State())
	require.NotNil(t, ti.RegistrationNumber())
	assert.Equal(t, "REG-2026-000123", *ti.RegistrationNumber())
}

func TestRegisterRequiresApproval(t *testing.T) {
	ti := pendingTitle(t)
	assert.ErrorIs(t, ti.Register("REG-1", uuid.New()), workflow.ErrIllegalTransition)
}

func TestRegisterRequiresNumber(t *testing.T) {
	ti := pendingTitle(t)
	actor := uuid.New()
	require.NoError(t, ti.StartReview(actor))
	require.NoError(t, ti.Approve(actor))
	assert.ErrorIs(t, ti.Register("  ", actor), ErrEmptyRegistrationNumber)
}

func TestRejectRequiresReason(t *testing.T) {
	ti := pendingTitle(t)
	require.NoError(t, ti.StartReview(uuid.New()))
	assert.Error(t, ti.Reject("", uuid.New()))
	require.NoError(t, ti.Reject("conflicting holder claim", uuid.New()))
	assert.True(t, workflow.TitleTable.IsTerminal(ti.State()))
}

func TestCancelOnlyWhilePending(t *testing.T) {
	ti := pendingTitle(t)
	require.NoError(t, ti.StartReview(uuid.New()))
	assert.ErrorIs(t, ti.Cancel("withdrawn", uuid.New()), workflow.ErrIllegalTransition)
}

func TestTransferChangesHolderAndNumber(t *testing.T) {
	ti := registeredTitle(t)
	original := ti.HolderID()
	buyer := uuid.New()

	require.NoError(t, ti.TransferTo(buyer, "REG-2026-000987", uuid.New()))
	assert.Equal(t, buyer, ti.HolderID())
	assert.Equal(t, "REG-2026-000987", *ti.RegistrationNumber())
	assert.NotEqual(t, original, ti.HolderID())
	assert.Equal(t, workflow.TitleRegistered, ti.State(), "transfer does not move the state")

	var transferred *TitleTransferred
	for _, ev := range ti.DomainEvents() {
		if e, ok := ev.(*TitleTransferred); ok {
			transferred = e
		}
	}
	require.NotNil(t, transferred)
	assert.Equal(t, original, transferred.FromHolderID)
	assert.Equal(t, buyer, transferred.ToHolderID)
}

func TestTransferRequiresRegisteredTitle(t *testing.T) {
	ti := pendingTitle(t)
	assert.ErrorIs(t, ti.TransferTo(uuid.New(), "REG-1", uuid.New()), workflow.ErrIllegalTransition)
}
