package deed

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbhunu/landadmin/internal/review"
	"github.com/sbhunu/landadmin/internal/workflow"
)

func lodgedDeed(t *testing.T) *Deed {
	t.Helper()
	d, err := NewDeed("T-5521/2026", uuid.New(), 3, uuid.New(), uuid.New(), decimal.NewFromInt(101))
	require.NoError(t, err)
	return d
}

func underExamination(t *testing.T) *Deed {
	t.Helper()
	d := lodgedDeed(t)
	require.NoError(t, d.Submit(uuid.New()))
	_, err := d.StartExamination(uuid.New(), uuid.New())
	require.NoError(t, err)
	return d
}

func TestNewDeedValidation(t *testing.T) {
	_, err := NewDeed("", uuid.New(), 1, uuid.New(), uuid.New(), decimal.Zero)
	assert.ErrorIs(t, err, ErrEmptyDeedNumber)

	_, err = NewDeed("T-1", uuid.Nil, 1, uuid.New(), uuid.New(), decimal.Zero)
	assert.ErrorIs(t, err, ErrNoScheme)

	_, err = NewDeed("T-1", uuid.New(), 0, uuid.New(), uuid.New(), decimal.Zero)
	assert.ErrorIs(t, err, ErrBadSection)
}

func TestExaminationLifecycle(t *testing.T) {
	d := lodgedDeed(t)
	require.NoError(t, d.Submit(uuid.New()))
	assert.Equal(t, workflow.DeedSubmitted, d.State())

	examiner := uuid.New()
	already, err := d.StartExamination(examiner, examiner)
	require.NoError(t, err)
	assert.False(t, already)

	already, err = d.StartExamination(uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.True(t, already, "second start is reported, not an error")
	assert.Equal(t, examiner, *d.ExaminerID())
}

func TestDecideApproveGatedByChecklist(t *testing.T) {
	d := lodgedDeed(t)
	require.NoError(t, d.SetChecklist([]review.ChecklistItem{
		{Code: "power_of_attorney", Required: true},
		{Code: "rates_clearance", Required: true, Complete: true},
	}))
	require.NoError(t, d.Submit(uuid.New()))
	_, err := d.StartExamination(uuid.New(), uuid.New())
	require.NoError(t, err)

	err = d.Decide(review.DecisionApprove, "", nil, uuid.New())
	var incomplete *review.ChecklistIncompleteError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, []string{"power_of_attorney"}, incomplete.Missing)

	require.NoError(t, d.CompleteChecklistItem("power_of_attorney"))
	require.NoError(t, d.Decide(review.DecisionApprove, "", nil, uuid.New()))
	assert.Equal(t, workflow.DeedApproved, d.State())
}

func TestDecideApproveRejectsDefects(t *testing.T) {
	d := underExamination(t)
	err := d.Decide(review.DecisionApprove, "", []review.Defect{
		{Category: review.DefectSurvey, Description: "area mismatch"},
	}, uuid.New())
	assert.ErrorIs(t, err, ErrDefectsOnApprove)
}

func TestDecideRevisionCarriesDefects(t *testing.T) {
	d := underExamination(t)
	defects := []review.Defect{
		{Category: review.DefectSurvey, Description: "section 3 area disagrees with sealed plan"},
		{Category: review.DefectConveyance, Description: "power of attorney not certified"},
		{Category: review.DefectSurvey, Description: "beacon coordinates stale"},
	}

	require.NoError(t, d.Decide(review.DecisionRequestRevision, "defects noted", defects, uuid.New()))
	assert.Equal(t, workflow.DeedRevisionRequested, d.State())
	assert.Len(t, d.Defects(), 3)

	notices := d.CorrectionNotices()
	require.Len(t, notices, 2, "one notice per responsible party")
	assert.Equal(t, "surveyor", notices[0].Party)
	assert.Len(t, notices[0].Findings, 2)
	assert.Equal(t, "conveyancer", notices[1].Party)
}

func TestApprovedDeedRegisters(t *testing.T) {
	d := underExamination(t)
	require.NoError(t, d.Decide(review.DecisionApprove, "", nil, uuid.New()))

	require.NoError(t, d.Register(uuid.New()))
	assert.Equal(t, workflow.DeedRegistered, d.State())
	assert.True(t, workflow.DeedTable.IsTerminal(d.State()))

	// double registration is an illegal transition, not a silent no-op
	assert.ErrorIs(t, d.Register(uuid.New()), workflow.ErrIllegalTransition)
}

func TestRegisterBeforeApprovalIsIllegal(t *testing.T) {
	d := underExamination(t)
	assert.ErrorIs(t, d.Register(uuid.New()), workflow.ErrIllegalTransition)
}

func TestWithdrawFromExaminationIsIllegal(t *testing.T) {
	d := underExamination(t)
	assert.ErrorIs(t, d.Withdraw(uuid.New(), "changed mind"), workflow.ErrIllegalTransition)
}
