package review

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecision(t *testing.T) {
	for _, valid := range []string{"approve", "reject", "request_revision"} {
		d, err := ParseDecision(valid)
		require.NoError(t, err)
		assert.Equal(t, Decision(valid), d)
	}

	_, err := ParseDecision("defer")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDecision)
}

func TestRequiresReason(t *testing.T) {
	assert.False(t, DecisionApprove.RequiresReason())
	assert.True(t, DecisionReject.RequiresReason())
	assert.True(t, DecisionRequestRevision.RequiresReason())
}

func TestCheckApprovable(t *testing.T) {
	t.Run("incomplete required items block approval", func(t *testing.T) {
		items := []ChecklistItem{
			{Code: "CL-01", Required: true, Complete: true},
			{Code: "CL-02", Required: true, Complete: false},
			{Code: "CL-03", Required: false, Complete: false},
			{Code: "CL-04", Required: true, Complete: false},
		}

		err := CheckApprovable(items)
		require.Error(t, err)

		var incomplete *ChecklistIncompleteError
		require.True(t, errors.As(err, &incomplete))
		assert.Equal(t, []string{"CL-02", "CL-04"}, incomplete.Missing)
	})

	t.Run("optional items never block", func(t *testing.T) {
		items := []ChecklistItem{
			{Code: "CL-01", Required: true, Complete: true},
			{Code: "CL-02", Required: false, Complete: false},
		}
		assert.NoError(t, CheckApprovable(items))
	})

	t.Run("empty checklist approves", func(t *testing.T) {
		assert.NoError(t, CheckApprovable(nil))
	})
}

func TestMarkComplete(t *testing.T) {
	items := []ChecklistItem{{Code: "CL-01", Required: true}}
	assert.True(t, MarkComplete(items, "CL-01"))
	assert.True(t, items[0].Complete)
	assert.False(t, MarkComplete(items, "CL-99"))
}

func TestDefectResponsibleParty(t *testing.T) {
	assert.Equal(t, PartyPlanner, Defect{Category: DefectPlanning}.ResponsibleParty())
	assert.Equal(t, PartySurveyor, Defect{Category: DefectSurvey}.ResponsibleParty())
	assert.Equal(t, PartyConveyancer, Defect{Category: DefectConveyance}.ResponsibleParty())
	assert.Equal(t, PartyConveyancer, Defect{Category: DefectDescription}.ResponsibleParty())
}
