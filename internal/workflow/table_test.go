package workflow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allTables() map[string]Table {
	return map[string]Table{
		"planning":  PlanningTable,
		"survey":    SurveyTable,
		"deed":      DeedTable,
		"title":     TitleTable,
		"amendment": AmendmentTable,
		"transfer":  TransferTable,
		"dispute":   DisputeTable,
		"objection": ObjectionTable,
	}
}

func TestTableLegalityIsExactlyTheEdgeSet(t *testing.T) {
	for name, table := range allTables() {
		t.Run(name, func(t *testing.T) {
			states := table.States()
			for _, from := range states {
				legal := make(map[State]bool)
				for _, to := range table.NextStates(from) {
					legal[to] = true
				}
				for _, to := range states {
					assert.Equal(t, legal[to], table.IsValid(from, to),
						"IsValid(%s, %s) must match the static table", from, to)
				}
			}
		})
	}
}

func TestTerminalStatesHaveNoSuccessors(t *testing.T) {
	cases := []struct {
		table    Table
		terminal []State
	}{
		{PlanningTable, []State{PlanningApproved, PlanningRejected, PlanningWithdrawn}},
		{SurveyTable, []State{SurveySealed, SurveyRejected, SurveyWithdrawn}},
		{DeedTable, []State{DeedRegistered, DeedRejected, DeedWithdrawn}},
		{TitleTable, []State{TitleRegistered, TitleRejected, TitleCancelled}},
		{AmendmentTable, []State{SubWorkflowRejected, SubWorkflowProcessed}},
		{TransferTable, []State{SubWorkflowRejected, SubWorkflowProcessed}},
		{DisputeTable, []State{CaseResolved}},
		{ObjectionTable, []State{CaseResolved}},
	}
	for _, tc := range cases {
		for _, s := range tc.terminal {
			assert.True(t, tc.table.IsTerminal(s), "%s/%s should be terminal", tc.table.Domain(), s)
			assert.Empty(t, tc.table.NextStates(s))
		}
	}
}

func TestApprovedDeedMayStillRegister(t *testing.T) {
	assert.True(t, DeedTable.IsValid(DeedApproved, DeedRegistered))
	assert.True(t, TitleTable.IsValid(TitleApproved, TitleRegistered))

	// Planning approval is frozen.
	assert.False(t, PlanningTable.IsValid(PlanningApproved, PlanningUnderReview))
	assert.True(t, PlanningTable.IsTerminal(PlanningApproved))
}

func TestSelfTransitionsAreIllegal(t *testing.T) {
	for name, table := range allTables() {
		for _, s := range table.States() {
			assert.False(t, table.IsValid(s, s), "%s: self-transition %s must be illegal", name, s)
		}
	}
}

func TestAssertReturnsTypedErrors(t *testing.T) {
	t.Run("unknown from state", func(t *testing.T) {
		err := PlanningTable.Assert("sealed", PlanningApproved)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidState)

		var ise *InvalidStateError
		require.True(t, errors.As(err, &ise))
		assert.Equal(t, DomainPlanning, ise.Domain)
		assert.Equal(t, State("sealed"), ise.State)
	})

	t.Run("unknown to state", func(t *testing.T) {
		err := TitleTable.Assert(TitlePending, "computed")
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("edge not in table", func(t *testing.T) {
		err := DeedTable.Assert(DeedDraft, DeedApproved)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrIllegalTransition)

		var ite *IllegalTransitionError
		require.True(t, errors.As(err, &ite))
		assert.Equal(t, DeedDraft, ite.From)
		assert.Equal(t, DeedApproved, ite.To)
	})

	t.Run("legal edge passes", func(t *testing.T) {
		assert.NoError(t, SurveyTable.Assert(SurveyUnderReview, SurveySealed))
	})
}

func TestNextStatesReturnsACopy(t *testing.T) {
	next := PlanningTable.NextStates(PlanningDraft)
	require.NotEmpty(t, next)
	next[0] = "mutated"
	assert.NotContains(t, PlanningTable.NextStates(PlanningDraft), State("mutated"))
}
