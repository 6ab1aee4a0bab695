package workflow

// Table is the static legal-move table for one workflow domain. Every state
// of the domain appears as a key; a terminal state maps to an empty successor
// list. Tables are built once at package init and never mutated, so reads are
// safe from any goroutine.
type Table struct {
	domain Domain
	edges  map[State][]State
}

// NewTable builds a transition table from an explicit edge map. Terminal
// states must still be present as keys with a nil or empty successor slice,
// otherwise membership checks would conflate "terminal" with "unknown".
func NewTable(domain Domain, edges map[State][]State) Table {
	copied := make(map[State][]State, len(edges))
	for from, tos := range edges {
		copied[from] = append([]State(nil), tos...)
	}
	return Table{domain: domain, edges: copied}
}

// Domain returns the workflow domain this table governs.
func (t Table) Domain() Domain { return t.domain }

// Contains reports whether s is a member of the domain's state set.
func (t Table) Contains(s State) bool {
	_, ok := t.edges[s]
	return ok
}

// IsValid reports whether moving from → to is a legal transition. Unknown
// states and self-transitions are illegal unless explicitly listed.
func (t Table) IsValid(from, to State) bool {
	successors, ok := t.edges[from]
	if !ok || !t.Contains(to) {
		return false
	}
	for _, s := range successors {
		if s == to {
			return true
		}
	}
	return false
}

// NextStates returns the legal successor set for a state. The result is a
// copy; terminal and unknown states yield an empty slice.
func (t Table) NextStates(from State) []State {
	return append([]State(nil), t.edges[from]...)
}

// IsTerminal reports whether the state has no outgoing edges.
func (t Table) IsTerminal(s State) bool {
	successors, ok := t.edges[s]
	return ok && len(successors) == 0
}

// Assert validates a proposed move and returns a typed error when it is not
// legal. All state mutations call this before touching persistence.
func (t Table) Assert(from, to State) error {
	if !t.Contains(from) {
		return &InvalidStateError{Domain: t.domain, State: from}
	}
	if !t.Contains(to) {
		return &InvalidStateError{Domain: t.domain, State: to}
	}
	if !t.IsValid(from, to) {
		return &IllegalTransitionError{Domain: t.domain, From: from, To: to}
	}
	return nil
}

// States returns every state in the domain, in unspecified order.
func (t Table) States() []State {
	out := make([]State, 0, len(t.edges))
	for s := range t.edges {
		out = append(out, s)
	}
	return out
}

// PlanningTable governs planning scheme review. Approval freezes the scheme:
// post-approval changes go through the amendment sub-workflow instead.
var PlanningTable = NewTable(DomainPlanning, map[State][]State{
	PlanningDraft:             {PlanningSubmitted, PlanningWithdrawn},
	PlanningSubmitted:         {PlanningUnderReview, PlanningWithdrawn},
	PlanningUnderReview:       {PlanningApproved, PlanningRejected, PlanningRevisionRequested},
	PlanningRevisionRequested: {PlanningSubmitted, PlanningWithdrawn},
	PlanningApproved:          {},
	PlanningRejected:          {},
	PlanningWithdrawn:         {},
})

// SurveyTable governs survey plan sealing. A draft must be computed (quotas
// derived from section areas) before it can go to review.
var SurveyTable = NewTable(DomainSurvey, map[State][]State{
	SurveyDraft:             {SurveyComputed, SurveyWithdrawn},
	SurveyComputed:          {SurveyUnderReview, SurveyDraft, SurveyWithdrawn},
	SurveyUnderReview:       {SurveySealed, SurveyRejected, SurveyRevisionRequested},
	SurveyRevisionRequested: {SurveyComputed, SurveyWithdrawn},
	SurveySealed:            {},
	SurveyRejected:          {},
	SurveyWithdrawn:         {},
})

// DeedTable governs deed draft examination. Unlike planning, approval is not
// terminal: an approved deed proceeds to registration.
var DeedTable = NewTable(DomainDeed, map[State][]State{
	DeedDraft:             {DeedSubmitted, DeedWithdrawn},
	DeedSubmitted:         {DeedUnderExamination, DeedWithdrawn},
	DeedUnderExamination:  {DeedApproved, DeedRejected, DeedRevisionRequested},
	DeedRevisionRequested: {DeedSubmitted, DeedWithdrawn},
	DeedApproved:          {DeedRegistered},
	DeedRegistered:        {},
	DeedRejected:          {},
	DeedWithdrawn:         {},
})

// TitleTable governs registered title review.
var TitleTable = NewTable(DomainTitle, map[State][]State{
	TitlePending:     {TitleUnderReview, TitleCancelled},
	TitleUnderReview: {TitleApproved, TitleRejected},
	TitleApproved:    {TitleRegistered},
	TitleRegistered:  {},
	TitleRejected:    {},
	TitleCancelled:   {},
})

// AmendmentTable and TransferTable share the submit/decide/process shape.
var (
	AmendmentTable = NewTable(DomainAmendment, subWorkflowEdges())
	TransferTable  = NewTable(DomainTransfer, subWorkflowEdges())
)

func subWorkflowEdges() map[State][]State {
	return map[State][]State{
		SubWorkflowSubmitted: {SubWorkflowApproved, SubWorkflowRejected},
		SubWorkflowApproved:  {SubWorkflowProcessed},
		SubWorkflowRejected:  {},
		SubWorkflowProcessed: {},
	}
}

// DisputeTable governs dispute resolution. A dispute may be resolved directly
// after assignment or after a hearing.
var DisputeTable = NewTable(DomainDispute, map[State][]State{
	CasePending:          {CaseAssigned},
	CaseAssigned:         {CaseHearingScheduled, CaseResolved},
	CaseHearingScheduled: {CaseResolved},
	CaseResolved:         {},
})

// ObjectionTable mirrors disputes without the assignment step.
var ObjectionTable = NewTable(DomainObjection, map[State][]State{
	CasePending:          {CaseHearingScheduled, CaseResolved},
	CaseHearingScheduled: {CaseResolved},
	CaseResolved:         {},
})
