// Package workflow defines the typed lifecycle states and static transition
// tables that govern every land-administration record: planning schemes,
// survey plans, deed drafts, registered titles and the post-registration
// sub-workflows (amendments, transfers, disputes, objections).
//
// Tables are plain data. Legality of a move is a lookup, and the lookup is
// the single source of truth: no workflow mutation may change a state without
// asserting the move against its table first.
package workflow

// State labels a lifecycle state within one workflow domain. State values
// mirror the status enums stored in the database.
type State string

// Domain identifies which workflow a state belongs to.
type Domain string

const (
	DomainPlanning  Domain = "planning"
	DomainSurvey    Domain = "survey"
	DomainDeed      Domain = "deed"
	DomainTitle     Domain = "title"
	DomainAmendment Domain = "amendment"
	DomainTransfer  Domain = "transfer"
	DomainDispute   Domain = "dispute"
	DomainObjection Domain = "objection"
)

// Planning scheme states.
const (
	PlanningDraft             State = "draft"
	PlanningSubmitted         State = "submitted"
	PlanningUnderReview       State = "under_review"
	PlanningRevisionRequested State = "revision_requested"
	PlanningApproved          State = "approved"
	PlanningRejected          State = "rejected"
	PlanningWithdrawn         State = "withdrawn"
)

// Survey plan states. A sealed plan is the Surveyor-General's authoritative
// record and never changes again.
const (
	SurveyDraft             State = "draft"
	SurveyComputed          State = "computed"
	SurveyUnderReview       State = "under_review"
	SurveyRevisionRequested State = "revision_requested"
	SurveySealed            State = "sealed"
	SurveyRejected          State = "rejected"
	SurveyWithdrawn         State = "withdrawn"
)

// Deed draft states.
const (
	DeedDraft             State = "draft"
	DeedSubmitted         State = "submitted"
	DeedUnderExamination  State = "under_examination"
	DeedRevisionRequested State = "revision_requested"
	DeedApproved          State = "approved"
	DeedRejected          State = "rejected"
	DeedRegistered        State = "registered"
	DeedWithdrawn         State = "withdrawn"
)

// Title states.
const (
	TitlePending     State = "pending"
	TitleUnderReview State = "under_review"
	TitleApproved    State = "approved"
	TitleRegistered  State = "registered"
	TitleRejected    State = "rejected"
	TitleCancelled   State = "cancelled"
)

// Amendment and transfer statuses share one shape: a submission is decided,
// and an approved record is processed exactly once.
const (
	SubWorkflowSubmitted State = "submitted"
	SubWorkflowApproved  State = "approved"
	SubWorkflowRejected  State = "rejected"
	SubWorkflowProcessed State = "processed"
)

// Dispute and objection statuses.
const (
	CasePending          State = "pending"
	CaseAssigned         State = "assigned"
	CaseHearingScheduled State = "hearing_scheduled"
	CaseResolved         State = "resolved"
)
