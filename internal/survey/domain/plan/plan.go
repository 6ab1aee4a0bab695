// Package plan models a survey plan moving toward the Surveyor-General's
// seal: drafted with sectional boundaries, computed (quotas derived from
// floor areas), reviewed, and sealed. A sealed plan is the authoritative
// record of the scheme's geometry and never changes again.
package plan

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbhunu/landadmin/internal/review"
	"github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/domain"
	"github.com/sbhunu/landadmin/internal/survey/domain/geometry"
	"github.com/sbhunu/landadmin/internal/survey/domain/quota"
	"github.com/sbhunu/landadmin/internal/workflow"
)

var (
	ErrEmptyPlanNumber     = errors.New("plan number cannot be empty")
	ErrNoScheme            = errors.New("a survey plan must reference a scheme")
	ErrDuplicateSection    = fmt.Errorf("%w: duplicate section number", application.ErrValidation)
	ErrNotComputed         = fmt.Errorf("%w: quotas have not been computed", application.ErrValidation)
	ErrSealedPlanImmutable = errors.New("a sealed plan cannot be modified")
	ErrNotSealed           = errors.New("plan is not sealed")
)

// Section is one titled unit on the plan: its number, floor area, computed
// participation quota and boundary ring.
type Section struct {
	Number    int             `json:"number"`
	FloorArea decimal.Decimal `json:"floor_area"`
	Quota     decimal.Decimal `json:"quota"`
	Boundary  geometry.Ring   `json:"boundary,omitempty"`
}

// SurveyPlan is the survey aggregate.
type SurveyPlan struct {
	domain.BaseAggregateRoot
	workflow.Recorder

	planNumber string
	schemeID   uuid.UUID
	surveyorID uuid.UUID
	state      workflow.State
	reviewerID *uuid.UUID
	sections   []Section
}

// NewSurveyPlan drafts a plan against an approved scheme.
func NewSurveyPlan(planNumber string, schemeID, surveyorID uuid.UUID) (*SurveyPlan, error) {
	planNumber = strings.TrimSpace(planNumber)
	if planNumber == "" {
		return nil, ErrEmptyPlanNumber
	}
	if schemeID == uuid.Nil {
		return nil, ErrNoScheme
	}

	return &SurveyPlan{
		BaseAggregateRoot: domain.NewBaseAggregateRoot(),
		planNumber:        planNumber,
		schemeID:          schemeID,
		surveyorID:        surveyorID,
		state:             workflow.SurveyDraft,
	}, nil
}

// Rehydrate rebuilds a plan from storage.
func Rehydrate(
	id uuid.UUID,
	version int,
	createdAt, updatedAt time.Time,
	planNumber string,
	schemeID, surveyorID uuid.UUID,
	state workflow.State,
	reviewerID *uuid.UUID,
	sections []Section,
) *SurveyPlan {
	return &SurveyPlan{
		BaseAggregateRoot: domain.RehydrateBaseAggregateRoot(id, version, createdAt, updatedAt),
		planNumber:        planNumber,
		schemeID:          schemeID,
		surveyorID:        surveyorID,
		state:             state,
		reviewerID:        reviewerID,
		sections:          sections,
	}
}

func (p *SurveyPlan) PlanNumber() string     { return p.planNumber }
func (p *SurveyPlan) SchemeID() uuid.UUID    { return p.schemeID }
func (p *SurveyPlan) SurveyorID() uuid.UUID  { return p.surveyorID }
func (p *SurveyPlan) State() workflow.State  { return p.state }
func (p *SurveyPlan) ReviewerID() *uuid.UUID { return p.reviewerID }
func (p *SurveyPlan) Sections() []Section    { return append([]Section(nil), p.sections...) }

// IsSealed reports whether the plan carries the Surveyor-General's seal.
func (p *SurveyPlan) IsSealed() bool { return p.state == workflow.SurveySealed }

// Section returns one section by number.
func (p *SurveyPlan) Section(number int) (Section, bool) {
	for _, s := range p.sections {
		if s.Number == number {
			return s, true
		}
	}
	return Section{}, false
}

func (p *SurveyPlan) transition(to workflow.State, actorID uuid.UUID, reason string) error {
	if err := workflow.SurveyTable.Assert(p.state, to); err != nil {
		return err
	}
	p.Record(workflow.NewTransition(p.ID(), workflow.DomainSurvey, p.state, to, actorID, reason))
	p.state = to
	p.Touch()
	return nil
}

// SetSections replaces the sectional layout. Editing drops the plan back to
// draft when it was already computed: quotas derived from the old areas are
// stale the moment an area changes.
func (p *SurveyPlan) SetSections(sections []Section, actorID uuid.UUID) error {
	switch p.state {
	case workflow.SurveyDraft, workflow.SurveyRevisionRequested:
	case workflow.SurveyComputed:
		if err := p.transition(workflow.SurveyDraft, actorID, "sections amended"); err != nil {
			return err
		}
	default:
		if p.IsSealed() {
			return ErrSealedPlanImmutable
		}
		return &workflow.IllegalTransitionError{Domain: workflow.DomainSurvey, From: p.state, To: workflow.SurveyDraft}
	}

	seen := make(map[int]struct{}, len(sections))
	for _, s := range sections {
		if _, dup := seen[s.Number]; dup {
			return fmt.Errorf("%w %d", ErrDuplicateSection, s.Number)
		}
		seen[s.Number] = struct{}{}
	}

	p.sections = append([]Section(nil), sections...)
	p.Touch()
	return nil
}

// Compute derives participation quotas from the sectional floor areas and
// moves the plan to the computed state. Legal from draft and from
// revision_requested (recomputation after amendment).
func (p *SurveyPlan) Compute(actorID uuid.UUID) error {
	if err := workflow.SurveyTable.Assert(p.state, workflow.SurveyComputed); err != nil {
		return err
	}

	shares := make([]quota.Share, len(p.sections))
	for i, s := range p.sections {
		shares[i] = quota.Share{SectionNumber: s.Number, FloorArea: s.FloorArea}
	}
	computed, err := quota.Calculate(shares)
	if err != nil {
		return err
	}
	byNumber := make(map[int]decimal.Decimal, len(computed))
	for _, sh := range computed {
		byNumber[sh.SectionNumber] = sh.Quota
	}

	if err := p.transition(workflow.SurveyComputed, actorID, ""); err != nil {
		return err
	}
	for i := range p.sections {
		p.sections[i].Quota = byNumber[p.sections[i].Number]
	}
	p.AddDomainEvent(NewQuotasComputed(p.ID(), p.schemeID, len(p.sections)))
	return nil
}

// AdjustQuota overrides one section's quota and redistributes the remainder.
// Only legal while computed: once the plan is in front of the reviewer the
// figures must not move under them.
func (p *SurveyPlan) AdjustQuota(sectionNumber int, newQuota decimal.Decimal, actorID uuid.UUID) error {
	if p.IsSealed() {
		return ErrSealedPlanImmutable
	}
	if p.state != workflow.SurveyComputed {
		return ErrNotComputed
	}

	shares := make([]quota.Share, len(p.sections))
	for i, s := range p.sections {
		shares[i] = quota.Share{SectionNumber: s.Number, FloorArea: s.FloorArea, Quota: s.Quota}
	}
	adjusted, err := quota.Adjust(shares, sectionNumber, newQuota)
	if err != nil {
		return err
	}
	byNumber := make(map[int]decimal.Decimal, len(adjusted))
	for _, sh := range adjusted {
		byNumber[sh.SectionNumber] = sh.Quota
	}
	for i := range p.sections {
		p.sections[i].Quota = byNumber[p.sections[i].Number]
	}
	p.Touch()
	p.AddDomainEvent(NewQuotaAdjusted(p.ID(), sectionNumber, newQuota))
	return nil
}

// StartReview submits the computed plan for sealing review. Idempotent the
// same way planning review is.
func (p *SurveyPlan) StartReview(reviewerID, actorID uuid.UUID) (alreadyStarted bool, err error) {
	if p.state == workflow.SurveyUnderReview {
		return true, nil
	}
	if err := quotaInvariant(p.sections); err != nil {
		return false, err
	}
	if err := p.transition(workflow.SurveyUnderReview, actorID, ""); err != nil {
		return false, err
	}
	p.reviewerID = &reviewerID
	p.AddDomainEvent(NewPlanReviewStarted(p.ID(), reviewerID))
	return false, nil
}

// Decide applies the Surveyor-General's verdict: approval seals the plan.
func (p *SurveyPlan) Decide(decision review.Decision, notes string, actorID uuid.UUID) error {
	notes = strings.TrimSpace(notes)
	if decision.RequiresReason() && notes == "" {
		return &review.MissingReasonError{Decision: decision}
	}

	var target workflow.State
	switch decision {
	case review.DecisionApprove:
		if err := quotaInvariant(p.sections); err != nil {
			return err
		}
		target = workflow.SurveySealed
	case review.DecisionReject:
		target = workflow.SurveyRejected
	case review.DecisionRequestRevision:
		target = workflow.SurveyRevisionRequested
	default:
		return fmt.Errorf("%w: %q", review.ErrInvalidDecision, decision)
	}

	if err := p.transition(target, actorID, notes); err != nil {
		return err
	}
	if target == workflow.SurveySealed {
		p.AddDomainEvent(NewPlanSealed(p.ID(), p.schemeID, p.planNumber))
	} else {
		p.AddDomainEvent(NewPlanDecided(p.ID(), decision, notes))
	}
	return nil
}

// Withdraw takes the plan out of the process.
func (p *SurveyPlan) Withdraw(actorID uuid.UUID, reason string) error {
	if err := p.transition(workflow.SurveyWithdrawn, actorID, reason); err != nil {
		return err
	}
	p.AddDomainEvent(NewPlanWithdrawn(p.ID(), reason))
	return nil
}

// ApplyAmendment merges amended sections into a sealed plan and recomputes
// every participation quota. This is the single sanctioned write to a sealed
// plan, reachable only through a processed amendment: sections named in the
// change replace their counterparts, new numbers are appended, and the quota
// set is derived afresh so the 100 invariant holds across old and new.
func (p *SurveyPlan) ApplyAmendment(amended []Section, amendmentID uuid.UUID, actorID uuid.UUID) error {
	if !p.IsSealed() {
		return ErrNotSealed
	}
	if len(amended) == 0 {
		return quota.ErrNoSections
	}

	seen := make(map[int]struct{}, len(amended))
	for _, s := range amended {
		if _, dup := seen[s.Number]; dup {
			return fmt.Errorf("%w %d", ErrDuplicateSection, s.Number)
		}
		seen[s.Number] = struct{}{}
	}

	merged := append([]Section(nil), p.sections...)
	for _, change := range amended {
		replaced := false
		for i := range merged {
			if merged[i].Number == change.Number {
				merged[i] = change
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, change)
		}
	}

	shares := make([]quota.Share, len(merged))
	for i, s := range merged {
		shares[i] = quota.Share{SectionNumber: s.Number, FloorArea: s.FloorArea}
	}
	computed, err := quota.Calculate(shares)
	if err != nil {
		return err
	}
	byNumber := make(map[int]decimal.Decimal, len(computed))
	for _, sh := range computed {
		byNumber[sh.SectionNumber] = sh.Quota
	}
	for i := range merged {
		merged[i].Quota = byNumber[merged[i].Number]
	}

	// The amendment record is the audit trail; the seal state does not move.
	p.sections = merged
	p.Touch()
	p.AddDomainEvent(NewPlanAmended(p.ID(), amendmentID, len(amended)))
	return nil
}

// TopologyReport validates the sectional geometry. Advisory: the report
// informs the reviewer but never gates a transition.
func (p *SurveyPlan) TopologyReport() geometry.Report {
	boundaries := make([]geometry.Boundary, len(p.sections))
	for i, s := range p.sections {
		boundaries[i] = geometry.Boundary{SectionNumber: s.Number, Ring: s.Boundary}
	}
	return geometry.ValidateTopology(boundaries)
}

func quotaInvariant(sections []Section) error {
	shares := make([]quota.Share, len(sections))
	for i, s := range sections {
		shares[i] = quota.Share{SectionNumber: s.Number, FloorArea: s.FloorArea, Quota: s.Quota}
	}
	return quota.Validate(shares)
}
