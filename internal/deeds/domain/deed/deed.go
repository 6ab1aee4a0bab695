// Package deed models a sectional title deed draft moving through the deeds
// registry: lodged by a conveyancer, examined against a compliance checklist,
// approved or sent back with defects, and finally registered. Registration
// creates the title record in the register.
package deed

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
	"github.com/sbhunu/landadmin/internal/workflow"
)

var (
	ErrEmptyDeedNumber  = errors.New("deed number cannot be empty")
	ErrNoScheme         = errors.New("a deed must reference a scheme")
	ErrBadSection       = fmt.Errorf("%w: section number must be positive", application.ErrValidation)
	ErrDefectsOnApprove = fmt.Errorf("%w: defects cannot accompany an approval", application.ErrValidation)
)

// Deed is the deeds examination aggregate.
type Deed struct {
	domain.BaseAggregateRoot
	workflow.Recorder

	deedNumber    string
	schemeID      uuid.UUID
	sectionNumber int
	holderID      uuid.UUID
	conveyancerID uuid.UUID
	state         workflow.State
	examinerID    *uuid.UUID
	checklist     []review.ChecklistItem
	defects       []review.Defect
	area          decimal.Decimal
}

// NewDeed lodges a deed draft for a section.
func NewDeed(deedNumber string, schemeID uuid.UUID, sectionNumber int, holderID, conveyancerID uuid.UUID, area decimal.Decimal) (*Deed, error) {
	deedNumber = strings.TrimSpace(deedNumber)
	if deedNumber == "" {
		return nil, ErrEmptyDeedNumber
	}
	if schemeID == uuid.Nil {
		return nil, ErrNoScheme
	}
	if sectionNumber <= 0 {
		return nil, ErrBadSection
	}

	return &Deed{
		BaseAggregateRoot: domain.NewBaseAggregateRoot(),
		deedNumber:        deedNumber,
		schemeID:          schemeID,
		sectionNumber:     sectionNumber,
		holderID:          holderID,
		conveyancerID:     conveyancerID,
		state:             workflow.DeedDraft,
		area:              area,
	}, nil
}

// Rehydrate rebuilds a deed from storage.
func Rehydrate(
	id uuid.UUID,
	version int,
	createdAt, updatedAt time.Time,
	deedNumber string,
	schemeID uuid.UUID,
	sectionNumber int,
	holderID, conveyancerID uuid.UUID,
	state workflow.State,
	examinerID *uuid.UUID,
	checklist []review.ChecklistItem,
	defects []review.Defect,
	area decimal.Decimal,
) *Deed {
	return &Deed{
		BaseAggregateRoot: domain.RehydrateBaseAggregateRoot(id, version, createdAt, updatedAt),
		deedNumber:        deedNumber,
		schemeID:          schemeID,
		sectionNumber:     sectionNumber,
		holderID:          holderID,
		conveyancerID:     conveyancerID,
		state:             state,
		examinerID:        examinerID,
		checklist:         checklist,
		defects:           defects,
		area:              area,
	}
}

func (d *Deed) DeedNumber() string       { return d.deedNumber }
func (d *Deed) SchemeID() uuid.UUID      { return d.schemeID }
func (d *Deed) SectionNumber() int       { return d.sectionNumber }
func (d *Deed) HolderID() uuid.UUID      { return d.holderID }
func (d *Deed) ConveyancerID() uuid.UUID { return d.conveyancerID }
func (d *Deed) State() workflow.State    { return d.state }
func (d *Deed) ExaminerID() *uuid.UUID   { return d.examinerID }
func (d *Deed) Area() decimal.Decimal    { return d.area }
func (d *Deed) Checklist() []review.ChecklistItem {
	return append([]review.ChecklistItem(nil), d.checklist...)
}
func (d *Deed) Defects() []review.Defect {
	return append([]review.Defect(nil), d.defects...)
}

func (d *Deed) transition(to workflow.State, actorID uuid.UUID, reason string) error {
	if err := workflow.DeedTable.Assert(d.state, to); err != nil {
		return err
	}
	d.Record(workflow.NewTransition(d.ID(), workflow.DomainDeed, d.state, to, actorID, reason))
	d.state = to
	d.Touch()
	return nil
}

// SetChecklist replaces the examination checklist before submission.
func (d *Deed) SetChecklist(items []review.ChecklistItem) error {
	if d.state != workflow.DeedDraft && d.state != workflow.DeedRevisionRequested {
		return &workflow.IllegalTransitionError{Domain: workflow.DomainDeed, From: d.state, To: d.state}
	}
	d.checklist = append([]review.ChecklistItem(nil), items...)
	d.Touch()
	return nil
}

// CompleteChecklistItem marks one item done during examination.
func (d *Deed) CompleteChecklistItem(code string) error {
	if !review.MarkComplete(d.checklist, code) {
		return fmt.Errorf("%w: unknown checklist item %q", application.ErrValidation, code)
	}
	d.Touch()
	return nil
}

// Submit lodges the draft (or a corrected revision) for examination.
func (d *Deed) Submit(actorID uuid.UUID) error {
	if err := d.transition(workflow.DeedSubmitted, actorID, ""); err != nil {
		return err
	}
	d.AddDomainEvent(NewDeedSubmitted(d.ID(), d.deedNumber))
	return nil
}

// StartExamination assigns an examiner. Idempotent when examination is
// already running.
func (d *Deed) StartExamination(examinerID, actorID uuid.UUID) (alreadyStarted bool, err error) {
	if d.state == workflow.DeedUnderExamination {
		return true, nil
	}
	if err := d.transition(workflow.DeedUnderExamination, actorID, ""); err != nil {
		return false, err
	}
	d.examinerID = &examinerID
	d.AddDomainEvent(NewExaminationStarted(d.ID(), examinerID))
	return false, nil
}

// Decide applies the examiner's verdict. Rejections and revision requests
// carry the defect set that drives correction notices; approvals may not.
func (d *Deed) Decide(decision review.Decision, notes string, defects []review.Defect, actorID uuid.UUID) error {
	notes = strings.TrimSpace(notes)
	if decision.RequiresReason() && notes == "" {
		return &review.MissingReasonError{Decision: decision}
	}

	var target workflow.State
	switch decision {
	case review.DecisionApprove:
		if len(defects) > 0 {
			return ErrDefectsOnApprove
		}
		if err := review.CheckApprovable(d.checklist); err != nil {
			return err
		}
		target = workflow.DeedApproved
	case review.DecisionReject:
		target = workflow.DeedRejected
	case review.DecisionRequestRevision:
		target = workflow.DeedRevisionRequested
	default:
		return fmt.Errorf("%w: %q", review.ErrInvalidDecision, decision)
	}

	if err := d.transition(target, actorID, notes); err != nil {
		return err
	}
	d.defects = append([]review.Defect(nil), defects...)
	d.AddDomainEvent(NewDeedDecided(d.ID(), decision, notes, len(defects)))
	return nil
}

// Register moves an approved deed onto the register. The caller creates the
// title record in the same transaction.
func (d *Deed) Register(actorID uuid.UUID) error {
	if err := d.transition(workflow.DeedRegistered, actorID, ""); err != nil {
		return err
	}
	d.AddDomainEvent(NewDeedRegistered(d.ID(), d.schemeID, d.sectionNumber, d.holderID))
	return nil
}

// Withdraw takes the deed out of the process at the conveyancer's request.
func (d *Deed) Withdraw(actorID uuid.UUID, reason string) error {
	if err := d.transition(workflow.DeedWithdrawn, actorID, reason); err != nil {
		return err
	}
	d.AddDomainEvent(NewDeedWithdrawn(d.ID(), reason))
	return nil
}

// CorrectionNotices derives the best-effort notices owed after a decision
// with defects: one per responsible party, listing that party's findings.
func (d *Deed) CorrectionNotices() []CorrectionNotice {
	byParty := make(map[string]*CorrectionNotice)
	var order []string
	for _, defect := range d.defects {
		party := string(defect.ResponsibleParty())
		n, ok := byParty[party]
		if !ok {
			n = &CorrectionNotice{DeedID: d.ID(), DeedNumber: d.deedNumber, Party: party}
			byParty[party] = n
			order = append(order, party)
		}
		n.Findings = append(n.Findings, defect.Description)
	}

	out := make([]CorrectionNotice, 0, len(order))
	for _, party := range order {
		out = append(out, *byParty[party])
	}
	return out
}

// CorrectionNotice is the domain-level shape of a defect notification.
type CorrectionNotice struct {
	DeedID     uuid.UUID
	DeedNumber string
	Party      string
	Findings   []string
}
