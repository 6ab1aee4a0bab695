// Package scheme models a sectional title development scheme moving through
// planning review: drafted by a planner, submitted to the local authority,
// reviewed against a compliance checklist, and finally approved, rejected or
// sent back for revision. An approved scheme is frozen; later changes go
// through the amendment sub-workflow.
package scheme

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/review"
	"github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/domain"
	"github.com/sbhunu/landadmin/internal/workflow"
)

var (
	ErrEmptySchemeNumber = errors.New("scheme number cannot be empty")
	ErrEmptyName         = errors.New("scheme name cannot be empty")
	ErrWindowNotOpen     = fmt.Errorf("%w: objection window requires a submitted or approved scheme", application.ErrValidation)
	ErrWindowInverted    = fmt.Errorf("%w: objection window end precedes start", application.ErrValidation)
)

// Scheme is the planning aggregate.
type Scheme struct {
	domain.BaseAggregateRoot
	workflow.Recorder

	schemeNumber   string
	name           string
	localAuthority string
	plannerID      uuid.UUID
	state          workflow.State
	reviewerID     *uuid.UUID
	checklist      []review.ChecklistItem
	windowStart    *time.Time
	windowEnd      *time.Time
}

// NewScheme drafts a scheme for a planner.
func NewScheme(schemeNumber, name, localAuthority string, plannerID uuid.UUID) (*Scheme, error) {
	schemeNumber = strings.TrimSpace(schemeNumber)
	if schemeNumber == "" {
		return nil, ErrEmptySchemeNumber
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Scheme{
		BaseAggregateRoot: domain.NewBaseAggregateRoot(),
		schemeNumber:      schemeNumber,
		name:              name,
		localAuthority:    strings.TrimSpace(localAuthority),
		plannerID:         plannerID,
		state:             workflow.PlanningDraft,
	}, nil
}

// Rehydrate rebuilds a scheme from storage.
func Rehydrate(
	id uuid.UUID,
	version int,
	createdAt, updatedAt time.Time,
	schemeNumber, name, localAuthority string,
	plannerID uuid.UUID,
	state workflow.State,
	reviewerID *uuid.UUID,
	checklist []review.ChecklistItem,
	windowStart, windowEnd *time.Time,
) *Scheme {
	return &Scheme{
		BaseAggregateRoot: domain.RehydrateBaseAggregateRoot(id, version, createdAt, updatedAt),
		schemeNumber:      schemeNumber,
		name:              name,
		localAuthority:    localAuthority,
		plannerID:         plannerID,
		state:             state,
		reviewerID:        reviewerID,
		checklist:         checklist,
		windowStart:       windowStart,
		windowEnd:         windowEnd,
	}
}

func (s *Scheme) SchemeNumber() string              { return s.schemeNumber }
func (s *Scheme) Name() string                     { return s.name }
func (s *Scheme) LocalAuthority() string           { return s.localAuthority }
func (s *Scheme) PlannerID() uuid.UUID             { return s.plannerID }
func (s *Scheme) State() workflow.State            { return s.state }
func (s *Scheme) ReviewerID() *uuid.UUID           { return s.reviewerID }
func (s *Scheme) Checklist() []review.ChecklistItem {
	return append([]review.ChecklistItem(nil), s.checklist...)
}
func (s *Scheme) Window() (start, end *time.Time) { return s.windowStart, s.windowEnd }

// transition asserts legality against the planning table, records the audit
// entry and applies the new state.
func (s *Scheme) transition(to workflow.State, actorID uuid.UUID, reason string) error {
	if err := workflow.PlanningTable.Assert(s.state, to); err != nil {
		return err
	}
	s.Record(workflow.NewTransition(s.ID(), workflow.DomainPlanning, s.state, to, actorID, reason))
	s.state = to
	s.Touch()
	return nil
}

// SetChecklist replaces the compliance checklist. Only sensible before the
// decision, so it shares the transition guard: drafts and revisions only.
func (s *Scheme) SetChecklist(items []review.ChecklistItem) error {
	if s.state != workflow.PlanningDraft && s.state != workflow.PlanningRevisionRequested {
		return &workflow.IllegalTransitionError{Domain: workflow.DomainPlanning, From: s.state, To: s.state}
	}
	s.checklist = append([]review.ChecklistItem(nil), items...)
	s.Touch()
	return nil
}

// CompleteChecklistItem marks an item done during review.
func (s *Scheme) CompleteChecklistItem(code string) error {
	if !review.MarkComplete(s.checklist, code) {
		return fmt.Errorf("%w: unknown checklist item %q", application.ErrValidation, code)
	}
	s.Touch()
	return nil
}

// Submit moves a draft (or a revision) to the submitted state.
func (s *Scheme) Submit(actorID uuid.UUID) error {
	if err := s.transition(workflow.PlanningSubmitted, actorID, ""); err != nil {
		return err
	}
	s.AddDomainEvent(NewSchemeSubmitted(s.ID(), s.schemeNumber))
	return nil
}

// StartReview assigns a reviewer and opens the review. Starting an already
// running review is not an error: the call reports alreadyStarted instead,
// so double-clicks and retries are harmless.
func (s *Scheme) StartReview(reviewerID, actorID uuid.UUID) (alreadyStarted bool, err error) {
	if s.state == workflow.PlanningUnderReview {
		return true, nil
	}
	if err := s.transition(workflow.PlanningUnderReview, actorID, ""); err != nil {
		return false, err
	}
	s.reviewerID = &reviewerID
	s.AddDomainEvent(NewSchemeReviewStarted(s.ID(), reviewerID))
	return false, nil
}

// Decide applies the reviewer's verdict. Approval requires every required
// checklist item complete; rejection and revision require notes.
func (s *Scheme) Decide(decision review.Decision, notes string, actorID uuid.UUID) error {
	notes = strings.TrimSpace(notes)
	if decision.RequiresReason() && notes == "" {
		return &review.MissingReasonError{Decision: decision}
	}

	var target workflow.State
	switch decision {
	case review.DecisionApprove:
		if err := review.CheckApprovable(s.checklist); err != nil {
			return err
		}
		target = workflow.PlanningApproved
	case review.DecisionReject:
		target = workflow.PlanningRejected
	case review.DecisionRequestRevision:
		target = workflow.PlanningRevisionRequested
	default:
		return fmt.Errorf("%w: %q", review.ErrInvalidDecision, decision)
	}

	if err := s.transition(target, actorID, notes); err != nil {
		return err
	}
	s.AddDomainEvent(NewSchemeDecided(s.ID(), decision, notes))
	return nil
}

// Withdraw takes the scheme out of the process at the planner's request.
func (s *Scheme) Withdraw(actorID uuid.UUID, reason string) error {
	if err := s.transition(workflow.PlanningWithdrawn, actorID, reason); err != nil {
		return err
	}
	s.AddDomainEvent(NewSchemeWithdrawn(s.ID(), reason))
	return nil
}

// OpenObjectionWindow attaches the statutory objection period. Third-party
// objections are accepted only while "now" falls inside it, inclusive at
// both bounds.
func (s *Scheme) OpenObjectionWindow(start, end time.Time) error {
	switch s.state {
	case workflow.PlanningSubmitted, workflow.PlanningUnderReview, workflow.PlanningApproved:
	default:
		return ErrWindowNotOpen
	}
	if end.Before(start) {
		return ErrWindowInverted
	}

	start, end = start.UTC(), end.UTC()
	s.windowStart = &start
	s.windowEnd = &end
	s.Touch()
	s.AddDomainEvent(NewObjectionWindowOpened(s.ID(), start, end))
	return nil
}
