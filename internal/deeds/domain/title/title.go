// Package title models the registered title record opened when a deed is
// registered. A title has its own short review lifecycle ending in
// registration, after which ownership changes only through the transfer
// sub-workflow.
package title

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/shared/domain"
	"github.com/sbhunu/landadmin/internal/workflow"
)

var (
	ErrEmptyTitleNumber        = errors.New("title number cannot be empty")
	ErrEmptyRegistrationNumber = errors.New("registration number cannot be empty")
	ErrTitleNotFound           = errors.New("title not found")
)

// Title is the register's record of ownership for one section.
type Title struct {
	domain.BaseAggregateRoot
	workflow.Recorder

	titleNumber        string
	deedID             uuid.UUID
	schemeID           uuid.UUID
	sectionNumber      int
	holderID           uuid.UUID
	state              workflow.State
	registrationNumber *string
}

// NewTitle opens a pending title from a registered deed.
func NewTitle(titleNumber string, deedID, schemeID uuid.UUID, sectionNumber int, holderID uuid.UUID) (*Title, error) {
	titleNumber = strings.TrimSpace(titleNumber)
	if titleNumber == "" {
		return nil, ErrEmptyTitleNumber
	}

	return &Title{
		BaseAggregateRoot: domain.NewBaseAggregateRoot(),
		titleNumber:       titleNumber,
		deedID:            deedID,
		schemeID:          schemeID,
		sectionNumber:     sectionNumber,
		holderID:          holderID,
		state:             workflow.TitlePending,
	}, nil
}

// Rehydrate rebuilds a title from storage.
func Rehydrate(
	id uuid.UUID,
	version int,
	createdAt, updatedAt time.Time,
	titleNumber string,
	deedID, schemeID uuid.UUID,
	sectionNumber int,
	holderID uuid.UUID,
	state workflow.State,
	registrationNumber *string,
) *Title {
	return &Title{
		BaseAggregateRoot:  domain.RehydrateBaseAggregateRoot(id, version, createdAt, updatedAt),
		titleNumber:        titleNumber,
		deedID:             deedID,
		schemeID:           schemeID,
		sectionNumber:      sectionNumber,
		holderID:           holderID,
		state:              state,
		registrationNumber: registrationNumber,
	}
}

func (t *Title) TitleNumber() string         { return t.titleNumber }
func (t *Title) DeedID() uuid.UUID           { return t.deedID }
func (t *Title) SchemeID() uuid.UUID         { return t.schemeID }
func (t *Title) SectionNumber() int          { return t.sectionNumber }
func (t *Title) HolderID() uuid.UUID         { return t.holderID }
func (t *Title) State() workflow.State       { return t.state }
func (t *Title) RegistrationNumber() *string { return t.registrationNumber }

func (t *Title) transition(to workflow.State, actorID uuid.UUID, reason string) error {
	if err := workflow.TitleTable.Assert(t.state, to); err != nil {
		return err
	}
	t.Record(workflow.NewTransition(t.ID(), workflow.DomainTitle, t.state, to, actorID, reason))
	t.state = to
	t.Touch()
	return nil
}

// StartReview opens the registrar's check of the pending title.
func (t *Title) StartReview(actorID uuid.UUID) error {
	return t.transition(workflow.TitleUnderReview, actorID, "")
}

// Approve clears the title for registration.
func (t *Title) Approve(actorID uuid.UUID) error {
	if err := t.transition(workflow.TitleApproved, actorID, ""); err != nil {
		return err
	}
	t.AddDomainEvent(NewTitleApproved(t.ID(), t.titleNumber))
	return nil
}

// Reject closes the title without registration; a reason is mandatory.
func (t *Title) Reject(reason string, actorID uuid.UUID) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errors.New("a rejection reason is required")
	}
	return t.transition(workflow.TitleRejected, actorID, reason)
}

// Register enters the title on the register under the issued registration
// number.
func (t *Title) Register(registrationNumber string, actorID uuid.UUID) error {
	registrationNumber = strings.TrimSpace(registrationNumber)
	if registrationNumber == "" {
		return ErrEmptyRegistrationNumber
	}
	if err := t.transition(workflow.TitleRegistered, actorID, ""); err != nil {
		return err
	}
	t.registrationNumber = &registrationNumber
	t.AddDomainEvent(NewTitleRegistered(t.ID(), t.titleNumber, registrationNumber, t.holderID))
	return nil
}

// Cancel closes a pending title before review starts.
func (t *Title) Cancel(reason string, actorID uuid.UUID) error {
	return t.transition(workflow.TitleCancelled, actorID, reason)
}

// TransferTo changes the registered holder and issues a new registration
// number. Only the transfer sub-workflow's process step calls this.
func (t *Title) TransferTo(newHolderID uuid.UUID, newRegistrationNumber string, actorID uuid.UUID) error {
	if t.state != workflow.TitleRegistered {
		return &workflow.IllegalTransitionError{Domain: workflow.DomainTitle, From: t.state, To: workflow.TitleRegistered}
	}
	newRegistrationNumber = strings.TrimSpace(newRegistrationNumber)
	if newRegistrationNumber == "" {
		return ErrEmptyRegistrationNumber
	}

	// Ownership change is not a state move; the transfer record carries the
	// audit trail, the title carries the event.
	previous := t.holderID
	t.holderID = newHolderID
	t.registrationNumber = &newRegistrationNumber
	t.Touch()
	t.AddDomainEvent(NewTitleTransferred(t.ID(), previous, newHolderID, newRegistrationNumber))
	return nil
}
