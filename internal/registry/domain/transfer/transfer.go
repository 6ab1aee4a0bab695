// Package transfer models an ownership change of a registered title. Like
// amendments, transfers move submit → approve|reject → process, and only
// the process step touches the title itself: it swaps the holder and issues
// a fresh registration number, exactly once.
package transfer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/domain"
	"github.com/sbhunu/landadmin/internal/workflow"
)

var (
	ErrNoTitle          = errors.New("a transfer must reference a title")
	ErrNoRecipient      = errors.New("a transfer must name a receiving holder")
	ErrSameHolder       = fmt.Errorf("%w: transfer to the current holder", application.ErrValidation)
	ErrMissingReason    = fmt.Errorf("%w: a rejection reason is required", application.ErrValidation)
	ErrTransferNotFound = errors.New("transfer not found")
)

// Transfer is the registry's record of an ownership change in flight.
type Transfer struct {
	domain.BaseAggregateRoot
	workflow.Recorder

	titleID            uuid.UUID
	fromHolderID       uuid.UUID
	toHolderID         uuid.UUID
	status             workflow.State
	submittedBy        uuid.UUID
	decidedBy          *uuid.UUID
	registrationNumber *string
	processedAt        *time.Time
}

// NewTransfer lodges a transfer of a title from its current holder.
func NewTransfer(titleID, fromHolderID, toHolderID, submittedBy uuid.UUID) (*Transfer, error) {
	if titleID == uuid.Nil {
		return nil, ErrNoTitle
	}
	if toHolderID == uuid.Nil {
		return nil, ErrNoRecipient
	}
	if toHolderID == fromHolderID {
		return nil, ErrSameHolder
	}

	t := &Transfer{
		BaseAggregateRoot: domain.NewBaseAggregateRoot(),
		titleID:           titleID,
		fromHolderID:      fromHolderID,
		toHolderID:        toHolderID,
		status:            workflow.SubWorkflowSubmitted,
		submittedBy:       submittedBy,
	}
	t.AddDomainEvent(NewTransferSubmitted(t.ID(), titleID, fromHolderID, toHolderID))
	return t, nil
}

// Rehydrate rebuilds a transfer from storage.
func Rehydrate(
	id uuid.UUID,
	version int,
	createdAt, updatedAt time.Time,
	titleID, fromHolderID, toHolderID uuid.UUID,
	status workflow.State,
	submittedBy uuid.UUID,
	decidedBy *uuid.UUID,
	registrationNumber *string,
	processedAt *time.Time,
) *Transfer {
	return &Transfer{
		BaseAggregateRoot:  domain.RehydrateBaseAggregateRoot(id, version, createdAt, updatedAt),
		titleID:            titleID,
		fromHolderID:       fromHolderID,
		toHolderID:         toHolderID,
		status:             status,
		submittedBy:        submittedBy,
		decidedBy:          decidedBy,
		registrationNumber: registrationNumber,
		processedAt:        processedAt,
	}
}

func (t *Transfer) TitleID() uuid.UUID          { return t.titleID }
func (t *Transfer) FromHolderID() uuid.UUID     { return t.fromHolderID }
func (t *Transfer) ToHolderID() uuid.UUID       { return t.toHolderID }
func (t *Transfer) Status() workflow.State      { return t.status }
func (t *Transfer) SubmittedBy() uuid.UUID      { return t.submittedBy }
func (t *Transfer) DecidedBy() *uuid.UUID       { return t.decidedBy }
func (t *Transfer) RegistrationNumber() *string { return t.registrationNumber }
func (t *Transfer) ProcessedAt() *time.Time     { return t.processedAt }

// IsProcessed reports whether the title mutation has already happened.
func (t *Transfer) IsProcessed() bool { return t.status == workflow.SubWorkflowProcessed }

func (t *Transfer) transition(to workflow.State, actorID uuid.UUID, reason string) error {
	if err := workflow.TransferTable.Assert(t.status, to); err != nil {
		return err
	}
	t.Record(workflow.NewTransition(t.ID(), workflow.DomainTransfer, t.status, to, actorID, reason))
	t.status = to
	t.Touch()
	return nil
}

// Approve clears the transfer for processing.
func (t *Transfer) Approve(actorID uuid.UUID) error {
	if err := t.transition(workflow.SubWorkflowApproved, actorID, ""); err != nil {
		return err
	}
	t.decidedBy = &actorID
	t.AddDomainEvent(NewTransferDecided(t.ID(), t.titleID, workflow.SubWorkflowApproved, ""))
	return nil
}

// Reject closes the transfer without touching the title.
func (t *Transfer) Reject(reason string, actorID uuid.UUID) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrMissingReason
	}
	if err := t.transition(workflow.SubWorkflowRejected, actorID, reason); err != nil {
		return err
	}
	t.decidedBy = &actorID
	t.AddDomainEvent(NewTransferDecided(t.ID(), t.titleID, workflow.SubWorkflowRejected, reason))
	return nil
}

// Process records the completed title mutation under the newly issued
// registration number. Idempotent: reprocessing reports success without a
// second mutation.
func (t *Transfer) Process(registrationNumber string, actorID uuid.UUID, now time.Time) (alreadyProcessed bool, err error) {
	if t.IsProcessed() {
		return true, nil
	}
	registrationNumber = strings.TrimSpace(registrationNumber)
	if registrationNumber == "" {
		return false, fmt.Errorf("%w: registration number cannot be empty", application.ErrValidation)
	}
	if err := t.transition(workflow.SubWorkflowProcessed, actorID, ""); err != nil {
		return false, err
	}
	t.registrationNumber = &registrationNumber
	t.processedAt = &now
	t.AddDomainEvent(NewTransferProcessed(t.ID(), t.titleID, t.toHolderID, registrationNumber))
	return false, nil
}
