// Package amendment models a post-registration change to an approved
// scheme's sectional layout. Amendments carry the proposed sections through
// a submit/decide cycle; only the process step touches the underlying
// records, and processing the same amendment twice is a reported no-op.
package amendment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/domain"
	"github.com/sbhunu/landadmin/internal/survey/domain/geometry"
	"github.com/sbhunu/landadmin/internal/workflow"
)

var (
	ErrNoScheme          = errors.New("an amendment must reference a scheme")
	ErrNoSections        = fmt.Errorf("%w: an amendment must propose at least one section", application.ErrValidation)
	ErrUnknownKind       = fmt.Errorf("%w: unknown amendment kind", application.ErrValidation)
	ErrMissingReason     = fmt.Errorf("%w: a rejection reason is required", application.ErrValidation)
	ErrAmendmentNotFound = errors.New("amendment not found")
)

// Kind classifies what the amendment does to the scheme.
type Kind string

const (
	KindSectionSplit       Kind = "section_split"
	KindSectionExtension   Kind = "section_extension"
	KindBoundaryCorrection Kind = "boundary_correction"
)

// ParseKind validates a caller-supplied kind string.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindSectionSplit, KindSectionExtension, KindBoundaryCorrection:
		return k, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownKind, s)
	}
}

// Section is one proposed section in the amendment: a number that either
// replaces an existing section or introduces a new one.
type Section struct {
	Number    int             `json:"number"`
	FloorArea decimal.Decimal `json:"floor_area"`
	Boundary  geometry.Ring   `json:"boundary,omitempty"`
}

// Amendment is the registry's record of a proposed scheme change.
type Amendment struct {
	domain.BaseAggregateRoot
	workflow.Recorder

	schemeID    uuid.UUID
	kind        Kind
	reason      string
	newSections []Section
	status      workflow.State
	submittedBy uuid.UUID
	decidedBy   *uuid.UUID
	processedAt *time.Time
}

// NewAmendment lodges an amendment against a registered scheme.
func NewAmendment(schemeID uuid.UUID, kind Kind, reason string, newSections []Section, submittedBy uuid.UUID) (*Amendment, error) {
	if schemeID == uuid.Nil {
		return nil, ErrNoScheme
	}
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	if len(newSections) == 0 {
		return nil, ErrNoSections
	}

	a := &Amendment{
		BaseAggregateRoot: domain.NewBaseAggregateRoot(),
		schemeID:          schemeID,
		kind:              kind,
		reason:            strings.TrimSpace(reason),
		newSections:       append([]Section(nil), newSections...),
		status:            workflow.SubWorkflowSubmitted,
		submittedBy:       submittedBy,
	}
	a.AddDomainEvent(NewAmendmentSubmitted(a.ID(), schemeID, kind, submittedBy))
	return a, nil
}

// Rehydrate rebuilds an amendment from storage.
func Rehydrate(
	id uuid.UUID,
	version int,
	createdAt, updatedAt time.Time,
	schemeID uuid.UUID,
	kind Kind,
	reason string,
	newSections []Section,
	status workflow.State,
	submittedBy uuid.UUID,
	decidedBy *uuid.UUID,
	processedAt *time.Time,
) *Amendment {
	return &Amendment{
		BaseAggregateRoot: domain.RehydrateBaseAggregateRoot(id, version, createdAt, updatedAt),
		schemeID:          schemeID,
		kind:              kind,
		reason:            reason,
		newSections:       newSections,
		status:            status,
		submittedBy:       submittedBy,
		decidedBy:         decidedBy,
		processedAt:       processedAt,
	}
}

func (a *Amendment) SchemeID() uuid.UUID     { return a.schemeID }
func (a *Amendment) Kind() Kind              { return a.kind }
func (a *Amendment) Reason() string          { return a.reason }
func (a *Amendment) Status() workflow.State  { return a.status }
func (a *Amendment) SubmittedBy() uuid.UUID  { return a.submittedBy }
func (a *Amendment) DecidedBy() *uuid.UUID   { return a.decidedBy }
func (a *Amendment) ProcessedAt() *time.Time { return a.processedAt }
func (a *Amendment) NewSections() []Section {
	return append([]Section(nil), a.newSections...)
}

// IsProcessed reports whether the registry mutation has already happened.
func (a *Amendment) IsProcessed() bool { return a.status == workflow.SubWorkflowProcessed }

func (a *Amendment) transition(to workflow.State, actorID uuid.UUID, reason string) error {
	if err := workflow.AmendmentTable.Assert(a.status, to); err != nil {
		return err
	}
	a.Record(workflow.NewTransition(a.ID(), workflow.DomainAmendment, a.status, to, actorID, reason))
	a.status = to
	a.Touch()
	return nil
}

// Approve clears the amendment for processing.
func (a *Amendment) Approve(actorID uuid.UUID) error {
	if err := a.transition(workflow.SubWorkflowApproved, actorID, ""); err != nil {
		return err
	}
	a.decidedBy = &actorID
	a.AddDomainEvent(NewAmendmentDecided(a.ID(), a.schemeID, workflow.SubWorkflowApproved, ""))
	return nil
}

// Reject closes the amendment without processing; a reason is mandatory.
func (a *Amendment) Reject(reason string, actorID uuid.UUID) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrMissingReason
	}
	if err := a.transition(workflow.SubWorkflowRejected, actorID, reason); err != nil {
		return err
	}
	a.decidedBy = &actorID
	a.AddDomainEvent(NewAmendmentDecided(a.ID(), a.schemeID, workflow.SubWorkflowRejected, reason))
	return nil
}

// Process marks the registry mutation done. Idempotent: reprocessing an
// already-processed amendment reports success without a second mutation.
func (a *Amendment) Process(actorID uuid.UUID, now time.Time) (alreadyProcessed bool, err error) {
	if a.IsProcessed() {
		return true, nil
	}
	if err := a.transition(workflow.SubWorkflowProcessed, actorID, ""); err != nil {
		return false, err
	}
	a.processedAt = &now
	a.AddDomainEvent(NewAmendmentProcessed(a.ID(), a.schemeID, len(a.newSections)))
	return false, nil
}
