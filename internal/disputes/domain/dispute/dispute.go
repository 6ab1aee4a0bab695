// Package dispute models a contested land-administration record moving
// through resolution: lodged against a scheme, plan or title, assigned to a
// resolving authority, optionally heard, and resolved with a recorded
// outcome.
package dispute

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
	ErrNoSubject         = errors.New("a dispute must reference a subject record")
	ErrEmptyGrounds      = errors.New("dispute grounds cannot be empty")
	ErrNoAssignee        = fmt.Errorf("%w: an assignee is required", application.ErrValidation)
	ErrEmptyAuthority    = fmt.Errorf("%w: a resolving authority is required", application.ErrValidation)
	ErrNoHearingDate     = fmt.Errorf("%w: a hearing date is required", application.ErrValidation)
	ErrIncompleteOutcome = fmt.Errorf("%w: a resolution needs a type and text", application.ErrValidation)
	ErrDisputeNotFound   = errors.New("dispute not found")
)

// SubjectType names the kind of record under dispute.
type SubjectType string

const (
	SubjectScheme SubjectType = "scheme"
	SubjectPlan   SubjectType = "plan"
	SubjectTitle  SubjectType = "title"
)

// ParseSubjectType validates a caller-supplied subject type.
func ParseSubjectType(s string) (SubjectType, error) {
	switch st := SubjectType(strings.ToLower(strings.TrimSpace(s))); st {
	case SubjectScheme, SubjectPlan, SubjectTitle:
		return st, nil
	default:
		return "", fmt.Errorf("%w: unknown subject type %q", application.ErrValidation, s)
	}
}

// Hearing is the scheduled sitting for a case.
type Hearing struct {
	Date      time.Time
	Location  string
	OfficerID uuid.UUID
}

// Resolution is the recorded outcome of a case. DocumentRef optionally
// points at the filed resolution document in the external store.
type Resolution struct {
	Type        string
	Text        string
	DocumentRef string
}

func (r Resolution) validate() error {
	if strings.TrimSpace(r.Type) == "" || strings.TrimSpace(r.Text) == "" {
		return ErrIncompleteOutcome
	}
	return nil
}

// Dispute is the dispute-resolution aggregate.
type Dispute struct {
	domain.BaseAggregateRoot
	workflow.Recorder

	subjectType   SubjectType
	subjectID     uuid.UUID
	complainantID uuid.UUID
	respondentID  *uuid.UUID
	grounds       string
	status        workflow.State
	assigneeID    *uuid.UUID
	authority     string
	hearing       *Hearing
	resolution    *Resolution
}

// NewDispute lodges a dispute against a record.
func NewDispute(subjectType SubjectType, subjectID, complainantID uuid.UUID, respondentID *uuid.UUID, grounds string) (*Dispute, error) {
	if _, err := ParseSubjectType(string(subjectType)); err != nil {
		return nil, err
	}
	if subjectID == uuid.Nil {
		return nil, ErrNoSubject
	}
	grounds = strings.TrimSpace(grounds)
	if grounds == "" {
		return nil, ErrEmptyGrounds
	}

	d := &Dispute{
		BaseAggregateRoot: domain.NewBaseAggregateRoot(),
		subjectType:       subjectType,
		subjectID:         subjectID,
		complainantID:     complainantID,
		respondentID:      respondentID,
		grounds:           grounds,
		status:            workflow.CasePending,
	}
	d.AddDomainEvent(NewDisputeLodged(d.ID(), subjectType, subjectID, complainantID))
	return d, nil
}

// Rehydrate rebuilds a dispute from storage.
func Rehydrate(
	id uuid.UUID,
	version int,
	createdAt, updatedAt time.Time,
	subjectType SubjectType,
	subjectID, complainantID uuid.UUID,
	respondentID *uuid.UUID,
	grounds string,
	status workflow.State,
	assigneeID *uuid.UUID,
	authority string,
	hearing *Hearing,
	resolution *Resolution,
) *Dispute {
	return &Dispute{
		BaseAggregateRoot: domain.RehydrateBaseAggregateRoot(id, version, createdAt, updatedAt),
		subjectType:       subjectType,
		subjectID:         subjectID,
		complainantID:     complainantID,
		respondentID:      respondentID,
		grounds:           grounds,
		status:            status,
		assigneeID:        assigneeID,
		authority:         authority,
		hearing:           hearing,
		resolution:        resolution,
	}
}

func (d *Dispute) SubjectType() SubjectType { return d.subjectType }
func (d *Dispute) SubjectID() uuid.UUID     { return d.subjectID }
func (d *Dispute) ComplainantID() uuid.UUID { return d.complainantID }
func (d *Dispute) RespondentID() *uuid.UUID { return d.respondentID }
func (d *Dispute) Grounds() string          { return d.grounds }
func (d *Dispute) Status() workflow.State   { return d.status }
func (d *Dispute) AssigneeID() *uuid.UUID   { return d.assigneeID }
func (d *Dispute) Authority() string        { return d.authority }
func (d *Dispute) Hearing() *Hearing        { return d.hearing }
func (d *Dispute) Resolution() *Resolution  { return d.resolution }

func (d *Dispute) transition(to workflow.State, actorID uuid.UUID, reason string) error {
	if err := workflow.DisputeTable.Assert(d.status, to); err != nil {
		return err
	}
	d.Record(workflow.NewTransition(d.ID(), workflow.DomainDispute, d.status, to, actorID, reason))
	d.status = to
	d.Touch()
	return nil
}

// Assign hands the dispute to a resolving officer under a named authority.
func (d *Dispute) Assign(assigneeID uuid.UUID, authority string, actorID uuid.UUID) error {
	if assigneeID == uuid.Nil {
		return ErrNoAssignee
	}
	authority = strings.TrimSpace(authority)
	if authority == "" {
		return ErrEmptyAuthority
	}
	if err := d.transition(workflow.CaseAssigned, actorID, ""); err != nil {
		return err
	}
	d.assigneeID = &assigneeID
	d.authority = authority
	d.AddDomainEvent(NewDisputeAssigned(d.ID(), assigneeID, authority))
	return nil
}

// ScheduleHearing fixes a sitting. When the caller names no presiding
// officer, the scheduling actor presides.
func (d *Dispute) ScheduleHearing(date time.Time, location string, officerID, actorID uuid.UUID) error {
	if date.IsZero() {
		return ErrNoHearingDate
	}
	if officerID == uuid.Nil {
		officerID = actorID
	}
	if err := d.transition(workflow.CaseHearingScheduled, actorID, ""); err != nil {
		return err
	}
	d.hearing = &Hearing{Date: date, Location: strings.TrimSpace(location), OfficerID: officerID}
	d.AddDomainEvent(NewDisputeHearingScheduled(d.ID(), date, officerID))
	return nil
}

// Resolve closes the dispute with a recorded outcome. Legal directly from
// assignment or after a hearing.
func (d *Dispute) Resolve(res Resolution, actorID uuid.UUID) error {
	if err := res.validate(); err != nil {
		return err
	}
	if err := d.transition(workflow.CaseResolved, actorID, res.Type); err != nil {
		return err
	}
	d.resolution = &res
	d.AddDomainEvent(NewDisputeResolved(d.ID(), res.Type))
	return nil
}
