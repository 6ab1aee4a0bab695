// Package objection models a statutory third-party objection to a planning
// scheme. Unlike disputes, objections skip assignment and are strictly
// time-gated: one may only be lodged while the scheme's objection window is
// open, inclusive at both bounds.
package objection

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
	ErrNoScheme          = errors.New("an objection must reference a scheme")
	ErrEmptyGrounds      = errors.New("objection grounds cannot be empty")
	ErrNoHearingDate     = fmt.Errorf("%w: a hearing date is required", application.ErrValidation)
	ErrIncompleteOutcome = fmt.Errorf("%w: a resolution needs a type and text", application.ErrValidation)
	ErrObjectionNotFound = errors.New("objection not found")
)

// Hearing is the scheduled sitting for an objection.
type Hearing struct {
	Date      time.Time
	Location  string
	OfficerID uuid.UUID
}

// Resolution is the recorded outcome of an objection.
type Resolution struct {
	Type        string
	Text        string
	DocumentRef string
}

// Objection is the statutory objection aggregate.
type Objection struct {
	domain.BaseAggregateRoot
	workflow.Recorder

	schemeID   uuid.UUID
	objectorID uuid.UUID
	grounds    string
	status     workflow.State
	hearing    *Hearing
	resolution *Resolution
}

// NewObjection lodges an objection. The caller has already checked the
// scheme's window; windowStart/windowEnd travel here only for the gate.
func NewObjection(schemeID, objectorID uuid.UUID, grounds string, windowStart, windowEnd *time.Time, now time.Time) (*Objection, error) {
	if schemeID == uuid.Nil {
		return nil, ErrNoScheme
	}
	grounds = strings.TrimSpace(grounds)
	if grounds == "" {
		return nil, ErrEmptyGrounds
	}
	if !IsWithinWindow(windowStart, windowEnd, now) {
		return nil, &WindowClosedError{DaysRemaining: DaysRemaining(windowEnd, now)}
	}

	o := &Objection{
		BaseAggregateRoot: domain.NewBaseAggregateRoot(),
		schemeID:          schemeID,
		objectorID:        objectorID,
		grounds:           grounds,
		status:            workflow.CasePending,
	}
	o.AddDomainEvent(NewObjectionLodged(o.ID(), schemeID, objectorID))
	return o, nil
}

// Rehydrate rebuilds an objection from storage.
func Rehydrate(
	id uuid.UUID,
	version int,
	createdAt, updatedAt time.Time,
	schemeID, objectorID uuid.UUID,
	grounds string,
	status workflow.State,
	hearing *Hearing,
	resolution *Resolution,
) *Objection {
	return &Objection{
		BaseAggregateRoot: domain.RehydrateBaseAggregateRoot(id, version, createdAt, updatedAt),
		schemeID:          schemeID,
		objectorID:        objectorID,
		grounds:           grounds,
		status:            status,
		hearing:           hearing,
		resolution:        resolution,
	}
}

func (o *Objection) SchemeID() uuid.UUID     { return o.schemeID }
func (o *Objection) ObjectorID() uuid.UUID   { return o.objectorID }
func (o *Objection) Grounds() string         { return o.grounds }
func (o *Objection) Status() workflow.State  { return o.status }
func (o *Objection) Hearing() *Hearing       { return o.hearing }
func (o *Objection) Resolution() *Resolution { return o.resolution }

func (o *Objection) transition(to workflow.State, actorID uuid.UUID, reason string) error {
	if err := workflow.ObjectionTable.Assert(o.status, to); err != nil {
		return err
	}
	o.Record(workflow.NewTransition(o.ID(), workflow.DomainObjection, o.status, to, actorID, reason))
	o.status = to
	o.Touch()
	return nil
}

// ScheduleHearing fixes a sitting. When the caller names no presiding
// officer, the scheduling actor presides.
func (o *Objection) ScheduleHearing(date time.Time, location string, officerID, actorID uuid.UUID) error {
	if date.IsZero() {
		return ErrNoHearingDate
	}
	if officerID == uuid.Nil {
		officerID = actorID
	}
	if err := o.transition(workflow.CaseHearingScheduled, actorID, ""); err != nil {
		return err
	}
	o.hearing = &Hearing{Date: date, Location: strings.TrimSpace(location), OfficerID: officerID}
	o.AddDomainEvent(NewObjectionHearingScheduled(o.ID(), date, officerID))
	return nil
}

// Resolve closes the objection with a recorded outcome. Legal directly from
// pending or after a hearing.
func (o *Objection) Resolve(res Resolution, actorID uuid.UUID) error {
	if strings.TrimSpace(res.Type) == "" || strings.TrimSpace(res.Text) == "" {
		return ErrIncompleteOutcome
	}
	if err := o.transition(workflow.CaseResolved, actorID, res.Type); err != nil {
		return err
	}
	o.resolution = &res
	o.AddDomainEvent(NewObjectionResolved(o.ID(), res.Type))
	return nil
}
