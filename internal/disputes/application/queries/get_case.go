// Package queries implements the read side of the disputes context.
package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/disputes/domain/dispute"
	"github.com/sbhunu/landadmin/internal/disputes/domain/objection"
	"github.com/sbhunu/landadmin/internal/workflow"
)

// HearingView is the read model of a scheduled sitting.
type HearingView struct {
	Date      time.Time `json:"date"`
	Location  string    `json:"location,omitempty"`
	OfficerID uuid.UUID `json:"officer_id"`
}

// ResolutionView is the read model of a recorded outcome.
type ResolutionView struct {
	Type        string `json:"type"`
	Text        string `json:"text"`
	DocumentRef string `json:"document_ref,omitempty"`
}

// GetDisputeQuery fetches one dispute.
type GetDisputeQuery struct {
	DisputeID uuid.UUID
}

func (GetDisputeQuery) QueryName() string { return "disputes.get_dispute" }

// DisputeView is the read model returned across the module boundary.
type DisputeView struct {
	ID            uuid.UUID           `json:"id"`
	SubjectType   dispute.SubjectType `json:"subject_type"`
	SubjectID     uuid.UUID           `json:"subject_id"`
	ComplainantID uuid.UUID           `json:"complainant_id"`
	RespondentID  *uuid.UUID          `json:"respondent_id,omitempty"`
	Grounds       string              `json:"grounds"`
	Status        workflow.State      `json:"status"`
	NextStates    []workflow.State    `json:"next_states"`
	AssigneeID    *uuid.UUID          `json:"assignee_id,omitempty"`
	Authority     string              `json:"authority,omitempty"`
	Hearing       *HearingView        `json:"hearing,omitempty"`
	Resolution    *ResolutionView     `json:"resolution,omitempty"`
	Version       int                 `json:"version"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// GetDisputeHandler handles the GetDisputeQuery.
type GetDisputeHandler struct {
	disputes dispute.Repository
}

// NewGetDisputeHandler creates a new GetDisputeHandler.
func NewGetDisputeHandler(disputes dispute.Repository) *GetDisputeHandler {
	return &GetDisputeHandler{disputes: disputes}
}

// Handle executes the GetDisputeQuery.
func (h *GetDisputeHandler) Handle(ctx context.Context, q GetDisputeQuery) (*DisputeView, error) {
	d, err := h.disputes.FindByID(ctx, q.DisputeID)
	if err != nil {
		return nil, err
	}

	view := &DisputeView{
		ID:            d.ID(),
		SubjectType:   d.SubjectType(),
		SubjectID:     d.SubjectID(),
		ComplainantID: d.ComplainantID(),
		RespondentID:  d.RespondentID(),
		Grounds:       d.Grounds(),
		Status:        d.Status(),
		NextStates:    workflow.DisputeTable.NextStates(d.Status()),
		AssigneeID:    d.AssigneeID(),
		Authority:     d.Authority(),
		Version:       d.Version(),
		CreatedAt:     d.CreatedAt(),
		UpdatedAt:     d.UpdatedAt(),
	}
	if hearing := d.Hearing(); hearing != nil {
		view.Hearing = &HearingView{Date: hearing.Date, Location: hearing.Location, OfficerID: hearing.OfficerID}
	}
	if res := d.Resolution(); res != nil {
		view.Resolution = &ResolutionView{Type: res.Type, Text: res.Text, DocumentRef: res.DocumentRef}
	}
	return view, nil
}

// GetObjectionQuery fetches one objection.
type GetObjectionQuery struct {
	ObjectionID uuid.UUID
}

func (GetObjectionQuery) QueryName() string { return "disputes.get_objection" }

// ObjectionView is the read model returned across the module boundary.
type ObjectionView struct {
	ID         uuid.UUID        `json:"id"`
	SchemeID   uuid.UUID        `json:"scheme_id"`
	ObjectorID uuid.UUID        `json:"objector_id"`
	Grounds    string           `json:"grounds"`
	Status     workflow.State   `json:"status"`
	NextStates []workflow.State `json:"next_states"`
	Hearing    *HearingView     `json:"hearing,omitempty"`
	Resolution *ResolutionView  `json:"resolution,omitempty"`
	Version    int              `json:"version"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// GetObjectionHandler handles the GetObjectionQuery.
type GetObjectionHandler struct {
	objections objection.Repository
}

// NewGetObjectionHandler creates a new GetObjectionHandler.
func NewGetObjectionHandler(objections objection.Repository) *GetObjectionHandler {
	return &GetObjectionHandler{objections: objections}
}

// Handle executes the GetObjectionQuery.
func (h *GetObjectionHandler) Handle(ctx context.Context, q GetObjectionQuery) (*ObjectionView, error) {
	o, err := h.objections.FindByID(ctx, q.ObjectionID)
	if err != nil {
		return nil, err
	}

	view := &ObjectionView{
		ID:         o.ID(),
		SchemeID:   o.SchemeID(),
		ObjectorID: o.ObjectorID(),
		Grounds:    o.Grounds(),
		Status:     o.Status(),
		NextStates: workflow.ObjectionTable.NextStates(o.Status()),
		Version:    o.Version(),
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
	}
	if hearing := o.Hearing(); hearing != nil {
		view.Hearing = &HearingView{Date: hearing.Date, Location: hearing.Location, OfficerID: hearing.OfficerID}
	}
	if res := o.Resolution(); res != nil {
		view.Resolution = &ResolutionView{Type: res.Type, Text: res.Text, DocumentRef: res.DocumentRef}
	}
	return view, nil
}
