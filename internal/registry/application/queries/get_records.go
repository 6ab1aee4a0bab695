package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/registry/domain/amendment"
	"github.com/sbhunu/landadmin/internal/registry/domain/transfer"
	"github.com/sbhunu/landadmin/internal/workflow"
)

// GetAmendmentQuery fetches one amendment.
type GetAmendmentQuery struct {
	AmendmentID uuid.UUID
}

func (GetAmendmentQuery) QueryName() string { return "registry.get_amendment" }

// AmendmentView is the read model returned across the module boundary.
type AmendmentView struct {
	ID          uuid.UUID           `json:"id"`
	SchemeID    uuid.UUID           `json:"scheme_id"`
	Kind        amendment.Kind      `json:"kind"`
	Reason      string              `json:"reason,omitempty"`
	NewSections []amendment.Section `json:"new_sections"`
	Status      workflow.State      `json:"status"`
	NextStates  []workflow.State    `json:"next_states"`
	SubmittedBy uuid.UUID           `json:"submitted_by"`
	DecidedBy   *uuid.UUID          `json:"decided_by,omitempty"`
	ProcessedAt *time.Time          `json:"processed_at,omitempty"`
	Version     int                 `json:"version"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// GetAmendmentHandler handles the GetAmendmentQuery.
type GetAmendmentHandler struct {
	amendments amendment.Repository
}

// NewGetAmendmentHandler creates a new GetAmendmentHandler.
func NewGetAmendmentHandler(amendments amendment.Repository) *GetAmendmentHandler {
	return &GetAmendmentHandler{amendments: amendments}
}

// Handle executes the GetAmendmentQuery.
func (h *GetAmendmentHandler) Handle(ctx context.Context, q GetAmendmentQuery) (*AmendmentView, error) {
	a, err := h.amendments.FindByID(ctx, q.AmendmentID)
	if err != nil {
		return nil, err
	}
	return &AmendmentView{
		ID:          a.ID(),
		SchemeID:    a.SchemeID(),
		Kind:        a.Kind(),
		Reason:      a.Reason(),
		NewSections: a.NewSections(),
		Status:      a.Status(),
		NextStates:  workflow.AmendmentTable.NextStates(a.Status()),
		SubmittedBy: a.SubmittedBy(),
		DecidedBy:   a.DecidedBy(),
		ProcessedAt: a.ProcessedAt(),
		Version:     a.Version(),
		CreatedAt:   a.CreatedAt(),
		UpdatedAt:   a.UpdatedAt(),
	}, nil
}

// GetTransferQuery fetches one transfer.
type GetTransferQuery struct {
	TransferID uuid.UUID
}

func (GetTransferQuery) QueryName() string { return "registry.get_transfer" }

// TransferView is the read model returned across the module boundary.
type TransferView struct {
	ID                 uuid.UUID        `json:"id"`
	TitleID            uuid.UUID        `json:"title_id"`
	FromHolderID       uuid.UUID        `json:"from_holder_id"`
	ToHolderID         uuid.UUID        `json:"to_holder_id"`
	Status             workflow.State   `json:"status"`
	NextStates         []workflow.State `json:"next_states"`
	SubmittedBy        uuid.UUID        `json:"submitted_by"`
	DecidedBy          *uuid.UUID       `json:"decided_by,omitempty"`
	RegistrationNumber *string          `json:"registration_number,omitempty"`
	ProcessedAt        *time.Time       `json:"processed_at,omitempty"`
	Version            int              `json:"version"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// GetTransferHandler handles the GetTransferQuery.
type GetTransferHandler struct {
	transfers transfer.Repository
}

// NewGetTransferHandler creates a new GetTransferHandler.
func NewGetTransferHandler(transfers transfer.Repository) *GetTransferHandler {
	return &GetTransferHandler{transfers: transfers}
}

// Handle executes the GetTransferQuery.
func (h *GetTransferHandler) Handle(ctx context.Context, q GetTransferQuery) (*TransferView, error) {
	tr, err := h.transfers.FindByID(ctx, q.TransferID)
	if err != nil {
		return nil, err
	}
	return &TransferView{
		ID:                 tr.ID(),
		TitleID:            tr.TitleID(),
		FromHolderID:       tr.FromHolderID(),
		ToHolderID:         tr.ToHolderID(),
		Status:             tr.Status(),
		NextStates:         workflow.TransferTable.NextStates(tr.Status()),
		SubmittedBy:        tr.SubmittedBy(),
		DecidedBy:          tr.DecidedBy(),
		RegistrationNumber: tr.RegistrationNumber(),
		ProcessedAt:        tr.ProcessedAt(),
		Version:            tr.Version(),
		CreatedAt:          tr.CreatedAt(),
		UpdatedAt:          tr.UpdatedAt(),
	}, nil
}
