package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbhunu/landadmin/internal/deeds/domain/deed"
	"github.com/sbhunu/landadmin/internal/deeds/domain/title"
	"github.com/sbhunu/landadmin/internal/review"
	"github.com/sbhunu/landadmin/internal/workflow"
)

// GetDeedQuery fetches one deed by ID or deed number.
type GetDeedQuery struct {
	DeedID     uuid.UUID
	DeedNumber string
}

func (GetDeedQuery) QueryName() string { return "deeds.get_deed" }

// DeedView is the read model returned across the module boundary.
type DeedView struct {
	ID            uuid.UUID              `json:"id"`
	DeedNumber    string                 `json:"deed_number"`
	SchemeID      uuid.UUID              `json:"scheme_id"`
	SectionNumber int                    `json:"section_number"`
	HolderID      uuid.UUID              `json:"holder_id"`
	ConveyancerID uuid.UUID              `json:"conveyancer_id"`
	State         workflow.State         `json:"state"`
	NextStates    []workflow.State       `json:"next_states"`
	ExaminerID    *uuid.UUID             `json:"examiner_id,omitempty"`
	Checklist     []review.ChecklistItem `json:"checklist,omitempty"`
	Defects       []review.Defect        `json:"defects,omitempty"`
	Area          decimal.Decimal        `json:"area"`
	Version       int                    `json:"version"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

// GetDeedHandler handles the GetDeedQuery.
type GetDeedHandler struct {
	deeds deed.Repository
}

// NewGetDeedHandler creates a new GetDeedHandler.
func NewGetDeedHandler(deeds deed.Repository) *GetDeedHandler {
	return &GetDeedHandler{deeds: deeds}
}

// Handle executes the GetDeedQuery.
func (h *GetDeedHandler) Handle(ctx context.Context, q GetDeedQuery) (*DeedView, error) {
	var (
		d   *deed.Deed
		err error
	)
	if q.DeedID != uuid.Nil {
		d, err = h.deeds.FindByID(ctx, q.DeedID)
	} else {
		d, err = h.deeds.FindByDeedNumber(ctx, q.DeedNumber)
	}
	if err != nil {
		return nil, err
	}

	return &DeedView{
		ID:            d.ID(),
		DeedNumber:    d.DeedNumber(),
		SchemeID:      d.SchemeID(),
		SectionNumber: d.SectionNumber(),
		HolderID:      d.HolderID(),
		ConveyancerID: d.ConveyancerID(),
		State:         d.State(),
		NextStates:    workflow.DeedTable.NextStates(d.State()),
		ExaminerID:    d.ExaminerID(),
		Checklist:     d.Checklist(),
		Defects:       d.Defects(),
		Area:          d.Area(),
		Version:       d.Version(),
		CreatedAt:     d.CreatedAt(),
		UpdatedAt:     d.UpdatedAt(),
	}, nil
}

// GetTitleQuery fetches one title by ID or title number.
type GetTitleQuery struct {
	TitleID     uuid.UUID
	TitleNumber string
}

func (GetTitleQuery) QueryName() string { return "deeds.get_title" }

// TitleView is the read model returned across the module boundary.
type TitleView struct {
	ID                 uuid.UUID        `json:"id"`
	TitleNumber        string           `json:"title_number"`
	DeedID             uuid.UUID        `json:"deed_id"`
	SchemeID           uuid.UUID        `json:"scheme_id"`
	SectionNumber      int              `json:"section_number"`
	HolderID           uuid.UUID        `json:"holder_id"`
	State              workflow.State   `json:"state"`
	NextStates         []workflow.State `json:"next_states"`
	RegistrationNumber *string          `json:"registration_number,omitempty"`
	Version            int              `json:"version"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// GetTitleHandler handles the GetTitleQuery.
type GetTitleHandler struct {
	titles title.Repository
}

// NewGetTitleHandler creates a new GetTitleHandler.
func NewGetTitleHandler(titles title.Repository) *GetTitleHandler {
	return &GetTitleHandler{titles: titles}
}

// Handle executes the GetTitleQuery.
func (h *GetTitleHandler) Handle(ctx context.Context, q GetTitleQuery) (*TitleView, error) {
	var (
		ti  *title.Title
		err error
	)
	if q.TitleID != uuid.Nil {
		ti, err = h.titles.FindByID(ctx, q.TitleID)
	} else {
		ti, err = h.titles.FindByTitleNumber(ctx, q.TitleNumber)
	}
	if err != nil {
		return nil, err
	}

	return &TitleView{
		ID:                 ti.ID(),
		TitleNumber:        ti.TitleNumber(),
		DeedID:             ti.DeedID(),
		SchemeID:           ti.SchemeID(),
		SectionNumber:      ti.SectionNumber(),
		HolderID:           ti.HolderID(),
		State:              ti.State(),
		NextStates:         workflow.TitleTable.NextStates(ti.State()),
		RegistrationNumber: ti.RegistrationNumber(),
		Version:            ti.Version(),
		CreatedAt:          ti.CreatedAt(),
		UpdatedAt:          ti.UpdatedAt(),
	}, nil
}
