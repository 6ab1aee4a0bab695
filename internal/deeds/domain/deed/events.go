package deed

import (
	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/review"
	"github.com/sbhunu/landadmin/internal/shared/domain"
)

const aggregateType = "deeds.deed"

// DeedSubmitted fires when a draft or corrected revision is lodged.
type DeedSubmitted struct {
	domain.BaseEvent
	DeedID     uuid.UUID `json:"deed_id"`
	DeedNumber string    `json:"deed_number"`
}

func NewDeedSubmitted(deedID uuid.UUID, deedNumber string) *DeedSubmitted {
	return &DeedSubmitted{
		BaseEvent:  domain.NewBaseEvent(deedID, aggregateType, "deeds.deed.submitted"),
		DeedID:     deedID,
		DeedNumber: deedNumber,
	}
}

// ExaminationStarted fires when an examiner takes the deed.
type ExaminationStarted struct {
	domain.BaseEvent
	DeedID     uuid.UUID `json:"deed_id"`
	ExaminerID uuid.UUID `json:"examiner_id"`
}

func NewExaminationStarted(deedID, examinerID uuid.UUID) *ExaminationStarted {
	return &ExaminationStarted{
		BaseEvent:  domain.NewBaseEvent(deedID, aggregateType, "deeds.deed.examination_started"),
		DeedID:     deedID,
		ExaminerID: examinerID,
	}
}

// DeedDecided fires once per examination decision.
type DeedDecided struct {
	domain.BaseEvent
	DeedID      uuid.UUID       `json:"deed_id"`
	Decision    review.Decision `json:"decision"`
	Notes       string          `json:"notes,omitempty"`
	DefectCount int             `json:"defect_count"`
}

func NewDeedDecided(deedID uuid.UUID, decision review.Decision, notes string, defectCount int) *DeedDecided {
	return &DeedDecided{
		BaseEvent:   domain.NewBaseEvent(deedID, aggregateType, "deeds.deed.decided."+string(decision)),
		DeedID:      deedID,
		Decision:    decision,
		Notes:       notes,
		DefectCount: defectCount,
	}
}

// DeedRegistered fires when an approved deed reaches the register; the
// registry context reacts by opening the title record.
type DeedRegistered struct {
	domain.BaseEvent
	DeedID        uuid.UUID `json:"deed_id"`
	SchemeID      uuid.UUID `json:"scheme_id"`
	SectionNumber int       `json:"section_number"`
	HolderID      uuid.UUID `json:"holder_id"`
}

func NewDeedRegistered(deedID, schemeID uuid.UUID, sectionNumber int, holderID uuid.UUID) *DeedRegistered {
	return &DeedRegistered{
		BaseEvent:     domain.NewBaseEvent(deedID, aggregateType, "deeds.deed.registered"),
		DeedID:        deedID,
		SchemeID:      schemeID,
		SectionNumber: sectionNumber,
		HolderID:      holderID,
	}
}

// DeedWithdrawn fires when the conveyancer pulls the draft.
type DeedWithdrawn struct {
	domain.BaseEvent
	DeedID uuid.UUID `json:"deed_id"`
	Reason string    `json:"reason,omitempty"`
}

func NewDeedWithdrawn(deedID uuid.UUID, reason string) *DeedWithdrawn {
	return &DeedWithdrawn{
		BaseEvent: domain.NewBaseEvent(deedID, aggregateType, "deeds.deed.withdrawn"),
		DeedID:    deedID,
		Reason:    reason,
	}
}
