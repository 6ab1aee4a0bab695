package amendment

import (
	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/shared/domain"
	"github.com/sbhunu/landadmin/internal/workflow"
)

const aggregateType = "registry.amendment"

// AmendmentSubmitted fires when an amendment is lodged.
type AmendmentSubmitted struct {
	domain.BaseEvent
	AmendmentID uuid.UUID `json:"amendment_id"`
	SchemeID    uuid.UUID `json:"scheme_id"`
	Kind        Kind      `json:"kind"`
	SubmittedBy uuid.UUID `json:"submitted_by"`
}

func NewAmendmentSubmitted(amendmentID, schemeID uuid.UUID, kind Kind, submittedBy uuid.UUID) *AmendmentSubmitted {
	return &AmendmentSubmitted{
		BaseEvent:   domain.NewBaseEvent(amendmentID, aggregateType, "registry.amendment.submitted"),
		AmendmentID: amendmentID,
		SchemeID:    schemeID,
		Kind:        kind,
		SubmittedBy: submittedBy,
	}
}

// AmendmentDecided fires on approval or rejection.
type AmendmentDecided struct {
	domain.BaseEvent
	AmendmentID uuid.UUID      `json:"amendment_id"`
	SchemeID    uuid.UUID      `json:"scheme_id"`
	Status      workflow.State `json:"status"`
	Reason      string         `json:"reason,omitempty"`
}

func NewAmendmentDecided(amendmentID, schemeID uuid.UUID, status workflow.State, reason string) *AmendmentDecided {
	return &AmendmentDecided{
		BaseEvent:   domain.NewBaseEvent(amendmentID, aggregateType, "registry.amendment.decided."+string(status)),
		AmendmentID: amendmentID,
		SchemeID:    schemeID,
		Status:      status,
		Reason:      reason,
	}
}

// AmendmentProcessed fires exactly once, when the registry mutation lands.
type AmendmentProcessed struct {
	domain.BaseEvent
	AmendmentID  uuid.UUID `json:"amendment_id"`
	SchemeID     uuid.UUID `json:"scheme_id"`
	SectionCount int       `json:"section_count"`
}

func NewAmendmentProcessed(amendmentID, schemeID uuid.UUID, sectionCount int) *AmendmentProcessed {
	return &AmendmentProcessed{
		BaseEvent:    domain.NewBaseEvent(amendmentID, aggregateType, "registry.amendment.processed"),
		AmendmentID:  amendmentID,
		SchemeID:     schemeID,
		SectionCount: sectionCount,
	}
}
