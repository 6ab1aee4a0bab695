package objection

import (
	"time"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/shared/domain"
)

const aggregateType = "disputes.objection"

// ObjectionLodged fires when an objection lands inside the window.
type ObjectionLodged struct {
	domain.BaseEvent
	ObjectionID uuid.UUID `json:"objection_id"`
	SchemeID    uuid.UUID `json:"scheme_id"`
	ObjectorID  uuid.UUID `json:"objector_id"`
}

func NewObjectionLodged(objectionID, schemeID, objectorID uuid.UUID) *ObjectionLodged {
	return &ObjectionLodged{
		BaseEvent:   domain.NewBaseEvent(objectionID, aggregateType, "disputes.objection.lodged"),
		ObjectionID: objectionID,
		SchemeID:    schemeID,
		ObjectorID:  objectorID,
	}
}

// ObjectionHearingScheduled fires when a sitting is fixed.
type ObjectionHearingScheduled struct {
	domain.BaseEvent
	ObjectionID uuid.UUID `json:"objection_id"`
	HearingDate time.Time `json:"hearing_date"`
	OfficerID   uuid.UUID `json:"officer_id"`
}

func NewObjectionHearingScheduled(objectionID uuid.UUID, hearingDate time.Time, officerID uuid.UUID) *ObjectionHearingScheduled {
	return &ObjectionHearingScheduled{
		BaseEvent:   domain.NewBaseEvent(objectionID, aggregateType, "disputes.objection.hearing_scheduled"),
		ObjectionID: objectionID,
		HearingDate: hearingDate,
		OfficerID:   officerID,
	}
}

// ObjectionResolved fires when the objection closes.
type ObjectionResolved struct {
	domain.BaseEvent
	ObjectionID    uuid.UUID `json:"objection_id"`
	ResolutionType string    `json:"resolution_type"`
}

func NewObjectionResolved(objectionID uuid.UUID, resolutionType string) *ObjectionResolved {
	return &ObjectionResolved{
		BaseEvent:      domain.NewBaseEvent(objectionID, aggregateType, "disputes.objection.resolved"),
		ObjectionID:    objectionID,
		ResolutionType: resolutionType,
	}
}
