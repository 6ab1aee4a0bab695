package dispute

import (
	"time"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/shared/domain"
)

const aggregateType = "disputes.dispute"

// DisputeLodged fires when a complainant opens a dispute.
type DisputeLodged struct {
	domain.BaseEvent
	DisputeID     uuid.UUID   `json:"dispute_id"`
	SubjectType   SubjectType `json:"subject_type"`
	SubjectID     uuid.UUID   `json:"subject_id"`
	ComplainantID uuid.UUID   `json:"complainant_id"`
}

func NewDisputeLodged(disputeID uuid.UUID, subjectType SubjectType, subjectID, complainantID uuid.UUID) *DisputeLodged {
	return &DisputeLodged{
		BaseEvent:     domain.NewBaseEvent(disputeID, aggregateType, "disputes.dispute.lodged"),
		DisputeID:     disputeID,
		SubjectType:   subjectType,
		SubjectID:     subjectID,
		ComplainantID: complainantID,
	}
}

// DisputeAssigned fires when a resolving officer takes the case.
type DisputeAssigned struct {
	domain.BaseEvent
	DisputeID  uuid.UUID `json:"dispute_id"`
	AssigneeID uuid.UUID `json:"assignee_id"`
	Authority  string    `json:"authority"`
}

func NewDisputeAssigned(disputeID, assigneeID uuid.UUID, authority string) *DisputeAssigned {
	return &DisputeAssigned{
		BaseEvent:  domain.NewBaseEvent(disputeID, aggregateType, "disputes.dispute.assigned"),
		DisputeID:  disputeID,
		AssigneeID: assigneeID,
		Authority:  authority,
	}
}

// DisputeHearingScheduled fires when a sitting is fixed.
type DisputeHearingScheduled struct {
	domain.BaseEvent
	DisputeID   uuid.UUID `json:"dispute_id"`
	HearingDate time.Time `json:"hearing_date"`
	OfficerID   uuid.UUID `json:"officer_id"`
}

func NewDisputeHearingScheduled(disputeID uuid.UUID, hearingDate time.Time, officerID uuid.UUID) *DisputeHearingScheduled {
	return &DisputeHearingScheduled{
		BaseEvent:   domain.NewBaseEvent(disputeID, aggregateType, "disputes.dispute.hearing_scheduled"),
		DisputeID:   disputeID,
		HearingDate: hearingDate,
		OfficerID:   officerID,
	}
}

// DisputeResolved fires when the case closes.
type DisputeResolved struct {
	domain.BaseEvent
	DisputeID      uuid.UUID `json:"dispute_id"`
	ResolutionType string    `json:"resolution_type"`
}

func NewDisputeResolved(disputeID uuid.UUID, resolutionType string) *DisputeResolved {
	return &DisputeResolved{
		BaseEvent:      domain.NewBaseEvent(disputeID, aggregateType, "disputes.dispute.resolved"),
		DisputeID:      disputeID,
		ResolutionType: resolutionType,
	}
}
