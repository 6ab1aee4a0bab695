package scheme

import (
	"time"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/review"
	"github.com/sbhunu/landadmin/internal/shared/domain"
)

const aggregateType = "planning.scheme"

// SchemeSubmitted fires when a draft or a revision enters the review queue.
type SchemeSubmitted struct {
	domain.BaseEvent
	SchemeID     uuid.UUID `json:"scheme_id"`
	SchemeNumber string    `json:"scheme_number"`
}

func NewSchemeSubmitted(schemeID uuid.UUID, schemeNumber string) *SchemeSubmitted {
	return &SchemeSubmitted{
		BaseEvent:    domain.NewBaseEvent(schemeID, aggregateType, "planning.scheme.submitted"),
		SchemeID:     schemeID,
		SchemeNumber: schemeNumber,
	}
}

// SchemeReviewStarted fires when a reviewer takes the scheme.
type SchemeReviewStarted struct {
	domain.BaseEvent
	SchemeID   uuid.UUID `json:"scheme_id"`
	ReviewerID uuid.UUID `json:"reviewer_id"`
}

func NewSchemeReviewStarted(schemeID, reviewerID uuid.UUID) *SchemeReviewStarted {
	return &SchemeReviewStarted{
		BaseEvent:  domain.NewBaseEvent(schemeID, aggregateType, "planning.scheme.review_started"),
		SchemeID:   schemeID,
		ReviewerID: reviewerID,
	}
}

// SchemeDecided fires once per review decision, terminal or not. The routing
// key carries the outcome so subscribers can bind to approvals alone.
type SchemeDecided struct {
	domain.BaseEvent
	SchemeID uuid.UUID       `json:"scheme_id"`
	Decision review.Decision `json:"decision"`
	Notes    string          `json:"notes,omitempty"`
}

func NewSchemeDecided(schemeID uuid.UUID, decision review.Decision, notes string) *SchemeDecided {
	return &SchemeDecided{
		BaseEvent: domain.NewBaseEvent(schemeID, aggregateType, "planning.scheme.decided."+string(decision)),
		SchemeID:  schemeID,
		Decision:  decision,
		Notes:     notes,
	}
}

// SchemeWithdrawn fires when the planner pulls the scheme.
type SchemeWithdrawn struct {
	domain.BaseEvent
	SchemeID uuid.UUID `json:"scheme_id"`
	Reason   string    `json:"reason,omitempty"`
}

func NewSchemeWithdrawn(schemeID uuid.UUID, reason string) *SchemeWithdrawn {
	return &SchemeWithdrawn{
		BaseEvent: domain.NewBaseEvent(schemeID, aggregateType, "planning.scheme.withdrawn"),
		SchemeID:  schemeID,
		Reason:    reason,
	}
}

// ObjectionWindowOpened fires when the statutory objection period is set.
type ObjectionWindowOpened struct {
	domain.BaseEvent
	SchemeID    uuid.UUID `json:"scheme_id"`
	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
}

func NewObjectionWindowOpened(schemeID uuid.UUID, start, end time.Time) *ObjectionWindowOpened {
	return &ObjectionWindowOpened{
		BaseEvent:   domain.NewBaseEvent(schemeID, aggregateType, "planning.scheme.objection_window_opened"),
		SchemeID:    schemeID,
		WindowStart: start,
		WindowEnd:   end,
	}
}
