package plan

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbhunu/landadmin/internal/review"
	"github.com/sbhunu/landadmin/internal/shared/domain"
)

const aggregateType = "survey.plan"

// QuotasComputed fires when participation quotas are derived from areas.
type QuotasComputed struct {
	domain.BaseEvent
	PlanID       uuid.UUID `json:"plan_id"`
	SchemeID     uuid.UUID `json:"scheme_id"`
	SectionCount int       `json:"section_count"`
}

func NewQuotasComputed(planID, schemeID uuid.UUID, sectionCount int) *QuotasComputed {
	return &QuotasComputed{
		BaseEvent:    domain.NewBaseEvent(planID, aggregateType, "survey.plan.quotas_computed"),
		PlanID:       planID,
		SchemeID:     schemeID,
		SectionCount: sectionCount,
	}
}

// QuotaAdjusted fires on a manual quota override.
type QuotaAdjusted struct {
	domain.BaseEvent
	PlanID        uuid.UUID       `json:"plan_id"`
	SectionNumber int             `json:"section_number"`
	NewQuota      decimal.Decimal `json:"new_quota"`
}

func NewQuotaAdjusted(planID uuid.UUID, sectionNumber int, newQuota decimal.Decimal) *QuotaAdjusted {
	return &QuotaAdjusted{
		BaseEvent:     domain.NewBaseEvent(planID, aggregateType, "survey.plan.quota_adjusted"),
		PlanID:        planID,
		SectionNumber: sectionNumber,
		NewQuota:      newQuota,
	}
}

// PlanReviewStarted fires when the plan reaches the Surveyor-General's desk.
type PlanReviewStarted struct {
	domain.BaseEvent
	PlanID     uuid.UUID `json:"plan_id"`
	ReviewerID uuid.UUID `json:"reviewer_id"`
}

func NewPlanReviewStarted(planID, reviewerID uuid.UUID) *PlanReviewStarted {
	return &PlanReviewStarted{
		BaseEvent:  domain.NewBaseEvent(planID, aggregateType, "survey.plan.review_started"),
		PlanID:     planID,
		ReviewerID: reviewerID,
	}
}

// PlanSealed fires when the Surveyor-General seals the plan. Downstream
// deed examination binds against sealed geometry only.
type PlanSealed struct {
	domain.BaseEvent
	PlanID     uuid.UUID `json:"plan_id"`
	SchemeID   uuid.UUID `json:"scheme_id"`
	PlanNumber string    `json:"plan_number"`
}

func NewPlanSealed(planID, schemeID uuid.UUID, planNumber string) *PlanSealed {
	return &PlanSealed{
		BaseEvent:  domain.NewBaseEvent(planID, aggregateType, "survey.plan.sealed"),
		PlanID:     planID,
		SchemeID:   schemeID,
		PlanNumber: planNumber,
	}
}

// PlanDecided fires for non-sealing verdicts.
type PlanDecided struct {
	domain.BaseEvent
	PlanID   uuid.UUID       `json:"plan_id"`
	Decision review.Decision `json:"decision"`
	Notes    string          `json:"notes,omitempty"`
}

func NewPlanDecided(planID uuid.UUID, decision review.Decision, notes string) *PlanDecided {
	return &PlanDecided{
		BaseEvent: domain.NewBaseEvent(planID, aggregateType, "survey.plan.decided."+string(decision)),
		PlanID:    planID,
		Decision:  decision,
		Notes:     notes,
	}
}

// PlanAmended fires when a processed amendment rewrites sealed sections.
type PlanAmended struct {
	domain.BaseEvent
	PlanID       uuid.UUID `json:"plan_id"`
	AmendmentID  uuid.UUID `json:"amendment_id"`
	SectionCount int       `json:"section_count"`
}

func NewPlanAmended(planID, amendmentID uuid.UUID, sectionCount int) *PlanAmended {
	return &PlanAmended{
		BaseEvent:    domain.NewBaseEvent(planID, aggregateType, "survey.plan.amended"),
		PlanID:       planID,
		AmendmentID:  amendmentID,
		SectionCount: sectionCount,
	}
}

// PlanWithdrawn fires when the surveyor pulls the plan.
type PlanWithdrawn struct {
	domain.BaseEvent
	PlanID uuid.UUID `json:"plan_id"`
	Reason string    `json:"reason,omitempty"`
}

func NewPlanWithdrawn(planID uuid.UUID, reason string) *PlanWithdrawn {
	return &PlanWithdrawn{
		BaseEvent: domain.NewBaseEvent(planID, aggregateType, "survey.plan.withdrawn"),
		PlanID:    planID,
		Reason:    reason,
	}
}
