// Package queries implements the registry context's read side, including
// the speculative amendment validation applicants run before lodging.
package queries

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbhunu/landadmin/internal/survey/domain/geometry"
	"github.com/sbhunu/landadmin/internal/survey/domain/plan"
	"github.com/sbhunu/landadmin/internal/survey/domain/quota"
)

// SealedPlanSource reads the sealed survey plan for a scheme.
type SealedPlanSource interface {
	FindSealedByScheme(ctx context.Context, schemeID uuid.UUID) (*plan.SurveyPlan, error)
}

// ProposedSection is one section an amendment would introduce or replace.
type ProposedSection struct {
	Number    int
	FloorArea decimal.Decimal
	Boundary  geometry.Ring
}

// ValidateAmendmentQuery checks a proposed amendment against the sealed
// plan without persisting anything. Applicants call it speculatively before
// SubmitAmendment; a failing report does not block submission.
type ValidateAmendmentQuery struct {
	SchemeID    uuid.UUID
	NewSections []ProposedSection
}

func (ValidateAmendmentQuery) QueryName() string { return "registry.validate_amendment" }

// AmendmentValidation is the applicant-facing report.
type AmendmentValidation struct {
	IsValid       bool     `json:"is_valid"`
	GeometryValid bool     `json:"geometry_valid"`
	QuotaValid    bool     `json:"quota_valid"`
	Errors        []string `json:"errors,omitempty"`
	Warnings      []string `json:"warnings,omitempty"`
}

// ValidateAmendmentHandler handles the ValidateAmendmentQuery.
type ValidateAmendmentHandler struct {
	plans SealedPlanSource
}

// NewValidateAmendmentHandler creates a new ValidateAmendmentHandler.
func NewValidateAmendmentHandler(plans SealedPlanSource) *ValidateAmendmentHandler {
	return &ValidateAmendmentHandler{plans: plans}
}

// Handle executes the ValidateAmendmentQuery. The proposed sections are
// merged over the sealed layout, then the merged whole is checked: boundary
// topology on the geometry side, a recomputable 100-sum allocation on the
// quota side.
func (h *ValidateAmendmentHandler) Handle(ctx context.Context, q ValidateAmendmentQuery) (*AmendmentValidation, error) {
	result := &AmendmentValidation{}

	if len(q.NewSections) == 0 {
		result.Errors = append(result.Errors, "an amendment must propose at least one section")
		return result, nil
	}
	seen := make(map[int]struct{}, len(q.NewSections))
	for _, s := range q.NewSections {
		if _, dup := seen[s.Number]; dup {
			result.Errors = append(result.Errors, fmt.Sprintf("duplicate proposed section %d", s.Number))
			return result, nil
		}
		seen[s.Number] = struct{}{}
	}

	p, err := h.plans.FindSealedByScheme(ctx, q.SchemeID)
	if err != nil {
		if errors.Is(err, plan.ErrPlanNotFound) {
			result.Errors = append(result.Errors, "no sealed survey plan exists for this scheme")
			return result, nil
		}
		return nil, err
	}

	merged := mergeSections(p.Sections(), q.NewSections)

	boundaries := make([]geometry.Boundary, len(merged))
	shares := make([]quota.Share, len(merged))
	for i, s := range merged {
		boundaries[i] = geometry.Boundary{SectionNumber: s.Number, Ring: s.Boundary}
		shares[i] = quota.Share{SectionNumber: s.Number, FloorArea: s.FloorArea}
	}

	report := geometry.ValidateTopology(boundaries)
	result.GeometryValid = report.Valid
	for _, loc := range report.Errors {
		result.Errors = append(result.Errors, loc.Message)
	}
	result.Warnings = append(result.Warnings, report.Warnings...)

	result.QuotaValid = true
	if computed, err := quota.Calculate(shares); err != nil {
		result.QuotaValid = false
		result.Errors = append(result.Errors, fmt.Sprintf("quota allocation: %v", err))
	} else if err := quota.Validate(computed); err != nil {
		result.QuotaValid = false
		result.Errors = append(result.Errors, fmt.Sprintf("quota allocation: %v", err))
	}

	result.IsValid = result.GeometryValid && result.QuotaValid
	return result, nil
}

func mergeSections(existing []plan.Section, proposed []ProposedSection) []plan.Section {
	merged := append([]plan.Section(nil), existing...)
	for _, ps := range proposed {
		change := plan.Section{Number: ps.Number, FloorArea: ps.FloorArea, Boundary: ps.Boundary}
		replaced := false
		for i := range merged {
			if merged[i].Number == change.Number {
				merged[i] = change
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, change)
		}
	}
	return merged
}
