// Package queries implements the read side of the deeds context, including
// the cross-validation check examiners run against sealed survey geometry.
package queries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbhunu/landadmin/internal/deeds/domain/deed"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/cache"
	"github.com/sbhunu/landadmin/internal/survey/domain/plan"
)

// areaTolerancePercent is the relative area difference below which a
// deed/plan disagreement is only a warning.
var areaTolerancePercent = decimal.NewFromFloat(0.5)

// sealedPlanTTL bounds cache entries. Sealed plans are immutable, so the
// TTL exists only to reclaim space.
const sealedPlanTTL = 24 * time.Hour

// SealedPlanSource reads the sealed survey plan for a scheme.
type SealedPlanSource interface {
	FindSealedByScheme(ctx context.Context, schemeID uuid.UUID) (*plan.SurveyPlan, error)
}

// CrossValidateQuery compares a deed's sectional data against the sealed
// survey plan. Pure read: it never mutates state and is callable
// independently of the decision flow.
type CrossValidateQuery struct {
	DeedID uuid.UUID
}

func (CrossValidateQuery) QueryName() string { return "deeds.cross_validate" }

// CrossValidation is the examiner-facing comparison result.
type CrossValidation struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// cachedSection is the cache representation of a sealed plan section.
type cachedSection struct {
	Number    int             `json:"number"`
	FloorArea decimal.Decimal `json:"floor_area"`
	Quota     decimal.Decimal `json:"quota"`
}

// CrossValidateHandler handles the CrossValidateQuery. Sealed sections are
// read through the cache: a sealed plan never changes, so the first load
// serves every later examination of the scheme.
type CrossValidateHandler struct {
	deeds  deed.Repository
	plans  SealedPlanSource
	cache  cache.Cache
	logger *slog.Logger
}

// NewCrossValidateHandler creates a new CrossValidateHandler.
func NewCrossValidateHandler(deeds deed.Repository, plans SealedPlanSource, c cache.Cache, logger *slog.Logger) *CrossValidateHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CrossValidateHandler{deeds: deeds, plans: plans, cache: c, logger: logger}
}

// Handle executes the CrossValidateQuery.
func (h *CrossValidateHandler) Handle(ctx context.Context, q CrossValidateQuery) (*CrossValidation, error) {
	d, err := h.deeds.FindByID(ctx, q.DeedID)
	if err != nil {
		return nil, err
	}

	sections, err := h.sealedSections(ctx, d.SchemeID())
	if err != nil {
		if errors.Is(err, plan.ErrPlanNotFound) {
			return &CrossValidation{
				IsValid: false,
				Errors:  []string{"no sealed survey plan exists for this scheme"},
			}, nil
		}
		return nil, err
	}

	result := &CrossValidation{IsValid: true}
	var section *cachedSection
	for i := range sections {
		if sections[i].Number == d.SectionNumber() {
			section = &sections[i]
			break
		}
	}
	if section == nil {
		result.IsValid = false
		result.Errors = append(result.Errors,
			fmt.Sprintf("section %d does not exist on the sealed plan", d.SectionNumber()))
		return result, nil
	}

	if !d.Area().IsZero() && !section.FloorArea.IsZero() {
		diff := d.Area().Sub(section.FloorArea).Abs().
			Div(section.FloorArea).Mul(decimal.NewFromInt(100))
		switch {
		case diff.GreaterThan(areaTolerancePercent.Mul(decimal.NewFromInt(10))):
			result.IsValid = false
			result.Errors = append(result.Errors,
				fmt.Sprintf("deed area %s disagrees with sealed area %s by %s%%",
					d.Area(), section.FloorArea, diff.Round(2)))
		case diff.GreaterThan(areaTolerancePercent):
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("deed area %s differs from sealed area %s by %s%%",
					d.Area(), section.FloorArea, diff.Round(2)))
		}
	}
	if section.Quota.IsZero() {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("sealed plan carries no participation quota for section %d", section.Number))
	}
	return result, nil
}

func (h *CrossValidateHandler) sealedSections(ctx context.Context, schemeID uuid.UUID) ([]cachedSection, error) {
	key := "sealed_plan:" + schemeID.String()

	if h.cache != nil {
		if raw, err := h.cache.Get(ctx, key); err == nil {
			var sections []cachedSection
			if err := json.Unmarshal(raw, &sections); err == nil {
				return sections, nil
			}
			// corrupt entry: fall through to the repository and rewrite
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			h.logger.Warn("sealed plan cache read failed", "scheme_id", schemeID, "error", err)
		}
	}

	p, err := h.plans.FindSealedByScheme(ctx, schemeID)
	if err != nil {
		return nil, err
	}
	sections := make([]cachedSection, 0, len(p.Sections()))
	for _, s := range p.Sections() {
		sections = append(sections, cachedSection{Number: s.Number, FloorArea: s.FloorArea, Quota: s.Quota})
	}

	if h.cache != nil {
		if raw, err := json.Marshal(sections); err == nil {
			if err := h.cache.Set(ctx, key, raw, sealedPlanTTL); err != nil {
				h.logger.Warn("sealed plan cache write failed", "scheme_id", schemeID, "error", err)
			}
		}
	}
	return sections, nil
}
