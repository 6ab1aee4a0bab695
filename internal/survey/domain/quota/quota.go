// Package quota computes participation quotas: each section's percentage
// share of a scheme's common property, derived from floor areas. All
// arithmetic is decimal to keep the 100% invariant exact across drivers and
// platforms.
package quota

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/sbhunu/landadmin/internal/shared/application"
)

// Places is the fixed precision quotas are rounded to.
const Places = 4

// Tolerance is the accepted drift when validating that a quota set sums
// to 100.
var Tolerance = decimal.NewFromFloat(0.01)

var hundred = decimal.NewFromInt(100)

var (
	ErrNoSections       = fmt.Errorf("%w: at least one section is required", application.ErrValidation)
	ErrNonPositiveTotal = fmt.Errorf("%w: total floor area must be positive", application.ErrValidation)
	ErrUnknownSection   = fmt.Errorf("%w: unknown section number", application.ErrValidation)
)

// OutOfRangeError reports a quota outside [0, 100].
type OutOfRangeError struct {
	SectionNumber int
	Quota         decimal.Decimal
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("quota %s for section %d is outside [0, 100]", e.Quota, e.SectionNumber)
}

func (e *OutOfRangeError) Unwrap() error { return application.ErrValidation }

// SumError reports a quota set whose total drifts from 100 beyond tolerance.
type SumError struct {
	Sum decimal.Decimal
}

func (e *SumError) Error() string {
	return fmt.Sprintf("quotas sum to %s, expected 100", e.Sum)
}

func (e *SumError) Unwrap() error { return application.ErrValidation }

// Share is one section's floor area and its computed quota.
type Share struct {
	SectionNumber int
	FloorArea     decimal.Decimal
	Quota         decimal.Decimal
}

// Calculate derives quotas from floor areas: area_i / total * 100, rounded
// to four decimal places. Rounding drift is allocated to the largest section
// (lowest section number on a tie) so the set sums to exactly 100.
func Calculate(shares []Share) ([]Share, error) {
	if len(shares) == 0 {
		return nil, ErrNoSections
	}

	total := decimal.Zero
	for _, s := range shares {
		if s.FloorArea.IsNegative() {
			return nil, fmt.Errorf("%w: section %d has negative floor area", application.ErrValidation, s.SectionNumber)
		}
		total = total.Add(s.FloorArea)
	}
	if !total.IsPositive() {
		return nil, ErrNonPositiveTotal
	}

	out := make([]Share, len(shares))
	sum := decimal.Zero
	for i, s := range shares {
		s.Quota = s.FloorArea.Div(total).Mul(hundred).Round(Places)
		out[i] = s
		sum = sum.Add(s.Quota)
	}

	if residual := hundred.Sub(sum); !residual.IsZero() {
		i := largestShareIndex(out)
		out[i].Quota = out[i].Quota.Add(residual)
	}
	return out, nil
}

// Adjust fixes one section's quota by hand and redistributes the remainder
// across the other sections in proportion to their floor areas, with the
// same residual rule.
func Adjust(shares []Share, sectionNumber int, newQuota decimal.Decimal) ([]Share, error) {
	if len(shares) == 0 {
		return nil, ErrNoSections
	}
	if newQuota.IsNegative() || newQuota.GreaterThan(hundred) {
		return nil, &OutOfRangeError{SectionNumber: sectionNumber, Quota: newQuota}
	}

	target := -1
	restTotal := decimal.Zero
	for i, s := range shares {
		if s.SectionNumber == sectionNumber {
			target = i
			continue
		}
		restTotal = restTotal.Add(s.FloorArea)
	}
	if target == -1 {
		return nil, fmt.Errorf("%w %d", ErrUnknownSection, sectionNumber)
	}

	out := make([]Share, len(shares))
	copy(out, shares)
	out[target].Quota = newQuota.Round(Places)

	remaining := hundred.Sub(out[target].Quota)
	if len(shares) == 1 {
		if !remaining.IsZero() {
			return nil, &SumError{Sum: out[target].Quota}
		}
		return out, nil
	}
	if !restTotal.IsPositive() {
		return nil, ErrNonPositiveTotal
	}

	sum := out[target].Quota
	for i := range out {
		if i == target {
			continue
		}
		out[i].Quota = out[i].FloorArea.Div(restTotal).Mul(remaining).Round(Places)
		sum = sum.Add(out[i].Quota)
	}

	if residual := hundred.Sub(sum); !residual.IsZero() {
		best := -1
		for i := range out {
			if i == target {
				continue
			}
			if best == -1 {
				best = i
				continue
			}
			switch out[i].FloorArea.Cmp(out[best].FloorArea) {
			case 1:
				best = i
			case 0:
				if out[i].SectionNumber < out[best].SectionNumber {
					best = i
				}
			}
		}
		out[best].Quota = out[best].Quota.Add(residual)
	}
	return out, nil
}

// Validate checks the quota invariant: every quota in [0, 100] and the set
// summing to 100 within tolerance.
func Validate(shares []Share) error {
	if len(shares) == 0 {
		return ErrNoSections
	}
	sum := decimal.Zero
	for _, s := range shares {
		if s.Quota.IsNegative() || s.Quota.GreaterThan(hundred) {
			return &OutOfRangeError{SectionNumber: s.SectionNumber, Quota: s.Quota}
		}
		sum = sum.Add(s.Quota)
	}
	if sum.Sub(hundred).Abs().GreaterThan(Tolerance) {
		return &SumError{Sum: sum}
	}
	return nil
}

// largestShareIndex picks the section the residual goes to: largest floor
// area, lowest section number on a tie.
func largestShareIndex(shares []Share) int {
	best := 0
	for i := 1; i < len(shares); i++ {
		switch shares[i].FloorArea.Cmp(shares[best].FloorArea) {
		case 1:
			best = i
		case 0:
			if shares[i].SectionNumber < shares[best].SectionNumber {
				best = i
			}
		}
	}
	return best
}

// Sorted returns the shares ordered by section number; helpers and reports
// present quotas deterministically.
func Sorted(shares []Share) []Share {
	out := append([]Share(nil), shares...)
	sort.Slice(out, func(i, j int) bool { return out[i].SectionNumber < out[j].SectionNumber })
	return out
}
