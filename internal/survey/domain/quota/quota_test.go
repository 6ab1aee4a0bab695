package quota

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shares(areas ...float64) []Share {
	out := make([]Share, len(areas))
	for i, a := range areas {
		out[i] = Share{SectionNumber: i + 1, FloorArea: decimal.NewFromFloat(a)}
	}
	return out
}

func sum(shares []Share) decimal.Decimal {
	total := decimal.Zero
	for _, s := range shares {
		total = total.Add(s.Quota)
	}
	return total
}

func TestCalculateThreeSections(t *testing.T) {
	// 100 + 100 + 101 = 301: raw quotas round to 33.2226, 33.2226, 33.5548
	// and already sum to 100 exactly.
	out, err := Calculate(shares(100, 100, 101))
	require.NoError(t, err)

	assert.Equal(t, "33.2226", out[0].Quota.StringFixed(4))
	assert.Equal(t, "33.2226", out[1].Quota.StringFixed(4))
	assert.Equal(t, "33.5548", out[2].Quota.StringFixed(4))
	assert.True(t, sum(out).Equal(decimal.NewFromInt(100)))
	assert.NoError(t, Validate(out))
}

func TestCalculateAllocatesResidualToLargestSection(t *testing.T) {
	// three equal thirds round to 33.3333 each, leaving 0.0001 to place
	out, err := Calculate(shares(50, 50, 50))
	require.NoError(t, err)

	assert.Equal(t, "33.3334", out[0].Quota.StringFixed(4), "tie goes to the lowest section number")
	assert.Equal(t, "33.3333", out[1].Quota.StringFixed(4))
	assert.Equal(t, "33.3333", out[2].Quota.StringFixed(4))
	assert.True(t, sum(out).Equal(decimal.NewFromInt(100)))
}

func TestCalculateResidualPrefersLargerArea(t *testing.T) {
	// 25 + 25 + 50 is exact, nothing is left to place
	out, err := Calculate(shares(50, 50, 100))
	require.NoError(t, err)
	assert.Equal(t, "25.0000", out[0].Quota.StringFixed(4))
	assert.Equal(t, "25.0000", out[1].Quota.StringFixed(4))
	assert.Equal(t, "50.0000", out[2].Quota.StringFixed(4))

	// sixths round to 16.6667 + 16.6667 + 66.6667 = 100.0001, and the
	// carry lands on the largest section, not on the first
	out, err = Calculate(shares(10, 10, 40))
	require.NoError(t, err)
	assert.Equal(t, "16.6667", out[0].Quota.StringFixed(4))
	assert.Equal(t, "16.6667", out[1].Quota.StringFixed(4))
	assert.Equal(t, "66.6666", out[2].Quota.StringFixed(4))
	assert.True(t, sum(out).Equal(decimal.NewFromInt(100)))
}

func TestCalculateSingleSection(t *testing.T) {
	out, err := Calculate(shares(42.5))
	require.NoError(t, err)
	assert.True(t, out[0].Quota.Equal(decimal.NewFromInt(100)))
}

func TestCalculateRejectsBadInput(t *testing.T) {
	_, err := Calculate(nil)
	assert.ErrorIs(t, err, ErrNoSections)

	_, err = Calculate(shares(0, 0))
	assert.ErrorIs(t, err, ErrNonPositiveTotal)

	bad := shares(10)
	bad[0].FloorArea = decimal.NewFromInt(-5)
	_, err = Calculate(bad)
	assert.Error(t, err)
}

func TestAdjustRedistributesRemainder(t *testing.T) {
	base, err := Calculate(shares(100, 100, 101))
	require.NoError(t, err)

	out, err := Adjust(base, 3, decimal.NewFromInt(40))
	require.NoError(t, err)

	assert.Equal(t, "40.0000", out[2].Quota.StringFixed(4))
	assert.Equal(t, "30.0000", out[0].Quota.StringFixed(4))
	assert.Equal(t, "30.0000", out[1].Quota.StringFixed(4))
	assert.True(t, sum(out).Equal(decimal.NewFromInt(100)))
	assert.NoError(t, Validate(out))
}

func TestAdjustOutOfRange(t *testing.T) {
	base := shares(100, 100)

	_, err := Adjust(base, 1, decimal.NewFromFloat(100.5))
	var oor *OutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, 1, oor.SectionNumber)

	_, err = Adjust(base, 1, decimal.NewFromInt(-1))
	assert.ErrorAs(t, err, &oor)
}

func TestAdjustUnknownSection(t *testing.T) {
	_, err := Adjust(shares(100, 100), 9, decimal.NewFromInt(50))
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestAdjustKeepsSumExactUnderDrift(t *testing.T) {
	base, err := Calculate(shares(10, 20, 30, 40))
	require.NoError(t, err)

	out, err := Adjust(base, 1, decimal.NewFromFloat(3.3333))
	require.NoError(t, err)
	assert.True(t, sum(out).Equal(decimal.NewFromInt(100)))
}

func TestValidate(t *testing.T) {
	ok := []Share{
		{SectionNumber: 1, Quota: decimal.NewFromFloat(60)},
		{SectionNumber: 2, Quota: decimal.NewFromFloat(40.005)},
	}
	assert.NoError(t, Validate(ok))

	drifted := []Share{
		{SectionNumber: 1, Quota: decimal.NewFromFloat(60)},
		{SectionNumber: 2, Quota: decimal.NewFromFloat(40.02)},
	}
	var sumErr *SumError
	assert.ErrorAs(t, Validate(drifted), &sumErr)

	negative := []Share{{SectionNumber: 1, Quota: decimal.NewFromInt(-1)}}
	var oor *OutOfRangeError
	assert.ErrorAs(t, Validate(negative), &oor)
}
