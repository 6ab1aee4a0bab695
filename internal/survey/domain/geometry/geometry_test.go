package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x, y, size float64) Ring {
	return Ring{
		{x, y}, {x + size, y}, {x + size, y + size}, {x, y + size}, {x, y},
	}
}

func TestIsClosed(t *testing.T) {
	assert.True(t, square(0, 0, 10).IsClosed())

	open := Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	assert.False(t, open.IsClosed())

	nearlyClosed := Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 1e-7}}
	assert.True(t, nearlyClosed.IsClosed())

	assert.False(t, Ring{{0, 0}, {1, 1}, {0, 0}}.IsClosed(), "degenerate ring")
}

func TestSelfIntersections(t *testing.T) {
	assert.Empty(t, square(0, 0, 10).SelfIntersections())

	// bow-tie: edges (0,0)-(10,10) and (10,0)-(0,10) cross at (5,5)
	bowtie := Ring{{0, 0}, {10, 10}, {10, 0}, {0, 10}, {0, 0}}
	crossings := bowtie.SelfIntersections()
	require.Len(t, crossings, 1)
	assert.InDelta(t, 5, crossings[0].X, 1e-9)
	assert.InDelta(t, 5, crossings[0].Y, 1e-9)
}

func TestOverlaps(t *testing.T) {
	a := square(0, 0, 10)

	assert.True(t, a.Overlaps(square(5, 5, 10)), "partial overlap")
	assert.True(t, a.Overlaps(square(2, 2, 4)), "containment")
	assert.True(t, square(2, 2, 4).Overlaps(a), "containment, reversed")
	assert.False(t, a.Overlaps(square(20, 20, 5)), "disjoint")
	assert.False(t, a.Overlaps(square(10, 0, 10)), "shared edge is not overlap")
}

func TestArea(t *testing.T) {
	assert.InDelta(t, 100, square(0, 0, 10).Area(), 1e-9)
	assert.Zero(t, Ring{{0, 0}, {1, 1}}.Area())
}

func TestValidateTopologyCleanScheme(t *testing.T) {
	report := ValidateTopology([]Boundary{
		{SectionNumber: 1, Ring: square(0, 0, 10)},
		{SectionNumber: 2, Ring: square(10, 0, 10)},
		{SectionNumber: 3, Ring: square(0, 10, 10)},
	})
	assert.True(t, report.Valid)
	assert.Empty(t, report.Errors)
}

func TestValidateTopologyReportsViolations(t *testing.T) {
	open := Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	bowtie := Ring{{20, 0}, {30, 10}, {30, 0}, {20, 10}, {20, 0}}

	report := ValidateTopology([]Boundary{
		{SectionNumber: 1, Ring: open},
		{SectionNumber: 2, Ring: bowtie},
		{SectionNumber: 3, Ring: square(27, 4, 2)},
	})

	require.False(t, report.Valid)

	var closure, selfX, overlap bool
	for _, e := range report.Errors {
		switch {
		case e.SectionNumber == 1 && e.Type == LocationPolygon && e.OtherSection == 0:
			closure = true
		case e.SectionNumber == 2 && e.Type == LocationPoint:
			selfX = true
		case e.OtherSection != 0:
			overlap = true
		}
	}
	assert.True(t, closure, "unclosed ring reported")
	assert.True(t, selfX, "self-intersection reported")
	assert.True(t, overlap, "overlap reported")
}

func TestValidateTopologyWarnsOnMissingGeometry(t *testing.T) {
	report := ValidateTopology([]Boundary{
		{SectionNumber: 1, Ring: nil},
		{SectionNumber: 2, Ring: square(0, 0, 5)},
	})
	assert.True(t, report.Valid)
	assert.Len(t, report.Warnings, 1)
}
