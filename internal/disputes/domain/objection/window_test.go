package objection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindowBoundsAreInclusive(t *testing.T) {
	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)

	assert.True(t, IsWithinWindow(&start, &end, start), "open at the exact start instant")
	assert.True(t, IsWithinWindow(&start, &end, end), "open at the exact end instant")
	assert.True(t, IsWithinWindow(&start, &end, start.AddDate(0, 0, 14)))

	assert.False(t, IsWithinWindow(&start, &end, start.Add(-time.Nanosecond)), "closed immediately before start")
	assert.False(t, IsWithinWindow(&start, &end, end.Add(time.Nanosecond)), "closed immediately after end")
}

func TestWindowNeverOpened(t *testing.T) {
	end := time.Now()
	assert.False(t, IsWithinWindow(nil, &end, time.Now()))
	assert.False(t, IsWithinWindow(&end, nil, time.Now()))
	assert.Equal(t, -1, DaysRemaining(nil, time.Now()))
}

func TestDaysRemaining(t *testing.T) {
	end := time.Date(2026, time.March, 31, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 10, DaysRemaining(&end, end.AddDate(0, 0, -10)))
	assert.Equal(t, 0, DaysRemaining(&end, end.Add(-time.Hour)), "closing day counts as zero")
	assert.Equal(t, -1, DaysRemaining(&end, end.Add(time.Hour)), "negative as soon as the window passes")
	assert.Equal(t, -10, DaysRemaining(&end, end.AddDate(0, 0, 10)))
}
