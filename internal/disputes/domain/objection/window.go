package objection

import (
	"fmt"
	"time"
)

// WindowClosedError reports an objection lodged outside the statutory
// window. DaysRemaining counts whole days until the window closes: zero or
// positive while it is open for other reasons to fail, negative once it has
// closed, and it is negative for a window that never opened.
type WindowClosedError struct {
	DaysRemaining int
}

func (e *WindowClosedError) Error() string {
	if e.DaysRemaining < 0 {
		return fmt.Sprintf("objection window is closed (%d days past)", -e.DaysRemaining)
	}
	return fmt.Sprintf("objection window is not open (%d days remaining)", e.DaysRemaining)
}

// IsWithinWindow reports whether now falls inside the statutory objection
// window. Both bounds are inclusive: an objection lodged at the exact start
// or end instant is in time. A nil bound means no window was ever opened.
func IsWithinWindow(start, end *time.Time, now time.Time) bool {
	if start == nil || end == nil {
		return false
	}
	return !now.Before(*start) && !now.After(*end)
}

// DaysRemaining counts whole days from now until the window's end. Negative
// once the window has passed, even within the first day after closing.
func DaysRemaining(end *time.Time, now time.Time) int {
	if end == nil {
		return -1
	}
	d := end.Sub(now)
	days := int(d.Hours() / 24)
	if d < 0 && days == 0 {
		days = -1
	}
	return days
}
