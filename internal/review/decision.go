// Package review models the shared vocabulary of the planning review and
// deeds examination workflows: decisions, checklists and defects.
package review

import "fmt"

// Decision is a reviewer's or examiner's verdict on a submission.
type Decision string

const (
	DecisionApprove         Decision = "approve"
	DecisionReject          Decision = "reject"
	DecisionRequestRevision Decision = "request_revision"
)

// ParseDecision converts a raw string to a Decision.
func ParseDecision(s string) (Decision, error) {
	d := Decision(s)
	switch d {
	case DecisionApprove, DecisionReject, DecisionRequestRevision:
		return d, nil
	}
	return "", fmt.Errorf("%w: unknown decision %q", ErrInvalidDecision, s)
}

// RequiresReason reports whether the decision must carry notes explaining
// it. Approvals speak for themselves; rejections and revision requests must
// tell the submitting party what to fix.
func (d Decision) RequiresReason() bool {
	return d == DecisionReject || d == DecisionRequestRevision
}
