package review

import (
	"fmt"
	"strings"

	"github.com/sbhunu/landadmin/internal/shared/application"
)

// ErrInvalidDecision wraps application.ErrValidation for unknown decisions.
var ErrInvalidDecision = fmt.Errorf("%w: invalid decision", application.ErrValidation)

// ChecklistIncompleteError blocks an approve decision while required
// checklist items remain open. Missing names the incomplete item codes.
type ChecklistIncompleteError struct {
	Missing []string
}

func (e *ChecklistIncompleteError) Error() string {
	return fmt.Sprintf("cannot approve: required checklist items incomplete: %s", strings.Join(e.Missing, ", "))
}

func (e *ChecklistIncompleteError) Unwrap() error { return application.ErrValidation }

// MissingReasonError blocks a reject or request-revision decision submitted
// without notes.
type MissingReasonError struct {
	Decision Decision
}

func (e *MissingReasonError) Error() string {
	return fmt.Sprintf("decision %q requires a reason", e.Decision)
}

func (e *MissingReasonError) Unwrap() error { return application.ErrValidation }
