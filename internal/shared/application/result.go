package application

import (
	"errors"

	"github.com/sbhunu/landadmin/internal/shared/domain"
	"github.com/sbhunu/landadmin/internal/workflow"
)

// Result is the uniform shape every operation returns across the module
// boundary. Validation and business-rule failures are folded into it rather
// than raised; only infrastructure failures travel separately as errors.
type Result struct {
	Success  bool     `json:"success"`
	Error    string   `json:"error,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// OK builds a successful result, optionally carrying warnings.
func OK(warnings ...string) Result {
	return Result{Success: true, Warnings: warnings}
}

// Fail folds a business-rule or validation error into the result shape.
func Fail(err error) Result {
	if err == nil {
		return OK()
	}
	return Result{Success: false, Error: err.Error()}
}

// IsBusinessError reports whether err belongs to the recoverable taxonomy
// (bad input, illegal transition, failed precondition, write conflict) as
// opposed to an infrastructure failure. Boundary adapters use this to decide
// between a precise user-facing message and a generic one.
func IsBusinessError(err error) bool {
	return errors.Is(err, workflow.ErrIllegalTransition) ||
		errors.Is(err, workflow.ErrInvalidState) ||
		errors.Is(err, domain.ErrConcurrentModification) ||
		errors.Is(err, ErrValidation)
}

// ErrValidation is the root of the user-input error taxonomy. Context
// packages wrap it (directly or via their typed errors) so adapters can
// classify without knowing every concrete type.
var ErrValidation = errors.New("validation failed")
