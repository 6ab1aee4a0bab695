package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/planning/domain/scheme"
)

// SchemeWindows adapts the planning context's scheme repository to the
// objection gate's narrow read interface.
type SchemeWindows struct {
	schemes scheme.Repository
}

// NewSchemeWindows creates the adapter.
func NewSchemeWindows(schemes scheme.Repository) *SchemeWindows {
	return &SchemeWindows{schemes: schemes}
}

// ObjectionWindow returns the scheme's statutory window bounds. Nil bounds
// mean no window was ever opened.
func (w *SchemeWindows) ObjectionWindow(ctx context.Context, schemeID uuid.UUID) (start, end *time.Time, err error) {
	s, err := w.schemes.FindByID(ctx, schemeID)
	if err != nil {
		return nil, nil, err
	}
	start, end = s.Window()
	return start, end, nil
}
