package scheme

import (
	"context"
	"errors"

	"github.com/sbhunu/landadmin/internal/shared/domain"
)

// ErrSchemeNotFound is returned when no scheme matches the lookup.
var ErrSchemeNotFound = errors.New("scheme not found")

// Repository persists schemes with optimistic concurrency.
type Repository interface {
	domain.Repository[*Scheme]
	FindBySchemeNumber(ctx context.Context, schemeNumber string) (*Scheme, error)
}
