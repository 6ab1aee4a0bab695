package title

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GenerateRegistrationNumber issues a registry number for a registration or
// transfer. The year prefix matches the registry's filing convention; the
// suffix is random, not sequential, so concurrent registrars never collide.
func GenerateRegistrationNumber(now time.Time) string {
	id := uuid.New()
	return fmt.Sprintf("REG-%d-%08X", now.Year(), id.ID())
}
