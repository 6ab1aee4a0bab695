package cli

import (
	"encoding/json"

	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
)

// renderFailure formats a handler error for the operator. Business-rule
// failures (bad input, illegal transition, write conflict) are folded into
// the uniform result shape so scripted callers can parse them; anything
// else is an infrastructure fault and prints as-is.
func renderFailure(err error) string {
	if !sharedApplication.IsBusinessError(err) {
		return err.Error()
	}
	out, marshalErr := json.MarshalIndent(sharedApplication.Fail(err), "", "  ")
	if marshalErr != nil {
		return err.Error()
	}
	return string(out)
}
