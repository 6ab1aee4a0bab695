// Package survey groups the sectional plan commands: drafting, review,
// decision, topology validation and withdrawal.
package survey

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for the survey group.
var Cmd = &cobra.Command{
	Use:   "survey",
	Short: "Manage sectional survey plans",
	Long: `Manage sectional survey plans through their lifecycle: draft a plan
against an approved scheme, validate section boundaries, compute quotas,
and carry the plan through review to sealing.`,
}

func init() {
	Cmd.AddCommand(draftCmd)
	Cmd.AddCommand(reviewCmd)
	Cmd.AddCommand(decideCmd)
	Cmd.AddCommand(validateCmd)
	Cmd.AddCommand(withdrawCmd)
	Cmd.AddCommand(showCmd)
}
