// Package quota groups the participation quota commands. Quotas are
// computed from floor areas and must sum to exactly 100 percent at four
// decimal places before a plan can be sealed.
package quota

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for the quota group.
var Cmd = &cobra.Command{
	Use:   "quota",
	Short: "Compute and adjust participation quotas",
}

func init() {
	Cmd.AddCommand(computeCmd)
	Cmd.AddCommand(adjustCmd)
}
