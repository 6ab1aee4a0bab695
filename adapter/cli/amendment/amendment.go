// Package amendment groups the scheme amendment commands: section splits,
// extensions and boundary corrections applied to a sealed plan after its
// scheme is approved.
package amendment

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for the amendment group.
var Cmd = &cobra.Command{
	Use:   "amendment",
	Short: "Manage scheme amendments",
	Long: `Manage scheme amendments. An amendment is the only path that
rewrites a sealed plan: it is validated, approved, then processed, at
which point the plan's sections are replaced and quotas recomputed.`,
}

func init() {
	Cmd.AddCommand(submitCmd)
	Cmd.AddCommand(validateCmd)
	Cmd.AddCommand(decideCmd)
	Cmd.AddCommand(processCmd)
	Cmd.AddCommand(showCmd)
}
