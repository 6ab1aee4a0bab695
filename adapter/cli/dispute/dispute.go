// Package dispute groups the dispute commands: lodging a dispute against a
// scheme, plan or title, and carrying it through assignment, hearing and
// resolution.
package dispute

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for the dispute group.
var Cmd = &cobra.Command{
	Use:   "dispute",
	Short: "Manage disputes",
}

func init() {
	Cmd.AddCommand(lodgeCmd)
	Cmd.AddCommand(assignCmd)
	Cmd.AddCommand(hearingCmd)
	Cmd.AddCommand(resolveCmd)
	Cmd.AddCommand(showCmd)
}
