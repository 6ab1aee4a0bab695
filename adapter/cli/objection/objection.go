// Package objection groups the statutory objection commands. Objections
// are time-gated: one can only be lodged while the scheme's objection
// window is open.
package objection

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for the objection group.
var Cmd = &cobra.Command{
	Use:   "objection",
	Short: "Manage statutory objections",
}

func init() {
	Cmd.AddCommand(submitCmd)
	Cmd.AddCommand(hearingCmd)
	Cmd.AddCommand(resolveCmd)
	Cmd.AddCommand(showCmd)
}
