// Package scheme is the planning-context command group.
package scheme

import (
	"github.com/spf13/cobra"
)

// Cmd is the scheme command group
var Cmd = &cobra.Command{
	Use:   "scheme",
	Short: "Manage planning schemes",
	Long:  `Draft, submit, review, and decide sectional title planning schemes.`,
}

func init() {
	Cmd.AddCommand(draftCmd)
	Cmd.AddCommand(submitCmd)
	Cmd.AddCommand(reviewCmd)
	Cmd.AddCommand(checkCmd)
	Cmd.AddCommand(decideCmd)
	Cmd.AddCommand(windowCmd)
	Cmd.AddCommand(withdrawCmd)
	Cmd.AddCommand(showCmd)
}
