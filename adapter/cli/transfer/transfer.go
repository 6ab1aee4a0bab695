// Package transfer groups the ownership transfer commands for registered
// titles.
package transfer

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for the transfer group.
var Cmd = &cobra.Command{
	Use:   "transfer",
	Short: "Manage title ownership transfers",
	Long: `Manage ownership transfers. A transfer is submitted against a
registered title, approved or rejected, then processed: processing vests
the title in the new holder and issues a fresh registration number.`,
}

func init() {
	Cmd.AddCommand(submitCmd)
	Cmd.AddCommand(decideCmd)
	Cmd.AddCommand(processCmd)
	Cmd.AddCommand(showCmd)
}
