// Package title groups the sectional title commands: the review a title
// goes through after its deed is registered, and final registration.
package title

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for the title group.
var Cmd = &cobra.Command{
	Use:   "title",
	Short: "Manage sectional titles",
}

func init() {
	Cmd.AddCommand(reviewCmd)
	Cmd.AddCommand(registerCmd)
	Cmd.AddCommand(showCmd)
}
