// Package deed groups the sectional title deed commands: lodgement,
// examination, registration and cross-validation against the sealed plan.
package deed

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for the deed group.
var Cmd = &cobra.Command{
	Use:   "deed",
	Short: "Manage sectional title deeds",
	Long: `Manage sectional title deeds: lodge a deed against a sealed plan's
section, carry it through examination, and register it to open a title.`,
}

func init() {
	Cmd.AddCommand(lodgeCmd)
	Cmd.AddCommand(submitCmd)
	Cmd.AddCommand(examineCmd)
	Cmd.AddCommand(decideCmd)
	Cmd.AddCommand(registerCmd)
	Cmd.AddCommand(crossvalidateCmd)
	Cmd.AddCommand(showCmd)
}
