package deed

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/deeds/application/commands"
)

var submitCmd = &cobra.Command{
	Use:   "submit [deed-id]",
	Short: "Submit a lodged deed for examination",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}
		actor, err := cli.Actor()
		if err != nil {
			return err
		}
		deedID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid deed id %q: %w", args[0], err)
		}

		if err := app.SubmitDeedHandler.Handle(cmd.Context(), commands.SubmitDeedCommand{
			DeedID: deedID,
			Actor:  actor,
		}); err != nil {
			return fmt.Errorf("failed to submit deed: %w", err)
		}

		fmt.Printf("Deed submitted: %s\n", deedID)
		return nil
	},
}
