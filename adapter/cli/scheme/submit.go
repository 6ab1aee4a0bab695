package scheme

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/planning/application/commands"
)

var submitCmd = &cobra.Command{
	Use:   "submit [scheme-id]",
	Short: "Submit a drafted scheme for review",
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
		schemeID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid scheme id %q: %w", args[0], err)
		}

		if err := app.SubmitSchemeHandler.Handle(cmd.Context(), commands.SubmitSchemeCommand{
			SchemeID: schemeID,
			Actor:    actor,
		}); err != nil {
			return fmt.Errorf("failed to submit scheme: %w", err)
		}

		fmt.Printf("Scheme submitted: %s\n", schemeID)
		return nil
	},
}
