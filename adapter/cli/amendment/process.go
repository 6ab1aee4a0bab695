package amendment

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/registry/application/commands"
)

var processCmd = &cobra.Command{
	Use:   "process [amendment-id]",
	Short: "Process an approved amendment into the registry",
	Long: `Apply an approved amendment: the sealed plan's sections are
rewritten and quotas recomputed. Processing the same amendment twice is a
no-op.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}
		actor, err := cli.Actor()
		if err != nil {
			return err
		}
		amendmentID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid amendment id %q: %w", args[0], err)
		}

		result, err := app.ProcessAmendmentHandler.Handle(cmd.Context(), commands.ProcessAmendmentCommand{
			AmendmentID: amendmentID,
			Actor:       actor,
		})
		if err != nil {
			return fmt.Errorf("failed to process amendment: %w", err)
		}

		if result.AlreadyProcessed {
			fmt.Printf("Amendment already processed: %s\n", amendmentID)
			return nil
		}
		fmt.Printf("Amendment processed: %s\n", amendmentID)
		return nil
	},
}
