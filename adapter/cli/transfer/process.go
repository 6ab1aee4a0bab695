package transfer

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/registry/application/commands"
)

var processCmd = &cobra.Command{
	Use:   "process [transfer-id]",
	Short: "Process an approved transfer",
	Long: `Vest the title in the new holder and issue a fresh registration
number. Processing the same transfer twice reports the number issued the
first time.`,
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
		transferID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid transfer id %q: %w", args[0], err)
		}

		result, err := app.ProcessTransferHandler.Handle(cmd.Context(), commands.ProcessTransferCommand{
			TransferID: transferID,
			Actor:      actor,
		})
		if err != nil {
			return fmt.Errorf("failed to process transfer: %w", err)
		}

		if result.AlreadyProcessed {
			fmt.Printf("Transfer already processed: %s\n", transferID)
		} else {
			fmt.Printf("Transfer processed: %s\n", transferID)
		}
		fmt.Printf("  registration number: %s\n", result.RegistrationNumber)
		return nil
	},
}
