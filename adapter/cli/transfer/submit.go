package transfer

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/registry/application/commands"
)

var submitTo string

var submitCmd = &cobra.Command{
	Use:   "submit [title-id]",
	Short: "Submit an ownership transfer for a registered title",
	Long: `Submit a transfer of a registered title to a new holder. The
outgoing holder is read from the title itself.

Examples:
  landadmin transfer submit 2e8f... --to 9d4c...`,
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
		titleID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid title id %q: %w", args[0], err)
		}
		toHolderID, err := uuid.Parse(submitTo)
		if err != nil {
			return fmt.Errorf("invalid holder id %q: %w", submitTo, err)
		}

		result, err := app.SubmitTransferHandler.Handle(cmd.Context(), commands.SubmitTransferCommand{
			TitleID:    titleID,
			ToHolderID: toHolderID,
			Actor:      actor,
		})
		if err != nil {
			return fmt.Errorf("failed to submit transfer: %w", err)
		}

		fmt.Printf("Transfer submitted: %s\n", result.TransferID)
		return nil
	},
}

func init() {
	submitCmd.Flags().StringVar(&submitTo, "to", "", "incoming holder party id")
	_ = submitCmd.MarkFlagRequired("to")
}
