package dispute

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/disputes/application/commands"
)

var (
	resolveText     string
	resolveDocument string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [dispute-id] [resolution-type]",
	Short: "Resolve a dispute with a recorded outcome",
	Long: `Close a dispute. The resolution type classifies the outcome (for
example upheld, dismissed, settled); --document references the ruling or
settlement document where one exists.

Examples:
  landadmin dispute resolve 6c2d... dismissed --text "no encroachment found"
  landadmin dispute resolve 6c2d... upheld --text "boundary to be resurveyed" \
    --document RULING-2026-081`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}
		actor, err := cli.Actor()
		if err != nil {
			return err
		}
		disputeID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid dispute id %q: %w", args[0], err)
		}

		if err := app.ProgressDisputeHandler.HandleResolve(cmd.Context(), commands.ResolveDisputeCommand{
			DisputeID:      disputeID,
			ResolutionType: args[1],
			ResolutionText: resolveText,
			DocumentRef:    resolveDocument,
			Actor:          actor,
		}); err != nil {
			return fmt.Errorf("failed to resolve dispute: %w", err)
		}

		fmt.Printf("Dispute resolved: %s %s\n", disputeID, args[1])
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringVar(&resolveText, "text", "", "resolution text")
	resolveCmd.Flags().StringVar(&resolveDocument, "document", "", "ruling or settlement document reference")
	_ = resolveCmd.MarkFlagRequired("text")
}
