package objection

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
	Use:   "resolve [objection-id] [resolution-type]",
	Short: "Resolve an objection with a recorded outcome",
	Long: `Close an objection. The resolution type classifies the outcome;
--document references the determination document where one exists.

Examples:
  landadmin objection resolve 4b9a... dismissed --text "parking meets the minimum"`,
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
		objectionID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid objection id %q: %w", args[0], err)
		}

		if err := app.ProgressObjectionHandler.HandleResolve(cmd.Context(), commands.ResolveObjectionCommand{
			ObjectionID:    objectionID,
			ResolutionType: args[1],
			ResolutionText: resolveText,
			DocumentRef:    resolveDocument,
			Actor:          actor,
		}); err != nil {
			return fmt.Errorf("failed to resolve objection: %w", err)
		}

		fmt.Printf("Objection resolved: %s %s\n", objectionID, args[1])
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringVar(&resolveText, "text", "", "resolution text")
	resolveCmd.Flags().StringVar(&resolveDocument, "document", "", "determination document reference")
	_ = resolveCmd.MarkFlagRequired("text")
}
