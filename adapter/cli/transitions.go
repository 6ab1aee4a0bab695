package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	sharedQueries "github.com/sbhunu/landadmin/internal/shared/application/queries"
)

var transitionsCmd = &cobra.Command{
	Use:   "transitions [entity-id]",
	Short: "Show the transition history of a record",
	Long: `Show every recorded state transition for a scheme, plan, deed, title,
amendment, transfer, dispute, or objection. The history is append-only;
this is the audit trail examiners and courts read.

Examples:
  landadmin transitions 6f1c6e0a-6f0f-4b0c-9f2a-6f1c6e0a6f0f`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := RequireApp()
		if err != nil {
			return err
		}

		entityID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid entity id: %w", err)
		}

		transitions, err := app.ListTransitionsHandler.Handle(cmd.Context(), sharedQueries.ListTransitionsQuery{
			EntityID: entityID,
		})
		if err != nil {
			return fmt.Errorf("failed to list transitions: %w", err)
		}
		if len(transitions) == 0 {
			fmt.Println("no transitions recorded")
			return nil
		}

		for _, tr := range transitions {
			fmt.Printf("%s  %-10s  %s -> %s  by %s",
				tr.OccurredAt.Format("2006-01-02 15:04:05"),
				tr.Domain,
				tr.From,
				tr.To,
				tr.ActorID,
			)
			if tr.Reason != "" {
				fmt.Printf("  (%s)", tr.Reason)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(transitionsCmd)
}
