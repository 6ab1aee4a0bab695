package dispute

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/disputes/application/commands"
)

var (
	lodgeRespondent string
	lodgeGrounds    string
)

var lodgeCmd = &cobra.Command{
	Use:   "lodge [scheme|plan|title] [subject-id]",
	Short: "Lodge a dispute against a scheme, plan or title",
	Long: `Lodge a dispute. The caller is recorded as the complainant; --against
names the respondent party where one is known.

Examples:
  landadmin dispute lodge title 2e8f... --grounds "boundary encroachment" \
    --against 9d4c...`,
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
		subjectID, err := uuid.Parse(args[1])
		if err != nil {
			return fmt.Errorf("invalid subject id %q: %w", args[1], err)
		}

		var respondentID uuid.UUID
		if lodgeRespondent != "" {
			respondentID, err = uuid.Parse(lodgeRespondent)
			if err != nil {
				return fmt.Errorf("invalid respondent id %q: %w", lodgeRespondent, err)
			}
		}

		result, err := app.LodgeDisputeHandler.Handle(cmd.Context(), commands.LodgeDisputeCommand{
			SubjectType:  args[0],
			SubjectID:    subjectID,
			RespondentID: respondentID,
			Grounds:      lodgeGrounds,
			Actor:        actor,
		})
		if err != nil {
			return fmt.Errorf("failed to lodge dispute: %w", err)
		}

		fmt.Printf("Dispute lodged: %s\n", result.DisputeID)
		return nil
	},
}

func init() {
	lodgeCmd.Flags().StringVar(&lodgeRespondent, "against", "", "respondent party id")
	lodgeCmd.Flags().StringVar(&lodgeGrounds, "grounds", "", "grounds of the dispute")
	_ = lodgeCmd.MarkFlagRequired("grounds")
}
