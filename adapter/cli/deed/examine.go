package deed

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/internal/deeds/application/commands"
)

var examineExaminer string

var examineCmd = &cobra.Command{
	Use:   "examine [deed-id]",
	Short: "Start examining a submitted deed",
	Long: `Start examining a submitted deed and record the assigned examiner.
Calling examine again on the same deed is a no-op.`,
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
		deedID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid deed id %q: %w", args[0], err)
		}

		examinerID := actor.ID
		if examineExaminer != "" {
			examinerID, err = uuid.Parse(examineExaminer)
			if err != nil {
				return fmt.Errorf("invalid examiner id %q: %w", examineExaminer, err)
			}
		}

		result, err := app.StartExaminationHandler.Handle(cmd.Context(), commands.StartExaminationCommand{
			DeedID:     deedID,
			ExaminerID: examinerID,
			Actor:      actor,
		})
		if err != nil {
			return fmt.Errorf("failed to start examination: %w", err)
		}

		if result.AlreadyStarted {
			fmt.Printf("Examination already in progress: %s\n", deedID)
			return nil
		}
		fmt.Printf("Examination started: %s\n", deedID)
		return nil
	},
}

func init() {
	examineCmd.Flags().StringVar(&examineExaminer, "examiner", "", "examiner id (defaults to the acting officer)")
}
