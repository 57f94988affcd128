package cli

import (
	"errors"
	"fmt"

	"github.com/existflow/dayplan/internal/model"
	"github.com/existflow/dayplan/internal/schedule"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [text]",
	Short: "Add a task to the timeline",
	Long: `Add a task to an hour slot on the daily timeline.

Examples:
  dayplan add "Gym" --at 7
  dayplan add "Lunch with Sam" --at 12 --for 60`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var (
	addHour     int
	addDuration int
)

func init() {
	addCmd.Flags().IntVar(&addHour, "at", 0, "Hour slot, 6-22 (24h clock)")
	addCmd.Flags().IntVar(&addDuration, "for", 30, "Duration in minutes (15, 30, 45, 60, 90, 120)")
	addCmd.MarkFlagRequired("at")
}

func runAdd(cmd *cobra.Command, args []string) error {
	planner, cleanup, err := openPlanner()
	if err != nil {
		return err
	}
	defer cleanup()

	text := args[0]
	for _, arg := range args[1:] {
		text += " " + arg
	}

	task, err := planner.AddTask(text, addHour, addDuration)
	if err != nil {
		var verr *schedule.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("invalid task: %s", verr.Error())
		}
		return fmt.Errorf("failed to add task: %w", err)
	}

	fmt.Printf("✓ Added at %s: \"%s\" (%d min)\n", model.FormatHour(task.Hour), task.Text, task.Duration)
	return nil
}
