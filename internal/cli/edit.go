package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit [id] [new text]",
	Short: "Change a task's text",
	Long: `Change the text of a task. Time and duration stay as they are.

Example:
  dayplan edit 1756381200000 "Gym - leg day"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid task id: %s", args[0])
	}

	text := args[1]
	for _, arg := range args[2:] {
		text += " " + arg
	}

	planner, cleanup, err := openPlanner()
	if err != nil {
		return err
	}
	defer cleanup()

	tasks, err := planner.UpdateTaskText(id, text)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	for _, t := range tasks {
		if t.ID == id {
			fmt.Printf("✓ Updated: \"%s\"\n", t.Text)
			return nil
		}
	}
	fmt.Printf("No task with id %d, nothing changed.\n", id)
	return nil
}
