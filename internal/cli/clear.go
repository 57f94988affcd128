package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear all tasks on the timeline",
	Long:  `Remove every task from the active schedule. This cannot be undone.`,
	RunE:  runClear,
}

var clearForce bool

func init() {
	clearCmd.Flags().BoolVarP(&clearForce, "force", "f", false, "Do not ask for confirmation")
}

func runClear(cmd *cobra.Command, args []string) error {
	if !clearForce {
		fmt.Print("Clear all tasks? This cannot be undone. (y/N): ")
		var response string
		_, _ = fmt.Scanln(&response)
		if strings.ToLower(response) != "y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	planner, cleanup, err := openPlanner()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := planner.ClearTasks(); err != nil {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}

	fmt.Println("🧹 All tasks cleared.")
	return nil
}
