package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show productivity statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	planner, cleanup, err := openPlanner()
	if err != nil {
		return err
	}
	defer cleanup()

	stats, err := planner.Stats()
	if err != nil {
		return fmt.Errorf("failed to compute stats: %w", err)
	}

	fmt.Printf("Tasks planned:  %d\n", stats.TotalTasks)
	fmt.Printf("Hours planned:  %.1f\n", stats.TotalHours)
	fmt.Printf("Productivity:   %d%%\n", stats.Productivity)
	return nil
}
