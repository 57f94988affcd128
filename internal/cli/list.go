package cli

import (
	"fmt"

	"github.com/existflow/dayplan/internal/model"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show the daily timeline",
	RunE:    runList,
}

var listAllSlots bool

func init() {
	listCmd.Flags().BoolVarP(&listAllSlots, "all", "a", false, "Show empty hour slots too")
}

func runList(cmd *cobra.Command, args []string) error {
	planner, cleanup, err := openPlanner()
	if err != nil {
		return err
	}
	defer cleanup()

	account, err := planner.CurrentAccount()
	if err != nil {
		return err
	}
	tasks, err := planner.Tasks()
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	if account != nil {
		fmt.Printf("Schedule for %s <%s>\n\n", account.Name, account.Email)
	} else {
		fmt.Printf("Schedule (not signed in)\n\n")
	}

	// Group by hour slot; insertion order within a slot is preserved.
	byHour := make(map[int][]model.Task)
	for _, t := range tasks {
		byHour[t.Hour] = append(byHour[t.Hour], t)
	}

	for hour := model.DayStart; hour <= model.DayEnd; hour++ {
		slot := byHour[hour]
		if len(slot) == 0 && !listAllSlots {
			continue
		}
		fmt.Printf("%6s", model.FormatHour(hour))
		if len(slot) == 0 {
			fmt.Println("  -")
			continue
		}
		for i, t := range slot {
			prefix := "  "
			if i > 0 {
				prefix = "        "
			}
			fmt.Printf("%s%s (%d min)  [%d]\n", prefix, t.Text, t.Duration, t.ID)
		}
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks planned. Use 'dayplan add' to schedule one.")
	}
	return nil
}
