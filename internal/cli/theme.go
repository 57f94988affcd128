package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme [dark|light]",
	Short: "Show or set the theme preference",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTheme,
}

func runTheme(cmd *cobra.Command, args []string) error {
	planner, cleanup, err := openPlanner()
	if err != nil {
		return err
	}
	defer cleanup()

	if len(args) == 0 {
		theme, err := planner.Theme()
		if err != nil {
			return err
		}
		fmt.Printf("Theme: %s\n", theme)
		return nil
	}

	tag := args[0]
	if tag != "dark" && tag != "light" {
		return fmt.Errorf("unknown theme: %s", tag)
	}
	if err := planner.SetTheme(tag); err != nil {
		return err
	}
	fmt.Printf("Switched to %s theme.\n", tag)
	return nil
}
