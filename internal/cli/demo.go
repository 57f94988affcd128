package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Seed the demo accounts",
	Long: `Create the demo accounts if they do not exist yet:

  user@demo.com / demo123  (with a sample schedule)
  test@demo.com / test123  (empty)`,
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	planner, cleanup, err := openPlanner()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := planner.SeedDemoAccounts(); err != nil {
		return fmt.Errorf("failed to seed demo accounts: %w", err)
	}

	fmt.Println("Demo accounts ready. Sign in with 'dayplan auth login'.")
	return nil
}
