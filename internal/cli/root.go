package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/dayplan/internal/config"
	"github.com/existflow/dayplan/internal/kvstore"
	"github.com/existflow/dayplan/internal/logger"
	"github.com/existflow/dayplan/internal/schedule"
	"github.com/existflow/dayplan/internal/tui"
	"github.com/spf13/cobra"
)

var (
	logLevel   string
	logFile    string
	logConsole bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "dayplan",
	Short: "DayPlan - daily schedule planner",
	Long: `DayPlan is a daily schedule planner for the terminal. Tasks live on a
fixed 6 AM - 10 PM timeline, scoped to the signed-in account (or to an
anonymous device-local list before login).

Run 'dayplan' without arguments to launch the interactive timeline.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			cfg = config.DefaultConfig()
		}

		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogFile = logFile
		}
		if cmd.Flags().Changed("log-console") {
			cfg.LogConsole = logConsole
		}

		if err := logger.Init(logger.Config{
			Level:      logger.ParseLevel(cfg.LogLevel),
			FilePath:   cfg.LogFile,
			MaxSize:    10 * 1024 * 1024,
			MaxBackups: 5,
			Console:    cfg.LogConsole,
		}); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		logger.Info("DayPlan started", logger.F("command", cmd.Name()))
		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		planner, cleanup, err := openPlanner()
		if err != nil {
			return err
		}
		defer cleanup()

		logger.Info("Launching TUI")
		m, err := tui.NewModel(planner)
		if err != nil {
			return fmt.Errorf("failed to initialize timeline: %w", err)
		}
		p := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			logger.Error("TUI error", logger.F("error", err))
			return fmt.Errorf("failed to run timeline: %w", err)
		}
		return nil
	},

	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Close()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// openPlanner opens the default store and wraps it in a planner
func openPlanner() (*schedule.Planner, func(), error) {
	store, err := kvstore.OpenDefault()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open store: %w", err)
	}
	cleanup := func() {
		_ = store.Close()
	}
	return schedule.New(store), cleanup, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&logConsole, "log-console", false, "Enable console logging")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(demoCmd)
}
