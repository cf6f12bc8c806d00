// ABOUTME: Root Cobra command for the fitlog CLI.
// ABOUTME: Loads config, sets up logging, and opens the record store for each command.
package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/harperreed/fitlog/internal/config"
	"github.com/harperreed/fitlog/internal/storage"
	"github.com/spf13/cobra"
)

// skipStore marks commands that run without opening the database.
const skipStore = "skip-store"

var (
	repo    storage.Repository
	logger  *log.Logger
	dbPath  string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "fitlog",
	Short: "Personal fitness log",
	Long: `fitlog is a CLI for logging workout sessions to a local SQLite file.

Each record holds: name, age, weight (kg), date, exercise, duration (mins),
and calories burned. The store assigns every record a numeric ID.

QUICK START:

  $ fitlog add --name Alex --age 30 --weight 72.5 --exercise Running \
      --duration 30 --calories 300              # Log a session (dated today)
  $ fitlog list                                 # View all records
  $ fitlog update 1 --calories 320              # Change one field
  $ fitlog delete 1                             # Remove a record
  $ fitlog form                                 # Interactive menu and forms

DATA STORAGE:

  Records live in ~/.local/share/fitlog/fitness_tracker.db by default.
  Override with --db, FITLOG_DATA_DIR, or 'fitlog config set data_dir <dir>'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level := cfg.GetLogLevel()
		if verbose {
			level = "debug"
		}
		logger = newLogger(cmd, level)

		if cmd.Annotations[skipStore] == "true" || cmd.Name() == "help" {
			return nil
		}

		var store *storage.Store
		if dbPath != "" {
			store, err = storage.Open(config.ExpandPath(dbPath))
		} else {
			store, err = cfg.OpenStorage()
		}
		if err != nil {
			return fmt.Errorf("failed to open fitness log: %w", err)
		}
		store.SetLogger(logger)
		logger.Debug("store ready", "path", store.Path())

		repo = store
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			err := repo.Close()
			repo = nil
			return err
		}
		return nil
	},
}

func newLogger(cmd *cobra.Command, level string) *log.Logger {
	l := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix:          "fitlog",
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	l.SetLevel(lvl)
	return l
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database file (default: <data_dir>/fitness_tracker.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
