// ABOUTME: CLI commands for viewing and changing fitlog configuration.
// ABOUTME: Reads and writes the JSON config file without opening the database.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or change configuration",
	Long: `View or change fitlog configuration.

KEYS:

  data_dir    Directory holding fitness_tracker.db
  log_level   debug, info, warn, or error (default warn)

Environment variables FITLOG_DATA_DIR and FITLOG_LOG_LEVEL override
the file.

EXAMPLES:

  fitlog config show
  fitlog config set data_dir ~/Dropbox/fitlog
  fitlog config path`,
	Annotations: map[string]string{skipStore: "true"},
	Args:        cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showConfig(cmd)
	},
}

var configShowCmd = &cobra.Command{
	Use:         "show",
	Short:       "Show effective configuration",
	Annotations: map[string]string{skipStore: "true"},
	Args:        cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showConfig(cmd)
	},
}

var configSetCmd = &cobra.Command{
	Use:         "set <key> <value>",
	Short:       "Set a configuration value",
	Annotations: map[string]string{skipStore: "true"},
	Args:        cobra.ExactArgs(2),
	ValidArgs:   config.Keys(),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadFile()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Set %s = %s\n", args[0], args[1])
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:         "path",
	Short:       "Print the config file path",
	Annotations: map[string]string{skipStore: "true"},
	Args:        cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.GetConfigPath())
		return nil
	},
}

func showConfig(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	out := cmd.OutOrStdout()
	faint := color.New(color.Faint)
	rows := [][2]string{
		{"config file", config.GetConfigPath()},
		{config.KeyDataDir, cfg.GetDataDir()},
		{config.KeyLogLevel, cfg.GetLogLevel()},
		{"database", cfg.DBPath()},
	}
	for _, row := range rows {
		fmt.Fprintf(out, "%s %s\n", faint.Sprint(padRight(row[0], 12)), row[1])
	}
	return nil
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}
