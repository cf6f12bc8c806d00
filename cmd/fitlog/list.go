// ABOUTME: CLI commands for viewing fitness records.
// ABOUTME: 'list' renders every record as a table; 'show' prints one record.
package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/harperreed/fitlog/internal/storage"
	"github.com/harperreed/fitlog/internal/ui"
	"github.com/spf13/cobra"
)

const (
	formatTable = "table"
	formatPlain = "plain"
)

var listFormat string

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l", "view"},
	Short:   "List all fitness records",
	Long: `List every record in the fitness log, oldest ID first.

OUTPUT FORMAT:

  table   Bordered table (default)
  plain   Tab-separated lines with a header, for scripts

  Columns: ID, Name, Age, Weight (kg), Date, Exercise,
  Duration (mins), Calories Burned

EXAMPLES:

  fitlog list
  fitlog ls --format plain | cut -f2,6`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listRecords(cmd.OutOrStdout(), listFormat)
	},
}

func listRecords(out io.Writer, format string) error {
	if format != formatTable && format != formatPlain {
		return fmt.Errorf("unknown format: %s (use table or plain)", format)
	}

	records, err := repo.List()
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}

	if len(records) == 0 {
		fmt.Fprintln(out, "No records available.")
		return nil
	}

	if format == formatPlain {
		fmt.Fprint(out, ui.RecordPlain(records))
		return nil
	}
	fmt.Fprintln(out, ui.RecordTable(records))
	return nil
}

var showCmd = &cobra.Command{
	Use:     "show <id>",
	Aliases: []string{"get"},
	Short:   "Show one fitness record",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		r, err := repo.Get(id)
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("record not found: %d", id)
		}
		if err != nil {
			return fmt.Errorf("failed to get record: %w", err)
		}

		fmt.Fprint(cmd.OutOrStdout(), ui.RecordDetail(r))
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listFormat, "format", "f", formatTable, "output format: table or plain")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}
