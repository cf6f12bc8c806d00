// ABOUTME: CLI command for deleting fitness records.
// ABOUTME: Shows the record, asks for confirmation unless --yes, then removes it.
package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/storage"
	"github.com/harperreed/fitlog/internal/ui"
	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a fitness record",
	Long: `Delete a record by its numeric ID.

The ID is shown in the first column of 'fitlog list' output. If no record
has the given ID, nothing is changed.

EXAMPLES:

  fitlog delete 3               # Asks for confirmation
  fitlog rm 3 --yes             # No prompt (required when not in a terminal)

CAUTION:

  This permanently deletes the record. There is no undo.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return deleteRecord(cmd.OutOrStdout(), id, deleteYes)
	},
}

// deleteRecord removes record id, prompting first unless skipConfirm is set.
func deleteRecord(out io.Writer, id int64, skipConfirm bool) error {
	r, err := repo.Get(id)
	if errors.Is(err, storage.ErrNotFound) {
		reportUnchanged(out, id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get record: %w", err)
	}

	if !skipConfirm {
		if !isInteractive() {
			return errors.New("refusing to delete without confirmation: pass --yes")
		}
		fmt.Fprint(out, ui.RecordDetail(r))
		ok, err := confirm(fmt.Sprintf("Delete record #%d?", id))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	changed, err := repo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	if !changed {
		reportUnchanged(out, id)
		return nil
	}
	logger.Debug("record deleted", "id", id)

	color.New(color.FgYellow).Fprintf(out, "✗ Deleted record #%d\n", id)
	fmt.Fprintf(out, "  %s %s · %s\n",
		color.New(color.Faint).Sprint(r.Date), r.Name, r.Exercise)
	return nil
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "delete without asking for confirmation")
	rootCmd.AddCommand(deleteCmd)
}
