// ABOUTME: CLI command for updating fitness records.
// ABOUTME: Overwrites the fields given by flags or edited in a form, keeping the rest.
package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	updateFlags       recordFlags
	updateInteractive bool
)

var updateCmd = &cobra.Command{
	Use:     "update <id>",
	Aliases: []string{"edit", "up"},
	Short:   "Update a fitness record",
	Long: `Update fields of an existing record. Fields without a flag keep their
current value. The record keeps its ID.

If no record has the given ID, nothing is changed.

EXAMPLES:

  fitlog update 3 --calories 320
  fitlog update 3 --exercise Cycling --duration 40
  fitlog update 3 -i            # Edit every field in a form`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		r, err := repo.Get(id)
		if errors.Is(err, storage.ErrNotFound) {
			reportUnchanged(out, id)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get record: %w", err)
		}

		set, err := updateFlags.apply(cmd, r)
		if err != nil {
			return err
		}

		if updateInteractive {
			if !isInteractive() {
				return errors.New("--interactive requires a terminal")
			}
			if err := runRecordForm(fmt.Sprintf("Update Record #%d", id), r); err != nil {
				return err
			}
		} else if !set {
			return errors.New("nothing to update: pass at least one field flag or --interactive")
		}

		return updateRecord(out, id, r)
	},
}

// updateWithForm edits record id in a form and saves it.
func updateWithForm(out io.Writer, id int64) error {
	r, err := repo.Get(id)
	if errors.Is(err, storage.ErrNotFound) {
		reportUnchanged(out, id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get record: %w", err)
	}

	if err := runRecordForm(fmt.Sprintf("Update Record #%d", id), r); err != nil {
		return err
	}
	return updateRecord(out, id, r)
}

func updateRecord(out io.Writer, id int64, r *models.Record) error {
	if err := r.Validate(); err != nil {
		return err
	}

	changed, err := repo.Update(id, r)
	if err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}
	if !changed {
		reportUnchanged(out, id)
		return nil
	}
	logger.Debug("record updated", "id", id)

	color.New(color.FgGreen).Fprintf(out, "✓ Updated record #%d\n", id)
	return nil
}

func reportUnchanged(out io.Writer, id int64) {
	color.New(color.FgYellow).Fprintf(out, "Nothing changed: no record with ID %d\n", id)
}

func init() {
	updateFlags.register(updateCmd)
	updateCmd.Flags().BoolVarP(&updateInteractive, "interactive", "i", false, "edit the record with a form")
	rootCmd.AddCommand(updateCmd)
}
