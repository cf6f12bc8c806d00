// ABOUTME: CLI command for adding fitness records.
// ABOUTME: Takes field flags or an interactive form, validates, and inserts.
package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/ui"
	"github.com/spf13/cobra"
)

var (
	addFlags       recordFlags
	addInteractive bool
)

var addCmd = &cobra.Command{
	Use:     "add",
	Aliases: []string{"a", "new"},
	Short:   "Add a fitness record",
	Long: `Add a workout session to the fitness log.

Every field is required except --date, which defaults to today.

FIELD RULES:

  --age        whole number from 1 to 100
  --weight     kilograms, at least 1.0
  --date       YYYY-MM-DD, no earlier than 2000-01-01; also accepts
               "today", "yesterday", "last monday", "2 days ago"
  --duration   minutes, at least 1
  --calories   at least 1

EXAMPLES:

  fitlog add --name Alex --age 30 --weight 72.5 --exercise Running \
      --duration 30 --calories 300
  fitlog add --name Sam --age 45 --weight 88 --date yesterday \
      --exercise Swimming --duration 45 --calories 410
  fitlog add -i                 # Fill in the fields with a form`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := models.NewRecord("", "")
		if _, err := addFlags.apply(cmd, r); err != nil {
			return err
		}

		if addInteractive {
			if !isInteractive() {
				return errors.New("--interactive requires a terminal")
			}
			if err := runRecordForm("Add New Record", r); err != nil {
				return err
			}
		}

		return addRecord(cmd.OutOrStdout(), r)
	},
}

// addRecord validates r and inserts it, reporting the assigned ID.
func addRecord(out io.Writer, r *models.Record) error {
	if err := r.Validate(); err != nil {
		return err
	}

	id, err := repo.Insert(r)
	if err != nil {
		return fmt.Errorf("failed to add record: %w", err)
	}
	r.ID = id
	logger.Debug("record inserted", "id", id)

	color.New(color.FgGreen).Fprintf(out, "✓ Added record #%d\n", id)
	fmt.Fprintf(out, "  %s %s · %d mins · %d cal\n",
		color.New(color.Faint).Sprint(r.Date),
		r.Exercise, r.Duration, r.Calories)
	fmt.Fprintf(out, "  %s, %d, %s kg\n", r.Name, r.Age, ui.FormatWeight(r.Weight))
	return nil
}

func init() {
	addFlags.register(addCmd)
	addCmd.Flags().BoolVarP(&addInteractive, "interactive", "i", false, "fill in the record with a form")
	rootCmd.AddCommand(addCmd)
}
