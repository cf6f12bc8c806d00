// ABOUTME: Interactive terminal forms for fitness records.
// ABOUTME: Provides the record form, record picker, and the 'form' menu command.
package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/models"
	"github.com/spf13/cobra"
)

// formValues holds record fields as the strings huh inputs bind to.
type formValues struct {
	name     string
	age      string
	weight   string
	date     string
	exercise string
	duration string
	calories string
}

func valuesFromRecord(r *models.Record) *formValues {
	v := &formValues{
		name:     r.Name,
		date:     r.Date,
		exercise: r.Exercise,
	}
	if r.Age > 0 {
		v.age = strconv.Itoa(r.Age)
	}
	if r.Weight > 0 {
		v.weight = strconv.FormatFloat(r.Weight, 'f', -1, 64)
	}
	if r.Duration > 0 {
		v.duration = strconv.Itoa(r.Duration)
	}
	if r.Calories > 0 {
		v.calories = strconv.Itoa(r.Calories)
	}
	return v
}

// toRecord parses the form strings into r, keeping r.ID.
func (v *formValues) toRecord(r *models.Record) error {
	var err error
	r.Name = strings.TrimSpace(v.name)
	r.Exercise = strings.TrimSpace(v.exercise)
	if r.Age, err = strconv.Atoi(strings.TrimSpace(v.age)); err != nil {
		return fmt.Errorf("invalid age: %s", v.age)
	}
	if r.Weight, err = strconv.ParseFloat(strings.TrimSpace(v.weight), 64); err != nil {
		return fmt.Errorf("invalid weight: %s", v.weight)
	}
	if r.Duration, err = strconv.Atoi(strings.TrimSpace(v.duration)); err != nil {
		return fmt.Errorf("invalid duration: %s", v.duration)
	}
	if r.Calories, err = strconv.Atoi(strings.TrimSpace(v.calories)); err != nil {
		return fmt.Errorf("invalid calories: %s", v.calories)
	}
	if r.Date, err = parseDate(v.date, time.Now()); err != nil {
		return err
	}
	return nil
}

func required(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

func intAtLeast(label string, lo, hi int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("%s must be a whole number", label)
		}
		if n < lo || (hi > 0 && n > hi) {
			if hi > 0 {
				return fmt.Errorf("%s must be between %d and %d", label, lo, hi)
			}
			return fmt.Errorf("%s must be at least %d", label, lo)
		}
		return nil
	}
}

func validWeight(s string) error {
	kg, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return errors.New("weight must be a number")
	}
	if kg < models.MinWeight {
		return fmt.Errorf("weight must be at least %.1f kg", models.MinWeight)
	}
	return nil
}

func validDate(s string) error {
	d, err := parseDate(s, time.Now())
	if err != nil {
		return err
	}
	t, _ := models.ParseDate(d)
	if t.Before(models.EarliestDate) {
		return fmt.Errorf("date must be on or after %s", models.EarliestDate.Format(models.DateLayout))
	}
	return nil
}

// newRecordForm builds the record entry form bound to v.
func newRecordForm(title string, v *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(title),
			huh.NewInput().
				Title("Name").
				Value(&v.name).
				Validate(required("name")),
			huh.NewInput().
				Title("Age").
				Value(&v.age).
				Validate(intAtLeast("age", models.MinAge, models.MaxAge)),
			huh.NewInput().
				Title("Weight (kg)").
				Value(&v.weight).
				Validate(validWeight),
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD, today, yesterday, last monday").
				Placeholder(time.Now().Format(models.DateLayout)).
				Value(&v.date).
				Validate(validDate),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Exercise").
				Placeholder("e.g., Running").
				Value(&v.exercise).
				Validate(required("exercise")),
			huh.NewInput().
				Title("Duration (mins)").
				Value(&v.duration).
				Validate(intAtLeast("duration", models.MinDuration, 0)),
			huh.NewInput().
				Title("Calories Burned").
				Value(&v.calories).
				Validate(intAtLeast("calories", models.MinCalories, 0)),
		),
	).WithTheme(huh.ThemeBase())
}

// runRecordForm shows the record form prefilled from r and writes the result back into r.
func runRecordForm(title string, r *models.Record) error {
	v := valuesFromRecord(r)
	if err := newRecordForm(title, v).Run(); err != nil {
		return err
	}
	return v.toRecord(r)
}

// recordOption labels a record for the picker.
func recordOption(r *models.Record) huh.Option[int64] {
	label := fmt.Sprintf("#%d  %s · %s · %s", r.ID, truncate(r.Name, 30), truncate(r.Exercise, 30), r.Date)
	return huh.NewOption(label, r.ID)
}

// pickRecord asks the user to select one of records and returns its ID.
func pickRecord(title string, records []*models.Record) (int64, error) {
	options := make([]huh.Option[int64], 0, len(records))
	for _, r := range records {
		options = append(options, recordOption(r))
	}

	var id int64
	err := huh.NewSelect[int64]().
		Title(title).
		Options(options...).
		Value(&id).
		Run()
	return id, err
}

func confirm(title string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Delete").
		Negative("Cancel").
		Value(&ok).
		Run()
	return ok, err
}

const (
	menuAdd    = "add"
	menuView   = "view"
	menuUpdate = "update"
	menuDelete = "delete"
	menuQuit   = "quit"
)

var formCmd = &cobra.Command{
	Use:     "form",
	Aliases: []string{"menu", "ui"},
	Short:   "Interactive menu for adding, viewing, updating, and deleting records",
	Long: `Open an interactive menu with forms for every record operation.

The form uses keyboard navigation:
  - Tab/Shift+Tab: Move between fields
  - Enter: Next field or submit
  - Arrow keys: Navigate select lists
  - Ctrl+C or Esc: Back out`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isInteractive() {
			return errors.New("form requires an interactive terminal")
		}
		out := cmd.OutOrStdout()

		for {
			choice := menuQuit
			err := huh.NewSelect[string]().
				Title("Personal Fitness Tracker").
				Options(
					huh.NewOption("Add Record", menuAdd),
					huh.NewOption("View Records", menuView),
					huh.NewOption("Update Record", menuUpdate),
					huh.NewOption("Delete Record", menuDelete),
					huh.NewOption("Quit", menuQuit),
				).
				Value(&choice).
				Run()
			if errors.Is(err, huh.ErrUserAborted) || choice == menuQuit {
				return nil
			}
			if err != nil {
				return fmt.Errorf("form error: %w", err)
			}

			if err := runMenuChoice(out, choice); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					continue
				}
				color.New(color.FgRed).Fprintf(out, "✗ %v\n", err)
			}
			fmt.Fprintln(out)
		}
	},
}

func runMenuChoice(out io.Writer, choice string) error {
	switch choice {
	case menuAdd:
		r := models.NewRecord("", "")
		if err := runRecordForm("Add New Record", r); err != nil {
			return err
		}
		return addRecord(out, r)

	case menuView:
		return listRecords(out, formatTable)

	case menuUpdate, menuDelete:
		records, err := repo.List()
		if err != nil {
			return fmt.Errorf("failed to list records: %w", err)
		}
		if len(records) == 0 {
			fmt.Fprintln(out, "No records available.")
			return nil
		}

		verb := "Update"
		if choice == menuDelete {
			verb = "Delete"
		}
		id, err := pickRecord(fmt.Sprintf("Select Record ID to %s", verb), records)
		if err != nil {
			return err
		}

		if choice == menuUpdate {
			return updateWithForm(out, id)
		}
		return deleteRecord(out, id, false)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(formCmd)
}
