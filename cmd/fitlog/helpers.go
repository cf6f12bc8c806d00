// ABOUTME: Shared CLI helpers for record flags, date parsing, and ID arguments.
// ABOUTME: Used by add, update, delete, and the interactive form.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/harperreed/fitlog/internal/models"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// recordFlags holds the per-field flags shared by add and update.
type recordFlags struct {
	name     string
	age      int
	weight   float64
	date     string
	exercise string
	duration int
	calories int
}

func (f *recordFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "name of the person")
	cmd.Flags().IntVar(&f.age, "age", 0, "age in years (1-100)")
	cmd.Flags().Float64Var(&f.weight, "weight", 0, "body weight in kg (at least 1.0)")
	cmd.Flags().StringVar(&f.date, "date", "", "session date: YYYY-MM-DD, today, yesterday, \"last monday\" (default today)")
	cmd.Flags().StringVar(&f.exercise, "exercise", "", "exercise performed")
	cmd.Flags().IntVar(&f.duration, "duration", 0, "duration in minutes (at least 1)")
	cmd.Flags().IntVar(&f.calories, "calories", 0, "calories burned (at least 1)")
}

// apply copies every flag the user set onto r and reports whether any were set.
func (f *recordFlags) apply(cmd *cobra.Command, r *models.Record) (bool, error) {
	flags := cmd.Flags()
	set := false
	if flags.Changed("name") {
		r.Name, set = f.name, true
	}
	if flags.Changed("age") {
		r.Age, set = f.age, true
	}
	if flags.Changed("weight") {
		r.Weight, set = f.weight, true
	}
	if flags.Changed("date") {
		d, err := parseDate(f.date, time.Now())
		if err != nil {
			return false, err
		}
		r.Date, set = d, true
	}
	if flags.Changed("exercise") {
		r.Exercise, set = f.exercise, true
	}
	if flags.Changed("duration") {
		r.Duration, set = f.duration, true
	}
	if flags.Changed("calories") {
		r.Calories, set = f.calories, true
	}
	return set, nil
}

// parseDate normalizes a user-entered date to YYYY-MM-DD.
// Empty means today; ISO dates pass through; anything else goes through
// natural-language parsing relative to now.
func parseDate(s string, now time.Time) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now.Format(models.DateLayout), nil
	}
	if t, err := models.ParseDate(s); err == nil {
		return t.Format(models.DateLayout), nil
	}

	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	r, err := w.Parse(s, now)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	if r == nil {
		return "", fmt.Errorf("invalid date %q (use YYYY-MM-DD)", s)
	}
	return r.Time.Format(models.DateLayout), nil
}

// parseID parses a positional record ID argument.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid record ID: %s", s)
	}
	return id, nil
}

func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// truncate shortens s to at most maxLen runes, ending in "..." when cut.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:max(maxLen, 0)])
	}
	return string(runes[:maxLen-3]) + "..."
}
