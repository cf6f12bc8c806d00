// ABOUTME: FitnessRecord model for the personal fitness log.
// ABOUTME: Holds one logged session plus field validation and date parsing.
package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the on-disk and on-screen date format for records.
const DateLayout = "2006-01-02"

// Field bounds enforced by Validate. The schema declares the same bounds.
const (
	MinAge      = 1
	MaxAge      = 100
	MinWeight   = 1.0
	MinDuration = 1
	MinCalories = 1
)

// EarliestDate is the oldest session date accepted by Validate.
var EarliestDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// ErrInvalid is wrapped by every ValidationError.
var ErrInvalid = errors.New("invalid record")

// Record represents one logged fitness session.
// ID is zero until the store assigns it on insert.
type Record struct {
	ID       int64   `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Age      int     `json:"age" yaml:"age"`
	Weight   float64 `json:"weight" yaml:"weight"`
	Date     string  `json:"date" yaml:"date"`
	Exercise string  `json:"exercise" yaml:"exercise"`
	Duration int     `json:"duration" yaml:"duration"`
	Calories int     `json:"calories" yaml:"calories"`
}

// NewRecord creates a Record dated today with no ID.
func NewRecord(name, exercise string) *Record {
	return &Record{
		Name:     name,
		Exercise: exercise,
		Date:     time.Now().Format(DateLayout),
	}
}

// WithAge sets the age in years.
func (r *Record) WithAge(age int) *Record {
	r.Age = age
	return r
}

// WithWeight sets the body weight in kilograms.
func (r *Record) WithWeight(kg float64) *Record {
	r.Weight = kg
	return r
}

// WithDate sets the session date.
func (r *Record) WithDate(t time.Time) *Record {
	r.Date = t.Format(DateLayout)
	return r
}

// WithSession sets duration in minutes and calories burned.
func (r *Record) WithSession(minutes, calories int) *Record {
	r.Duration = minutes
	r.Calories = calories
	return r
}

// FieldError describes one field that failed validation.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s %s", f.Field, f.Message))
	}
	return "invalid record: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}

// Has reports whether the named field failed validation.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Validate checks the record against the field bounds.
// It returns nil or a *ValidationError. The ID is not checked.
func (r *Record) Validate() error {
	var errs []FieldError
	add := func(field, msg string) {
		errs = append(errs, FieldError{Field: field, Message: msg})
	}

	if strings.TrimSpace(r.Name) == "" {
		add("name", "is required")
	}
	if r.Age < MinAge || r.Age > MaxAge {
		add("age", fmt.Sprintf("must be between %d and %d", MinAge, MaxAge))
	}
	if r.Weight < MinWeight {
		add("weight", fmt.Sprintf("must be at least %.1f kg", MinWeight))
	}
	if t, err := ParseDate(r.Date); err != nil {
		add("date", "must be a date in YYYY-MM-DD form")
	} else if t.Before(EarliestDate) {
		add("date", "must be on or after "+EarliestDate.Format(DateLayout))
	}
	if strings.TrimSpace(r.Exercise) == "" {
		add("exercise", "is required")
	}
	if r.Duration < MinDuration {
		add("duration", fmt.Sprintf("must be at least %d minute", MinDuration))
	}
	if r.Calories < MinCalories {
		add("calories", fmt.Sprintf("must be at least %d", MinCalories))
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

// ParseDate parses a strict YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}
