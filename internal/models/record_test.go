// ABOUTME: Tests for the FitnessRecord model.
// ABOUTME: Validates constructors, builder methods, and field bounds.
package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() *Record {
	return &Record{
		Name:     "Alex",
		Age:      30,
		Weight:   72.5,
		Date:     "2024-01-10",
		Exercise: "Running",
		Duration: 30,
		Calories: 300,
	}
}

func TestNewRecord(t *testing.T) {
	r := NewRecord("Alex", "Running")

	if r.ID != 0 {
		t.Errorf("ID = %d, want 0 before insert", r.ID)
	}
	if r.Name != "Alex" || r.Exercise != "Running" {
		t.Errorf("got name=%q exercise=%q", r.Name, r.Exercise)
	}
	if r.Date != time.Now().Format(DateLayout) {
		t.Errorf("Date = %s, want today", r.Date)
	}
}

func TestRecordBuilders(t *testing.T) {
	day := time.Date(2024, time.March, 15, 18, 30, 0, 0, time.Local)
	r := NewRecord("Sam", "Cycling").
		WithAge(41).
		WithWeight(80.2).
		WithDate(day).
		WithSession(45, 520)

	assert.Equal(t, 41, r.Age)
	assert.Equal(t, 80.2, r.Weight)
	assert.Equal(t, "2024-03-15", r.Date)
	assert.Equal(t, 45, r.Duration)
	assert.Equal(t, 520, r.Calories)
	require.NoError(t, r.Validate())
}

func TestValidateAcceptsValidRecord(t *testing.T) {
	require.NoError(t, validRecord().Validate())
}

func TestValidateBounds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Record)
		field  string
	}{
		{"empty name", func(r *Record) { r.Name = "" }, "name"},
		{"blank name", func(r *Record) { r.Name = "   " }, "name"},
		{"age zero", func(r *Record) { r.Age = 0 }, "age"},
		{"age too high", func(r *Record) { r.Age = 101 }, "age"},
		{"weight below one", func(r *Record) { r.Weight = 0.9 }, "weight"},
		{"malformed date", func(r *Record) { r.Date = "10/01/2024" }, "date"},
		{"impossible date", func(r *Record) { r.Date = "2024-02-30" }, "date"},
		{"date before 2000", func(r *Record) { r.Date = "1999-12-31" }, "date"},
		{"empty exercise", func(r *Record) { r.Exercise = "" }, "exercise"},
		{"zero duration", func(r *Record) { r.Duration = 0 }, "duration"},
		{"zero calories", func(r *Record) { r.Calories = 0 }, "calories"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecord()
			tt.mutate(r)

			err := r.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.True(t, verr.Has(tt.field), "expected %s in %v", tt.field, verr)
			assert.Len(t, verr.Fields, 1)
		})
	}
}

func TestValidateEdgeValues(t *testing.T) {
	r := validRecord()
	r.Age = 1
	r.Weight = 1.0
	r.Date = "2000-01-01"
	r.Duration = 1
	r.Calories = 1
	require.NoError(t, r.Validate())

	r.Age = 100
	require.NoError(t, r.Validate())
}

func TestValidateReportsAllFields(t *testing.T) {
	err := (&Record{}).Validate()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 7)
	assert.Contains(t, err.Error(), "name is required")
	assert.Contains(t, err.Error(), "calories must be at least 1")
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", got.Format(DateLayout))

	_, err = ParseDate("2024-3-15")
	assert.Error(t, err)
}
