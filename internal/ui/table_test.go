package ui

import (
	"strings"
	"testing"

	"github.com/harperreed/fitlog/internal/models"
	"github.com/stretchr/testify/assert"
)

func sample() *models.Record {
	return &models.Record{
		ID:       1,
		Name:     "Alex",
		Age:      30,
		Weight:   72.5,
		Date:     "2024-01-10",
		Exercise: "Running",
		Duration: 30,
		Calories: 300,
	}
}

func TestRow(t *testing.T) {
	assert.Equal(t,
		[]string{"1", "Alex", "30", "72.5", "2024-01-10", "Running", "30", "300"},
		Row(sample()))
}

func TestFormatWeight(t *testing.T) {
	assert.Equal(t, "88.0", FormatWeight(88))
	assert.Equal(t, "72.5", FormatWeight(72.5))
}

func TestRecordTableContainsCells(t *testing.T) {
	out := RecordTable([]*models.Record{sample()})

	for _, want := range []string{"Weight (kg)", "Calories Burned", "Alex", "Running", "2024-01-10", "72.5"} {
		assert.Contains(t, out, want)
	}
}

func TestRecordPlain(t *testing.T) {
	out := RecordPlain([]*models.Record{sample()})
	lines := strings.Split(strings.TrimSpace(out), "\n")

	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "ID\tName\t"))
	assert.Equal(t, "1\tAlex\t30\t72.5\t2024-01-10\tRunning\t30\t300", lines[1])
}

func TestRecordDetail(t *testing.T) {
	out := RecordDetail(sample())

	assert.Contains(t, out, "Record #1")
	assert.Contains(t, out, "Exercise")
	assert.Contains(t, out, "Running")
}
