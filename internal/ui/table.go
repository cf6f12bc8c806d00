// ABOUTME: Tabular and detail rendering of fitness records.
// ABOUTME: Uses lipgloss/table for the list view and aligned labels for single records.
package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/harperreed/fitlog/internal/models"
)

// Columns are the list view headers, in storage column order.
var Columns = []string{"ID", "Name", "Age", "Weight (kg)", "Date", "Exercise", "Duration (mins)", "Calories Burned"}

// numeric columns are right-aligned.
var numericColumns = map[int]bool{0: true, 2: true, 3: true, 6: true, 7: true}

// Row formats a record as list view cells.
func Row(r *models.Record) []string {
	return []string{
		strconv.FormatInt(r.ID, 10),
		r.Name,
		strconv.Itoa(r.Age),
		FormatWeight(r.Weight),
		r.Date,
		r.Exercise,
		strconv.Itoa(r.Duration),
		strconv.Itoa(r.Calories),
	}
}

// FormatWeight renders kilograms with one decimal place.
func FormatWeight(kg float64) string {
	return strconv.FormatFloat(kg, 'f', 1, 64)
}

// RecordTable renders records as a bordered table.
func RecordTable(records []*models.Record) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, Row(r))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(BorderStyle).
		Headers(Columns...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return HeaderStyle
			case numericColumns[col]:
				return NumberStyle
			default:
				return CellStyle
			}
		})

	return t.String()
}

// RecordPlain renders records as tab-separated lines with a header, for scripts.
func RecordPlain(records []*models.Record) string {
	var sb strings.Builder
	sb.WriteString(strings.Join(Columns, "\t"))
	sb.WriteString("\n")
	for _, r := range records {
		sb.WriteString(strings.Join(Row(r), "\t"))
		sb.WriteString("\n")
	}
	return sb.String()
}

// RecordDetail renders one record as labelled lines.
func RecordDetail(r *models.Record) string {
	cells := Row(r)
	var sb strings.Builder
	sb.WriteString(RenderTitle(fmt.Sprintf("Record #%d", r.ID)))
	sb.WriteString("\n")
	for i := 1; i < len(Columns); i++ {
		sb.WriteString(LabelStyle.Render(Columns[i]))
		sb.WriteString(cells[i])
		sb.WriteString("\n")
	}
	return sb.String()
}
