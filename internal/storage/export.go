// ABOUTME: Export and import functionality for fitness records.
// ABOUTME: Supports JSON, YAML, Markdown, and CSV export; JSON import.
package storage

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/harperreed/fitlog/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportVersion is the version stamped into JSON and YAML exports.
const ExportVersion = "1.0"

// ExportData represents the full export format for fitness records.
type ExportData struct {
	Version    string           `json:"version" yaml:"version"`
	ExportedAt time.Time        `json:"exported_at" yaml:"exported_at"`
	Tool       string           `json:"tool" yaml:"tool"`
	Records    []*models.Record `json:"records" yaml:"records"`
}

// GetAllData retrieves every record for export.
func GetAllData(repo Repository) (*ExportData, error) {
	records, err := repo.List()
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	return &ExportData{
		Version:    ExportVersion,
		ExportedAt: time.Now(),
		Tool:       "fitlog",
		Records:    records,
	}, nil
}

// ImportData inserts every record in data. IDs in the file are ignored
// and the store assigns fresh ones. Records are validated first, so a bad
// file imports nothing. It returns the assigned IDs in file order.
func ImportData(repo Repository, data *ExportData) ([]int64, error) {
	for i, r := range data.Records {
		if r == nil {
			return nil, fmt.Errorf("record %d: missing", i+1)
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
	}

	ids := make([]int64, 0, len(data.Records))
	for i, r := range data.Records {
		id, err := repo.Insert(r)
		if err != nil {
			return ids, fmt.Errorf("import record %d: %w", i+1, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ExportJSON exports all records as indented JSON.
func ExportJSON(repo Repository) ([]byte, error) {
	data, err := GetAllData(repo)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all records as YAML.
func ExportYAML(repo Repository) ([]byte, error) {
	data, err := GetAllData(repo)
	if err != nil {
		return nil, err
	}

	yamlData := struct {
		Version    string           `yaml:"version"`
		ExportedAt string           `yaml:"exported_at"`
		Tool       string           `yaml:"tool"`
		Records    []*models.Record `yaml:"records"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Records:    data.Records,
	}

	return yaml.Marshal(yamlData)
}

// ExportMarkdown exports records as a Markdown table, optionally limited
// to sessions on or after since (YYYY-MM-DD; empty means all).
func ExportMarkdown(repo Repository, since string) (string, error) {
	records, err := repo.List()
	if err != nil {
		return "", fmt.Errorf("list records: %w", err)
	}

	if since != "" {
		if _, err := models.ParseDate(since); err != nil {
			return "", err
		}
		// YYYY-MM-DD sorts lexically in date order.
		var filtered []*models.Record
		for _, r := range records {
			if r.Date >= since {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Fitness Log Export - %s\n\n", now.Format(models.DateLayout)))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	if len(records) == 0 {
		sb.WriteString("No records available.\n")
		return sb.String(), nil
	}

	sb.WriteString("| ID | Name | Age | Weight (kg) | Date | Exercise | Duration (mins) | Calories Burned |\n")
	sb.WriteString("|----|------|-----|-------------|------|----------|-----------------|-----------------|\n")
	for _, r := range records {
		sb.WriteString(fmt.Sprintf("| %d | %s | %d | %.1f | %s | %s | %d | %d |\n",
			r.ID, escapeMarkdown(r.Name), r.Age, r.Weight, r.Date,
			escapeMarkdown(r.Exercise), r.Duration, r.Calories))
	}

	return sb.String(), nil
}

// CSVHeader is the header row written by ExportCSV.
var CSVHeader = []string{"id", "name", "age", "weight", "date", "exercise", "duration", "calories"}

// ExportCSV exports all records as CSV with a header row.
func ExportCSV(repo Repository) ([]byte, error) {
	records, err := repo.List()
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(CSVHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		row := []string{
			strconv.FormatInt(r.ID, 10),
			r.Name,
			strconv.Itoa(r.Age),
			strconv.FormatFloat(r.Weight, 'f', -1, 64),
			r.Date,
			r.Exercise,
			strconv.Itoa(r.Duration),
			strconv.Itoa(r.Calories),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ImportJSON imports records from JSON export bytes.
func ImportJSON(repo Repository, data []byte) ([]int64, error) {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	return ImportData(repo, &exportData)
}

var markdownEscaper = strings.NewReplacer(
	"|", `\|`,
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
