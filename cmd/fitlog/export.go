// ABOUTME: CLI commands for exporting and importing fitness records.
// ABOUTME: Supports JSON, YAML, Markdown, and CSV export and JSON import.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportSince  string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export fitness records",
	Long: `Export every fitness record in one of several formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)
  markdown   Markdown table (for notes and sharing)
  csv        Comma-separated values with a header row (for spreadsheets)

OPTIONS:

  --output, -o   Write to file instead of stdout
  --since        Only include sessions on or after this date (markdown only)

EXAMPLES:

  fitlog export json                        # Export all records as JSON
  fitlog export json -o backup.json         # Save to file
  fitlog export csv -o sessions.csv         # Open in a spreadsheet
  fitlog export markdown --since 2024-01-01 # Sessions from 2024 onward`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown", "csv"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		if exportSince != "" && format != "markdown" {
			return fmt.Errorf("--since is only supported for markdown export")
		}

		var data []byte
		var err error

		switch format {
		case "json":
			data, err = storage.ExportJSON(repo)
		case "yaml":
			data, err = storage.ExportYAML(repo)
		case "markdown":
			var md string
			md, err = storage.ExportMarkdown(repo, exportSince)
			data = []byte(md)
		case "csv":
			data, err = storage.ExportCSV(repo)
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, markdown, or csv)", format)
		}

		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		out := cmd.OutOrStdout()
		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.New(color.FgGreen).Fprintf(out, "✓ Exported to %s\n", exportOutput)
			return nil
		}

		fmt.Fprint(out, string(data))
		if len(data) > 0 && data[len(data)-1] != '\n' {
			fmt.Fprintln(out)
		}
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import fitness records from JSON",
	Long: `Import records from a JSON file written by 'fitlog export json'.

Every record is validated before anything is written; if one is invalid,
nothing is imported. Imported records get new IDs, so importing into a log
that already has records never overwrites them.

EXAMPLES:

  fitlog import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		ids, err := storage.ImportJSON(repo, data)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		out := cmd.OutOrStdout()
		color.New(color.FgGreen).Fprintf(out, "✓ Imported %d records from %s\n", len(ids), filename)
		if len(ids) > 0 {
			parts := make([]string, len(ids))
			for i, id := range ids {
				parts[i] = fmt.Sprintf("#%d", id)
			}
			fmt.Fprintf(out, "  %s\n", color.New(color.Faint).Sprint(strings.Join(parts, " ")))
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "only include sessions on or after date (YYYY-MM-DD, markdown only)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
