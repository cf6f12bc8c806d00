// ABOUTME: Integration tests for the fitlog CLI.
// ABOUTME: Builds the binary and runs a full add, list, update, delete workflow.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	fitlogBinary := filepath.Join(projectRoot, "fitlog")

	buildCmd := exec.Command("go", "build", "-o", fitlogBinary, "./cmd/fitlog")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(fitlogBinary)

	// Use temp database and config
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "fitness_tracker.db")

	run := func(args ...string) (string, error) {
		fullArgs := append([]string{"--db", dbPath}, args...)
		cmd := exec.Command(fitlogBinary, fullArgs...)
		cmd.Env = append(os.Environ(),
			"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
			"NO_COLOR=1",
		)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	output, err := run("list")
	if err != nil {
		t.Fatalf("Failed to list empty log: %v\n%s", err, output)
	}
	if !strings.Contains(output, "No records available.") {
		t.Errorf("Expected empty message, got: %s", output)
	}

	output, err = run("add", "--name", "Alex", "--age", "30", "--weight", "72.5",
		"--date", "2024-01-10", "--exercise", "Running", "--duration", "30", "--calories", "300")
	if err != nil {
		t.Fatalf("Failed to add record: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Added record #1") {
		t.Errorf("Expected 'Added record #1' in output, got: %s", output)
	}

	output, err = run("add", "--name", "Alex", "--age", "0", "--weight", "72.5",
		"--exercise", "Running", "--duration", "30", "--calories", "300")
	if err == nil {
		t.Errorf("Expected invalid add to fail, got: %s", output)
	}

	output, err = run("update", "1", "--calories", "320")
	if err != nil {
		t.Fatalf("Failed to update: %v\n%s", err, output)
	}

	output, err = run("list", "--format", "plain")
	if err != nil {
		t.Fatalf("Failed to list: %v\n%s", err, output)
	}
	if !strings.Contains(output, "1\tAlex\t30\t72.5\t2024-01-10\tRunning\t30\t320") {
		t.Errorf("Expected updated row in list output, got: %s", output)
	}

	output, err = run("delete", "1", "--yes")
	if err != nil {
		t.Fatalf("Failed to delete: %v\n%s", err, output)
	}

	output, err = run("delete", "1", "--yes")
	if err != nil {
		t.Fatalf("Second delete should be a no-op: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Nothing changed") {
		t.Errorf("Expected 'Nothing changed', got: %s", output)
	}

	output, err = run("list")
	if err != nil {
		t.Fatalf("Failed to list: %v\n%s", err, output)
	}
	if !strings.Contains(output, "No records available.") {
		t.Errorf("Expected empty log after delete, got: %s", output)
	}
}
