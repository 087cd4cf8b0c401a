package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agbru/sumbench/internal/ui"
)

func TestWriteReportToFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "dir", "report.txt")
	if err := WriteReportToFile(sampleReport(), TableReportPresenter{Theme: ui.NoColorTheme}, path); err != nil {
		t.Fatalf("WriteReportToFile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "10_000_000") || !strings.Contains(string(data), "12 ms") {
		t.Errorf("file content:\n%s", data)
	}
	if strings.Contains(string(data), "\x1b[") {
		t.Error("file output contains ANSI escape codes")
	}
}

func TestWriteReportToFile_JSON(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "report.json")
	if err := WriteReportToFile(sampleReport(), JSONReportPresenter{}, path); err != nil {
		t.Fatalf("WriteReportToFile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
		t.Errorf("file is not a JSON document:\n%s", data)
	}
}

func TestWriteReportToFile_EmptyPath(t *testing.T) {
	t.Parallel()
	if err := WriteReportToFile(sampleReport(), JSONReportPresenter{}, ""); err != nil {
		t.Errorf("WriteReportToFile(\"\") error = %v", err)
	}
}

func TestWriteReportToFile_Unwritable(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	// A regular file cannot be used as a parent directory.
	if err := WriteReportToFile(sampleReport(), JSONReportPresenter{}, filepath.Join(blocker, "report.json")); err == nil {
		t.Error("WriteReportToFile() should fail when the parent is a file")
	}
}
