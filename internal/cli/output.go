package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agbru/sumbench/internal/orchestration"
)

// WriteReportToFile renders report with presenter into path, creating parent
// directories as needed.
//
// Parameters:
//   - report: The completed report.
//   - presenter: The renderer, e.g. a TableReportPresenter with NoColorTheme.
//   - path: The destination file; an empty path writes nothing.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteReportToFile(report orchestration.Report, presenter orchestration.ResultPresenter, path string) (err error) {
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	if err := presenter.PresentReport(report, file); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
