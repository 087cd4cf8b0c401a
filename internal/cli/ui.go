//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

// Package cli renders benchmark progress and reports for the terminal and
// generates shell completion scripts.
//
// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//   - Format* and Render* functions return strings without performing I/O.
//   - Write* functions write data to files on the filesystem.
package cli

import (
	"strings"
	"time"

	"github.com/briandowns/spinner"
)

const (
	ProgressRefreshRate = 200 * time.Millisecond
	ProgressBarWidth    = 24
)

// Spinner is the part of a terminal spinner DisplayProgress drives. Tests
// substitute the gomock implementation in cli/mocks.
type Spinner interface {
	Start()
	Stop()
	// UpdateSuffix replaces the text shown after the spinner glyph.
	UpdateSuffix(suffix string)
}

type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

// UpdateSuffix swaps the suffix under the spinner's lock; the animation
// goroutine reads it concurrently.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// progressBar renders fraction (clamped to [0, 1]) as a bar of width cells.
func progressBar(fraction float64, width int) string {
	filled := int(min(max(fraction, 0), 1) * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
