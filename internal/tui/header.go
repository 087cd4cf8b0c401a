package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/sumbench/internal/format"
)

// runStatus is the lifecycle state shown on the right of the header.
type runStatus int

const (
	statusRunning runStatus = iota
	statusPaused
	statusDone
	statusFailed
)

// HeaderModel renders the top bar: title, version, elapsed time and status.
type HeaderModel struct {
	startTime time.Time
	endTime   time.Time
	version   string
	status    runStatus
	width     int
	now       func() time.Time
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{
		startTime: time.Now(),
		version:   version,
		now:       time.Now,
	}
}

// SetDone freezes the elapsed timer and records whether the run failed.
func (h *HeaderModel) SetDone(failed bool) {
	h.endTime = h.now()
	h.status = statusDone
	if failed {
		h.status = statusFailed
	}
}

// SetPaused toggles the paused indicator while the run is still going.
func (h *HeaderModel) SetPaused(paused bool) {
	if h.status != statusRunning && h.status != statusPaused {
		return
	}
	h.status = statusRunning
	if paused {
		h.status = statusPaused
	}
}

// Reset restarts the elapsed timer.
func (h *HeaderModel) Reset() {
	h.startTime = h.now()
	h.endTime = time.Time{}
	h.status = statusRunning
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// Elapsed returns the time since the run started, frozen once it is done.
func (h HeaderModel) Elapsed() time.Duration {
	if !h.endTime.IsZero() {
		return h.endTime.Sub(h.startTime)
	}
	return h.now().Sub(h.startTime)
}

func (h HeaderModel) statusView() string {
	switch h.status {
	case statusPaused:
		return statusPausedStyle.Render("PAUSED")
	case statusDone:
		return statusDoneStyle.Render("DONE")
	case statusFailed:
		return statusErrorStyle.Render("FAILED")
	default:
		return statusRunningStyle.Render("RUNNING")
	}
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "sumbench"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	title := titleStyle.Render(titleText)
	pipe := versionStyle.Render(" | ")
	elapsed := elapsedStyle.Render(fmt.Sprintf("Elapsed: %s", format.FormatExecutionDuration(h.Elapsed())))

	left := title + pipe + elapsed
	right := h.statusView()

	gap := h.width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return headerStyle.Render(left + strings.Repeat(" ", gap) + right)
}
