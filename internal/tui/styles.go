package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/sumbench/internal/ui"
)

// Style variables for the TUI dashboard.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle         lipgloss.Style
	headerStyle        lipgloss.Style
	titleStyle         lipgloss.Style
	versionStyle       lipgloss.Style
	elapsedStyle       lipgloss.Style
	panelTitleStyle    lipgloss.Style
	metricLabelStyle   lipgloss.Style
	metricValueStyle   lipgloss.Style
	pendingCellStyle   lipgloss.Style
	errorTextStyle     lipgloss.Style
	statusRunningStyle lipgloss.Style
	statusPausedStyle  lipgloss.Style
	statusDoneStyle    lipgloss.Style
	statusErrorStyle   lipgloss.Style
	cpuSparklineStyle  lipgloss.Style
	memSparklineStyle  lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
		Padding(0, 1)

	titleStyle = t.Strong(t.Accent)
	versionStyle = t.Foreground(t.Dim)
	elapsedStyle = t.Foreground(t.Accent)
	panelTitleStyle = t.Strong(t.Accent)

	metricLabelStyle = t.Foreground(t.Dim)
	metricValueStyle = t.Strong(t.Accent)
	pendingCellStyle = t.Foreground(t.Dim)
	errorTextStyle = t.Foreground(t.Error)

	statusRunningStyle = t.Strong(t.Success)
	statusPausedStyle = t.Strong(t.Warning)
	statusDoneStyle = t.Strong(t.Accent)
	statusErrorStyle = t.Strong(t.Error)

	cpuSparklineStyle = t.Foreground(t.Accent)
	memSparklineStyle = t.Foreground(t.Warning)
}
