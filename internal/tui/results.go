package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/agbru/sumbench/internal/cli"
	"github.com/agbru/sumbench/internal/format"
	"github.com/agbru/sumbench/internal/orchestration"
	"github.com/agbru/sumbench/internal/timing"
	"github.com/agbru/sumbench/internal/ui"
)

// pendingCell marks a (size, strategy) run that has not finished yet.
const pendingCell = "…"

// ResultsModel renders the timing table while it fills up, then the final
// report once every size has been validated.
type ResultsModel struct {
	strategies []string
	sizes      []int
	cells      [][]string
	report     *orchestration.Report
	failure    string
	showEnv    bool
	width      int
}

// NewResultsModel creates an empty table for the given columns and rows.
func NewResultsModel(strategies []string, sizes []int) ResultsModel {
	m := ResultsModel{strategies: strategies, sizes: sizes}
	m.Reset()
	return m
}

// Reset clears every cell and any previous outcome.
func (m *ResultsModel) Reset() {
	m.cells = make([][]string, len(m.sizes))
	for i := range m.cells {
		row := make([]string, len(m.strategies))
		for j := range row {
			row[j] = pendingCell
		}
		m.cells[i] = row
	}
	m.report = nil
	m.failure = ""
}

// SetWidth updates the available width.
func (m *ResultsModel) SetWidth(w int) { m.width = w }

// ToggleEnvironment shows or hides the environment description.
func (m *ResultsModel) ToggleEnvironment() { m.showEnv = !m.showEnv }

// Record fills the cell of one finished run. Updates outside the table are
// ignored.
func (m *ResultsModel) Record(u orchestration.ProgressUpdate) {
	if u.SizeIndex < 0 || u.SizeIndex >= len(m.cells) {
		return
	}
	row := m.cells[u.SizeIndex]
	if u.StrategyIndex < 0 || u.StrategyIndex >= len(row) {
		return
	}
	row[u.StrategyIndex] = format.FormatMillis(timing.Millis(u.Elapsed))
}

// Complete replaces the live table with the validated report.
func (m *ResultsModel) Complete(report orchestration.Report) {
	m.report = &report
}

// Fail discards every timing and keeps only the diagnostic: a run that
// failed validation has no table to show.
func (m *ResultsModel) Fail(err error) {
	var b strings.Builder
	cli.DisplayError(err, &b)
	m.failure = strings.TrimRight(b.String(), "\n")
	m.report = nil
	for _, row := range m.cells {
		for j := range row {
			row[j] = pendingCell
		}
	}
}

func (m ResultsModel) liveTable(theme ui.Theme) string {
	header := append([]string{cli.SizeHeader}, m.strategies...)
	rows := make([][]string, len(m.sizes))
	for i, size := range m.sizes {
		rows[i] = append([]string{format.FormatSize(size)}, m.cells[i]...)
	}

	base := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(theme.Foreground(theme.Border)).
		Headers(header...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return base.Inherit(theme.Strong(theme.Accent))
			case col > 0 && rows[row][col] == pendingCell:
				return base.Align(lipgloss.Right).Inherit(pendingCellStyle)
			default:
				return base.Align(lipgloss.Right).Foreground(theme.Text)
			}
		}).
		Render()
}

// View renders the results panel.
func (m ResultsModel) View() string {
	theme := ui.GetCurrentTheme()

	var body string
	switch {
	case m.failure != "":
		body = errorTextStyle.Render(m.failure)
	case m.report != nil:
		body = cli.RenderTable(*m.report, theme)
		if m.showEnv {
			body += "\n" + versionStyle.Render(cli.FormatEnvironment(m.report.Environment))
		}
	default:
		body = m.liveTable(theme)
	}

	content := panelTitleStyle.Render("Timings") + "\n" + body
	style := panelStyle
	if m.width > 0 {
		style = style.MaxWidth(m.width)
	}
	return style.Render(content)
}
