package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sampleHistory is the number of CPU and memory samples kept for sparklines.
const sampleHistory = 40

// MetricsModel displays runtime memory statistics and system load history.
type MetricsModel struct {
	alloc        uint64
	heapSys      uint64
	numGC        uint32
	pauseTotalNs uint64
	numGoroutine int
	cpu          *loadWindow
	mem          *loadWindow
	width        int
}

// NewMetricsModel creates a new metrics panel.
func NewMetricsModel() MetricsModel {
	return MetricsModel{
		cpu: newLoadWindow(sampleHistory),
		mem: newLoadWindow(sampleHistory),
	}
}

// SetWidth updates the panel width and resizes the sample history to fit.
func (m *MetricsModel) SetWidth(w int) {
	m.width = w
	if spark := w - 22; spark > 0 {
		m.cpu.resize(spark)
		m.mem.resize(spark)
	}
}

// UpdateMemStats updates memory statistics.
func (m *MetricsModel) UpdateMemStats(msg MemStatsMsg) {
	m.alloc = msg.Alloc
	m.heapSys = msg.HeapSys
	m.numGC = msg.NumGC
	m.pauseTotalNs = msg.PauseTotalNs
	m.numGoroutine = msg.NumGoroutine
}

// UpdateSysStats appends a system load sample.
func (m *MetricsModel) UpdateSysStats(msg SysStatsMsg) {
	m.cpu.add(msg.CPUPercent)
	m.mem.add(msg.MemPercent)
}

// Reset clears the load history.
func (m *MetricsModel) Reset() {
	m.cpu.clear()
	m.mem.clear()
}

// View renders the metrics panel.
func (m MetricsModel) View() string {
	var rows strings.Builder
	rows.WriteString(panelTitleStyle.Render("Runtime"))
	rows.WriteString("\n")
	rows.WriteString(formatMetricCol("Heap:", formatBytes(m.alloc)+" / "+formatBytes(m.heapSys), 0))
	rows.WriteString("\n")
	rows.WriteString(formatMetricCol("GC:", fmt.Sprintf("%d (%.1fms)", m.numGC, float64(m.pauseTotalNs)/1e6), 0))
	rows.WriteString("\n")
	rows.WriteString(formatMetricCol("Goroutines:", fmt.Sprintf("%d", m.numGoroutine), 0))
	rows.WriteString("\n")
	rows.WriteString(formatMetricCol("CPU:", fmt.Sprintf("%5.1f%% ", m.cpu.latest())+cpuSparklineStyle.Render(sparkline(m.cpu.values())), 0))
	rows.WriteString("\n")
	rows.WriteString(formatMetricCol("Memory:", fmt.Sprintf("%5.1f%% ", m.mem.latest())+memSparklineStyle.Render(sparkline(m.mem.values())), 0))

	style := panelStyle
	if m.width > 2 {
		style = style.Width(m.width - 2)
	}
	return style.Render(rows.String())
}

// formatMetricCol renders a label/value pair padded to colWidth visible
// columns. A colWidth of zero disables padding.
func formatMetricCol(label, value string, colWidth int) string {
	cell := fmt.Sprintf("%s %s",
		metricLabelStyle.Render(fmt.Sprintf("%-12s", label)),
		metricValueStyle.Render(value))
	visible := lipgloss.Width(cell)
	if visible < colWidth {
		cell += strings.Repeat(" ", colWidth-visible)
	}
	return cell
}

func formatBytes(b uint64) string {
	switch {
	case b >= 1<<30:
		return fmt.Sprintf("%.1f GB", float64(b)/(1<<30))
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
