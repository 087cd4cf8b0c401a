package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestMetricsModel_View(t *testing.T) {
	t.Parallel()
	m := NewMetricsModel()
	m.SetWidth(60)
	m.UpdateMemStats(MemStatsMsg{
		Alloc:        50 << 20,
		HeapSys:      80 << 20,
		NumGC:        10,
		PauseTotalNs: 2_500_000,
		NumGoroutine: 8,
	})
	m.UpdateSysStats(SysStatsMsg{CPUPercent: 12.5, MemPercent: 40})

	view := m.View()
	for _, want := range []string{"Runtime", "Heap", "50.0 MB / 80.0 MB", "10 (2.5ms)", "Goroutines", "12.5%", "40.0%"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q:\n%s", want, view)
		}
	}
}

func TestMetricsModel_SetWidthResizesHistory(t *testing.T) {
	t.Parallel()
	m := NewMetricsModel()
	m.SetWidth(32)
	if m.cpu.size != 10 || m.mem.size != 10 {
		t.Errorf("history size = %d/%d, want 10", m.cpu.size, m.mem.size)
	}

	m.SetWidth(10)
	if m.cpu.size != 10 {
		t.Errorf("narrow width changed window size to %d", m.cpu.size)
	}
}

func TestMetricsModel_Reset(t *testing.T) {
	t.Parallel()
	m := NewMetricsModel()
	m.UpdateSysStats(SysStatsMsg{CPUPercent: 50, MemPercent: 50})
	m.Reset()
	if len(m.cpu.samples) != 0 || len(m.mem.samples) != 0 {
		t.Error("expected Reset to clear the load history")
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input uint64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"bytes", 512, "512 B"},
		{"just below KB", 1023, "1023 B"},
		{"exact KB", 1024, "1.0 KB"},
		{"kilobytes", 5 << 10, "5.0 KB"},
		{"megabytes", 50 << 20, "50.0 MB"},
		{"gigabytes", 2 << 30, "2.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := formatBytes(tt.input); got != tt.want {
				t.Errorf("formatBytes(%d) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatMetricCol(t *testing.T) {
	t.Parallel()
	col := formatMetricCol("Memory:", "50.0 MB", 30)
	if !strings.Contains(col, "Memory") || !strings.Contains(col, "50.0 MB") {
		t.Errorf("column %q is missing its label or value", col)
	}
	if w := lipgloss.Width(col); w != 30 {
		t.Errorf("column width = %d, want 30", w)
	}
}
