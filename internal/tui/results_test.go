package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/agbru/sumbench/internal/orchestration"
	"github.com/agbru/sumbench/internal/sysmon"
)

func TestResultsModel_Record(t *testing.T) {
	t.Parallel()
	m := NewResultsModel([]string{"Simple", "Fork-Join-For"}, []int{100_000, 1_000_000})

	m.Record(orchestration.ProgressUpdate{SizeIndex: 1, StrategyIndex: 1, Elapsed: 12*time.Millisecond + 900*time.Microsecond})
	m.Record(orchestration.ProgressUpdate{SizeIndex: 5, StrategyIndex: 0, Elapsed: time.Second})
	m.Record(orchestration.ProgressUpdate{SizeIndex: 0, StrategyIndex: -1, Elapsed: time.Second})

	want := [][]string{{pendingCell, pendingCell}, {pendingCell, "12 ms"}}
	for i := range want {
		for j := range want[i] {
			if m.cells[i][j] != want[i][j] {
				t.Errorf("cell[%d][%d] = %q, want %q", i, j, m.cells[i][j], want[i][j])
			}
		}
	}

	view := m.View()
	for _, s := range []string{"Timings", "int[]", "100_000", "1_000_000", "12 ms"} {
		if !strings.Contains(view, s) {
			t.Errorf("view missing %q:\n%s", s, view)
		}
	}
}

func TestResultsModel_CompleteAndEnvironment(t *testing.T) {
	t.Parallel()
	m := NewResultsModel([]string{"Simple"}, []int{10})
	m.Complete(orchestration.Report{
		Strategies:  []string{"Simple"},
		Rows:        []orchestration.Comparison{{Size: 10, Timings: []orchestration.TimingRecord{{Strategy: "Simple", Size: 10, Elapsed: 4 * time.Millisecond}}}},
		Environment: sysmon.Environment{GoVersion: "go-test", OS: "linux", Arch: "amd64", NumCPU: 2, GOMAXPROCS: 2},
	})

	if view := m.View(); !strings.Contains(view, "4 ms") || strings.Contains(view, "go-test") {
		t.Errorf("unexpected completed view:\n%s", view)
	}
	m.ToggleEnvironment()
	if view := m.View(); !strings.Contains(view, "go-test linux/amd64") {
		t.Errorf("expected environment in view:\n%s", view)
	}
}

func TestResultsModel_FailHidesTimings(t *testing.T) {
	t.Parallel()
	m := NewResultsModel([]string{"Simple"}, []int{10})
	m.Record(orchestration.ProgressUpdate{Elapsed: 9 * time.Millisecond})
	m.Fail(errors.New("boom"))

	view := m.View()
	if !strings.Contains(view, "boom") {
		t.Errorf("expected diagnostic in view:\n%s", view)
	}
	if strings.Contains(view, "9 ms") {
		t.Errorf("failed run still shows timings:\n%s", view)
	}

	m.Reset()
	if m.failure != "" || m.report != nil {
		t.Error("Reset should clear the previous outcome")
	}
}
