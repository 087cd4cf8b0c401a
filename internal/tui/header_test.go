package tui

import (
	"strings"
	"testing"
	"time"
)

func TestHeaderModel_Lifecycle(t *testing.T) {
	t.Parallel()
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	h := NewHeaderModel("dev")
	h.now = func() time.Time { return clock }
	h.Reset()
	h.SetWidth(80)

	clock = clock.Add(1500 * time.Millisecond)
	if got := h.Elapsed(); got != 1500*time.Millisecond {
		t.Errorf("Elapsed() = %v, want 1.5s", got)
	}
	if view := h.View(); !strings.Contains(view, "RUNNING") || strings.Contains(view, "dev") {
		t.Errorf("unexpected running header %q", view)
	}

	h.SetPaused(true)
	if !strings.Contains(h.View(), "PAUSED") {
		t.Error("expected paused indicator")
	}

	h.SetDone(true)
	clock = clock.Add(time.Hour)
	if got := h.Elapsed(); got != 1500*time.Millisecond {
		t.Errorf("Elapsed() after done = %v, want frozen at 1.5s", got)
	}
	h.SetPaused(false)
	if !strings.Contains(h.View(), "FAILED") {
		t.Error("pausing must not override a finished status")
	}
}
