package orchestration

import (
	"testing"
	"time"
)

func TestNewProgressAggregator(t *testing.T) {
	t.Parallel()
	if agg := NewProgressAggregator(0); agg != nil {
		t.Error("expected nil aggregator for totalRuns=0")
	}
	if agg := NewProgressAggregator(-1); agg != nil {
		t.Error("expected nil aggregator for totalRuns=-1")
	}
	agg := NewProgressAggregator(4)
	if agg == nil || agg.Total() != 4 {
		t.Fatalf("NewProgressAggregator(4) = %+v", agg)
	}
	if agg.ETA() != 0 {
		t.Errorf("initial ETA = %v, want 0", agg.ETA())
	}
}

func TestProgressAggregator_Update(t *testing.T) {
	t.Parallel()
	agg := NewProgressAggregator(4)
	start := agg.start
	clock := start
	agg.now = func() time.Time { return clock }

	clock = start.Add(2 * time.Second)
	ap := agg.Update(ProgressUpdate{Strategy: "Simple", Size: 100})
	if ap.Done != 1 || ap.Total != 4 || ap.Fraction != 0.25 {
		t.Errorf("after first update: %+v", ap)
	}
	if ap.Strategy != "Simple" || ap.Size != 100 {
		t.Errorf("update fields not carried: %+v", ap)
	}
	if ap.ETA != 6*time.Second {
		t.Errorf("ETA = %v, want 6s", ap.ETA)
	}

	clock = start.Add(4 * time.Second)
	agg.Update(ProgressUpdate{})
	agg.Update(ProgressUpdate{})
	ap = agg.Update(ProgressUpdate{})
	if ap.Fraction != 1 || ap.ETA != 0 {
		t.Errorf("after last update: fraction=%v eta=%v", ap.Fraction, ap.ETA)
	}

	// Extra updates never push progress past 100%.
	if ap = agg.Update(ProgressUpdate{}); ap.Done != 4 {
		t.Errorf("Done = %d after overflow update, want 4", ap.Done)
	}
}

func TestDrainChannel(t *testing.T) {
	t.Parallel()
	ch := make(chan ProgressUpdate, 3)
	ch <- ProgressUpdate{StrategyIndex: 0}
	ch <- ProgressUpdate{StrategyIndex: 1}
	ch <- ProgressUpdate{StrategyIndex: 2}
	close(ch)

	DrainChannel(ch)
	// If we reach here without deadlock, the test passes
}
