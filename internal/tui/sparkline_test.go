package tui

import "testing"

func TestLoadWindow(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		size       int
		samples    []float64
		resize     int
		want       []float64
		wantLatest float64
	}{
		{"partial fill", 5, []float64{1, 2}, 0, []float64{1, 2}, 2},
		{"exact fill", 3, []float64{1, 2, 3}, 0, []float64{1, 2, 3}, 3},
		{"overflow drops oldest", 3, []float64{1, 2, 3, 4}, 0, []float64{2, 3, 4}, 4},
		{"zero size holds one sample", 0, []float64{7, 42}, 0, []float64{42}, 42},
		{"grow keeps samples", 3, []float64{1, 2, 3}, 5, []float64{1, 2, 3}, 3},
		{"shrink keeps newest", 5, []float64{1, 2, 3, 4, 5}, 3, []float64{3, 4, 5}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := newLoadWindow(tt.size)
			for _, v := range tt.samples {
				w.add(v)
			}
			if tt.resize > 0 {
				w.resize(tt.resize)
				if w.size != tt.resize {
					t.Errorf("size = %d, want %d", w.size, tt.resize)
				}
			}
			got := w.values()
			if len(got) != len(tt.want) {
				t.Fatalf("values() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("values()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
			if w.latest() != tt.wantLatest {
				t.Errorf("latest() = %v, want %v", w.latest(), tt.wantLatest)
			}
		})
	}
}

func TestLoadWindow_EmptyAndClear(t *testing.T) {
	t.Parallel()
	w := newLoadWindow(4)
	if w.latest() != 0 || w.values() != nil {
		t.Error("expected an empty window to report no samples")
	}
	w.add(1)
	w.add(2)
	w.clear()
	if len(w.samples) != 0 || w.values() != nil {
		t.Errorf("after clear: values() = %v", w.values())
	}
}

func TestSparkline(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		values []float64
		want   string
	}{
		{"empty", nil, ""},
		{"all zero", []float64{0, 0, 0}, "▁▁▁"},
		{"all max", []float64{100, 100}, "██"},
		{"clamped", []float64{-10, 150}, "▁█"},
		{"midpoint", []float64{50}, "▄"},
		{"ascending", []float64{0, 15, 29, 43, 58, 72, 86, 100}, "▁▂▃▄▅▆▇█"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := sparkline(tt.values); got != tt.want {
				t.Errorf("sparkline(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}
