package tui

import "strings"

// sparkBlocks are the eight bar heights of a sparkline, lowest first.
const sparkBlocks = "▁▂▃▄▅▆▇█"

// loadWindow keeps the most recent load samples (percentages), oldest first.
type loadWindow struct {
	samples []float64
	size    int
}

func newLoadWindow(size int) *loadWindow {
	return &loadWindow{size: max(size, 1)}
}

// add appends a sample and drops the oldest ones beyond the window size.
func (w *loadWindow) add(v float64) {
	w.samples = append(w.samples, v)
	if extra := len(w.samples) - w.size; extra > 0 {
		w.samples = append(w.samples[:0], w.samples[extra:]...)
	}
}

// latest returns the newest sample, or 0 when the window is empty.
func (w *loadWindow) latest() float64 {
	if len(w.samples) == 0 {
		return 0
	}
	return w.samples[len(w.samples)-1]
}

func (w *loadWindow) values() []float64 {
	if len(w.samples) == 0 {
		return nil
	}
	return append([]float64(nil), w.samples...)
}

// resize changes the window size; shrinking keeps the newest samples.
func (w *loadWindow) resize(size int) {
	w.size = max(size, 1)
	if extra := len(w.samples) - w.size; extra > 0 {
		w.samples = append(w.samples[:0], w.samples[extra:]...)
	}
}

func (w *loadWindow) clear() { w.samples = w.samples[:0] }

// sparkline draws one block per percentage, clamped to [0, 100].
func sparkline(percentages []float64) string {
	blocks := []rune(sparkBlocks)
	var b strings.Builder
	for _, p := range percentages {
		level := int(min(max(p, 0), 100) * 7 / 100)
		b.WriteRune(blocks[level])
	}
	return b.String()
}
