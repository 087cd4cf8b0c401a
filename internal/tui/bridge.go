package tui

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/sumbench/internal/orchestration"
)

// programRef is a shared reference to the tea.Program.
// Because bubbletea copies the model on every Update, we need a pointer
// that survives copies so the bridge goroutines can send messages.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe).
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// TUIProgressReporter implements orchestration.ProgressReporter.
// It drains the progress channel and forwards updates as bubbletea messages
// tagged with the generation of the run that produced them.
type TUIProgressReporter struct {
	ref        *programRef
	generation uint64
}

// Verify interface compliance.
var _ orchestration.ProgressReporter = (*TUIProgressReporter)(nil)

// DisplayProgress drains the progress channel and sends ProgressMsg to the TUI.
func (t *TUIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, totalRuns int, _ io.Writer) {
	defer wg.Done()

	agg := orchestration.NewProgressAggregator(totalRuns)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		t.ref.Send(ProgressDoneMsg{Generation: t.generation})
		return
	}

	for update := range progressChan {
		t.ref.Send(ProgressMsg{
			AggregatedProgress: agg.Update(update),
			Generation:         t.generation,
		})
	}
	t.ref.Send(ProgressDoneMsg{Generation: t.generation})
}
