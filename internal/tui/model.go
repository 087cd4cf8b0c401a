package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/agbru/sumbench/internal/errors"
	"github.com/agbru/sumbench/internal/format"
	"github.com/agbru/sumbench/internal/orchestration"
	"github.com/agbru/sumbench/internal/sysmon"
)

// Layout constants for the TUI dashboard.
const (
	// ResultsPanelWidthPercent is the share of the width given to the timing
	// table when the panels sit side by side.
	ResultsPanelWidthPercent = 65
	// SideBySideMinWidth is the narrowest terminal that still shows the
	// results and metrics panels next to each other.
	SideBySideMinWidth = 100
	// SampleInterval is the period of the runtime and system samplers.
	SampleInterval = 500 * time.Millisecond
)

// ExecutionState holds the execution-related fields of a TUI session.
type ExecutionState struct {
	ctx        context.Context
	cancel     context.CancelFunc
	runner     *orchestration.Runner
	generation uint64
	done       bool
	exitCode   int
	report     orchestration.Report
}

// LayoutManager holds terminal dimensions and provides layout calculations.
type LayoutManager struct {
	width  int
	height int
}

func (l LayoutManager) sideBySide() bool {
	return l.width >= SideBySideMinWidth
}

// resultsWidth returns the width allocated to the results panel.
func (l LayoutManager) resultsWidth() int {
	if !l.sideBySide() {
		return l.width
	}
	return l.width * ResultsPanelWidthPercent / 100
}

// metricsWidth returns the width allocated to the metrics panel.
func (l LayoutManager) metricsWidth() int {
	if !l.sideBySide() {
		return l.width
	}
	return l.width - l.resultsWidth()
}

// Model is the root bubbletea model for the TUI dashboard.
type Model struct {
	header  HeaderModel
	results ResultsModel
	metrics MetricsModel
	spinner spinner.Model
	bar     progress.Model
	help    help.Model
	keymap  KeyMap

	ExecutionState
	LayoutManager

	parentCtx context.Context
	ref       *programRef
	paused    bool
	latest    orchestration.AggregatedProgress
}

// NewModel creates a new TUI model that benchmarks with runner.
func NewModel(parentCtx context.Context, runner *orchestration.Runner, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)

	return Model{
		header:  NewHeaderModel(version),
		results: NewResultsModel(runner.Strategies(), runner.Sizes()),
		metrics: NewMetricsModel(),
		spinner: spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(elapsedStyle)),
		bar:     progress.New(progress.WithDefaultGradient()),
		help:    help.New(),
		keymap:  DefaultKeyMap(),
		ExecutionState: ExecutionState{
			ctx:      ctx,
			cancel:   cancel,
			runner:   runner,
			exitCode: apperrors.ExitSuccess,
		},
		parentCtx: parentCtx,
		ref:       &programRef{},
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		tickCmd(),
		startRunCmd(m.ref, m.ctx, m.runner, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ProgressMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from a previous run
		}
		m.latest = msg.AggregatedProgress
		m.results.Record(msg.ProgressUpdate)
		return m, nil

	case ProgressDoneMsg:
		return m, nil

	case RunCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.finish(msg.Report, msg.Err)
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		if !m.paused {
			return m, tea.Batch(sampleMemStatsCmd(), sampleSysStatsCmd(), tickCmd())
		}
		return m, tickCmd()

	case MemStatsMsg:
		m.metrics.UpdateMemStats(msg)
		return m, nil

	case SysStatsMsg:
		m.metrics.UpdateSysStats(msg)
		return m, nil

	case ContextCancelledMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		if !m.done {
			m.done = true
			m.exitCode = apperrors.ExitErrorCanceled
			m.header.SetDone(true)
		}
		return m, tea.Quit
	}

	return m, nil
}

// finish records the outcome of the current run.
func (m *Model) finish(report orchestration.Report, err error) {
	m.done = true
	m.paused = false
	switch {
	case err == nil:
		m.report = report
		m.exitCode = apperrors.ExitSuccess
		m.results.Complete(report)
		m.header.SetDone(false)
	case errors.Is(err, context.Canceled):
		m.exitCode = apperrors.ExitErrorCanceled
		m.results.Fail(err)
		m.header.SetDone(true)
	default:
		m.exitCode = apperrors.ExitCodeFor(err)
		m.results.Fail(err)
		m.header.SetDone(true)
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if !m.done {
			m.done = true
			m.exitCode = apperrors.ExitErrorCanceled
		}
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Pause):
		if m.done {
			return m, nil
		}
		m.paused = !m.paused
		m.header.SetPaused(m.paused)
		return m, nil

	case key.Matches(msg, m.keymap.Toggle):
		m.results.ToggleEnvironment()
		return m, nil

	case key.Matches(msg, m.keymap.Rerun):
		// A run in flight is never interrupted: two concurrent runs would
		// skew each other's timings.
		if !m.done {
			return m, nil
		}
		if m.cancel != nil {
			m.cancel()
		}
		m.generation++
		ctx, cancel := context.WithCancel(m.parentCtx)
		m.ctx = ctx
		m.cancel = cancel

		m.header.Reset()
		m.results.Reset()
		m.metrics.Reset()
		m.latest = orchestration.AggregatedProgress{}
		m.report = orchestration.Report{}
		m.done = false
		m.exitCode = apperrors.ExitSuccess

		return m, tea.Batch(
			m.spinner.Tick,
			tickCmd(),
			startRunCmd(m.ref, m.ctx, m.runner, m.generation),
			watchContextCmd(m.ctx, m.generation),
		)
	}

	return m, nil
}

// progressView renders the spinner, bar and run counter.
func (m Model) progressView() string {
	total := len(m.runner.Sizes()) * len(m.runner.Strategies())
	indicator := m.spinner.View()
	if m.done {
		indicator = " "
	}
	line := fmt.Sprintf("%s %s %d/%d runs  ETA %s",
		indicator,
		m.bar.ViewAs(m.latest.Fraction),
		m.latest.Done, total,
		format.FormatETA(m.latest.ETA))
	if m.latest.Strategy != "" {
		line += metricLabelStyle.Render(fmt.Sprintf("  last: %s on %s", m.latest.Strategy, format.FormatSize(m.latest.Size)))
	}
	return " " + line
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var body string
	if m.sideBySide() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.results.View(), m.metrics.View())
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, m.results.View(), m.metrics.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		body,
		m.progressView(),
		" "+m.help.View(m.keymap),
	)
}

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.results.SetWidth(m.resultsWidth())
	m.metrics.SetWidth(m.metricsWidth())
	m.help.Width = m.width
	m.bar.Width = m.width / 3
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the validated report
// together with the exit code. The report is only meaningful when the exit
// code is ExitSuccess.
func Run(ctx context.Context, runner *orchestration.Runner, version string) (orchestration.Report, int) {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, runner, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	// Inject the program reference before running so bridge goroutines can Send.
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
			return orchestration.Report{}, apperrors.ExitErrorCanceled
		}
		return orchestration.Report{}, apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.report, m.exitCode
	}
	return orchestration.Report{}, apperrors.ExitErrorGeneric
}

// startRunCmd returns a tea.Cmd that runs the benchmark and reports its
// outcome as a RunCompleteMsg.
func startRunCmd(ref *programRef, ctx context.Context, runner *orchestration.Runner, gen uint64) tea.Cmd {
	return func() tea.Msg {
		reporter := &TUIProgressReporter{ref: ref, generation: gen}
		report, err := runner.WithReporter(reporter).Run(ctx, io.Discard)
		return RunCompleteMsg{Report: report, Err: err, Generation: gen}
	}
}

// tickCmd returns a command that sends a TickMsg after SampleInterval.
func tickCmd() tea.Cmd {
	return tea.Tick(SampleInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleMemStatsCmd reads runtime memory stats and returns a MemStatsMsg.
func sampleMemStatsCmd() tea.Cmd {
	return func() tea.Msg {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		return MemStatsMsg{
			Alloc:        ms.Alloc,
			HeapSys:      ms.HeapSys,
			NumGC:        ms.NumGC,
			PauseTotalNs: ms.PauseTotalNs,
			NumGoroutine: runtime.NumGoroutine(),
		}
	}
}

// sampleSysStatsCmd reads system-wide CPU and memory stats and returns a SysStatsMsg.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample()
		return SysStatsMsg{
			CPUPercent: s.CPUPercent,
			MemPercent: s.MemPercent,
		}
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Generation: gen}
	}
}
