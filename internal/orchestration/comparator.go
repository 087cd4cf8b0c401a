package orchestration

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/sumbench/internal/errors"
	"github.com/agbru/sumbench/internal/logging"
	"github.com/agbru/sumbench/internal/summation"
	"github.com/agbru/sumbench/internal/timing"
)

const tracerName = "github.com/agbru/sumbench/internal/orchestration"

// TimingRecord is the elapsed time of one strategy on one input size.
// Records are created once and never modified.
type TimingRecord struct {
	Strategy string
	Size     int
	Elapsed  time.Duration
}

// Millis returns the elapsed time in whole milliseconds.
func (r TimingRecord) Millis() int64 { return timing.Millis(r.Elapsed) }

// Comparison holds one TimingRecord per strategy, in lineup order, for an
// input on which every strategy produced the same sum. The sums themselves are
// not kept.
type Comparison struct {
	Size    int
	Timings []TimingRecord
}

// RecordHook is called after each strategy run, before the sums are checked.
type RecordHook func(strategyIndex int, rec TimingRecord)

// Comparator times a fixed lineup of strategies on one input and verifies
// that they agree.
type Comparator struct {
	strategies []summation.Strategy
	logger     logging.Logger
	tracer     trace.Tracer
}

// ComparatorOption configures a Comparator.
type ComparatorOption func(*Comparator)

// WithLogger sets the logger used for per-strategy debug events and the
// mismatch diagnostic.
func WithLogger(l logging.Logger) ComparatorOption {
	return func(c *Comparator) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTracer sets the tracer that receives one span per comparison and one
// child span per strategy. The global otel tracer is used by default.
func WithTracer(t trace.Tracer) ComparatorOption {
	return func(c *Comparator) {
		if t != nil {
			c.tracer = t
		}
	}
}

// NewComparator returns a Comparator over strategies, which run in the given
// order. An empty lineup or a nil strategy is an invalid argument.
func NewComparator(strategies []summation.Strategy, opts ...ComparatorOption) (*Comparator, error) {
	if len(strategies) == 0 {
		return nil, apperrors.ValidationError{Field: "strategies", Message: "at least one strategy is required"}
	}
	for i, s := range strategies {
		if s == nil {
			return nil, apperrors.ValidationError{Field: fmt.Sprintf("strategies[%d]", i), Message: "is nil"}
		}
	}
	c := &Comparator{
		strategies: append([]summation.Strategy(nil), strategies...),
		logger:     logging.NopLogger{},
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Strategies returns the display names of the lineup, in run order.
func (c *Comparator) Strategies() []string {
	names := make([]string, len(c.strategies))
	for i, s := range c.strategies {
		names[i] = s.Name()
	}
	return names
}

// Compare runs every strategy once on values through timing.Execute, one
// after another, and returns their timings.
//
// If any two sums differ, Compare returns an apperrors.MismatchError carrying
// every strategy's sum and no Comparison. The caller must treat this as fatal
// and must not retry it.
func (c *Comparator) Compare(ctx context.Context, values []int32, hook RecordHook) (Comparison, error) {
	size := len(values)
	ctx, span := c.tracer.Start(ctx, "sumbench.compare",
		trace.WithAttributes(attribute.Int("input.size", size)))
	defer span.End()

	timings := make([]TimingRecord, len(c.strategies))
	sums := make([]apperrors.StrategySum, len(c.strategies))

	for i, s := range c.strategies {
		_, strategySpan := c.tracer.Start(ctx, "sumbench.strategy",
			trace.WithAttributes(attribute.String("strategy", s.Name())))
		sum, elapsed, err := timing.Execute(values, s.Sum)
		if err != nil {
			strategySpan.RecordError(err)
			strategySpan.End()
			return Comparison{}, apperrors.WrapError(err, "timing strategy %q", s.Name())
		}
		strategySpan.SetAttributes(
			attribute.Int64("sum", sum),
			attribute.Int64("elapsed_ns", elapsed.Nanoseconds()),
		)
		strategySpan.End()

		timings[i] = TimingRecord{Strategy: s.Name(), Size: size, Elapsed: elapsed}
		sums[i] = apperrors.StrategySum{Strategy: s.Name(), Sum: sum}
		c.logger.Debug("strategy finished",
			logging.String("strategy", s.Name()),
			logging.Int("size", size),
			logging.Int64("sum", sum),
			logging.Duration("elapsed", elapsed),
		)
		if hook != nil {
			hook(i, timings[i])
		}
	}

	for _, s := range sums[1:] {
		if s.Sum != sums[0].Sum {
			err := apperrors.MismatchError{Size: size, Sums: sums}
			span.RecordError(err)
			span.SetStatus(codes.Error, "strategies disagree")
			c.logger.Error("data integrity fault", err, logging.Int("size", size))
			return Comparison{}, err
		}
	}
	return Comparison{Size: size, Timings: timings}, nil
}
