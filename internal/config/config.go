// Package config parses command-line flags and SUMBENCH_* environment
// variables into an AppConfig.
package config

import (
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	apperrors "github.com/agbru/sumbench/internal/errors"
)

// EnvPrefix prefixes every environment variable the application reads.
const EnvPrefix = "SUMBENCH_"

// Output formats accepted by --format.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// GC modes accepted by --gc.
var gcModes = []string{"auto", "aggressive", "disabled"}

// Shells accepted by --completion.
var shells = []string{"bash", "zsh", "fish"}

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Sizes are the input lengths to benchmark, in report row order.
	Sizes []int
	// Strategies are the registry keys to run; "all" selects every strategy.
	Strategies []string
	// Format selects the report renderer: "table" or "json".
	Format string
	// OutputFile, if set, receives a copy of the rendered report.
	OutputFile string
	// MetricsFile, if set, receives the Prometheus text exposition of the run.
	MetricsFile string
	// GCMode controls the garbage collector around each size.
	GCMode string
	// Quiet suppresses the progress spinner and log output.
	Quiet bool
	// Verbose enables debug logging and the environment footer.
	Verbose bool
	// NoColor disables ANSI styling.
	NoColor bool
	// TUI runs the interactive dashboard instead of printing a report.
	TUI bool
	// Gops starts the gops diagnostics agent for the lifetime of the run.
	Gops bool
	// Completion, if set, prints a completion script for that shell and exits.
	Completion string
}

// Default returns the configuration used when no flag or variable is set.
func Default() AppConfig {
	return AppConfig{
		Sizes:      []int{100_000, 1_000_000, 10_000_000},
		Strategies: []string{"all"},
		Format:     FormatTable,
		GCMode:     "auto",
	}
}

// sizeList is a flag.Value holding a comma-separated list of input sizes.
type sizeList struct{ sizes *[]int }

func (s sizeList) String() string {
	if s.sizes == nil {
		return ""
	}
	return FormatSizes(*s.sizes)
}

func (s sizeList) Set(v string) error {
	parsed, err := ParseSizes(v)
	if err != nil {
		return err
	}
	*s.sizes = parsed
	return nil
}

// stringList is a flag.Value holding a comma-separated list of words.
type stringList struct{ items *[]string }

func (s stringList) String() string {
	if s.items == nil {
		return ""
	}
	return strings.Join(*s.items, ",")
}

func (s stringList) Set(v string) error {
	*s.items = splitList(v)
	return nil
}

// ParseSizes parses a comma-separated list of sizes. Each size may use "_"
// as a digit separator, as in "100_000".
func ParseSizes(s string) ([]int, error) {
	parts := splitList(s)
	if len(parts) == 0 {
		return nil, fmt.Errorf("no sizes in %q", s)
	}
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.ReplaceAll(p, "_", ""))
		if err != nil {
			return nil, fmt.Errorf("invalid size %q", p)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

// FormatSizes is the inverse of ParseSizes, without digit separators.
func FormatSizes(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, n := range sizes {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseConfig parses args into an AppConfig, applies SUMBENCH_* environment
// overrides for flags not given on the command line and validates the result.
//
// Parameters:
//   - programName: The name shown in usage output.
//   - args: The command-line arguments, without the program name.
//   - errorWriter: Where usage and flag errors are written.
//   - availableStrategies: The registry keys accepted by --strategies.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp for -h/--help, a ConfigError otherwise.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableStrategies []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := Default()
	fs.Var(sizeList{&config.Sizes}, "sizes", "Comma-separated input sizes; each run sums the sequence 1..N.")
	fs.Var(stringList{&config.Strategies}, "strategies", fmt.Sprintf("Comma-separated strategies to run: all, %s.", strings.Join(availableStrategies, ", ")))
	fs.StringVar(&config.Format, "format", config.Format, "Report format: table or json.")
	fs.StringVar(&config.OutputFile, "output", "", "Also write the report to this file.")
	fs.StringVar(&config.OutputFile, "o", "", "Shorthand for --output.")
	fs.StringVar(&config.MetricsFile, "metrics-file", "", "Write Prometheus metrics for the run to this file.")
	fs.StringVar(&config.GCMode, "gc", config.GCMode, "Garbage collector control per size: auto, aggressive or disabled.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Suppress progress and log output.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for --quiet.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Enable debug logging and print the environment.")
	fs.BoolVar(&config.Verbose, "v", false, "Shorthand for --verbose.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.BoolVar(&config.TUI, "tui", false, "Run the interactive dashboard.")
	fs.BoolVar(&config.Gops, "gops", false, "Start the gops diagnostics agent.")
	fs.StringVar(&config.Completion, "completion", "", "Print a completion script for bash, zsh or fish and exit.")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("%v", err)
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	applyEnvOverrides(&config, fs)

	if err := config.Validate(availableStrategies); err != nil {
		return AppConfig{}, err
	}
	return config, nil
}

// Validate checks the configuration for invalid combinations and values.
func (c AppConfig) Validate(availableStrategies []string) error {
	if len(c.Sizes) == 0 {
		return apperrors.NewConfigError("at least one size is required")
	}
	for _, n := range c.Sizes {
		if n < 0 || n > math.MaxInt32 {
			return apperrors.NewConfigError("size %d is outside [0, %d]", n, math.MaxInt32)
		}
	}
	if len(c.Strategies) == 0 {
		return apperrors.NewConfigError("at least one strategy is required")
	}
	if !(len(c.Strategies) == 1 && c.Strategies[0] == "all") {
		for _, s := range c.Strategies {
			if !contains(availableStrategies, s) {
				return apperrors.NewConfigError("unknown strategy %q (available: all, %s)", s, strings.Join(availableStrategies, ", "))
			}
		}
	}
	if c.Format != FormatTable && c.Format != FormatJSON {
		return apperrors.NewConfigError("unknown format %q (want %s or %s)", c.Format, FormatTable, FormatJSON)
	}
	if !contains(gcModes, c.GCMode) {
		return apperrors.NewConfigError("unknown gc mode %q (want %s)", c.GCMode, strings.Join(gcModes, ", "))
	}
	if c.Quiet && c.Verbose {
		return apperrors.NewConfigError("--quiet and --verbose are mutually exclusive")
	}
	if c.Completion != "" && !contains(shells, c.Completion) {
		return apperrors.NewConfigError("unsupported shell %q (want %s)", c.Completion, strings.Join(shells, ", "))
	}
	if c.TUI && c.Format == FormatJSON {
		return apperrors.NewConfigError("--tui cannot be combined with --format json")
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
