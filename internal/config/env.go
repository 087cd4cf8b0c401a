// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strings"
)

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the SUMBENCH_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of all environment variable overrides.
// Malformed values are ignored and the default is kept.
var envOverrides = []envOverride{
	// List overrides
	{"SIZES", []string{"sizes"}, func(c *AppConfig, v string) {
		if parsed, err := ParseSizes(v); err == nil {
			c.Sizes = parsed
		}
	}},
	{"STRATEGIES", []string{"strategies"}, func(c *AppConfig, v string) {
		if items := splitList(v); len(items) > 0 {
			c.Strategies = items
		}
	}},

	// String overrides
	{"FORMAT", []string{"format"}, func(c *AppConfig, v string) {
		c.Format = v
	}},
	{"OUTPUT", []string{"output", "o"}, func(c *AppConfig, v string) {
		c.OutputFile = v
	}},
	{"METRICS_FILE", []string{"metrics-file"}, func(c *AppConfig, v string) {
		c.MetricsFile = v
	}},
	{"GC", []string{"gc"}, func(c *AppConfig, v string) {
		c.GCMode = v
	}},

	// Boolean overrides
	{"VERBOSE", []string{"v", "verbose"}, func(c *AppConfig, v string) {
		c.Verbose = parseBoolEnv(v, c.Verbose)
	}},
	{"QUIET", []string{"quiet", "q"}, func(c *AppConfig, v string) {
		c.Quiet = parseBoolEnv(v, c.Quiet)
	}},
	{"NO_COLOR", []string{"no-color"}, func(c *AppConfig, v string) {
		c.NoColor = parseBoolEnv(v, c.NoColor)
	}},
	{"TUI", []string{"tui"}, func(c *AppConfig, v string) {
		c.TUI = parseBoolEnv(v, c.TUI)
	}},
	{"GOPS", []string{"gops"}, func(c *AppConfig, v string) {
		c.Gops = parseBoolEnv(v, c.Gops)
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables (all prefixed with SUMBENCH_):
//   - SIZES, STRATEGIES, FORMAT, OUTPUT, METRICS_FILE, GC,
//     VERBOSE, QUIET, NO_COLOR, TUI, GOPS
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
