// Package format renders durations, millisecond cells and input sizes as text.
package format

import (
	"fmt"
	"strconv"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
// This approach provides a more human-readable output for short durations.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatMillis renders a report cell: whole milliseconds followed by " ms".
func FormatMillis(ms int64) string {
	return strconv.FormatInt(ms, 10) + " ms"
}

// FormatSize renders an input length with "_" between groups of three
// digits, as in 10_000_000.
func FormatSize(n int) string {
	digits := strconv.Itoa(n)
	sign := ""
	if n < 0 {
		sign, digits = "-", digits[1:]
	}
	if len(digits) <= 3 {
		return sign + digits
	}

	out := make([]byte, 0, len(digits)+len(digits)/3)
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	out = append(out, digits[:lead]...)
	for i := lead; i < len(digits); i += 3 {
		out = append(out, '_')
		out = append(out, digits[i:i+3]...)
	}
	return sign + string(out)
}

// FormatETA renders a remaining-time estimate, or "--" when none is known.
func FormatETA(eta time.Duration) string {
	if eta <= 0 {
		return "--"
	}
	return eta.Round(100 * time.Millisecond).String()
}
