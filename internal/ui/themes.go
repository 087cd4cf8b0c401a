package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines lipgloss-compatible colors for every presentation layer.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Colored is false for NoColorTheme; renderers skip bold and other
	// attributes that are not colors when it is false.
	Colored bool
	// Text is the default foreground.
	Text lipgloss.TerminalColor
	// Border frames tables and panels.
	Border lipgloss.TerminalColor
	// Accent highlights headers and titles.
	Accent lipgloss.TerminalColor
	// Success marks the fastest strategy of a row and clean status lines.
	Success lipgloss.TerminalColor
	// Warning marks the slowest strategy of a row.
	Warning lipgloss.TerminalColor
	// Error is used for the data-integrity diagnostic.
	Error lipgloss.TerminalColor
	// Dim is used for secondary text such as the environment footer.
	Dim lipgloss.TerminalColor
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:    "dark",
		Colored: true,
		Text:    lipgloss.Color("#E0E0E0"),
		Border:  lipgloss.Color("#FF6600"),
		Accent:  lipgloss.Color("#FF8C00"),
		Success: lipgloss.Color("#9ece6a"),
		Warning: lipgloss.Color("#FFB347"),
		Error:   lipgloss.Color("#FF4444"),
		Dim:     lipgloss.Color("#666666"),
	}

	// LightTheme is optimized for light terminal backgrounds.
	LightTheme = Theme{
		Name:    "light",
		Colored: true,
		Text:    lipgloss.Color("#1A1A1A"),
		Border:  lipgloss.Color("#005FAF"),
		Accent:  lipgloss.Color("#0000AF"),
		Success: lipgloss.Color("#008700"),
		Warning: lipgloss.Color("#AF5F00"),
		Error:   lipgloss.Color("#AF0000"),
		Dim:     lipgloss.Color("#585858"),
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set or --no-color flag is provided.
	NoColorTheme = Theme{
		Name:    "none",
		Text:    lipgloss.NoColor{},
		Border:  lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
	}

	// currentTheme is the active theme used throughout the application.
	// Defaults to DarkTheme but can be changed via SetTheme or InitTheme.
	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// Foreground returns a style rendering text in c.
func (t Theme) Foreground(c lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

// Strong returns a style rendering text in c, bold when the theme is colored.
func (t Theme) Strong(c lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c).Bold(t.Colored)
}

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used for testing purposes to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme changes the active theme by name.
// Valid names are: "dark", "light", "none".
// Unknown names default to dark theme.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	switch name {
	case "light":
		currentTheme = LightTheme
	case "none":
		currentTheme = NoColorTheme
	default:
		currentTheme = DarkTheme
	}
}

// InitTheme initializes the theme based on the noColor flag and environment.
// It respects the NO_COLOR environment variable (https://no-color.org/) for
// accessibility. If noColor is true or NO_COLOR is set, colors are disabled.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}

	// Any value, even empty, disables colors (per no-color.org).
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}

	currentTheme = DarkTheme
}
