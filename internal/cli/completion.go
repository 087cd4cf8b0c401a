package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell completion functions generate from this registry, so adding
// a new flag only requires appending to flagRegistry.
type FlagCompletion struct {
	Long       string   // long flag name without "--" (e.g., "sizes")
	Short      string   // short flag without "-" (e.g., "o")
	Help       string   // description text
	Values     []string // suggested completion values (nil = boolean/no suggestions)
	ValueName  string   // label for the value in zsh (e.g., "list", "file")
	IsFile     bool     // true if the flag takes a file path
	IsStrategy bool     // true if values come from the strategy registry (dynamic)
}

// flagRegistry is the central list of all CLI flags for completion generation.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "sizes", Help: "Comma-separated input sizes", Values: []string{"100_000,1_000_000,10_000_000", "1_000", "100_000_000"}, ValueName: "list"},
	{Long: "strategies", Help: "Comma-separated strategies to run", IsStrategy: true, ValueName: "list"},
	{Long: "format", Help: "Report format", Values: []string{"table", "json"}, ValueName: "format"},
	{Long: "output", Short: "o", Help: "Also write the report to a file", IsFile: true, ValueName: "file"},
	{Long: "metrics-file", Help: "Write Prometheus metrics to a file", IsFile: true, ValueName: "file"},
	{Long: "gc", Help: "Garbage collector control per size", Values: []string{"auto", "aggressive", "disabled"}, ValueName: "mode"},
	{Long: "quiet", Short: "q", Help: "Suppress progress and logs"},
	{Long: "verbose", Short: "v", Help: "Debug logging and environment footer"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "tui", Help: "Run the interactive dashboard"},
	{Long: "gops", Help: "Start the gops diagnostics agent"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish"}, ValueName: "shell"},
}

// GenerateCompletion generates a shell completion script for the specified shell.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh", "fish").
//   - strategies: List of available strategy keys.
//
// Returns:
//   - error: An error if the shell is not supported or the write fails.
func GenerateCompletion(out io.Writer, shell string, strategies []string) error {
	var script string
	switch shell {
	case "bash":
		script = bashCompletion(strategies)
	case "zsh":
		script = zshCompletion(strategies)
	case "fish":
		script = fishCompletion(strategies)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish)", shell)
	}
	if _, err := io.WriteString(out, script); err != nil {
		return fmt.Errorf("completion %s generation failed: %w", shell, err)
	}
	return nil
}

// flagValues returns the completion words for f, or nil for free-form values.
func flagValues(f FlagCompletion, strategies []string) []string {
	if f.IsStrategy {
		return append([]string{"all"}, strategies...)
	}
	return f.Values
}

func flagNames(f FlagCompletion) []string {
	var names []string
	if f.Long != "" {
		names = append(names, "--"+f.Long)
	}
	if f.Short != "" {
		names = append(names, "-"+f.Short)
	}
	return names
}

func bashCompletion(strategies []string) string {
	var opts []string
	var cases strings.Builder
	for _, f := range flagRegistry {
		names := flagNames(f)
		opts = append(opts, names...)
		switch {
		case f.IsFile:
			fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n            return 0\n            ;;\n",
				strings.Join(names, "|"))
		case len(flagValues(f, strategies)) > 0:
			fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;\n",
				strings.Join(names, "|"), strings.Join(flagValues(f, strategies), " "))
		}
	}

	return fmt.Sprintf(`# Bash completion script for sumbench
# Add this to your ~/.bashrc or ~/.bash_completion

_sumbench_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="%s"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _sumbench_completions sumbench
`, strings.Join(opts, " "), cases.String())
}

// zshArgEntry formats a single FlagCompletion as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion, strategies []string) string {
	valueSuffix := ""
	if f.IsFile {
		valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
	} else if values := flagValues(f, strategies); len(values) > 0 {
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(values, " "))
	}

	if f.Long != "" && f.Short != "" {
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix)
	}
	return fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, valueSuffix)
}

func zshCompletion(strategies []string) string {
	args := make([]string, len(flagRegistry))
	for i, f := range flagRegistry {
		args[i] = zshArgEntry(f, strategies)
	}
	return fmt.Sprintf(`#compdef sumbench

# Zsh completion script for sumbench
# Add this to your ~/.zshrc or place in $fpath

_sumbench() {
    _arguments -s \
%s
}

_sumbench "$@"
`, strings.Join(args, " \\\n"))
}

// fishCompleteLine formats a single FlagCompletion as a fish complete command.
func fishCompleteLine(f FlagCompletion, strategies []string) string {
	parts := []string{"complete -c sumbench"}
	if f.Short != "" {
		parts = append(parts, "-s "+f.Short)
	}
	if f.Long != "" {
		parts = append(parts, "-l "+f.Long)
	}
	parts = append(parts, fmt.Sprintf("-d '%s'", f.Help))

	if f.IsFile {
		parts = append(parts, "-rF")
	} else if values := flagValues(f, strategies); len(values) > 0 {
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(values, " ")))
	}
	return strings.Join(parts, " ")
}

func fishCompletion(strategies []string) string {
	lines := []string{
		"# Fish completion script for sumbench",
		"# Add this to ~/.config/fish/completions/sumbench.fish",
		"",
		"complete -c sumbench -f",
	}
	for _, f := range flagRegistry {
		lines = append(lines, fishCompleteLine(f, strategies))
	}
	return strings.Join(lines, "\n") + "\n"
}
