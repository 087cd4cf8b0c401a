package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()
	strategies := []string{"chunked", "for", "parallel", "simple", "thread"}
	tests := []struct {
		shell    string
		contains []string
	}{
		{"bash", []string{"complete -F _sumbench_completions sumbench", "--sizes", "--strategies)", "all chunked for parallel simple thread", "--output|-o)", "compgen -f"}},
		{"zsh", []string{"#compdef sumbench", "'(-q --quiet)'{-q,--quiet}'[Suppress progress and logs]'", "--gc[Garbage collector control per size]:mode:(auto aggressive disabled)", "--metrics-file[Write Prometheus metrics to a file]:file:_files"}},
		{"fish", []string{"complete -c sumbench -f", "complete -c sumbench -l format -d 'Report format' -xa 'table json'", "-s o -l output", "-rF"}},
	}
	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell, strategies); err != nil {
				t.Fatalf("GenerateCompletion(%q) error = %v", tt.shell, err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("%s script missing %q", tt.shell, want)
				}
			}
		})
	}
}

func TestGenerateCompletion_Unsupported(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := GenerateCompletion(&buf, "powershell", nil); err == nil {
		t.Error("GenerateCompletion(powershell) should fail")
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be written for an unsupported shell, got %q", buf.String())
	}
}
