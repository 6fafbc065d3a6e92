package cli

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompletionScripts(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		out, err := execute(t, "completion", shell)
		if err != nil {
			t.Fatalf("completion %s error = %v", shell, err)
		}
		if !strings.Contains(out, appName) {
			t.Errorf("completion %s script does not mention %s", shell, appName)
		}
	}
	if _, err := execute(t, "completion", "tcsh"); err == nil {
		t.Error("completion tcsh error = nil")
	}
}

// complete runs cobra's hidden completion command and returns the offered
// values and the directive line.
func complete(t *testing.T, args ...string) ([]string, string) {
	t.Helper()
	out, err := execute(t, append([]string{"__complete"}, args...)...)
	if err != nil {
		t.Fatalf("__complete %v error = %v", args, err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	return lines[:len(lines)-1], lines[len(lines)-1]
}

func TestFlagValueCompletion(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		want      []string
		directive string
	}{
		{"diagram style", []string{"diagram", "--style", ""}, []string{"simple", "handdrawn"}, ":4"},
		{"diagram type", []string{"diagram", "--type", ""}, []string{"plot", "graph"}, ":4"},
		{"diagram format", []string{"diagram", "--format", ""}, []string{"png", "svg", "pdf", "json", "dot"}, ":6"},
		{"chart format", []string{"chart", "-f", ""}, []string{"png", "svg", "pdf", "json"}, ":6"},
		{"format list", []string{"chart", "-f", "png,s"}, []string{"png,svg", "png,pdf", "png,json"}, ":6"},
		{"catalog kind", []string{"catalog", "--kind", ""}, []string{"config", "source", "ci", "script", "data", "test", "docs"}, ":4"},
		{"catalog format", []string{"catalog", "--format", ""}, []string{"text", "json", "table"}, ":4"},
		{"export format", []string{"export", "--format", ""}, []string{"toml", "yaml", "json"}, ":4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, directive := complete(t, tt.args...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("completions mismatch (-want +got):\n%s", diff)
			}
			if directive != tt.directive {
				t.Errorf("directive = %q, want %q", directive, tt.directive)
			}
		})
	}
}
