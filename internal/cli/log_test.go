package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/blueprint/pkg/cache"
	"github.com/matzehuels/blueprint/pkg/observability"
	"github.com/matzehuels/blueprint/pkg/pipeline"
)

func TestNewLoggerLevel(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		log   func(*log.Logger)
		want  bool
	}{
		{"info shown at info", LogInfo, func(l *log.Logger) { l.Info("Rendered chart") }, true},
		{"debug hidden at info", LogInfo, func(l *log.Logger) { l.Debug("wrote artifact") }, false},
		{"debug shown with --verbose", LogDebug, func(l *log.Logger) { l.Debug("wrote artifact") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("logged = %v, want %v (%q)", got, tt.want, buf.String())
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, LogInfo)).done("Rendered diagram")

	out := buf.String()
	if !strings.Contains(out, "Rendered diagram (") || !strings.HasSuffix(strings.TrimSpace(out), "s)") {
		t.Errorf("progress output = %q, want message with elapsed time", out)
	}
}

func TestLoggerContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext(empty) is not log.Default()")
	}
	l := newLogger(io.Discard, LogDebug)
	if got := loggerFromContext(withLogger(context.Background(), l)); got != l {
		t.Errorf("loggerFromContext() = %p, want %p", got, l)
	}
}

func TestRenderLogsArtifacts(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	old := statusOut
	statusOut = io.Discard
	t.Cleanup(func() { statusOut = old })

	var logs bytes.Buffer
	out := filepath.Join(t.TempDir(), "arch.svg")
	root := New(&logs, LogDebug).RootCommand()
	root.SetOut(io.Discard)
	root.SetArgs([]string{"diagram", "-f", "svg", "-o", out, "--no-cache"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("diagram error = %v", err)
	}

	got := logs.String()
	for _, want := range []string{
		"rendered", "kind=diagram", "format=svg",
		"wrote artifact", "path=" + out, "cached=false",
		"Rendered diagram (",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("debug log missing %q:\n%s", want, got)
		}
	}
}

func TestRenderLogsQuietAtInfo(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	old := statusOut
	statusOut = io.Discard
	t.Cleanup(func() { statusOut = old })

	var logs bytes.Buffer
	root := New(&logs, LogInfo).RootCommand()
	root.SetOut(io.Discard)
	root.SetArgs([]string{"chart", "-f", "svg", "-o", filepath.Join(t.TempDir(), "c.svg"), "--no-cache"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("chart error = %v", err)
	}
	if got := logs.String(); strings.Contains(got, "wrote artifact") || !strings.Contains(got, "Rendered chart") {
		t.Errorf("info log = %q, want only the completion line", got)
	}
}

func TestServeLogsRequests(t *testing.T) {
	var logs bytes.Buffer
	logger := newLogger(&logs, LogDebug)
	s := newServer(pipeline.NewRunner(cache.NewNullCache(), logger), observability.NewMetrics(), logger, pipeline.Options{})
	h := s.routes()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/chart.gif", nil))

	got := logs.String()
	for _, want := range []string{"request", "method=GET", "path=/healthz", "status=200", "path=/chart.gif", "status=400"} {
		if !strings.Contains(got, want) {
			t.Errorf("request log missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "request failed") {
		t.Errorf("client error logged as a server failure:\n%s", got)
	}
}
