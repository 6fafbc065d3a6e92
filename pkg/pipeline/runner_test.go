package pipeline

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/blueprint/pkg/cache"
	"github.com/matzehuels/blueprint/pkg/chart"
	"github.com/matzehuels/blueprint/pkg/diagram"
	"github.com/matzehuels/blueprint/pkg/errors"
	"github.com/matzehuels/blueprint/pkg/observability"
)

// countingCache is an in-memory cache that records traffic.
type countingCache struct {
	mu         sync.Mutex
	data       map[string][]byte
	gets, sets int
}

func newCountingCache() *countingCache { return &countingCache{data: map[string][]byte{}} }

func (c *countingCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	d, ok := c.data[key]
	return d, ok, nil
}

func (c *countingCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.data[key] = data
	return nil
}

func (c *countingCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *countingCache) Close() error { return nil }

var _ cache.Cache = (*countingCache)(nil)

func TestRenderDiagram(t *testing.T) {
	r := NewRunner(nil, nil)
	res, err := r.RenderDiagram(context.Background(), diagram.Architecture(), Options{
		Formats: []string{FormatPNG, FormatSVG, FormatJSON},
	})
	if err != nil {
		t.Fatalf("RenderDiagram() error = %v", err)
	}

	if png := res.Artifacts[FormatPNG]; !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("png artifact missing PNG signature")
	}
	svg := string(res.Artifacts[FormatSVG])
	for _, want := range []string{"mcp-prompts-rs Architecture", "Desktop/Cloud", "esp-build.yml"} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
	if !strings.Contains(string(res.Artifacts[FormatJSON]), `"kind": "diagram"`) {
		t.Error("json artifact missing kind")
	}
	if res.Cached() {
		t.Error("Cached() = true with a null cache")
	}
}

func TestRenderChart(t *testing.T) {
	r := NewRunner(nil, nil)
	res, err := r.RenderChart(context.Background(), chart.PriorityChart(), Options{Formats: []string{FormatSVG}})
	if err != nil {
		t.Fatalf("RenderChart() error = %v", err)
	}
	svg := string(res.Artifacts[FormatSVG])
	for _, want := range []string{"HID USB soubor priority", "Kritické", ">10</text>", "Počet souborů"} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
}

func TestRenderCaches(t *testing.T) {
	ctx := context.Background()
	c := newCountingCache()
	r := NewRunner(c, nil)
	opts := Options{Formats: []string{FormatSVG, FormatJSON}}

	first, err := r.RenderChart(ctx, chart.PriorityChart(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.Cached() || c.sets != 2 {
		t.Errorf("first run: Cached() = %v, sets = %d, want false, 2", first.Cached(), c.sets)
	}

	second, err := r.RenderChart(ctx, chart.PriorityChart(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.Cached() {
		t.Error("second run not served from cache")
	}
	if !bytes.Equal(first.Artifacts[FormatSVG], second.Artifacts[FormatSVG]) {
		t.Error("cached artifact differs from rendered one")
	}

	gets := c.gets
	opts.Refresh = true
	third, err := r.RenderChart(ctx, chart.PriorityChart(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if third.Cached() || c.gets != gets {
		t.Errorf("refresh run: Cached() = %v, extra gets = %d", third.Cached(), c.gets-gets)
	}

	// A different model gets a different key.
	other := chart.PriorityChart()
	other.Bars[0].Count = 11
	res, err := r.RenderChart(ctx, other, Options{Formats: []string{FormatSVG}})
	if err != nil {
		t.Fatal(err)
	}
	if res.Cached() {
		t.Error("changed model served from cache")
	}
}

func TestRenderStyles(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(nil, nil)

	simple, err := r.RenderDiagram(ctx, diagram.Architecture(), Options{Formats: []string{FormatSVG}})
	if err != nil {
		t.Fatal(err)
	}
	hand, err := r.RenderDiagram(ctx, diagram.Architecture(), Options{Formats: []string{FormatSVG}, Style: "handdrawn"})
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(simple.Artifacts[FormatSVG], hand.Artifacts[FormatSVG]) {
		t.Error("handdrawn output equals simple output")
	}
	again, _ := r.RenderDiagram(ctx, diagram.Architecture(), Options{Formats: []string{FormatSVG}, Style: "handdrawn"})
	if !bytes.Equal(hand.Artifacts[FormatSVG], again.Artifacts[FormatSVG]) {
		t.Error("handdrawn output not deterministic for the same seed")
	}
}

func TestRenderGraphDOT(t *testing.T) {
	r := NewRunner(nil, nil)
	res, err := r.RenderDiagram(context.Background(), diagram.Architecture(), Options{
		VizType: VizTypeGraph,
		Formats: []string{FormatDOT},
	})
	if err != nil {
		t.Fatalf("RenderDiagram(graph) error = %v", err)
	}
	if !strings.HasPrefix(string(res.Artifacts[FormatDOT]), "digraph G {") {
		t.Errorf("dot artifact = %.40q", res.Artifacts[FormatDOT])
	}
}

func TestRenderInvalidModel(t *testing.T) {
	r := NewRunner(nil, nil)
	d := diagram.Architecture()
	d.Categories[0].Color = "cyan"
	_, err := r.RenderDiagram(context.Background(), d, Options{})
	if errors.GetCode(err) != errors.ErrCodeInvalidDiagram {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidDiagram)
	}

	c := chart.PriorityChart()
	c.Bars = nil
	_, err = r.RenderChart(context.Background(), c, Options{})
	if errors.GetCode(err) != errors.ErrCodeInvalidChart {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidChart)
	}
}

func TestRenderCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewRunner(nil, nil).RenderChart(ctx, chart.PriorityChart(), Options{}); err != context.Canceled {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

type recordingHooks struct {
	observability.NoopRenderHooks
	observability.NoopCacheHooks
	mu        sync.Mutex
	completes []string
	hits      int
}

func (h *recordingHooks) OnRenderComplete(_ context.Context, kind, format string, _ int, _ time.Duration, _ error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.completes = append(h.completes, kind+"/"+format)
}

func (h *recordingHooks) OnCacheHit(context.Context, string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hits++
}

func TestRenderEmitsHooks(t *testing.T) {
	h := &recordingHooks{}
	observability.SetRenderHooks(h)
	observability.SetCacheHooks(h)
	t.Cleanup(observability.Reset)

	r := NewRunner(newCountingCache(), nil)
	opts := Options{Formats: []string{FormatSVG}}
	for i := 0; i < 2; i++ {
		if _, err := r.RenderChart(context.Background(), chart.PriorityChart(), opts); err != nil {
			t.Fatal(err)
		}
	}
	if len(h.completes) != 1 || h.completes[0] != "chart/svg" {
		t.Errorf("render completes = %v, want [chart/svg]", h.completes)
	}
	if h.hits != 1 {
		t.Errorf("cache hits = %d, want 1", h.hits)
	}
}
