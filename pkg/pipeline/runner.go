package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/blueprint/pkg/buildinfo"
	"github.com/matzehuels/blueprint/pkg/cache"
	"github.com/matzehuels/blueprint/pkg/chart"
	"github.com/matzehuels/blueprint/pkg/diagram"
	"github.com/matzehuels/blueprint/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. If c is nil caching is disabled; if logger is
// nil log output is discarded.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Cache: c, Logger: logger}
}

// RenderDiagram validates d and renders it in every requested format.
func (r *Runner) RenderDiagram(ctx context.Context, d *diagram.Diagram, opts Options) (*Result, error) {
	if err := opts.Validate(KindDiagram); err != nil {
		return nil, err
	}
	if err := d.Check(); err != nil {
		return nil, err
	}

	var draw func(ctx context.Context, format string) ([]byte, error)
	if opts.IsGraph() {
		draw = func(ctx context.Context, format string) ([]byte, error) {
			return RenderGraph(ctx, d, format)
		}
	} else {
		l := DiagramLayout(d, opts)
		draw = func(ctx context.Context, format string) ([]byte, error) {
			return RenderLayout(ctx, l, KindDiagram, format, opts)
		}
	}
	return r.run(ctx, KindDiagram, d, opts, draw)
}

// RenderChart validates c and renders it in every requested format.
func (r *Runner) RenderChart(ctx context.Context, c *chart.BarChart, opts Options) (*Result, error) {
	if err := opts.Validate(KindChart); err != nil {
		return nil, err
	}
	if err := c.Check(); err != nil {
		return nil, err
	}

	l := ChartLayout(c, opts)
	return r.run(ctx, KindChart, c, opts, func(ctx context.Context, format string) ([]byte, error) {
		return RenderLayout(ctx, l, KindChart, format, opts)
	})
}

// run renders each format, consulting the cache first. The first failing
// format aborts the run.
func (r *Runner) run(ctx context.Context, kind string, model any, opts Options,
	draw func(context.Context, string) ([]byte, error)) (*Result, error) {
	start := time.Now()
	res := &Result{
		Artifacts: make(map[string][]byte, len(opts.Formats)),
		CacheHits: make(map[string]bool),
	}

	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		key := cache.ArtifactKey(model, opts.ArtifactKeyOpts(kind, format, buildinfo.Stamp()))

		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, kind)
				r.Logger.Debug("cache hit", "kind", kind, "format", format)
				res.Artifacts[format] = data
				res.CacheHits[format] = true
				continue
			} else if err != nil {
				r.Logger.Warn("cache lookup failed", "kind", kind, "format", format, "error", err)
			}
			observability.Cache().OnCacheMiss(ctx, kind)
		}

		renderStart := time.Now()
		observability.Render().OnRenderStart(ctx, kind, format)
		data, err := draw(ctx, format)
		observability.Render().OnRenderComplete(ctx, kind, format, len(data), time.Since(renderStart), err)
		if err != nil {
			return nil, err
		}
		r.Logger.Debug("rendered", "kind", kind, "format", format, "bytes", len(data), "duration", time.Since(renderStart))

		if err := r.Cache.Set(ctx, key, data, cache.DefaultTTL); err != nil {
			r.Logger.Warn("cache write failed", "kind", kind, "format", format, "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, kind, len(data))
		}
		res.Artifacts[format] = data
	}

	res.Duration = time.Since(start)
	return res, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
