package cli

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/blueprint/pkg/buildinfo"
	"github.com/matzehuels/blueprint/pkg/catalog"
	"github.com/matzehuels/blueprint/pkg/chart"
	"github.com/matzehuels/blueprint/pkg/diagram"
	"github.com/matzehuels/blueprint/pkg/errors"
	"github.com/matzehuels/blueprint/pkg/observability"
	"github.com/matzehuels/blueprint/pkg/pipeline"
)

const (
	defaultAddr     = "localhost:8080"
	shutdownTimeout = 5 * time.Second
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr     string
	noCache  bool
	cacheURL string
}

// serveCommand creates the command that serves rendered previews over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: defaultAddr}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve diagram, chart and catalog previews over HTTP",
		Long: `Serve the reports over HTTP:

  GET /diagram.{png,svg,pdf,json,dot}   architecture diagram
  GET /chart.{png,svg,pdf,json}         priority bar chart
  GET /catalog                          text report
  GET /catalog.json                     partitioned catalog
  GET /metrics                          Prometheus metrics
  GET /healthz                          liveness probe

Render endpoints accept the style, width, height, scale, seed and refresh
query parameters; /diagram also accepts type=graph. Sizes must be finite,
positive and at most 8192 pixels per side, after scaling for PNG.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().StringVar(&opts.cacheURL, "cache-url", "", "cache backend: file:///dir, redis://host:6379/0 or none")

	return cmd
}

// runServe serves until ctx is cancelled, then shuts down gracefully.
func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	runner, err := c.newRunner(ctx, opts.cacheURL, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	metrics := observability.NewMetrics()
	observability.SetRenderHooks(metrics)
	observability.SetCacheHooks(metrics)
	observability.SetHTTPHooks(metrics)
	defer observability.Reset()

	s := newServer(runner, metrics, c.Logger, c.defaultOptions())
	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	printSuccess("Serving previews")
	printInfo("Listening on %s", StyleHighlight.Render("http://"+opts.addr))
	printDetail("/diagram.png  /chart.png  /catalog  /metrics")

	select {
	case err := <-errCh:
		if err != http.ErrServerClosed {
			return errors.Wrap(errors.ErrCodeInternal, err, "listen on %s", opts.addr)
		}
		return nil
	case <-ctx.Done():
		c.Logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// defaultOptions returns render options seeded from the config file.
func (c *CLI) defaultOptions() pipeline.Options {
	opts := pipeline.Options{
		Style:  c.Config.Style,
		Width:  c.Config.Width,
		Height: c.Config.Height,
		Scale:  c.Config.Scale,
		Seed:   pipeline.DefaultSeed,
	}
	if c.Config.Seed != nil {
		opts.Seed = *c.Config.Seed
	}
	return opts
}

// =============================================================================
// Server
// =============================================================================

// server renders the built-in tables on request. Handlers share one runner,
// which is safe for concurrent use.
type server struct {
	runner   *pipeline.Runner
	metrics  *observability.Metrics
	logger   *log.Logger
	defaults pipeline.Options
}

func newServer(r *pipeline.Runner, m *observability.Metrics, logger *log.Logger, defaults pipeline.Options) *server {
	return &server{runner: r, metrics: m, logger: logger, defaults: defaults}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SetHeader("Server", buildinfo.Stamp()))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok\n"))
	})
	r.Get("/diagram.{format}", s.handleDiagram)
	r.Get("/chart.{format}", s.handleChart)
	r.Get("/catalog", s.handleCatalog(catalogText))
	r.Get("/catalog.json", s.handleCatalog(catalogJSON))
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	return r
}

// observe reports every request to the HTTP hooks and the debug log.
func (s *server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		d := time.Since(start)
		observability.HTTP().OnRequestServed(r.Context(), r.Method, route, status, d)
		s.logger.Debug("request", "id", middleware.GetReqID(r.Context()), "method", r.Method,
			"path", r.URL.Path, "status", status, "bytes", ww.BytesWritten(), "duration", d)
	})
}

func (s *server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	opts, err := s.requestOptions(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	res, err := s.runner.RenderDiagram(r.Context(), diagram.Architecture(), opts)
	s.writeArtifact(w, r, opts, res, err)
}

func (s *server) handleChart(w http.ResponseWriter, r *http.Request) {
	opts, err := s.requestOptions(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	res, err := s.runner.RenderChart(r.Context(), chart.PriorityChart(), opts)
	s.writeArtifact(w, r, opts, res, err)
}

func (s *server) handleCatalog(view string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat := catalog.MCPPromptsRS()
		if kind := r.URL.Query().Get("kind"); kind != "" {
			k, err := catalog.ParseKind(kind)
			if err != nil {
				s.fail(w, r, err)
				return
			}
			cat = cat.FilterKind(k)
		}

		if view == catalogJSON {
			w.Header().Set("Content-Type", "application/json")
		} else {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		}
		if err := writeCatalog(w, cat, view); err != nil {
			s.logger.Warn("write catalog", "error", err)
		}
	}
}

// requestOptions builds render options from the URL format and query.
func (s *server) requestOptions(r *http.Request) (pipeline.Options, error) {
	opts := s.defaults
	opts.Formats = []string{chi.URLParam(r, "format")}

	q := r.URL.Query()
	if v := q.Get("style"); v != "" {
		opts.Style = v
	}
	if v := q.Get("type"); v != "" {
		opts.VizType = v
	}
	for name, dst := range map[string]*float64{"width": &opts.Width, "height": &opts.Height, "scale": &opts.Scale} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
			return opts, errors.New(errors.ErrCodeInvalidInput, "invalid %s %q", name, v)
		}
		*dst = f
	}
	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "invalid seed %q", v)
		}
		opts.Seed = seed
	}
	if q.Has("refresh") {
		opts.Refresh = true
	}
	return opts, nil
}

func (s *server) writeArtifact(w http.ResponseWriter, r *http.Request, opts pipeline.Options, res *pipeline.Result, err error) {
	if err != nil {
		s.fail(w, r, err)
		return
	}
	format := opts.Formats[0]
	cacheStatus := "MISS"
	if res.CacheHits[format] {
		cacheStatus = "HIT"
	}
	w.Header().Set("Content-Type", pipeline.ContentType(format))
	w.Header().Set("X-Cache", cacheStatus)
	w.Write(res.Artifacts[format])
}

// fail writes err with a status derived from its code.
func (s *server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := httpStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "id", middleware.GetReqID(r.Context()), "path", r.URL.Path, "error", err)
	}
	http.Error(w, errors.UserMessage(err), status)
}

// httpStatus maps error codes to HTTP status codes.
func httpStatus(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidStyle,
		errors.ErrCodeInvalidDiagram, errors.ErrCodeInvalidChart, errors.ErrCodeInvalidCatalog,
		errors.ErrCodeUnsupported:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
