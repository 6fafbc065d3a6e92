package cli

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/blueprint/pkg/io"
	"github.com/matzehuels/blueprint/pkg/pipeline"
)

// renderFlags holds the command-line flags shared by the diagram and chart
// commands.
type renderFlags struct {
	output   string  // output file; the extension follows the format
	format   string  // comma-separated output formats
	style    string  // visual style: simple or handdrawn
	vizType  string  // plot or graph (diagram only)
	width    float64 // frame width in pixels
	height   float64 // frame height in pixels
	scale    float64 // PNG resolution multiplier
	seed     uint64  // hand-drawn jitter seed
	input    string  // optional data file replacing the built-in table
	noCache  bool    // bypass the artifact cache entirely
	refresh  bool    // re-render and overwrite cached artifacts
	cacheURL string  // cache backend override
}

// addRenderFlags registers the shared render flags on cmd. The --type flag
// is only offered when graph layout is available.
func addRenderFlags(cmd *cobra.Command, f *renderFlags, withType bool) {
	flags := cmd.Flags()
	flags.StringVarP(&f.output, "output", "o", f.output, "output file (extension is replaced per format)")
	flags.StringVarP(&f.format, "format", "f", "", "output format(s): png (default), svg, pdf, json, dot (comma-separated)")
	flags.StringVar(&f.style, "style", pipeline.DefaultStyle, "visual style: simple (default), handdrawn")
	flags.Float64Var(&f.width, "width", pipeline.DefaultWidth, "frame width in pixels")
	flags.Float64Var(&f.height, "height", pipeline.DefaultHeight, "frame height in pixels")
	flags.Float64Var(&f.scale, "scale", pipeline.DefaultScale, "PNG resolution multiplier")
	flags.Uint64Var(&f.seed, "seed", pipeline.DefaultSeed, "random seed for the handdrawn style")
	flags.StringVarP(&f.input, "input", "i", "", "data file (.toml, .yaml, .json) replacing the built-in table")
	flags.BoolVar(&f.noCache, "no-cache", false, "disable the artifact cache")
	flags.BoolVar(&f.refresh, "refresh", false, "ignore cached artifacts and re-render")
	flags.StringVar(&f.cacheURL, "cache-url", "", "cache backend: file:///dir, redis://host:6379/0 or none")
	if withType {
		flags.StringVarP(&f.vizType, "type", "t", pipeline.DefaultVizType, "layout: plot (default) or graph (Graphviz)")
	}
	completeRenderFlags(cmd, withType)
}

// renderOptions builds pipeline options from flags, filling values the user
// did not set on the command line from the config file.
func (c *CLI) renderOptions(cmd *cobra.Command, f *renderFlags) pipeline.Options {
	opts := pipeline.Options{
		Formats: pipeline.ParseFormats(f.format),
		Style:   f.style,
		VizType: f.vizType,
		Width:   f.width,
		Height:  f.height,
		Scale:   f.scale,
		Seed:    f.seed,
		Refresh: f.refresh,
	}

	flags := cmd.Flags()
	cfg := c.Config
	if !flags.Changed("style") && cfg.Style != "" {
		opts.Style = cfg.Style
	}
	if !flags.Changed("width") && cfg.Width != 0 {
		opts.Width = cfg.Width
	}
	if !flags.Changed("height") && cfg.Height != 0 {
		opts.Height = cfg.Height
	}
	if !flags.Changed("scale") && cfg.Scale != 0 {
		opts.Scale = cfg.Scale
	}
	if !flags.Changed("seed") && cfg.Seed != nil {
		opts.Seed = *cfg.Seed
	}
	return opts
}

// outputPaths maps each format to its output file. A single format keeps an
// unknown extension as given; otherwise the base name gets one file per
// format.
func outputPaths(output string, formats []string) map[string]string {
	ext := filepath.Ext(output)
	known := pipeline.ValidFormats[strings.TrimPrefix(strings.ToLower(ext), ".")]

	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && !known && ext != "" {
		paths[formats[0]] = output
		return paths
	}

	base := output
	if known {
		base = strings.TrimSuffix(output, ext)
	}
	for _, f := range formats {
		paths[f] = base + pipeline.Extension(f)
	}
	return paths
}

// renderFunc runs one model through a pipeline runner.
type renderFunc func(ctx context.Context, r *pipeline.Runner, opts pipeline.Options) (*pipeline.Result, error)

// runRender renders with a fresh runner and writes every artifact. Writes
// replace existing files.
func (c *CLI) runRender(ctx context.Context, what string, f *renderFlags, opts pipeline.Options, render renderFunc, stats ...string) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(ctx, f.cacheURL, f.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	spin := startSpinner(ctx, "Rendering "+what+"...")
	res, err := render(ctx, runner, opts)
	spin.stop()
	if err != nil {
		return err
	}

	paths := outputPaths(f.output, opts.Formats)
	for _, format := range opts.Formats {
		path := paths[format]
		if err := io.WriteFile(path, res.Artifacts[format]); err != nil {
			return err
		}
		logger.Debug("wrote artifact", "path", path, "bytes", len(res.Artifacts[format]), "cached", res.CacheHits[format])
	}
	prog.done("Rendered " + what)

	printSuccess("Rendered %s", what)
	printStats(res.Cached(), stats...)
	for _, format := range opts.Formats {
		printFile(paths[format])
	}
	return nil
}
