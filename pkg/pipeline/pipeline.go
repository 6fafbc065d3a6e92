// Package pipeline provides the validate → layout → render pipeline shared
// by the CLI and the preview server.
//
// # Architecture
//
// Every render runs the same three stages:
//
//  1. Validate: check the model (diagram or chart) and the options
//  2. Layout: place the model into a frame-space scene
//  3. Render: draw the scene in each requested format
//
// Artifacts are cached per format under a content hash of the model, the
// options that affect the output and the build version.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	res, err := runner.RenderDiagram(ctx, diagram.Architecture(), pipeline.Options{
//	    Formats: []string{pipeline.FormatPNG},
//	})
//	png := res.Artifacts[pipeline.FormatPNG]
package pipeline

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/blueprint/pkg/cache"
	"github.com/matzehuels/blueprint/pkg/errors"
	"github.com/matzehuels/blueprint/pkg/render/styles"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultWidth is the default frame width in pixels.
	DefaultWidth = 700.0

	// DefaultHeight is the default frame height in pixels.
	DefaultHeight = 500.0

	// DefaultScale is the PNG resolution multiplier.
	DefaultScale = 2.0

	// DefaultSeed is the hand-drawn jitter seed the CLI and server use when
	// none is given.
	DefaultSeed = uint64(42)

	// MaxPixels bounds each side of a frame and of a rasterized PNG.
	MaxPixels = 8192.0

	// DefaultStyle is the default visual style.
	DefaultStyle = styles.NameSimple

	// DefaultVizType is the default visualization type.
	DefaultVizType = VizTypePlot
)

// Kinds of renderable models.
const (
	KindDiagram = "diagram"
	KindChart   = "chart"
)

// Visualization types. A plot places shapes exactly where the data says; a
// graph lets Graphviz arrange diagram components.
const (
	VizTypePlot  = "plot"
	VizTypeGraph = "graph"
)

// Format constants for output formats.
const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:  true,
	FormatSVG:  true,
	FormatPDF:  true,
	FormatDOT:  true,
	FormatJSON: true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	styles.NameSimple:    true,
	styles.NameHanddrawn: true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizTypePlot:  true,
	VizTypeGraph: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all render configuration.
// This struct supports JSON serialization for server requests.
type Options struct {
	Formats []string `json:"formats,omitempty"`
	Style   string   `json:"style,omitempty"`
	VizType string   `json:"viz_type,omitempty"`
	Width   float64  `json:"width,omitempty"`
	Height  float64  `json:"height,omitempty"`
	Scale   float64  `json:"scale,omitempty"`

	// Seed drives the hand-drawn jitter. Zero is a valid seed and is never
	// replaced by DefaultSeed.
	Seed uint64 `json:"seed"`

	// Refresh skips cache lookups; fresh artifacts are still written back.
	Refresh bool `json:"refresh,omitempty"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// CacheHits lists the formats served from the cache.
	CacheHits map[string]bool

	// Duration is the wall time of the whole run.
	Duration time.Duration
}

// Cached reports whether every artifact came from the cache.
func (r *Result) Cached() bool {
	return len(r.Artifacts) > 0 && len(r.CacheHits) == len(r.Artifacts)
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: png, svg, pdf, dot, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle,
			"invalid style: %q (must be one of: simple, handdrawn)", style)
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid type: %q (must be one of: plot, graph)", vizType)
	}
	return nil
}

// ParseFormats splits a comma-separated format list. An empty string yields
// the default format.
func ParseFormats(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{FormatPNG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills every zero field except Seed with its default.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPNG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
}

// Validate applies defaults and checks every option for a model of the
// given kind.
func (o *Options) Validate(kind string) error {
	o.SetDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := o.validateSize(); err != nil {
		return err
	}

	if o.IsGraph() && kind != KindDiagram {
		return errors.New(errors.ErrCodeUnsupported, "type %q is only available for diagrams", VizTypeGraph)
	}
	for _, f := range o.Formats {
		if f == FormatDOT && !o.IsGraph() {
			return errors.New(errors.ErrCodeUnsupported, "format %q requires --type %s", FormatDOT, VizTypeGraph)
		}
		if f == FormatJSON && o.IsGraph() {
			return errors.New(errors.ErrCodeUnsupported, "format %q is not available for --type %s", FormatJSON, VizTypeGraph)
		}
	}
	return nil
}

// validateSize requires finite positive dimensions that stay within
// MaxPixels, both as a frame and once scaled for PNG output.
func (o *Options) validateSize() error {
	for _, v := range []struct {
		name  string
		value float64
	}{{"width", o.Width}, {"height", o.Height}, {"scale", o.Scale}} {
		if !isPositive(v.value) {
			return errors.New(errors.ErrCodeInvalidInput, "invalid %s %v", v.name, v.value)
		}
	}
	if o.Width > MaxPixels || o.Height > MaxPixels {
		return errors.New(errors.ErrCodeInvalidInput,
			"size %vx%v exceeds %v pixels", o.Width, o.Height, MaxPixels)
	}
	if slices.Contains(o.Formats, FormatPNG) && (o.Width*o.Scale > MaxPixels || o.Height*o.Scale > MaxPixels) {
		return errors.New(errors.ErrCodeInvalidInput,
			"size %vx%v at scale %v exceeds %v pixels", o.Width, o.Height, o.Scale, MaxPixels)
	}
	return nil
}

// isPositive reports whether v is a finite number greater than zero.
func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// IsGraph reports whether Graphviz lays out the output.
func (o *Options) IsGraph() bool { return o.VizType == VizTypeGraph }

// ArtifactKeyOpts returns cache key options for one artifact.
func (o *Options) ArtifactKeyOpts(kind, format, version string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Kind:    kind,
		Format:  format,
		Style:   o.Style,
		VizType: o.VizType,
		Width:   o.Width,
		Height:  o.Height,
		Version: version,
	}
	if format == FormatPNG {
		k.Scale = o.Scale
	}
	if o.Style == styles.NameHanddrawn {
		k.Seed = o.Seed
	}
	return k
}

// Extension returns the file extension for a format, including the dot.
func Extension(format string) string { return "." + format }

// ContentType returns the MIME type for a format.
func ContentType(format string) string {
	switch format {
	case FormatPNG:
		return "image/png"
	case FormatSVG:
		return "image/svg+xml"
	case FormatPDF:
		return "application/pdf"
	case FormatJSON:
		return "application/json"
	case FormatDOT:
		return "text/vnd.graphviz; charset=utf-8"
	default:
		return fmt.Sprintf("application/x-%s", format)
	}
}
