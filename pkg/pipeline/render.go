package pipeline

import (
	"context"

	"github.com/matzehuels/blueprint/pkg/chart"
	"github.com/matzehuels/blueprint/pkg/diagram"
	"github.com/matzehuels/blueprint/pkg/errors"
	"github.com/matzehuels/blueprint/pkg/render/layout"
	"github.com/matzehuels/blueprint/pkg/render/nodelink"
	"github.com/matzehuels/blueprint/pkg/render/sink"
	"github.com/matzehuels/blueprint/pkg/render/styles"
	"github.com/matzehuels/blueprint/pkg/render/styles/handdrawn"
)

// Style returns the drawing style named by opts.
func Style(opts Options) styles.Style {
	if opts.Style == styles.NameHanddrawn {
		return handdrawn.New(opts.Seed)
	}
	return styles.Simple{}
}

// DiagramLayout places d into the frame described by opts.
func DiagramLayout(d *diagram.Diagram, opts Options) layout.Layout {
	return diagram.Layout(d, opts.Width, opts.Height)
}

// ChartLayout places c into the frame described by opts.
func ChartLayout(c *chart.BarChart, opts Options) layout.Layout {
	return chart.Layout(c, opts.Width, opts.Height)
}

// RenderLayout draws l in a single format.
func RenderLayout(ctx context.Context, l layout.Layout, kind, format string, opts Options) ([]byte, error) {
	style := Style(opts)
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatSVG:
		data = sink.RenderSVG(l, sink.WithStyle(style))
	case FormatPNG:
		data, err = sink.RenderPNG(l, sink.WithPNGStyle(style), sink.WithScale(opts.Scale))
	case FormatPDF:
		data, err = sink.RenderPDF(ctx, l, sink.WithStyle(style))
	case FormatJSON:
		jsonOpts := []sink.JSONOption{sink.WithJSONKind(kind), sink.WithJSONStyle(style.Name())}
		if opts.Style == styles.NameHanddrawn {
			jsonOpts = append(jsonOpts, sink.WithJSONSeed(opts.Seed))
		}
		data, err = sink.RenderJSON(l, jsonOpts...)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported %s format: %s", kind, format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s %s", kind, format)
	}
	return data, nil
}

// RenderGraph lays d out with Graphviz and draws it in a single format.
func RenderGraph(ctx context.Context, d *diagram.Diagram, format string) ([]byte, error) {
	dot := nodelink.ToDOT(d, nodelink.Options{})
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatDOT:
		data = []byte(dot)
	case FormatSVG:
		data, err = nodelink.RenderSVG(ctx, dot)
	case FormatPNG:
		data, err = nodelink.RenderPNG(ctx, dot)
	case FormatPDF:
		data, err = nodelink.RenderPDF(ctx, dot)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported graph format: %s", format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render graph %s", format)
	}
	return data, nil
}
