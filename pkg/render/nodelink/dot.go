package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/blueprint/pkg/diagram"
	"github.com/matzehuels/blueprint/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds each component's category and position to its label.
	Detailed bool
}

// ToDOT converts a diagram to Graphviz DOT format. Each category becomes a
// cluster and each connection whose endpoints both sit on components becomes
// an edge. Connections with a free endpoint are not representable in a graph
// and are left out. The result can be rendered with [RenderSVG], [RenderPNG]
// or [RenderPDF].
func ToDOT(d *diagram.Diagram, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	if d.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n  fontsize=20;\n", d.Title)
	}
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontname=\"Helvetica-Bold\", fontsize=11, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [penwidth=2, arrowsize=0.7];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.3;\n")

	for i, c := range d.Categories {
		fmt.Fprintf(&buf, "\n  subgraph cluster_%d {\n", i)
		fmt.Fprintf(&buf, "    label=%q;\n", c.Name)
		fmt.Fprintf(&buf, "    color=%q;\n", c.Color)
		buf.WriteString("    style=\"rounded,dashed\";\n")
		for _, comp := range c.Components {
			fmt.Fprintf(&buf, "    %q [label=%q, fillcolor=%q];\n",
				comp.Name, fmtLabel(comp, c.Name, opts.Detailed), c.Color)
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("\n")
	for _, e := range Edges(d) {
		fmt.Fprintf(&buf, "  %q -> %q [color=%q];\n", e.From, e.To, e.Color)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// Edge is a connection resolved to the components at its endpoints.
type Edge struct {
	From, To string
	Color    string
}

// Edges resolves every connection of d whose start and end positions are
// both occupied by a component. Self loops are dropped.
func Edges(d *diagram.Diagram) []Edge {
	var out []Edge
	for _, c := range d.Connections {
		from, ok := d.ComponentAt(c.Start)
		if !ok {
			continue
		}
		to, ok := d.ComponentAt(c.End)
		if !ok || to.Name == from.Name {
			continue
		}
		out = append(out, Edge{From: from.Name, To: to.Name, Color: c.Color})
	}
	return out
}

func fmtLabel(c diagram.Component, category string, detailed bool) string {
	if !detailed {
		return c.Name
	}
	return strings.Join([]string{c.Name, category, c.Position.String()}, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := renderDOT(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.PNG)
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

func renderDOT(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
