package sink

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/blueprint/pkg/render/layout"
	"github.com/matzehuels/blueprint/pkg/render/styles"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style styles.Style
}

// WithStyle selects the drawing style (default [styles.Simple]).
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// RenderSVG renders the layout as a standalone SVG document.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{style: styles.Simple{}}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.FrameWidth, l.FrameHeight, l.FrameWidth, l.FrameHeight)
	r.style.RenderDefs(&buf)
	if l.Background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", l.Background)
	}
	for _, layer := range l.Layers {
		r.renderLayer(&buf, layer)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderLayer(buf *bytes.Buffer, layer layout.Layer) {
	fmt.Fprintf(buf, `  <g class="%s">`+"\n", styles.EscapeXML(layer.Name))
	for _, b := range layer.Boxes {
		writePath(buf, b.ID, r.style.Box(b).SVG(), b.Fill, b.Stroke, b.StrokeWidth, nil)
	}
	for _, ln := range layer.Lines {
		writePath(buf, ln.ID, r.style.Line(ln).SVG(), "", ln.Color, ln.Width, ln.Dash)
	}
	for _, m := range layer.Markers {
		writePath(buf, m.ID, r.style.Marker(m).SVG(), m.Fill, m.Stroke, m.StrokeWidth, nil)
	}
	for _, t := range layer.Texts {
		r.writeText(buf, t)
	}
	buf.WriteString("  </g>\n")
}

func writePath(buf *bytes.Buffer, id, d, fill, stroke string, width float64, dash []float64) {
	if fill == "" {
		fill = "none"
	}
	fmt.Fprintf(buf, `    <path id="%s" d="%s" fill="%s"`, styles.EscapeXML(id), d, fill)
	if stroke != "" && width > 0 {
		fmt.Fprintf(buf, ` stroke="%s" stroke-width="%g"`, stroke, width)
	}
	if len(dash) > 0 {
		parts := make([]string, len(dash))
		for i, v := range dash {
			parts[i] = fmt.Sprintf("%g", v)
		}
		fmt.Fprintf(buf, ` stroke-dasharray="%s"`, strings.Join(parts, ","))
	}
	buf.WriteString("/>\n")
}

func (r *svgRenderer) writeText(buf *bytes.Buffer, t layout.Text) {
	weight := "normal"
	if t.Bold {
		weight = "bold"
	}
	anchor := t.Anchor
	if anchor == "" {
		anchor = layout.AnchorStart
	}
	fmt.Fprintf(buf, `    <text id="%s" x="%.1f" y="%.1f" text-anchor="%s" dominant-baseline="central" font-family="%s" font-size="%g" font-weight="%s" fill="%s"`,
		styles.EscapeXML(t.ID), t.X, t.Y, anchor, r.style.FontFamily(t.Bold), t.Size, weight, t.Color)
	if rot := t.Rotate + r.style.TextRotation(t); rot != 0 {
		fmt.Fprintf(buf, ` transform="rotate(%.2f %.1f %.1f)"`, rot, t.X, t.Y)
	}
	fmt.Fprintf(buf, ">%s</text>\n", styles.EscapeXML(t.Content))
}
