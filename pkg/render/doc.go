// Package render provides visualization rendering for blueprint reports.
//
// # Overview
//
// Rendering is split into three steps:
//
//   - A report (diagram or chart) is laid out into a frame-space scene,
//     a [layout.Layout] made of ordered layers of boxes, lines, markers
//     and texts.
//   - A [styles.Style] turns each shape into a vector path. The simple style
//     draws exact geometry; the hand-drawn style jitters it.
//   - A sink writes the styled scene: SVG, PNG (rasterized in-process with
//     gg), PDF (via rsvg-convert) or the raw scene as JSON.
//
// # Format Conversion
//
// [ToPDF] converts any SVG to PDF using the external rsvg-convert tool (from
// librsvg). PNG output does not need it.
//
//	svg := sink.RenderSVG(l, sink.WithStyle(handdrawn.New(42)))
//	pdf, err := render.ToPDF(svg)
//
// # Graph Diagrams
//
// The [nodelink] subpackage renders the architecture diagram as an
// automatically laid out Graphviz graph instead of at fixed positions.
//
// [layout.Layout]: github.com/matzehuels/blueprint/pkg/render/layout
// [styles.Style]: github.com/matzehuels/blueprint/pkg/render/styles
// [nodelink]: github.com/matzehuels/blueprint/pkg/render/nodelink
package render
