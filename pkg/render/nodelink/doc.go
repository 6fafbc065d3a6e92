// Package nodelink renders architecture diagrams as automatically laid out
// node-link graphs.
//
// # Overview
//
// The diagram renderer places components exactly where the data says. This
// package ignores positions and lets Graphviz arrange the components
// instead: each category becomes a cluster and each connection between two
// components becomes a colored edge.
//
// # Usage
//
//	dot := nodelink.ToDOT(d, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG and
// PNG rendering. PDF conversion requires librsvg (rsvg-convert).
package nodelink
