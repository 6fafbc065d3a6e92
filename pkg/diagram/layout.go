package diagram

import (
	"fmt"

	"github.com/matzehuels/blueprint/pkg/render/layout"
)

// Default frame size in pixels.
const (
	DefaultWidth  = 700
	DefaultHeight = 500
)

// Marker and text geometry.
const (
	ComponentSize   = 40.0
	ComponentStroke = 2.0
	LabelSize       = 9.0
	ConnectionWidth = 2.0
	ArrowSize       = 10.0
	ArrowStroke     = 1.0
	LegendSize      = 12.0
	TitleSize       = 17.0
)

// Layer names, in drawing order.
const (
	LayerComponents  = "components"
	LayerConnections = "connections"
	LayerArrows      = "arrows"
	LayerLegend      = "legend"
	LayerTitle       = "title"
)

const (
	background = "#FFFFFF"
	labelColor = "#000000"
	titleColor = "#2A3F5F"
	white      = "#FFFFFF"
)

// Layout places d into a width x height frame. Non-positive dimensions fall
// back to the defaults. Components come first, then connections, then
// arrows, so later shapes cover earlier ones. The legend and title sit in
// the top margin.
func Layout(d *Diagram, width, height float64) layout.Layout {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	plot := layout.DefaultMargins.PlotArea(width, height)
	xa := layout.Axis{DataMin: d.XRange.Min, DataMax: d.XRange.Max, PixelMin: plot.X, PixelMax: plot.X + plot.W}
	ya := layout.Axis{DataMin: d.YRange.Min, DataMax: d.YRange.Max, PixelMin: plot.Y + plot.H, PixelMax: plot.Y}

	components := layout.Layer{Name: LayerComponents}
	for _, c := range d.Components() {
		cx, cy := xa.Map(c.Position.X), ya.Map(c.Position.Y)
		components.Markers = append(components.Markers, layout.Marker{
			ID:          "component/" + c.Name,
			Shape:       layout.ShapeSquare,
			CX:          cx,
			CY:          cy,
			Size:        ComponentSize,
			Fill:        c.Color,
			Stroke:      white,
			StrokeWidth: ComponentStroke,
		})
		components.Texts = append(components.Texts, layout.Text{
			ID:      "label/" + c.Name,
			X:       cx,
			Y:       cy,
			Content: c.Name,
			Size:    LabelSize,
			Color:   labelColor,
			Bold:    true,
			Anchor:  layout.AnchorMiddle,
		})
	}

	connections := layout.Layer{Name: LayerConnections}
	for i, c := range d.Connections {
		connections.Lines = append(connections.Lines, layout.Line{
			ID:    fmt.Sprintf("connection/%d", i),
			X1:    xa.Map(c.Start.X),
			Y1:    ya.Map(c.Start.Y),
			X2:    xa.Map(c.End.X),
			Y2:    ya.Map(c.End.Y),
			Color: c.Color,
			Width: ConnectionWidth,
		})
	}

	arrows := layout.Layer{Name: LayerArrows}
	for i, a := range d.Arrows {
		arrows.Markers = append(arrows.Markers, layout.Marker{
			ID:          fmt.Sprintf("arrow/%d", i),
			Shape:       layout.ShapeTriangleRight,
			CX:          xa.Map(a.Position.X),
			CY:          ya.Map(a.Position.Y),
			Size:        ArrowSize,
			Fill:        a.Color,
			Stroke:      white,
			StrokeWidth: ArrowStroke,
		})
	}

	return layout.Layout{
		FrameWidth:  width,
		FrameHeight: height,
		Background:  background,
		Layers: []layout.Layer{
			components,
			connections,
			arrows,
			legend(d.Categories, width, plot),
			title(d.Title, width),
		},
	}
}

// legend lays the categories out in one row centered over the plot, with its
// bottom edge a little above the plot's top edge.
func legend(cats []Category, width float64, plot layout.Box) layout.Layer {
	const (
		swatchGap = 6.0
		itemGap   = 18.0
	)
	l := layout.Layer{Name: LayerLegend}
	if len(cats) == 0 {
		return l
	}

	widths := make([]float64, len(cats))
	total := 0.0
	for i, c := range cats {
		widths[i] = LegendSize + swatchGap + layout.TextWidth(c.Name, LegendSize, false)
		total += widths[i]
	}
	total += itemGap * float64(len(cats)-1)

	x := width/2 - total/2
	y := plot.Y - 0.05*plot.H - LegendSize
	for i, c := range cats {
		l.Markers = append(l.Markers, layout.Marker{
			ID:    "legend/" + c.Name,
			Shape: layout.ShapeSquare,
			CX:    x + LegendSize/2,
			CY:    y,
			Size:  LegendSize,
			Fill:  c.Color,
		})
		l.Texts = append(l.Texts, layout.Text{
			ID:      "legend-label/" + c.Name,
			X:       x + LegendSize + swatchGap,
			Y:       y,
			Content: c.Name,
			Size:    LegendSize,
			Color:   titleColor,
			Anchor:  layout.AnchorStart,
		})
		x += widths[i] + itemGap
	}
	return l
}

func title(s string, width float64) layout.Layer {
	l := layout.Layer{Name: LayerTitle}
	if s == "" {
		return l
	}
	l.Texts = []layout.Text{{
		ID:      "title",
		X:       0.05 * width,
		Y:       layout.DefaultMargins.Top / 4,
		Content: s,
		Size:    TitleSize,
		Color:   titleColor,
		Anchor:  layout.AnchorStart,
	}}
	return l
}
