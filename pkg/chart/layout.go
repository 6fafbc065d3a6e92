package chart

import (
	"fmt"
	"strconv"

	"github.com/matzehuels/blueprint/pkg/render/layout"
)

// Default frame size in pixels.
const (
	DefaultWidth  = 700
	DefaultHeight = 500
)

// Layer names, in drawing order.
const (
	LayerPlot   = "plot"
	LayerBars   = "bars"
	LayerValues = "values"
	LayerAxes   = "axes"
	LayerLegend = "legend"
	LayerTitle  = "title"
)

const (
	plotBackground = "#E5ECF6"
	gridColor      = "#FFFFFF"
	inkColor       = "#2A3F5F"
	frameColor     = "#FFFFFF"

	barFraction = 0.8
	tickTarget  = 5
	headroom    = 1.1

	tickSize  = 12.0
	valueSize = 12.0
	axisSize  = 14.0
	titleSize = 17.0
)

// Layout places c into a width x height frame. Non-positive dimensions fall
// back to the defaults. The y axis starts at zero and leaves room above the
// tallest bar for its value label.
func Layout(c *BarChart, width, height float64) layout.Layout {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	plot := layout.DefaultMargins.PlotArea(width, height)

	ticks := layout.NiceTicks(float64(c.Max()), tickTarget)
	top := max(ticks[len(ticks)-1], float64(c.Max())*headroom)
	ya := layout.Axis{DataMin: 0, DataMax: top, PixelMin: plot.Y + plot.H, PixelMax: plot.Y}

	bg := layout.Layer{Name: LayerPlot}
	plot.ID = "plot-area"
	plot.Fill = plotBackground
	bg.Boxes = []layout.Box{plot}

	axes := layout.Layer{Name: LayerAxes}
	for _, v := range ticks {
		if v > top {
			break
		}
		y := ya.Map(v)
		bg.Lines = append(bg.Lines, layout.Line{
			ID: "grid/" + formatTick(v), X1: plot.X, Y1: y, X2: plot.X + plot.W, Y2: y,
			Color: gridColor, Width: 1,
		})
		axes.Texts = append(axes.Texts, layout.Text{
			ID: "tick/" + formatTick(v), X: plot.X - 6, Y: y, Content: formatTick(v),
			Size: tickSize, Color: inkColor, Anchor: layout.AnchorEnd,
		})
	}

	bars := layout.Layer{Name: LayerBars}
	values := layout.Layer{Name: LayerValues}
	band := plot.W / float64(max(1, len(c.Bars)))
	for i, b := range c.Bars {
		center := plot.X + band*(float64(i)+0.5)
		w := band * barFraction
		y := ya.Map(float64(b.Count))
		bars.Boxes = append(bars.Boxes, layout.Box{
			ID: fmt.Sprintf("bar/%d", i), X: center - w/2, Y: y, W: w, H: plot.Y + plot.H - y,
			Fill: b.Color,
		})
		values.Texts = append(values.Texts, layout.Text{
			ID: fmt.Sprintf("value/%d", i), X: center, Y: y - 4 - valueSize/2,
			Content: strconv.Itoa(b.Count), Size: valueSize, Color: inkColor, Anchor: layout.AnchorMiddle,
		})
		axes.Texts = append(axes.Texts, layout.Text{
			ID: fmt.Sprintf("category/%d", i), X: center, Y: plot.Y + plot.H + 14,
			Content: b.Label, Size: tickSize, Color: inkColor, Anchor: layout.AnchorMiddle,
		})
	}

	if c.XTitle != "" {
		axes.Texts = append(axes.Texts, layout.Text{
			ID: "x-title", X: plot.CenterX(), Y: plot.Y + plot.H + 45,
			Content: c.XTitle, Size: axisSize, Color: inkColor, Anchor: layout.AnchorMiddle,
		})
	}
	if c.YTitle != "" {
		axes.Texts = append(axes.Texts, layout.Text{
			ID: "y-title", X: plot.X - 50, Y: plot.CenterY(),
			Content: c.YTitle, Size: axisSize, Color: inkColor, Anchor: layout.AnchorMiddle,
			Rotate: -90,
		})
	}

	layers := []layout.Layer{bg, bars, values, axes}
	if c.ShowLegend {
		layers = append(layers, legend(c.Bars, plot))
	}
	title := layout.Layer{Name: LayerTitle}
	if c.Title != "" {
		title.Texts = []layout.Text{{
			ID: "title", X: 0.05 * width, Y: layout.DefaultMargins.Top / 4,
			Content: c.Title, Size: titleSize, Color: inkColor, Anchor: layout.AnchorStart,
		}}
	}
	layers = append(layers, title)

	return layout.Layout{
		FrameWidth:  width,
		FrameHeight: height,
		Background:  frameColor,
		Layers:      layers,
	}
}

// legend stacks one swatch per bar in the right margin, top aligned with the
// plot.
func legend(bars []Bar, plot layout.Box) layout.Layer {
	const (
		swatch = 12.0
		row    = 20.0
	)
	l := layout.Layer{Name: LayerLegend}
	x := plot.X + plot.W + 10
	for i, b := range bars {
		y := plot.Y + row*float64(i) + swatch/2
		l.Markers = append(l.Markers, layout.Marker{
			ID: "legend/" + b.Label, Shape: layout.ShapeSquare,
			CX: x + swatch/2, CY: y, Size: swatch, Fill: b.Color,
		})
		l.Texts = append(l.Texts, layout.Text{
			ID: "legend-label/" + b.Label, X: x + swatch + 6, Y: y,
			Content: b.Label, Size: tickSize, Color: inkColor, Anchor: layout.AnchorStart,
		})
	}
	return l
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
