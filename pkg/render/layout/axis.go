package layout

import "math"

// Axis maps a data interval linearly onto a pixel interval. PixelMin may be
// larger than PixelMax, which is how a y axis is flipped.
type Axis struct {
	DataMin, DataMax   float64
	PixelMin, PixelMax float64
}

// Map converts a data value to a pixel coordinate. Values outside the data
// interval extrapolate; nothing is clipped.
func (a Axis) Map(v float64) float64 {
	span := a.DataMax - a.DataMin
	if span == 0 {
		return a.PixelMin
	}
	return a.PixelMin + (v-a.DataMin)/span*(a.PixelMax-a.PixelMin)
}

// Margins is the space between the frame edge and the plot area.
type Margins struct {
	Left, Right, Top, Bottom float64
}

// DefaultMargins match the common charting default of 80px sides and a
// taller top band for the title.
var DefaultMargins = Margins{Left: 80, Right: 80, Top: 100, Bottom: 80}

// PlotArea returns the plot rectangle inside a frame.
func (m Margins) PlotArea(width, height float64) Box {
	return Box{
		X: m.Left,
		Y: m.Top,
		W: math.Max(1, width-m.Left-m.Right),
		H: math.Max(1, height-m.Top-m.Bottom),
	}
}

// NiceTicks returns evenly spaced tick values from 0 up to and including the
// first tick at or above max, using steps of 1, 2, 2.5 or 5 times a power of
// ten. At most about target intervals are produced.
func NiceTicks(max float64, target int) []float64 {
	if target < 1 {
		target = 1
	}
	if max <= 0 {
		return []float64{0, 1}
	}
	step := niceStep(max / float64(target))
	n := int(math.Ceil(max/step - 1e-9))
	ticks := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		ticks = append(ticks, roundTo(float64(i)*step, step))
	}
	return ticks
}

func niceStep(raw float64) float64 {
	exp := math.Floor(math.Log10(raw))
	base := math.Pow(10, exp)
	frac := raw / base
	switch {
	case frac <= 1:
		return base
	case frac <= 2:
		return 2 * base
	case frac <= 2.5:
		return 2.5 * base
	case frac <= 5:
		return 5 * base
	default:
		return 10 * base
	}
}

// roundTo strips floating point noise below the precision of step.
func roundTo(v, step float64) float64 {
	p := math.Pow(10, math.Max(0, -math.Floor(math.Log10(step))+2))
	return math.Round(v*p) / p
}

// TextWidth estimates the rendered width of s at the given size for
// proportional sans-serif fonts. Layouts use it for spacing only.
func TextWidth(s string, size float64, bold bool) float64 {
	ratio := 0.55
	if bold {
		ratio = 0.62
	}
	n := 0
	for range s {
		n++
	}
	return float64(n) * size * ratio
}
