// Package path holds vector outlines produced by styles and consumed by
// sinks. A [Path] serializes to SVG path data and can be replayed onto any
// drawing surface that supports move, line, quadratic and cubic segments.
package path

import (
	"strconv"
	"strings"
)

// Op is a path command.
type Op byte

const (
	MoveTo  Op = 'M'
	LineTo  Op = 'L'
	QuadTo  Op = 'Q'
	CubicTo Op = 'C'
	Close   Op = 'Z'
)

// Point is a frame-space coordinate.
type Point struct{ X, Y float64 }

// Segment is one command and its points: one for M and L, two for Q (control,
// end), three for C (control, control, end), none for Z.
type Segment struct {
	Op  Op
	Pts []Point
}

// Path is an ordered list of segments.
type Path []Segment

// Drawer is the subset of a raster context needed to replay a path.
type Drawer interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(x1, y1, x2, y2 float64)
	CubicTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// Replay issues p's segments on d.
func (p Path) Replay(d Drawer) {
	for _, s := range p {
		switch s.Op {
		case MoveTo:
			d.MoveTo(s.Pts[0].X, s.Pts[0].Y)
		case LineTo:
			d.LineTo(s.Pts[0].X, s.Pts[0].Y)
		case QuadTo:
			d.QuadraticTo(s.Pts[0].X, s.Pts[0].Y, s.Pts[1].X, s.Pts[1].Y)
		case CubicTo:
			d.CubicTo(s.Pts[0].X, s.Pts[0].Y, s.Pts[1].X, s.Pts[1].Y, s.Pts[2].X, s.Pts[2].Y)
		case Close:
			d.ClosePath()
		}
	}
}

// SVG returns the path as SVG path data, e.g. "M10.0,20.0 L30.0,20.0 Z".
func (p Path) SVG() string {
	var b strings.Builder
	for i, s := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(byte(s.Op))
		for j, pt := range s.Pts {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(fmtFloat(pt.X))
			b.WriteByte(',')
			b.WriteString(fmtFloat(pt.Y))
		}
	}
	return b.String()
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// Rect is a closed rectangle with top-left corner (x, y).
func Rect(x, y, w, h float64) Path {
	return Polygon(
		Point{x, y},
		Point{x + w, y},
		Point{x + w, y + h},
		Point{x, y + h},
	)
}

// Polygon is a closed outline through pts.
func Polygon(pts ...Point) Path {
	if len(pts) == 0 {
		return nil
	}
	p := make(Path, 0, len(pts)+1)
	p = append(p, Segment{Op: MoveTo, Pts: []Point{pts[0]}})
	for _, pt := range pts[1:] {
		p = append(p, Segment{Op: LineTo, Pts: []Point{pt}})
	}
	return append(p, Segment{Op: Close})
}

// Line is an open two-point stroke.
func Line(x1, y1, x2, y2 float64) Path {
	return Path{
		{Op: MoveTo, Pts: []Point{{x1, y1}}},
		{Op: LineTo, Pts: []Point{{x2, y2}}},
	}
}

// TriangleRight is a right-pointing triangle inscribed in the square of
// side size centered on (cx, cy).
func TriangleRight(cx, cy, size float64) Path {
	h := size / 2
	return Polygon(
		Point{cx - h, cy - h},
		Point{cx + h, cy},
		Point{cx - h, cy + h},
	)
}
