// Package styles defines how scene shapes are outlined and how text is set.
//
// A [Style] turns layout shapes into vector paths that every sink can draw,
// so SVG and PNG output stay visually consistent for the same style. Two
// styles are provided: [Simple] (exact geometry, the default) and the
// hand-drawn style in the handdrawn subpackage.
package styles

import (
	"bytes"

	"github.com/matzehuels/blueprint/pkg/render/layout"
	"github.com/matzehuels/blueprint/pkg/render/path"
)

// Style defines the visual appearance of a rendered scene.
type Style interface {
	// Name is the identifier accepted by --style.
	Name() string
	// RenderDefs writes SVG <defs>/<style> content needed by the style.
	RenderDefs(buf *bytes.Buffer)
	// Box returns the outline of a rectangle.
	Box(b layout.Box) path.Path
	// Line returns the stroke path of a line.
	Line(l layout.Line) path.Path
	// Marker returns the outline of a marker.
	Marker(m layout.Marker) path.Path
	// TextRotation returns the rotation in degrees to apply to t on top of
	// t.Rotate.
	TextRotation(t layout.Text) float64
	// FontFamily returns the SVG font-family list.
	FontFamily(bold bool) string
}

// Names of the built-in styles.
const (
	NameSimple    = "simple"
	NameHanddrawn = "handdrawn"
)

// Simple draws exact geometry with a plain sans-serif font.
type Simple struct{}

func (Simple) Name() string                     { return NameSimple }
func (Simple) RenderDefs(*bytes.Buffer)         {}
func (Simple) TextRotation(layout.Text) float64 { return 0 }

func (Simple) Box(b layout.Box) path.Path { return path.Rect(b.X, b.Y, b.W, b.H) }

func (Simple) Line(l layout.Line) path.Path { return path.Line(l.X1, l.Y1, l.X2, l.Y2) }

func (Simple) Marker(m layout.Marker) path.Path { return MarkerOutline(m) }

func (Simple) FontFamily(bold bool) string {
	if bold {
		return `'Arial Black', 'Helvetica Neue', Arial, sans-serif`
	}
	return `'Open Sans', Verdana, Arial, sans-serif`
}

// MarkerOutline returns the exact outline for m's shape. Unknown shapes are
// drawn as squares.
func MarkerOutline(m layout.Marker) path.Path {
	switch m.Shape {
	case layout.ShapeTriangleRight:
		return path.TriangleRight(m.CX, m.CY, m.Size)
	default:
		b := m.Bounds()
		return path.Rect(b.X, b.Y, b.W, b.H)
	}
}

var _ Style = Simple{}
