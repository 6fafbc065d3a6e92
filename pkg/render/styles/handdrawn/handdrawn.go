package handdrawn

import (
	"bytes"

	"github.com/matzehuels/blueprint/pkg/render/layout"
	"github.com/matzehuels/blueprint/pkg/render/path"
	"github.com/matzehuels/blueprint/pkg/render/styles"
)

// FontFamily lists handwriting fonts, falling back to sans-serif.
const FontFamily = `'xkcd Script', 'Comic Sans MS', 'Bradley Hand', 'Segoe Script', sans-serif`

const strokeCSS = `
    path { stroke-linejoin: round; stroke-linecap: round; }`

// Style is the hand-drawn style.
type Style struct {
	seed uint64
}

// New returns a hand-drawn style whose jitter is derived from seed.
func New(seed uint64) *Style { return &Style{seed: seed} }

func (s *Style) Name() string { return styles.NameHanddrawn }

func (s *Style) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString("  <style>" + strokeCSS + "\n  </style>\n")
}

func (s *Style) Box(b layout.Box) path.Path {
	return wobbledRect(b.X, b.Y, b.W, b.H, s.seed, b.ID)
}

func (s *Style) Line(l layout.Line) path.Path {
	return roughLine(l.X1, l.Y1, l.X2, l.Y2, s.seed, l.ID)
}

func (s *Style) Marker(m layout.Marker) path.Path {
	if m.Shape == layout.ShapeTriangleRight {
		h := m.Size / 2
		return wobbledPolygon(s.seed, m.ID, m.Size,
			path.Point{X: m.CX - h, Y: m.CY - h},
			path.Point{X: m.CX + h, Y: m.CY},
			path.Point{X: m.CX - h, Y: m.CY + h},
		)
	}
	b := m.Bounds()
	return wobbledRect(b.X, b.Y, b.W, b.H, s.seed, m.ID)
}

func (s *Style) TextRotation(t layout.Text) float64 {
	return rotationFor(t.ID, s.seed)
}

func (s *Style) FontFamily(bool) string { return FontFamily }

var _ styles.Style = (*Style)(nil)
