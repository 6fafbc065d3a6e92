package sink

import (
	"bytes"
	"fmt"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/matzehuels/blueprint/pkg/fonts"
	"github.com/matzehuels/blueprint/pkg/render/layout"
	"github.com/matzehuels/blueprint/pkg/render/styles"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	style styles.Style
	scale float64
	faces map[faceKey]font.Face
}

type faceKey struct {
	size float64
	bold bool
}

// WithPNGStyle selects the drawing style (default [styles.Simple]).
func WithPNGStyle(s styles.Style) PNGOption { return func(r *pngRenderer) { r.style = s } }

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterizes the layout. The image is the frame size multiplied by
// the scale factor.
func RenderPNG(l layout.Layout, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{style: styles.Simple{}, scale: 2.0, faces: make(map[faceKey]font.Face)}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 || math.IsNaN(r.scale) {
		return nil, fmt.Errorf("invalid scale %v", r.scale)
	}

	w := int(math.Ceil(l.FrameWidth * r.scale))
	h := int(math.Ceil(l.FrameHeight * r.scale))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid frame %vx%v", l.FrameWidth, l.FrameHeight)
	}

	dc := gg.NewContext(w, h)
	dc.Scale(r.scale, r.scale)
	if l.Background != "" {
		dc.SetHexColor(l.Background)
		dc.Clear()
	}

	for _, layer := range l.Layers {
		for _, b := range layer.Boxes {
			r.style.Box(b).Replay(dc)
			paint(dc, b.Fill, b.Stroke, b.StrokeWidth, nil)
		}
		for _, ln := range layer.Lines {
			r.style.Line(ln).Replay(dc)
			paint(dc, "", ln.Color, ln.Width, ln.Dash)
		}
		for _, m := range layer.Markers {
			r.style.Marker(m).Replay(dc)
			paint(dc, m.Fill, m.Stroke, m.StrokeWidth, nil)
		}
		for _, t := range layer.Texts {
			if err := r.drawText(dc, t); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// paint fills and then strokes the current path, and always clears it.
func paint(dc *gg.Context, fill, stroke string, width float64, dash []float64) {
	hasStroke := stroke != "" && width > 0
	if fill != "" {
		dc.SetHexColor(fill)
		if hasStroke {
			dc.FillPreserve()
		} else {
			dc.Fill()
		}
	}
	if !hasStroke {
		dc.ClearPath()
		return
	}
	dc.SetHexColor(stroke)
	dc.SetLineWidth(width)
	if len(dash) > 0 {
		dc.SetDash(dash...)
	}
	dc.Stroke()
	dc.SetDash()
}

// drawText sets glyphs in device space: gg transforms rasterized glyphs by
// the current matrix, so drawing under the scale would blur them.
func (r *pngRenderer) drawText(dc *gg.Context, t layout.Text) error {
	if t.Content == "" {
		return nil
	}
	face, err := r.face(t.Size*r.scale, t.Bold)
	if err != nil {
		return err
	}
	x, y := dc.TransformPoint(t.X, t.Y)

	dc.Push()
	defer dc.Pop()
	dc.Identity()
	dc.SetFontFace(face)
	dc.SetHexColor(t.Color)
	if rot := t.Rotate + r.style.TextRotation(t); rot != 0 {
		dc.RotateAbout(gg.Radians(rot), x, y)
	}
	dc.DrawStringAnchored(t.Content, x, y, anchorX(t.Anchor), 0.35)
	return nil
}

func (r *pngRenderer) face(size float64, bold bool) (font.Face, error) {
	k := faceKey{size, bold}
	if f, ok := r.faces[k]; ok {
		return f, nil
	}
	f, err := fonts.Face(size, bold)
	if err != nil {
		return nil, err
	}
	r.faces[k] = f
	return f, nil
}

func anchorX(a layout.Anchor) float64 {
	switch a {
	case layout.AnchorMiddle:
		return 0.5
	case layout.AnchorEnd:
		return 1
	default:
		return 0
	}
}
