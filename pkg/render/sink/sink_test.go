package sink

import (
	"bytes"
	"encoding/json"
	"image/png"
	"strings"
	"testing"

	"github.com/matzehuels/blueprint/pkg/render/layout"
	"github.com/matzehuels/blueprint/pkg/render/styles/handdrawn"
)

func testLayout() layout.Layout {
	return layout.Layout{
		FrameWidth:  200,
		FrameHeight: 100,
		Background:  "#FFFFFF",
		Layers: []layout.Layer{
			{
				Name:    "shapes",
				Boxes:   []layout.Box{{ID: "box", X: 10, Y: 10, W: 50, H: 30, Fill: "#E5ECF6"}},
				Lines:   []layout.Line{{ID: "line", X1: 10, Y1: 80, X2: 190, Y2: 80, Color: "#944454", Width: 2, Dash: []float64{4, 2}}},
				Markers: []layout.Marker{{ID: "mark", Shape: layout.ShapeTriangleRight, CX: 120, CY: 30, Size: 10, Fill: "#FFC185", Stroke: "#FFFFFF", StrokeWidth: 1}},
			},
			{
				Name: "labels",
				Texts: []layout.Text{
					{ID: "label", X: 35, Y: 25, Content: "a < b & c", Size: 9, Color: "#000000", Bold: true, Anchor: layout.AnchorMiddle},
					{ID: "side", X: 150, Y: 50, Content: "Počet", Size: 12, Color: "#2A3F5F", Rotate: -90},
				},
			},
		},
	}
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(testLayout()))

	for _, want := range []string{
		`viewBox="0 0 200.0 100.0"`,
		`<rect width="100%" height="100%" fill="#FFFFFF"/>`,
		`<g class="shapes">`,
		`id="box" d="M10.0,10.0 L60.0,10.0 L60.0,40.0 L10.0,40.0 Z" fill="#E5ECF6"`,
		`stroke-dasharray="4,2"`,
		`id="mark" d="M115.0,25.0 L125.0,30.0 L115.0,35.0 Z" fill="#FFC185" stroke="#FFFFFF" stroke-width="1"`,
		`>a &lt; b &amp; c</text>`,
		`font-weight="bold"`,
		`text-anchor="middle"`,
		`transform="rotate(-90.00 150.0 50.0)"`,
		`>Počet</text>`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("RenderSVG() missing %q", want)
		}
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("RenderSVG() not terminated by </svg>")
	}
	if strings.Index(svg, `class="shapes"`) > strings.Index(svg, `class="labels"`) {
		t.Error("layers out of order")
	}
}

func TestRenderSVGLineHasNoFill(t *testing.T) {
	svg := string(RenderSVG(testLayout()))
	if !strings.Contains(svg, `id="line" d="M10.0,80.0 L190.0,80.0" fill="none" stroke="#944454" stroke-width="2"`) {
		t.Errorf("line path not rendered as unfilled stroke:\n%s", svg)
	}
}

func TestRenderSVGHanddrawn(t *testing.T) {
	l := testLayout()
	a := RenderSVG(l, WithStyle(handdrawn.New(1)))
	b := RenderSVG(l, WithStyle(handdrawn.New(1)))
	c := RenderSVG(l, WithStyle(handdrawn.New(2)))

	if !bytes.Equal(a, b) {
		t.Error("handdrawn output differs for the same seed")
	}
	if bytes.Equal(a, c) {
		t.Error("handdrawn output identical for different seeds")
	}
	if !strings.Contains(string(a), "<style>") {
		t.Error("handdrawn output missing style defs")
	}
}

func TestRenderPNG(t *testing.T) {
	data, err := RenderPNG(testLayout())
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")) {
		t.Fatalf("RenderPNG() does not start with the PNG signature")
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 200 {
		t.Errorf("size = %dx%d, want 400x200 at default scale", b.Dx(), b.Dy())
	}

	// Box fill at (15, 35) frame units lands on (30, 70) pixels.
	r, g, bl, _ := img.At(30, 70).RGBA()
	if r>>8 != 0xE5 || g>>8 != 0xEC || bl>>8 != 0xF6 {
		t.Errorf("box pixel = #%02X%02X%02X, want #E5ECF6", r>>8, g>>8, bl>>8)
	}
	// Background.
	r, g, bl, _ = img.At(399, 1).RGBA()
	if r>>8 != 0xFF || g>>8 != 0xFF || bl>>8 != 0xFF {
		t.Errorf("background pixel = #%02X%02X%02X, want white", r>>8, g>>8, bl>>8)
	}
}

func TestRenderPNGScale(t *testing.T) {
	data, err := RenderPNG(testLayout(), WithScale(1), WithPNGStyle(handdrawn.New(7)))
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Errorf("size = %dx%d, want 200x100", b.Dx(), b.Dy())
	}
}

func TestRenderPNGErrors(t *testing.T) {
	if _, err := RenderPNG(testLayout(), WithScale(0)); err == nil {
		t.Error("RenderPNG(scale 0) error = nil")
	}
	if _, err := RenderPNG(layout.Layout{}); err == nil {
		t.Error("RenderPNG(empty frame) error = nil")
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(testLayout(), WithJSONKind("diagram"), WithJSONStyle("handdrawn"), WithJSONSeed(42))
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}
	var out struct {
		Kind   string         `json:"kind"`
		Style  string         `json:"style"`
		Seed   uint64         `json:"seed"`
		Width  float64        `json:"width"`
		Layers []layout.Layer `json:"layers"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if out.Kind != "diagram" || out.Style != "handdrawn" || out.Seed != 42 {
		t.Errorf("header = %q/%q/%d", out.Kind, out.Style, out.Seed)
	}
	if out.Width != 200 || len(out.Layers) != 2 {
		t.Errorf("width = %v, layers = %d, want 200, 2", out.Width, len(out.Layers))
	}
	if out.Layers[1].Texts[1].Rotate != -90 {
		t.Errorf("rotate = %v, want -90", out.Layers[1].Texts[1].Rotate)
	}
}
