// Package layout defines the frame-space scene shared by all sinks.
//
// Coordinates are pixels with the origin at the top-left corner of the frame
// and y growing downward, matching SVG. A [Layout] is a list of [Layer]
// values drawn in order; inside a layer, boxes are drawn first, then lines,
// then markers, then texts.
package layout

// Layout is a complete scene ready for a sink.
type Layout struct {
	FrameWidth  float64 `json:"width"`
	FrameHeight float64 `json:"height"`
	Background  string  `json:"background"`
	Layers      []Layer `json:"layers"`
}

// Layer is a named group of shapes drawn together.
type Layer struct {
	Name    string   `json:"name"`
	Boxes   []Box    `json:"boxes,omitempty"`
	Lines   []Line   `json:"lines,omitempty"`
	Markers []Marker `json:"markers,omitempty"`
	Texts   []Text   `json:"texts,omitempty"`
}

// Box is an axis-aligned rectangle; X and Y name its top-left corner.
type Box struct {
	ID          string  `json:"id"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	W           float64 `json:"w"`
	H           float64 `json:"h"`
	Fill        string  `json:"fill,omitempty"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"stroke_width,omitempty"`
}

// CenterX returns the horizontal center of the box.
func (b Box) CenterX() float64 { return b.X + b.W/2 }

// CenterY returns the vertical center of the box.
func (b Box) CenterY() float64 { return b.Y + b.H/2 }

// Line is a straight stroke from (X1, Y1) to (X2, Y2).
type Line struct {
	ID    string    `json:"id"`
	X1    float64   `json:"x1"`
	Y1    float64   `json:"y1"`
	X2    float64   `json:"x2"`
	Y2    float64   `json:"y2"`
	Color string    `json:"color"`
	Width float64   `json:"width"`
	Dash  []float64 `json:"dash,omitempty"`
}

// Shape selects a marker's outline.
type Shape string

const (
	ShapeSquare        Shape = "square"
	ShapeTriangleRight Shape = "triangle-right"
)

// Marker is a fixed-size symbol centered on (CX, CY). Size is the marker's
// full width in pixels.
type Marker struct {
	ID          string  `json:"id"`
	Shape       Shape   `json:"shape"`
	CX          float64 `json:"cx"`
	CY          float64 `json:"cy"`
	Size        float64 `json:"size"`
	Fill        string  `json:"fill"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"stroke_width,omitempty"`
}

// Bounds returns the square box the marker occupies.
func (m Marker) Bounds() Box {
	h := m.Size / 2
	return Box{ID: m.ID, X: m.CX - h, Y: m.CY - h, W: m.Size, H: m.Size}
}

// Anchor is the horizontal alignment of a text relative to its X.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Text is a single line of text. Y is the vertical center of the line.
type Text struct {
	ID      string  `json:"id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Content string  `json:"content"`
	Size    float64 `json:"size"`
	Color   string  `json:"color"`
	Bold    bool    `json:"bold,omitempty"`
	Anchor  Anchor  `json:"anchor"`
	// Rotate is a clockwise rotation in degrees about (X, Y).
	Rotate float64 `json:"rotate,omitempty"`
}

// Counts reports how many shapes of each kind the layout holds.
func (l Layout) Counts() (boxes, lines, markers, texts int) {
	for _, layer := range l.Layers {
		boxes += len(layer.Boxes)
		lines += len(layer.Lines)
		markers += len(layer.Markers)
		texts += len(layer.Texts)
	}
	return
}

// Layer returns the layer with the given name.
func (l Layout) Layer(name string) (Layer, bool) {
	for _, layer := range l.Layers {
		if layer.Name == name {
			return layer, true
		}
	}
	return Layer{}, false
}
