package chart

import (
	"math"
	"testing"

	"github.com/matzehuels/blueprint/pkg/render/layout"
)

func TestLayoutLayers(t *testing.T) {
	l := Layout(PriorityChart(), 0, 0)
	if l.FrameWidth != DefaultWidth || l.FrameHeight != DefaultHeight {
		t.Errorf("frame = %vx%v, want %dx%d", l.FrameWidth, l.FrameHeight, DefaultWidth, DefaultHeight)
	}
	if _, ok := l.Layer(LayerLegend); ok {
		t.Error("legend layer present, want none")
	}
	bars, _ := l.Layer(LayerBars)
	if len(bars.Boxes) != 3 {
		t.Fatalf("len(bars) = %d, want 3", len(bars.Boxes))
	}
	plot, _ := l.Layer(LayerPlot)
	if len(plot.Boxes) != 1 || plot.Boxes[0].Fill != "#E5ECF6" {
		t.Errorf("plot background = %+v", plot.Boxes)
	}
}

func TestLayoutBars(t *testing.T) {
	c := PriorityChart()
	l := Layout(c, 700, 500)
	area := layout.DefaultMargins.PlotArea(700, 500)
	bars, _ := l.Layer(LayerBars)
	values, _ := l.Layer(LayerValues)

	band := area.W / 3
	for i, b := range bars.Boxes {
		if math.Abs(b.W-band*0.8) > 1e-9 {
			t.Errorf("bar %d width = %v, want %v", i, b.W, band*0.8)
		}
		if math.Abs(b.Y+b.H-(area.Y+area.H)) > 1e-9 {
			t.Errorf("bar %d bottom = %v, want baseline %v", i, b.Y+b.H, area.Y+area.H)
		}
		if b.Fill != c.Bars[i].Color {
			t.Errorf("bar %d fill = %s, want %s", i, b.Fill, c.Bars[i].Color)
		}
		v := values.Texts[i]
		if v.Y >= b.Y {
			t.Errorf("value %d at y=%v, want above bar top %v", i, v.Y, b.Y)
		}
		if v.X != b.CenterX() {
			t.Errorf("value %d at x=%v, want %v", i, v.X, b.CenterX())
		}
	}
	if values.Texts[0].Content != "10" || values.Texts[2].Content != "3" {
		t.Errorf("value labels = %q, %q", values.Texts[0].Content, values.Texts[2].Content)
	}

	// Heights are proportional to counts.
	r := bars.Boxes[0].H / bars.Boxes[2].H
	if math.Abs(r-10.0/3.0) > 1e-9 {
		t.Errorf("height ratio = %v, want %v", r, 10.0/3.0)
	}
	if bars.Boxes[0].Y <= area.Y {
		t.Error("tallest bar touches the plot top, want headroom for its label")
	}
}

func TestLayoutGrid(t *testing.T) {
	l := Layout(PriorityChart(), 700, 500)
	plot, _ := l.Layer(LayerPlot)
	var got []string
	for _, ln := range plot.Lines {
		got = append(got, ln.ID)
	}
	want := []string{"grid/0", "grid/2", "grid/4", "grid/6", "grid/8", "grid/10"}
	if len(got) != len(want) {
		t.Fatalf("gridlines = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("gridlines[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLayoutAxisTitles(t *testing.T) {
	l := Layout(PriorityChart(), 700, 500)
	axes, _ := l.Layer(LayerAxes)
	found := map[string]layout.Text{}
	for _, tx := range axes.Texts {
		found[tx.ID] = tx
	}
	if found["x-title"].Content != "Priorita" {
		t.Errorf("x-title = %q", found["x-title"].Content)
	}
	if y := found["y-title"]; y.Content != "Počet souborů" || y.Rotate != -90 {
		t.Errorf("y-title = %+v", y)
	}
	for i, label := range []string{"Kritické", "Střední", "Rychlé"} {
		id := "category/" + string(rune('0'+i))
		if found[id].Content != label {
			t.Errorf("%s = %q, want %q", id, found[id].Content, label)
		}
	}
}

func TestLayoutLegend(t *testing.T) {
	c := PriorityChart()
	c.ShowLegend = true
	l := Layout(c, 700, 500)
	leg, ok := l.Layer(LayerLegend)
	if !ok || len(leg.Markers) != 3 {
		t.Errorf("legend = %+v, %v, want 3 entries", leg, ok)
	}
}
