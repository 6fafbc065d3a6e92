// Package diagram models a hand-placed architecture diagram: named
// components grouped by category on a coordinate plane, with connection
// lines and arrow markers drawn between them.
//
// Positions are in data units, not pixels; [Layout] maps them into a frame
// using the diagram's X and Y ranges. The model carries no semantics beyond
// what is drawn. A connection is only a colored segment between two points,
// and an arrow is only a marker at a point.
package diagram

import (
	"fmt"

	"github.com/matzehuels/blueprint/pkg/errors"
	"github.com/matzehuels/blueprint/pkg/render/layout"
)

// Point is a position in data coordinates.
type Point struct {
	X float64 `json:"x" toml:"x" yaml:"x"`
	Y float64 `json:"y" toml:"y" yaml:"y"`
}

func (p Point) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

// Range is a closed interval of data coordinates along one axis.
type Range struct {
	Min float64 `json:"min" toml:"min" yaml:"min"`
	Max float64 `json:"max" toml:"max" yaml:"max"`
}

// Component is a labeled marker. Its color comes from its category.
type Component struct {
	Name     string `json:"name" toml:"name" yaml:"name"`
	Position Point  `json:"position" toml:"position" yaml:"position"`
}

// Category groups components under a legend entry and a shared color.
type Category struct {
	Name       string      `json:"name" toml:"name" yaml:"name"`
	Color      string      `json:"color" toml:"color" yaml:"color"`
	Components []Component `json:"components" toml:"components" yaml:"components"`
}

// Connection is a straight colored segment from Start to End.
type Connection struct {
	Start Point  `json:"start" toml:"start" yaml:"start"`
	End   Point  `json:"end" toml:"end" yaml:"end"`
	Color string `json:"color" toml:"color" yaml:"color"`
}

// Arrow is a right-pointing triangle marker.
type Arrow struct {
	Position Point  `json:"position" toml:"position" yaml:"position"`
	Color    string `json:"color" toml:"color" yaml:"color"`
}

// Diagram is the complete, immutable input of the diagram renderer.
// Categories are drawn and listed in the legend in slice order.
type Diagram struct {
	Title       string       `json:"title" toml:"title" yaml:"title"`
	XRange      Range        `json:"x_range" toml:"x_range" yaml:"x_range"`
	YRange      Range        `json:"y_range" toml:"y_range" yaml:"y_range"`
	Categories  []Category   `json:"categories" toml:"categories" yaml:"categories"`
	Connections []Connection `json:"connections" toml:"connections" yaml:"connections"`
	Arrows      []Arrow      `json:"arrows" toml:"arrows" yaml:"arrows"`
}

// Placed is a component together with the category it belongs to.
type Placed struct {
	Component
	Category string
	Color    string
}

// Components flattens all categories into declaration order.
func (d *Diagram) Components() []Placed {
	var out []Placed
	for _, c := range d.Categories {
		for _, comp := range c.Components {
			out = append(out, Placed{Component: comp, Category: c.Name, Color: c.Color})
		}
	}
	return out
}

// ComponentAt returns the first component placed exactly at p.
func (d *Diagram) ComponentAt(p Point) (Placed, bool) {
	for _, c := range d.Components() {
		if c.Position == p {
			return c, true
		}
	}
	return Placed{}, false
}

// ColorOf returns the color of the named category.
func (d *Diagram) ColorOf(category string) (string, bool) {
	for _, c := range d.Categories {
		if c.Name == category {
			return c.Color, true
		}
	}
	return "", false
}

// Validate reports every structural problem in d.
func (d *Diagram) Validate() []errors.ValidationError {
	var errs []errors.ValidationError
	add := func(field, format string, args ...any) {
		errs = append(errs, errors.ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if d.XRange.Max <= d.XRange.Min {
		add("x_range", "max %g must exceed min %g", d.XRange.Max, d.XRange.Min)
	}
	if d.YRange.Max <= d.YRange.Min {
		add("y_range", "max %g must exceed min %g", d.YRange.Max, d.YRange.Min)
	}
	if len(d.Categories) == 0 {
		add("categories", "at least one category is required")
	}

	seenCat := make(map[string]bool)
	seenComp := make(map[string]bool)
	for i, c := range d.Categories {
		field := fmt.Sprintf("categories[%d]", i)
		if c.Name == "" {
			add(field+".name", "is required")
		} else if seenCat[c.Name] {
			add(field+".name", "duplicate category %q", c.Name)
		}
		seenCat[c.Name] = true
		if !layout.ValidColor(c.Color) {
			add(field+".color", "invalid color %q", c.Color)
		}
		for j, comp := range c.Components {
			cf := fmt.Sprintf("%s.components[%d]", field, j)
			if comp.Name == "" {
				add(cf+".name", "is required")
			} else if seenComp[comp.Name] {
				add(cf+".name", "duplicate component %q", comp.Name)
			}
			seenComp[comp.Name] = true
		}
	}

	for i, c := range d.Connections {
		if !layout.ValidColor(c.Color) {
			add(fmt.Sprintf("connections[%d].color", i), "invalid color %q", c.Color)
		}
	}
	for i, a := range d.Arrows {
		if !layout.ValidColor(a.Color) {
			add(fmt.Sprintf("arrows[%d].color", i), "invalid color %q", a.Color)
		}
	}
	return errs
}

// Check is Validate folded into a single error.
func (d *Diagram) Check() error {
	return errors.FromValidation(errors.ErrCodeInvalidDiagram, "diagram", d.Validate())
}
