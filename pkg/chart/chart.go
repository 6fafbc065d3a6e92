// Package chart models and lays out a single-series vertical bar chart.
//
// A [BarChart] is a small ordered table of labeled counts. [Layout] turns it
// into a frame-space scene with a shaded plot area, horizontal gridlines at
// nice tick steps, one bar per row and its value printed just above the bar.
package chart

import (
	"fmt"

	"github.com/matzehuels/blueprint/pkg/errors"
	"github.com/matzehuels/blueprint/pkg/render/layout"
)

// Bar is one row of the chart.
type Bar struct {
	Label string `json:"label" toml:"label" yaml:"label"`
	Count int    `json:"count" toml:"count" yaml:"count"`
	Color string `json:"color" toml:"color" yaml:"color"`
}

// BarChart is the complete input of the chart renderer. Bars are drawn left
// to right in slice order.
type BarChart struct {
	Title      string `json:"title" toml:"title" yaml:"title"`
	XTitle     string `json:"x_title" toml:"x_title" yaml:"x_title"`
	YTitle     string `json:"y_title" toml:"y_title" yaml:"y_title"`
	Bars       []Bar  `json:"bars" toml:"bars" yaml:"bars"`
	ShowLegend bool   `json:"show_legend" toml:"show_legend" yaml:"show_legend"`
}

// Max returns the largest count, or 0 for an empty chart.
func (c *BarChart) Max() int {
	m := 0
	for _, b := range c.Bars {
		m = max(m, b.Count)
	}
	return m
}

// Total returns the sum of all counts.
func (c *BarChart) Total() int {
	n := 0
	for _, b := range c.Bars {
		n += b.Count
	}
	return n
}

// Validate reports every structural problem in c.
func (c *BarChart) Validate() []errors.ValidationError {
	var errs []errors.ValidationError
	add := func(field, format string, args ...any) {
		errs = append(errs, errors.ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if len(c.Bars) == 0 {
		add("bars", "at least one bar is required")
	}
	seen := make(map[string]bool)
	for i, b := range c.Bars {
		field := fmt.Sprintf("bars[%d]", i)
		if b.Label == "" {
			add(field+".label", "is required")
		} else if seen[b.Label] {
			add(field+".label", "duplicate label %q", b.Label)
		}
		seen[b.Label] = true
		if b.Count < 0 {
			add(field+".count", "must not be negative, got %d", b.Count)
		}
		if !layout.ValidColor(b.Color) {
			add(field+".color", "invalid color %q", b.Color)
		}
	}
	return errs
}

// Check is Validate folded into a single error.
func (c *BarChart) Check() error {
	return errors.FromValidation(errors.ErrCodeInvalidChart, "chart", c.Validate())
}
