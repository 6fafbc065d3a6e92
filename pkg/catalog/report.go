package catalog

import (
	"bufio"
	"fmt"
	"io"
)

// Heading is the display label and bullet marker for one bucket.
type Heading struct {
	Title  string `json:"title" toml:"title" yaml:"title"`
	Marker string `json:"marker" toml:"marker" yaml:"marker"`
}

// Labels controls the text of a report.
type Labels struct {
	Headings map[Priority]Heading
	// TotalFormat receives the entry count.
	TotalFormat string
}

// DefaultLabels are the Czech headings used for the mcp-prompts-rs layout.
var DefaultLabels = Labels{
	Headings: map[Priority]Heading{
		Critical: {Title: "KRITICKÉ SOUBORY (nutné pro ESP32 funkcionalitu)", Marker: "🔴"},
		High:     {Title: "VYSOKÁ PRIORITA (základní funkcionalita)", Marker: "🟡"},
		Medium:   {Title: "STŘEDNÍ PRIORITA (rozšíření)", Marker: "🟢"},
		Low:      {Title: "NÍZKÁ PRIORITA (nice-to-have)", Marker: "⚪"},
	},
	TotalFormat: "CELKEM: %d souborů",
}

func (l Labels) heading(p Priority) Heading {
	if h, ok := l.Headings[p]; ok {
		return h
	}
	if h, ok := DefaultLabels.Headings[p]; ok {
		return h
	}
	return Heading{Title: string(p), Marker: "-"}
}

// WriteReport writes the bucketed listing of c to w using DefaultLabels.
//
// Each bucket is printed as "=== title ===" followed by one "marker path -
// description" line per entry. Buckets are separated by a blank line and the
// report ends with a blank line and the total count. Empty buckets still
// print their heading.
func WriteReport(w io.Writer, c *Catalog) error {
	return WriteReportWithLabels(w, c, DefaultLabels)
}

// WriteReportWithLabels is WriteReport with custom headings.
func WriteReportWithLabels(w io.Writer, c *Catalog, labels Labels) error {
	bw := bufio.NewWriter(w)
	for i, b := range c.Partition() {
		h := labels.heading(b.Priority)
		if i > 0 {
			bw.WriteString("\n")
		}
		fmt.Fprintf(bw, "=== %s ===\n", h.Title)
		for _, e := range b.Entries {
			fmt.Fprintf(bw, "%s %s\n", h.Marker, e.Line())
		}
	}
	total := labels.TotalFormat
	if total == "" {
		total = DefaultLabels.TotalFormat
	}
	fmt.Fprintf(bw, "\n"+total+"\n", c.Len())
	return bw.Flush()
}
