package catalog

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestWriteReportMatchesGolden(t *testing.T) {
	want, err := os.ReadFile("testdata/mcp_report.golden")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteReport(&buf, MCPPromptsRS()); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}

	if got := buf.String(); got != string(want) {
		t.Errorf("WriteReport() output differs from golden\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestWriteReportDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	if err := WriteReport(&a, MCPPromptsRS()); err != nil {
		t.Fatal(err)
	}
	if err := WriteReport(&b, MCPPromptsRS()); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("WriteReport() is not byte-identical across runs")
	}
}

func TestWriteReportTotalLine(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReport(&buf, MCPPromptsRS()); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(buf.String(), "\nCELKEM: 38 souborů\n") {
		t.Errorf("report does not end with total line:\n%s", buf.String())
	}
}

func TestWriteReportEmptyBuckets(t *testing.T) {
	c := &Catalog{Entries: []Entry{{Path: "x", Description: "y", Priority: High, Kind: KindDocs}}}

	var buf bytes.Buffer
	if err := WriteReport(&buf, c); err != nil {
		t.Fatal(err)
	}

	want := "=== KRITICKÉ SOUBORY (nutné pro ESP32 funkcionalitu) ===\n" +
		"\n=== VYSOKÁ PRIORITA (základní funkcionalita) ===\n" +
		"🟡 x - y\n" +
		"\n=== STŘEDNÍ PRIORITA (rozšíření) ===\n" +
		"\n=== NÍZKÁ PRIORITA (nice-to-have) ===\n" +
		"\nCELKEM: 1 souborů\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteReport() = %q, want %q", got, want)
	}
}

func TestWriteReportWithLabels(t *testing.T) {
	labels := Labels{
		Headings: map[Priority]Heading{
			Critical: {Title: "MUST", Marker: "!"},
		},
		TotalFormat: "TOTAL: %d",
	}
	c := &Catalog{Entries: []Entry{
		{Path: "a", Description: "first", Priority: Critical, Kind: KindDocs},
		{Path: "b", Description: "second", Priority: Low, Kind: KindDocs},
	}}

	var buf bytes.Buffer
	if err := WriteReportWithLabels(&buf, c, labels); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{"=== MUST ===\n! a - first\n", "⚪ b - second\n", "\nTOTAL: 2\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
