package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPriorityBucket(t *testing.T) {
	tests := []struct {
		in   Priority
		want Priority
	}{
		{Critical, Critical},
		{High, High},
		{Medium, Medium},
		{Low, Low},
		{"", Low},
		{"critical", Low},
		{"URGENT", Low},
		{" HIGH", Low},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			if got := tt.in.Bucket(); got != tt.want {
				t.Errorf("Priority(%q).Bucket() = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPartitionDefaultTable(t *testing.T) {
	c := MCPPromptsRS()
	if c.Len() != 38 {
		t.Fatalf("MCPPromptsRS().Len() = %d, want 38", c.Len())
	}

	buckets := c.Partition()
	if len(buckets) != 4 {
		t.Fatalf("Partition() returned %d buckets, want 4", len(buckets))
	}

	wantOrder := []Priority{Critical, High, Medium, Low}
	wantSizes := []int{9, 10, 11, 8}
	total := 0
	for i, b := range buckets {
		if b.Priority != wantOrder[i] {
			t.Errorf("bucket[%d].Priority = %q, want %q", i, b.Priority, wantOrder[i])
		}
		if len(b.Entries) != wantSizes[i] {
			t.Errorf("bucket %s has %d entries, want %d", b.Priority, len(b.Entries), wantSizes[i])
		}
		total += len(b.Entries)
	}
	if total != 38 {
		t.Errorf("sum of bucket sizes = %d, want 38", total)
	}
}

func TestPartitionMembership(t *testing.T) {
	c := MCPPromptsRS()
	for _, b := range c.Partition() {
		for _, e := range b.Entries {
			if e.Priority.Bucket() != b.Priority {
				t.Errorf("%s declared %q landed in bucket %q", e.Path, e.Priority, b.Priority)
			}
		}
	}
}

func TestPartitionIsStable(t *testing.T) {
	c := MCPPromptsRS()
	index := make(map[string]int, c.Len())
	for i, e := range c.Entries {
		index[e.Path] = i
	}

	for _, b := range c.Partition() {
		for i := 1; i < len(b.Entries); i++ {
			prev, cur := index[b.Entries[i-1].Path], index[b.Entries[i].Path]
			if prev >= cur {
				t.Errorf("bucket %s: %s (decl %d) listed before %s (decl %d)",
					b.Priority, b.Entries[i-1].Path, prev, b.Entries[i].Path, cur)
			}
		}
	}

	critical := c.Partition()[0]
	wantFirst := []string{"Cargo.toml", ".cargo/config.toml", "src/embedded/main.rs"}
	var gotFirst []string
	for _, e := range critical.Entries[:3] {
		gotFirst = append(gotFirst, e.Path)
	}
	if diff := cmp.Diff(wantFirst, gotFirst); diff != "" {
		t.Errorf("first CRITICAL entries mismatch (-want +got):\n%s", diff)
	}
}

func TestPartitionUnknownPriorities(t *testing.T) {
	c := &Catalog{Entries: []Entry{
		{Path: "a", Priority: "BLOCKER", Kind: KindSource},
		{Path: "b", Priority: Critical, Kind: KindSource},
		{Path: "c", Priority: "", Kind: KindDocs},
		{Path: "d", Priority: Low, Kind: KindDocs},
		{Path: "e", Priority: "medium", Kind: KindTest},
	}}

	got := c.Partition()
	paths := func(b Bucket) []string {
		out := []string{}
		for _, e := range b.Entries {
			out = append(out, e.Path)
		}
		return out
	}

	want := map[Priority][]string{
		Critical: {"b"},
		High:     {},
		Medium:   {},
		Low:      {"a", "c", "d", "e"},
	}
	for _, b := range got {
		if diff := cmp.Diff(want[b.Priority], paths(b)); diff != "" {
			t.Errorf("bucket %s mismatch (-want +got):\n%s", b.Priority, diff)
		}
	}
}

func TestPartitionEmpty(t *testing.T) {
	buckets := (&Catalog{}).Partition()
	if len(buckets) != 4 {
		t.Fatalf("Partition() of empty catalog returned %d buckets, want 4", len(buckets))
	}
	for _, b := range buckets {
		if b.Entries == nil || len(b.Entries) != 0 {
			t.Errorf("bucket %s = %v, want empty non-nil slice", b.Priority, b.Entries)
		}
	}
}

func TestMCPPromptsRSReturnsCopy(t *testing.T) {
	a := MCPPromptsRS()
	a.Entries[0].Path = "mutated"
	if b := MCPPromptsRS(); b.Entries[0].Path != "Cargo.toml" {
		t.Errorf("MCPPromptsRS() shares storage between calls, got %q", b.Entries[0].Path)
	}
}

func TestFilterKind(t *testing.T) {
	c := MCPPromptsRS()

	ci := c.FilterKind(KindCI)
	want := []string{".github/workflows/ci.yml", ".github/workflows/esp-build.yml", ".github/workflows/release.yml"}
	var got []string
	for _, e := range ci.Entries {
		got = append(got, e.Path)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FilterKind(ci) mismatch (-want +got):\n%s", diff)
	}
	if ci.Name != c.Name {
		t.Errorf("FilterKind() Name = %q, want %q", ci.Name, c.Name)
	}
}

func TestSummarize(t *testing.T) {
	s := MCPPromptsRS().Summarize()

	if s.Total != 38 {
		t.Errorf("Total = %d, want 38", s.Total)
	}
	wantPriority := map[Priority]int{Critical: 9, High: 10, Medium: 11, Low: 8}
	if diff := cmp.Diff(wantPriority, s.ByPriority); diff != "" {
		t.Errorf("ByPriority mismatch (-want +got):\n%s", diff)
	}
	wantKind := map[Kind]int{
		KindConfig: 5, KindSource: 19, KindCI: 3, KindScript: 4,
		KindData: 2, KindTest: 3, KindDocs: 2,
	}
	if diff := cmp.Diff(wantKind, s.ByKind); diff != "" {
		t.Errorf("ByKind mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	if errs := MCPPromptsRS().Validate(); len(errs) != 0 {
		t.Errorf("MCPPromptsRS().Validate() = %v, want none", errs)
	}

	c := &Catalog{Entries: []Entry{
		{Path: "", Kind: KindDocs},
		{Path: "a", Kind: KindDocs},
		{Path: "a", Kind: "binary"},
	}}
	errs := c.Validate()
	if len(errs) != 3 {
		t.Fatalf("Validate() returned %d errors, want 3: %v", len(errs), errs)
	}
	if c.Check() == nil {
		t.Error("Check() = nil, want error")
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(string(k))
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %q, %v", k, got, err)
		}
	}
	if _, err := ParseKind("binary"); err == nil {
		t.Error("ParseKind(binary) error = nil, want error")
	}
}
