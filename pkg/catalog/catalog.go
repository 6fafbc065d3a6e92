package catalog

import (
	"fmt"

	"github.com/matzehuels/blueprint/pkg/errors"
)

// Priority is the declared urgency of a catalog entry.
// Any string may be declared; only the four constants below are recognized.
type Priority string

const (
	Critical Priority = "CRITICAL"
	High     Priority = "HIGH"
	Medium   Priority = "MEDIUM"
	Low      Priority = "LOW"
)

// Priorities lists the recognized priorities from most to least urgent.
// This is also the bucket order of [Catalog.Partition].
var Priorities = []Priority{Critical, High, Medium, Low}

// Bucket returns the bucket p is reported under. CRITICAL, HIGH and MEDIUM
// map to themselves; every other value, including the empty string, maps to
// LOW.
func (p Priority) Bucket() Priority {
	switch p {
	case Critical, High, Medium:
		return p
	default:
		return Low
	}
}

// Known reports whether p is one of the four recognized priorities.
func (p Priority) Known() bool {
	switch p {
	case Critical, High, Medium, Low:
		return true
	}
	return false
}

// Rank orders priorities, 0 being the most urgent. Unknown values rank
// with LOW.
func (p Priority) Rank() int {
	switch p.Bucket() {
	case Critical:
		return 0
	case High:
		return 1
	case Medium:
		return 2
	default:
		return 3
	}
}

// Kind classifies what sort of file an entry describes.
type Kind string

const (
	KindConfig Kind = "config"
	KindSource Kind = "source"
	KindCI     Kind = "ci"
	KindScript Kind = "script"
	KindData   Kind = "data"
	KindTest   Kind = "test"
	KindDocs   Kind = "docs"
)

// Kinds lists all recognized kinds.
var Kinds = []Kind{KindConfig, KindSource, KindCI, KindScript, KindData, KindTest, KindDocs}

// Valid reports whether k is one of [Kinds].
func (k Kind) Valid() bool {
	for _, v := range Kinds {
		if k == v {
			return true
		}
	}
	return false
}

// ParseKind converts s to a Kind, rejecting unknown values.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", errors.New(errors.ErrCodeInvalidInput, "unknown kind %q (must be one of %v)", s, Kinds)
	}
	return k, nil
}

// Entry is a single file in the planned layout.
type Entry struct {
	Path        string   `json:"path" toml:"path" yaml:"path"`
	Description string   `json:"description" toml:"description" yaml:"description"`
	Priority    Priority `json:"priority" toml:"priority" yaml:"priority"`
	Kind        Kind     `json:"type" toml:"type" yaml:"type"`
}

// Line formats the entry the way it appears in a report: "path - description".
func (e Entry) Line() string {
	return fmt.Sprintf("%s - %s", e.Path, e.Description)
}

// Catalog is an ordered set of entries. Order is declaration order and is
// preserved by every operation in this package.
type Catalog struct {
	Name    string  `json:"name" toml:"name" yaml:"name"`
	Entries []Entry `json:"entries" toml:"entries" yaml:"entries"`
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.Entries) }

// Bucket is one priority group of a partitioned catalog.
type Bucket struct {
	Priority Priority `json:"priority"`
	Entries  []Entry  `json:"entries"`
}

// Partition groups entries into the four priority buckets, in the order of
// [Priorities]. The partition is stable: entries within a bucket keep their
// declaration order. Empty buckets are still returned.
func (c *Catalog) Partition() []Bucket {
	buckets := make([]Bucket, len(Priorities))
	for i, p := range Priorities {
		buckets[i] = Bucket{Priority: p, Entries: []Entry{}}
	}
	for _, e := range c.Entries {
		i := e.Priority.Rank()
		buckets[i].Entries = append(buckets[i].Entries, e)
	}
	return buckets
}

// FilterKind returns a catalog holding only entries of kind k, in their
// original order.
func (c *Catalog) FilterKind(k Kind) *Catalog {
	out := &Catalog{Name: c.Name}
	for _, e := range c.Entries {
		if e.Kind == k {
			out.Entries = append(out.Entries, e)
		}
	}
	return out
}

// Summary holds entry counts per priority bucket and per kind.
type Summary struct {
	Total      int              `json:"total"`
	ByPriority map[Priority]int `json:"by_priority"`
	ByKind     map[Kind]int     `json:"by_kind"`
}

// Summarize counts entries per bucket and per kind.
func (c *Catalog) Summarize() Summary {
	s := Summary{
		Total:      len(c.Entries),
		ByPriority: make(map[Priority]int, len(Priorities)),
		ByKind:     make(map[Kind]int, len(Kinds)),
	}
	for _, e := range c.Entries {
		s.ByPriority[e.Priority.Bucket()]++
		s.ByKind[e.Kind]++
	}
	return s
}

// Validate reports structural problems: empty paths, duplicate paths and
// unknown kinds. Unknown priorities are not errors; they report under LOW.
func (c *Catalog) Validate() []errors.ValidationError {
	var errs []errors.ValidationError
	seen := make(map[string]bool, len(c.Entries))
	for i, e := range c.Entries {
		field := fmt.Sprintf("entries[%d]", i)
		switch {
		case e.Path == "":
			errs = append(errs, errors.ValidationError{Field: field + ".path", Message: "is required"})
		case seen[e.Path]:
			errs = append(errs, errors.ValidationError{Field: field + ".path", Message: "duplicate path " + e.Path})
		default:
			seen[e.Path] = true
		}
		if !e.Kind.Valid() {
			errs = append(errs, errors.ValidationError{Field: field + ".type", Message: fmt.Sprintf("unknown kind %q", e.Kind)})
		}
	}
	return errs
}

// Check is Validate folded into a single error.
func (c *Catalog) Check() error {
	return errors.FromValidation(errors.ErrCodeInvalidCatalog, "catalog", c.Validate())
}
