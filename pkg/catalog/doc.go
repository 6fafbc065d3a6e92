// Package catalog models a planned project's file layout and groups it into
// priority buckets for reporting.
//
// A [Catalog] is an ordered list of [Entry] values. Each entry carries a file
// path, a human-readable description, a declared [Priority] and a [Kind].
// Entries are immutable once declared; the only derived state is the
// partition produced by [Catalog.Partition], which is recomputed on every
// call.
//
// # Partitioning
//
// [Catalog.Partition] is a stable partition into exactly four buckets,
// always in the order CRITICAL, HIGH, MEDIUM, LOW. Entries keep their
// declaration order inside a bucket. A declared priority that is not exactly
// CRITICAL, HIGH or MEDIUM falls into LOW:
//
//	buckets := catalog.MCPPromptsRS().Partition()
//	for _, b := range buckets {
//	    fmt.Println(b.Priority, len(b.Entries))
//	}
//
// # Reports
//
// [WriteReport] renders the buckets as the plain-text listing printed by the
// catalog command, with one emoji marker per bucket and a closing total line.
// The output is deterministic: the same catalog always produces the same
// bytes.
package catalog
