// Package io reads and writes blueprint data files and output artifacts.
//
// # Data Files
//
// Diagrams, bar charts and file catalogs can be loaded from TOML, YAML or
// JSON. The format is chosen by file extension (.toml, .yaml/.yml, .json).
// Decoding is strict: unknown keys are an error, so a typo in a field name
// does not silently produce an empty value. Decoded data is validated before
// it is returned.
//
//	d, err := io.ReadDiagram("architecture.toml")
//	c, err := io.ReadChart("priorities.yaml")
//	cat, err := io.ReadCatalog("files.json")
//
// [Encode] and [Export] write the same formats, which is how the built-in
// tables can be dumped as a starting point for editing.
//
// # Artifacts
//
// [WriteFile] replaces a file atomically: the data goes to a uniquely named
// temporary file in the target directory, which is then renamed over the
// target. Readers see either the old file or the new one, never a partial
// write, and re-running a render overwrites the previous output.
package io
