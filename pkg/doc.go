// Package pkg provides the libraries behind the blueprint planning reports.
//
// # Overview
//
// Blueprint renders three static reports for the mcp-prompts-rs project: an
// architecture diagram, a file priority bar chart and a file catalog grouped
// by priority. The pkg directory is organized into three areas:
//
//  1. Models: [diagram], [chart] and [catalog] hold the data tables and their
//     validation
//  2. Rendering: [render] and its subpackages turn models into images
//  3. Plumbing: [pipeline], [cache], [io], [observability] and [errors]
//
// # Architecture
//
// The typical data flow through blueprint:
//
//	built-in table or --input file ([io])
//	         ↓
//	    [diagram] / [chart] (validate, lay out into a scene)
//	         ↓
//	    [render/sink] (SVG, PNG, PDF, JSON) or [render/nodelink] (Graphviz)
//	         ↓
//	    [cache] + file on disk
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, nil)
//	res, _ := runner.RenderDiagram(ctx, diagram.Architecture(), pipeline.Options{
//	    Formats: []string{pipeline.FormatPNG},
//	})
//	_ = io.WriteFile("mcp_architecture.png", res.Artifacts[pipeline.FormatPNG])
//
// # Main Packages
//
// [render/layout] - Frame-space scene (boxes, lines, markers, texts) shared by
// every raster and vector sink, plus axis mapping and nice tick steps.
//
// [render/styles] - Visual styles. Simple draws exact geometry; handdrawn
// draws seeded, wobbly outlines.
//
// [render/sink] - Output formats for scenes.
//
// [render/nodelink] - Graphviz auto-layout of diagram components.
//
// [catalog] - Priority partition and the text report.
//
// # Testing
//
// Run tests:
//
//	go test ./...                        # All tests
//	go test ./pkg/catalog/...            # Specific package
//	go test -run Example ./pkg/...       # Examples only
//
// [diagram]: https://pkg.go.dev/github.com/matzehuels/blueprint/pkg/diagram
// [chart]: https://pkg.go.dev/github.com/matzehuels/blueprint/pkg/chart
// [catalog]: https://pkg.go.dev/github.com/matzehuels/blueprint/pkg/catalog
// [render]: https://pkg.go.dev/github.com/matzehuels/blueprint/pkg/render
// [render/layout]: https://pkg.go.dev/github.com/matzehuels/blueprint/pkg/render/layout
// [render/styles]: https://pkg.go.dev/github.com/matzehuels/blueprint/pkg/render/styles
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/blueprint/pkg/render/sink
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/blueprint/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/blueprint/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/blueprint/pkg/cache
// [io]: https://pkg.go.dev/github.com/matzehuels/blueprint/pkg/io
// [observability]: https://pkg.go.dev/github.com/matzehuels/blueprint/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/blueprint/pkg/errors
package pkg
