// Package sink turns a [layout.Layout] into output bytes.
//
// Every sink draws the same scene: layers in order and, within a layer,
// boxes, then lines, then markers, then texts. Shape outlines come from a
// [styles.Style], so a hand-drawn SVG and a hand-drawn PNG wobble the same
// way for the same seed.
//
// # Formats
//
//   - [RenderSVG]: a standalone SVG document.
//   - [RenderPNG]: a raster image drawn natively with gg, no external tools.
//   - [RenderPDF]: the SVG converted with rsvg-convert (requires librsvg).
//   - [RenderJSON]: the scene itself, for external tools and debugging.
//
// [layout.Layout]: github.com/matzehuels/blueprint/pkg/render/layout.Layout
// [styles.Style]: github.com/matzehuels/blueprint/pkg/render/styles.Style
package sink
