package sink

import (
	"encoding/json"

	"github.com/matzehuels/blueprint/pkg/render/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	kind  string
	style string
	seed  uint64
}

// WithJSONKind records what the scene depicts ("diagram", "chart").
func WithJSONKind(k string) JSONOption { return func(r *jsonRenderer) { r.kind = k } }

// WithJSONStyle records the style name the scene is meant to be drawn with.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

// WithJSONSeed records the hand-drawn jitter seed.
func WithJSONSeed(seed uint64) JSONOption { return func(r *jsonRenderer) { r.seed = seed } }

type jsonOutput struct {
	Kind  string `json:"kind,omitempty"`
	Style string `json:"style,omitempty"`
	Seed  uint64 `json:"seed,omitempty"`
	layout.Layout
}

// RenderJSON exports the scene as a pretty-printed JSON document. Shapes keep
// their frame-space coordinates; no style is applied.
func RenderJSON(l layout.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	out := jsonOutput{Kind: r.kind, Style: r.style, Seed: r.seed, Layout: l}
	return json.MarshalIndent(out, "", "  ")
}
