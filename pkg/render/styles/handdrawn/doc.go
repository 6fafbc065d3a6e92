// Package handdrawn provides an XKCD-inspired hand-drawn visual style.
//
// # Overview
//
// Boxes, markers and lines are traced with slightly bent edges and jittered
// corners, labels are tilted by a fraction of a degree, and SVG output asks
// for a handwriting font. The effect reads as a whiteboard sketch while
// keeping every shape within a couple of pixels of its exact geometry.
//
// # Reproducible Randomness
//
// All jitter is derived from a hash of the shape ID and a seed:
//
//	style := handdrawn.New(42)  // Same seed = same wobble pattern
//
// The same scene rendered twice with the same seed is byte-identical, which
// is what lets rendered artifacts be cached.
//
// # Usage
//
//	svg := sink.RenderSVG(l, sink.WithStyle(handdrawn.New(seed)))
//	png, err := sink.RenderPNG(l, sink.WithPNGStyle(handdrawn.New(seed)))
package handdrawn
