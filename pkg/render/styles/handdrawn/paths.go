package handdrawn

import (
	"hash/fnv"
	"math"
	"strconv"

	"github.com/matzehuels/blueprint/pkg/render/path"
)

const (
	maxWobble       = 2.5  // px, upper bound on edge bend
	wobbleRatio     = 0.04 // bend relative to the shorter side
	straightLineMax = 40.0 // lines shorter than this stay straight
	maxRotation     = 1.5  // degrees
)

// hash mixes a seed into an FNV-1a hash of s.
func hash(s string, seed uint64) uint64 {
	h := fnv.New64a()
	var b [8]byte
	for i := range b {
		b[i] = byte(seed >> (8 * i))
	}
	h.Write(b[:])
	h.Write([]byte(s))
	return h.Sum64()
}

// jitter returns a deterministic value in [-amp, amp] for the i-th draw of id.
func jitter(id string, seed uint64, i int, amp float64) float64 {
	v := hash(id+"#"+strconv.Itoa(i), seed)
	unit := float64(v%20001)/10000 - 1
	return unit * amp
}

// wobbledRect traces a rectangle whose sides bow slightly, one quadratic
// curve per side.
func wobbledRect(x, y, w, h float64, seed uint64, id string) path.Path {
	amp := math.Min(maxWobble, math.Min(w, h)*wobbleRatio)
	if amp < 0.3 {
		amp = 0.3
	}
	corner := func(i int, px, py float64) path.Point {
		return path.Point{X: px + jitter(id, seed, i, amp/2), Y: py + jitter(id, seed, i+100, amp/2)}
	}
	corners := []path.Point{
		corner(0, x, y),
		corner(1, x+w, y),
		corner(2, x+w, y+h),
		corner(3, x, y+h),
	}

	p := path.Path{{Op: path.MoveTo, Pts: []path.Point{corners[0]}}}
	for i, from := range corners {
		to := corners[(i+1)%len(corners)]
		ctrl := bowed(from, to, jitter(id, seed, 10+i, amp))
		p = append(p, path.Segment{Op: path.QuadTo, Pts: []path.Point{ctrl, to}})
	}
	return append(p, path.Segment{Op: path.Close})
}

// wobbledPolygon traces a closed polygon with jittered vertices and bowed
// edges. size scales the jitter.
func wobbledPolygon(seed uint64, id string, size float64, pts ...path.Point) path.Path {
	if len(pts) == 0 {
		return nil
	}
	amp := math.Min(maxWobble, size*wobbleRatio*2)
	moved := make([]path.Point, len(pts))
	for i, pt := range pts {
		moved[i] = path.Point{X: pt.X + jitter(id, seed, i, amp/2), Y: pt.Y + jitter(id, seed, i+100, amp/2)}
	}

	p := path.Path{{Op: path.MoveTo, Pts: []path.Point{moved[0]}}}
	for i := range moved {
		from, to := moved[i], moved[(i+1)%len(moved)]
		ctrl := bowed(from, to, jitter(id, seed, 10+i, amp))
		p = append(p, path.Segment{Op: path.QuadTo, Pts: []path.Point{ctrl, to}})
	}
	return append(p, path.Segment{Op: path.Close})
}

// roughLine traces a stroke from (x1, y1) to (x2, y2). Short lines stay
// straight; longer ones become a gentle S-curve.
func roughLine(x1, y1, x2, y2 float64, seed uint64, id string) path.Path {
	start := path.Point{X: x1, Y: y1}
	end := path.Point{X: x2, Y: y2}
	length := math.Hypot(x2-x1, y2-y1)
	if length < straightLineMax {
		return path.Path{
			{Op: path.MoveTo, Pts: []path.Point{start}},
			{Op: path.LineTo, Pts: []path.Point{end}},
		}
	}

	amp := math.Min(3, length*0.02)
	nx, ny := normal(start, end)
	at := func(t, off float64) path.Point {
		return path.Point{X: x1 + (x2-x1)*t + nx*off, Y: y1 + (y2-y1)*t + ny*off}
	}
	c1 := at(1.0/3, jitter(id, seed, 1, amp))
	c2 := at(2.0/3, jitter(id, seed, 2, amp))
	return path.Path{
		{Op: path.MoveTo, Pts: []path.Point{start}},
		{Op: path.CubicTo, Pts: []path.Point{c1, c2, end}},
	}
}

// bowed returns the control point for a side from a to b pushed off the
// midpoint by off pixels along the side's normal.
func bowed(a, b path.Point, off float64) path.Point {
	nx, ny := normal(a, b)
	return path.Point{X: (a.X+b.X)/2 + nx*off, Y: (a.Y+b.Y)/2 + ny*off}
}

// normal returns the unit normal of segment a→b, or (0, 0) if it is
// degenerate.
func normal(a, b path.Point) (float64, float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return 0, 0
	}
	return -dy / l, dx / l
}

// rotationFor returns a stable text tilt in degrees for id.
func rotationFor(id string, seed uint64) float64 {
	return jitter(id, seed, 0, maxRotation)
}
