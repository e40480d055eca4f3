package turtle

import "math"

// Point is a position on the canvas, in the mathematical
// convention: x grows to the right, y grows upward.
type Point struct {
	X, Y float64
}

// Origin is the point a fresh canvas starts at.
var Origin = Point{0, 0}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Path is one polyline sub-path: the pen touches down at the first
// point and draws a line to each following point in order.
type Path []Point

// drawTo replays the sub-path on the driver `d`, after applying
// the transform `m`. Degenerate sub-paths (fewer than two points)
// are skipped, nothing would be rendered for them.
func (p Path) drawTo(d Drawer, m Matrix2D) {
	if len(p) < 2 {
		return
	}
	d.Start(m.Apply(p[0]))
	for _, pt := range p[1:] {
		d.Line(m.Apply(pt))
	}
	d.Stop(false)
}

// Bounds defines a bounding box, such as a viewport
// or a path extent.
type Bounds struct{ X, Y, W, H float64 }

// Contains reports whether p lies inside the box (borders included).
func (b Bounds) Contains(p Point) bool {
	return b.X <= p.X && p.X <= b.X+b.W && b.Y <= p.Y && p.Y <= b.Y+b.H
}

// Pad returns the box grown by `margin` on every side.
func (b Bounds) Pad(margin float64) Bounds {
	return Bounds{X: b.X - margin, Y: b.Y - margin, W: b.W + 2*margin, H: b.H + 2*margin}
}
