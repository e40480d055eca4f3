package turtle

import (
	"fmt"
	"math"
)

// state is one entry of the turtle state stack.
type state struct {
	pos     Point
	heading float64 // degrees in [0,360), 0 is up, clockwise
	penDown bool
}

// Canvas owns the turtle state and accumulates the drawn sub-paths.
// It is created at the origin, heading up, pen down; the sub-path
// list only grows while drawing, and exporting is a read-only pass,
// so a canvas may be exported several times, to different backends.
//
// A canvas rejects non-finite inputs (NaN or infinite distances,
// angles and positions): the first violation is recorded, all
// further drawing commands are ignored, and Err (as well as every
// exporter) reports it. The scheme follows gofpdf, so movement
// calls stay chainable and the error surfaces where output is
// requested.
//
// A Canvas is not safe for concurrent use; it is exclusively
// owned by its caller.
type Canvas struct {
	states []state
	paths  []Path
	err    error
}

var _ Turtle = (*Canvas)(nil) // assert interface conformance

// NewCanvas returns an empty canvas: turtle at the origin,
// heading up, pen down.
func NewCanvas() *Canvas {
	c := &Canvas{states: []state{{pos: Origin, penDown: true}}}
	c.moveTo(Origin)
	return c
}

func (c *Canvas) current() *state { return &c.states[len(c.states)-1] }

// setErr records the first contract violation.
func (c *Canvas) setErr(format string, args ...interface{}) {
	if c.err == nil {
		c.err = fmt.Errorf(format, args...)
	}
}

// Err returns the first error recorded by a drawing command,
// or nil. Once set, the canvas ignores further commands.
func (c *Canvas) Err() error { return c.err }

// moveTo begins a new sub-path at `dst`. A degenerate head
// (a sub-path the pen touched down on but never drew from) is
// replaced instead of leaking an empty sub-path.
func (c *Canvas) moveTo(dst Point) {
	if len(c.paths) == 0 {
		c.paths = append(c.paths, Path{dst})
		return
	}
	last := c.paths[len(c.paths)-1]
	if len(last) > 1 {
		c.paths = append(c.paths, Path{dst})
	} else {
		c.paths[len(c.paths)-1][0] = dst
	}
}

// lineTo extends the current sub-path to `dst`.
func (c *Canvas) lineTo(dst Point) {
	c.paths[len(c.paths)-1] = append(c.paths[len(c.paths)-1], dst)
}

// normalizeDeg wraps an angle into [0,360).
func normalizeDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// direction returns the displacement of a move by `distance`
// in the current heading.
func (c *Canvas) direction(distance float64) (dx, dy float64) {
	rad := c.current().heading * math.Pi / 180
	// heading 0 is up and grows clockwise
	return math.Sin(rad) * distance, math.Cos(rad) * distance
}

// Forward moves the turtle by `distance` in the current heading,
// drawing a segment if the pen is down. A negative distance moves
// backward.
func (c *Canvas) Forward(distance float64) {
	if c.err != nil {
		return
	}
	if !isFinite(distance) {
		c.setErr("turtle: non-finite forward distance %v", distance)
		return
	}
	dx, dy := c.direction(distance)
	st := c.current()
	dst := Point{X: st.pos.X + dx, Y: st.pos.Y + dy}
	if st.penDown {
		c.lineTo(dst)
	}
	st.pos = dst
}

// Backward moves the turtle by `distance` against the current heading.
func (c *Canvas) Backward(distance float64) {
	c.Forward(-distance)
}

// Right turns the turtle clockwise by `angle` degrees.
func (c *Canvas) Right(angle float64) {
	if c.err != nil {
		return
	}
	if !isFinite(angle) {
		c.setErr("turtle: non-finite turn angle %v", angle)
		return
	}
	st := c.current()
	st.heading = normalizeDeg(st.heading + angle)
}

// Left turns the turtle counter-clockwise by `angle` degrees.
func (c *Canvas) Left(angle float64) {
	c.Right(-angle)
}

// PenUp lifts the pen: movement only repositions until PenDown.
func (c *Canvas) PenUp() {
	if c.err != nil {
		return
	}
	c.current().penDown = false
}

// PenDown lowers the pen and starts a new sub-path at the
// current position.
func (c *Canvas) PenDown() {
	if c.err != nil {
		return
	}
	st := c.current()
	c.moveTo(st.pos)
	st.penDown = true
}

// Goto positions the turtle exactly at `pos` without drawing,
// starting a new sub-path there.
func (c *Canvas) Goto(pos Point) {
	if c.err != nil {
		return
	}
	if !pos.IsFinite() {
		c.setErr("turtle: non-finite goto position %v", pos)
		return
	}
	c.current().pos = pos
	c.moveTo(pos)
}

// Home moves the turtle back to the origin without drawing.
func (c *Canvas) Home() {
	c.Goto(Origin)
}

// Push saves the current turtle state on the stack.
func (c *Canvas) Push() {
	if c.err != nil {
		return
	}
	c.states = append(c.states, *c.current())
}

// Pop restores the most recently pushed turtle state and starts
// a new sub-path at the restored position. Popping the bottom of
// the stack is ignored.
func (c *Canvas) Pop() {
	if c.err != nil {
		return
	}
	if len(c.states) == 1 {
		return
	}
	c.states = c.states[:len(c.states)-1]
	c.moveTo(c.current().pos)
}

// Position returns the current turtle position.
func (c *Canvas) Position() Point { return c.current().pos }

// Heading returns the current heading in degrees, in [0,360).
func (c *Canvas) Heading() float64 { return c.current().heading }

// PenIsDown reports whether movement currently draws.
func (c *Canvas) PenIsDown() bool { return c.current().penDown }

// Paths returns the accumulated sub-paths, in drawing order.
// Degenerate sub-paths (a single point) may be present and are
// not rendered by the backends. The slice is owned by the canvas
// and must not be mutated.
func (c *Canvas) Paths() []Path { return c.paths }

// Bounds returns the extent of the drawing: the smallest box
// containing every sub-path point. An empty canvas yields a
// degenerate box at the turtle position.
func (c *Canvas) Bounds() Bounds {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	seen := false
	for _, path := range c.paths {
		for _, pt := range path {
			minX = math.Min(minX, pt.X)
			maxX = math.Max(maxX, pt.X)
			minY = math.Min(minY, pt.Y)
			maxY = math.Max(maxY, pt.Y)
			seen = true
		}
	}
	if !seen {
		pos := c.current().pos
		return Bounds{X: pos.X, Y: pos.Y}
	}
	return Bounds{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Draw replays every sub-path on the driver `d`, applying the
// device transform `m` to each point. It fails if a drawing
// command was previously rejected.
func (c *Canvas) Draw(d Drawer, m Matrix2D) error {
	if c.err != nil {
		return c.err
	}
	for _, path := range c.paths {
		path.drawTo(d, m)
	}
	return nil
}
