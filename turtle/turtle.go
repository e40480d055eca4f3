// Provides a classic turtle graphics engine: a drawing
// cursor moved by relative commands, accumulating an abstract
// path which can then be consumed by export backends.
// See for example turtle-graphics/turtlesvg or turtle-graphics/turtlepdf .
package turtle

// Turtle is the set of commands moving the drawing cursor.
// A command either repositions the cursor, turns it, or toggles
// whether movement leaves a visible trail ("pen down").
type Turtle interface {
	// Forward moves the turtle by `distance` in the current heading.
	// A negative distance moves backward.
	Forward(distance float64)

	// Backward moves the turtle by `distance` against the current heading.
	Backward(distance float64)

	// Right turns the turtle clockwise by `angle` degrees.
	Right(angle float64)

	// Left turns the turtle counter-clockwise by `angle` degrees.
	Left(angle float64)

	// PenUp lifts the pen: subsequent movement only repositions.
	PenUp()

	// PenDown lowers the pen: subsequent movement draws.
	PenDown()

	// Goto positions the turtle exactly at `pos`, without drawing.
	Goto(pos Point)

	// Home moves the turtle back to the origin.
	Home()

	// Push saves the current turtle state (position, heading, pen) on a stack.
	Push()

	// Pop restores the most recently saved turtle state.
	Pop()
}

// Drawer knows how to do the actual draw operations
// but doesn't need any turtle knowledge.
// In particular, the device transform is already applied to the
// points before sending them to the Drawer.
type Drawer interface {
	// Start starts a new sub-path at the given point.
	Start(a Point)

	// Line adds a line from the current point to `b`.
	Line(b Point)

	// Stop closes the sub-path to the start point if `closeLoop` is true.
	Stop(closeLoop bool)
}
