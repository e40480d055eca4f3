// Implements the SVG backend: serializes the accumulated
// sub-paths of a canvas into a standalone SVG document, and
// parses the emitted subset back into an abstract drawing.
package turtlesvg

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/mneumann/turtle-graphics/turtle"
)

const (
	// padding added around the drawing, per side, as a
	// fraction of the (clamped) extent
	marginRatio = 0.1

	// minimal extent used for the margin computation, so
	// hairline or empty drawings keep a visible viewport
	minExtent = 10.0
)

// viewBox returns the emitted viewport: the drawing bounds
// padded by marginRatio per side, still in canvas coordinates.
func viewBox(b turtle.Bounds) turtle.Bounds {
	wm := math.Max(b.W, minExtent) * marginRatio
	hm := math.Max(b.H, minExtent) * marginRatio
	return turtle.Bounds{X: b.X - wm, Y: b.Y - hm, W: b.W + 2*wm, H: b.H + 2*hm}
}

// pathWriter emits one <path> element per sub-path.
type pathWriter struct {
	w *bufio.Writer
}

func (p *pathWriter) Start(a turtle.Point) {
	fmt.Fprintf(p.w, `<path d="M%.3f %.3f`, a.X, a.Y)
}

func (p *pathWriter) Line(b turtle.Point) {
	fmt.Fprintf(p.w, " L%.3f %.3f", b.X, b.Y)
}

func (p *pathWriter) Stop(closeLoop bool) {
	if closeLoop {
		fmt.Fprint(p.w, " Z")
	}
	fmt.Fprint(p.w, "\" />\n")
}

// Write serializes the canvas as a Scalable Vector Graphic.
//
// The canvas uses the mathematical convention (y grows upward)
// while SVG draws y downward, so every point is emitted with its
// y coordinate negated and the viewBox is mirrored accordingly;
// distances and angles are unaffected.
// An empty canvas produces a valid document with a degenerate
// (margin-only) viewBox. The only failure mode is a write error
// on `w`, or a previously recorded canvas error.
func Write(c *turtle.Canvas, w io.Writer) error {
	if err := c.Err(); err != nil {
		return err
	}
	vb := viewBox(c.Bounds())
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(bw, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" baseProfile=\"full\" viewBox=\"%.3f %.3f %.3f %.3f\">\n",
		vb.X, -(vb.Y + vb.H), vb.W, vb.H)
	fmt.Fprint(bw, "<g stroke=\"black\" stroke-width=\"1\" fill=\"none\">\n")
	// mirror the y axis; bufio keeps the first write error and
	// surfaces it on Flush
	if err := c.Draw(&pathWriter{w: bw}, turtle.Matrix2D{A: 1, D: -1}); err != nil {
		return err
	}
	fmt.Fprint(bw, "</g>\n</svg>\n")
	return bw.Flush()
}
