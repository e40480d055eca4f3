// Implements the EPS backend, serializing the accumulated
// sub-paths of a canvas into an Encapsulated PostScript document.
package turtleeps

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/mneumann/turtle-graphics/turtle"
)

// lineWidth is the stroke width, in PostScript points.
const lineWidth = 1.0

// ceilCoord rounds an extent outward; trig noise well below
// visible resolution must not inflate the box by a full unit.
func ceilCoord(v float64) int {
	return int(math.Ceil(v - 1e-9))
}

// pathWriter emits one moveto/lineto run per sub-path.
type pathWriter struct {
	w *bufio.Writer
}

func (p *pathWriter) Start(a turtle.Point) {
	fmt.Fprintf(p.w, "%.3f %.3f moveto\n", a.X, a.Y)
}

func (p *pathWriter) Line(b turtle.Point) {
	fmt.Fprintf(p.w, "%.3f %.3f lineto\n", b.X, b.Y)
}

func (p *pathWriter) Stop(closeLoop bool) {
	if closeLoop {
		fmt.Fprint(p.w, "closepath\n")
	}
}

// Write serializes the canvas as Encapsulated PostScript.
//
// PostScript shares the mathematical convention of the canvas
// (y grows upward), so no mirroring is needed; the drawing is
// translated so the lower-left corner of its extent sits on the
// PostScript origin, and %%BoundingBox is the outward-rounded
// extent padded by half the stroke width, keeping the stroked
// line inside the declared box. An empty canvas produces a
// valid document with a near-degenerate bounding box. The only
// failure mode is a write error on `w`, or a previously
// recorded canvas error.
func Write(c *turtle.Canvas, w io.Writer) error {
	if err := c.Err(); err != nil {
		return err
	}
	b := c.Bounds().Pad(lineWidth / 2)
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "%!PS-Adobe-3.0 EPSF-3.0\n")
	fmt.Fprintf(bw, "%%%%BoundingBox: 0 0 %d %d\n", ceilCoord(b.W), ceilCoord(b.H))
	fmt.Fprintf(bw, "%%%%HiResBoundingBox: 0 0 %.3f %.3f\n", b.W, b.H)
	fmt.Fprint(bw, "%%Creator: turtle-graphics\n")
	fmt.Fprintf(bw, "%%%%EndComments\n")
	fmt.Fprintf(bw, "%.3f setlinewidth\n0 setgray\nnewpath\n", lineWidth)
	if err := c.Draw(&pathWriter{w: bw}, turtle.Identity.Translate(-b.X, -b.Y)); err != nil {
		return err
	}
	fmt.Fprintf(bw, "stroke\nshowpage\n%%%%EOF\n")
	return bw.Flush()
}
