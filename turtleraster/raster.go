// Implements a raster backend for turtle drawings,
// by wrapping rasterx.
package turtleraster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/mneumann/turtle-graphics/turtle"
)

var _ turtle.Drawer = (*Renderer)(nil) // assert interface conformance

const (
	// strokeWidth is the pen width in device pixels.
	strokeWidth = 2.0

	// margin, in device pixels, kept around the drawing so the
	// stroke is not clipped at the image border.
	margin = 2
)

// Renderer feeds sub-paths into a rasterx stroker.
type Renderer struct {
	dasher *rasterx.Dasher
}

// NewRenderer returns a renderer with default stroke settings,
// rasterizing through the given scanner.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	dasher := rasterx.NewDasher(width, height, scanner)
	dasher.SetStroke(
		fixed.Int26_6(strokeWidth*64), fixed.Int26_6(4*64),
		rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Miter,
		nil, 0,
	)
	return &Renderer{dasher: dasher}
}

// ceilPx rounds an extent up to whole pixels; trig noise well
// below visible resolution must not add a pixel row.
func ceilPx(v float64) int {
	return int(math.Ceil(v - 1e-9))
}

func toFixedP(a turtle.Point) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(a.X * 64)
	p.Y = fixed.Int26_6(a.Y * 64)
	return
}

func (r *Renderer) Start(a turtle.Point) {
	r.dasher.Start(toFixedP(a))
}

func (r *Renderer) Line(b turtle.Point) {
	r.dasher.Line(toFixedP(b))
}

func (r *Renderer) Stop(closeLoop bool) {
	r.dasher.Stop(closeLoop)
}

// Draw strokes the accumulated path.
func (r *Renderer) Draw() {
	r.dasher.Draw()
}

// Raster renders the canvas, scaled by `scale`, as a black
// stroke on a white image sized to the drawing extent.
// An empty canvas yields a small blank image, not an error.
func Raster(c *turtle.Canvas, scale float64) (*image.RGBA, error) {
	if scale <= 0 {
		scale = 1
	}
	b := c.Bounds()
	w := ceilPx(b.W*scale) + 2*margin
	h := ceilPx(b.H*scale) + 2*margin
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	scanner.SetColor(color.NRGBA{A: 0xff})
	renderer := NewRenderer(w, h, scanner)

	// y-down device, scaled, with a pixel margin on every side
	m := turtle.Identity.Translate(margin, margin).Scale(scale, scale).Mult(turtle.FlipY(b))
	if err := c.Draw(renderer, m); err != nil {
		return nil, err
	}
	renderer.Draw()
	return img, nil
}

// WritePNG renders the canvas (see Raster) and PNG-encodes it
// into `w`.
func WritePNG(c *turtle.Canvas, w io.Writer, scale float64) error {
	img, err := Raster(c, scale)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
