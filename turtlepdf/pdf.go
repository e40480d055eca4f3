// Implements a PDF backend for turtle drawings,
// by wrapping github.com/jung-kurt/gofpdf.
package turtlepdf

import (
	"io"
	"math"

	"github.com/jung-kurt/gofpdf"

	"github.com/mneumann/turtle-graphics/turtle"
)

var _ turtle.Drawer = (*Renderer)(nil) // assert interface conformance

// margin, in points, kept around the drawing so the stroke is
// not clipped at the page edge.
const margin = 2.0

// Renderer feeds sub-paths into a gofpdf document.
// The path is accumulated on the pdf and stroked by DrawPath
// (or the Write helpers) once the replay is done.
type Renderer struct {
	pdf *gofpdf.Fpdf
}

// NewRenderer returns a renderer which will write to the
// given `pdf`.
func NewRenderer(pdf *gofpdf.Fpdf) *Renderer {
	return &Renderer{pdf: pdf}
}

func (r *Renderer) Start(a turtle.Point) {
	r.pdf.MoveTo(a.X, a.Y)
}

func (r *Renderer) Line(b turtle.Point) {
	r.pdf.LineTo(b.X, b.Y)
}

func (r *Renderer) Stop(closeLoop bool) {
	if closeLoop {
		r.pdf.ClosePath()
	}
}

// document builds a single-page PDF sized to the canvas extent
// and strokes the drawing on it.
func document(c *turtle.Canvas) (*gofpdf.Fpdf, error) {
	box := c.Bounds().Pad(margin)
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: math.Max(box.W, 1), Ht: math.Max(box.H, 1)},
	})
	pdf.AddPage()
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(1)
	// PDF page coordinates in gofpdf grow downward from the
	// top-left corner
	if err := c.Draw(NewRenderer(pdf), turtle.FlipY(box)); err != nil {
		return nil, err
	}
	pdf.DrawPath("D")
	return pdf, nil
}

// Write renders the canvas as a single-page PDF document sized
// to its extent. An empty canvas yields a valid, blank page.
// Fails on a previously recorded canvas error, or if writing to
// `w` fails.
func Write(c *turtle.Canvas, w io.Writer) error {
	pdf, err := document(c)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

// WriteFile renders the canvas into the named PDF file.
// See Write.
func WriteFile(c *turtle.Canvas, name string) error {
	pdf, err := document(c)
	if err != nil {
		return err
	}
	return pdf.OutputFileAndClose(name)
}
