// Command turtledraw draws a built-in turtle figure and exports
// it to SVG, EPS, PDF or PNG.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/mneumann/turtle-graphics/turtle"
	"github.com/mneumann/turtle-graphics/turtleeps"
	"github.com/mneumann/turtle-graphics/turtlepdf"
	"github.com/mneumann/turtle-graphics/turtleraster"
	"github.com/mneumann/turtle-graphics/turtlesvg"
)

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

var (
	// Flags
	figure = flag.String("figure", "square", "Figure to draw")
	format = flag.String("format", "svg", "Output format: svg, eps, pdf or png")
	out    = flag.String("out", pipeName, "Destination file ('-' for stdout)")
	size   = flag.Float64("size", 200, "Base length of the figure")
	depth  = flag.Int("depth", 4, "Recursion depth (koch, tree)")
	scale  = flag.Float64("scale", 1, "Pixel scale (png only)")
)

var figures = map[string]func(t turtle.Turtle, size float64, depth int){
	"square": drawSquare,
	"star":   drawStar,
	"spiral": drawSpiral,
	"koch":   drawKoch,
	"tree":   drawTree,
}

func figureNames() string {
	names := make([]string, 0, len(figures))
	for name := range figures {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func drawSquare(t turtle.Turtle, size float64, _ int) {
	for i := 0; i < 4; i++ {
		t.Forward(size)
		t.Right(90)
	}
}

func drawStar(t turtle.Turtle, size float64, _ int) {
	for i := 0; i < 5; i++ {
		t.Forward(size)
		t.Right(144)
	}
}

func drawSpiral(t turtle.Turtle, size float64, _ int) {
	step := size / 50
	for i := 0; i < 100; i++ {
		t.Forward(step * float64(i))
		t.Right(59)
	}
}

func kochSide(t turtle.Turtle, size float64, depth int) {
	if depth == 0 {
		t.Forward(size)
		return
	}
	kochSide(t, size/3, depth-1)
	t.Left(60)
	kochSide(t, size/3, depth-1)
	t.Right(120)
	kochSide(t, size/3, depth-1)
	t.Left(60)
	kochSide(t, size/3, depth-1)
}

func drawKoch(t turtle.Turtle, size float64, depth int) {
	t.Right(90)
	for i := 0; i < 3; i++ {
		kochSide(t, size, depth)
		t.Right(120)
	}
}

func drawTree(t turtle.Turtle, size float64, depth int) {
	if depth == 0 {
		return
	}
	t.Forward(size)
	t.Push()
	t.Left(30)
	drawTree(t, size*0.7, depth-1)
	t.Pop()
	t.Push()
	t.Right(30)
	drawTree(t, size*0.7, depth-1)
	t.Pop()
	t.PenUp()
	t.Backward(size)
	t.PenDown()
}

func export(c *turtle.Canvas, format string, w io.Writer) error {
	switch format {
	case "svg":
		return turtlesvg.Write(c, w)
	case "eps":
		return turtleeps.Write(c, w)
	case "pdf":
		return turtlepdf.Write(c, w)
	case "png":
		return turtleraster.WritePNG(c, w, *scale)
	default:
		return fmt.Errorf("unknown format %q (want svg, eps, pdf or png)", format)
	}
}

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: turtledraw [options]\n\nFigures: %s\n\n", figureNames())
		flag.PrintDefaults()
	}
	flag.Parse()

	draw, ok := figures[*figure]
	if !ok {
		log.Fatalf("unknown figure %q (want one of: %s)", *figure, figureNames())
	}

	c := turtle.NewCanvas()
	draw(c, *size, *depth)
	if err := c.Err(); err != nil {
		log.Fatal(err)
	}

	w := io.Writer(os.Stdout)
	if *out != pipeName {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		w = f
	}
	if err := export(c, *format, w); err != nil {
		log.Fatal(err)
	}
}
