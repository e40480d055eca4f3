package turtlesvg

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/mneumann/turtle-graphics/turtle"
)

// ErrorMode controls how the reader treats SVG content outside
// the supported subset (curves, gradients, text, ...).
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unsupported content silently.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode skips unsupported content with a log warning.
	WarnErrorMode
	// StrictErrorMode fails on unsupported content.
	StrictErrorMode
)

var errParamMismatch = errors.New("turtlesvg: parameter count mismatch")

// Drawing holds the polylines parsed from an SVG document,
// in SVG coordinates (y grows downward).
type Drawing struct {
	ViewBox turtle.Bounds
	Paths   []turtle.Path
}

// readCursor is used while parsing SVG files
type readCursor struct {
	drawing *Drawing
	errMode ErrorMode
}

// ReadStream parses an SVG document from the given io.Reader.
// Only the subset emitted by Write is supported (svg, g, path
// with M/L/H/V/Z data, line, polyline, plus title and desc);
// errMode determines if the reader ignores, errors out, or logs
// a warning when it finds an element outside that subset.
func ReadStream(stream io.Reader, errMode ErrorMode) (*Drawing, error) {
	cursor := &readCursor{drawing: &Drawing{}, errMode: errMode}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, errors.New("turtlesvg: invalid svg xml document")
				}
				break
			}
			return nil, err
		}
		se, ok := t.(xml.StartElement)
		if !ok {
			continue
		}
		seenTag = true
		if err := cursor.readStartElement(se); err != nil {
			return nil, err
		}
	}
	return cursor.drawing, nil
}

// Read parses the named SVG file. See ReadStream.
func Read(svgFile string, errMode ErrorMode) (*Drawing, error) {
	fin, err := os.Open(svgFile)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return ReadStream(fin, errMode)
}

func (c *readCursor) readStartElement(se xml.StartElement) error {
	switch se.Name.Local {
	case "svg":
		return c.svgF(se.Attr)
	case "g", "title", "desc", "defs":
		return nil
	case "path":
		return c.pathF(se.Attr)
	case "line":
		return c.lineF(se.Attr)
	case "polyline", "polygon":
		return c.polylineF(se.Attr)
	default:
		return c.unsupported("element <" + se.Name.Local + ">")
	}
}

func (c *readCursor) unsupported(what string) error {
	switch c.errMode {
	case StrictErrorMode:
		return errors.New("turtlesvg: unsupported " + what)
	case WarnErrorMode:
		log.Println("turtlesvg: ignoring unsupported " + what)
	}
	return nil
}

// getPoints parses a whitespace or comma separated float list,
// as found in viewBox and points attributes.
func getPoints(data string) ([]float64, error) {
	fields := strings.FieldsFunc(data, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r'
	})
	points := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		points[i] = v
	}
	return points, nil
}

func (c *readCursor) svgF(attrs []xml.Attr) error {
	var width, height float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "viewBox":
			pts, errP := getPoints(attr.Value)
			if errP != nil {
				return errP
			}
			if len(pts) != 4 {
				return errParamMismatch
			}
			c.drawing.ViewBox = turtle.Bounds{X: pts[0], Y: pts[1], W: pts[2], H: pts[3]}
		case "width":
			width, err = strconv.ParseFloat(strings.TrimSuffix(attr.Value, "px"), 64)
		case "height":
			height, err = strconv.ParseFloat(strings.TrimSuffix(attr.Value, "px"), 64)
		}
		if err != nil {
			return err
		}
	}
	if c.drawing.ViewBox.W == 0 {
		c.drawing.ViewBox.W = width
	}
	if c.drawing.ViewBox.H == 0 {
		c.drawing.ViewBox.H = height
	}
	return nil
}

func (c *readCursor) pathF(attrs []xml.Attr) error {
	for _, attr := range attrs {
		if attr.Name.Local == "d" {
			paths, err := c.parsePathData(attr.Value)
			if err != nil {
				return err
			}
			c.drawing.Paths = append(c.drawing.Paths, paths...)
		}
	}
	return nil
}

func (c *readCursor) lineF(attrs []xml.Attr) error {
	var x1, y1, x2, y2 float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x1":
			x1, err = strconv.ParseFloat(attr.Value, 64)
		case "y1":
			y1, err = strconv.ParseFloat(attr.Value, 64)
		case "x2":
			x2, err = strconv.ParseFloat(attr.Value, 64)
		case "y2":
			y2, err = strconv.ParseFloat(attr.Value, 64)
		}
		if err != nil {
			return err
		}
	}
	c.drawing.Paths = append(c.drawing.Paths, turtle.Path{{X: x1, Y: y1}, {X: x2, Y: y2}})
	return nil
}

func (c *readCursor) polylineF(attrs []xml.Attr) error {
	for _, attr := range attrs {
		if attr.Name.Local != "points" {
			continue
		}
		pts, err := getPoints(attr.Value)
		if err != nil {
			return err
		}
		if len(pts)%2 != 0 {
			return errParamMismatch
		}
		path := make(turtle.Path, len(pts)/2)
		for i := range path {
			path[i] = turtle.Point{X: pts[2*i], Y: pts[2*i+1]}
		}
		c.drawing.Paths = append(c.drawing.Paths, path)
	}
	return nil
}

// tokenizePathData splits SVG path data into command letters and
// number literals. Separators are optional between a command and
// its parameters, and a sign starts a new number.
func tokenizePathData(data string) []string {
	var toks []string
	var num []byte
	flush := func() {
		if len(num) > 0 {
			toks = append(toks, string(num))
			num = num[:0]
		}
	}
	for i := 0; i < len(data); i++ {
		b := data[i]
		switch {
		case 'A' <= b && b <= 'Z' || 'a' <= b && b <= 'z':
			// exponent marker, part of the current number
			if (b == 'e' || b == 'E') && len(num) > 0 {
				num = append(num, b)
				continue
			}
			flush()
			toks = append(toks, string(b))
		case b == ' ' || b == ',' || b == '\t' || b == '\n' || b == '\r':
			flush()
		case b == '-' || b == '+':
			if len(num) > 0 && num[len(num)-1] != 'e' && num[len(num)-1] != 'E' {
				flush()
			}
			num = append(num, b)
		default:
			num = append(num, b)
		}
	}
	flush()
	return toks
}

func isPathCommand(b byte) bool {
	return 'A' <= b && b <= 'Z' || 'a' <= b && b <= 'z'
}

// parsePathData converts path data into polylines. Supported
// commands: M, L, H, V, Z and their relative forms; anything
// else is handled according to the error mode (its parameters
// are skipped).
func (c *readCursor) parsePathData(data string) ([]turtle.Path, error) {
	toks := tokenizePathData(data)
	var (
		paths  []turtle.Path
		cur    turtle.Path
		cmd    byte
		x, y   float64 // current point
		sx, sy float64 // sub-path start, for Z
		i      int
	)
	flush := func() {
		if len(cur) > 0 {
			paths = append(paths, cur)
			cur = nil
		}
	}
	next := func() (float64, error) {
		if i >= len(toks) {
			return 0, errParamMismatch
		}
		v, err := strconv.ParseFloat(toks[i], 64)
		if err != nil {
			return 0, fmt.Errorf("turtlesvg: invalid path number %q", toks[i])
		}
		i++
		return v, nil
	}
	lineAbs := func(px, py float64) {
		if len(cur) == 0 {
			cur = turtle.Path{{X: x, Y: y}}
		}
		cur = append(cur, turtle.Point{X: px, Y: py})
		x, y = px, py
	}
	for i < len(toks) {
		if len(toks[i]) == 1 && isPathCommand(toks[i][0]) {
			cmd = toks[i][0]
			i++
		}
		// a number without a preceding letter repeats the last command
		rel := 'a' <= cmd && cmd <= 'z'
		switch cmd {
		case 'M', 'm':
			px, err := next()
			if err != nil {
				return nil, err
			}
			py, err := next()
			if err != nil {
				return nil, err
			}
			if rel {
				px, py = x+px, y+py
			}
			flush()
			x, y, sx, sy = px, py, px, py
			cur = turtle.Path{{X: x, Y: y}}
			// further coordinate pairs are implicit linetos
			if cmd == 'M' {
				cmd = 'L'
			} else {
				cmd = 'l'
			}
		case 'L', 'l':
			px, err := next()
			if err != nil {
				return nil, err
			}
			py, err := next()
			if err != nil {
				return nil, err
			}
			if rel {
				px, py = x+px, y+py
			}
			lineAbs(px, py)
		case 'H', 'h':
			px, err := next()
			if err != nil {
				return nil, err
			}
			if rel {
				px += x
			}
			lineAbs(px, y)
		case 'V', 'v':
			py, err := next()
			if err != nil {
				return nil, err
			}
			if rel {
				py += y
			}
			lineAbs(x, py)
		case 'Z', 'z':
			lineAbs(sx, sy)
			flush()
			// Z takes no parameters; a number here would
			// otherwise never be consumed
			if i < len(toks) && !(len(toks[i]) == 1 && isPathCommand(toks[i][0])) {
				return nil, errParamMismatch
			}
		default:
			if err := c.unsupported(fmt.Sprintf("path command %q", cmd)); err != nil {
				return nil, err
			}
			// skip the parameters of the unsupported command
			for i < len(toks) && !(len(toks[i]) == 1 && isPathCommand(toks[i][0])) {
				i++
			}
		}
	}
	flush()
	return paths, nil
}
