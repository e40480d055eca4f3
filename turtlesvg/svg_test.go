package turtlesvg

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/mneumann/turtle-graphics/turtle"
)

const eps = 1e-3 // coordinates are emitted with three decimals

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func square(t *testing.T) *turtle.Canvas {
	t.Helper()
	c := turtle.NewCanvas()
	for i := 0; i < 4; i++ {
		c.Forward(100)
		c.Right(90)
	}
	return c
}

func roundTrip(t *testing.T, c *turtle.Canvas) *Drawing {
	t.Helper()
	var buf bytes.Buffer
	if err := Write(c, &buf); err != nil {
		t.Fatalf("can't write svg: %s", err)
	}
	d, err := ReadStream(&buf, StrictErrorMode)
	if err != nil {
		t.Fatalf("can't read back emitted svg: %s", err)
	}
	return d
}

func TestWriteSquareRoundTrip(t *testing.T) {
	c := square(t)
	d := roundTrip(t, c)
	if len(d.Paths) != 1 {
		t.Fatalf("expected one path, got %d", len(d.Paths))
	}
	want := c.Paths()[0]
	got := d.Paths[0]
	if len(got) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(got))
	}
	// the writer mirrors the y axis
	for i := range want {
		if !near(got[i].X, want[i].X) || !near(-got[i].Y, want[i].Y) {
			t.Errorf("point %d: got %v, want %v mirrored", i, got[i], want[i])
		}
	}
}

func TestViewBoxContainsAllPoints(t *testing.T) {
	c := turtle.NewCanvas()
	c.Forward(100)
	c.Right(130)
	c.Forward(250)
	c.Left(77)
	c.Backward(60)
	d := roundTrip(t, c)
	for _, path := range d.Paths {
		for _, pt := range path {
			if !d.ViewBox.Contains(pt) {
				t.Errorf("viewBox %v misses point %v", d.ViewBox, pt)
			}
		}
	}
}

func TestWriteEmptyCanvas(t *testing.T) {
	c := turtle.NewCanvas()
	var buf bytes.Buffer
	if err := Write(c, &buf); err != nil {
		t.Fatalf("empty canvas must export cleanly: %s", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "viewBox=") {
		t.Errorf("missing svg root: %q", out)
	}
	d, err := ReadStream(strings.NewReader(out), StrictErrorMode)
	if err != nil {
		t.Fatalf("empty document is not well formed: %s", err)
	}
	if len(d.Paths) != 0 {
		t.Errorf("empty canvas produced paths: %v", d.Paths)
	}
}

func TestWriteSurfacesCanvasError(t *testing.T) {
	c := turtle.NewCanvas()
	c.Forward(math.NaN())
	if err := Write(c, &bytes.Buffer{}); err == nil {
		t.Error("canvas error not surfaced by export")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errParamMismatch // any error will do
}

func TestWriteSurfacesSinkError(t *testing.T) {
	if err := Write(square(t), failingWriter{}); err == nil {
		t.Error("write error on the sink not surfaced")
	}
}

func TestPenUpGapSplitsPaths(t *testing.T) {
	c := turtle.NewCanvas()
	c.Forward(50)
	c.PenUp()
	c.Forward(20)
	c.PenDown()
	c.Forward(50)
	d := roundTrip(t, c)
	if len(d.Paths) != 2 {
		t.Fatalf("expected two paths across a pen-up gap, got %d", len(d.Paths))
	}
}

func TestParsePathData(t *testing.T) {
	cursor := &readCursor{drawing: &Drawing{}, errMode: StrictErrorMode}
	for _, tc := range []struct {
		data string
		want []turtle.Path
	}{
		{"M0 0 L10 0 L10 10", []turtle.Path{{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}}},
		{"M0,0 10,0 10,10", []turtle.Path{{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}}},
		{"m5 5 l5 0 l0 5", []turtle.Path{{{X: 5, Y: 5}, {X: 10, Y: 5}, {X: 10, Y: 10}}}},
		{"M0 0 H10 V10 h-10 Z", []turtle.Path{{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0}}}},
		{"M1-2L3-4", []turtle.Path{{{X: 1, Y: -2}, {X: 3, Y: -4}}}},
		{"M0 0 L5 5 M20 20 L25 25", []turtle.Path{{{X: 0, Y: 0}, {X: 5, Y: 5}}, {{X: 20, Y: 20}, {X: 25, Y: 25}}}},
		{"M0 0L1e2 1.5e1", []turtle.Path{{{X: 0, Y: 0}, {X: 100, Y: 15}}}},
	} {
		got, err := cursor.parsePathData(tc.data)
		if err != nil {
			t.Errorf("%q: %s", tc.data, err)
			continue
		}
		if len(got) != len(tc.want) {
			t.Errorf("%q: got %v, want %v", tc.data, got, tc.want)
			continue
		}
		for i := range tc.want {
			if len(got[i]) != len(tc.want[i]) {
				t.Errorf("%q path %d: got %v, want %v", tc.data, i, got[i], tc.want[i])
				continue
			}
			for j := range tc.want[i] {
				if !near(got[i][j].X, tc.want[i][j].X) || !near(got[i][j].Y, tc.want[i][j].Y) {
					t.Errorf("%q point %d/%d: got %v, want %v", tc.data, i, j, got[i][j], tc.want[i][j])
				}
			}
		}
	}
}

func TestReadLineAndPolyline(t *testing.T) {
	const doc = `<?xml version="1.0"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
  <line x1="0" y1="0" x2="30" y2="40"/>
  <polyline points="0,0 10,10 20,0"/>
</svg>`
	d, err := ReadStream(strings.NewReader(doc), StrictErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Paths) != 2 {
		t.Fatalf("expected two paths, got %v", d.Paths)
	}
	if len(d.Paths[0]) != 2 || len(d.Paths[1]) != 3 {
		t.Errorf("unexpected shapes: %v", d.Paths)
	}
	if d.ViewBox != (turtle.Bounds{X: 0, Y: 0, W: 100, H: 100}) {
		t.Errorf("viewBox: %v", d.ViewBox)
	}
}

func TestErrorModes(t *testing.T) {
	const doc = `<svg xmlns="http://www.w3.org/2000/svg"><circle cx="5" cy="5" r="2"/></svg>`
	if _, err := ReadStream(strings.NewReader(doc), StrictErrorMode); err == nil {
		t.Error("strict mode accepted an unsupported element")
	}
	if _, err := ReadStream(strings.NewReader(doc), IgnoreErrorMode); err != nil {
		t.Errorf("ignore mode rejected the document: %s", err)
	}

	const curve = `<svg xmlns="http://www.w3.org/2000/svg"><path d="M0 0 C1 1 2 2 3 3 L4 4"/></svg>`
	if _, err := ReadStream(strings.NewReader(curve), StrictErrorMode); err == nil {
		t.Error("strict mode accepted a curve command")
	}
	d, err := ReadStream(strings.NewReader(curve), IgnoreErrorMode)
	if err != nil {
		t.Fatalf("ignore mode rejected the document: %s", err)
	}
	// the curve parameters are skipped, the following lineto is kept
	if len(d.Paths) != 1 {
		t.Fatalf("got %v", d.Paths)
	}
	last := d.Paths[0][len(d.Paths[0])-1]
	if !near(last.X, 4) || !near(last.Y, 4) {
		t.Errorf("lineto after skipped curve: %v", last)
	}
}

func TestPathDataRejectsParamsAfterClose(t *testing.T) {
	// Z takes no parameters; a trailing number must be a parse
	// error in every mode, not an endless loop
	for _, mode := range []ErrorMode{IgnoreErrorMode, StrictErrorMode} {
		cursor := &readCursor{drawing: &Drawing{}, errMode: mode}
		for _, data := range []string{"M0 0 L1 1 Z 5", "M0 0 L1 1 z 5 5", "Z 1"} {
			if _, err := cursor.parsePathData(data); err == nil {
				t.Errorf("mode %d: %q accepted", mode, data)
			}
		}
	}
	const doc = `<svg xmlns="http://www.w3.org/2000/svg"><path d="M0 0 L1 1 Z 5"/></svg>`
	if _, err := ReadStream(strings.NewReader(doc), IgnoreErrorMode); err == nil {
		t.Error("document with malformed path data accepted")
	}
}

func TestPathDataCloseThenNewSubPath(t *testing.T) {
	cursor := &readCursor{drawing: &Drawing{}, errMode: StrictErrorMode}
	got, err := cursor.parsePathData("M0 0 L1 1 Z M5 5 L6 6")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected two paths, got %v", got)
	}
}

func TestReadInvalidDocument(t *testing.T) {
	if _, err := ReadStream(strings.NewReader("not xml at all"), IgnoreErrorMode); err == nil {
		t.Error("garbage input accepted")
	}
}
