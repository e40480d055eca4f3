package turtlepdf

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/mneumann/turtle-graphics/turtle"
)

func spiral() *turtle.Canvas {
	c := turtle.NewCanvas()
	for i := 0; i < 36; i++ {
		c.Forward(float64(2 + 3*i))
		c.Right(30)
	}
	return c
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(spiral(), &buf); err != nil {
		t.Fatalf("can't write pdf: %s", err)
	}
	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Errorf("not a pdf document: %q", out[:16])
	}
	if !bytes.Contains(out, []byte("%%EOF")) {
		t.Error("pdf trailer missing")
	}
}

func TestWriteEmptyCanvas(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(turtle.NewCanvas(), &buf); err != nil {
		t.Fatalf("empty canvas must export cleanly: %s", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Error("empty canvas did not produce a pdf document")
	}
}

func TestWriteFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "spiral.pdf")
	if err := WriteFile(spiral(), name); err != nil {
		t.Fatalf("can't write pdf file: %s", err)
	}
	fi, err := os.Stat(name)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Error("pdf file is empty")
	}
}

func TestCanvasErrorSurfaced(t *testing.T) {
	c := turtle.NewCanvas()
	c.Goto(turtle.Point{X: math.NaN(), Y: 0})
	if err := Write(c, &bytes.Buffer{}); err == nil {
		t.Error("canvas error not surfaced by export")
	}
}
