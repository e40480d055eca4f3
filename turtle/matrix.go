package turtle

// Matrix2D is an affine transform:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
//
// Export backends use it to state their device transform
// (translation to the bounding box origin, y axis flip for
// y-down formats, raster scaling) in one place.
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the identity transform.
var Identity = Matrix2D{1, 0, 0, 1, 0, 0}

// Apply transforms the point p.
func (m Matrix2D) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// Mult returns the transform applying s first, then m.
func (m Matrix2D) Mult(s Matrix2D) Matrix2D {
	return Matrix2D{
		A: m.A*s.A + m.C*s.B,
		B: m.B*s.A + m.D*s.B,
		C: m.A*s.C + m.C*s.D,
		D: m.B*s.C + m.D*s.D,
		E: m.A*s.E + m.C*s.F + m.E,
		F: m.B*s.E + m.D*s.F + m.F,
	}
}

// Translate shifts the transform by (x, y).
func (m Matrix2D) Translate(x, y float64) Matrix2D {
	return m.Mult(Matrix2D{1, 0, 0, 1, x, y})
}

// Scale scales the transform by (x, y).
func (m Matrix2D) Scale(x, y float64) Matrix2D {
	return m.Mult(Matrix2D{x, 0, 0, y, 0, 0})
}

// FlipY returns the transform mapping the box b from the
// mathematical y-up convention used by the canvas onto a y-down
// device whose origin is the top-left corner of b.
// Formats drawing y downward (SVG, PDF, raster images) compose
// their device transform from it.
func FlipY(b Bounds) Matrix2D {
	return Matrix2D{A: 1, B: 0, C: 0, D: -1, E: -b.X, F: b.Y + b.H}
}
