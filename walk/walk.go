package walk

import "math"

// Point is a lattice point.
type Point struct {
	X, Y int
}

// XY is shorthand for Point{x, y}.
func XY(x, y int) Point { return Point{X: x, Y: y} }

// Walk is an ordered sequence of lattice points.
type Walk []Point

// Len returns the number of points in the walk.
func (w Walk) Len() int { return len(w) }

// IsEmpty reports whether the walk contains no points.
func (w Walk) IsEmpty() bool { return len(w) == 0 }

// Translate shifts every point by the given offset.
func (w Walk) Translate(by Point) Walk {
	out := make(Walk, len(w))
	for i, p := range w {
		out[i] = Point{X: p.X + by.X, Y: p.Y + by.Y}
	}

	return out
}

// Scale multiplies every point componentwise by the given factors.
func (w Walk) Scale(by Point) Walk {
	out := make(Walk, len(w))
	for i, p := range w {
		out[i] = Point{X: p.X * by.X, Y: p.Y * by.Y}
	}

	return out
}

// Rotate turns every point around the origin by the given angle in
// degrees, rounding the result back onto the lattice.
func (w Walk) Rotate(degrees float64) Walk {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)

	out := make(Walk, len(w))
	for i, p := range w {
		x, y := float64(p.X), float64(p.Y)
		out[i] = Point{
			X: int(math.Round(x*cos - y*sin)),
			Y: int(math.Round(y*cos + x*sin)),
		}
	}

	return out
}

// Equal reports whether two walks contain the same points in order.
func (w Walk) Equal(other Walk) bool {
	if len(w) != len(other) {
		return false
	}
	for i := range w {
		if w[i] != other[i] {
			return false
		}
	}

	return true
}
