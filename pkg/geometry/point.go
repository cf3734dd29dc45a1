package geometry

import "math"

// Point represents a position in the 2D world plane.
// Z is always 0; it is kept so points can be fed to homogeneous transforms unchanged.
type Point struct {
	X, Y, Z float64
}

// NewPoint creates a new point in the world plane
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// NaNPoint returns the "no result" marker used by Intersect
func NaNPoint() Point {
	return Point{X: math.NaN(), Y: math.NaN()}
}

// IsNaN reports whether p is the "no result" marker
func (p Point) IsNaN() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}

// Add returns the sum of two points
func (p Point) Add(other Point) Point {
	return Point{
		X: p.X + other.X,
		Y: p.Y + other.Y,
		Z: p.Z + other.Z,
	}
}

// Sub returns the difference between two points
func (p Point) Sub(other Point) Point {
	return Point{
		X: p.X - other.X,
		Y: p.Y - other.Y,
		Z: p.Z - other.Z,
	}
}

// Mul multiplies the point by a scalar
func (p Point) Mul(scalar float64) Point {
	return Point{
		X: p.X * scalar,
		Y: p.Y * scalar,
		Z: p.Z * scalar,
	}
}

// Dot returns the dot product of two points taken as vectors
func (p Point) Dot(other Point) float64 {
	return p.X*other.X + p.Y*other.Y + p.Z*other.Z
}

// Length returns the magnitude of the vector
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Distance returns the distance between two points
func (p Point) Distance(other Point) float64 {
	return p.Sub(other).Length()
}

// Normalize returns a unit vector in the same direction
func (p Point) Normalize() Point {
	length := p.Length()
	if length == 0 {
		return Point{}
	}
	return p.Mul(1.0 / length)
}
