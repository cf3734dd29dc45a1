package geometry

import (
	"fmt"
	"math"
)

// ParallelEpsilon is the smallest |denominator| Intersect accepts before treating
// two lines as parallel or coincident.
const ParallelEpsilon = 1e-8

// Line is an infinite line a*x + b*y + c = 0 together with the two anchor points
// that define it. The anchors bound the segment that gets drawn; the implicit form
// is always derived from them.
type Line struct {
	a, b, c float64
	p1, p2  Point
}

// NewLine creates the line through p1 and p2.
// Coincident anchors yield a degenerate line with a = b = 0.
func NewLine(p1, p2 Point) Line {
	l := Line{p1: p1, p2: p2}
	l.recompute()
	return l
}

func (l *Line) recompute() {
	l.a = l.p2.Y - l.p1.Y
	l.b = l.p1.X - l.p2.X
	l.c = l.p2.X*l.p1.Y - l.p2.Y*l.p1.X
}

// P1 returns the first anchor
func (l Line) P1() Point { return l.p1 }

// P2 returns the second anchor
func (l Line) P2() Point { return l.p2 }

// Coefficients returns a, b and c of the implicit equation
func (l Line) Coefficients() (a, b, c float64) {
	return l.a, l.b, l.c
}

// Eval returns a*x + b*y + c for p; zero for points on the line
func (l Line) Eval(p Point) float64 {
	return l.a*p.X + l.b*p.Y + l.c
}

// IsDegenerate reports whether both anchors coincide
func (l Line) IsDegenerate() bool {
	return l.a == 0 && l.b == 0
}

// DistanceToPoint returns the perpendicular distance from p to the line.
// A degenerate line has no direction, so every point is infinitely far away.
func (l Line) DistanceToPoint(p Point) float64 {
	denominator := math.Sqrt(l.a*l.a + l.b*l.b)
	if denominator == 0 {
		return math.Inf(1)
	}
	return math.Abs(l.Eval(p)) / denominator
}

// IsClose reports whether p lies strictly within threshold of the line
func (l Line) IsClose(p Point, threshold float64) bool {
	return l.DistanceToPoint(p) < threshold
}

// Translate shifts both anchors rigidly so that P1 ends up at newP1
func (l *Line) Translate(newP1 Point) {
	shift := newP1.Sub(l.p1)
	l.p1 = l.p1.Add(shift)
	l.p2 = l.p2.Add(shift)
	l.recompute()
}

// Intersect returns the intersection point of the two infinite lines.
// For parallel or coincident lines it returns NaNPoint() and false.
func (l Line) Intersect(other Line) (Point, bool) {
	x1, y1 := l.p1.X, l.p1.Y
	x2, y2 := l.p2.X, l.p2.Y
	x3, y3 := other.p1.X, other.p1.Y
	x4, y4 := other.p2.X, other.p2.Y

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if math.Abs(denom) < ParallelEpsilon {
		return NaNPoint(), false
	}

	d1 := x1*y2 - y1*x2
	d2 := x3*y4 - y3*x4
	xi := ((x3-x4)*d1 - (x1-x2)*d2) / denom
	yi := ((y3-y4)*d1 - (y1-y2)*d2) / denom

	return NewPoint(xi, yi), true
}

// Extended returns the drawn endpoints: the anchors pushed outwards by margin
// along the line direction. The line itself is not modified.
func (l Line) Extended(margin float64) (Point, Point) {
	if l.IsDegenerate() {
		return l.p1, l.p2
	}
	dir := l.p2.Sub(l.p1).Normalize()
	return l.p1.Sub(dir.Mul(margin)), l.p2.Add(dir.Mul(margin))
}

// Implicit formats the implicit equation, e.g. "1.0 x + -1.0 y + 0.0 = 0"
func (l Line) Implicit() string {
	return fmt.Sprintf("%.1f x + %.1f y + %.1f = 0", l.a, l.b, l.c)
}

// Parametric formats the parametric form starting at P1 with direction P2-P1
func (l Line) Parametric() string {
	d := l.p2.Sub(l.p1)
	return fmt.Sprintf("r(t) = (%.1f, %.1f) + (%.1f, %.1f)t", l.p1.X, l.p1.Y, d.X, d.Y)
}
