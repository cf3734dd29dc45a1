package geometry

import (
	"math"
	"strings"
	"testing"
)

func TestLineAnchorsSatisfyEquation(t *testing.T) {
	pairs := [][2]Point{
		{NewPoint(0, 0), NewPoint(1, 0)},
		{NewPoint(1, 2), NewPoint(4, -3)},
		{NewPoint(-0.7, 0.25), NewPoint(0.3, 0.9)},
		{NewPoint(5, 5), NewPoint(5, -5)},
	}

	for _, pair := range pairs {
		line := NewLine(pair[0], pair[1])
		if v := line.Eval(pair[0]); math.Abs(v) > 1e-10 {
			t.Errorf("Eval(p1) failed for %v: expected 0, got %v", pair, v)
		}
		if v := line.Eval(pair[1]); math.Abs(v) > 1e-10 {
			t.Errorf("Eval(p2) failed for %v: expected 0, got %v", pair, v)
		}
	}
}

func TestLineCoefficients(t *testing.T) {
	line := NewLine(NewPoint(1, 2), NewPoint(4, 6))
	a, b, c := line.Coefficients()

	if a != 4 || b != -3 || c != 4*2-6*1 {
		t.Errorf("Coefficients failed: got %v, %v, %v", a, b, c)
	}
}

func TestLineDistanceToPoint(t *testing.T) {
	p1 := NewPoint(1, 2)
	p2 := NewPoint(4, -3)
	line := NewLine(p1, p2)

	if d := line.DistanceToPoint(p1); math.Abs(d) > 1e-10 {
		t.Errorf("Distance to p1 failed: expected 0, got %v", d)
	}
	if d := line.DistanceToPoint(p2); math.Abs(d) > 1e-10 {
		t.Errorf("Distance to p2 failed: expected 0, got %v", d)
	}

	a, b, _ := line.Coefficients()
	normal := NewPoint(a, b).Normalize()
	for _, d := range []float64{0.01, 0.5, 3} {
		off := p1.Add(normal.Mul(d))
		if got := line.DistanceToPoint(off); math.Abs(got-d) > 1e-10 {
			t.Errorf("Distance failed: expected %v, got %v", d, got)
		}
	}
}

func TestLineIsClose(t *testing.T) {
	line := NewLine(NewPoint(0, 0), NewPoint(2, 0))

	if !line.IsClose(NewPoint(1, 0.02), 0.03) {
		t.Error("point 0.02 away should be close with threshold 0.03")
	}
	if line.IsClose(NewPoint(1, 0.03), 0.03) {
		t.Error("threshold is exclusive")
	}
	if !line.IsClose(NewPoint(10, 0.01), 0.03) {
		t.Error("closeness is measured against the infinite line")
	}
}

func TestDegenerateLine(t *testing.T) {
	p := NewPoint(0.5, 0.5)
	line := NewLine(p, p)

	if !line.IsDegenerate() {
		t.Fatal("line with coincident anchors should be degenerate")
	}
	if d := line.DistanceToPoint(p); !math.IsInf(d, 1) {
		t.Errorf("Distance failed: expected +Inf, got %v", d)
	}
	if line.IsClose(p, 1) {
		t.Error("degenerate line should never be close")
	}
	e1, e2 := line.Extended(2)
	if e1 != p || e2 != p {
		t.Errorf("Extended failed: expected anchors, got %v %v", e1, e2)
	}
}

func TestLineTranslate(t *testing.T) {
	line := NewLine(NewPoint(0, 0), NewPoint(1, 1))
	line.Translate(NewPoint(2, 0))

	if line.P1() != NewPoint(2, 0) {
		t.Errorf("P1 failed: expected %v, got %v", NewPoint(2, 0), line.P1())
	}
	if line.P2() != NewPoint(3, 1) {
		t.Errorf("P2 failed: expected %v, got %v", NewPoint(3, 1), line.P2())
	}
	if v := line.Eval(NewPoint(2, 0)); math.Abs(v) > 1e-10 {
		t.Errorf("equation not recomputed: Eval(new p1) = %v", v)
	}
	if v := line.Eval(NewPoint(0, 0)); math.Abs(v) < 1e-10 {
		t.Error("old anchor should no longer be on the line")
	}
}

func TestLineIntersect(t *testing.T) {
	horizontal := NewLine(NewPoint(0, 0), NewPoint(1, 0))
	vertical := NewLine(NewPoint(0, 0), NewPoint(0, 1))

	p, ok := horizontal.Intersect(vertical)
	if !ok {
		t.Fatal("perpendicular lines should intersect")
	}
	if math.Abs(p.X) > 1e-10 || math.Abs(p.Y) > 1e-10 {
		t.Errorf("Intersect failed: expected (0,0), got %v", p)
	}

	diagonal := NewLine(NewPoint(0, 1), NewPoint(1, 2))
	anti := NewLine(NewPoint(0, 3), NewPoint(3, 0))
	p, ok = diagonal.Intersect(anti)
	if !ok || math.Abs(p.X-1) > 1e-10 || math.Abs(p.Y-2) > 1e-10 {
		t.Errorf("Intersect failed: expected (1,2), got %v (ok=%v)", p, ok)
	}
}

func TestLineIntersectParallel(t *testing.T) {
	l1 := NewLine(NewPoint(0, 0), NewPoint(1, 0))
	l2 := NewLine(NewPoint(0, 1), NewPoint(1, 1))

	p, ok := l1.Intersect(l2)
	if ok {
		t.Errorf("parallel lines should not intersect, got %v", p)
	}
	if !p.IsNaN() {
		t.Errorf("expected NaN marker, got %v", p)
	}

	if _, ok := l1.Intersect(l1); ok {
		t.Error("coincident lines should not intersect")
	}
}

func TestLineExtended(t *testing.T) {
	line := NewLine(NewPoint(0, 0), NewPoint(1, 0))
	e1, e2 := line.Extended(2)

	if e1 != NewPoint(-2, 0) || e2 != NewPoint(3, 0) {
		t.Errorf("Extended failed: got %v %v", e1, e2)
	}
	if line.P1() != NewPoint(0, 0) || line.P2() != NewPoint(1, 0) {
		t.Error("Extended must not move the anchors")
	}
}

func TestLineEquationStrings(t *testing.T) {
	line := NewLine(NewPoint(0, 0), NewPoint(1, 1))

	if got := line.Implicit(); got != "1.0 x + -1.0 y + 0.0 = 0" {
		t.Errorf("Implicit failed: got %q", got)
	}
	if got := line.Parametric(); !strings.HasPrefix(got, "r(t) = (0.0, 0.0) + (1.0, 1.0)t") {
		t.Errorf("Parametric failed: got %q", got)
	}
}
