package geometry

import (
	"math"
	"testing"
)

func TestPointAdd(t *testing.T) {
	p1 := NewPoint(1, 2)
	p2 := NewPoint(4, 5)
	result := p1.Add(p2)

	expected := NewPoint(5, 7)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestPointSub(t *testing.T) {
	p1 := NewPoint(5, 7)
	p2 := NewPoint(1, 2)
	result := p1.Sub(p2)

	expected := NewPoint(4, 5)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestPointZStaysZero(t *testing.T) {
	p := NewPoint(0.2, 0.3).Add(NewPoint(1, 1)).Mul(3)
	if p.Z != 0 {
		t.Errorf("Z failed: expected 0, got %v", p.Z)
	}
}

func TestPointDistance(t *testing.T) {
	p1 := NewPoint(0, 0)
	p2 := NewPoint(3, 4)
	distance := p1.Distance(p2)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestPointNormalize(t *testing.T) {
	p := NewPoint(3, 4)
	normalized := p.Normalize()

	if math.Abs(normalized.Length()-1.0) > 1e-10 {
		t.Errorf("Normalize failed: expected length 1, got %v", normalized.Length())
	}

	zero := Point{}.Normalize()
	if zero != (Point{}) {
		t.Errorf("Normalize of zero vector failed: expected %v, got %v", Point{}, zero)
	}
}

func TestPointDot(t *testing.T) {
	p1 := NewPoint(1, 2)
	p2 := NewPoint(4, 5)
	result := p1.Dot(p2)

	expected := 14.0 // 1*4 + 2*5
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Dot failed: expected %v, got %v", expected, result)
	}
}

func TestNaNPoint(t *testing.T) {
	if !NaNPoint().IsNaN() {
		t.Error("NaNPoint should report IsNaN")
	}
	if NewPoint(0, 0).IsNaN() {
		t.Error("origin should not report IsNaN")
	}
}
