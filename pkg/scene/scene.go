// Package scene holds the point and line collections of a drawing.
//
// Entries are addressed by their insertion index. Nothing is ever removed, so an ID
// stays valid for the lifetime of its collection no matter how much it grows.
package scene

import "github.com/philipparndt/gogeo/pkg/geometry"

// PointID identifies a point by its position in insertion order
type PointID int

// LineID identifies a line by its position in insertion order
type LineID int

// Points is an ordered collection of points
type Points struct {
	items []geometry.Point
}

// NewPoints creates an empty point collection
func NewPoints() *Points {
	return &Points{items: make([]geometry.Point, 0)}
}

// Add appends p and returns its ID. Duplicates are kept.
func (c *Points) Add(p geometry.Point) PointID {
	c.items = append(c.items, p)
	return PointID(len(c.items) - 1)
}

// Get returns the point stored under id
func (c *Points) Get(id PointID) (geometry.Point, bool) {
	if int(id) < 0 || int(id) >= len(c.items) {
		return geometry.Point{}, false
	}
	return c.items[id], true
}

// Len returns the number of points
func (c *Points) Len() int {
	return len(c.items)
}

// All returns a copy of the points in insertion order
func (c *Points) All() []geometry.Point {
	out := make([]geometry.Point, len(c.items))
	copy(out, c.items)
	return out
}

// Pick returns the first point, in insertion order, closer than threshold to q
func (c *Points) Pick(q geometry.Point, threshold float64) (PointID, bool) {
	for i, p := range c.items {
		dx := p.X - q.X
		dy := p.Y - q.Y
		if dx*dx+dy*dy < threshold*threshold {
			return PointID(i), true
		}
	}
	return -1, false
}

// Lines is an ordered collection of lines
type Lines struct {
	items []geometry.Line
}

// NewLines creates an empty line collection
func NewLines() *Lines {
	return &Lines{items: make([]geometry.Line, 0)}
}

// Add appends the line through p1 and p2 and returns its ID
func (c *Lines) Add(p1, p2 geometry.Point) LineID {
	c.items = append(c.items, geometry.NewLine(p1, p2))
	return LineID(len(c.items) - 1)
}

// Get returns a copy of the line stored under id
func (c *Lines) Get(id LineID) (geometry.Line, bool) {
	if int(id) < 0 || int(id) >= len(c.items) {
		return geometry.Line{}, false
	}
	return c.items[id], true
}

// Translate moves the line stored under id so that its first anchor lands on p1
func (c *Lines) Translate(id LineID, p1 geometry.Point) bool {
	if int(id) < 0 || int(id) >= len(c.items) {
		return false
	}
	c.items[id].Translate(p1)
	return true
}

// Len returns the number of lines
func (c *Lines) Len() int {
	return len(c.items)
}

// All returns a copy of the lines in insertion order
func (c *Lines) All() []geometry.Line {
	out := make([]geometry.Line, len(c.items))
	copy(out, c.items)
	return out
}

// Pick returns the first line, in insertion order, that passes IsClose for q
func (c *Lines) Pick(q geometry.Point, threshold float64) (LineID, bool) {
	for i, l := range c.items {
		if l.IsClose(q, threshold) {
			return LineID(i), true
		}
	}
	return -1, false
}
