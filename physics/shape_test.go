// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"testing"

	"github.com/gazed/phys2d/math/lin"
)

func TestCircleProperties(t *testing.T) {
	c := NewCircle(lin.NewV2S(1, 2), -3) // negative radius is made positive.
	if c.Type() != CircleShape {
		t.Error("Expecting CircleShape type")
	}
	if c.Radius != 3 {
		t.Errorf("Expecting radius 3, got %f", c.Radius)
	}
	if !lin.Aeq(c.Area(), 9*3.14159265358979) {
		t.Errorf("Unexpected circle area %f", c.Area())
	}
	box := c.Aabb()
	if box.Min.X != -2 || box.Min.Y != -1 || box.Max.X != 4 || box.Max.Y != 5 {
		t.Errorf("Unexpected circle aabb %+v %+v", box.Min, box.Max)
	}
}

func TestCircleContains(t *testing.T) {
	c := NewCircle(lin.NewV2S(0, 0), 2)
	if !c.Contains(lin.NewV2S(1, 1)) {
		t.Error("Point (1,1) should be inside a radius-2 circle at origin")
	}
	if !c.Contains(lin.NewV2S(2, 0)) {
		t.Error("Point (2,0) on the boundary should be contained")
	}
	if c.Contains(lin.NewV2S(2, 1)) {
		t.Error("Point (2,1) should be outside a radius-2 circle at origin")
	}
}

func TestRectangleProperties(t *testing.T) {
	r := NewRectangle(lin.NewV2S(5, 5), -4, -2) // negative dims are made positive.
	if r.Type() != RectangleShape {
		t.Error("Expecting RectangleShape type")
	}
	if r.Width != 4 || r.Height != 2 {
		t.Errorf("Expecting 4x2 rectangle, got %fx%f", r.Width, r.Height)
	}
	if r.Area() != 8 {
		t.Errorf("Expecting area 8, got %f", r.Area())
	}
	box := r.Aabb()
	if box.Min.X != 3 || box.Min.Y != 4 || box.Max.X != 7 || box.Max.Y != 6 {
		t.Errorf("Unexpected rectangle aabb %+v %+v", box.Min, box.Max)
	}
}

func TestRectangleContains(t *testing.T) {
	r := NewRectangle(lin.NewV2S(0, 0), 4, 2)
	if !r.Contains(lin.NewV2S(1, 0.9)) {
		t.Error("Point inside the rectangle should be contained")
	}
	if !r.Contains(lin.NewV2S(2, 1)) {
		t.Error("Point on the rectangle corner should be contained")
	}
	if r.Contains(lin.NewV2S(2.1, 0)) {
		t.Error("Point past the right edge should not be contained")
	}
}

func TestShapeCenterIsShared(t *testing.T) {
	center := lin.NewV2S(1, 1)
	c := NewCircle(center, 1)
	center.SetS(5, 5)
	if c.Center().X != 5 || c.Center().Y != 5 {
		t.Error("Moving the original center vector should move the shape")
	}
}

func TestCircleCircleOverlaps(t *testing.T) {
	a := NewCircle(lin.NewV2S(0, 0), 1)
	b := NewCircle(lin.NewV2S(1.5, 0), 1)
	if !a.Overlaps(b) {
		t.Error("Circles 1.5 apart with radius 1 each should overlap")
	}
	b.Center().SetS(2.5, 0)
	if a.Overlaps(b) {
		t.Error("Circles 2.5 apart with radius 1 each should not overlap")
	}
}

func TestCircleRectangleOverlaps(t *testing.T) {
	c := NewCircle(lin.NewV2S(3, 0), 1)
	r := NewRectangle(lin.NewV2S(0, 0), 4, 4)
	if !c.Overlaps(r) {
		t.Error("Circle at (3,0) radius 1 should overlap a 4x4 rectangle at origin")
	}
	if !r.Overlaps(c) {
		t.Error("Overlap should hold regardless of call order")
	}
	c.Center().SetS(4, 0)
	if c.Overlaps(r) {
		t.Error("Circle moved clear of the rectangle should not overlap")
	}
}

func TestRectangleRectangleOverlaps(t *testing.T) {
	a := NewRectangle(lin.NewV2S(0, 0), 2, 2)
	b := NewRectangle(lin.NewV2S(1.5, 0), 2, 2)
	if !a.Overlaps(b) {
		t.Error("Overlapping rectangles should report overlap")
	}
	b.Center().SetS(2.01, 0)
	if a.Overlaps(b) {
		t.Error("Rectangles separated along X should not overlap")
	}
}

func TestAABBOverlapsAndContains(t *testing.T) {
	a := FromCenterSize(lin.NewV2S(0, 0), 2, 2)
	b := FromCenterSize(lin.NewV2S(1, 0), 2, 2)
	if !a.Overlaps(b) {
		t.Error("Overlapping AABBs should report overlap")
	}
	c := FromCenterSize(lin.NewV2S(2.01, 0), 2, 2)
	if a.Overlaps(c) {
		t.Error("AABBs touching only at a gap should not overlap")
	}
	if !a.Contains(lin.NewV2S(1, 1)) {
		t.Error("AABB should contain its own corner")
	}
}

func TestAABBMerge(t *testing.T) {
	a := FromCenterSize(lin.NewV2S(0, 0), 2, 2)
	b := FromCenterSize(lin.NewV2S(4, 0), 2, 2)
	m := a.Merge(b)
	if m.Min.X != -1 || m.Min.Y != -1 || m.Max.X != 5 || m.Max.Y != 1 {
		t.Errorf("Unexpected merged aabb %+v %+v", m.Min, m.Max)
	}
}

func TestAABBMinDimension(t *testing.T) {
	a := FromCenterSize(lin.NewV2S(0, 0), 4, 2)
	if a.minDimension() != 2 {
		t.Errorf("Expecting min dimension 2, got %f", a.minDimension())
	}
}
