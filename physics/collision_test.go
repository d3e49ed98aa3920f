// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"testing"

	"github.com/gazed/phys2d/math/lin"
)

func newCircleBody(x, y, r float64) *Body {
	b, err := NewBody(NewCircle(lin.NewV2S(x, y), r), 1, DefaultMaterial)
	if err != nil {
		panic(err)
	}
	return b
}

func newRectBody(x, y, w, h float64) *Body {
	b, err := NewBody(NewRectangle(lin.NewV2S(x, y), w, h), 1, DefaultMaterial)
	if err != nil {
		panic(err)
	}
	return b
}

func TestDetectCircleCircle(t *testing.T) {
	a, b := newCircleBody(0, 0, 1), newCircleBody(1.5, 0, 1)
	m := detectCircleCircle(a, b)
	if m == nil {
		t.Fatal("Circles 1.5 apart with radius 1 each should collide")
	}
	if !lin.Aeq(m.Contacts[0].Penetration, 0.5) {
		t.Errorf("Expecting penetration 0.5, got %f", m.Contacts[0].Penetration)
	}
	if m.Contacts[0].Normal.X != 1 || m.Contacts[0].Normal.Y != 0 {
		t.Errorf("Expecting normal (1,0), got %+v", m.Contacts[0].Normal)
	}

	b.position.SetS(2.5, 0)
	if detectCircleCircle(a, b) != nil {
		t.Error("Circles 2.5 apart with radius 1 each should not collide")
	}
}

func TestDetectCircleCircleCoincident(t *testing.T) {
	a, b := newCircleBody(3, 3, 1), newCircleBody(3, 3, 1)
	m := detectCircleCircle(a, b)
	if m == nil {
		t.Fatal("Coincident circles should still produce a manifold")
	}
	if m.Contacts[0].Penetration != 2 {
		t.Errorf("Expecting full penetration 2, got %f", m.Contacts[0].Penetration)
	}
}

func TestDetectCircleRectangleDispatchOrientation(t *testing.T) {
	circle, rect := newCircleBody(3, 0, 1), newRectBody(0, 0, 4, 4)

	mAB := detect(circle, rect) // (Circle, Rectangle) slot.
	if mAB == nil {
		t.Fatal("Circle touching rectangle should collide")
	}
	if mAB.Contacts[0].Normal.X >= 0 {
		t.Errorf("Normal A->B should point from circle toward rectangle (-X), got %+v", mAB.Contacts[0].Normal)
	}

	mBA := detect(rect, circle) // (Rectangle, Circle) slot.
	if mBA == nil {
		t.Fatal("Rectangle touching circle should collide")
	}
	if mBA.Contacts[0].Normal.X <= 0 {
		t.Errorf("Normal A->B should point from rectangle toward circle (+X), got %+v", mBA.Contacts[0].Normal)
	}
}

func TestDetectCircleRectangleCenterInside(t *testing.T) {
	circle, rect := newCircleBody(0, 0, 1), newRectBody(0, 0, 10, 4)
	m := detect(circle, rect)
	if m == nil {
		t.Fatal("Circle centered inside a rectangle should still collide")
	}
	// Nearest edge is the top/bottom (distance 2) vs left/right (distance 5).
	if m.Contacts[0].Normal.X != 0 {
		t.Errorf("Expecting push-out through the nearer top/bottom edge, got %+v", m.Contacts[0].Normal)
	}
}

func TestDetectCircleRectangleNoCollision(t *testing.T) {
	circle, rect := newCircleBody(10, 0, 1), newRectBody(0, 0, 4, 4)
	if detect(circle, rect) != nil {
		t.Error("Circle far from the rectangle should not collide")
	}
}

func TestDetectRectangleRectangle(t *testing.T) {
	a, b := newRectBody(0, 0, 2, 2), newRectBody(1.5, 0, 2, 2)
	m := detectRectangleRectangle(a, b)
	if m == nil {
		t.Fatal("Overlapping rectangles should collide")
	}
	if !lin.Aeq(m.Contacts[0].Penetration, 0.5) {
		t.Errorf("Expecting penetration 0.5, got %f", m.Contacts[0].Penetration)
	}
	if m.Contacts[0].Normal.X != 1 {
		t.Errorf("Expecting normal (1,0) along the shallower axis, got %+v", m.Contacts[0].Normal)
	}

	b.position.SetS(2.01, 0)
	if detectRectangleRectangle(a, b) != nil {
		t.Error("Separated rectangles should not collide")
	}
}

func TestDetectDispatchesByShapeKind(t *testing.T) {
	// Both shape kinds are registered in this package, so this exercises
	// the detect() dispatch path rather than the unsupported branch: a
	// smoke test that detect() routes by shape kind correctly.
	a, b := newCircleBody(0, 0, 1), newCircleBody(0.5, 0, 1)
	if detect(a, b) == nil {
		t.Error("Expecting circle-circle dispatch to produce a manifold")
	}
}
