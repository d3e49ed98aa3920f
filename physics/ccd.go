// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

// ccd.go implements continuous collision detection: the swept tests that
// keep a fast body from tunneling through a thin static obstacle within
// a single fixed sub-step.

import (
	"math"

	"github.com/gazed/phys2d/math/lin"
)

// needsSweptTest reports whether body is moving fast enough this
// sub-step that a narrow-phase-only test could miss a thin obstacle.
func needsSweptTest(b *Body, dt float64) bool {
	return b.velocity.Len()*dt > 0.5*b.GetAABB().minDimension()
}

// sweptFunc computes the time of impact, as a fraction of dt in (0, 1],
// between bodies a and b, or ok=false if they do not meet within dt.
type sweptFunc func(a, b *Body, dt float64) (toi float64, ok bool)

var sweptTests [NumShapes][NumShapes]sweptFunc

func init() {
	sweptTests[CircleShape][CircleShape] = sweptCircleCircle
	sweptTests[CircleShape][RectangleShape] = sweptBoxLike
	sweptTests[RectangleShape][CircleShape] = sweptBoxLike
	sweptTests[RectangleShape][RectangleShape] = sweptBoxLike
}

// sweptTest dispatches the swept TOI test for bodies a and b by shape
// kind, returning a fraction of dt in (0, 1] or ok=false.
func sweptTest(a, b *Body, dt float64) (toi float64, ok bool) {
	fn := sweptTests[a.shape.Type()][b.shape.Type()]
	if fn == nil {
		return 0, false
	}
	return fn(a, b, dt)
}

// sweptCircleCircle solves the quadratic for |centerDiffA→B(t)|² = rSum²
// with t = s·dt, picking the smaller root within [0, dt]. Implements
// spec §4.5 Circle–Circle.
func sweptCircleCircle(a, b *Body, dt float64) (toi float64, ok bool) {
	ca, cb := a.shape.(*Circle), b.shape.(*Circle)
	rSum := ca.Radius + cb.Radius

	d0x, d0y := b.position.X-a.position.X, b.position.Y-a.position.Y
	vx := (b.velocity.X - a.velocity.X) * dt
	vy := (b.velocity.Y - a.velocity.Y) * dt

	qa := vx*vx + vy*vy
	qb := 2 * (d0x*vx + d0y*vy)
	qc := d0x*d0x + d0y*d0y - rSum*rSum

	if qc <= 0 {
		return 0, false // already overlapping: narrow-phase handles it.
	}
	if qa < lin.EpsilonSqr {
		return 0, false // no relative motion, never meets.
	}

	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return 0, false
	}
	sqrtDisc := math.Sqrt(disc)
	s1 := (-qb - sqrtDisc) / (2 * qa)
	s2 := (-qb + sqrtDisc) / (2 * qa)
	if s1 > s2 {
		s1, s2 = s2, s1
	}
	switch {
	case s1 >= 0 && s1 <= 1:
		return s1, true
	case s2 >= 0 && s2 <= 1:
		return s2, true
	}
	return 0, false
}

// halfExtents returns the shape's bounding half-width and half-height,
// used as the Minkowski-sum expansion amount for sweptBoxLike.
func halfExtents(shape Shape) (hx, hy float64) {
	switch s := shape.(type) {
	case *Circle:
		return s.Radius, s.Radius
	case *Rectangle:
		return s.Width / 2, s.Height / 2
	}
	return 0, 0
}

// sweptBoxLike reduces Circle-Rectangle and Rectangle-Rectangle swept
// tests to a raycast against an AABB expanded by the Minkowski sum of
// both shapes' extents, using the slab method. Implements spec §4.5
// Circle–Rect & Rect–Rect.
func sweptBoxLike(a, b *Body, dt float64) (toi float64, ok bool) {
	ahx, ahy := halfExtents(a.shape)
	bhx, bhy := halfExtents(b.shape)

	expMinX, expMaxX := b.position.X-bhx-ahx, b.position.X+bhx+ahx
	expMinY, expMaxY := b.position.Y-bhy-ahy, b.position.Y+bhy+ahy

	rx := a.position.X
	ry := a.position.Y
	dx := (a.velocity.X - b.velocity.X) * dt
	dy := (a.velocity.Y - b.velocity.Y) * dt

	tMinX, tMaxX, okX := slabIntersect(rx, dx, expMinX, expMaxX)
	if !okX {
		return 0, false
	}
	tMinY, tMaxY, okY := slabIntersect(ry, dy, expMinY, expMaxY)
	if !okY {
		return 0, false
	}

	tMin := math.Max(tMinX, tMinY)
	tMax := math.Min(tMaxX, tMaxY)
	if tMin > tMax || tMax < 0 || tMin <= 0 || tMin > 1 {
		return 0, false
	}
	return tMin, true
}

// slabIntersect computes the entry/exit parametric t for a ray starting
// at origin with displacement d against the slab [lo, hi]. A ray
// parallel to the slab (d ~ 0) is rejected unless origin already lies
// within the slab's bounds.
func slabIntersect(origin, d, lo, hi float64) (tMin, tMax float64, ok bool) {
	if math.Abs(d) < lin.Epsilon {
		if origin < lo || origin > hi {
			return 0, 0, false
		}
		return math.Inf(-1), math.Inf(1), true
	}
	t1, t2 := (lo-origin)/d, (hi-origin)/d
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return t1, t2, true
}
