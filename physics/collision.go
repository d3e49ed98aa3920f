// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"log/slog"
	"math"
	"sync"

	"github.com/gazed/phys2d/math/lin"
)

// detectFunc computes the manifold between two bodies of known shape
// kinds, or nil if they are not in contact. The returned manifold's
// normal always points from body a toward body b.
type detectFunc func(a, b *Body) *Manifold

// detectors dispatches narrow-phase detection by the ordered pair of
// shape kinds. Populated in init so each entry can reference the
// detector functions defined further down this file.
var detectors [NumShapes][NumShapes]detectFunc

func init() {
	detectors[CircleShape][CircleShape] = detectCircleCircle
	detectors[CircleShape][RectangleShape] = detectCircleRectangleAB
	detectors[RectangleShape][CircleShape] = detectRectangleCircleAB
	detectors[RectangleShape][RectangleShape] = detectRectangleRectangle
}

// detect runs the narrow-phase dispatcher for bodies a and b, returning
// their manifold or nil if they do not touch.
func detect(a, b *Body) *Manifold {
	ka, kb := a.shape.Type(), b.shape.Type()
	fn := detectors[ka][kb]
	if fn == nil {
		logUnsupportedPair(ka, kb)
		return nil
	}
	return fn(a, b)
}

// unsupported shape pairs are logged once per kind pair, never aborting
// the step.
var (
	unsupportedLogged   = map[[2]ShapeKind]bool{}
	unsupportedLoggedMu sync.Mutex
)

func logUnsupportedPair(a, b ShapeKind) {
	key := [2]ShapeKind{a, b}
	unsupportedLoggedMu.Lock()
	defer unsupportedLoggedMu.Unlock()
	if unsupportedLogged[key] {
		return
	}
	unsupportedLogged[key] = true
	slog.Warn("physics: unsupported shape pair in narrow-phase dispatcher", "a", a, "b", b)
}

// detect
// ============================================================================
// circle-circle

// detectCircleCircle implements spec §4.4 Circle–Circle.
func detectCircleCircle(a, b *Body) *Manifold {
	ca, cb := a.shape.(*Circle), b.shape.(*Circle)
	pa, pb := a.position, b.position
	dx, dy := pb.X-pa.X, pb.Y-pa.Y
	dSqr := dx*dx + dy*dy
	rSum := ca.Radius + cb.Radius
	if dSqr >= rSum*rSum {
		return nil
	}
	d := math.Sqrt(dSqr)
	if d < lin.Epsilon {
		// Coincident centers: pick an arbitrary axis.
		return newManifold(a, b, []Contact{{
			Point:       lin.NewV2S(pa.X, pa.Y),
			Normal:      lin.NewV2S(1, 0),
			Penetration: rSum,
		}})
	}
	nx, ny := dx/d, dy/d
	return newManifold(a, b, []Contact{{
		Point:       lin.NewV2S(pa.X+nx*ca.Radius, pa.Y+ny*ca.Radius),
		Normal:      lin.NewV2S(nx, ny),
		Penetration: rSum - d,
	}})
}

// circle-circle
// ============================================================================
// circle-rectangle

// detectCircleRectangleAB handles the (Circle, Rectangle) dispatch slot:
// a is the circle, b is the rectangle, and the manifold normal must point
// A (circle) toward B (rectangle) — the opposite of the core computation,
// which works in rectangle→circle terms.
func detectCircleRectangleAB(a, b *Body) *Manifold {
	point, normal, penetration, ok := circleRectangleContact(a, b)
	if !ok {
		return nil
	}
	normal.Neg(normal) // rect→circle becomes circle→rect (A→B)
	return newManifold(a, b, []Contact{{Point: point, Normal: normal, Penetration: penetration}})
}

// detectRectangleCircleAB handles the (Rectangle, Circle) dispatch slot:
// a is the rectangle, b is the circle. The core computation already
// points rect→circle, i.e. A→B, so no flip is needed.
func detectRectangleCircleAB(a, b *Body) *Manifold {
	point, normal, penetration, ok := circleRectangleContact(b, a)
	if !ok {
		return nil
	}
	return newManifold(a, b, []Contact{{Point: point, Normal: normal, Penetration: penetration}})
}

// circleRectangleContact implements spec §4.4 Circle–Rectangle. Returned
// normal points from the rectangle toward the circle; callers orient it
// to the A→B convention for their dispatch slot.
func circleRectangleContact(circleBody, rectBody *Body) (point, normal *lin.V2, penetration float64, ok bool) {
	c := circleBody.shape.(*Circle)
	r := rectBody.shape.(*Rectangle)
	pc, pr := circleBody.position, rectBody.position
	hx, hy := r.Width/2, r.Height/2

	qx := lin.Clamp(pc.X, pr.X-hx, pr.X+hx)
	qy := lin.Clamp(pc.Y, pr.Y-hy, pr.Y+hy)
	ox, oy := pc.X-qx, pc.Y-qy
	dSqr := ox*ox + oy*oy
	if dSqr > c.Radius*c.Radius+lin.Epsilon {
		return nil, nil, 0, false
	}
	d := math.Sqrt(dSqr)
	if d < lin.Epsilon {
		// Center inside the rectangle: push out through the nearest edge.
		rightDist := (pr.X + hx) - pc.X
		leftDist := pc.X - (pr.X - hx)
		topDist := (pr.Y + hy) - pc.Y
		bottomDist := pc.Y - (pr.Y - hy)

		edge := rightDist
		n := lin.NewV2S(1, 0)
		p := lin.NewV2S(pr.X+hx, pc.Y)
		if leftDist < edge {
			edge, n, p = leftDist, lin.NewV2S(-1, 0), lin.NewV2S(pr.X-hx, pc.Y)
		}
		if topDist < edge {
			edge, n, p = topDist, lin.NewV2S(0, 1), lin.NewV2S(pc.X, pr.Y+hy)
		}
		if bottomDist < edge {
			edge, n, p = bottomDist, lin.NewV2S(0, -1), lin.NewV2S(pc.X, pr.Y-hy)
		}
		return p, n, c.Radius + edge, true
	}
	nx, ny := ox/d, oy/d
	return lin.NewV2S(pc.X-nx*c.Radius, pc.Y-ny*c.Radius), lin.NewV2S(nx, ny), c.Radius - d, true
}

// circle-rectangle
// ============================================================================
// rectangle-rectangle

// detectRectangleRectangle implements spec §4.4 Rectangle–Rectangle via SAT.
func detectRectangleRectangle(a, b *Body) *Manifold {
	ra, rb := a.shape.(*Rectangle), b.shape.(*Rectangle)
	pa, pb := a.position, b.position

	overlapX := (ra.Width+rb.Width)/2 - math.Abs(pb.X-pa.X)
	overlapY := (ra.Height+rb.Height)/2 - math.Abs(pb.Y-pa.Y)
	if overlapX <= lin.Epsilon || overlapY <= lin.Epsilon {
		return nil
	}

	aabbA, aabbB := ra.Aabb(), rb.Aabb()
	xMin, xMax := math.Max(aabbA.Min.X, aabbB.Min.X), math.Min(aabbA.Max.X, aabbB.Max.X)
	yMin, yMax := math.Max(aabbA.Min.Y, aabbB.Min.Y), math.Min(aabbA.Max.Y, aabbB.Max.Y)
	point := lin.NewV2S((xMin+xMax)/2, (yMin+yMax)/2)

	var normal *lin.V2
	var penetration float64
	if overlapX < overlapY {
		penetration = overlapX
		sign := 1.0
		if pb.X < pa.X {
			sign = -1.0
		}
		normal = lin.NewV2S(sign, 0)
	} else {
		penetration = overlapY
		sign := 1.0
		if pb.Y < pa.Y {
			sign = -1.0
		}
		normal = lin.NewV2S(0, sign)
	}
	return newManifold(a, b, []Contact{{Point: point, Normal: normal, Penetration: penetration}})
}
