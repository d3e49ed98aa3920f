// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"math"

	"github.com/gazed/phys2d/math/lin"
)

// Shape is a 2D collision primitive used during broad and narrow phase
// collision detection. A shape's center is the single source of truth for
// its position: a shape never stores a separate world transform. Bodies
// share the same *lin.V2 storage cell as their shape's center so that
// moving a body moves its shape without any extra bookkeeping.
type Shape interface {
	Type() ShapeKind // Type returns the shape kind, used to dispatch detectors.

	// Center returns the shape's center storage cell. The returned pointer
	// is shared, not copied: mutating it moves the shape in place.
	Center() *lin.V2

	Area() float64 // Area is useful for mass = density*area.

	// Aabb returns the shape's axis aligned bounding box in world space.
	Aabb() *AABB

	// Contains returns true if point lies within the shape, within
	// Epsilon tolerance on the boundary.
	Contains(point *lin.V2) bool

	// Overlaps returns true if this shape and other intersect.
	Overlaps(other Shape) bool
}

// ShapeKind is a Shape variant tag.
type ShapeKind int

// Enumerate the shapes handled by physics and returned by Shape.Type().
// Used to index the narrow-phase detector dispatch table.
const (
	CircleShape    ShapeKind = iota // Round, defined by a radius.
	RectangleShape                  // Axis aligned, defined by width/height.
	NumShapes                      // Keep this last.
)

// Shape interface
// ============================================================================
// circle shape

// Circle is a collision shape primitive defined by a radius around center.
type Circle struct {
	center *lin.V2
	Radius float64
}

// NewCircle creates a Circle shape at the given center with the given
// radius. Negative radius values are turned positive. A nil center
// allocates a fresh storage cell at the origin.
func NewCircle(center *lin.V2, radius float64) *Circle {
	if center == nil {
		center = lin.NewV2()
	}
	return &Circle{center: center, Radius: math.Abs(radius)}
}

// Implements Shape.Type
func (c *Circle) Type() ShapeKind { return CircleShape }

// Implements Shape.Center
func (c *Circle) Center() *lin.V2 { return c.center }

// Implements Shape.Area
func (c *Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }

// Implements Shape.Aabb
// A circle's aabb is the axis aligned box of side 2r centered on it.
func (c *Circle) Aabb() *AABB {
	return FromCenterSize(c.center, c.Radius*2, c.Radius*2)
}

// Implements Shape.Contains
// dist² ≤ r² + EPSILON² admits points on the boundary.
func (c *Circle) Contains(point *lin.V2) bool {
	return c.center.DistSqr(point) <= c.Radius*c.Radius+lin.EpsilonSqr
}

// Implements Shape.Overlaps
func (c *Circle) Overlaps(other Shape) bool { return overlaps(c, other) }

// circle
// ============================================================================
// rectangle shape

// Rectangle is an axis aligned collision shape primitive, centered at
// center and sized by width and height. The rectangle's min/max corners
// are always derived from center+dimensions; center is the source of truth.
type Rectangle struct {
	center *lin.V2
	Width  float64
	Height float64
}

// NewRectangle creates a Rectangle shape at the given center with the
// given width and height. Negative dimensions are turned positive. A nil
// center allocates a fresh storage cell at the origin.
func NewRectangle(center *lin.V2, width, height float64) *Rectangle {
	if center == nil {
		center = lin.NewV2()
	}
	return &Rectangle{center: center, Width: math.Abs(width), Height: math.Abs(height)}
}

// Implements Shape.Type
func (r *Rectangle) Type() ShapeKind { return RectangleShape }

// Implements Shape.Center
func (r *Rectangle) Center() *lin.V2 { return r.center }

// Implements Shape.Area
func (r *Rectangle) Area() float64 { return r.Width * r.Height }

// Implements Shape.Aabb
// A rectangle's aabb is its own min/max: it never rotates.
func (r *Rectangle) Aabb() *AABB {
	return FromCenterSize(r.center, r.Width, r.Height)
}

// Implements Shape.Contains
// ±EPSILON on each edge admits points on the boundary.
func (r *Rectangle) Contains(point *lin.V2) bool {
	hx, hy := r.Width/2, r.Height/2
	return point.X >= r.center.X-hx-lin.Epsilon && point.X <= r.center.X+hx+lin.Epsilon &&
		point.Y >= r.center.Y-hy-lin.Epsilon && point.Y <= r.center.Y+hy+lin.Epsilon
}

// Implements Shape.Overlaps
func (r *Rectangle) Overlaps(other Shape) bool { return overlaps(r, other) }

// rectangle
// ============================================================================
// shape overlap dispatch (manifold-free, used by region queries)

// overlaps dispatches a boolean-only overlap test by shape kind pair. It
// mirrors the narrow-phase detectors in collision.go but skips manifold
// construction, making it cheap for queryRegion/queryOverlapsWithShape.
func overlaps(a, b Shape) bool {
	switch aa := a.(type) {
	case *Circle:
		switch bb := b.(type) {
		case *Circle:
			rSum := aa.Radius + bb.Radius
			return aa.center.DistSqr(bb.center) < rSum*rSum
		case *Rectangle:
			return circleRectangleOverlap(aa, bb)
		}
	case *Rectangle:
		switch bb := b.(type) {
		case *Circle:
			return circleRectangleOverlap(bb, aa)
		case *Rectangle:
			return rectangleRectangleOverlap(aa, bb)
		}
	}
	logUnsupportedPair(a.Type(), b.Type())
	return false
}

// circleRectangleOverlap clamps the circle center into the rectangle and
// checks the squared distance against the radius.
func circleRectangleOverlap(c *Circle, r *Rectangle) bool {
	hx, hy := r.Width/2, r.Height/2
	qx := lin.Clamp(c.center.X, r.center.X-hx, r.center.X+hx)
	qy := lin.Clamp(c.center.Y, r.center.Y-hy, r.center.Y+hy)
	dx, dy := c.center.X-qx, c.center.Y-qy
	dSqr := dx*dx + dy*dy
	return dSqr <= c.Radius*c.Radius+lin.Epsilon
}

// rectangleRectangleOverlap is strict axis overlap on both axes.
func rectangleRectangleOverlap(a, b *Rectangle) bool {
	overlapX := (a.Width+b.Width)/2 - math.Abs(a.center.X-b.center.X)
	overlapY := (a.Height+b.Height)/2 - math.Abs(a.center.Y-b.center.Y)
	return overlapX > lin.Epsilon && overlapY > lin.Epsilon
}

// extentAlongAxis returns how far shape s extends from its center along
// unit axis n. A circle's extent is direction-independent; a rectangle's
// extent is its half-extents projected onto n. Used by the resolver's
// position-correction pass to recompute a contact's current penetration
// from the bodies' live centers rather than the depth fixed at detect time.
func extentAlongAxis(s Shape, n *lin.V2) float64 {
	switch ss := s.(type) {
	case *Circle:
		return ss.Radius
	case *Rectangle:
		return math.Abs(n.X)*ss.Width/2 + math.Abs(n.Y)*ss.Height/2
	}
	logUnsupportedPair(s.Type(), s.Type())
	return 0
}

// ============================================================================
// AABB

// AABB is an axis aligned bounding box used for broad-phase culling and
// region queries. Invariant: Min.X ≤ Max.X and Min.Y ≤ Max.Y.
type AABB struct {
	Min *lin.V2
	Max *lin.V2
}

// FromCenterSize builds an AABB of the given width and height centered
// at center.
func FromCenterSize(center *lin.V2, width, height float64) *AABB {
	hx, hy := width/2, height/2
	return &AABB{
		Min: lin.NewV2S(center.X-hx, center.Y-hy),
		Max: lin.NewV2S(center.X+hx, center.Y+hy),
	}
}

// Overlaps returns true if AABB a and b intersect. Touching along an edge
// or corner is not considered overlapping (strict).
func (a *AABB) Overlaps(b *AABB) bool {
	return a.Min.X < b.Max.X && a.Max.X > b.Min.X && a.Min.Y < b.Max.Y && a.Max.Y > b.Min.Y
}

// Contains returns true if point lies within a, boundary inclusive.
func (a *AABB) Contains(point *lin.V2) bool {
	return point.X >= a.Min.X && point.X <= a.Max.X && point.Y >= a.Min.Y && point.Y <= a.Max.Y
}

// Merge returns the smallest AABB enclosing both a and b.
func (a *AABB) Merge(b *AABB) *AABB {
	return &AABB{
		Min: lin.NewV2S(math.Min(a.Min.X, b.Min.X), math.Min(a.Min.Y, b.Min.Y)),
		Max: lin.NewV2S(math.Max(a.Max.X, b.Max.X), math.Max(a.Max.Y, b.Max.Y)),
	}
}

// minDimension returns the shorter of the AABB's two side lengths. Used by
// the CCD heuristic to decide whether a swept test is needed.
func (a *AABB) minDimension() float64 {
	return math.Min(a.Max.X-a.Min.X, a.Max.Y-a.Min.Y)
}
