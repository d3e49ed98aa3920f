// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Vector performs 2 element vector math needed for top-down physics.

import "math"

// V2 is a 2 element vector. This can also be used as a point.
type V2 struct {
	X float64 // increments as X moves to the right.
	Y float64 // increments as Y moves up.
}

// Eq (==) returns true if each element in the vector v has the same value
// as the corresponding element in vector a.
func (v *V2) Eq(a *V2) bool { return v.X == a.X && v.Y == a.Y }

// Aeq (~=) almost-equals returns true if all the elements in vector v have
// essentially the same value as the corresponding elements in vector a.
// Used where a direct comparison is unlikely to return true due to floats.
func (v *V2) Aeq(a *V2) bool { return Aeq(v.X, a.X) && Aeq(v.Y, a.Y) }

// AeqZ (~=) almost equals zero returns true if the square length of the
// vector is close enough to zero that it makes no difference.
func (v *V2) AeqZ() bool { return v.Dot(v) < EpsilonSqr }

// IsZero returns true if both elements of v are exactly zero.
func (v *V2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// GetS returns the float64 values of the vector.
func (v *V2) GetS() (x, y float64) { return v.X, v.Y }

// SetS (=) sets the vector elements to the given values.
// The updated vector v is returned.
func (v *V2) SetS(x, y float64) *V2 {
	v.X, v.Y = x, y
	return v
}

// Set (=, copy, clone) sets the elements of vector v to have the same values
// as the elements of vector a. The updated vector v is returned.
func (v *V2) Set(a *V2) *V2 {
	v.X, v.Y = a.X, a.Y
	return v
}

// Swap exchanges the element values of vectors v and a.
// The updated vector v is returned. Vector a is also updated.
func (v *V2) Swap(a *V2) *V2 {
	v.X, a.X = a.X, v.X
	v.Y, a.Y = a.Y, v.Y
	return v
}

// Min updates the vector v elements to be the minimum of the corresponding
// elements from either vectors a or b. The updated vector v is returned.
func (v *V2) Min(a, b *V2) *V2 {
	v.X, v.Y = math.Min(b.X, a.X), math.Min(b.Y, a.Y)
	return v
}

// Max updates the vector v elements to be the maximum of the corresponding
// elements from either vectors a or b. The updated vector v is returned.
func (v *V2) Max(a, b *V2) *V2 {
	v.X, v.Y = math.Max(b.X, a.X), math.Max(b.Y, a.Y)
	return v
}

// Abs updates vector v to have the absolute value of its own elements.
// The updated vector v is returned.
func (v *V2) Abs() *V2 {
	v.X, v.Y = math.Abs(v.X), math.Abs(v.Y)
	return v
}

// Neg (-) sets vector v to be the negative values of vector a.
// Vector v may be used as the input parameter.
// The updated vector v is returned.
func (v *V2) Neg(a *V2) *V2 {
	v.X, v.Y = -a.X, -a.Y
	return v
}

// Add (+) adds vectors a and b storing the results of the addition in v.
// Vector v may be used as one or both of the parameters.
// For example (+=) is
//
//	v.Add(v, b)
//
// The updated vector v is returned.
func (v *V2) Add(a, b *V2) *V2 {
	v.X, v.Y = a.X+b.X, a.Y+b.Y
	return v
}

// Sub (-) subtracts vectors b from a storing the results of the
// subtraction in v. Vector v may be used as one or both of the
// parameters. For example (-=) is
//
//	v.Sub(v, b)
//
// The updated vector v is returned.
func (v *V2) Sub(a, b *V2) *V2 {
	v.X, v.Y = a.X-b.X, a.Y-b.Y
	return v
}

// Mult (*) multiplies the elements of vectors a and b storing the result
// in v. Vector v may be used as one or both of the parameters.
// The updated vector v is returned.
func (v *V2) Mult(a, b *V2) *V2 {
	v.X, v.Y = a.X*b.X, a.Y*b.Y
	return v
}

// Scale (*=) updates the elements in vector v by multiplying the
// corresponding elements in vector a by the given scalar value.
// Vector v may be used as one or both of the vector parameters.
// The updated vector v is returned.
func (v *V2) Scale(a *V2, s float64) *V2 {
	v.X, v.Y = a.X*s, a.Y*s
	return v
}

// Div (/= inverse-scale) divides each element in v by the given scalar
// value. The updated vector v is returned. Vector v is not changed if
// scalar s is zero.
func (v *V2) Div(s float64) *V2 {
	if s != 0 {
		inv := 1 / s
		v.X, v.Y = v.X*inv, v.Y*inv
	}
	return v
}

// Dot vector v with input vector a. Both vectors v and a are unchanged.
func (v *V2) Dot(a *V2) float64 { return v.X*a.X + v.Y*a.Y }

// Cross returns the z component of the 3D cross product of v and a,
// treating both as lying in the z==0 plane. A positive result means a is
// counter-clockwise from v.
func (v *V2) Cross(a *V2) float64 { return v.X*a.Y - v.Y*a.X }

// CrossS updates v to be the 2D vector resulting from the cross product of
// scalar s with vector a: s * (-a.Y, a.X). This is the inverse of Cross,
// used to turn a scalar angular term back into a vector.
func (v *V2) CrossS(s float64, a *V2) *V2 {
	v.X, v.Y = -s*a.Y, s*a.X
	return v
}

// Perp updates v to be vector a rotated 90 degrees counter-clockwise:
// (x, y) becomes (-y, x). Vector v may be used as the input parameter.
func (v *V2) Perp(a *V2) *V2 {
	x, y := a.X, a.Y
	v.X, v.Y = -y, x
	return v
}

// Len returns the length of vector v. Vector length is the square root of
// the dot product. The calling vector v is unchanged.
func (v *V2) Len() float64 { return math.Sqrt(v.Dot(v)) }

// LenSqr returns the length of vector v squared.
// The calling vector v is unchanged.
func (v *V2) LenSqr() float64 { return v.Dot(v) }

// Dist returns the distance between vector end-points v and a.
// Both vectors (points) v and a are unchanged.
func (v *V2) Dist(a *V2) float64 { return math.Sqrt(v.DistSqr(a)) }

// DistSqr returns the distance squared between vector end-points v and a.
// Both vectors (points) v and a are unchanged.
func (v *V2) DistSqr(a *V2) float64 {
	dx, dy := a.X-v.X, a.Y-v.Y
	return dx*dx + dy*dy
}

// Unit updates vector v such that its length is 1.
// Calling vector v is unchanged if its length is zero (within Epsilon).
// The updated vector v is returned.
func (v *V2) Unit() *V2 {
	lenSqr := v.Dot(v)
	if lenSqr < EpsilonSqr {
		return v
	}
	return v.Div(math.Sqrt(lenSqr))
}

// Normalize updates v to be the unit vector of a, returning the original
// length of a. Vector v may be used as the input parameter. If a is too
// small to normalize, v is set to zero and the returned length is zero.
func (v *V2) Normalize(a *V2) float64 {
	length := a.Len()
	if length < Epsilon {
		v.X, v.Y = 0, 0
		return 0
	}
	v.Set(a).Div(length)
	return length
}

// Reflect updates v to be vector a reflected about the given unit normal:
//
//	v = a - 2*dot(a,normal)*normal
//
// Vector v may be used as the input parameter.
func (v *V2) Reflect(a, normal *V2) *V2 {
	d := 2 * a.Dot(normal)
	v.X, v.Y = a.X-d*normal.X, a.Y-d*normal.Y
	return v
}

// Project updates v to be the projection of vector a onto vector onto:
//
//	v = (dot(a,onto) / dot(onto,onto)) * onto
//
// Vector v is left unchanged if onto is too close to the zero vector.
func (v *V2) Project(a, onto *V2) *V2 {
	lenSqr := onto.Dot(onto)
	if lenSqr < EpsilonSqr {
		return v
	}
	s := a.Dot(onto) / lenSqr
	v.X, v.Y = onto.X*s, onto.Y*s
	return v
}

// Rotate updates v to be vector a rotated counter-clockwise by the given
// angle in radians. Vector v may be used as the input parameter.
func (v *V2) Rotate(a *V2, radians float64) *V2 {
	sin, cos := math.Sincos(radians)
	x, y := a.X, a.Y
	v.X = x*cos - y*sin
	v.Y = x*sin + y*cos
	return v
}

// Lerp updates vector v to be a fraction of the distance (linear
// interpolation) between the input vectors a and b. The input ratio is not
// verified, but is expected to be between 0 and 1. Vector v may be used as
// one of the parameters.
func (v *V2) Lerp(a, b *V2, ratio float64) *V2 {
	v.X = (b.X-a.X)*ratio + a.X
	v.Y = (b.Y-a.Y)*ratio + a.Y
	return v
}

// convenience functions for allocating vectors. Nothing else should allocate
// vectors on the hot (solver, narrow-phase) path.

// NewV2 creates a new, all zero, 2D vector.
func NewV2() *V2 { return &V2{} }

// NewV2S creates a new 2D vector using the given scalars.
func NewV2S(x, y float64) *V2 { return &V2{x, y} }
