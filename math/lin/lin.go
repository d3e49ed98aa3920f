// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package lin provides the scalar and 2D vector math needed by the physics
// engine. Operations favor the conventions of the source this was adapted
// from:
//   - avoid instantiating new structures in hot (solver) paths
//   - use pointers to structures
//   - prefer multiply over divide
//   - guard divisions and normalizations against near-zero magnitudes
//
// Package lin is provided as part of the phys2d top-down physics engine.
package lin

import "math"

// Various linear math constants.
const (
	// Large is a convenience value used where "no limit" is needed.
	Large float64 = math.MaxFloat32

	// Epsilon is used to distinguish when a float is close enough to a
	// number that the difference is noise.
	Epsilon float64 = 1e-10

	// EpsilonSqr is Epsilon squared, used to guard squared-length checks
	// (|v|^2 < EpsilonSqr) without paying for a square root.
	EpsilonSqr float64 = Epsilon * Epsilon
)

// AeqZ (~=) almost-equals returns true if the difference between x and zero
// is so small that it doesn't matter.
func AeqZ(x float64) bool { return math.Abs(x) < Epsilon }

// Aeq (~=) almost-equals returns true if the difference between a and b is
// so small that it doesn't matter.
func Aeq(a, b float64) bool { return math.Abs(a-b) < Epsilon }

// Lerp returns the linear interpolation of a to b by the given ratio.
func Lerp(a, b, ratio float64) float64 { return (b-a)*ratio + a }

// Max3 returns the largest of the 3 numbers.
func Max3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }

// Min3 returns the smallest of the 3 numbers.
func Min3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }

// Clamp returns a scalar value (one of: s, lb, ub) guaranteed to be within
// the range given by lower bound lb and upper bound ub.
func Clamp(s, lb, ub float64) float64 {
	switch {
	case s < lb:
		return lb
	case s > ub:
		return ub
	}
	return s
}

// Round return rounded version of x with prec precision.
// Special cases are:
//
//	Round(±0) = ±0
//	Round(±Inf) = ±Inf
//	Round(NaN) = NaN
func Round(val float64, prec int) float64 {
	if val == 0 || math.IsInf(val, 0) || math.IsNaN(val) {
		return val
	}
	var rounder float64
	pow := math.Pow(10, float64(prec))
	intermed := val * pow
	if intermed < 0.0 {
		intermed -= 0.5
	} else {
		intermed += 0.5
	}
	rounder = float64(int64(intermed))
	return rounder / float64(pow)
}

// AbsMax returns the index of the largest absolute value of the 4 given values.
// The returned index is always from 0-3.
func AbsMax(a0, a1, a2, a3 float64) int {
	maxIndex := 0
	maxVal := math.Abs(a0)
	if v := math.Abs(a1); v > maxVal {
		maxIndex, maxVal = 1, v
	}
	if v := math.Abs(a2); v > maxVal {
		maxIndex, maxVal = 2, v
	}
	if v := math.Abs(a3); v > maxVal {
		maxIndex = 3
	}
	return maxIndex
}
