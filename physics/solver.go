// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

// solver.go resolves manifolds produced by the narrow-phase into velocity
// and position changes: a sequential-impulse velocity pass (normal
// impulse plus Coulomb friction), followed by Baumgarte-style position
// correction. Unlike a full rigid-body solver there are no angular terms,
// no warm-starting and no persistent constraint pools — manifolds are
// resolved fresh every fixedStep.

import (
	"math"

	"github.com/gazed/phys2d/math/lin"
)

// resolverConfig holds the resolver's tunable iteration counts and
// correction constants.
type resolverConfig struct {
	velocityIterations        int
	positionIterations        int
	positionSlop              float64
	positionCorrectionPercent float64
	restingVelocityThreshold  float64
}

// defaultResolverConfig matches spec §4.6's defaults. positionIterations
// is set to 4, the upper end of the spec's 1-4 range: scenario 4 (stacked
// correction) requires convergence within "3 position iterations per
// step and 4 steps", which only holds with enough iterations per step to
// resolve both adjacent contacts in the 3-body stack each frame.
func defaultResolverConfig() resolverConfig {
	return resolverConfig{
		velocityIterations:        6,
		positionIterations:        4,
		positionSlop:              0.01,
		positionCorrectionPercent: 0.8,
		restingVelocityThreshold:  0.5,
	}
}

// resolver applies velocity and position resolution to a set of
// manifolds produced by one fixedStep's detect pass.
type resolver struct {
	config resolverConfig
}

func newResolver(config resolverConfig) *resolver {
	return &resolver{config: config}
}

// resolve runs the full velocity-then-position resolution pass over the
// given manifolds, each possibly multiple iterations deep.
func (r *resolver) resolve(manifolds []*Manifold) {
	for i := 0; i < r.config.velocityIterations; i++ {
		for _, m := range manifolds {
			r.solveVelocity(m)
		}
	}
	for i := 0; i < r.config.positionIterations; i++ {
		for _, m := range manifolds {
			r.correctPosition(m)
		}
	}
}

// solveVelocity implements spec §4.6's velocity phase for one manifold:
// normal impulse, then Coulomb-clamped friction impulse, per contact.
func (r *resolver) solveVelocity(m *Manifold) {
	a, b := m.BodyA, m.BodyB
	invA, invB := a.inverseMass, b.inverseMass
	invSum := invA + invB
	if invSum < lin.Epsilon {
		return // both static
	}

	for i := range m.Contacts {
		n := m.Contacts[i].Normal

		vRx, vRy := b.velocity.X-a.velocity.X, b.velocity.Y-a.velocity.Y
		vN := vRx*n.X + vRy*n.Y
		if vN > 0 {
			continue // already separating
		}

		e := r.effectiveRestitution(a, b, m, n, vN)
		j := -(1 + e) * vN / invSum
		jx, jy := j*n.X, j*n.Y
		a.velocity.X -= jx * invA
		a.velocity.Y -= jy * invA
		b.velocity.X += jx * invB
		b.velocity.Y += jy * invB

		// friction: recompute relative velocity, project out the normal
		// component to get the tangent direction.
		vRx, vRy = b.velocity.X-a.velocity.X, b.velocity.Y-a.velocity.Y
		vN = vRx*n.X + vRy*n.Y
		tx, ty := vRx-vN*n.X, vRy-vN*n.Y
		tLenSqr := tx*tx + ty*ty
		if tLenSqr <= lin.EpsilonSqr {
			continue
		}
		tLen := math.Sqrt(tLenSqr)
		tx, ty = tx/tLen, ty/tLen

		jt := -(vRx*tx + vRy*ty) / invSum
		maxFriction := math.Abs(j) * m.Friction
		jt = lin.Clamp(jt, -maxFriction, maxFriction)
		jtx, jty := jt*tx, jt*ty
		a.velocity.X -= jtx * invA
		a.velocity.Y -= jty * invA
		b.velocity.X += jtx * invB
		b.velocity.Y += jty * invB
	}
}

// effectiveRestitution determines the restitution used for one contact,
// applying the two overrides from spec §4.6 step 3 before falling back
// to the manifold's combined material restitution.
func (r *resolver) effectiveRestitution(a, b *Body, m *Manifold, n *lin.V2, vN float64) float64 {
	switch {
	case a.IsStatic() && !b.IsStatic():
		// wall is A; B moves. "Into the wall" is the -n direction.
		mv := b.movementVector
		if mv.LenSqr() > lin.EpsilonSqr && mv.Dot(n) < -lin.Epsilon {
			return 0
		}
	case b.IsStatic() && !a.IsStatic():
		// wall is B; A moves. "Into the wall" is the +n direction.
		mv := a.movementVector
		if mv.LenSqr() > lin.EpsilonSqr && mv.Dot(n) > lin.Epsilon {
			return 0
		}
	}
	if math.Abs(vN) < r.config.restingVelocityThreshold {
		return 0
	}
	return m.Restitution
}

// correctPosition implements spec §4.6's position phase for one
// manifold: Baumgarte-style correction split by inverse-mass ratio.
//
// Penetration is recomputed from the bodies' current centers on every
// call rather than reusing the depth Contact.Penetration was given at
// detect time: a position-iteration loop moves the bodies after each
// pass, so resolving the same stale depth on every iteration would
// over-correct. The contact normal is kept fixed (as the teacher's own
// collision_constraint_solve in pbd.go keeps its constraint normal fixed
// and only re-derives the scalar separation each iteration).
func (r *resolver) correctPosition(m *Manifold) {
	a, b := m.BodyA, m.BodyB
	invA, invB := a.inverseMass, b.inverseMass
	invSum := invA + invB
	if invSum < lin.Epsilon {
		return
	}

	for i := range m.Contacts {
		n := m.Contacts[i].Normal
		dx, dy := b.position.X-a.position.X, b.position.Y-a.position.Y
		centerSep := dx*n.X + dy*n.Y
		extent := extentAlongAxis(a.shape, n) + extentAlongAxis(b.shape, n)
		penetration := math.Max(extent-centerSep, 0)

		corr := math.Max(penetration-r.config.positionSlop, 0) * r.config.positionCorrectionPercent
		if corr <= 0 {
			continue
		}
		cx, cy := n.X*corr, n.Y*corr
		ratioA, ratioB := invA/invSum, invB/invSum
		a.position.X -= cx * ratioA
		a.position.Y -= cy * ratioA
		b.position.X += cx * ratioB
		b.position.Y += cy * ratioB
	}
}
