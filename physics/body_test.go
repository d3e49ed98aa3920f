// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"math"
	"testing"

	"github.com/gazed/phys2d/math/lin"
)

// Check that each body gets a unique, incrementing id.
func TestBodyIDsIncrement(t *testing.T) {
	b0, _ := NewBody(NewCircle(nil, 1), 1, DefaultMaterial)
	b1, _ := NewBody(NewCircle(nil, 1), 1, DefaultMaterial)
	if b1.ID()-b0.ID() != 1 {
		t.Error("Body ids should be incrementing")
	}
}

func TestNewBodyRejectsBadMass(t *testing.T) {
	if _, err := NewBody(NewCircle(nil, 1), 0, DefaultMaterial); err == nil {
		t.Error("Zero mass should be rejected")
	}
	if _, err := NewBody(NewCircle(nil, 1), -1, DefaultMaterial); err == nil {
		t.Error("Negative mass should be rejected")
	}
	if _, err := NewBody(NewCircle(nil, 1), math.Inf(1), DefaultMaterial); err == nil {
		t.Error("Infinite mass should be rejected; use SetStatic instead")
	}
}

// A body's position must share storage with its shape's center: moving
// one moves the other.
func TestBodyPositionSharesShapeCenter(t *testing.T) {
	shape := NewCircle(lin.NewV2S(1, 2), 1)
	b, err := NewBody(shape, 1, DefaultMaterial)
	if err != nil {
		t.Fatal(err)
	}
	b.SetPosition(lin.NewV2S(5, 6))
	if shape.Center().X != 5 || shape.Center().Y != 6 {
		t.Error("Moving the body should move its shape's center")
	}
}

func TestSetStaticMakesBodyImmovable(t *testing.T) {
	b, _ := NewBody(NewCircle(nil, 1), 2, DefaultMaterial)
	b.SetVelocity(lin.NewV2S(1, 1))
	b.SetStatic()
	if !b.IsStatic() {
		t.Error("Expecting a static body")
	}
	if b.velocity.X != 0 || b.velocity.Y != 0 {
		t.Error("SetStatic should zero any existing velocity")
	}
	b.SetVelocity(lin.NewV2S(5, 5))
	if b.velocity.X != 0 || b.velocity.Y != 0 {
		t.Error("Static body velocity should remain zero")
	}
	b.ApplyForce(lin.NewV2S(100, 0))
	b.integrate(1, 1)
	if b.position.X != 0 || b.position.Y != 0 {
		t.Error("Static body should never move")
	}
}

func TestSetMassNoOpOnStatic(t *testing.T) {
	b, _ := NewBody(NewCircle(nil, 1), 2, DefaultMaterial)
	b.SetStatic()
	if err := b.SetMass(5); err != nil {
		t.Errorf("SetMass on a static body should be a no-op, not an error: %v", err)
	}
	if !b.IsStatic() {
		t.Error("Body should remain static after SetMass")
	}
}

func TestApplyForceAndIntegrate(t *testing.T) {
	b, _ := NewBody(NewCircle(nil, 2), 2, Material{Restitution: 0, Friction: 0})
	b.ApplyForce(lin.NewV2S(4, 0)) // a = F/m = 2
	b.integrate(1, 0)              // no drag: gravity damping coefficient is 0.
	if !lin.Aeq(b.velocity.X, 2) {
		t.Errorf("Expecting velocity.X == 2, got %f", b.velocity.X)
	}
	if !lin.Aeq(b.position.X, 2) {
		t.Errorf("Expecting position.X == 2, got %f", b.position.X)
	}
}

func TestApplyImpulse(t *testing.T) {
	b, _ := NewBody(NewCircle(nil, 1), 2, DefaultMaterial)
	b.ApplyImpulse(lin.NewV2S(4, 0)) // dv = impulse * invMass = 2
	if !lin.Aeq(b.velocity.X, 2) {
		t.Errorf("Expecting velocity.X == 2, got %f", b.velocity.X)
	}
}

func TestApplyImpulseIgnoredForStatic(t *testing.T) {
	b, _ := NewBody(NewCircle(nil, 1), 2, DefaultMaterial)
	b.SetStatic()
	b.ApplyImpulse(lin.NewV2S(4, 0))
	if b.velocity.X != 0 {
		t.Error("Impulse on a static body should be ignored")
	}
}

func TestApplyMovementNormalizes(t *testing.T) {
	b, _ := NewBody(NewCircle(nil, 1), 1, DefaultMaterial)
	b.ApplyMovement(lin.NewV2S(3, 4))
	if !lin.Aeq(b.movementVector.Len(), 1) {
		t.Errorf("Expecting a unit movement vector, got length %f", b.movementVector.Len())
	}
}

func TestGetKineticEnergy(t *testing.T) {
	b, _ := NewBody(NewCircle(nil, 1), 2, DefaultMaterial)
	b.SetVelocity(lin.NewV2S(3, 4))
	if !lin.Aeq(b.GetKineticEnergy(), 0.5*2*25) {
		t.Errorf("Expecting kinetic energy 25, got %f", b.GetKineticEnergy())
	}
	b.SetStatic()
	if b.GetKineticEnergy() != 0 {
		t.Error("Static bodies should have zero kinetic energy")
	}
}

func TestPairIDIsOrderIndependent(t *testing.T) {
	a, _ := NewBody(NewCircle(nil, 1), 1, DefaultMaterial)
	b, _ := NewBody(NewCircle(nil, 1), 1, DefaultMaterial)
	if a.pairID(b) != b.pairID(a) {
		t.Error("pairID should be order independent")
	}
	c, _ := NewBody(NewCircle(nil, 1), 1, DefaultMaterial)
	if a.pairID(b) == a.pairID(c) {
		t.Error("Distinct pairs should not collide")
	}
}

func TestClearForcesResetsScratch(t *testing.T) {
	b, _ := NewBody(NewCircle(nil, 1), 1, DefaultMaterial)
	b.ApplyForce(lin.NewV2S(1, 1))
	b.ApplyMovement(lin.NewV2S(1, 0))
	b.clearForces()
	if b.forceAccumulator.X != 0 || b.forceAccumulator.Y != 0 {
		t.Error("clearForces should zero the force accumulator")
	}
	if b.movementVector.X != 0 || b.movementVector.Y != 0 {
		t.Error("clearForces should zero the movement vector")
	}
}
