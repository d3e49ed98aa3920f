// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"fmt"
	"math"
	"sync"

	"github.com/gazed/phys2d/math/lin"
)

// Body is a single rigid body contained within a physics simulation.
// Bodies are inserted into a World, which controls their position and
// velocity every step; applications nudge bodies with forces, impulses,
// and movement, then read back position/velocity to drive their own
// scene representation.
type Body struct {
	id uint64 // Unique body id for generating pair identifiers.

	shape Shape   // Collision shape. Its center is this body's position.
	v0    *lin.V2 // Scratch vector, reused across hot-path calls.

	position         *lin.V2 // Shares storage with shape.Center(). Source of truth.
	velocity         *lin.V2
	acceleration     *lin.V2
	forceAccumulator *lin.V2
	movementVector   *lin.V2 // Intentional movement direction. Zero or unit-length.

	mass        float64 // mass ∈ (0, ∞). Use SetStatic for infinite mass.
	inverseMass float64 // 0 when static, else 1/mass.
	material    Material

	isSensor bool // Detects but does not resolve; always emits.

	layer          uint32 // Which layer this body is on.
	resolutionMask uint32 // Bilateral: which layers may push me.
	eventMask      uint32 // Unilateral: which layers trigger my event emission.

	emitter *eventEmitter // Per-body start/active/end handlers.
}

// bodyID is a process-wide monotonic counter. Ids are never reused.
var (
	bodyID     uint64
	bodyIDLock sync.Mutex
)

func nextBodyID() uint64 {
	bodyIDLock.Lock()
	defer bodyIDLock.Unlock()
	bodyID++
	return bodyID
}

// NewBody returns a new dynamic Body with the given shape, mass, and
// material. Mass must be finite and positive; construct a dynamic body
// then call SetStatic to make it immovable. Default layer is 1, with
// event and resolution masks open to every layer.
func NewBody(shape Shape, mass float64, material Material) (*Body, error) {
	if math.IsInf(mass, 1) || math.IsNaN(mass) || mass <= 0 {
		return nil, fmt.Errorf("physics: invalid body mass %v, must be finite and positive", mass)
	}
	b := &Body{
		id:               nextBodyID(),
		shape:            shape,
		v0:               lin.NewV2(),
		position:         shape.Center(),
		velocity:         lin.NewV2(),
		acceleration:     lin.NewV2(),
		forceAccumulator: lin.NewV2(),
		movementVector:   lin.NewV2(),
		mass:             mass,
		inverseMass:      1 / mass,
		material:         material,
		layer:            1,
		resolutionMask:   ^uint32(0),
		eventMask:        ^uint32(0),
		emitter:          newEventEmitter(),
	}
	return b, nil
}

// ID returns the body's process-wide unique identifier.
func (b *Body) ID() uint64 { return b.id }

// Shape returns the body's collision shape.
func (b *Body) Shape() Shape { return b.shape }

// Position returns the body's position. The returned vector shares
// storage with the shape's center: mutating it moves the body.
func (b *Body) Position() *lin.V2 { return b.position }

// Velocity returns the body's current linear velocity.
func (b *Body) Velocity() *lin.V2 { return b.velocity }

// Layer, EventMask, ResolutionMask are the collision filtering bitmasks.
func (b *Body) Layer() uint32          { return b.layer }
func (b *Body) EventMask() uint32      { return b.eventMask }
func (b *Body) ResolutionMask() uint32 { return b.resolutionMask }

// SetLayer, SetEventMask, SetResolutionMask update the filtering bitmasks.
func (b *Body) SetLayer(layer uint32)                   { b.layer = layer }
func (b *Body) SetEventMask(mask uint32)                { b.eventMask = mask }
func (b *Body) SetResolutionMask(mask uint32)            { b.resolutionMask = mask }

// collisionMask is the union used by the broad-phase to decide whether a
// pair is even worth tracking.
func (b *Body) collisionMask() uint32 { return b.eventMask | b.resolutionMask }

// SetSensor marks this body as a sensor: it still detects collisions and
// always emits events, but never participates in impulse resolution.
func (b *Body) SetSensor(sensor bool) { b.isSensor = sensor }

// IsSensor reports whether this body is a sensor.
func (b *Body) IsSensor() bool { return b.isSensor }

// SetMass sets the body's mass, recomputing inverseMass. A no-op on a
// static body: static is only undone by constructing a new body.
func (b *Body) SetMass(mass float64) error {
	if b.IsStatic() {
		return nil
	}
	if math.IsInf(mass, 1) || math.IsNaN(mass) || mass <= 0 {
		return fmt.Errorf("physics: invalid body mass %v, must be finite and positive", mass)
	}
	b.mass = mass
	b.inverseMass = 1 / mass
	return nil
}

// SetStatic makes the body immovable: mass becomes infinite, inverseMass
// zero, and any existing velocity/acceleration/forces are cleared. Static
// bodies never move again, regardless of forces or impulses applied to
// them afterward.
func (b *Body) SetStatic() {
	b.mass = math.Inf(1)
	b.inverseMass = 0
	b.velocity.SetS(0, 0)
	b.acceleration.SetS(0, 0)
	b.forceAccumulator.SetS(0, 0)
}

// IsStatic reports whether the body has infinite mass.
func (b *Body) IsStatic() bool { return b.inverseMass == 0 }

// ApplyForce accumulates a force to be integrated on the next step.
// Ignored for static bodies.
func (b *Body) ApplyForce(force *lin.V2) {
	if b.IsStatic() {
		return
	}
	b.forceAccumulator.Add(b.forceAccumulator, force)
}

// ApplyImpulse immediately changes velocity by impulse*inverseMass.
// Ignored for static bodies.
func (b *Body) ApplyImpulse(impulse *lin.V2) {
	if b.IsStatic() {
		return
	}
	b.v0.Scale(impulse, b.inverseMass) // scratch v0
	b.velocity.Add(b.velocity, b.v0)   // scratch v0 free
}

// ApplyMovement records the body's intentional movement direction, used
// by the resolver to suppress bounce against a wall the body is actively
// walking into. direction is normalized; the zero vector clears it.
func (b *Body) ApplyMovement(direction *lin.V2) {
	b.movementVector.Normalize(direction)
}

// SetPosition overwrites the body's position in place, preserving the
// shared storage cell with shape.Center().
func (b *Body) SetPosition(p *lin.V2) {
	b.position.X, b.position.Y = p.X, p.Y
}

// SetVelocity overwrites the body's velocity. Ignored for static bodies,
// which must remain motionless.
func (b *Body) SetVelocity(v *lin.V2) {
	if b.IsStatic() {
		return
	}
	b.velocity.X, b.velocity.Y = v.X, v.Y
}

// GetAABB returns the body's current world-space bounding box.
func (b *Body) GetAABB() *AABB { return b.shape.Aabb() }

// GetKineticEnergy returns 0.5*mass*|v|². Always zero for static bodies.
func (b *Body) GetKineticEnergy() float64 {
	if b.IsStatic() {
		return 0
	}
	return 0.5 * b.mass * b.velocity.LenSqr()
}

// On registers a handler for one of "collision-start", "collision-active",
// "collision-end" on this body alone.
func (b *Body) On(event string, handler CollisionHandler) { b.emitter.on(event, handler) }

// Off removes a previously registered per-body handler.
func (b *Body) Off(event string, handler CollisionHandler) { b.emitter.off(event, handler) }

// RemoveAllListeners clears every per-body handler, optionally scoped to
// a single event name when non-empty.
func (b *Body) RemoveAllListeners(event string) { b.emitter.removeAll(event) }

// pairID generates an order-independent unique id for bodies b and a,
// using Cantor pairing on the smaller id first.
func (b *Body) pairID(a *Body) uint64 {
	id0, id1 := b.id, a.id
	if id0 > id1 {
		id0, id1 = id1, id0
	}
	return (id0+id1)*(id0+id1+1)/2 + id1
}

// integrate advances linear velocity and position by one fixed timestep.
// gravity here is a damping coefficient (not an acceleration): it drains
// velocity proportional to the body's own mass and friction, modeling a
// top-down drag. Static bodies are untouched.
func (b *Body) integrate(dt, gravity float64) {
	if b.IsStatic() {
		return
	}

	// a = F * invMass; v += a*dt
	b.acceleration.Scale(b.forceAccumulator, b.inverseMass)
	b.velocity.X += b.acceleration.X * dt
	b.velocity.Y += b.acceleration.Y * dt

	// mass-weighted drag
	damp := math.Max(0, 1-gravity*b.material.Friction*b.mass*dt)
	b.velocity.Scale(b.velocity, damp)
	if b.velocity.LenSqr() < lin.EpsilonSqr {
		b.velocity.SetS(0, 0)
	}

	// p += v*dt
	b.position.X += b.velocity.X * dt
	b.position.Y += b.velocity.Y * dt
}

// clearForces resets the per-step force accumulator and movement vector.
// Called once per fixedStep after integration.
func (b *Body) clearForces() {
	b.forceAccumulator.SetS(0, 0)
	b.movementVector.SetS(0, 0)
}
