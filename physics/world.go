// Copyright © 2024 Galvanized Logic Inc.

// Package physics is a deterministic, fixed-timestep 2D rigid-body
// simulation for top-down games. A World owns a set of circle and
// rectangle bodies, advances them with a broad-phase spatial hash,
// narrow-phase manifold detection, continuous collision detection, and
// a sequential-impulse constraint solver, and reports collisions through
// a typed start/active/end event lifecycle.
//
// Package physics is provided as part of the phys2d top-down physics engine.
package physics

import (
	"github.com/gazed/phys2d/math/lin"
)

// World owns the body set, runs the fixed-step accumulator loop, and
// orchestrates the CCD → broad-phase → narrow-phase → event → resolve →
// integrate pipeline once per fixedStep.
type World struct {
	bodies map[uint64]*Body

	broadPhase *spatialHash
	resolver   *resolver
	listeners  *eventEmitter // world-wide start/active/end handlers.

	previous map[uint64]pair     // collision-key -> pair, from last frame.
	current  map[uint64]pair     // collision-key -> pair, this frame.
	manifold map[uint64]*Manifold // collision-key -> manifold, this frame.

	gravity     float64 // damping coefficient, not an acceleration.
	timeStep    float64
	maxSubSteps int
	time        float64
	accumulator float64
}

// NewWorld creates a World configured by cfg, applying defaults for any
// zero-valued fields per spec §6.
func NewWorld(cfg WorldConfig) *World {
	cfg = cfg.withDefaults()
	return &World{
		bodies:     make(map[uint64]*Body),
		broadPhase: newSpatialHash(cfg.SpatialCellSize),
		resolver: newResolver(resolverConfig{
			velocityIterations:        cfg.VelocityIterations,
			positionIterations:        cfg.PositionIterations,
			positionSlop:              0.01,
			positionCorrectionPercent: 0.8,
			restingVelocityThreshold:  0.5,
		}),
		listeners:   newEventEmitter(),
		previous:    make(map[uint64]pair),
		current:     make(map[uint64]pair),
		manifold:    make(map[uint64]*Manifold),
		gravity:     cfg.Gravity,
		timeStep:    cfg.TimeStep,
		maxSubSteps: cfg.MaxSubSteps,
	}
}

// AddBody inserts body into the world and its broad-phase.
func (w *World) AddBody(b *Body) { w.bodies[b.id] = b; w.broadPhase.insert(b) }

// RemoveBody evicts body from the world and its broad-phase.
func (w *World) RemoveBody(b *Body) {
	delete(w.bodies, b.id)
	w.broadPhase.remove(b)
}

// GetBody looks up a body by id.
func (w *World) GetBody(id uint64) (*Body, bool) { b, ok := w.bodies[id]; return b, ok }

// GetBodies returns every body currently in the world. The returned
// slice is a fresh copy; mutating it does not affect the world.
func (w *World) GetBodies() []*Body {
	out := make([]*Body, 0, len(w.bodies))
	for _, b := range w.bodies {
		out = append(out, b)
	}
	return out
}

// ClearBodies removes every body from the world and its broad-phase.
func (w *World) ClearBodies() {
	for _, b := range w.bodies {
		w.broadPhase.remove(b)
	}
	w.bodies = make(map[uint64]*Body)
	w.previous = make(map[uint64]pair)
	w.current = make(map[uint64]pair)
	w.manifold = make(map[uint64]*Manifold)
}

// SetGravity/GetGravity control the world's damping coefficient.
func (w *World) SetGravity(g float64) { w.gravity = g }
func (w *World) GetGravity() float64  { return w.gravity }

// On registers a world-wide handler for collision-start, collision-active,
// or collision-end.
func (w *World) On(event string, handler CollisionHandler) { w.listeners.on(event, handler) }

// Off removes a previously registered world-wide handler.
func (w *World) Off(event string, handler CollisionHandler) { w.listeners.off(event, handler) }

// RemoveAllListeners clears every world-wide handler, optionally scoped
// to one event name.
func (w *World) RemoveAllListeners(event string) { w.listeners.removeAll(event) }

// Step advances simulation time by deltaTime, running zero or more fixed
// sub-steps. A deltaTime far larger than the configured budget is
// clamped to defeat the spiral of death; the remainder carries forward
// in the accumulator for the next call.
func (w *World) Step(deltaTime float64) {
	maxDt := float64(w.maxSubSteps) * w.timeStep
	if deltaTime > maxDt {
		deltaTime = maxDt
	}
	w.accumulator += deltaTime

	steps := 0
	for w.accumulator >= w.timeStep && steps < w.maxSubSteps {
		w.fixedStep(w.timeStep)
		w.accumulator -= w.timeStep
		w.time += w.timeStep
		steps++
	}
}

// fixedStep runs exactly one fixed-duration sub-step of the simulation,
// per spec §4.8.
func (w *World) fixedStep(dt float64) {
	consumedTime := make(map[uint64]float64)

	candidates := w.broadPhase.getPairs()

	// 1. CCD pass: advance fast bodies to their time of impact so they
	// cannot tunnel through a thin static within this sub-step.
	for _, p := range candidates {
		if _, ok := consumedTime[p.A.id]; ok {
			continue
		}
		if _, ok := consumedTime[p.B.id]; ok {
			continue
		}
		if !needsSweptTest(p.A, dt) && !needsSweptTest(p.B, dt) {
			continue
		}
		toi, ok := sweptTest(p.A, p.B, dt)
		if !ok {
			continue
		}
		advance := toi * dt
		p.A.integrate(advance, w.gravity)
		p.B.integrate(advance, w.gravity)
		consumedTime[p.A.id] = advance
		consumedTime[p.B.id] = advance
	}

	// 2. Detect pass: narrow-phase on all candidates at current positions.
	w.current = make(map[uint64]pair)
	w.manifold = make(map[uint64]*Manifold)
	for _, p := range candidates {
		m := detect(p.A, p.B)
		if m == nil {
			continue
		}
		key := p.A.pairID(p.B)
		w.current[key] = p
		w.manifold[key] = m
	}

	// 3. Event diff: start/active for present keys, end for vanished ones.
	for key, p := range w.current {
		if !canEmitEventWith(p.A, p.B) {
			continue
		}
		event := CollisionActive
		if _, existed := w.previous[key]; !existed {
			event = CollisionStart
		}
		w.emit(event, p.A, p.B, w.manifold[key])
	}
	for key, p := range w.previous {
		if _, stillHere := w.current[key]; stillHere {
			continue
		}
		if !canEmitEventWith(p.A, p.B) {
			continue
		}
		w.emit(CollisionEnd, p.A, p.B, nil)
	}
	w.previous = w.current

	// 4. Resolve pass: only non-sensor, resolvable manifolds go to the solver.
	resolvable := make([]*Manifold, 0, len(w.current))
	for key, p := range w.current {
		if p.A.isSensor || p.B.isSensor {
			continue
		}
		if !canResolveCollision(p.A, p.B) {
			continue
		}
		resolvable = append(resolvable, w.manifold[key])
	}
	w.resolver.resolve(resolvable)

	// 5. Finish integration: every body gets whatever time CCD didn't
	// already consume. Static bodies are no-ops inside integrate.
	for _, b := range w.bodies {
		remaining := dt - consumedTime[b.id]
		b.integrate(remaining, w.gravity)
	}

	// 6. Broad-phase sync and per-step scratch cleanup.
	for _, b := range w.bodies {
		w.broadPhase.update(b)
	}
	for _, b := range w.bodies {
		b.clearForces()
	}
}

// emit dispatches one collision event to the world-wide listeners (only
// if any are registered) and then to both bodies' own listeners.
func (w *World) emit(event string, a, b *Body, m *Manifold) {
	ev := &CollisionEvent{BodyA: a, BodyB: b, IsSensor: a.isSensor || b.isSensor, Manifold: m}
	if w.listeners.hasHandlers(event) {
		w.listeners.emit(event, ev)
	}
	a.emitter.emit(event, ev)
	b.emitter.emit(event, ev)
}

// QueryPoint returns every body whose shape contains point.
func (w *World) QueryPoint(point *lin.V2) []*Body {
	box := &AABB{Min: point, Max: point}
	out := make([]*Body, 0)
	for _, b := range w.broadPhase.queryRegion(box) {
		if b.shape.Contains(point) {
			out = append(out, b)
		}
	}
	return out
}

// QueryRegion returns every body whose AABB overlaps box.
func (w *World) QueryRegion(box *AABB) []*Body {
	out := make([]*Body, 0)
	for _, b := range w.broadPhase.queryRegion(box) {
		if b.GetAABB().Overlaps(box) {
			out = append(out, b)
		}
	}
	return out
}

// QueryOverlapsWithShape returns every body whose shape overlaps shape.
func (w *World) QueryOverlapsWithShape(shape Shape) []*Body {
	out := make([]*Body, 0)
	for _, b := range w.broadPhase.queryRegion(shape.Aabb()) {
		if b.shape.Overlaps(shape) {
			out = append(out, b)
		}
	}
	return out
}

// QueryOverlapsWithBody returns every other body whose shape overlaps
// body's shape.
func (w *World) QueryOverlapsWithBody(body *Body) []*Body {
	out := make([]*Body, 0)
	for _, b := range w.QueryOverlapsWithShape(body.shape) {
		if b.id != body.id {
			out = append(out, b)
		}
	}
	return out
}
