// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import "reflect"

// Event names used by both the world-wide and per-body emitters.
const (
	CollisionStart  = "collision-start"
	CollisionActive = "collision-active"
	CollisionEnd    = "collision-end"
)

// CollisionEvent is the payload delivered to collision handlers. Manifold
// is nil on collision-end events: by the time the pair is known to have
// separated, the manifold that described their contact has dissolved.
type CollisionEvent struct {
	BodyA    *Body
	BodyB    *Body
	IsSensor bool
	Manifold *Manifold
}

// CollisionHandler receives a CollisionEvent.
type CollisionHandler func(e *CollisionEvent)

// eventEmitter is a typed pub/sub used for both the world-wide listener
// set and each body's own listener set. Dispatch is synchronous on the
// calling goroutine.
type eventEmitter struct {
	handlers map[string][]CollisionHandler
}

func newEventEmitter() *eventEmitter {
	return &eventEmitter{handlers: make(map[string][]CollisionHandler)}
}

// on registers a handler for the named event.
func (e *eventEmitter) on(event string, handler CollisionHandler) {
	e.handlers[event] = append(e.handlers[event], handler)
}

// off removes the first registered handler matching the given one.
// Functions are compared by underlying code pointer via reflect, which
// works when the same handler variable is passed to on and off.
func (e *eventEmitter) off(event string, handler CollisionHandler) {
	if handler == nil {
		return
	}
	target := reflect.ValueOf(handler).Pointer()
	list := e.handlers[event]
	for i, h := range list {
		if reflect.ValueOf(h).Pointer() == target {
			e.handlers[event] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// removeAll clears every handler for the named event, or every event if
// event is empty.
func (e *eventEmitter) removeAll(event string) {
	if event == "" {
		e.handlers = make(map[string][]CollisionHandler)
		return
	}
	delete(e.handlers, event)
}

// hasHandlers reports whether any handler is registered for event. Used
// by the world to skip emission work entirely when nobody is listening.
func (e *eventEmitter) hasHandlers(event string) bool {
	return len(e.handlers[event]) > 0
}

// emit synchronously invokes every handler registered for event.
func (e *eventEmitter) emit(event string, ev *CollisionEvent) {
	for _, handler := range e.handlers[event] {
		handler(ev)
	}
}

// canDetectCollision is the bilateral filter used by the broad-phase: both
// bodies' collision masks (event|resolution) must include the other's
// layer. Static-static pairs are never worth detecting.
func canDetectCollision(a, b *Body) bool {
	if a.IsStatic() && b.IsStatic() {
		return false
	}
	return a.collisionMask()&b.layer != 0 && b.collisionMask()&a.layer != 0
}

// canResolveCollision is the bilateral filter gating the solver: neither
// body may be a sensor, and both resolution masks must include the
// other's layer.
func canResolveCollision(a, b *Body) bool {
	if a.isSensor || b.isSensor {
		return false
	}
	if a.IsStatic() && b.IsStatic() {
		return false
	}
	return a.resolutionMask&b.layer != 0 && b.resolutionMask&a.layer != 0
}

// canEmitEventWith is the unilateral filter gating event emission.
// Sensors always qualify regardless of event masks. Static-static pairs
// never emit.
func canEmitEventWith(a, b *Body) bool {
	if a.IsStatic() && b.IsStatic() {
		return false
	}
	if a.isSensor || b.isSensor {
		return true
	}
	return a.eventMask&b.layer != 0 || b.eventMask&a.layer != 0
}
