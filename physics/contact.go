// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import "github.com/gazed/phys2d/math/lin"

// Contact is a single point of collision between two shapes.
type Contact struct {
	Point       *lin.V2 // World-space contact location.
	Normal      *lin.V2 // Unit vector pointing from body A toward body B.
	Penetration float64 // Non-negative overlap depth.
}

// Manifold is the record of one pair's collision this frame: the two
// bodies involved, 1-2 contact points, and their combined material.
// Manifolds are recomputed fresh every detect pass; there is no
// persistence or warm-starting across frames.
type Manifold struct {
	BodyA       *Body
	BodyB       *Body
	Contacts    []Contact
	Restitution float64 // Combined per material.go's combineRestitution.
	Friction    float64 // Combined per material.go's combineFriction.
}

// newManifold builds a Manifold for the two bodies with the given
// contacts, applying the material combination rules.
func newManifold(a, b *Body, contacts []Contact) *Manifold {
	return &Manifold{
		BodyA:       a,
		BodyB:       b,
		Contacts:    contacts,
		Restitution: combineRestitution(a, b),
		Friction:    combineFriction(a, b),
	}
}
