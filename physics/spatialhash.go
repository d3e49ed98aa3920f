// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import "math"

// spatialHash is the broad-phase: a uniform grid keyed by cell coordinate
// that narrows the full body set down to candidate collision pairs in
// sub-quadratic time. Grounded on the akmonengine-feather spatial grid's
// cell-keying approach, adapted to a 2D map keyed directly by cell
// coordinate rather than a fixed power-of-two hash bucket array, since
// Go map keys can be plain structs without the collision risk of hashing
// into a bounded table.
type spatialHash struct {
	cellSize float64
	cells    map[cellKey]map[uint64]*Body // cell -> bodies occupying it
	reverse  map[uint64]map[cellKey]bool  // body id -> cells it occupies
}

// cellKey identifies one cell of the grid by its integer coordinate.
type cellKey struct {
	X, Y int64
}

func newSpatialHash(cellSize float64) *spatialHash {
	return &spatialHash{
		cellSize: cellSize,
		cells:    make(map[cellKey]map[uint64]*Body),
		reverse:  make(map[uint64]map[cellKey]bool),
	}
}

// cellsForAABB returns every cell key the given AABB overlaps.
func (h *spatialHash) cellsForAABB(box *AABB) []cellKey {
	minX := int64(math.Floor(box.Min.X / h.cellSize))
	maxX := int64(math.Floor(box.Max.X / h.cellSize))
	minY := int64(math.Floor(box.Min.Y / h.cellSize))
	maxY := int64(math.Floor(box.Max.Y / h.cellSize))

	keys := make([]cellKey, 0, (maxX-minX+1)*(maxY-minY+1))
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			keys = append(keys, cellKey{x, y})
		}
	}
	return keys
}

// insert registers body in every cell its AABB overlaps.
func (h *spatialHash) insert(b *Body) {
	keys := h.cellsForAABB(b.GetAABB())
	set := make(map[cellKey]bool, len(keys))
	for _, k := range keys {
		if h.cells[k] == nil {
			h.cells[k] = make(map[uint64]*Body)
		}
		h.cells[k][b.id] = b
		set[k] = true
	}
	h.reverse[b.id] = set
}

// remove evicts body from every cell it occupies, pruning any cell left
// empty. Cost is O(|cells body occupied|) via the reverse index.
func (h *spatialHash) remove(b *Body) {
	for k := range h.reverse[b.id] {
		delete(h.cells[k], b.id)
		if len(h.cells[k]) == 0 {
			delete(h.cells, k)
		}
	}
	delete(h.reverse, b.id)
}

// update repositions body within the grid: remove then insert.
func (h *spatialHash) update(b *Body) {
	h.remove(b)
	h.insert(b)
}

// queryRegion returns every body whose cells overlap box. The result is
// a superset of actual AABB overlaps; callers must filter further.
func (h *spatialHash) queryRegion(box *AABB) []*Body {
	seen := make(map[uint64]bool)
	result := make([]*Body, 0)
	for _, k := range h.cellsForAABB(box) {
		for id, b := range h.cells[k] {
			if !seen[id] {
				seen[id] = true
				result = append(result, b)
			}
		}
	}
	return result
}

// pair is an unordered candidate collision pair.
type pair struct {
	A, B *Body
}

// getPairs returns unique unordered pairs of bodies sharing any cell, for
// which canDetectCollision holds on both sides. Uniqueness is by
// Cantor-paired id.
func (h *spatialHash) getPairs() []pair {
	seen := make(map[uint64]bool)
	pairs := make([]pair, 0)
	for _, cell := range h.cells {
		if len(cell) < 2 {
			continue
		}
		ids := make([]*Body, 0, len(cell))
		for _, b := range cell {
			ids = append(ids, b)
		}
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				a, b := ids[i], ids[j]
				key := a.pairID(b)
				if seen[key] {
					continue
				}
				seen[key] = true
				if canDetectCollision(a, b) {
					pairs = append(pairs, pair{A: a, B: b})
				}
			}
		}
	}
	return pairs
}
